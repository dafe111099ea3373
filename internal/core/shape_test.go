package core

import (
	"strings"
	"testing"

	"github.com/valter-silva-au/bookmark-brain/pkg/models"
)

func newDefaultClassifier(t *testing.T) *ShapeClassifier {
	t.Helper()
	c, err := NewShapeClassifier(DefaultShapeRules())
	if err != nil {
		t.Fatalf("NewShapeClassifier: %v", err)
	}
	return c
}

func TestClassify(t *testing.T) {
	c := newDefaultClassifier(t)

	longText := strings.Repeat("lorem ipsum dolor sit amet consectetur ", 4)

	tests := []struct {
		name     string
		text     string
		hasVideo bool
		hasImage bool
		hasLink  bool
		want     models.ContentShape
	}{
		{
			name: "TopList",
			text: "Top 10 AI tools for 2025",
			want: models.ShapeTopList,
		},
		{
			name: "TutorialGuide",
			text: "How to set up a home lab from scratch",
			want: models.ShapeTutorialGuide,
		},
		{
			name: "ToolAnnouncement",
			text: "Announcing our new CLI, pip install it today",
			want: models.ShapeToolAnnouncement,
		},
		{
			name: "CodeSnippet",
			text: "here is the snippet\n```\nfmt.Println(1)\n```",
			want: models.ShapeCodeSnippet,
		},
		{
			name: "OpinionTake",
			text: "hot take: monorepos are overrated",
			want: models.ShapeOpinionTake,
		},
		{
			name: "NewsUpdate",
			text: "BREAKING: the merger is official",
			want: models.ShapeNewsUpdate,
		},
		{
			name: "ThreadMarker",
			text: "1/ building a compiler from scratch",
			want: models.ShapeThreadContent,
		},
		{
			name:     "VideoOverridesText",
			text:     "How to deploy in five minutes",
			hasVideo: true,
			want:     models.ShapeVideoContent,
		},
		{
			name:     "VideoWinsOverAllOtherFlags",
			text:     "",
			hasVideo: true,
			hasImage: true,
			hasLink:  true,
			want:     models.ShapeVideoContent,
		},
		{
			name:     "ShortTextWithImageIsScreenshot",
			text:     "quarterly numbers",
			hasImage: true,
			want:     models.ShapeScreenshotInfo,
		},
		{
			name:     "EmptyTextWithImageIsScreenshot",
			text:     "",
			hasImage: true,
			want:     models.ShapeScreenshotInfo,
		},
		{
			name:     "LongTextWithImageIsNotScreenshot",
			text:     longText,
			hasImage: true,
			want:     models.ShapeUnknown,
		},
		{
			name:    "LinkFallback",
			text:    "interesting piece on compilers",
			hasLink: true,
			want:    models.ShapeArticleLink,
		},
		{
			name:     "ImageFallbackBeatsLinkForShortText",
			text:     "see chart",
			hasImage: true,
			hasLink:  true,
			want:     models.ShapeScreenshotInfo,
		},
		{
			name: "CascadeFirstRuleWins",
			text: "Top 5 tips on how to learn Go",
			want: models.ShapeTopList,
		},
		{
			name: "CaseInsensitive",
			text: "HOW TO write better commit messages",
			want: models.ShapeTutorialGuide,
		},
		{
			name: "NoSignalIsUnknown",
			text: "interesting.",
			want: models.ShapeUnknown,
		},
		{
			name: "EmptyEverything",
			want: models.ShapeUnknown,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := c.Classify(tt.text, tt.hasVideo, tt.hasImage, tt.hasLink)
			if got != tt.want {
				t.Errorf("Classify(%q, video=%v, image=%v, link=%v) = %s, want %s",
					tt.text, tt.hasVideo, tt.hasImage, tt.hasLink, got, tt.want)
			}
		})
	}
}

func TestClassifyPatternBeatsMediaFallback(t *testing.T) {
	c := newDefaultClassifier(t)

	// A matching text pattern decides before the image/link fallbacks run.
	got := c.Classify("how to read this chart", false, true, true)
	if got != models.ShapeTutorialGuide {
		t.Errorf("Classify = %s, want %s", got, models.ShapeTutorialGuide)
	}
}

func TestClassifyMultibyteRuneThreshold(t *testing.T) {
	c := newDefaultClassifier(t)

	// 99 multibyte runes stay under the screenshot threshold even though
	// the byte length is far above it.
	text := strings.Repeat("é", 99)
	if got := c.Classify(text, false, true, false); got != models.ShapeScreenshotInfo {
		t.Errorf("Classify(99 runes) = %s, want %s", got, models.ShapeScreenshotInfo)
	}

	text = strings.Repeat("é", 100)
	if got := c.Classify(text, false, true, false); got == models.ShapeScreenshotInfo {
		t.Error("Classify(100 runes) should not be a screenshot")
	}
}

func TestNewShapeClassifierInvalidPattern(t *testing.T) {
	_, err := NewShapeClassifier([]models.ShapeRule{
		{Shape: models.ShapeTopList, Patterns: []string{`[unclosed`}},
	})
	if err == nil {
		t.Error("expected construction error, got nil")
	}
}
