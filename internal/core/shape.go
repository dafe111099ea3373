package core

import (
	"fmt"
	"regexp"
	"strings"
	"unicode/utf8"

	"github.com/valter-silva-au/bookmark-brain/pkg/models"
)

// shortTextThreshold is the maximum text length (in runes) for an image
// bookmark to be treated as a screenshot rather than unknown content.
const shortTextThreshold = 100

// DefaultShapeRules returns the built-in content-shape cascade. Rule order
// is the priority order: the first shape with any matching pattern wins.
func DefaultShapeRules() []models.ShapeRule {
	return []models.ShapeRule{
		{Shape: models.ShapeTopList, Patterns: []string{
			`top\s+\d+`,
			`best\s+\d+`,
			`\d+\s+best`,
			`\d+\s+things`,
			`my\s+favorite`,
			`ranking`,
			`list\s+of`,
			`\d+\s+ways`,
			`\d+\s+tips`,
			`\d+\s+tools`,
		}},
		{Shape: models.ShapeTutorialGuide, Patterns: []string{
			`how\s+to`,
			`guide\s+to`,
			`tutorial`,
			`step\s+by\s+step`,
			`best\s+practices`,
			`tips\s+for`,
			`learn\s+how`,
			`checklist`,
			`prompt\s+guide`,
			`cheatsheet`,
			`cheat\s+sheet`,
		}},
		{Shape: models.ShapeToolAnnouncement, Patterns: []string{
			`v\d+\.\d+`,
			`is\s+out`,
			`just\s+launched`,
			`releasing`,
			`announcing`,
			`introducing`,
			`new\s+release`,
			`open\s+source`,
			`just\s+dropped`,
			`npm\s+i`,
			`pip\s+install`,
		}},
		{Shape: models.ShapeCodeSnippet, Patterns: []string{
			"```",
			`code:`,
			`prompt:`,
			`here's\s+how`,
			`example:`,
			`function\s+\w+`,
			`def\s+\w+`,
			`const\s+\w+`,
			`class\s+\w+`,
		}},
		{Shape: models.ShapeOpinionTake, Patterns: []string{
			`hot\s+take`,
			`unpopular\s+opinion`,
			`i\s+think`,
			`imo`,
			`my\s+take`,
			`controversial`,
			`change\s+my\s+mind`,
		}},
		{Shape: models.ShapeNewsUpdate, Patterns: []string{
			`breaking`,
			`just\s+in`,
			`announced`,
			`officially`,
			`confirmed`,
			`report:`,
			`update:`,
		}},
		{Shape: models.ShapeThreadContent, Patterns: []string{
			`thread`,
			`\d+/`,
			`a\s+thread`,
			`\(thread\)`,
			`1/`,
		}},
	}
}

// compiledShapeRule pairs a shape with its compiled patterns.
type compiledShapeRule struct {
	shape    models.ContentShape
	patterns []*regexp.Regexp
}

// ShapeClassifier is the ordered regex cascade that assigns a content shape
// to bookmark text. Classification is pure and total: every input yields a
// shape, degenerate inputs included.
type ShapeClassifier struct {
	rules []compiledShapeRule
}

// NewShapeClassifier compiles the given rule table, preserving order.
func NewShapeClassifier(rules []models.ShapeRule) (*ShapeClassifier, error) {
	compiled := make([]compiledShapeRule, 0, len(rules))
	for _, r := range rules {
		cr := compiledShapeRule{shape: r.Shape}
		for _, p := range r.Patterns {
			re, err := regexp.Compile("(?i)" + p)
			if err != nil {
				return nil, fmt.Errorf("compiling shape %s pattern %q: %w", r.Shape, p, err)
			}
			cr.patterns = append(cr.patterns, re)
		}
		compiled = append(compiled, cr)
	}
	return &ShapeClassifier{rules: compiled}, nil
}

// Classify assigns a content shape. Video presence wins outright, bypassing
// text inspection. Otherwise the rule cascade is scanned in order and the
// first shape with any matching pattern wins. With no pattern match, a short
// text with an image is a screenshot, a text with a link is an article, and
// anything else is unknown.
func (c *ShapeClassifier) Classify(text string, hasVideo, hasImage, hasLink bool) models.ContentShape {
	if hasVideo {
		return models.ShapeVideoContent
	}

	lower := strings.ToLower(text)
	for _, rule := range c.rules {
		for _, re := range rule.patterns {
			if re.MatchString(lower) {
				return rule.shape
			}
		}
	}

	if hasImage && utf8.RuneCountInString(text) < shortTextThreshold {
		return models.ShapeScreenshotInfo
	}
	if hasLink {
		return models.ShapeArticleLink
	}
	return models.ShapeUnknown
}
