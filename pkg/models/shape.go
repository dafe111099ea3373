package models

// ContentShape is the fine-grained classification of a bookmark's textual
// and media nature, used to select a prompt template. It is distinct from
// the coarse content type (tweet/thread/video/link) carried in the note's
// type: field, which only selects a base tag.
type ContentShape string

const (
	ShapeArticleLink      ContentShape = "article_link"
	ShapeTopList          ContentShape = "top_list"
	ShapeTutorialGuide    ContentShape = "tutorial_guide"
	ShapeToolAnnouncement ContentShape = "tool_announcement"
	ShapeCodeSnippet      ContentShape = "code_snippet"
	ShapeOpinionTake      ContentShape = "opinion_take"
	ShapeNewsUpdate       ContentShape = "news_update"
	ShapeThreadContent    ContentShape = "thread_content"
	ShapeVideoContent     ContentShape = "video_content"
	ShapeScreenshotInfo   ContentShape = "screenshot_info"
	ShapeMemeHumor        ContentShape = "meme_humor"
	ShapeUnknown          ContentShape = "unknown"
)

// AllShapes lists every content shape in a fixed order, for exhaustive
// iteration in reports and tests.
var AllShapes = []ContentShape{
	ShapeArticleLink,
	ShapeTopList,
	ShapeTutorialGuide,
	ShapeToolAnnouncement,
	ShapeCodeSnippet,
	ShapeOpinionTake,
	ShapeNewsUpdate,
	ShapeThreadContent,
	ShapeVideoContent,
	ShapeScreenshotInfo,
	ShapeMemeHumor,
	ShapeUnknown,
}

// shapeDescriptions maps each shape to a human-readable description.
var shapeDescriptions = map[ContentShape]string{
	ShapeArticleLink:      "Bookmark links to an article or blog post",
	ShapeTopList:          "Bookmark contains or links to a list/ranking",
	ShapeTutorialGuide:    "Bookmark contains a how-to or guide",
	ShapeToolAnnouncement: "Bookmark announces a tool or library",
	ShapeCodeSnippet:      "Bookmark contains code or prompts",
	ShapeOpinionTake:      "Bookmark expresses an opinion",
	ShapeNewsUpdate:       "Bookmark contains news",
	ShapeThreadContent:    "Bookmark is part of a thread",
	ShapeVideoContent:     "Bookmark contains a video",
	ShapeScreenshotInfo:   "Bookmark contains screenshot with info",
	ShapeMemeHumor:        "Bookmark is humorous/meme content",
	ShapeUnknown:          "Content shape not detected",
}

// String returns the wire/YAML form of the shape.
func (s ContentShape) String() string {
	return string(s)
}

// Description returns a human-readable description of the shape. Unrecognized
// values fall back to the unknown description.
func (s ContentShape) Description() string {
	if d, ok := shapeDescriptions[s]; ok {
		return d
	}
	return shapeDescriptions[ShapeUnknown]
}
