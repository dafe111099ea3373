package core

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/valter-silva-au/bookmark-brain/pkg/models"
)

// defaultTemplates returns the static prompt table, one entry per content
// shape except meme_humor, which deliberately resolves to the unknown
// template (see TemplateFor).
func defaultTemplates() map[models.ContentShape]models.PromptTemplate {
	return map[models.ContentShape]models.PromptTemplate{
		models.ShapeArticleLink: {
			Shape: models.ShapeArticleLink,
			UserTemplate: "This tweet links to an article or blog post.\n\n" +
				"Tweet: {tweet_text}\n{link_content}\n\n" +
				"TASK: Extract the KEY INFORMATION from this article that the user wanted to save.\n" +
				"Provide:\n" +
				"1. **Main Thesis**: What is the article arguing or explaining? (1-2 sentences)\n" +
				"2. **Key Points**: The 3-5 most important takeaways (bullet points)\n" +
				"3. **Practical Value**: What can the reader DO with this information?\n" +
				"4. **Notable Quotes**: Any particularly insightful quotes worth saving\n\n" +
				"Be specific and extract REAL INFORMATION, not vague descriptions.",
			SystemPrompt:     "You are an expert at extracting key information from articles. Focus on actionable insights and specific details.",
			OutputDescriptor: "Main thesis, key points, practical applications, notable quotes",
		},
		models.ShapeTopList: {
			Shape: models.ShapeTopList,
			UserTemplate: "This tweet contains or links to a list/ranking.\n\n" +
				"Tweet: {tweet_text}\n{link_content}\n{image_analysis}\n\n" +
				"TASK: Extract THE COMPLETE LIST with details.\n" +
				"Provide:\n" +
				"1. **List Title**: What is being ranked/listed?\n" +
				"2. **Full List**: Every item with brief explanation (numbered)\n" +
				"3. **Source/Author**: Who created this ranking?\n" +
				"4. **Key Insight**: What's the most surprising or valuable item?\n\n" +
				"The user saved this to reference the list later - GIVE THEM THE LIST.",
			SystemPrompt:     "You are an expert at extracting and organizing lists. Extract every item with relevant details.",
			OutputDescriptor: "Complete numbered list with descriptions",
		},
		models.ShapeTutorialGuide: {
			Shape: models.ShapeTutorialGuide,
			UserTemplate: "This tweet contains a tutorial, guide, or best practices.\n\n" +
				"Tweet: {tweet_text}\n{link_content}\n{image_analysis}\n\n" +
				"TASK: Extract ACTIONABLE STEPS the user can follow.\n" +
				"Provide:\n" +
				"1. **Goal**: What does this guide help you achieve?\n" +
				"2. **Prerequisites**: What do you need before starting?\n" +
				"3. **Steps**: Numbered, actionable steps (be specific!)\n" +
				"4. **Key Tips**: Important warnings or pro tips\n" +
				"5. **Example**: A concrete example if available\n\n" +
				"The user saved this to learn HOW TO DO something - TEACH THEM.",
			SystemPrompt:     "You are a technical educator. Extract clear, actionable instructions that someone can follow.",
			OutputDescriptor: "Step-by-step guide with clear instructions",
		},
		models.ShapeToolAnnouncement: {
			Shape: models.ShapeToolAnnouncement,
			UserTemplate: "This tweet announces or discusses a tool/library/product.\n\n" +
				"Tweet: {tweet_text}\n{link_content}\n{image_analysis}\n\n" +
				"TASK: Extract PRACTICAL INFORMATION about this tool.\n" +
				"Provide:\n" +
				"1. **What It Is**: One-sentence description\n" +
				"2. **Problem It Solves**: Why would someone use this?\n" +
				"3. **Key Features**: Main capabilities (bullet points)\n" +
				"4. **Installation**: How to get started (command or link)\n" +
				"5. **When to Use**: Specific use cases\n\n" +
				"The user saved this to potentially USE this tool - HELP THEM GET STARTED.",
			SystemPrompt:     "You are a developer advocate. Explain tools in practical, actionable terms.",
			OutputDescriptor: "Tool overview with installation and use cases",
		},
		models.ShapeCodeSnippet: {
			Shape: models.ShapeCodeSnippet,
			UserTemplate: "This tweet contains code, prompts, or technical snippets.\n\n" +
				"Tweet: {tweet_text}\n{link_content}\n{image_analysis}\n\n" +
				"TASK: Extract the COMPLETE CODE/PROMPT that the user wanted to save.\n" +
				"Provide:\n" +
				"1. **Purpose**: What does this code/prompt do?\n" +
				"2. **Full Code/Prompt**: The complete, copy-pasteable content (in code block)\n" +
				"3. **How to Use**: Instructions for using it\n" +
				"4. **Customization**: What parts can/should be modified?\n\n" +
				"The user saved this to USE THIS CODE/PROMPT LATER - GIVE IT TO THEM COMPLETE.",
			SystemPrompt:     "You are a code expert. Extract and format code/prompts for easy copy-pasting.",
			OutputDescriptor: "Complete code/prompt with usage instructions",
		},
		models.ShapeOpinionTake: {
			Shape: models.ShapeOpinionTake,
			UserTemplate: "This tweet expresses an opinion or perspective.\n\n" +
				"Tweet: {tweet_text}\nAuthor: @{author}\nEngagement: {likes} likes\n\n" +
				"TASK: Capture the ESSENCE of this perspective.\n" +
				"Provide:\n" +
				"1. **The Take**: What is the author arguing? (1-2 sentences)\n" +
				"2. **Supporting Points**: How do they support their argument?\n" +
				"3. **Why It Matters**: Why might this perspective be valuable?\n" +
				"4. **Counter-View**: What's the opposing perspective?\n\n" +
				"The user saved this opinion for a reason - CAPTURE THE INSIGHT.",
			SystemPrompt:     "You are a critical thinker. Capture opinions clearly while noting different perspectives.",
			OutputDescriptor: "Clear summary of the opinion with context",
		},
		models.ShapeNewsUpdate: {
			Shape: models.ShapeNewsUpdate,
			UserTemplate: "This tweet contains news or an announcement.\n\n" +
				"Tweet: {tweet_text}\n{link_content}\n\n" +
				"TASK: Extract the NEWS FACTS.\n" +
				"Provide:\n" +
				"1. **What Happened**: The key news in 1-2 sentences\n" +
				"2. **Who/What**: Key entities involved\n" +
				"3. **When**: When did this happen?\n" +
				"4. **Impact**: Why does this matter? Who does it affect?\n" +
				"5. **Source**: Where is this information from?\n\n" +
				"The user saved this news - GIVE THEM THE FACTS.",
			SystemPrompt:     "You are a journalist. Extract facts clearly and accurately.",
			OutputDescriptor: "News summary with key facts and impact",
		},
		models.ShapeThreadContent: {
			Shape: models.ShapeThreadContent,
			UserTemplate: "This tweet is part of a longer thread.\n\n" +
				"Tweet: {tweet_text}\n{link_content}\n\n" +
				"TASK: Extract the THREAD'S FULL ARGUMENT, not just this tweet.\n" +
				"Provide:\n" +
				"1. **Thread Topic**: What is the thread about?\n" +
				"2. **Key Points**: The main points in thread order (numbered)\n" +
				"3. **Conclusion**: Where does the author land?\n" +
				"4. **Worth Reading?**: Is the full thread worth opening?\n\n" +
				"The user saved this to revisit the whole thread - SUMMARIZE IT END TO END.",
			SystemPrompt:     "You are an expert at condensing long-form social threads. Preserve the author's structure and intent.",
			OutputDescriptor: "Ordered thread summary with conclusion",
		},
		models.ShapeVideoContent: {
			Shape: models.ShapeVideoContent,
			UserTemplate: "This tweet contains a video.\n\n" +
				"Tweet: {tweet_text}\n{video_analysis}\n\n" +
				"TASK: Extract KEY INFORMATION from the video content.\n" +
				"Provide:\n" +
				"1. **Video Summary**: What happens in the video? (2-3 sentences)\n" +
				"2. **Key Moments**: Important points or demonstrations shown\n" +
				"3. **Main Takeaway**: What should the viewer remember?\n" +
				"4. **Action Items**: What can someone do after watching?\n\n" +
				"The user saved this video for a reason - CAPTURE WHY IT'S VALUABLE.",
			SystemPrompt:     "You are an expert at video analysis. Extract the essential information someone would want to remember.",
			OutputDescriptor: "Video summary with key moments and takeaways",
		},
		models.ShapeScreenshotInfo: {
			Shape: models.ShapeScreenshotInfo,
			UserTemplate: "This tweet contains screenshot(s) with information.\n\n" +
				"Tweet: {tweet_text}\n{image_analysis}\n\n" +
				"TASK: Extract ALL VISIBLE TEXT AND INFORMATION from the screenshot(s).\n" +
				"Provide:\n" +
				"1. **What It Shows**: What is in the screenshot?\n" +
				"2. **Text Content**: Transcribe any visible text\n" +
				"3. **Key Information**: What's the important data or insight?\n" +
				"4. **Context**: How does the tweet text relate to the screenshot?\n\n" +
				"The user saved this for the INFORMATION IN THE IMAGE - EXTRACT IT ALL.",
			SystemPrompt:     "You are an OCR and image analysis expert. Extract every piece of useful text and information from images.",
			OutputDescriptor: "Complete transcription of visible text and information",
		},
		models.ShapeUnknown: {
			Shape: models.ShapeUnknown,
			UserTemplate: "Analyze this tweet and extract maximum value.\n\n" +
				"Tweet: {tweet_text}\nAuthor: @{author}\n{link_content}\n{image_analysis}\n\n" +
				"TASK: Determine WHY the user might have saved this and extract that value.\n" +
				"Consider:\n" +
				"- Is there information to extract (lists, steps, code)?\n" +
				"- Is there a link with valuable content?\n" +
				"- Is there an image with information?\n" +
				"- Is it an insight or perspective worth remembering?\n\n" +
				"Provide the most USEFUL summary based on what this tweet contains.",
			SystemPrompt:     "You are an expert at extracting value from content. Focus on actionable, specific information.",
			OutputDescriptor: "Comprehensive analysis based on content type",
		},
	}
}

// PromptEngine selects and fills summarization prompts for bookmark content.
// The template table is immutable after construction.
type PromptEngine struct {
	classifier *ShapeClassifier
	templates  map[models.ContentShape]models.PromptTemplate
}

// NewPromptEngine creates a PromptEngine using the given classifier and the
// built-in template table.
func NewPromptEngine(classifier *ShapeClassifier) *PromptEngine {
	return &PromptEngine{
		classifier: classifier,
		templates:  defaultTemplates(),
	}
}

// TemplateFor returns the template for a shape. meme_humor has no template
// of its own and always resolves to the unknown template; so does any shape
// missing from the table.
func (e *PromptEngine) TemplateFor(shape models.ContentShape) models.PromptTemplate {
	if shape == models.ShapeMemeHumor {
		return e.templates[models.ShapeUnknown]
	}
	if t, ok := e.templates[shape]; ok {
		return t
	}
	return e.templates[models.ShapeUnknown]
}

// Build classifies the input, selects the matching template, and fills its
// placeholders, returning the detected shape and the filled user and system
// prompts. Optional fragments (link content, image analysis, video analysis)
// are wrapped in labeled delimiter blocks when supplied and substituted with
// empty strings otherwise; no placeholder token is ever left dangling.
func (e *PromptEngine) Build(in models.PromptInput) (shape models.ContentShape, userPrompt, systemPrompt string) {
	shape = e.classifier.Classify(in.Text, in.HasVideo, in.HasImage, in.HasLink)
	userPrompt, systemPrompt = e.BuildFor(shape, in)
	return shape, userPrompt, systemPrompt
}

// BuildFor fills the template for an already-classified shape.
func (e *PromptEngine) BuildFor(shape models.ContentShape, in models.PromptInput) (userPrompt, systemPrompt string) {
	tmpl := e.TemplateFor(shape)

	author := in.Author
	if author == "" {
		author = "unknown"
	}

	r := strings.NewReplacer(
		"{tweet_text}", in.Text,
		"{author}", author,
		"{likes}", strconv.Itoa(in.Likes),
		"{link_content}", wrapFragment("Linked Content", in.LinkContent),
		"{image_analysis}", wrapFragment("Image Content", in.ImageAnalysis),
		"{video_analysis}", wrapFragment("Video Content", in.VideoAnalysis),
	)
	return r.Replace(tmpl.UserTemplate), tmpl.SystemPrompt
}

// wrapFragment wraps a pre-fetched content fragment in a labeled delimiter
// block, or returns "" when the fragment is absent.
func wrapFragment(label, content string) string {
	if content == "" {
		return ""
	}
	return fmt.Sprintf("\n---\n%s:\n%s\n---", label, content)
}
