package models

// PromptTemplate is a summarization prompt tailored to one content shape.
// UserTemplate carries named {placeholder} slots filled at build time.
type PromptTemplate struct {
	Shape            ContentShape
	UserTemplate     string
	SystemPrompt     string
	OutputDescriptor string
}

// PromptInput carries everything the prompt engine needs to classify a
// bookmark and fill its template. The three *Analysis/Content fields are
// optional pre-fetched fragments supplied by external collaborators; empty
// strings mean the fragment is unavailable.
type PromptInput struct {
	Text     string
	Author   string
	Likes    int
	HasVideo bool
	HasImage bool
	HasLink  bool

	LinkContent   string
	ImageAnalysis string
	VideoAnalysis string
}
