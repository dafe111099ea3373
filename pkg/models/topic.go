package models

// Topic is a single taxonomy entry in the topic registry. Topics are matched
// against note text by an ordered list of case-insensitive regex patterns and
// contribute a hierarchical tag, a wikilink display name, and optionally a
// curated-index target for the note's up: field.
type Topic struct {
	// ID uniquely identifies the topic within the registry.
	ID string `yaml:"id"`
	// Patterns are tested in order; the first hit matches the topic.
	Patterns []string `yaml:"patterns"`
	// Exclude patterns mark text spans where pattern occurrences do not
	// count. A pattern hit fully inside an excluded span is discarded;
	// hits elsewhere in the same text still match the topic. They replace
	// negative lookaheads, which RE2 cannot express.
	Exclude []string `yaml:"exclude,omitempty"`
	// Tag is the hierarchical tag emitted into frontmatter (e.g. "topic/rust").
	Tag string `yaml:"tag"`
	// Wikilink is the display name rendered as [[Wikilink]] in the Topics section.
	Wikilink string `yaml:"wikilink"`
	// IndexTarget, when set, names the curated index document this topic
	// rolls up to (e.g. "+Atlas/AI-Coding"). Empty means no index assignment.
	IndexTarget string `yaml:"index_target,omitempty"`
}

// RuleSet is the externally loadable form of the classification rule tables:
// the ordered topic registry, the known-people alias map, and the ordered
// content-shape categories. Zero-value sections fall back to built-in defaults.
type RuleSet struct {
	Topics []Topic           `yaml:"topics"`
	People map[string]string `yaml:"people"`
	Shapes []ShapeRule       `yaml:"shapes"`
}

// ShapeRule binds a content shape to its ordered detection patterns.
// Rule order in the slice is the cascade priority order.
type ShapeRule struct {
	Shape    ContentShape `yaml:"shape"`
	Patterns []string     `yaml:"patterns"`
}
