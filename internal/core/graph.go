package core

import (
	"strings"

	"github.com/valter-silva-au/bookmark-brain/pkg/models"
)

// GraphBuilder derives graph metadata (hierarchical tags, wikilinks, and the
// curated-index pointer) from matched topics and the note author. It holds
// the immutable people alias table; all methods are pure.
type GraphBuilder struct {
	people map[string]string
}

// NewGraphBuilder creates a GraphBuilder with the given handle → display
// name alias table. Handles are expected normalized (lowercase, no "@").
func NewGraphBuilder(people map[string]string) *GraphBuilder {
	return &GraphBuilder{people: people}
}

// NormalizeHandle lowercases an author handle, strips a leading "@", and
// trims surrounding whitespace.
func NormalizeHandle(author string) string {
	return strings.TrimSpace(strings.TrimPrefix(strings.ToLower(author), "@"))
}

// BuildTags builds the hierarchical tag list for a note: the fixed source
// tag, the content-type tag, a person tag for the author (omitted when the
// normalized handle is empty), then one tag per matched topic in match
// order. The result never contains duplicates.
func (g *GraphBuilder) BuildTags(matched []models.Topic, contentType, author string) []string {
	tags := []string{sourceTag}

	ctTag, ok := contentTypeTags[contentType]
	if !ok {
		ctTag = defaultContentTypeTag
	}
	tags = appendUnique(tags, ctTag)

	if handle := NormalizeHandle(author); handle != "" {
		tags = appendUnique(tags, "person/"+handle)
	}

	for _, t := range matched {
		tags = appendUnique(tags, t.Tag)
	}
	return tags
}

// BuildLinks builds the wikilink display-name list for the Topics section:
// the author's alias display name first when the handle is known, then one
// name per matched topic in match order, skipping names already present.
func (g *GraphBuilder) BuildLinks(matched []models.Topic, author string) []string {
	var links []string

	if display, ok := g.people[NormalizeHandle(author)]; ok {
		links = append(links, display)
	}

	for _, t := range matched {
		links = appendUnique(links, t.Wikilink)
	}
	return links
}

// ResolveIndex returns the index target of the first matched topic (in match
// order) that declares one, or "" when no matched topic does. Priority is
// first-match in registration order, not most-specific-match.
func ResolveIndex(matched []models.Topic) string {
	for _, t := range matched {
		if t.IndexTarget != "" {
			return t.IndexTarget
		}
	}
	return ""
}

func appendUnique(list []string, s string) []string {
	for _, existing := range list {
		if existing == s {
			return list
		}
	}
	return append(list, s)
}
