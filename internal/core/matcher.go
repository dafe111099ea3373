// Package core contains the business logic for bookmark-brain: topic
// matching, graph metadata building, note rewriting, content-shape
// classification, and prompt template selection.
package core

import (
	"fmt"
	"regexp"
	"strings"

	"github.com/valter-silva-au/bookmark-brain/pkg/models"
)

// TopicMatcher classifies note text against the topic registry.
type TopicMatcher interface {
	// Match returns the topics whose patterns hit the given title+body,
	// in registry order. A topic is matched at most once; matching is
	// multi-label, so overlapping broad and narrow topics are all retained.
	Match(title, body string) []models.Topic
}

// compiledTopic pairs a registry entry with its compiled patterns.
type compiledTopic struct {
	topic    models.Topic
	patterns []*regexp.Regexp
	exclude  []*regexp.Regexp
}

type regexTopicMatcher struct {
	topics []compiledTopic
}

// NewTopicMatcher compiles the given registry into a TopicMatcher.
// Registry order is preserved and encodes match priority. Duplicate topic
// IDs and invalid patterns are construction errors, not match-time errors.
func NewTopicMatcher(topics []models.Topic) (TopicMatcher, error) {
	seen := make(map[string]struct{}, len(topics))
	compiled := make([]compiledTopic, 0, len(topics))

	for _, t := range topics {
		if t.ID == "" {
			return nil, fmt.Errorf("compiling topic registry: topic with empty ID")
		}
		if _, ok := seen[t.ID]; ok {
			return nil, fmt.Errorf("compiling topic registry: duplicate topic ID %q", t.ID)
		}
		seen[t.ID] = struct{}{}

		ct := compiledTopic{topic: t}
		for _, p := range t.Patterns {
			re, err := regexp.Compile("(?i)" + p)
			if err != nil {
				return nil, fmt.Errorf("compiling topic %s pattern %q: %w", t.ID, p, err)
			}
			ct.patterns = append(ct.patterns, re)
		}
		for _, p := range t.Exclude {
			re, err := regexp.Compile("(?i)" + p)
			if err != nil {
				return nil, fmt.Errorf("compiling topic %s exclude %q: %w", t.ID, p, err)
			}
			ct.exclude = append(ct.exclude, re)
		}
		compiled = append(compiled, ct)
	}

	return &regexTopicMatcher{topics: compiled}, nil
}

// Match normalizes title+body once, then scans the registry in order. A
// topic hits as soon as any of its patterns has a surviving occurrence, so
// result order is always registry order restricted to the matched subset.
func (m *regexTopicMatcher) Match(title, body string) []models.Topic {
	text := strings.ToLower(title + "\n" + body)

	var matched []models.Topic
	for _, ct := range m.topics {
		if ct.hits(text) {
			matched = append(matched, ct.topic)
		}
	}
	return matched
}

// hits reports whether any pattern occurrence survives the topic's exclude
// spans. Excludes emulate per-occurrence negative lookaheads: a pattern hit
// inside an excluded span is discarded, but hits elsewhere in the same text
// still count, and patterns that never fall inside a span are unaffected.
func (ct *compiledTopic) hits(text string) bool {
	if len(ct.exclude) == 0 {
		for _, re := range ct.patterns {
			if re.MatchString(text) {
				return true
			}
		}
		return false
	}

	var spans [][]int
	for _, re := range ct.exclude {
		spans = append(spans, re.FindAllStringIndex(text, -1)...)
	}
	for _, re := range ct.patterns {
		for _, loc := range re.FindAllStringIndex(text, -1) {
			if !insideAny(loc, spans) {
				return true
			}
		}
	}
	return false
}

func insideAny(loc []int, spans [][]int) bool {
	for _, span := range spans {
		if span[0] <= loc[0] && loc[1] <= span[1] {
			return true
		}
	}
	return false
}
