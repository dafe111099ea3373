package core

import (
	"fmt"
	"regexp"
	"strings"

	"github.com/valter-silva-au/bookmark-brain/pkg/models"
)

// fixedFieldOrder is the frontmatter subset emitted first, in this order.
var fixedFieldOrder = []string{"title", "author", "source", "type"}

// quoteTriggers are the characters that force a frontmatter value into
// double quotes to keep the field block parseable.
const quoteTriggers = `:#"'[]{}`

// topicsHeading opens the auto-generated cross-reference section.
const topicsHeading = "\n## Topics\n"

// footerRe matches the trailing version-stamped processor footer.
var footerRe = regexp.MustCompile(`(?s)\n---\n\*Processed by bookmark-brain.*?\*\s*$`)

// Rewriter reconstructs a note with enriched frontmatter, a fresh Topics
// section, and a version-stamped footer. Rewrite is idempotent: rewriting
// its own output with the same inputs yields byte-identical text.
type Rewriter struct {
	version string
}

// NewRewriter creates a Rewriter stamping the given version into the footer.
func NewRewriter(version string) *Rewriter {
	return &Rewriter{version: version}
}

// Rewrite rebuilds the note text from its parsed form plus the computed
// graph metadata. The tag list fully replaces any prior tags field; prior
// auto-generated Topics sections and footers are stripped before fresh ones
// are appended, which is what makes the transform idempotent.
func (r *Rewriter) Rewrite(note *models.Note, tags, links []string, indexTarget string) string {
	lines := []string{"---"}

	for _, key := range fixedFieldOrder {
		if val, ok := note.Field(key); ok {
			lines = append(lines, formatField(key, val))
		}
	}

	if indexTarget != "" {
		lines = append(lines, fmt.Sprintf(`up: "[[%s]]"`, indexTarget))
	}

	lines = append(lines, "tags:")
	for _, tag := range tags {
		lines = append(lines, "  - "+tag)
	}

	for _, f := range note.Fields {
		if isFixedField(f.Key) || f.Key == "tags" || f.Key == "up" {
			continue
		}
		if f.IsList() {
			// Only the tag list the rewriter itself produces survives
			// as a list field.
			continue
		}
		lines = append(lines, formatField(f.Key, f.Value))
	}

	lines = append(lines, "---")

	body := stripTopicsSection(note.Body)
	body = footerRe.ReplaceAllString(body, "")

	var b strings.Builder
	b.WriteString(strings.Join(lines, "\n"))
	b.WriteString(strings.TrimRight(body, " \t\n"))

	if len(links) > 0 {
		refs := make([]string, len(links))
		for i, l := range links {
			refs[i] = "[[" + l + "]]"
		}
		b.WriteString("\n" + topicsHeading + "\n" + strings.Join(refs, " · ") + "\n")
	}

	fmt.Fprintf(&b, "\n\n---\n*Processed by bookmark-brain v%s*\n", r.version)
	return b.String()
}

func isFixedField(key string) bool {
	for _, k := range fixedFieldOrder {
		if key == k {
			return true
		}
	}
	return false
}

// formatField quotes the value when it contains punctuation that would
// break the field block format.
func formatField(key, val string) string {
	if strings.ContainsAny(val, quoteTriggers) {
		return fmt.Sprintf(`%s: "%s"`, key, val)
	}
	return fmt.Sprintf("%s: %s", key, val)
}

// stripTopicsSection removes every auto-generated "## Topics" section from
// the body: the heading and its content up to the next heading, the footer
// separator, or end of text. It tolerates zero, one, or multiple instances.
func stripTopicsSection(body string) string {
	for {
		start := strings.Index(body, topicsHeading)
		if start < 0 {
			return body
		}
		rest := body[start+len(topicsHeading):]

		end := len(rest)
		if i := strings.Index(rest, "\n## "); i >= 0 && i < end {
			end = i
		}
		if i := strings.Index(rest, "\n---\n"); i >= 0 && i < end {
			end = i
		}
		body = body[:start] + rest[end:]
	}
}
