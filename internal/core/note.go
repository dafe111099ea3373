package core

import (
	"strings"

	"github.com/valter-silva-au/bookmark-brain/pkg/models"
)

// ParseNote splits note content into an ordered frontmatter field block and
// a body. Content that does not start with the "---" marker, or that closes
// the block with fewer than two markers, is treated as having no fields and
// the entire content as body. Parsing never fails.
func ParseNote(content string) *models.Note {
	note := &models.Note{Body: content, Raw: content}

	if !strings.HasPrefix(content, "---") {
		return note
	}
	parts := strings.SplitN(content, "---", 3)
	if len(parts) < 3 {
		return note
	}

	note.Fields = parseFields(parts[1])
	note.Body = parts[2]
	return note
}

// parseFields reads the frontmatter block line by line. Scalar fields are
// "key: value" (surrounding quotes stripped); a bare "key:" opens a list
// collected from subsequent "  - item" lines. Malformed lines are skipped.
func parseFields(block string) []models.Field {
	var fields []models.Field

	var listKey string
	var listItems []string
	flushList := func() {
		if listKey == "" {
			return
		}
		fields = append(fields, models.Field{Key: listKey, List: listItems})
		listKey = ""
		listItems = nil
	}

	for _, line := range strings.Split(strings.TrimSpace(block), "\n") {
		if strings.HasPrefix(line, "  - ") {
			if listKey != "" {
				listItems = append(listItems, strings.TrimSpace(line[4:]))
			}
			continue
		}
		flushList()

		if key, val, ok := strings.Cut(line, ": "); ok {
			val = strings.Trim(strings.Trim(strings.TrimSpace(val), `"`), `'`)
			if val == "" {
				continue
			}
			fields = append(fields, models.Field{Key: strings.TrimSpace(key), Value: val})
			continue
		}
		if trimmed := strings.TrimSpace(line); strings.HasSuffix(trimmed, ":") {
			listKey = strings.TrimSuffix(trimmed, ":")
			listItems = []string{}
		}
	}
	flushList()

	return fields
}
