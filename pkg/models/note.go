package models

// Field is a single frontmatter entry. Exactly one of Value or List is
// populated: scalar fields carry Value, list fields carry List.
type Field struct {
	Key   string
	Value string
	List  []string
}

// IsList reports whether the field holds a list value.
func (f Field) IsList() bool {
	return f.List != nil
}

// Note is a parsed bookmark document: an ordered frontmatter field block
// plus the remaining body text. Raw preserves the original file content.
// A note without a valid frontmatter block has no fields and the entire
// content as Body.
type Note struct {
	Fields []Field
	Body   string
	Raw    string
}

// Field returns the value of the first scalar field with the given key,
// and whether it was found.
func (n *Note) Field(key string) (string, bool) {
	for _, f := range n.Fields {
		if f.Key == key && !f.IsList() {
			return f.Value, true
		}
	}
	return "", false
}

// FieldOr returns the value of the named scalar field, or fallback when the
// field is absent.
func (n *Note) FieldOr(key, fallback string) string {
	if v, ok := n.Field(key); ok {
		return v
	}
	return fallback
}
