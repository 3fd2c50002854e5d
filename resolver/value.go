package resolver

import "strings"

// DefaultListDelimiter separates the items of a list value.
const DefaultListDelimiter = ";"

// Value is a resolved raw value. A raw string containing the list delimiter
// is a list of trimmed items; anything else is a scalar.
type Value struct {
	raw   string
	items []string
}

// NewValue post-processes raw using delimiter. An empty delimiter disables
// list splitting.
func NewValue(raw, delimiter string) Value {
	if delimiter == "" || !strings.Contains(raw, delimiter) {
		return Value{raw: raw, items: nil}
	}

	parts := strings.Split(raw, delimiter)
	items := make([]string, len(parts))

	for i, part := range parts {
		items[i] = strings.TrimSpace(part)
	}

	return Value{raw: raw, items: items}
}

// String returns the raw value as stored.
func (v Value) String() string {
	return v.raw
}

// IsList reports whether the value was split into items.
func (v Value) IsList() bool {
	return v.items != nil
}

// List returns the list items, or the scalar as a single item.
func (v Value) List() []string {
	if v.items == nil {
		return []string{v.raw}
	}

	return append([]string(nil), v.items...)
}
