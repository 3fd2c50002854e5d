package section

import "strings"

// Entry is a single key/value pair stored in a section.
type Entry struct {
	Key   Key
	Value string
}

// Section is an ordered set of entries with an explicit ancestor list.
type Section struct {
	name      string
	ancestors []string
	separator string
	entries   []Entry
	index     map[Key]int
}

func newSection(name string, ancestors []string, separator string) *Section {
	return &Section{
		name:      name,
		ancestors: append([]string(nil), ancestors...),
		separator: separator,
		entries:   nil,
		index:     make(map[Key]int),
	}
}

// Name returns the short name of the section.
func (s *Section) Name() string {
	return s.name
}

// Ancestors returns the declared ancestor short names, nearest first.
func (s *Section) Ancestors() []string {
	return append([]string(nil), s.ancestors...)
}

// FullName returns the short name followed by the ancestors, joined by the
// store's section separator.
func (s *Section) FullName() string {
	if len(s.ancestors) == 0 {
		return s.name
	}

	return s.name + s.separator + strings.Join(s.ancestors, s.separator)
}

// Len returns the number of entries.
func (s *Section) Len() int {
	return len(s.entries)
}

// Entries returns a copy of the entries in insertion order.
func (s *Section) Entries() []Entry {
	return append([]Entry(nil), s.entries...)
}

// Keys returns the entry keys in insertion order.
func (s *Section) Keys() []Key {
	keys := make([]Key, len(s.entries))
	for i, entry := range s.entries {
		keys[i] = entry.Key
	}

	return keys
}

// Lookup returns the value stored under key.
func (s *Section) Lookup(key Key) (string, bool) {
	i, ok := s.index[key]
	if !ok {
		return "", false
	}

	return s.entries[i].Value, true
}

// HasOption reports whether any entry, bare or scoped, names option.
func (s *Section) HasOption(option string) bool {
	for _, entry := range s.entries {
		if entry.Key.Option == option {
			return true
		}
	}

	return false
}

// Set stores value under key. An existing key keeps its position.
// The key is stored as given; Store.Set applies key normalisation.
func (s *Section) Set(key Key, value string) {
	if i, ok := s.index[key]; ok {
		s.entries[i].Value = value

		return
	}

	s.index[key] = len(s.entries)
	s.entries = append(s.entries, Entry{Key: key, Value: value})
}

// Remove deletes key and reports whether it was present.
func (s *Section) Remove(key Key) bool {
	i, ok := s.index[key]
	if !ok {
		return false
	}

	s.entries = append(s.entries[:i], s.entries[i+1:]...)
	delete(s.index, key)

	for j := i; j < len(s.entries); j++ {
		s.index[s.entries[j].Key] = j
	}

	return true
}
