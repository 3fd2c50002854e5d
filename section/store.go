package section

import (
	"errors"
	"fmt"
	"slices"
	"strings"
)

const (
	// DefaultSeparator joins a section name to its ancestors in a full name.
	DefaultSeparator = ":"
	// DefaultName is the name of the section holding shared defaults.
	DefaultName = "DEFAULT"
)

// ErrNoSection is returned when a requested section does not exist.
var ErrNoSection = errors.New("no section")

// ErrDuplicateSection is returned when a short name is already taken by a
// section with a different ancestor list.
var ErrDuplicateSection = errors.New("duplicate section")

// ErrInvalidSectionName is returned for empty names, empty chain tokens and
// the reserved default section name.
var ErrInvalidSectionName = errors.New("invalid section name")

// ErrCyclicSection is returned when a section would inherit from itself,
// directly or through the ancestors of the sections it names.
var ErrCyclicSection = errors.New("section inherits from itself")

// StoreOption configures a Store.
type StoreOption func(*Store)

// WithSeparator sets the separator between a section name and its ancestors.
func WithSeparator(separator string) StoreOption {
	return func(s *Store) {
		if separator != "" {
			s.separator = separator
		}
	}
}

// WithDefaultName sets the name of the shared defaults section.
func WithDefaultName(name string) StoreOption {
	return func(s *Store) {
		if name != "" {
			s.defaultName = name
		}
	}
}

// WithKeyNormalizer sets the function applied to every raw key before it is
// stored or looked up. A nil normalizer leaves keys untouched.
func WithKeyNormalizer(normalize func(string) string) StoreOption {
	return func(s *Store) {
		s.normalize = normalize
	}
}

// Store holds sections in insertion order along with the default and
// fallback scopes.
type Store struct {
	separator   string
	defaultName string
	normalize   func(string) string
	order       []string
	sections    map[string]*Section
	defaults    *Section
	fallback    *Section
}

// NewStore creates an empty Store. Keys are lower-cased unless another
// normalizer is configured.
func NewStore(opts ...StoreOption) *Store {
	store := &Store{
		separator:   DefaultSeparator,
		defaultName: DefaultName,
		normalize:   strings.ToLower,
		order:       nil,
		sections:    make(map[string]*Section),
		defaults:    nil,
		fallback:    nil,
	}

	for _, apply := range opts {
		if apply != nil {
			apply(store)
		}
	}

	store.defaults = newSection(store.defaultName, nil, store.separator)
	store.fallback = newSection(store.defaultName, nil, store.separator)

	return store
}

// Separator returns the section separator.
func (s *Store) Separator() string {
	return s.separator
}

// DefaultName returns the name of the shared defaults section.
func (s *Store) DefaultName() string {
	return s.defaultName
}

// Default returns the defaults section read from configuration sources.
func (s *Store) Default() *Section {
	return s.defaults
}

// Fallback returns the defaults seeded at construction. It is consulted after
// Default.
func (s *Store) Fallback() *Section {
	return s.fallback
}

// NormalizeOption applies the key normalizer to an option name.
func (s *Store) NormalizeOption(option string) string {
	if s.normalize == nil {
		return option
	}

	return s.normalize(option)
}

// NormalizeKey normalizes raw and parses it into a Key.
func (s *Store) NormalizeKey(raw string) Key {
	return ParseKey(s.NormalizeOption(raw))
}

// SplitName splits a full section name into its short name and ancestors.
func (s *Store) SplitName(fullName string) (string, []string) {
	tokens := strings.Split(fullName, s.separator)

	return tokens[0], tokens[1:]
}

// AddSection parses fullName and adds the section it describes.
func (s *Store) AddSection(fullName string) (*Section, error) {
	name, ancestors := s.SplitName(fullName)

	return s.AddSectionWithAncestors(name, ancestors...)
}

// AddSectionWithAncestors adds a section with an explicit ancestor list,
// nearest ancestor first.
func (s *Store) AddSectionWithAncestors(name string, ancestors ...string) (*Section, error) {
	err := s.validate(name, ancestors)
	if err != nil {
		return nil, err
	}

	if _, exists := s.sections[name]; exists {
		return nil, fmt.Errorf("%w: %q", ErrDuplicateSection, name)
	}

	if via, ok := s.reaches(ancestors, name); ok {
		return nil, fmt.Errorf("%w: %q through %q", ErrCyclicSection, name, via)
	}

	sect := newSection(name, ancestors, s.separator)
	s.sections[name] = sect
	s.order = append(s.order, name)

	return sect, nil
}

// Merge returns the section described by fullName, adding it when missing.
// The default section name resolves to Default. A short name already bound
// to a different ancestor list is a duplicate.
func (s *Store) Merge(fullName string) (*Section, error) {
	if fullName == s.defaultName {
		return s.defaults, nil
	}

	name, ancestors := s.SplitName(fullName)

	existing, ok := s.sections[name]
	if !ok {
		return s.AddSectionWithAncestors(name, ancestors...)
	}

	if !slices.Equal(existing.ancestors, ancestors) {
		return nil, fmt.Errorf("%w: %q already declared as %q", ErrDuplicateSection, fullName, existing.FullName())
	}

	return existing, nil
}

// RemoveSection deletes the section with the given short name.
func (s *Store) RemoveSection(name string) bool {
	if _, ok := s.sections[name]; !ok {
		return false
	}

	delete(s.sections, name)
	s.order = slices.DeleteFunc(s.order, func(candidate string) bool {
		return candidate == name
	})

	return true
}

// Section returns the section with the given short name.
func (s *Store) Section(name string) (*Section, bool) {
	sect, ok := s.sections[name]

	return sect, ok
}

// Sections returns the sections in insertion order.
func (s *Store) Sections() []*Section {
	out := make([]*Section, len(s.order))
	for i, name := range s.order {
		out[i] = s.sections[name]
	}

	return out
}

// Names returns the short names of all sections in insertion order.
func (s *Store) Names() []string {
	return append([]string(nil), s.order...)
}

// Len returns the number of sections, not counting the default scopes.
func (s *Store) Len() int {
	return len(s.order)
}

// Set normalizes rawKey and stores value in the section with the given short
// name. The default section name targets Default.
func (s *Store) Set(name, rawKey, value string) error {
	sect, err := s.resolve(name)
	if err != nil {
		return err
	}

	sect.Set(s.NormalizeKey(rawKey), value)

	return nil
}

// RemoveOption normalizes rawKey and deletes it from the section with the
// given short name. The default section name targets Default.
func (s *Store) RemoveOption(name, rawKey string) (bool, error) {
	sect, err := s.resolve(name)
	if err != nil {
		return false, err
	}

	return sect.Remove(s.NormalizeKey(rawKey)), nil
}

// SetFallback normalizes rawKey and stores value among the fallback defaults.
func (s *Store) SetFallback(rawKey, value string) {
	s.fallback.Set(s.NormalizeKey(rawKey), value)
}

func (s *Store) resolve(name string) (*Section, error) {
	if name == s.defaultName {
		return s.defaults, nil
	}

	sect, ok := s.sections[name]
	if !ok {
		return nil, fmt.Errorf("%w: %q", ErrNoSection, name)
	}

	return sect, nil
}

func (s *Store) validate(name string, ancestors []string) error {
	if name == "" {
		return fmt.Errorf("%w: empty name", ErrInvalidSectionName)
	}

	if name == s.defaultName {
		return fmt.Errorf("%w: %q is reserved", ErrInvalidSectionName, name)
	}

	for _, ancestor := range ancestors {
		switch ancestor {
		case "":
			return fmt.Errorf("%w: empty ancestor in %q", ErrInvalidSectionName, name)
		case name:
			return fmt.Errorf("%w: %q", ErrCyclicSection, name)
		case s.defaultName:
			return fmt.Errorf("%w: %q cannot inherit from %q", ErrInvalidSectionName, name, s.defaultName)
		}
	}

	return nil
}

// reaches reports whether target is an ancestor, at any depth, of one of the
// named sections, and returns the section whose ancestor list names it.
// Sections not yet added have no ancestors.
func (s *Store) reaches(names []string, target string) (string, bool) {
	visited := make(map[string]struct{})
	stack := slices.Clone(names)

	for len(stack) > 0 {
		name := stack[len(stack)-1]
		stack = stack[:len(stack)-1]

		if _, ok := visited[name]; ok {
			continue
		}

		visited[name] = struct{}{}

		sect, ok := s.sections[name]
		if !ok {
			continue
		}

		if slices.Contains(sect.ancestors, target) {
			return name, true
		}

		stack = append(stack, sect.ancestors...)
	}

	return "", false
}
