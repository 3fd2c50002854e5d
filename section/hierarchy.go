package section

import "fmt"

// Hierarchy resolves short section names against a Store.
type Hierarchy struct {
	store *Store
}

// NewHierarchy returns a Hierarchy reading from store.
func NewHierarchy(store *Store) *Hierarchy {
	return &Hierarchy{store: store}
}

// FullName returns the chained name of the section whose short name is name.
func (h *Hierarchy) FullName(name string) (string, error) {
	sect, ok := h.store.Section(name)
	if !ok {
		return "", fmt.Errorf("%w: %q", ErrNoSection, name)
	}

	return sect.FullName(), nil
}

// Ancestors returns the full name of the section followed by each declared
// ancestor short name.
func (h *Hierarchy) Ancestors(name string) ([]string, error) {
	sect, ok := h.store.Section(name)
	if !ok {
		return nil, fmt.Errorf("%w: %q", ErrNoSection, name)
	}

	out := make([]string, 0, len(sect.ancestors)+1)
	out = append(out, sect.FullName())
	out = append(out, sect.ancestors...)

	return out, nil
}

// HasSection reports whether a section with short name name exists. When
// strict is set the section must also declare no ancestors.
func (h *Hierarchy) HasSection(name string, strict bool) bool {
	sect, ok := h.store.Section(name)
	if !ok {
		return false
	}

	return !strict || len(sect.ancestors) == 0
}

// LookupScope returns the sections searched for name, most specific first.
//
// A strict scope holds the section alone. Otherwise each ancestor is resolved
// as a short name in its own right (ancestors of ancestors are not followed)
// and, when includeDefault is set, the default and fallback scopes close the
// list. The default section name maps onto the default scopes themselves.
func (h *Hierarchy) LookupScope(name string, strict, includeDefault bool) ([]*Section, error) {
	if name == h.store.DefaultName() {
		scope := []*Section{h.store.Default()}
		if !strict && includeDefault {
			scope = append(scope, h.store.Fallback())
		}

		return scope, nil
	}

	sect, ok := h.store.Section(name)
	if !ok {
		return nil, fmt.Errorf("%w: %q", ErrNoSection, name)
	}

	if strict {
		return []*Section{sect}, nil
	}

	scope := make([]*Section, 0, len(sect.ancestors)+3)
	scope = append(scope, sect)

	for _, ancestorName := range sect.ancestors {
		ancestor, found := h.store.Section(ancestorName)
		if !found {
			return nil, fmt.Errorf("%w: %q (ancestor of %q)", ErrNoSection, ancestorName, name)
		}

		scope = append(scope, ancestor)
	}

	if includeDefault {
		scope = append(scope, h.store.Default(), h.store.Fallback())
	}

	return scope, nil
}
