package cfgchain

import (
	"errors"
	"fmt"
)

// SectionView is a read-only view of one section. Lookups use the Parser's
// active profile at the time of the call, section first.
type SectionView struct {
	parser *Parser
	name   string
}

// Name returns the short name of the section.
func (v *SectionView) Name() string {
	return v.name
}

// Get returns the value of key. Missing sections and keys both yield
// ErrKeyNotFound.
func (v *SectionView) Get(key string) (Value, error) {
	value, err := v.parser.Get(v.name, key)
	if errors.Is(err, ErrNoOption) || errors.Is(err, ErrNoSection) {
		return Value{}, fmt.Errorf("%w: %q in section %q: %w", ErrKeyNotFound, key, v.name, err)
	}

	return value, err
}

// Lookup returns the value of key and whether it was found.
func (v *SectionView) Lookup(key string) (Value, bool) {
	value, err := v.parser.Get(v.name, key)

	return value, err == nil
}

// Keys returns the distinct raw keys visible from the section, first
// occurrence first.
func (v *SectionView) Keys() ([]string, error) {
	options, err := v.parser.Options(v.name)
	if err != nil {
		return nil, fmt.Errorf("%w: section %q: %w", ErrKeyNotFound, v.name, err)
	}

	seen := make(map[string]struct{}, len(options))
	keys := make([]string, 0, len(options))

	for _, option := range options {
		if _, ok := seen[option]; ok {
			continue
		}

		seen[option] = struct{}{}
		keys = append(keys, option)
	}

	return keys, nil
}
