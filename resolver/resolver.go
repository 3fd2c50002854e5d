// Package resolver implements option resolution over a section.Store.
//
// A lookup combines two hierarchies: the section scope (the section, its
// declared ancestors, then the default scopes) and the profile chain (the
// active profile, most specific first). Resolver.Candidates lays both out as a
// single ordered list of (scope, key) probes. Resolver.Get walks that list,
// consulting call-scoped overrides before the store at every probe.
//
// The default order is section first: every profile-scoped key of a section,
// then its bare key, before moving on to the next ancestor. ProfileFirst flips
// the loops so the most specific profile is searched across the whole scope
// before the profile is relaxed. The bare keys then follow in scope order.
package resolver

import (
	"errors"
	"fmt"
	"log/slog"
	"slices"
	"strings"

	"github.com/0xalexb/cfgchain/profile"
	"github.com/0xalexb/cfgchain/section"
)

// ErrNoOption is returned when no candidate key matched and no fallback was given.
var ErrNoOption = errors.New("no option")

// Source tells where a resolved value came from.
type Source string

const (
	// SourceOverride marks a value taken from the call overrides.
	SourceOverride Source = "override"
	// SourceStore marks a value read from a section.
	SourceStore Source = "store"
	// SourceFallback marks the caller-supplied fallback.
	SourceFallback Source = "fallback"
)

// Request carries the per-call resolution context.
type Request struct {
	// Profile is the profile identifier to expand. Empty means no profile.
	Profile string
	// Overrides maps raw keys, bare or profile-scoped, to values that win over
	// the store for the same candidate key.
	Overrides map[string]string
	// Fallback is returned when nothing matches.
	Fallback *string
	// ProfileFirst searches each profile token across the whole scope before
	// relaxing the profile.
	ProfileFirst bool
	// ExpandedChain expands the profile with ChainPlus instead of Chain.
	ExpandedChain bool
	// ConfigIndependent lets a scope's bare key match right after the first
	// profile-scoped key of that scope.
	ConfigIndependent bool
}

// Probe carries the context of an existence check.
type Probe struct {
	Profile       string
	ExpandedChain bool
	// Strict restricts the check to the section itself.
	Strict bool
	// ConfigIndependent counts any entry naming the option, whatever its profile.
	ConfigIndependent bool
	// IncludeDefaults adds the default scopes to a non-strict check.
	IncludeDefaults bool
}

// Candidate is one (scope, key) probe of a lookup.
type Candidate struct {
	Scope *section.Section
	Key   section.Key
}

// Resolution is the outcome of a successful lookup.
type Resolution struct {
	Value  Value
	Key    section.Key
	Scope  string
	Source Source
}

// Item is a raw key/value pair produced by Items.
type Item struct {
	Key   string
	Value string
}

// Option configures a Resolver.
type Option func(*Resolver)

// WithProfileSeparator sets the separator between profile tokens.
func WithProfileSeparator(separator string) Option {
	return func(r *Resolver) {
		r.expander = profile.NewExpander(separator)
	}
}

// WithListDelimiter sets the delimiter splitting list values. An empty
// delimiter disables splitting.
func WithListDelimiter(delimiter string) Option {
	return func(r *Resolver) {
		r.delimiter = delimiter
	}
}

// WithLogger sets the logger receiving resolution events.
func WithLogger(logger *slog.Logger) Option {
	return func(r *Resolver) {
		if logger != nil {
			r.logger = logger
		}
	}
}

// Resolver resolves options against a Store. It holds no profile state of its
// own; every call carries its context.
type Resolver struct {
	store     *section.Store
	hierarchy *section.Hierarchy
	expander  profile.Expander
	delimiter string
	logger    *slog.Logger
}

// New returns a Resolver reading from store.
func New(store *section.Store, opts ...Option) *Resolver {
	resolver := &Resolver{
		store:     store,
		hierarchy: section.NewHierarchy(store),
		expander:  profile.NewExpander(profile.DefaultSeparator),
		delimiter: DefaultListDelimiter,
		logger:    slog.New(slog.DiscardHandler),
	}

	for _, apply := range opts {
		if apply != nil {
			apply(resolver)
		}
	}

	return resolver
}

// Hierarchy returns the section hierarchy used by the resolver.
func (r *Resolver) Hierarchy() *section.Hierarchy {
	return r.hierarchy
}

// Expander returns the profile expander used by the resolver.
func (r *Resolver) Expander() profile.Expander {
	return r.expander
}

// Chain expands id the way a lookup would.
func (r *Resolver) Chain(id string, expanded bool) []string {
	if expanded {
		return r.expander.ChainPlus(id)
	}

	return r.expander.Chain(id)
}

// Candidates returns the ordered probes tried when resolving option in the
// named section.
func (r *Resolver) Candidates(name, option string, req Request) ([]Candidate, error) {
	scope, err := r.hierarchy.LookupScope(name, false, true)
	if err != nil {
		return nil, err
	}

	chain := r.profileTokens(option, req.Profile, req.ExpandedChain)

	return buildCandidates(scope, r.store.NormalizeOption(option), chain, req.ProfileFirst, req.ConfigIndependent), nil
}

// Resolve finds the value of option in the named section. An unknown section
// fails with section.ErrNoSection even when a fallback is given.
func (r *Resolver) Resolve(name, option string, req Request) (Resolution, error) {
	candidates, err := r.Candidates(name, option, req)
	if err != nil {
		r.logger.Debug("option lookup failed", slog.String("section", name), slog.String("option", option), slog.Any("error", err))

		return Resolution{}, err
	}

	overrides := r.normalizeOverrides(req.Overrides)

	for _, candidate := range candidates {
		if raw, ok := overrides[candidate.Key]; ok {
			return r.resolved(name, option, Resolution{
				Value:  NewValue(raw, r.delimiter),
				Key:    candidate.Key,
				Scope:  candidate.Scope.FullName(),
				Source: SourceOverride,
			}), nil
		}

		if raw, ok := candidate.Scope.Lookup(candidate.Key); ok {
			return r.resolved(name, option, Resolution{
				Value:  NewValue(raw, r.delimiter),
				Key:    candidate.Key,
				Scope:  candidate.Scope.FullName(),
				Source: SourceStore,
			}), nil
		}
	}

	if req.Fallback != nil {
		return r.resolved(name, option, Resolution{
			Value:  NewValue(*req.Fallback, r.delimiter),
			Key:    section.Bare(r.store.NormalizeOption(option)),
			Scope:  "",
			Source: SourceFallback,
		}), nil
	}

	r.logger.Debug("option not found",
		slog.String("section", name),
		slog.String("option", option),
		slog.String("profile", req.Profile),
		slog.Int("candidates", len(candidates)),
	)

	return Resolution{}, fmt.Errorf("%w: %q in section %q", ErrNoOption, option, name)
}

// Get resolves option in the named section and returns its value.
func (r *Resolver) Get(name, option string, req Request) (Value, error) {
	resolution, err := r.Resolve(name, option, req)
	if err != nil {
		return Value{}, err
	}

	return resolution.Value, nil
}

// HasOption reports whether option can be found in the named section under
// probe. It never fails; an unknown section reports false.
func (r *Resolver) HasOption(name, option string, probe Probe) bool {
	scope, err := r.hierarchy.LookupScope(name, probe.Strict, probe.IncludeDefaults)
	if err != nil {
		return false
	}

	chain := r.profileTokens(option, probe.Profile, probe.ExpandedChain)
	option = r.store.NormalizeOption(option)

	if probe.ConfigIndependent {
		return slices.ContainsFunc(scope, func(sect *section.Section) bool {
			return sect.HasOption(option)
		})
	}

	keys := make([]section.Key, 0, len(chain)+1)

	for _, token := range chain {
		keys = append(keys, section.Scoped(option, token))
	}

	keys = append(keys, section.Bare(option))

	for _, sect := range scope {
		for _, key := range keys {
			if _, ok := sect.Lookup(key); ok {
				return true
			}
		}
	}

	return false
}

// Options lists the raw keys of every scope of the named section, in scope
// order and without deduplication. A strict listing covers the section alone
// unless defaults is set, which appends the default scopes.
func (r *Resolver) Options(name string, strict, defaults bool) ([]string, error) {
	items, err := r.enumerate(name, strict, defaults)
	if err != nil {
		return nil, err
	}

	keys := make([]string, len(items))
	for i, item := range items {
		keys[i] = item.Key
	}

	return keys, nil
}

// Items lists the raw key/value pairs in the same order as Options, each value
// read from the scope the key was found in. Overrides are appended afterwards,
// keys normalized and sorted.
func (r *Resolver) Items(name string, overrides map[string]string, strict, defaults bool) ([]Item, error) {
	items, err := r.enumerate(name, strict, defaults)
	if err != nil {
		return nil, err
	}

	extra := make([]Item, 0, len(overrides))
	for raw, value := range overrides {
		extra = append(extra, Item{Key: r.store.NormalizeKey(raw).String(), Value: value})
	}

	slices.SortFunc(extra, func(a, b Item) int {
		return strings.Compare(a.Key, b.Key)
	})

	return append(items, extra...), nil
}

func (r *Resolver) enumerate(name string, strict, defaults bool) ([]Item, error) {
	scope, err := r.hierarchy.LookupScope(name, strict, true)
	if err != nil {
		return nil, err
	}

	if strict && defaults && name != r.store.DefaultName() {
		scope = append(scope, r.store.Default(), r.store.Fallback())
	}

	var items []Item

	for _, sect := range scope {
		for _, entry := range sect.Entries() {
			items = append(items, Item{Key: entry.Key.String(), Value: entry.Value})
		}
	}

	return items, nil
}

// profileTokens expands id and runs each token through the same
// normalization as a stored "option[token]" key, so profile "Prod" finds
// an entry written as "host[Prod]".
func (r *Resolver) profileTokens(option, id string, expanded bool) []string {
	chain := r.Chain(id, expanded)
	for i, token := range chain {
		chain[i] = r.store.NormalizeKey(section.Scoped(option, token).String()).Profile
	}

	return chain
}

func (r *Resolver) normalizeOverrides(overrides map[string]string) map[section.Key]string {
	if len(overrides) == 0 {
		return nil
	}

	out := make(map[section.Key]string, len(overrides))
	for raw, value := range overrides {
		out[r.store.NormalizeKey(raw)] = value
	}

	return out
}

func (r *Resolver) resolved(name, option string, resolution Resolution) Resolution {
	r.logger.Debug("option resolved",
		slog.String("section", name),
		slog.String("option", option),
		slog.String("key", resolution.Key.String()),
		slog.String("scope", resolution.Scope),
		slog.String("source", string(resolution.Source)),
	)

	return resolution
}
