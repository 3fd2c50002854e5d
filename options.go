package cfgchain

import (
	"log/slog"
	"maps"
	"slices"

	"github.com/0xalexb/cfgchain/config"
	"github.com/0xalexb/cfgchain/profile"
	"github.com/0xalexb/cfgchain/resolver"
	"github.com/0xalexb/cfgchain/section"
)

// Options holds configuration settings for a Parser.
type Options struct {
	// Profile is the active profile identifier, e.g. "dev_plop".
	Profile string
	// ProfileSeparator splits profile identifiers. Defaults to "_".
	ProfileSeparator string
	// SectionSeparator splits full section names into name and ancestors.
	// Defaults to ":".
	SectionSeparator string
	// DefaultSectionName names the shared defaults section. Defaults to "DEFAULT".
	DefaultSectionName string
	// Defaults are seeded below the ingested default section, in order.
	Defaults []config.Entry
	// ListDelimiter splits list values. Empty disables splitting.
	ListDelimiter string
	// KeyNormalizer normalizes stored keys, option names and override keys.
	// Defaults to strings.ToLower.
	KeyNormalizer func(string) string
	Logger        *slog.Logger
	// Files are read by NewModule when the Parser is constructed.
	Files []string
}

// Option defines a function type for applying configuration options.
type Option func(*Options)

func defaultOptions() Options {
	return Options{
		Profile:            "",
		ProfileSeparator:   profile.DefaultSeparator,
		SectionSeparator:   section.DefaultSeparator,
		DefaultSectionName: section.DefaultName,
		Defaults:           nil,
		ListDelimiter:      resolver.DefaultListDelimiter,
		KeyNormalizer:      nil,
		Logger:             nil,
		Files:              nil,
	}
}

// WithProfile sets the active profile.
func WithProfile(id string) Option {
	return func(opts *Options) {
		opts.Profile = id
	}
}

// WithProfileSeparator sets the separator between profile tokens.
func WithProfileSeparator(separator string) Option {
	return func(opts *Options) {
		opts.ProfileSeparator = separator
	}
}

// WithSectionSeparator sets the separator between a section name and its ancestors.
func WithSectionSeparator(separator string) Option {
	return func(opts *Options) {
		opts.SectionSeparator = separator
	}
}

// WithDefaultSectionName renames the shared defaults section.
func WithDefaultSectionName(name string) Option {
	return func(opts *Options) {
		opts.DefaultSectionName = name
	}
}

// WithDefaults seeds defaults from a map. Keys are added in sorted order.
func WithDefaults(defaults map[string]string) Option {
	return func(opts *Options) {
		for _, key := range slices.Sorted(maps.Keys(defaults)) {
			opts.Defaults = append(opts.Defaults, config.Entry{Key: key, Value: defaults[key]})
		}
	}
}

// WithDefault seeds a single default. Raw keys may carry a profile, as in "key[dev]".
func WithDefault(key, value string) Option {
	return func(opts *Options) {
		opts.Defaults = append(opts.Defaults, config.Entry{Key: key, Value: value})
	}
}

// WithListDelimiter sets the delimiter splitting list values.
func WithListDelimiter(delimiter string) Option {
	return func(opts *Options) {
		opts.ListDelimiter = delimiter
	}
}

// WithKeyNormalizer replaces the key normalizer.
func WithKeyNormalizer(normalize func(string) string) Option {
	return func(opts *Options) {
		opts.KeyNormalizer = normalize
	}
}

// WithLogger sets the logger receiving ingestion and resolution events.
func WithLogger(logger *slog.Logger) Option {
	return func(opts *Options) {
		opts.Logger = logger
	}
}

// WithFiles adds configuration files read when the module constructs the Parser.
// Missing files are skipped.
func WithFiles(paths ...string) Option {
	return func(opts *Options) {
		opts.Files = append(opts.Files, paths...)
	}
}

// CallOption adjusts a single lookup.
type CallOption func(*call)

type call struct {
	profile           *string
	overrides         map[string]string
	fallback          *string
	profileFirst      bool
	expandedChain     bool
	configIndependent bool
	strict            bool
	includeDefaults   bool
}

// Profile replaces the active profile for one call. An empty id disables
// profile lookups.
func Profile(id string) CallOption {
	return func(c *call) {
		c.profile = &id
	}
}

// Overrides supplies values that win over the store for matching keys.
func Overrides(overrides map[string]string) CallOption {
	return func(c *call) {
		c.overrides = overrides
	}
}

// Fallback is returned when no key matches. It never hides an unknown section.
func Fallback(value string) CallOption {
	return func(c *call) {
		c.fallback = &value
	}
}

// ProfileFirst searches each profile across all scopes before relaxing it.
func ProfileFirst() CallOption {
	return func(c *call) {
		c.profileFirst = true
	}
}

// ExpandedChain expands the profile with leading tokens dropped as well.
func ExpandedChain() CallOption {
	return func(c *call) {
		c.expandedChain = true
	}
}

// ConfigIndependent lets bare keys match right after the most specific profile.
func ConfigIndependent() CallOption {
	return func(c *call) {
		c.configIndependent = true
	}
}

// Strict restricts HasOption, Options and Items to the section itself.
func Strict() CallOption {
	return func(c *call) {
		c.strict = true
	}
}

// IncludeDefaults adds the default scopes to HasOption, and to strict
// Options and Items listings.
func IncludeDefaults() CallOption {
	return func(c *call) {
		c.includeDefaults = true
	}
}
