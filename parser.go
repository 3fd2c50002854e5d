package cfgchain

import (
	"errors"
	"fmt"
	"io/fs"
	"iter"
	"log/slog"
	"path/filepath"
	"strings"

	"github.com/0xalexb/cfgchain/coerce"
	"github.com/0xalexb/cfgchain/config"
	filefetcher "github.com/0xalexb/cfgchain/config/fetcher/file"
	tomlparser "github.com/0xalexb/cfgchain/config/parser/toml"
	yamlparser "github.com/0xalexb/cfgchain/config/parser/yaml"
	"github.com/0xalexb/cfgchain/resolver"
	"github.com/0xalexb/cfgchain/section"
)

var (
	// ErrNoSection is returned for an unknown section.
	ErrNoSection = section.ErrNoSection
	// ErrDuplicateSection is returned when a short name is added twice.
	ErrDuplicateSection = section.ErrDuplicateSection
	// ErrNoOption is returned when an option resolves nowhere and no fallback was given.
	ErrNoOption = resolver.ErrNoOption
	// ErrInvalidLiteral is returned when a value cannot be coerced.
	ErrInvalidLiteral = coerce.ErrInvalidLiteral
	// ErrKeyNotFound is returned by SectionView for missing sections and keys.
	ErrKeyNotFound = errors.New("key not found")
	// ErrInvalidOptions is returned by New for unusable options.
	ErrInvalidOptions = errors.New("invalid options")
)

type (
	// Value is a resolved value, scalar or list.
	Value = resolver.Value
	// Item is a raw key/value pair listed by Items.
	Item = resolver.Item
	// Resolution describes where a value was found.
	Resolution = resolver.Resolution
)

// Parser resolves options from sections layered by inheritance, profile and
// defaults. It is not safe for concurrent mutation; concurrent reads of a
// populated Parser are fine as long as the active profile is not changed.
type Parser struct {
	store         *section.Store
	resolver      *resolver.Resolver
	profile       string
	listDelimiter string
	logger        *slog.Logger
	files         []string
}

// New creates a Parser. Files listed with WithFiles are not read here; see
// NewModule and Read.
func New(opts ...Option) (*Parser, error) {
	options := defaultOptions()

	for _, apply := range opts {
		if apply != nil {
			apply(&options)
		}
	}

	if options.SectionSeparator == "" {
		return nil, fmt.Errorf("%w: empty section separator", ErrInvalidOptions)
	}

	if options.DefaultSectionName == "" {
		return nil, fmt.Errorf("%w: empty default section name", ErrInvalidOptions)
	}

	logger := options.Logger
	if logger == nil {
		logger = slog.New(slog.DiscardHandler)
	}

	storeOpts := []section.StoreOption{
		section.WithSeparator(options.SectionSeparator),
		section.WithDefaultName(options.DefaultSectionName),
	}

	if options.KeyNormalizer != nil {
		storeOpts = append(storeOpts, section.WithKeyNormalizer(options.KeyNormalizer))
	}

	store := section.NewStore(storeOpts...)

	for _, entry := range options.Defaults {
		store.SetFallback(entry.Key, entry.Value)
	}

	return &Parser{
		store: store,
		resolver: resolver.New(store,
			resolver.WithProfileSeparator(options.ProfileSeparator),
			resolver.WithListDelimiter(options.ListDelimiter),
			resolver.WithLogger(logger),
		),
		profile:       options.Profile,
		listDelimiter: options.ListDelimiter,
		logger:        logger,
		files:         options.Files,
	}, nil
}

// ConfigName returns the active profile.
func (p *Parser) ConfigName() string {
	return p.profile
}

// SetConfigName replaces the active profile.
func (p *Parser) SetConfigName(id string) {
	p.profile = id
}

// Configs returns the profile chain of the active profile.
func (p *Parser) Configs() []string {
	return p.ConfigsOf(p.profile)
}

// ConfigsOf returns the profile chain of id.
func (p *Parser) ConfigsOf(id string) []string {
	return p.resolver.Chain(id, false)
}

// ConfigsPlus returns the expanded profile chain of the active profile.
func (p *Parser) ConfigsPlus() []string {
	return p.ConfigsPlusOf(p.profile)
}

// ConfigsPlusOf returns the expanded profile chain of id.
func (p *Parser) ConfigsPlusOf(id string) []string {
	return p.resolver.Chain(id, true)
}

// Resolve looks option up in the named section and reports where the value
// came from.
func (p *Parser) Resolve(name, option string, opts ...CallOption) (Resolution, error) {
	return p.resolver.Resolve(name, option, p.request(collect(opts)))
}

// Get returns the value of option in the named section.
func (p *Parser) Get(name, option string, opts ...CallOption) (Value, error) {
	return p.resolver.Get(name, option, p.request(collect(opts)))
}

// GetInt returns option as an integer.
func (p *Parser) GetInt(name, option string, opts ...CallOption) (int, error) {
	return scalar(p, name, option, opts, coerce.Int)
}

// GetInts returns option as a list of integers. A scalar yields one item.
func (p *Parser) GetInts(name, option string, opts ...CallOption) ([]int, error) {
	return list(p, name, option, opts, coerce.Ints)
}

// GetFloat returns option as a float.
func (p *Parser) GetFloat(name, option string, opts ...CallOption) (float64, error) {
	return scalar(p, name, option, opts, coerce.Float)
}

// GetFloats returns option as a list of floats. A scalar yields one item.
func (p *Parser) GetFloats(name, option string, opts ...CallOption) ([]float64, error) {
	return list(p, name, option, opts, coerce.Floats)
}

// GetBool returns option as a boolean.
func (p *Parser) GetBool(name, option string, opts ...CallOption) (bool, error) {
	return scalar(p, name, option, opts, coerce.Bool)
}

// GetBools returns option as a list of booleans. A scalar yields one item.
func (p *Parser) GetBools(name, option string, opts ...CallOption) ([]bool, error) {
	return list(p, name, option, opts, coerce.Bools)
}

// HasOption reports whether option exists in the named section. The default
// scopes are only searched with IncludeDefaults.
func (p *Parser) HasOption(name, option string, opts ...CallOption) bool {
	c := collect(opts)

	return p.resolver.HasOption(name, option, resolver.Probe{
		Profile:           p.activeProfile(c),
		ExpandedChain:     c.expandedChain,
		Strict:            c.strict,
		ConfigIndependent: c.configIndependent,
		IncludeDefaults:   c.includeDefaults,
	})
}

// HasSection reports whether the section exists. With Strict it must also
// declare no ancestors.
func (p *Parser) HasSection(name string, opts ...CallOption) bool {
	return p.resolver.Hierarchy().HasSection(name, collect(opts).strict)
}

// Options lists the raw keys visible from the named section.
func (p *Parser) Options(name string, opts ...CallOption) ([]string, error) {
	c := collect(opts)

	return p.resolver.Options(name, c.strict, c.includeDefaults)
}

// Items lists the raw key/value pairs visible from the named section,
// followed by the call overrides.
func (p *Parser) Items(name string, opts ...CallOption) ([]Item, error) {
	c := collect(opts)

	return p.resolver.Items(name, c.overrides, c.strict, c.includeDefaults)
}

// SectionName returns the full name of the section.
func (p *Parser) SectionName(name string) (string, error) {
	return p.resolver.Hierarchy().FullName(name)
}

// CorrespondingSections returns the full name of the section followed by its
// ancestors.
func (p *Parser) CorrespondingSections(name string) ([]string, error) {
	return p.resolver.Hierarchy().Ancestors(name)
}

// Section returns a view of the named section.
func (p *Parser) Section(name string) (*SectionView, error) {
	if name != p.store.DefaultName() && !p.HasSection(name) {
		return nil, fmt.Errorf("%w: section %q", ErrKeyNotFound, name)
	}

	return &SectionView{parser: p, name: name}, nil
}

// SectionViews yields a view per section keyed by full name, the default
// section first. Views are created as the sequence is consumed.
func (p *Parser) SectionViews() iter.Seq2[string, *SectionView] {
	return func(yield func(string, *SectionView) bool) {
		defaultName := p.store.DefaultName()
		if !yield(defaultName, &SectionView{parser: p, name: defaultName}) {
			return
		}

		for _, sect := range p.store.Sections() {
			if !yield(sect.FullName(), &SectionView{parser: p, name: sect.Name()}) {
				return
			}
		}
	}
}

// Sections returns the short names of all sections, without the default section.
func (p *Parser) Sections() []string {
	return p.store.Names()
}

// AddSection adds an empty section. The name may carry ancestors, as in "web:base".
func (p *Parser) AddSection(fullName string) error {
	_, err := p.store.AddSection(fullName)

	return err
}

// Set stores value under key in the named section. The default section name
// targets the default section.
func (p *Parser) Set(name, key, value string) error {
	return p.store.Set(name, key, value)
}

// RemoveSection deletes the section with the given short name and reports
// whether it existed. Sections naming it as an ancestor fail lookups with
// ErrNoSection until it is added again.
func (p *Parser) RemoveSection(name string) bool {
	return p.store.RemoveSection(name)
}

// RemoveOption deletes a raw key, bare or profile-scoped, from the named
// section and reports whether it was present.
func (p *Parser) RemoveOption(name, key string) (bool, error) {
	return p.store.RemoveOption(name, key)
}

// Defaults returns the seeded defaults.
func (p *Parser) Defaults() []section.Entry {
	return p.store.Fallback().Entries()
}

// DefaultSection returns the entries of the ingested default section.
func (p *Parser) DefaultSection() []section.Entry {
	return p.store.Default().Entries()
}

// Load fetches, parses and merges one configuration source. The path selects
// the mapping holding the sections; empty means the top level.
func (p *Parser) Load(parser config.Parser, fetcher config.DataFetcher, path string) error {
	_, err := config.Provider(p.store, path, config.WithLogger(p.logger))(parser, fetcher)
	if err != nil {
		return fmt.Errorf("loading configuration: %w", err)
	}

	p.logger.Info("configuration loaded", slog.String("path", path), slog.Int("sections", p.store.Len()))

	return nil
}

// Read loads each file in order, later files overriding earlier ones. Files
// ending in .toml are decoded as TOML and everything else as YAML. Missing
// files are skipped; Read returns the paths that were loaded.
func (p *Parser) Read(paths ...string) ([]string, error) {
	return p.read(paths, filefetcher.NewFetcher)
}

// ReadFS is Read for files inside fsys, such as an embed.FS of bundled
// defaults. Names use forward slashes.
func (p *Parser) ReadFS(fsys fs.FS, names ...string) ([]string, error) {
	return p.read(names, func(name string) func() (*filefetcher.Fetcher, error) {
		return filefetcher.NewFSFetcher(fsys, name)
	})
}

func (p *Parser) read(paths []string, open func(string) func() (*filefetcher.Fetcher, error)) ([]string, error) {
	read := make([]string, 0, len(paths))

	for _, path := range paths {
		fetcher, err := open(path)()
		if errors.Is(err, fs.ErrNotExist) {
			p.logger.Debug("configuration file skipped", slog.String("file", path))

			continue
		}

		if err != nil {
			return read, err
		}

		err = p.Load(p.parserFor(fetcher.Path()), fetcher, "")
		if err != nil {
			return read, fmt.Errorf("file %q: %w", fetcher.Path(), err)
		}

		read = append(read, path)
	}

	return read, nil
}

func (p *Parser) parserFor(path string) config.Parser {
	delimiter := p.listDelimiter
	if delimiter == "" {
		delimiter = resolver.DefaultListDelimiter
	}

	if strings.EqualFold(filepath.Ext(path), ".toml") {
		return tomlparser.NewParser(tomlparser.WithListDelimiter(delimiter))
	}

	return yamlparser.NewParser(yamlparser.WithListDelimiter(delimiter))
}

func (p *Parser) activeProfile(c call) string {
	if c.profile != nil {
		return *c.profile
	}

	return p.profile
}

func (p *Parser) request(c call) resolver.Request {
	return resolver.Request{
		Profile:           p.activeProfile(c),
		Overrides:         c.overrides,
		Fallback:          c.fallback,
		ProfileFirst:      c.profileFirst,
		ExpandedChain:     c.expandedChain,
		ConfigIndependent: c.configIndependent,
	}
}

func collect(opts []CallOption) call {
	var c call

	for _, apply := range opts {
		if apply != nil {
			apply(&c)
		}
	}

	return c
}

func scalar[T any](p *Parser, name, option string, opts []CallOption, convert func(string) (T, error)) (T, error) {
	var zero T

	value, err := p.Get(name, option, opts...)
	if err != nil {
		return zero, err
	}

	out, err := convert(value.String())
	if err != nil {
		return zero, fmt.Errorf("option %q in section %q: %w", option, name, err)
	}

	return out, nil
}

func list[T any](p *Parser, name, option string, opts []CallOption, convert func([]string) ([]T, error)) ([]T, error) {
	value, err := p.Get(name, option, opts...)
	if err != nil {
		return nil, err
	}

	out, err := convert(value.List())
	if err != nil {
		return nil, fmt.Errorf("option %q in section %q: %w", option, name, err)
	}

	return out, nil
}
