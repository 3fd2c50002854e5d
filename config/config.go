package config

import (
	"errors"
	"fmt"
	"log/slog"

	"github.com/0xalexb/cfgchain/section"
)

// ErrNilDocument is returned when a Parser yields no document and no error.
var ErrNilDocument = errors.New("parser returned no document")

// Entry is a raw key/value pair as written in the source.
type Entry struct {
	Key   string
	Value string
}

// Section is a raw section: its full (possibly chained) name and its entries
// in source order.
type Section struct {
	Name    string
	Entries []Entry
}

// Document is a decoded configuration source.
type Document struct {
	Sections []Section
}

// Parser defines an interface for decoding configuration data into a Document.
//
// The path parameter specifies a navigation path to the mapping that holds the
// sections, using colon (:) as the separator for nested keys. For example:
//   - "app:settings" reads the sections under config["app"]["settings"]
//   - "" (empty path) reads sections from the top level of the document
//
// See config/parser/yaml for an implementation based on goccy/go-yaml.
type Parser interface {
	Parse(data []byte, path string) (*Document, error)
}

// DataFetcher defines an interface for reading configuration data.
type DataFetcher interface {
	Fetch() ([]byte, error)
}

// ProviderOption configures Provider.
type ProviderOption func(*providerOptions)

type providerOptions struct {
	logger *slog.Logger
}

// WithLogger sets the logger receiving merge events. Provider logs nothing
// without one.
func WithLogger(logger *slog.Logger) ProviderOption {
	return func(opts *providerOptions) {
		opts.logger = logger
	}
}

// Provider returns a function that reads and parses configuration data, then
// merges the resulting document into store.
func Provider(store *section.Store, path string, opts ...ProviderOption) func(Parser, DataFetcher) (*section.Store, error) {
	options := providerOptions{logger: nil}

	for _, apply := range opts {
		if apply != nil {
			apply(&options)
		}
	}

	logger := options.logger
	if logger == nil {
		logger = slog.New(slog.DiscardHandler)
	}

	return func(parser Parser, dataSourcer DataFetcher) (*section.Store, error) {
		data, err := dataSourcer.Fetch()
		if err != nil {
			return nil, fmt.Errorf("reading data error: %w", err)
		}

		doc, err := parser.Parse(data, path)
		if err != nil {
			return nil, fmt.Errorf("parsing error: %w", err)
		}

		if doc == nil {
			return nil, fmt.Errorf("parsing error: %w", ErrNilDocument)
		}

		err = Merge(store, doc)
		if err != nil {
			return nil, fmt.Errorf("merging error: %w", err)
		}

		logger.Debug("configuration merged", slog.String("path", path), slog.Int("sections", len(doc.Sections)))

		return store, nil
	}
}

// Merge adds the sections of doc to store. Sections already present under the
// same full name receive the new entries; later values replace earlier ones.
func Merge(store *section.Store, doc *Document) error {
	for _, raw := range doc.Sections {
		sect, err := store.Merge(raw.Name)
		if err != nil {
			return err
		}

		for _, entry := range raw.Entries {
			sect.Set(store.NormalizeKey(entry.Key), entry.Value)
		}
	}

	return nil
}
