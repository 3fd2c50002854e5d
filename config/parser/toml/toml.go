package toml

import (
	"errors"
	"fmt"
	"slices"
	"strconv"
	"strings"

	"github.com/0xalexb/cfgchain/config"

	"github.com/BurntSushi/toml"
)

// DefaultListDelimiter joins the items of a TOML array into one raw value.
const DefaultListDelimiter = ";"

// ErrEmptyData is returned when the input data is empty.
var ErrEmptyData = errors.New("empty data")

// ErrPathNotFound is returned when the specified path is not found in the TOML document.
var ErrPathNotFound = errors.New("path not found")

// ErrInvalidDocument is returned when the document does not have the
// table -> key -> scalar shape.
var ErrInvalidDocument = errors.New("invalid section document")

// Option configures a Parser.
type Option func(*Parser)

// WithListDelimiter sets the delimiter used to join array values.
func WithListDelimiter(delimiter string) Option {
	return func(p *Parser) {
		p.listDelimiter = delimiter
	}
}

// Parser implements config.Parser for TOML data. Each table is a section;
// table order and key order come from the decoder metadata.
type Parser struct {
	listDelimiter string
}

// NewParser creates a new TOML parser instance.
func NewParser(opts ...Option) *Parser {
	parser := &Parser{listDelimiter: DefaultListDelimiter}

	for _, apply := range opts {
		if apply != nil {
			apply(parser)
		}
	}

	return parser
}

// Parse decodes TOML data into a section document.
// The path parameter names nested tables with colon (:) as separator.
// Empty path reads sections from the top level.
func (p *Parser) Parse(data []byte, path string) (*config.Document, error) {
	if len(data) == 0 {
		return nil, ErrEmptyData
	}

	var root map[string]any

	meta, err := toml.Decode(string(data), &root)
	if err != nil {
		return nil, fmt.Errorf("decode error: %w", err)
	}

	prefix := splitPath(path)

	err = checkPath(root, prefix, path)
	if err != nil {
		return nil, err
	}

	doc := &config.Document{}
	positions := make(map[string]int)

	ensure := func(name string) int {
		pos, ok := positions[name]
		if !ok {
			pos = len(doc.Sections)
			positions[name] = pos
			doc.Sections = append(doc.Sections, config.Section{Name: name})
		}

		return pos
	}

	for _, key := range meta.Keys() {
		if len(key) <= len(prefix) || !slices.Equal(key[:len(prefix)], prefix) {
			continue
		}

		relative := key[len(prefix):]
		value := lookup(root, key)

		switch len(relative) {
		case 1:
			if _, ok := value.(map[string]any); !ok {
				return nil, fmt.Errorf("%w: section %q must be a table", ErrInvalidDocument, relative[0])
			}

			ensure(relative[0])
		case 2:
			rendered, err := p.render(value)
			if err != nil {
				return nil, fmt.Errorf("%w: %s.%s: %w", ErrInvalidDocument, relative[0], relative[1], err)
			}

			pos := ensure(relative[0])
			doc.Sections[pos].Entries = append(doc.Sections[pos].Entries, config.Entry{
				Key:   relative[1],
				Value: rendered,
			})
		default:
			return nil, fmt.Errorf("%w: %s: nested tables are not supported", ErrInvalidDocument, key.String())
		}
	}

	return doc, nil
}

func (p *Parser) render(value any) (string, error) {
	switch typed := value.(type) {
	case string:
		return typed, nil
	case bool:
		return strconv.FormatBool(typed), nil
	case int64:
		return strconv.FormatInt(typed, 10), nil
	case float64:
		return strconv.FormatFloat(typed, 'f', -1, 64), nil
	case []any:
		items := make([]string, len(typed))

		for i, item := range typed {
			rendered, err := p.render(item)
			if err != nil {
				return "", err
			}

			items[i] = rendered
		}

		return strings.Join(items, p.listDelimiter), nil
	case map[string]any, []map[string]any:
		return "", errors.New("nested tables are not supported")
	default:
		// Dates and times.
		return fmt.Sprint(typed), nil
	}
}

func splitPath(path string) []string {
	if path == "" {
		return nil
	}

	return strings.Split(path, ":")
}

func checkPath(root map[string]any, prefix []string, path string) error {
	current := root

	for _, token := range prefix {
		next, ok := current[token]
		if !ok {
			return fmt.Errorf("%w: %s", ErrPathNotFound, path)
		}

		table, ok := next.(map[string]any)
		if !ok {
			return fmt.Errorf("%w: %q is not a table", ErrInvalidDocument, path)
		}

		current = table
	}

	return nil
}

func lookup(root map[string]any, key toml.Key) any {
	var current any = root

	for _, token := range key {
		table, ok := current.(map[string]any)
		if !ok {
			return nil
		}

		current = table[token]
	}

	return current
}
