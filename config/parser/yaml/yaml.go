package yaml

import (
	"bytes"
	"errors"
	"fmt"
	"strconv"
	"strings"

	"github.com/0xalexb/cfgchain/config"

	"github.com/goccy/go-yaml"
)

// DefaultListDelimiter joins the items of a YAML sequence into one raw value.
const DefaultListDelimiter = ";"

// ErrEmptyData is returned when the input data is empty.
var ErrEmptyData = errors.New("empty data")

// ErrPathNotFound is returned when the specified path is not found in the YAML document.
var ErrPathNotFound = errors.New("path not found")

// ErrInvalidDocument is returned when the document does not have the
// section -> key -> scalar shape.
var ErrInvalidDocument = errors.New("invalid section document")

// Option configures a Parser.
type Option func(*Parser)

// WithListDelimiter sets the delimiter used to join sequence values.
func WithListDelimiter(delimiter string) Option {
	return func(p *Parser) {
		p.listDelimiter = delimiter
	}
}

// Parser implements config.Parser for YAML data.
// It uses goccy/go-yaml ordered maps so sections and keys keep source order.
type Parser struct {
	listDelimiter string
}

// NewParser creates a new YAML parser instance.
func NewParser(opts ...Option) *Parser {
	parser := &Parser{listDelimiter: DefaultListDelimiter}

	for _, apply := range opts {
		if apply != nil {
			apply(parser)
		}
	}

	return parser
}

// Parse decodes YAML data into a section document.
// The path parameter specifies a navigation path using colon (:) as separator.
// Empty path reads sections from the top level.
func (p *Parser) Parse(data []byte, path string) (*config.Document, error) {
	if len(data) == 0 {
		return nil, ErrEmptyData
	}

	root, err := decode(data, path)
	if err != nil {
		return nil, err
	}

	return p.document(root)
}

func decode(data []byte, path string) (any, error) {
	var root any

	if path == "" {
		err := yaml.UnmarshalWithOptions(data, &root, yaml.UseOrderedMap())
		if err != nil {
			return nil, fmt.Errorf("unmarshal error: %w", err)
		}

		return root, nil
	}

	pathObj, err := yaml.PathString(convertToYAMLPath(path))
	if err != nil {
		return nil, fmt.Errorf("invalid path %q: %w", path, err)
	}

	node, err := pathObj.ReadNode(bytes.NewReader(data))
	if err != nil {
		if isKeyNotFoundError(err) {
			return nil, fmt.Errorf("%w: %s", ErrPathNotFound, path)
		}

		return nil, fmt.Errorf("reading path %q: %w", path, err)
	}

	err = yaml.NodeToValue(node, &root, yaml.UseOrderedMap())
	if err != nil {
		return nil, fmt.Errorf("decoding path %q: %w", path, err)
	}

	return root, nil
}

func (p *Parser) document(root any) (*config.Document, error) {
	doc := &config.Document{}

	if root == nil {
		return doc, nil
	}

	sections, ok := root.(yaml.MapSlice)
	if !ok {
		return nil, fmt.Errorf("%w: top level must be a mapping of sections", ErrInvalidDocument)
	}

	for _, item := range sections {
		raw, err := p.section(fmt.Sprint(item.Key), item.Value)
		if err != nil {
			return nil, err
		}

		doc.Sections = append(doc.Sections, raw)
	}

	return doc, nil
}

func (p *Parser) section(name string, value any) (config.Section, error) {
	raw := config.Section{Name: name}

	if value == nil {
		return raw, nil
	}

	entries, ok := value.(yaml.MapSlice)
	if !ok {
		return config.Section{}, fmt.Errorf("%w: section %q must be a mapping", ErrInvalidDocument, name)
	}

	for _, item := range entries {
		key := fmt.Sprint(item.Key)

		rendered, err := p.render(item.Value)
		if err != nil {
			return config.Section{}, fmt.Errorf("%w: %s.%s: %w", ErrInvalidDocument, name, key, err)
		}

		raw.Entries = append(raw.Entries, config.Entry{Key: key, Value: rendered})
	}

	return raw, nil
}

// render turns a decoded scalar into its raw string form. Sequences are joined
// with the list delimiter so the resolver splits them back into items.
func (p *Parser) render(value any) (string, error) {
	switch typed := value.(type) {
	case nil:
		return "", nil
	case string:
		return typed, nil
	case bool:
		return strconv.FormatBool(typed), nil
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
	case yaml.MapSlice, map[string]any:
		return "", errors.New("nested mappings are not supported")
	default:
		return fmt.Sprint(typed), nil
	}
}

// convertToYAMLPath converts a colon-separated path to goccy/go-yaml PathString format.
// Examples:
//   - "key" -> "$.key"
//   - "app:settings" -> "$.app.settings"
func convertToYAMLPath(path string) string {
	parts := strings.Split(path, ":")

	return "$." + strings.Join(parts, ".")
}

// isKeyNotFoundError checks if the error indicates a key was not found.
func isKeyNotFoundError(err error) bool {
	return yaml.IsNotFoundNodeError(err)
}
