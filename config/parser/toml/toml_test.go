package toml

import (
	"testing"

	"github.com/0xalexb/cfgchain/config"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParser_Parse_EmptyPath(t *testing.T) {
	t.Parallel()

	data := []byte(`
[DEFAULT]
key2 = "default2"

["sect1:sect2"]
key1 = "val1"
"key1[dev]" = "dev1"

[sect2]
key1 = "val1_sect2"
`)

	doc, err := NewParser().Parse(data, "")

	require.NoError(t, err)
	assert.Equal(t, &config.Document{Sections: []config.Section{
		{Name: "DEFAULT", Entries: []config.Entry{{Key: "key2", Value: "default2"}}},
		{Name: "sect1:sect2", Entries: []config.Entry{
			{Key: "key1", Value: "val1"},
			{Key: "key1[dev]", Value: "dev1"},
		}},
		{Name: "sect2", Entries: []config.Entry{{Key: "key1", Value: "val1_sect2"}}},
	}}, doc)
}

func TestParser_Parse_Path(t *testing.T) {
	t.Parallel()

	data := []byte(`
[other.ignored]
key = "value"

[app.settings.api]
host = "localhost"
port = 8080
`)

	doc, err := NewParser().Parse(data, "app:settings")

	require.NoError(t, err)
	assert.Equal(t, []config.Section{{Name: "api", Entries: []config.Entry{
		{Key: "host", Value: "localhost"},
		{Key: "port", Value: "8080"},
	}}}, doc.Sections)
}

func TestParser_Parse_Scalars(t *testing.T) {
	t.Parallel()

	data := []byte(`
[sect]
int = 10
float = 1.24
bool = true
list = [1, 2, 3]
words = ["a", "b"]
`)

	tests := []struct {
		name      string
		parser    *Parser
		delimiter string
	}{
		{name: "default delimiter", parser: NewParser(), delimiter: ";"},
		{name: "custom delimiter", parser: NewParser(WithListDelimiter(",")), delimiter: ","},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			doc, err := tt.parser.Parse(data, "")

			require.NoError(t, err)
			assert.Equal(t, []config.Entry{
				{Key: "int", Value: "10"},
				{Key: "float", Value: "1.24"},
				{Key: "bool", Value: "true"},
				{Key: "list", Value: "1" + tt.delimiter + "2" + tt.delimiter + "3"},
				{Key: "words", Value: "a" + tt.delimiter + "b"},
			}, doc.Sections[0].Entries)
		})
	}
}

func TestParser_Parse_EmptySection(t *testing.T) {
	t.Parallel()

	doc, err := NewParser().Parse([]byte("[sect]\n"), "")

	require.NoError(t, err)
	assert.Equal(t, []config.Section{{Name: "sect"}}, doc.Sections)
}

func TestParser_Parse_Errors(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name     string
		data     string
		path     string
		expected error
	}{
		{name: "empty data", data: "", expected: ErrEmptyData},
		{name: "missing path", data: "[sect]\nk = 1\n", path: "nonexistent", expected: ErrPathNotFound},
		{name: "path to value", data: "[app]\nk = 1\n", path: "app:k", expected: ErrInvalidDocument},
		{name: "top level value", data: "title = \"x\"\n", expected: ErrInvalidDocument},
		{name: "nested table", data: "[sect.inner]\nk = 1\n", expected: ErrInvalidDocument},
		{name: "array of tables", data: "[[sect]]\nk = 1\n", expected: ErrInvalidDocument},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			doc, err := NewParser().Parse([]byte(tt.data), tt.path)

			require.ErrorIs(t, err, tt.expected)
			assert.Nil(t, doc)
		})
	}
}

func TestParser_Parse_InvalidTOML(t *testing.T) {
	t.Parallel()

	doc, err := NewParser().Parse([]byte("[sect\nk = "), "")

	require.Error(t, err)
	assert.Nil(t, doc)
	assert.Contains(t, err.Error(), "decode error")
}
