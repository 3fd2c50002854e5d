package config_test

import (
	"fmt"
	"os"
	"path/filepath"
	"testing"

	"github.com/0xalexb/cfgchain/config"
	filefetcher "github.com/0xalexb/cfgchain/config/fetcher/file"
	yamlparser "github.com/0xalexb/cfgchain/config/parser/yaml"
	"github.com/0xalexb/cfgchain/section"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// StaticDataFetcher implements config.DataFetcher with static data.
// Useful for unit tests that don't need file I/O.
type StaticDataFetcher struct {
	Data []byte
}

// Fetch returns the static data.
func (f *StaticDataFetcher) Fetch() ([]byte, error) {
	return f.Data, nil
}

func ExampleProvider() {
	store := section.NewStore()

	// An empty path reads sections from the top level of the document.
	provider := config.Provider(store, "")

	// For file-based configuration, use filefetcher.NewFetcher(filepath)() instead.
	fetcher := &StaticDataFetcher{
		Data: []byte("DEFAULT:\n  timeout: 30\n\"api:base\":\n  host: api.example.com\nbase:\n  port: 443\n"),
	}

	result, err := provider(yamlparser.NewParser(), fetcher)
	if err != nil {
		fmt.Printf("Error: %v\n", err)

		return
	}

	api, _ := result.Section("api")
	fmt.Printf("%s inherits from %v\n", api.FullName(), api.Ancestors())
	// Output: api:base inherits from [base]
}

func ExampleProvider_pathNavigation() {
	yamlData := []byte(`
services:
  settings:
    api:
      host: api.example.com
      port: 3000
unrelated:
  key: value
`)

	store := section.NewStore()

	// The path points at the mapping holding the sections.
	_, err := config.Provider(store, "services:settings")(yamlparser.NewParser(), &StaticDataFetcher{Data: yamlData})
	if err != nil {
		fmt.Printf("Error: %v\n", err)

		return
	}

	fmt.Println(store.Names())
	// Output: [api]
}

// TestProvider_FileSources merges two files the way layered configuration is
// usually loaded: shared defaults first, then a site file.
func TestProvider_FileSources(t *testing.T) {
	t.Parallel()

	dir := t.TempDir()
	shared := filepath.Join(dir, "shared.yaml")
	site := filepath.Join(dir, "site.yaml")

	require.NoError(t, os.WriteFile(shared, []byte(`
DEFAULT:
  retries: 3
"web:base":
  host: shared.example.com
base:
  port: 80
`), 0o600))
	require.NoError(t, os.WriteFile(site, []byte(`
"web:base":
  "host[prod]": prod.example.com
base:
  port: 443
`), 0o600))

	store := section.NewStore()
	parser := yamlparser.NewParser()

	for _, path := range []string{shared, site} {
		fetcher, err := filefetcher.NewFetcher(path)()
		require.NoError(t, err)

		_, err = config.Provider(store, "")(parser, fetcher)
		require.NoError(t, err)
	}

	web, ok := store.Section("web")
	require.True(t, ok)
	assert.Equal(t, []section.Key{section.Bare("host"), section.Scoped("host", "prod")}, web.Keys())

	base, ok := store.Section("base")
	require.True(t, ok)

	port, ok := base.Lookup(section.Bare("port"))
	require.True(t, ok)
	assert.Equal(t, "443", port)

	retries, ok := store.Default().Lookup(section.Bare("retries"))
	require.True(t, ok)
	assert.Equal(t, "3", retries)
}

func TestProvider_YAMLErrors(t *testing.T) {
	t.Parallel()

	parser := yamlparser.NewParser()

	t.Run("invalid path returns error", func(t *testing.T) {
		t.Parallel()

		_, err := config.Provider(section.NewStore(), "nonexistent:path")(
			parser, &StaticDataFetcher{Data: []byte("sect:\n  k: v\n")})
		require.ErrorIs(t, err, yamlparser.ErrPathNotFound)
	})

	t.Run("nested values return error", func(t *testing.T) {
		t.Parallel()

		store := section.NewStore()
		_, err := config.Provider(store, "")(
			parser, &StaticDataFetcher{Data: []byte("sect:\n  k:\n    deep: v\n")})
		require.ErrorIs(t, err, yamlparser.ErrInvalidDocument)
		assert.Zero(t, store.Len())
	})
}
