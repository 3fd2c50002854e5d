package file

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path"
	"path/filepath"
)

// ErrPathIsDirectory is returned when the path provided to the Fetcher points to a directory instead of a file.
var ErrPathIsDirectory = errors.New("path is a directory, not a file")

// Fetcher implements config.DataFetcher for file-based configuration sources.
// It reads a source at construction time and caches the contents, so every
// Load of the same fetcher merges the same bytes.
type Fetcher struct {
	filepath string
	data     []byte
}

// NewFetcher returns a constructor function that creates a new file-based Fetcher
// with the specified filepath. The file is read at construction time and cached.
// This pattern is Fx-friendly, allowing the DI container to control when instantiation happens.
// A missing file yields an error matching fs.ErrNotExist.
func NewFetcher(fpath string) func() (*Fetcher, error) {
	return func() (*Fetcher, error) {
		cleanPath := filepath.Clean(fpath)

		stat, err := os.Stat(cleanPath)
		if err != nil {
			return nil, fmt.Errorf("stat file %q: %w", cleanPath, err)
		}

		if stat.IsDir() {
			return nil, fmt.Errorf("path %q: %w", cleanPath, ErrPathIsDirectory)
		}

		data, err := os.ReadFile(cleanPath) // #nosec G304 -- path is cleaned and validated
		if err != nil {
			return nil, fmt.Errorf("reading file %q: %w", cleanPath, err)
		}

		return &Fetcher{
			filepath: cleanPath,
			data:     data,
		}, nil
	}
}

// NewFSFetcher is NewFetcher for a file inside fsys, such as an embed.FS
// bundling default section files with a binary. Names use forward slashes.
func NewFSFetcher(fsys fs.FS, name string) func() (*Fetcher, error) {
	return func() (*Fetcher, error) {
		cleanName := path.Clean(name)

		stat, err := fs.Stat(fsys, cleanName)
		if err != nil {
			return nil, fmt.Errorf("stat file %q: %w", cleanName, err)
		}

		if stat.IsDir() {
			return nil, fmt.Errorf("path %q: %w", cleanName, ErrPathIsDirectory)
		}

		data, err := fs.ReadFile(fsys, cleanName)
		if err != nil {
			return nil, fmt.Errorf("reading file %q: %w", cleanName, err)
		}

		return &Fetcher{
			filepath: cleanName,
			data:     data,
		}, nil
	}
}

// Path returns the cleaned path the data was read from.
func (f *Fetcher) Path() string {
	return f.filepath
}

// Fetch returns a copy of the cached configuration data that was read at construction time.
func (f *Fetcher) Fetch() ([]byte, error) {
	result := make([]byte, len(f.data))
	copy(result, f.data)

	return result, nil
}
