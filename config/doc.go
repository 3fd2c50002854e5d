// Package config ingests configuration sources into a section.Store.
//
// The package uses an interface-based design with two extension points:
//   - Parser: decodes raw data into a Document of ordered sections
//   - DataFetcher: retrieves raw config data (file, embedded bytes, etc.)
//
// A Document keeps sections and entries in source order because option
// enumeration follows that order. Section names are full names: "sect1:sect2"
// declares sect1 inheriting from sect2. The default section name (DEFAULT
// unless the store is configured otherwise) fills the shared defaults scope.
//
// # Path Navigation
//
// Provider accepts a path that points at the mapping holding the sections.
// Paths use colon (:) as the separator:
//
//	"app:settings" -> config["app"]["settings"]
//	""             -> top level of the document
//
// # Example
//
//	store := section.NewStore()
//	fetcher, err := filefetcher.NewFetcher("settings.yaml")()
//	if err != nil {
//	    // handle error
//	}
//	_, err = config.Provider(store, "")(yamlparser.NewParser(), fetcher)
package config
