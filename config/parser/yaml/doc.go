// Package yaml provides a YAML parser implementation for the config package.
//
// This package uses github.com/goccy/go-yaml with ordered maps, so sections
// and their keys keep the order they have in the file. Top-level keys are
// full section names and their values are mappings of raw keys to scalars:
//
//	DEFAULT:
//	  key2: default2
//	"sect1:sect2":
//	  key1: val1
//	  "key1[dev]": dev1
//	  hosts: [a, b]          # joined as "a;b"
//
// Usage:
//
//	parser := yaml.NewParser()
//	doc, err := parser.Parse(data, "app:settings")
//
// Path Conversion:
//   - Empty path "" -> sections at the top level
//   - Single key "key" -> "$.key"
//   - Nested path "app:settings" -> "$.app.settings"
package yaml
