// Package toml provides a TOML parser implementation for the config package.
//
// It uses github.com/BurntSushi/toml. Tables are sections and their keys are
// raw option keys; quoted table names carry the ancestor chain:
//
//	[DEFAULT]
//	key2 = "default2"
//
//	["sect1:sect2"]
//	key1 = "val1"
//	"key1[dev]" = "dev1"
//	hosts = ["a", "b"]    # joined as "a;b"
//
// Order follows the decoder metadata, so sections and keys keep source order.
// A non-empty path such as "app:settings" reads the tables nested under
// [app.settings].
package toml
