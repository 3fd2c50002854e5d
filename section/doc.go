// Package section holds parsed configuration sections and the inheritance
// graph between them.
//
// A Store keeps sections in insertion order under their short name. Each
// section declares an explicit, ordered list of ancestor short names. The list
// is parsed once from a chained full name such as "sect1:sect2:sect3" when the
// section is added. Lookups never re-parse names.
//
// Entries are keyed by a typed Key pairing an option name with an optional
// profile scope, so "key1[dev]" is stored as Key{Option: "key1", Profile: "dev"}.
//
// Two special scopes close every non-strict lookup: the default section read
// from the source (named "DEFAULT" unless configured otherwise) and the
// fallback defaults seeded by the caller at construction time, in that order.
//
// Hierarchy answers the structural questions asked by the resolver: the full
// name behind a short name, the ancestor list, and the ordered lookup scope.
package section
