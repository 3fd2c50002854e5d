// Package cfgchain resolves configuration values from sections that inherit
// from each other and carry profile-specific overrides.
//
// Sections are named "name:ancestor1:ancestor2". A lookup in name searches the
// section, then each ancestor in order, then the default section and the
// seeded defaults. Keys may be scoped to a profile with a bracket suffix,
// "key[dev_eu]", and the active profile "dev_eu_1" is relaxed one token at a
// time ("dev_eu_1", "dev_eu", "dev") before the bare key is used:
//
//	parser, err := cfgchain.New(cfgchain.WithProfile("dev_eu_1"))
//	if err != nil {
//	    // handle error
//	}
//	_, err = parser.Read("base.yaml", "site.toml")
//	host, err := parser.Get("web", "host")
//	port, err := parser.GetInt("web", "port", cfgchain.Fallback("8080"))
//
// Per-call options change the search: ProfileFirst tries each profile across
// every section before relaxing it, ExpandedChain also drops leading profile
// tokens, and ConfigIndependent accepts a bare key right after the most
// specific profiled one. Overrides win over stored values for the same key.
//
// NewModule exposes the Parser to go.uber.org/fx applications.
package cfgchain
