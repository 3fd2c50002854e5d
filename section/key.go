package section

import "strings"

// Key identifies an entry within a section. An empty Profile denotes a bare
// key that applies regardless of the active profile.
type Key struct {
	Option  string
	Profile string
}

// Bare returns the profile-independent key for option.
func Bare(option string) Key {
	return Key{Option: option}
}

// Scoped returns the key for option restricted to profile.
func Scoped(option, profile string) Key {
	return Key{Option: option, Profile: profile}
}

// ParseKey splits a raw key of the form "option[profile]" into its parts.
// Keys without a bracketed suffix are bare. Empty brackets also yield a bare key.
func ParseKey(raw string) Key {
	if !strings.HasSuffix(raw, "]") {
		return Key{Option: raw}
	}

	open := strings.IndexByte(raw, '[')
	if open <= 0 {
		return Key{Option: raw}
	}

	return Key{
		Option:  raw[:open],
		Profile: raw[open+1 : len(raw)-1],
	}
}

// IsBare reports whether the key carries no profile scope.
func (k Key) IsBare() bool {
	return k.Profile == ""
}

// String renders the key in its raw "option[profile]" form.
func (k Key) String() string {
	if k.Profile == "" {
		return k.Option
	}

	return k.Option + "[" + k.Profile + "]"
}
