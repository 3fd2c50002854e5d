package profile

import "strings"

// DefaultSeparator joins the tokens of a profile identifier.
const DefaultSeparator = "_"

// Expander expands profile identifiers using a fixed separator.
type Expander struct {
	separator string
}

// NewExpander returns an Expander splitting on separator.
// An empty separator selects DefaultSeparator.
func NewExpander(separator string) Expander {
	if separator == "" {
		separator = DefaultSeparator
	}

	return Expander{separator: separator}
}

// Separator returns the separator used by the expander.
func (e Expander) Separator() string {
	if e.separator == "" {
		return DefaultSeparator
	}

	return e.separator
}

// Chain returns id followed by each prefix obtained by dropping the last token,
// down to the first token alone.
func (e Expander) Chain(id string) []string {
	if id == "" {
		return nil
	}

	sep := e.Separator()
	tokens := strings.Split(id, sep)
	chain := make([]string, 0, len(tokens))

	for end := len(tokens); end > 0; end-- {
		chain = append(chain, strings.Join(tokens[:end], sep))
	}

	return chain
}

// ChainPlus returns, for every entry of Chain(id), the entry followed by its
// variants with leading tokens removed one at a time. The last token of an
// entry is never removed.
func (e Expander) ChainPlus(id string) []string {
	chain := e.Chain(id)
	if len(chain) == 0 {
		return nil
	}

	sep := e.Separator()
	out := make([]string, 0, len(chain)*(len(chain)+1)/2)

	for _, entry := range chain {
		tokens := strings.Split(entry, sep)
		for start := range tokens {
			out = append(out, strings.Join(tokens[start:], sep))
		}
	}

	return out
}

// Chain expands id with DefaultSeparator.
func Chain(id string) []string {
	return NewExpander(DefaultSeparator).Chain(id)
}

// ChainPlus expands id with DefaultSeparator.
func ChainPlus(id string) []string {
	return NewExpander(DefaultSeparator).ChainPlus(id)
}
