// Package profile expands a profile identifier into the ordered token chains
// used to match profile-scoped keys.
//
// A profile identifier is a list of tokens joined by a separator (default "_"),
// with the most specific token last. "dev_plop_toto" reads as the "dev"
// context refined by "plop", refined again by "toto".
//
// Two expansions are provided:
//
//	Chain("dev_plop_toto")     -> dev_plop_toto, dev_plop, dev
//	ChainPlus("dev_plop_toto") -> dev_plop_toto, plop_toto, toto, dev_plop, plop, dev
//
// Chain drops trailing tokens one at a time. ChainPlus also loosens every
// entry of Chain from the left, so keys scoped to a single refinement such as
// "toto" can match independently of the branch that produced them.
package profile
