package profile_test

import (
	"testing"

	"github.com/0xalexb/cfgchain/profile"

	"github.com/stretchr/testify/assert"
)

func TestChain(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name     string
		input    string
		expected []string
	}{
		{
			name:     "empty identifier",
			input:    "",
			expected: nil,
		},
		{
			name:     "single token",
			input:    "dev",
			expected: []string{"dev"},
		},
		{
			name:     "three tokens",
			input:    "dev_plop_toto",
			expected: []string{"dev_plop_toto", "dev_plop", "dev"},
		},
		{
			name:     "four tokens",
			input:    "dev_plop_toto_stuff",
			expected: []string{"dev_plop_toto_stuff", "dev_plop_toto", "dev_plop", "dev"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			assert.Equal(t, tt.expected, profile.Chain(tt.input))
		})
	}
}

func TestChainPlus(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name     string
		input    string
		expected []string
	}{
		{
			name:     "empty identifier",
			input:    "",
			expected: nil,
		},
		{
			name:     "single token",
			input:    "dev",
			expected: []string{"dev"},
		},
		{
			name:     "two tokens",
			input:    "mem_plop",
			expected: []string{"mem_plop", "plop", "mem"},
		},
		{
			name:     "three tokens",
			input:    "dev_plop_toto",
			expected: []string{"dev_plop_toto", "plop_toto", "toto", "dev_plop", "plop", "dev"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			assert.Equal(t, tt.expected, profile.ChainPlus(tt.input))
		})
	}
}

func TestExpander_CustomSeparator(t *testing.T) {
	t.Parallel()

	expander := profile.NewExpander("#")

	assert.Equal(t, "#", expander.Separator())
	assert.Equal(t, []string{"dev#plop", "dev"}, expander.Chain("dev#plop"))
	assert.Equal(t, []string{"dev#plop", "plop", "dev"}, expander.ChainPlus("dev#plop"))
	assert.Equal(t, []string{"dev_plop"}, expander.Chain("dev_plop"))
}

func TestExpander_ZeroValueUsesDefaultSeparator(t *testing.T) {
	t.Parallel()

	var expander profile.Expander

	assert.Equal(t, profile.DefaultSeparator, expander.Separator())
	assert.Equal(t, []string{"a_b", "a"}, expander.Chain("a_b"))
}
