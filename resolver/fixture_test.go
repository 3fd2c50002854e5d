package resolver_test

import (
	"testing"

	"github.com/0xalexb/cfgchain/section"

	"github.com/stretchr/testify/require"
)

type entry struct {
	key   string
	value string
}

type sectionFixture struct {
	name    string
	entries []entry
}

//nolint:gochecknoglobals // read-only fixture shared by the tests.
var basicFixture = []sectionFixture{
	{
		name: "sect1:sect2:sect3",
		entries: []entry{
			{"key1", "val1"},
			{"key_int", "1"},
			{"key_bool1", "true"},
			{"key_bool2", "on"},
			{"key_bool3", "1"},
			{"key_bool4", "yes"},
			{"key_bool5", "false"},
			{"key_bool6", "random"},
			{"key_float", "1.24"},
			{"key_list", "damn;dang;nabbit"},
			{"key_list_int", "1;7;3"},
			{"key_list_bool", "true;false;true"},
			{"key_list_float", "0.96;1.73;6.82"},
			{"key1[dev]", "dev1"},
		},
	},
	{
		name: "sect2",
		entries: []entry{
			{"key1", "val1_sect2"},
			{"key2", "val2"},
			{"key2[dev]", "dev2"},
			{"key2[dev_plop]", "dev_plop2"},
		},
	},
	{
		name: "sect3",
		entries: []entry{
			{"key1[dev_plop_toto]", "dev_plop_toto1_sect3"},
			{"key2[dev]", "dev2_sect3"},
			{"key3", "val3"},
			{"key3[dev]", "dev3"},
			{"key3[toto]", "toto3"},
			{"key3[dev_plop]", "dev_plop3"},
			{"key3[dev_plop_toto]", "dev_plop_toto3"},
		},
	},
	{
		name: "DEFAULT",
		entries: []entry{
			{"key1[dev_plop_toto_stuff]", "dev_plop_toto1_default"},
			{"key2", "default2"},
			{"key3", "default3"},
			{"key049", "DEFAULT"},
			{"key049[dev]", "DEFAULT_dev"},
		},
	},
}

// newBasicStore loads basicFixture, then seeds the given fallback defaults.
func newBasicStore(t *testing.T, fallback ...entry) *section.Store {
	t.Helper()

	store := section.NewStore()

	for _, fixture := range basicFixture {
		sect, err := store.Merge(fixture.name)
		require.NoError(t, err)

		for _, e := range fixture.entries {
			require.NoError(t, store.Set(sect.Name(), e.key, e.value))
		}
	}

	for _, e := range fallback {
		store.SetFallback(e.key, e.value)
	}

	return store
}
