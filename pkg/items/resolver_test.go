package items_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/peterkaminski/obsidian-settings-manager/pkg/items"
	"github.com/peterkaminski/obsidian-settings-manager/pkg/testutil"
	"github.com/peterkaminski/obsidian-settings-manager/pkg/types"
)

func TestResolveKeepsCatalogOrder(t *testing.T) {
	fs := testutil.NewFS()
	vault := testutil.MakeVault(t, fs, "/home/user/Notes", map[string]string{
		"snippets/dark.css":      "css",
		"config":                 "cfg",
		"plugins/tag/main.js":    "js",
		"community-plugins.json": "[]",
	})

	catalog := types.Catalog{"config", "community-plugins.json", "plugins", "snippets", "themes"}
	resolved, err := items.Resolve(fs, vault, testutil.SettingsDir, catalog)
	require.NoError(t, err)

	names := make([]string, len(resolved))
	for i, item := range resolved {
		names[i] = item.Name
	}
	// "themes" is absent and excluded; the rest keep catalog order.
	assert.Equal(t, []string{"config", "community-plugins.json", "plugins", "snippets"}, names)
}

func TestResolveDetectsKind(t *testing.T) {
	fs := testutil.NewFS()
	vault := testutil.MakeVault(t, fs, "/home/user/Notes", map[string]string{
		"config":              "cfg",
		"plugins/tag/main.js": "js",
	})

	resolved, err := items.Resolve(fs, vault, testutil.SettingsDir, types.Catalog{"config", "plugins"})
	require.NoError(t, err)
	require.Len(t, resolved, 2)

	assert.Equal(t, types.KindFile, resolved[0].Kind)
	assert.Equal(t, types.KindDir, resolved[1].Kind)
}

func TestResolveEmptyVault(t *testing.T) {
	fs := testutil.NewFS()
	vault := testutil.MakeVault(t, fs, "/home/user/Empty", nil)

	resolved, err := items.Resolve(fs, vault, testutil.SettingsDir, types.Catalog{"config", "plugins"})
	require.NoError(t, err)
	assert.Empty(t, resolved)
}

func TestResolveNeverMutates(t *testing.T) {
	fs := testutil.NewFS()
	vault := testutil.MakeVault(t, fs, "/home/user/Notes", map[string]string{"config": "cfg"})

	_, err := items.Resolve(fs, vault, testutil.SettingsDir, types.Catalog{"config", "missing"})
	require.NoError(t, err)

	// The probed-but-absent entry was not created.
	exists, err := vault.ItemExists(fs, testutil.SettingsDir, "missing")
	require.NoError(t, err)
	assert.False(t, exists)
}
