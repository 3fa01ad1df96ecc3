package diff_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/peterkaminski/obsidian-settings-manager/pkg/diff"
	"github.com/peterkaminski/obsidian-settings-manager/pkg/testutil"
	"github.com/peterkaminski/obsidian-settings-manager/pkg/types"
)

var catalog = types.Catalog{"config", "plugins"}

func findChild(t *testing.T, node *diff.Node, name string) *diff.Node {
	t.Helper()
	for _, child := range node.Children {
		if child.Name == name {
			return child
		}
	}
	t.Fatalf("node %s has no child %q", node.Path, name)
	return nil
}

func TestCompareFlagsDestOnlyNestedFile(t *testing.T) {
	fs := testutil.NewFS()
	source := testutil.MakeVault(t, fs, "/home/user/Source", map[string]string{
		"plugins/tag/main.js": "js",
	})
	dest := testutil.MakeVault(t, fs, "/home/user/Dest", map[string]string{
		"plugins/tag/main.js":  "js",
		"plugins/tag/extra.js": "leftover",
	})

	diffs, err := diff.Compare(fs, source, []types.Vault{source, dest}, testutil.SettingsDir, catalog)
	require.NoError(t, err)
	require.Len(t, diffs, 1)

	require.Len(t, diffs[0].Items, 1)
	plugins := diffs[0].Items[0]
	assert.Equal(t, diff.StatusDiffers, plugins.Status, "parent dir of a changed file is flagged")

	tag := findChild(t, plugins, "tag")
	assert.Equal(t, diff.StatusDiffers, tag.Status)

	extra := findChild(t, tag, "extra.js")
	assert.Equal(t, diff.StatusDestOnly, extra.Status)
	assert.Equal(t, "plugins/tag/extra.js", extra.Path)

	main := findChild(t, tag, "main.js")
	assert.Equal(t, diff.StatusSame, main.Status)
}

func TestCompareContentDifference(t *testing.T) {
	fs := testutil.NewFS()
	source := testutil.MakeVault(t, fs, "/home/user/Source", map[string]string{"config": "new"})
	dest := testutil.MakeVault(t, fs, "/home/user/Dest", map[string]string{"config": "old"})

	diffs, err := diff.Compare(fs, source, []types.Vault{source, dest}, testutil.SettingsDir, catalog)
	require.NoError(t, err)

	require.Len(t, diffs[0].Items, 1)
	assert.Equal(t, diff.StatusDiffers, diffs[0].Items[0].Status)
	assert.True(t, diffs[0].HasDifferences())
}

func TestCompareIdenticalVaults(t *testing.T) {
	fs := testutil.NewFS()
	entries := map[string]string{
		"config":              "same",
		"plugins/tag/main.js": "same js",
	}
	source := testutil.MakeVault(t, fs, "/home/user/Source", entries)
	dest := testutil.MakeVault(t, fs, "/home/user/Dest", entries)

	diffs, err := diff.Compare(fs, source, []types.Vault{source, dest}, testutil.SettingsDir, catalog)
	require.NoError(t, err)

	assert.False(t, diffs[0].HasDifferences())
	for _, item := range diffs[0].Items {
		assert.Equal(t, diff.StatusSame, item.Status)
	}
}

func TestCompareSourceOnlyItem(t *testing.T) {
	fs := testutil.NewFS()
	source := testutil.MakeVault(t, fs, "/home/user/Source", map[string]string{
		"plugins/tag/main.js": "js",
	})
	dest := testutil.MakeVault(t, fs, "/home/user/Dest", nil)

	diffs, err := diff.Compare(fs, source, []types.Vault{source, dest}, testutil.SettingsDir, catalog)
	require.NoError(t, err)

	require.Len(t, diffs[0].Items, 1)
	plugins := diffs[0].Items[0]
	assert.Equal(t, diff.StatusSourceOnly, plugins.Status)

	// Nested entries are listed so the report stays addressable.
	tag := findChild(t, plugins, "tag")
	assert.Equal(t, diff.StatusSourceOnly, tag.Status)
	main := findChild(t, tag, "main.js")
	assert.Equal(t, diff.StatusSourceOnly, main.Status)
}

func TestCompareFileVersusDirectory(t *testing.T) {
	fs := testutil.NewFS()
	source := testutil.MakeVault(t, fs, "/home/user/Source", map[string]string{"config": "a file"})
	dest := testutil.MakeVault(t, fs, "/home/user/Dest", map[string]string{"config/nested": "a dir"})

	diffs, err := diff.Compare(fs, source, []types.Vault{source, dest}, testutil.SettingsDir, catalog)
	require.NoError(t, err)

	require.Len(t, diffs[0].Items, 1)
	assert.Equal(t, diff.StatusDiffers, diffs[0].Items[0].Status)
}

func TestCompareExcludesSource(t *testing.T) {
	fs := testutil.NewFS()
	source := testutil.MakeVault(t, fs, "/home/user/Source", map[string]string{"config": "cfg"})
	dest := testutil.MakeVault(t, fs, "/home/user/Dest", nil)

	diffs, err := diff.Compare(fs, source, []types.Vault{source, dest}, testutil.SettingsDir, catalog)
	require.NoError(t, err)

	require.Len(t, diffs, 1)
	assert.Equal(t, "Dest", diffs[0].Dest.Name)
}

func TestCompareIsReadOnly(t *testing.T) {
	fs := testutil.NewFS()
	source := testutil.MakeVault(t, fs, "/home/user/Source", map[string]string{"config": "cfg"})
	dest := testutil.MakeVault(t, fs, "/home/user/Dest", nil)

	_, err := diff.Compare(fs, source, []types.Vault{source, dest}, testutil.SettingsDir, catalog)
	require.NoError(t, err)

	exists, err := dest.ItemExists(fs, testutil.SettingsDir, "config")
	require.NoError(t, err)
	assert.False(t, exists, "diff must never create anything in the destination")
}
