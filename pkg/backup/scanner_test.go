package backup_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/peterkaminski/obsidian-settings-manager/pkg/backup"
	"github.com/peterkaminski/obsidian-settings-manager/pkg/testutil"
	"github.com/peterkaminski/obsidian-settings-manager/pkg/types"
)

func TestFindAttributesArtifactsToVault(t *testing.T) {
	fs := testutil.NewFS()

	// Three vaults, only the middle one holds a backup.
	first := testutil.MakeVault(t, fs, "/home/user/First", map[string]string{"config": "a"})
	second := testutil.MakeVault(t, fs, "/home/user/Second", map[string]string{
		"config":                             "b",
		"config-2021-05-23T23:57:24.141428Z": "old",
	})
	third := testutil.MakeVault(t, fs, "/home/user/Third", nil)

	artifacts, err := backup.Find(fs, []types.Vault{first, second, third}, testutil.SettingsDir)
	require.NoError(t, err)

	require.Len(t, artifacts, 1)
	assert.Equal(t, "Second", artifacts[0].Vault.Name)
	assert.Equal(t, "config-2021-05-23T23:57:24.141428Z", artifacts[0].Name)
	assert.Equal(t, "config", artifacts[0].Original)
	assert.False(t, artifacts[0].IsDir)
}

func TestFindSkipsVaultsWithoutSettings(t *testing.T) {
	fs := testutil.NewFS()
	bare := testutil.MakeBareVault(t, fs, "/home/user/Bare")

	artifacts, err := backup.Find(fs, []types.Vault{bare}, testutil.SettingsDir)
	require.NoError(t, err)
	assert.Empty(t, artifacts)
}

func TestFindDirectoryArtifacts(t *testing.T) {
	fs := testutil.NewFS()
	vault := testutil.MakeVault(t, fs, "/home/user/Notes", map[string]string{
		"plugins-2022-01-01T00:00:00.000000Z/tag-wrangler/main.js": "js",
	})

	artifacts, err := backup.Find(fs, []types.Vault{vault}, testutil.SettingsDir)
	require.NoError(t, err)

	require.Len(t, artifacts, 1)
	assert.Equal(t, "plugins", artifacts[0].Original)
	assert.True(t, artifacts[0].IsDir)
}

func TestRemoveDryRunKeepsArtifacts(t *testing.T) {
	fs := testutil.NewFS()
	vault := testutil.MakeVault(t, fs, "/home/user/Notes", map[string]string{
		"config-2021-05-23T23:57:24.141428Z": "old",
	})

	artifacts, err := backup.Find(fs, []types.Vault{vault}, testutil.SettingsDir)
	require.NoError(t, err)
	require.Len(t, artifacts, 1)

	results := backup.Remove(fs, artifacts, true)
	require.Len(t, results, 1)
	assert.False(t, results[0].Removed)
	assert.NoError(t, results[0].Err)

	// Still there.
	again, err := backup.Find(fs, []types.Vault{vault}, testutil.SettingsDir)
	require.NoError(t, err)
	assert.Len(t, again, 1)
}

func TestRemoveDeletesArtifacts(t *testing.T) {
	fs := testutil.NewFS()
	vault := testutil.MakeVault(t, fs, "/home/user/Notes", map[string]string{
		"config-2021-05-23T23:57:24.141428Z":            "old",
		"plugins-2022-01-01T00:00:00.000000Z/a/main.js": "js",
	})

	artifacts, err := backup.Find(fs, []types.Vault{vault}, testutil.SettingsDir)
	require.NoError(t, err)
	require.Len(t, artifacts, 2)

	results := backup.Remove(fs, artifacts, false)
	for _, result := range results {
		assert.True(t, result.Removed)
		assert.NoError(t, result.Err)
	}

	again, err := backup.Find(fs, []types.Vault{vault}, testutil.SettingsDir)
	require.NoError(t, err)
	assert.Empty(t, again)
}
