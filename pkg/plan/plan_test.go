package plan_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/peterkaminski/obsidian-settings-manager/pkg/errors"
	"github.com/peterkaminski/obsidian-settings-manager/pkg/plan"
	"github.com/peterkaminski/obsidian-settings-manager/pkg/testutil"
	"github.com/peterkaminski/obsidian-settings-manager/pkg/types"
)

var catalog = types.Catalog{"config", "plugins"}

// setup scaffolds the canonical three-vault fixture: a source with config
// and plugins, one destination that already has a config, one with nothing.
func setup(t *testing.T) (types.FS, types.Vault, []types.Vault) {
	fs := testutil.NewFS()
	source := testutil.MakeVault(t, fs, "/home/user/Source", map[string]string{
		"config":              "source config",
		"plugins/tag/main.js": "js",
	})
	withConfig := testutil.MakeVault(t, fs, "/home/user/WithConfig", map[string]string{
		"config": "stale config",
	})
	empty := testutil.MakeVault(t, fs, "/home/user/Empty", nil)
	return fs, source, []types.Vault{source, withConfig, empty}
}

type opDest struct {
	op   types.Operation
	item string
	dest string
}

func summarize(actions []types.SyncAction) []opDest {
	result := make([]opDest, len(actions))
	for i, action := range actions {
		result[i] = opDest{action.Op, action.Item.Name, action.Dest.Name}
	}
	return result
}

func TestBuildNonDestructive(t *testing.T) {
	fs, source, vaults := setup(t)

	p, err := plan.Build(fs, source, vaults, testutil.SettingsDir, catalog, false)
	require.NoError(t, err)

	assert.False(t, p.Destructive)
	assert.Equal(t, []opDest{
		{types.OpBackupCopy, "config", "WithConfig"},
		{types.OpCreate, "plugins", "WithConfig"},
		{types.OpCreate, "config", "Empty"},
		{types.OpCreate, "plugins", "Empty"},
	}, summarize(p.Actions))
}

func TestBuildDestructive(t *testing.T) {
	fs, source, vaults := setup(t)

	p, err := plan.Build(fs, source, vaults, testutil.SettingsDir, catalog, true)
	require.NoError(t, err)

	assert.True(t, p.Destructive)
	assert.Equal(t, []opDest{
		{types.OpResetSettings, "", "WithConfig"},
		{types.OpReplaceExact, "config", "WithConfig"},
		{types.OpReplaceExact, "plugins", "WithConfig"},
		{types.OpResetSettings, "", "Empty"},
		{types.OpReplaceExact, "config", "Empty"},
		{types.OpReplaceExact, "plugins", "Empty"},
	}, summarize(p.Actions))
}

func TestBuildExcludesSource(t *testing.T) {
	fs, source, vaults := setup(t)

	p, err := plan.Build(fs, source, vaults, testutil.SettingsDir, catalog, false)
	require.NoError(t, err)

	for _, action := range p.Actions {
		assert.False(t, action.Dest.SamePath(source), "plan must never target the source vault")
	}
}

func TestBuildSkipsAbsentItems(t *testing.T) {
	fs := testutil.NewFS()
	source := testutil.MakeVault(t, fs, "/home/user/Source", map[string]string{"config": "cfg"})
	dest := testutil.MakeVault(t, fs, "/home/user/Dest", map[string]string{
		"plugins/tag/main.js": "js", // present in dest, absent in source
	})

	p, err := plan.Build(fs, source, []types.Vault{source, dest}, testutil.SettingsDir, catalog, false)
	require.NoError(t, err)

	for _, action := range p.Actions {
		assert.NotEqual(t, "plugins", action.Item.Name,
			"items absent from the source must never be planned")
	}
	require.Len(t, p.Actions, 1)
	assert.Equal(t, types.OpBackupCopy, p.Actions[0].Op)
}

func TestBuildSourceMissingSettings(t *testing.T) {
	fs := testutil.NewFS()
	source := testutil.MakeBareVault(t, fs, "/home/user/Bare")
	dest := testutil.MakeVault(t, fs, "/home/user/Dest", nil)

	_, err := plan.Build(fs, source, []types.Vault{source, dest}, testutil.SettingsDir, catalog, false)
	require.Error(t, err)
	assert.True(t, errors.IsErrorCode(err, errors.ErrSourceVaultNotFound))
}

func TestBuildItemsCarryKind(t *testing.T) {
	fs, source, vaults := setup(t)

	p, err := plan.Build(fs, source, vaults, testutil.SettingsDir, catalog, false)
	require.NoError(t, err)

	require.Len(t, p.Items, 2)
	assert.Equal(t, types.KindFile, p.Items[0].Kind)
	assert.Equal(t, types.KindDir, p.Items[1].Kind)
}

func TestBuildNoDestinations(t *testing.T) {
	fs := testutil.NewFS()
	source := testutil.MakeVault(t, fs, "/home/user/Only", map[string]string{"config": "cfg"})

	p, err := plan.Build(fs, source, []types.Vault{source}, testutil.SettingsDir, catalog, false)
	require.NoError(t, err)
	assert.Empty(t, p.Actions)
}
