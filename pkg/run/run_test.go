package run_test

import (
	"os"
	"path/filepath"
	"runtime"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/peterkaminski/obsidian-settings-manager/pkg/run"
	"github.com/peterkaminski/obsidian-settings-manager/pkg/types"
)

func tempVaults(t *testing.T) []types.Vault {
	t.Helper()
	root := t.TempDir()
	vaults := make([]types.Vault, 0, 2)
	for _, name := range []string{"First", "Second"} {
		path := filepath.Join(root, name)
		require.NoError(t, os.MkdirAll(path, 0755))
		vaults = append(vaults, types.Vault{Name: name, Path: path})
	}
	return vaults
}

func TestInVaultsRunsInEachVaultRoot(t *testing.T) {
	if runtime.GOOS == "windows" {
		t.Skip("relies on pwd")
	}
	vaults := tempVaults(t)

	results := run.InVaults(vaults, "pwd", nil, false)
	require.Len(t, results, 2)

	for i, result := range results {
		require.NoError(t, result.Err)
		assert.Equal(t, vaults[i].Name, result.Vault.Name)
		got := strings.TrimSpace(string(result.Output))
		resolved, err := filepath.EvalSymlinks(vaults[i].Path)
		require.NoError(t, err)
		assert.Equal(t, resolved, got)
	}
}

func TestInVaultsRecordsFailuresPerVault(t *testing.T) {
	vaults := tempVaults(t)

	results := run.InVaults(vaults, "definitely-not-a-real-command-osm", nil, false)
	require.Len(t, results, 2)
	for _, result := range results {
		assert.Error(t, result.Err)
	}
}

func TestInVaultsDryRun(t *testing.T) {
	vaults := tempVaults(t)

	results := run.InVaults(vaults, "pwd", nil, true)
	require.Len(t, results, 2)
	for _, result := range results {
		assert.True(t, result.Skipped)
		assert.Empty(t, result.Output)
		assert.NoError(t, result.Err)
	}
}
