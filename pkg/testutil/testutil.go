// Package testutil provides test helpers: an in-memory filesystem, vault
// scaffolding, and a failure-injecting FS wrapper for exercising per-action
// error paths.
package testutil

import (
	"fmt"
	"path/filepath"
	"testing"

	"github.com/peterkaminski/obsidian-settings-manager/pkg/filesystem"
	"github.com/peterkaminski/obsidian-settings-manager/pkg/types"
)

// SettingsDir is the settings sub-directory name used throughout the tests.
const SettingsDir = ".obsidian"

// NewFS returns an empty in-memory filesystem.
func NewFS() types.FS {
	return filesystem.NewMemory()
}

// WriteFile writes content to path, creating parent directories.
func WriteFile(t *testing.T, fs types.FS, path, content string) {
	t.Helper()
	if err := fs.MkdirAll(filepath.Dir(path), 0755); err != nil {
		t.Fatalf("mkdir %s: %v", filepath.Dir(path), err)
	}
	if err := fs.WriteFile(path, []byte(content), 0644); err != nil {
		t.Fatalf("write %s: %v", path, err)
	}
}

// MakeVault scaffolds a vault at root with the given settings entries.
// Keys are paths relative to the settings sub-directory ("config",
// "plugins/tag-wrangler/main.js"); values are file contents. A vault with
// no entries still gets its settings sub-directory.
func MakeVault(t *testing.T, fs types.FS, root string, entries map[string]string) types.Vault {
	t.Helper()
	if err := fs.MkdirAll(filepath.Join(root, SettingsDir), 0755); err != nil {
		t.Fatalf("mkdir vault %s: %v", root, err)
	}
	for rel, content := range entries {
		WriteFile(t, fs, filepath.Join(root, SettingsDir, rel), content)
	}
	return types.Vault{Name: filepath.Base(root), Path: root}
}

// MakeBareVault scaffolds a vault root without a settings sub-directory.
func MakeBareVault(t *testing.T, fs types.FS, root string) types.Vault {
	t.Helper()
	if err := fs.MkdirAll(root, 0755); err != nil {
		t.Fatalf("mkdir vault %s: %v", root, err)
	}
	return types.Vault{Name: filepath.Base(root), Path: root}
}

// MakeRegistry writes an obsidian.json registering the given vault paths,
// in order, under configDir.
func MakeRegistry(t *testing.T, fs types.FS, configDir string, vaultPaths []string) {
	t.Helper()
	doc := `{"vaults":{`
	for i, path := range vaultPaths {
		if i > 0 {
			doc += ","
		}
		doc += fmt.Sprintf(`"id%04d":{"path":%q,"ts":1650000000000}`, i, path)
	}
	doc += `}}`
	WriteFile(t, fs, filepath.Join(configDir, "obsidian.json"), doc)
}
