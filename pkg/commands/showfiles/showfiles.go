// Package showfiles implements the show-selected command: print the item
// set that would be copied from a source vault, without planning anything.
package showfiles

import (
	"github.com/peterkaminski/obsidian-settings-manager/pkg/core"
	"github.com/peterkaminski/obsidian-settings-manager/pkg/items"
	"github.com/peterkaminski/obsidian-settings-manager/pkg/registry"
	"github.com/peterkaminski/obsidian-settings-manager/pkg/types"
)

// Options contains options for the show-selected command
type Options struct {
	// Source is the vault reference (name, home-relative or absolute path)
	Source string

	ConfigPath  string
	ObsidianDir string
	FileSystem  types.FS
}

// Result carries the resolved source vault and its item set.
type Result struct {
	Source types.Vault
	Items  []types.Item
}

// ShowFiles resolves the source vault's item set.
func ShowFiles(opts Options) (*Result, error) {
	env, err := core.LoadEnv(core.Options{
		ConfigPath:  opts.ConfigPath,
		ObsidianDir: opts.ObsidianDir,
		FileSystem:  opts.FileSystem,
	})
	if err != nil {
		return nil, err
	}

	source, err := registry.Find(env.Vaults, opts.Source)
	if err != nil {
		return nil, err
	}

	resolved, err := items.Resolve(env.FS, source, env.Config.SettingsDir, env.Config.Catalog())
	if err != nil {
		return nil, err
	}

	return &Result{Source: source, Items: resolved}, nil
}
