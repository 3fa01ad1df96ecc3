// Package compare implements the diff command: show structural differences
// between a source vault's settings and every other vault's, read-only.
package compare

import (
	"github.com/peterkaminski/obsidian-settings-manager/pkg/core"
	"github.com/peterkaminski/obsidian-settings-manager/pkg/diff"
	"github.com/peterkaminski/obsidian-settings-manager/pkg/registry"
	"github.com/peterkaminski/obsidian-settings-manager/pkg/types"
)

// Options contains options for the diff command
type Options struct {
	// Source is the vault reference to compare against
	Source string

	ConfigPath  string
	ObsidianDir string
	FileSystem  types.FS
}

// Result carries the source vault and its per-destination comparisons.
type Result struct {
	Source types.Vault
	Diffs  []diff.VaultDiff
}

// Compare computes the structural diff. Nothing is mutated.
func Compare(opts Options) (*Result, error) {
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

	diffs, err := diff.Compare(env.FS, source, env.Vaults, env.Config.SettingsDir, env.Config.Catalog())
	if err != nil {
		return nil, err
	}

	return &Result{Source: source, Diffs: diffs}, nil
}
