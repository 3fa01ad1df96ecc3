// Package backups implements the backups command group: list and remove
// the timestamped backup artifacts earlier runs left behind.
package backups

import (
	"github.com/peterkaminski/obsidian-settings-manager/pkg/backup"
	"github.com/peterkaminski/obsidian-settings-manager/pkg/core"
	"github.com/peterkaminski/obsidian-settings-manager/pkg/types"
)

// Options contains options for the backups commands
type Options struct {
	// DryRun lists removal candidates without deleting anything
	DryRun bool

	ConfigPath  string
	ObsidianDir string
	FileSystem  types.FS
}

// List finds backup artifacts across all vaults, in registry order.
func List(opts Options) ([]backup.Artifact, error) {
	env, err := core.LoadEnv(core.Options{
		ConfigPath:  opts.ConfigPath,
		ObsidianDir: opts.ObsidianDir,
		FileSystem:  opts.FileSystem,
	})
	if err != nil {
		return nil, err
	}
	return backup.Find(env.FS, env.Vaults, env.Config.SettingsDir)
}

// Remove deletes every backup artifact across all vaults, best effort.
// Interactive confirmation, if wanted, is the CLI layer's business.
func Remove(opts Options) ([]backup.RemoveResult, error) {
	env, err := core.LoadEnv(core.Options{
		ConfigPath:  opts.ConfigPath,
		ObsidianDir: opts.ObsidianDir,
		FileSystem:  opts.FileSystem,
	})
	if err != nil {
		return nil, err
	}

	artifacts, err := backup.Find(env.FS, env.Vaults, env.Config.SettingsDir)
	if err != nil {
		return nil, err
	}
	return backup.Remove(env.FS, artifacts, opts.DryRun), nil
}
