// Package list implements the list command: print every vault Obsidian is
// tracking.
package list

import (
	"github.com/peterkaminski/obsidian-settings-manager/pkg/core"
	"github.com/peterkaminski/obsidian-settings-manager/pkg/types"
)

// Options contains options for the list command
type Options struct {
	ConfigPath  string
	ObsidianDir string
	FileSystem  types.FS
}

// List returns the registered vaults in registry order.
func List(opts Options) ([]types.Vault, error) {
	env, err := core.LoadEnv(core.Options{
		ConfigPath:  opts.ConfigPath,
		ObsidianDir: opts.ObsidianDir,
		FileSystem:  opts.FileSystem,
	})
	if err != nil {
		return nil, err
	}
	return env.Vaults, nil
}
