// Package execute implements the exec command: run an arbitrary command in
// every vault root and collect its output per vault.
package execute

import (
	"github.com/peterkaminski/obsidian-settings-manager/pkg/core"
	"github.com/peterkaminski/obsidian-settings-manager/pkg/errors"
	"github.com/peterkaminski/obsidian-settings-manager/pkg/run"
	"github.com/peterkaminski/obsidian-settings-manager/pkg/types"
)

// Options contains options for the exec command
type Options struct {
	// Command is the program to run; Args its arguments
	Command string
	Args    []string

	// DryRun lists the vaults without spawning anything
	DryRun bool

	ConfigPath  string
	ObsidianDir string
	FileSystem  types.FS
}

// Execute runs the command in each vault, sequentially, in registry order.
func Execute(opts Options) ([]run.Result, error) {
	if opts.Command == "" {
		return nil, errors.New(errors.ErrInvalidInput, "no command given")
	}

	env, err := core.LoadEnv(core.Options{
		ConfigPath:  opts.ConfigPath,
		ObsidianDir: opts.ObsidianDir,
		FileSystem:  opts.FileSystem,
	})
	if err != nil {
		return nil, err
	}

	return run.InVaults(env.Vaults, opts.Command, opts.Args, opts.DryRun), nil
}
