// Package sync implements the update and exact-copy commands: plan and
// apply a settings copy from one vault to all the others.
package sync

import (
	"github.com/peterkaminski/obsidian-settings-manager/pkg/backup"
	"github.com/peterkaminski/obsidian-settings-manager/pkg/core"
	"github.com/peterkaminski/obsidian-settings-manager/pkg/executor"
	"github.com/peterkaminski/obsidian-settings-manager/pkg/logging"
	"github.com/peterkaminski/obsidian-settings-manager/pkg/plan"
	"github.com/peterkaminski/obsidian-settings-manager/pkg/registry"
	"github.com/peterkaminski/obsidian-settings-manager/pkg/types"
)

// Options contains options for the sync command
type Options struct {
	// Source is the vault reference to copy settings from
	Source string

	// Destructive selects exact-copy mode: destinations are wiped and
	// recreated instead of backed up
	Destructive bool

	// DryRun reports the plan without touching the filesystem
	DryRun bool

	// Clock overrides backup timestamping, used in tests
	Clock backup.Clock

	ConfigPath  string
	ObsidianDir string
	FileSystem  types.FS
}

// Result is the outcome of a sync run.
type Result struct {
	Plan    *types.SyncPlan
	Actions []types.ExecutedAction
}

// Failed reports whether any action in the run failed.
func (r *Result) Failed() bool {
	for _, action := range r.Actions {
		if action.Err != nil {
			return true
		}
	}
	return false
}

// Sync builds the plan and applies it. Discovery and source validation
// failures abort before any mutation; apply-time failures are per-action
// and reported in the result.
func Sync(opts Options) (*Result, error) {
	logger := logging.GetLogger("commands.sync")

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

	p, err := plan.Build(env.FS, source, env.Vaults, env.Config.SettingsDir, env.Config.Catalog(), opts.Destructive)
	if err != nil {
		return nil, err
	}

	logger.Info().
		Str("source", source.Name).
		Bool("destructive", opts.Destructive).
		Bool("dryRun", opts.DryRun).
		Int("actions", len(p.Actions)).
		Msg("Applying sync plan")

	actions := executor.Apply(env.FS, p, executor.Options{
		DryRun: opts.DryRun,
		Clock:  opts.Clock,
	})

	return &Result{Plan: p, Actions: actions}, nil
}
