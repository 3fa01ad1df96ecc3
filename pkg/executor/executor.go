// Package executor applies a sync plan against the filesystem, or reports
// it in dry-run mode. The dry-run report is identical in shape to a live
// run's report, backup names included; only the Applied flag and the actual
// mutation differ. Actions are applied independently: one failure is
// recorded and the rest of the plan still runs.
package executor

import (
	"io/fs"
	"os"
	"path/filepath"
	"time"

	"github.com/peterkaminski/obsidian-settings-manager/pkg/backup"
	"github.com/peterkaminski/obsidian-settings-manager/pkg/errors"
	"github.com/peterkaminski/obsidian-settings-manager/pkg/logging"
	"github.com/peterkaminski/obsidian-settings-manager/pkg/types"
)

// Options controls how a plan is applied.
type Options struct {
	// DryRun reports the plan's actions without issuing any writes
	DryRun bool

	// Clock resolves backup timestamps; defaults to time.Now
	Clock backup.Clock
}

// Apply runs every action in the plan, in order, and returns the per-action
// outcomes. It never aborts early: a failed action (permission problem on
// one vault, say) must not block copies to the others.
func Apply(filesys types.FS, p *types.SyncPlan, opts Options) []types.ExecutedAction {
	logger := logging.GetLogger("executor")

	clock := opts.Clock
	if clock == nil {
		clock = time.Now
	}

	results := make([]types.ExecutedAction, 0, len(p.Actions))
	for _, action := range p.Actions {
		result := types.ExecutedAction{Action: action}

		// Backup names are resolved here, not at plan time, so the
		// timestamp reflects the actual apply time. Dry-run resolves
		// them the same way to keep the reports comparable.
		if action.Op == types.OpBackupCopy {
			result.BackupName = backup.Name(action.Item.Name, clock)
		}

		if err := apply(filesys, p, action, result.BackupName, opts.DryRun); err != nil {
			result.Err = errors.Wrapf(err, errors.ErrActionFailed,
				"%s of %s to vault %s failed", action.Op, action.Item.Name, action.Dest.Name).
				WithDetail("vault", action.Dest.Name).
				WithDetail("item", action.Item.Name).
				WithDetail("operation", action.Op.String())
			logger.Warn().Err(err).
				Str("vault", action.Dest.Name).
				Str("item", action.Item.Name).
				Str("op", action.Op.String()).
				Msg("Action failed, continuing with remaining actions")
		} else {
			result.Applied = !opts.DryRun
		}

		results = append(results, result)
	}

	return results
}

// apply performs one action. In dry-run mode only the read-only validation
// happens; every write is skipped.
func apply(filesys types.FS, p *types.SyncPlan, action types.SyncAction, backupName string, dryRun bool) error {
	destSettings := action.Dest.SettingsDir(p.SettingsDir)

	if action.Op == types.OpResetSettings {
		if dryRun {
			return nil
		}
		if err := filesys.RemoveAll(destSettings); err != nil {
			return err
		}
		return filesys.MkdirAll(destSettings, 0755)
	}

	if action.Op == types.OpSkip {
		return nil
	}

	srcPath := p.Source.ItemPath(p.SettingsDir, action.Item.Name)
	destPath := action.Dest.ItemPath(p.SettingsDir, action.Item.Name)

	// The item set was resolved at plan time; re-check so a source that
	// changed underneath us fails loudly instead of half-copying.
	if _, err := filesys.Stat(srcPath); err != nil {
		return err
	}

	switch action.Op {
	case types.OpBackupCopy:
		if dryRun {
			return nil
		}
		if err := filesys.Rename(destPath, action.Dest.ItemPath(p.SettingsDir, backupName)); err != nil {
			return err
		}
	case types.OpReplaceExact:
		if dryRun {
			return nil
		}
		exists, err := action.Dest.ItemExists(filesys, p.SettingsDir, action.Item.Name)
		if err != nil {
			return err
		}
		if exists {
			if err := filesys.RemoveAll(destPath); err != nil {
				return err
			}
		}
	case types.OpCreate:
		if dryRun {
			return nil
		}
	}

	return copyItem(filesys, srcPath, destPath)
}

// copyItem copies a file or directory tree from src to dst. The
// destination's parent is created if needed (a fresh vault may not have a
// settings sub-directory yet).
func copyItem(filesys types.FS, src, dst string) error {
	info, err := filesys.Stat(src)
	if err != nil {
		return err
	}
	if err := filesys.MkdirAll(filepath.Dir(dst), 0755); err != nil {
		return err
	}
	if info.IsDir() {
		return copyDir(filesys, src, dst, info.Mode())
	}
	return copyFile(filesys, src, dst, info.Mode())
}

func copyDir(filesys types.FS, src, dst string, mode fs.FileMode) error {
	if err := filesys.MkdirAll(dst, mode.Perm()|0700); err != nil {
		return err
	}
	entries, err := filesys.ReadDir(src)
	if err != nil {
		return err
	}
	for _, entry := range entries {
		srcEntry := filepath.Join(src, entry.Name())
		dstEntry := filepath.Join(dst, entry.Name())
		if entry.IsDir() {
			info, err := entry.Info()
			if err != nil {
				return err
			}
			if err := copyDir(filesys, srcEntry, dstEntry, info.Mode()); err != nil {
				return err
			}
			continue
		}
		info, err := entry.Info()
		if err != nil {
			return err
		}
		if err := copyFile(filesys, srcEntry, dstEntry, info.Mode()); err != nil {
			return err
		}
	}
	return nil
}

func copyFile(filesys types.FS, src, dst string, mode fs.FileMode) error {
	data, err := filesys.ReadFile(src)
	if err != nil {
		return err
	}
	perm := mode.Perm()
	if perm == 0 {
		perm = os.FileMode(0644)
	}
	return filesys.WriteFile(dst, data, perm)
}
