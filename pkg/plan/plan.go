// Package plan computes the ordered action sequence a sync would perform,
// without performing any of it. Plans are pure data; pkg/executor applies
// them and pkg/diff answers the same questions read-only.
package plan

import (
	"os"

	"github.com/peterkaminski/obsidian-settings-manager/pkg/errors"
	"github.com/peterkaminski/obsidian-settings-manager/pkg/items"
	"github.com/peterkaminski/obsidian-settings-manager/pkg/logging"
	"github.com/peterkaminski/obsidian-settings-manager/pkg/types"
)

// Build computes the sync plan from source to every other vault in vaults.
//
// Destinations keep their registry order and items their catalog order, so
// reports and logs are reproducible. The source is re-validated here rather
// than trusted from registry load time: a vault whose settings
// sub-directory has gone missing yields ErrSourceVaultNotFound.
//
// In destructive mode every destination gets a single reset step that wipes
// and recreates its settings sub-directory, followed by replace-exact
// actions for each item. Otherwise each item gets backup-copy when the
// destination already has it, plain create when it does not. Backup names
// are resolved at apply time so their timestamps reflect the actual run.
func Build(fs types.FS, source types.Vault, vaults []types.Vault, settingsDir string, catalog types.Catalog, destructive bool) (*types.SyncPlan, error) {
	logger := logging.GetLogger("plan")

	if _, err := fs.Stat(source.SettingsDir(settingsDir)); err != nil {
		if os.IsNotExist(err) {
			return nil, errors.Newf(errors.ErrSourceVaultNotFound,
				"vault %s has no %s directory; pick a source vault that has been opened in Obsidian", source.Name, settingsDir).
				WithDetail("vault", source.Name).
				WithDetail("path", source.Path)
		}
		return nil, errors.Wrapf(err, errors.ErrSourceVaultNotFound,
			"cannot access settings of source vault %s", source.Name).
			WithDetail("vault", source.Name)
	}

	resolved, err := items.Resolve(fs, source, settingsDir, catalog)
	if err != nil {
		return nil, err
	}

	p := &types.SyncPlan{
		Source:      source,
		SettingsDir: settingsDir,
		Items:       resolved,
		Destructive: destructive,
	}

	for _, dest := range vaults {
		if dest.SamePath(source) {
			continue
		}

		if destructive {
			p.Actions = append(p.Actions, types.SyncAction{
				Op:   types.OpResetSettings,
				Dest: dest,
			})
		}

		for _, item := range resolved {
			action := types.SyncAction{Item: item, Dest: dest}
			switch {
			case destructive:
				action.Op = types.OpReplaceExact
			default:
				exists, err := dest.ItemExists(fs, settingsDir, item.Name)
				if err != nil {
					return nil, errors.Wrapf(err, errors.ErrFileAccess,
						"cannot probe %s in vault %s", item.Name, dest.Name).
						WithDetail("vault", dest.Name).
						WithDetail("item", item.Name)
				}
				if exists {
					action.Op = types.OpBackupCopy
				} else {
					action.Op = types.OpCreate
				}
			}
			p.Actions = append(p.Actions, action)
		}
	}

	logger.Debug().
		Str("source", source.Name).
		Int("items", len(resolved)).
		Int("actions", len(p.Actions)).
		Bool("destructive", destructive).
		Msg("Built sync plan")

	return p, nil
}
