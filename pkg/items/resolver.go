// Package items resolves which catalog entries are actually present in a
// source vault's settings sub-directory.
package items

import (
	"os"

	"github.com/peterkaminski/obsidian-settings-manager/pkg/logging"
	"github.com/peterkaminski/obsidian-settings-manager/pkg/types"
)

// Resolve probes the vault's settings sub-directory for each catalog entry,
// in catalog order, and returns the entries that exist. An absent entry is
// simply left out; it is not an error. Resolve never creates or removes
// anything.
func Resolve(fs types.FS, vault types.Vault, settingsDir string, catalog types.Catalog) ([]types.Item, error) {
	logger := logging.GetLogger("items")

	var present []types.Item
	for _, name := range catalog {
		info, err := fs.Stat(vault.ItemPath(settingsDir, name))
		if err != nil {
			if os.IsNotExist(err) {
				continue
			}
			return nil, err
		}
		kind := types.KindFile
		if info.IsDir() {
			kind = types.KindDir
		}
		present = append(present, types.Item{Name: name, Kind: kind})
	}

	logger.Debug().
		Str("vault", vault.Name).
		Int("present", len(present)).
		Int("catalog", len(catalog)).
		Msg("Resolved item set")

	return present, nil
}
