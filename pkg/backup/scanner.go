package backup

import (
	"os"

	"github.com/peterkaminski/obsidian-settings-manager/pkg/errors"
	"github.com/peterkaminski/obsidian-settings-manager/pkg/logging"
	"github.com/peterkaminski/obsidian-settings-manager/pkg/types"
)

// Artifact is one backup entry found in a vault's settings sub-directory.
type Artifact struct {
	// Vault is the vault the artifact was found in
	Vault types.Vault

	// Name is the full entry name, timestamp suffix included
	Name string

	// Original is the item name the backup was made from
	Original string

	// Path is the absolute path to the artifact
	Path string

	// IsDir records whether the artifact is a directory
	IsDir bool
}

// RemoveResult is the outcome of removing one artifact.
type RemoveResult struct {
	Artifact Artifact

	// Removed is false in dry-run mode and on failure
	Removed bool

	Err error
}

// Find scans every vault's settings sub-directory for entries matching the
// backup naming pattern. Vaults are visited in the given order; entries
// within a vault in directory order. A vault without a settings
// sub-directory contributes nothing.
func Find(fs types.FS, vaults []types.Vault, settingsDir string) ([]Artifact, error) {
	logger := logging.GetLogger("backup")

	var artifacts []Artifact
	for _, vault := range vaults {
		entries, err := fs.ReadDir(vault.SettingsDir(settingsDir))
		if err != nil {
			if os.IsNotExist(err) {
				continue
			}
			return nil, errors.Wrapf(err, errors.ErrFileAccess,
				"cannot scan settings of vault %s", vault.Name).
				WithDetail("vault", vault.Name)
		}
		for _, entry := range entries {
			original, ok := Recognize(entry.Name())
			if !ok {
				continue
			}
			artifacts = append(artifacts, Artifact{
				Vault:    vault,
				Name:     entry.Name(),
				Original: original,
				Path:     vault.ItemPath(settingsDir, entry.Name()),
				IsDir:    entry.IsDir(),
			})
		}
	}

	logger.Debug().Int("count", len(artifacts)).Msg("Scanned for backup artifacts")
	return artifacts, nil
}

// Remove deletes the given artifacts, best effort. In dry-run mode the
// candidates are reported but nothing is deleted. Confirmation prompts, if
// any, belong to the CLI layer.
func Remove(fs types.FS, artifacts []Artifact, dryRun bool) []RemoveResult {
	logger := logging.GetLogger("backup")

	results := make([]RemoveResult, 0, len(artifacts))
	for _, artifact := range artifacts {
		result := RemoveResult{Artifact: artifact}
		if dryRun {
			results = append(results, result)
			continue
		}

		var err error
		if artifact.IsDir {
			err = fs.RemoveAll(artifact.Path)
		} else {
			err = fs.Remove(artifact.Path)
		}
		if err != nil {
			result.Err = errors.Wrapf(err, errors.ErrBackupRemove,
				"cannot remove backup %s", artifact.Path).
				WithDetail("vault", artifact.Vault.Name).
				WithDetail("artifact", artifact.Name)
			logger.Warn().Err(err).Str("path", artifact.Path).Msg("Backup removal failed")
		} else {
			result.Removed = true
		}
		results = append(results, result)
	}
	return results
}
