package types

import (
	"os"
	"path/filepath"
)

// Vault represents one Obsidian vault known to the registry.
type Vault struct {
	// Name is the vault name (the directory base name)
	Name string

	// Path is the absolute path to the vault root
	Path string
}

// SettingsDir returns the full path to the vault's settings sub-directory
// (normally ".obsidian").
func (v Vault) SettingsDir(dirName string) string {
	return filepath.Join(v.Path, dirName)
}

// ItemPath returns the full path to a settings item within the vault.
func (v Vault) ItemPath(dirName, itemName string) string {
	return filepath.Join(v.Path, dirName, itemName)
}

// ItemExists checks whether a settings item exists within the vault.
func (v Vault) ItemExists(fs FS, dirName, itemName string) (bool, error) {
	_, err := fs.Stat(v.ItemPath(dirName, itemName))
	if err != nil {
		if os.IsNotExist(err) {
			return false, nil
		}
		return false, err
	}
	return true, nil
}

// DisplayPath returns the vault path relative to the user's home directory
// when it lives under it, which reads better in listings.
func (v Vault) DisplayPath() string {
	home, err := os.UserHomeDir()
	if err != nil {
		return v.Path
	}
	rel, err := filepath.Rel(home, v.Path)
	if err != nil || rel == ".." || filepath.IsAbs(rel) || len(rel) >= 2 && rel[:2] == ".." {
		return v.Path
	}
	return rel
}

// SamePath reports whether two vaults point at the same root directory.
// Paths from the registry are absolute, so a cleaned comparison is enough.
func (v Vault) SamePath(other Vault) bool {
	return filepath.Clean(v.Path) == filepath.Clean(other.Path)
}
