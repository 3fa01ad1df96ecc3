// Package diff computes read-only structural comparisons between a source
// vault's item set and the corresponding items in every other vault.
// Directory items are compared recursively so a caller sees exactly which
// nested file changed, not just that something did.
package diff

import (
	"os"
	"path/filepath"
	"sort"

	"github.com/peterkaminski/obsidian-settings-manager/pkg/internal/hashutil"
	"github.com/peterkaminski/obsidian-settings-manager/pkg/items"
	"github.com/peterkaminski/obsidian-settings-manager/pkg/logging"
	"github.com/peterkaminski/obsidian-settings-manager/pkg/types"
)

// Status classifies one node of a comparison.
type Status int

const (
	// StatusSame means both sides exist with equal content
	StatusSame Status = iota

	// StatusDiffers means both sides exist with different content, or one
	// side is a file where the other is a directory
	StatusDiffers

	// StatusSourceOnly means the entry exists only in the source; an update
	// would create it in the destination
	StatusSourceOnly

	// StatusDestOnly means the entry exists only in the destination
	StatusDestOnly
)

// String returns the status label used in rendered reports.
func (s Status) String() string {
	switch s {
	case StatusSame:
		return "same"
	case StatusDiffers:
		return "differs"
	case StatusSourceOnly:
		return "source-only"
	case StatusDestOnly:
		return "dest-only"
	default:
		return "unknown"
	}
}

// Node is one entry in a comparison tree, addressable via Path.
type Node struct {
	// Name is the entry name
	Name string

	// Path is the entry path relative to the settings sub-directory
	Path string

	// IsDir records whether the entry is a directory on either side
	IsDir bool

	// Status is the comparison outcome. For directories it is StatusDiffers
	// when any descendant differs.
	Status Status

	// Children holds the entries of directory nodes, name-sorted
	Children []*Node
}

// VaultDiff is the comparison of the source item set against one
// destination vault.
type VaultDiff struct {
	Dest  types.Vault
	Items []*Node
}

// Compare resolves the source's item set and compares it against every
// other vault, preserving registry order. Purely read-only.
func Compare(fs types.FS, source types.Vault, vaults []types.Vault, settingsDir string, catalog types.Catalog) ([]VaultDiff, error) {
	logger := logging.GetLogger("diff")

	resolved, err := items.Resolve(fs, source, settingsDir, catalog)
	if err != nil {
		return nil, err
	}

	var diffs []VaultDiff
	for _, dest := range vaults {
		if dest.SamePath(source) {
			continue
		}

		vd := VaultDiff{Dest: dest}
		for _, item := range resolved {
			node, err := compareEntry(fs,
				source.ItemPath(settingsDir, item.Name),
				dest.ItemPath(settingsDir, item.Name),
				item.Name, item.Name)
			if err != nil {
				return nil, err
			}
			vd.Items = append(vd.Items, node)
		}
		diffs = append(diffs, vd)
	}

	logger.Debug().
		Str("source", source.Name).
		Int("destinations", len(diffs)).
		Msg("Computed diff")

	return diffs, nil
}

// compareEntry compares one path on both sides, recursing into directories.
func compareEntry(fs types.FS, srcPath, destPath, name, relPath string) (*Node, error) {
	node := &Node{Name: name, Path: relPath}

	srcInfo, srcErr := fs.Stat(srcPath)
	destInfo, destErr := fs.Stat(destPath)

	srcExists, err := checkStat(srcErr)
	if err != nil {
		return nil, err
	}
	destExists, err := checkStat(destErr)
	if err != nil {
		return nil, err
	}

	switch {
	case srcExists && !destExists:
		node.IsDir = srcInfo.IsDir()
		node.Status = StatusSourceOnly
		if node.IsDir {
			if err := listOneSide(fs, srcPath, relPath, StatusSourceOnly, node); err != nil {
				return nil, err
			}
		}
		return node, nil

	case !srcExists && destExists:
		node.IsDir = destInfo.IsDir()
		node.Status = StatusDestOnly
		if node.IsDir {
			if err := listOneSide(fs, destPath, relPath, StatusDestOnly, node); err != nil {
				return nil, err
			}
		}
		return node, nil

	case !srcExists && !destExists:
		// Resolver guarantees the top-level item exists in the source, so
		// this only happens for racy deletions; nothing to report.
		node.Status = StatusSame
		return node, nil
	}

	if srcInfo.IsDir() != destInfo.IsDir() {
		node.IsDir = true
		node.Status = StatusDiffers
		return node, nil
	}

	if !srcInfo.IsDir() {
		same, err := sameContent(fs, srcPath, destPath)
		if err != nil {
			return nil, err
		}
		if same {
			node.Status = StatusSame
		} else {
			node.Status = StatusDiffers
		}
		return node, nil
	}

	node.IsDir = true
	names, err := unionNames(fs, srcPath, destPath)
	if err != nil {
		return nil, err
	}

	node.Status = StatusSame
	for _, childName := range names {
		child, err := compareEntry(fs,
			filepath.Join(srcPath, childName),
			filepath.Join(destPath, childName),
			childName,
			relPath+"/"+childName)
		if err != nil {
			return nil, err
		}
		node.Children = append(node.Children, child)
		if child.Status != StatusSame {
			node.Status = StatusDiffers
		}
	}
	return node, nil
}

// listOneSide fills node.Children for a directory that exists on only one
// side, marking every descendant with the given status.
func listOneSide(fs types.FS, dir, relPath string, status Status, node *Node) error {
	entries, err := fs.ReadDir(dir)
	if err != nil {
		return err
	}
	for _, entry := range entries {
		child := &Node{
			Name:   entry.Name(),
			Path:   relPath + "/" + entry.Name(),
			IsDir:  entry.IsDir(),
			Status: status,
		}
		if entry.IsDir() {
			if err := listOneSide(fs, filepath.Join(dir, entry.Name()), child.Path, status, child); err != nil {
				return err
			}
		}
		node.Children = append(node.Children, child)
	}
	return nil
}

func sameContent(fs types.FS, a, b string) (bool, error) {
	hashA, err := hashutil.FileChecksum(fs, a)
	if err != nil {
		return false, err
	}
	hashB, err := hashutil.FileChecksum(fs, b)
	if err != nil {
		return false, err
	}
	return hashA == hashB, nil
}

// unionNames returns the sorted union of entry names from both directories.
func unionNames(fs types.FS, srcDir, destDir string) ([]string, error) {
	seen := make(map[string]bool)
	for _, dir := range []string{srcDir, destDir} {
		entries, err := fs.ReadDir(dir)
		if err != nil {
			if os.IsNotExist(err) {
				continue
			}
			return nil, err
		}
		for _, entry := range entries {
			seen[entry.Name()] = true
		}
	}
	names := make([]string, 0, len(seen))
	for name := range seen {
		names = append(names, name)
	}
	sort.Strings(names)
	return names, nil
}

func checkStat(err error) (bool, error) {
	if err == nil {
		return true, nil
	}
	if os.IsNotExist(err) {
		return false, nil
	}
	return false, err
}

// HasDifferences reports whether any item in the vault diff is not
// StatusSame.
func (vd VaultDiff) HasDifferences() bool {
	for _, item := range vd.Items {
		if item.Status != StatusSame {
			return true
		}
	}
	return false
}
