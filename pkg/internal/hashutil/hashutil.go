package hashutil

import (
	"crypto/sha256"
	"fmt"

	"github.com/peterkaminski/obsidian-settings-manager/pkg/types"
)

// FileChecksum calculates the SHA256 checksum of a file through the
// filesystem abstraction.
func FileChecksum(fs types.FS, path string) (string, error) {
	data, err := fs.ReadFile(path)
	if err != nil {
		return "", err
	}
	return fmt.Sprintf("sha256:%x", sha256.Sum256(data)), nil
}
