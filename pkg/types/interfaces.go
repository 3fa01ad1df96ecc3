package types

import (
	"io/fs"
)

// FS is the filesystem interface required for osm operations.
//
// The plan builder and differ only ever use the read side (Stat, ReadFile,
// ReadDir); mutation is confined to the executor and backup removal. Tests
// substitute an in-memory implementation from pkg/filesystem.
type FS interface {
	// Read operations
	Stat(name string) (fs.FileInfo, error)
	Lstat(name string) (fs.FileInfo, error)
	ReadFile(name string) ([]byte, error)
	ReadDir(name string) ([]fs.DirEntry, error)

	// Write operations
	WriteFile(name string, data []byte, perm fs.FileMode) error
	MkdirAll(path string, perm fs.FileMode) error
	Rename(oldpath, newpath string) error
	Remove(name string) error
	RemoveAll(path string) error
}
