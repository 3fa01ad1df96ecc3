package testutil

import (
	"io/fs"
	"path/filepath"

	"github.com/peterkaminski/obsidian-settings-manager/pkg/types"
)

// FailFS wraps a types.FS and fails selected operations, for exercising
// per-action failure handling.
type FailFS struct {
	types.FS

	// errs maps op+path to the injected error
	errs map[string]error
}

// NewFailFS wraps inner with no failures injected.
func NewFailFS(inner types.FS) *FailFS {
	return &FailFS{FS: inner, errs: make(map[string]error)}
}

// FailOn injects err for the given operation ("stat", "write", "rename",
// "remove", "removeall", "mkdirall", "read", "readdir") on path.
func (f *FailFS) FailOn(op, path string, err error) {
	f.errs[op+":"+filepath.Clean(path)] = err
}

func (f *FailFS) injected(op, path string) error {
	return f.errs[op+":"+filepath.Clean(path)]
}

func (f *FailFS) Stat(name string) (fs.FileInfo, error) {
	if err := f.injected("stat", name); err != nil {
		return nil, err
	}
	return f.FS.Stat(name)
}

func (f *FailFS) ReadFile(name string) ([]byte, error) {
	if err := f.injected("read", name); err != nil {
		return nil, err
	}
	return f.FS.ReadFile(name)
}

func (f *FailFS) ReadDir(name string) ([]fs.DirEntry, error) {
	if err := f.injected("readdir", name); err != nil {
		return nil, err
	}
	return f.FS.ReadDir(name)
}

func (f *FailFS) WriteFile(name string, data []byte, perm fs.FileMode) error {
	if err := f.injected("write", name); err != nil {
		return err
	}
	return f.FS.WriteFile(name, data, perm)
}

func (f *FailFS) MkdirAll(path string, perm fs.FileMode) error {
	if err := f.injected("mkdirall", path); err != nil {
		return err
	}
	return f.FS.MkdirAll(path, perm)
}

func (f *FailFS) Rename(oldpath, newpath string) error {
	if err := f.injected("rename", oldpath); err != nil {
		return err
	}
	return f.FS.Rename(oldpath, newpath)
}

func (f *FailFS) Remove(name string) error {
	if err := f.injected("remove", name); err != nil {
		return err
	}
	return f.FS.Remove(name)
}

func (f *FailFS) RemoveAll(path string) error {
	if err := f.injected("removeall", path); err != nil {
		return err
	}
	return f.FS.RemoveAll(path)
}
