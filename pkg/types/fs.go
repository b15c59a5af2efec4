package types

import "io/fs"

// FS abstracts the filesystem operations linkzip performs. The default
// implementation in pkg/filesystem is backed by the os package; tests
// build real trees under t.TempDir, so the seam stays small.
type FS interface {
	Stat(name string) (fs.FileInfo, error)
	Lstat(name string) (fs.FileInfo, error)
	ReadDir(name string) ([]fs.DirEntry, error)
	ReadFile(name string) ([]byte, error)
	MkdirAll(path string, perm fs.FileMode) error
	Readlink(name string) (string, error)
}
