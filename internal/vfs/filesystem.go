package vfs

import (
	"io/fs"
	"os"
	"path/filepath"
	"time"

	"github.com/avfs/avfs"
)

// FileSystem is the subset of avfs.VFS the shell needs.
// Any avfs file system satisfies it, so tests can run on an in-memory one.
type FileSystem interface {
	// Stat returns a FileInfo describing the named file.
	// Compatible with os.Stat
	Stat(name string) (fs.FileInfo, error)

	// ReadDir reads the named directory, returning its entries sorted by filename.
	// Compatible with os.ReadDir
	ReadDir(name string) ([]fs.DirEntry, error)

	// MkdirAll creates a directory along with any necessary parents.
	// Compatible with os.MkdirAll
	MkdirAll(path string, perm fs.FileMode) error

	// Remove removes the named file or empty directory.
	// Compatible with os.Remove
	Remove(name string) error

	// RemoveAll removes path and any children it contains.
	// Compatible with os.RemoveAll
	RemoveAll(path string) error

	// Rename renames (moves) oldpath to newpath.
	// Compatible with os.Rename
	Rename(oldpath, newpath string) error

	// ReadFile reads the named file and returns the contents.
	// Compatible with os.ReadFile
	ReadFile(name string) ([]byte, error)

	// OpenFile opens the named file with specified flag (O_RDONLY etc.) and perm.
	// Compatible with os.OpenFile
	OpenFile(name string, flag int, perm fs.FileMode) (avfs.File, error)

	// Chtimes changes the access and modification times of the named file.
	// Compatible with os.Chtimes
	Chtimes(name string, atime, mtime time.Time) error

	// WalkDir walks the file tree rooted at root, calling fn for each entry.
	// Compatible with filepath.WalkDir
	WalkDir(root string, fn fs.WalkDirFunc) error
}

// OS implements FileSystem using real os calls
type OS struct{}

func (OS) Stat(name string) (fs.FileInfo, error) {
	return os.Stat(name)
}

func (OS) ReadDir(name string) ([]fs.DirEntry, error) {
	return os.ReadDir(name)
}

func (OS) MkdirAll(path string, perm fs.FileMode) error {
	return os.MkdirAll(path, perm)
}

func (OS) Remove(name string) error {
	return os.Remove(name)
}

func (OS) RemoveAll(path string) error {
	return os.RemoveAll(path)
}

func (OS) Rename(oldpath, newpath string) error {
	return os.Rename(oldpath, newpath)
}

func (OS) ReadFile(name string) ([]byte, error) {
	return os.ReadFile(name)
}

func (OS) OpenFile(name string, flag int, perm fs.FileMode) (avfs.File, error) {
	return os.OpenFile(name, flag, perm)
}

func (OS) Chtimes(name string, atime, mtime time.Time) error {
	return os.Chtimes(name, atime, mtime)
}

func (OS) WalkDir(root string, fn fs.WalkDirFunc) error {
	return filepath.WalkDir(root, fn)
}
