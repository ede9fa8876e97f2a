package vfs

import (
	"fmt"
	"io"
	"io/fs"
	"os"
	"path/filepath"
	"sort"
	"time"
)

// Default permissions for entries created by the gateway (before umask).
const (
	DirPerm  fs.FileMode = 0o755
	FilePerm fs.FileMode = 0o644
)

// Metadata describes a single entry for long listings.
type Metadata struct {
	Name    string
	Size    int64
	ModTime time.Time
	Perm    string
	Owner   string
	IsDir   bool
}

// SameFileError is returned by CopyFile when src and dst name the same file.
type SameFileError struct {
	Src string
	Dst string
}

func (e *SameFileError) Error() string {
	return fmt.Sprintf("'%s' and '%s' are the same file", e.Src, e.Dst)
}

// OwnerFunc returns the owner name of a file.
type OwnerFunc func(info fs.FileInfo) string

// Gateway exposes the filesystem operations the shell performs.
// Every call maps onto a single FileSystem primitive (or a short, fully
// scoped sequence of them); the gateway keeps no state of its own.
type Gateway struct {
	fs    FileSystem
	owner OwnerFunc
}

// NewGateway creates a gateway over fsys. A nil owner uses the process
// user database.
func NewGateway(fsys FileSystem, owner OwnerFunc) *Gateway {
	if owner == nil {
		owner = NewOwnerLookup().Owner
	}

	return &Gateway{
		fs:    fsys,
		owner: owner,
	}
}

// DirExists reports whether path exists and is a directory.
func (g *Gateway) DirExists(path string) bool {
	info, err := g.fs.Stat(path)
	return err == nil && info.IsDir()
}

// FileExists reports whether path exists and is not a directory.
func (g *Gateway) FileExists(path string) bool {
	info, err := g.fs.Stat(path)
	return err == nil && !info.IsDir()
}

// List returns the immediate sub-directories and files of dir as full paths,
// each group sorted by name.
func (g *Gateway) List(dir string) (dirs, files []string, err error) {
	entries, err := g.fs.ReadDir(dir)
	if err != nil {
		return nil, nil, err
	}

	sort.Slice(entries, func(i, j int) bool {
		return entries[i].Name() < entries[j].Name()
	})

	for _, entry := range entries {
		path := filepath.Join(dir, entry.Name())

		isDir := entry.IsDir()
		if entry.Type()&fs.ModeSymlink != 0 {
			// Classify links by their target, like the listing a user expects.
			isDir = g.DirExists(path)
		}

		if isDir {
			dirs = append(dirs, path)
		} else {
			files = append(files, path)
		}
	}

	return dirs, files, nil
}

// CreateDir creates path along with any missing parents.
func (g *Gateway) CreateDir(path string) error {
	return g.fs.MkdirAll(path, DirPerm)
}

// DeleteFile removes a single file.
func (g *Gateway) DeleteFile(path string) error {
	return g.fs.Remove(path)
}

// DeleteDirAll removes a directory and everything below it.
func (g *Gateway) DeleteDirAll(path string) error {
	return g.fs.RemoveAll(path)
}

// CopyFile copies the contents of src to dst. When overwrite is false an
// existing dst is an error. Copying a file onto itself is refused before dst
// is truncated.
func (g *Gateway) CopyFile(src, dst string, overwrite bool) (err error) {
	info, err := g.fs.Stat(src)
	if err != nil {
		return err
	}

	if filepath.Clean(src) == filepath.Clean(dst) {
		return &SameFileError{Src: src, Dst: dst}
	}
	if dstInfo, err := g.fs.Stat(dst); err == nil && os.SameFile(info, dstInfo) {
		return &SameFileError{Src: src, Dst: dst}
	}

	in, err := g.fs.OpenFile(src, os.O_RDONLY, 0)
	if err != nil {
		return err
	}
	defer in.Close()

	flag := os.O_WRONLY | os.O_CREATE | os.O_TRUNC
	if !overwrite {
		flag |= os.O_EXCL
	}

	out, err := g.fs.OpenFile(dst, flag, info.Mode().Perm())
	if err != nil {
		return err
	}

	defer func() {
		if cerr := out.Close(); cerr != nil && err == nil {
			err = cerr
		}
	}()

	if _, err = io.Copy(out, in); err != nil {
		return fmt.Errorf("copy %s to %s: %w", src, dst, err)
	}

	return nil
}

// MoveFile renames src to dst.
func (g *Gateway) MoveFile(src, dst string) error {
	return g.fs.Rename(src, dst)
}

// ReadAllText returns the whole content of path.
func (g *Gateway) ReadAllText(path string) (string, error) {
	data, err := g.fs.ReadFile(path)
	if err != nil {
		return "", err
	}

	return string(data), nil
}

// CreateEmptyFile creates path if it does not exist. Existing content is kept.
func (g *Gateway) CreateEmptyFile(path string) error {
	f, err := g.fs.OpenFile(path, os.O_WRONLY|os.O_CREATE, FilePerm)
	if err != nil {
		return err
	}

	return f.Close()
}

// SetModTime sets both access and modification time of path to t.
func (g *Gateway) SetModTime(path string, t time.Time) error {
	return g.fs.Chtimes(path, t, t)
}

// Metadata returns the listing attributes of path. The size of a directory
// is the recursive sum of the files it contains; parts that cannot be read
// do not count.
func (g *Gateway) Metadata(path string) (Metadata, error) {
	info, err := g.fs.Stat(path)
	if err != nil {
		return Metadata{}, err
	}

	md := Metadata{
		Name:    info.Name(),
		Size:    info.Size(),
		ModTime: info.ModTime(),
		Perm:    info.Mode().String(),
		Owner:   g.owner(info),
		IsDir:   info.IsDir(),
	}

	if md.IsDir {
		md.Size, _ = g.DirSize(path)
	}

	return md, nil
}

// DirSize returns the total size in bytes of all regular files below dir.
// Unreadable subtrees and entries are skipped. The error is that of the walk
// itself, and total then holds what was summed before it failed.
func (g *Gateway) DirSize(dir string) (int64, error) {
	var total int64

	err := g.fs.WalkDir(dir, func(_ string, d fs.DirEntry, err error) error {
		if err != nil {
			// Nothing below an unreadable directory gets visited.
			return nil
		}

		if !d.Type().IsRegular() {
			return nil
		}

		info, err := d.Info()
		if err != nil {
			return nil
		}

		total += info.Size()

		return nil
	})

	return total, err
}
