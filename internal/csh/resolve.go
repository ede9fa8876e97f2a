package csh

import (
	"path/filepath"
	"strings"
)

// Resolve turns arg into an absolute, cleaned path relative to cwd.
// It never touches the filesystem; callers check existence afterwards.
//
//	""      home
//	".."    parent of cwd, ErrAtRoot when cwd is a root
//	"~"     home, "~/x" is x under home
//	"/abs"  arg itself
//	other   arg joined under cwd
func Resolve(cwd, home, arg string) (string, error) {
	switch {
	case arg == "":
		return home, nil
	case arg == "..":
		return Parent(cwd)
	case arg == "~":
		return home, nil
	case strings.HasPrefix(arg, "~/"):
		return filepath.Join(home, arg[2:]), nil
	case filepath.IsAbs(arg):
		return filepath.Clean(arg), nil
	default:
		return filepath.Join(cwd, arg), nil
	}
}

// Parent returns the directory above dir, or ErrAtRoot when dir is a root.
func Parent(dir string) (string, error) {
	dir = filepath.Clean(dir)

	parent := filepath.Dir(dir)
	if parent == dir {
		return "", ErrAtRoot
	}

	return parent, nil
}

// DirLabel is the directory part of the prompt: the last segment of cwd,
// "~" for the home directory (or a segment named after the user), and the
// root itself at the top of the tree.
func DirLabel(cwd, home, userName string) string {
	cwd = filepath.Clean(cwd)
	if home != "" && cwd == filepath.Clean(home) {
		return "~"
	}

	label := filepath.Base(cwd)
	if label == userName {
		return "~"
	}

	return label
}
