package csh

import (
	"errors"
	"fmt"
	"path/filepath"
	"strconv"
	"strings"

	"github.com/mako10k/csh/internal/vfs"
)

// timeLayout is the modification time format of long listings.
const timeLayout = "2006-01-02 15:04"

type lsOptions struct {
	all  bool
	long bool
	dir  string
}

func parseLsArgs(args []string) (lsOptions, error) {
	var opts lsOptions

	for _, arg := range args {
		if len(arg) < 2 || arg[0] != '-' {
			if opts.dir == "" {
				opts.dir = arg
			}
			continue
		}

		for _, c := range arg[1:] {
			switch c {
			case 'a':
				opts.all = true
			case 'l':
				opts.long = true
			default:
				return opts, &UsageError{Cmd: "ls", Msg: fmt.Sprintf("invalid option -- '%c'", c)}
			}
		}
	}

	return opts, nil
}

// cmdLs lists directories first, then files, each group by name.
func cmdLs(env *Env, args []string) error {
	opts, err := parseLsArgs(args)
	if err != nil {
		return err
	}

	dir := env.Session.Cwd
	if opts.dir != "" {
		dir, err = Resolve(env.Session.Cwd, env.Session.Home, opts.dir)
		if errors.Is(err, ErrAtRoot) {
			dir = env.Session.Cwd
		}
		if env.FS.FileExists(dir) {
			return &UsageError{Cmd: "ls", Msg: fmt.Sprintf("cannot access '%s': Not a directory", opts.dir)}
		}
		if !env.FS.DirExists(dir) {
			return notFound(dir, "ls: cannot access '%s': No such file or directory", opts.dir)
		}
	}

	dirs, files, err := env.FS.List(dir)
	if err != nil {
		return ioError("ls", err)
	}

	entries := make([]string, 0, len(dirs)+len(files))
	for _, path := range append(dirs, files...) {
		if !opts.all && strings.HasPrefix(filepath.Base(path), ".") {
			continue
		}
		entries = append(entries, path)
	}

	if !opts.long {
		for _, path := range entries {
			env.Println(filepath.Base(path))
		}
		return nil
	}

	rows := make([]vfs.Metadata, 0, len(entries))
	for _, path := range entries {
		md, err := env.FS.Metadata(path)
		if err != nil {
			return ioError("ls", err)
		}
		md.Name = filepath.Base(path)
		rows = append(rows, md)
	}

	for _, line := range formatLong(rows) {
		env.Println(line)
	}

	return nil
}

// formatLong renders one line per entry with the owner and size columns
// padded to the widest value.
func formatLong(rows []vfs.Metadata) []string {
	ownerWidth, sizeWidth := 0, 0
	for _, md := range rows {
		ownerWidth = max(ownerWidth, len(md.Owner))
		sizeWidth = max(sizeWidth, len(strconv.FormatInt(md.Size, 10)))
	}

	lines := make([]string, 0, len(rows))
	for _, md := range rows {
		lines = append(lines, fmt.Sprintf("%s %-*s %*d %s %s",
			md.Perm, ownerWidth, md.Owner, sizeWidth, md.Size, md.ModTime.Format(timeLayout), md.Name))
	}

	return lines
}
