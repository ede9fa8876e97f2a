//go:build unix

package vfs

import (
	"io/fs"
	"syscall"
)

func fileUID(info fs.FileInfo) (int, bool) {
	switch st := info.Sys().(type) {
	case *syscall.Stat_t:
		return int(st.Uid), true
	case uidStater:
		return st.Uid(), true
	}

	return 0, false
}
