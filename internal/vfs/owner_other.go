//go:build !unix

package vfs

import "io/fs"

func fileUID(info fs.FileInfo) (int, bool) {
	if st, ok := info.Sys().(uidStater); ok {
		return st.Uid(), true
	}

	return 0, false
}
