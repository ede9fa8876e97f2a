package vfs

import (
	"io/fs"
	"os/user"
	"strconv"
)

// unknownOwner is printed when a file system does not report ownership.
const unknownOwner = "-"

// OwnerLookup resolves file owners to user names, caching every uid it sees.
type OwnerLookup struct {
	names map[int]string
}

// NewOwnerLookup creates an empty lookup cache.
func NewOwnerLookup() *OwnerLookup {
	return &OwnerLookup{names: make(map[int]string)}
}

// Owner returns the user name owning info, the numeric uid when the user
// database has no entry, or "-" when the file system reports no owner.
func (o *OwnerLookup) Owner(info fs.FileInfo) string {
	uid, ok := fileUID(info)
	if !ok {
		return unknownOwner
	}

	if name, ok := o.names[uid]; ok {
		return name
	}

	name := strconv.Itoa(uid)
	if u, err := user.LookupId(name); err == nil {
		name = u.Username
	}

	o.names[uid] = name

	return name
}

// uidStater is implemented by the Sys() value of avfs file infos.
type uidStater interface {
	Uid() int
}
