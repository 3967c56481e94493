package types

import (
	"io/fs"
)

// FS is the filesystem interface required for linkdot operations
type FS interface {
	// Stat follows symlinks; Lstat does not
	Stat(name string) (fs.FileInfo, error)
	Lstat(name string) (fs.FileInfo, error)

	// ReadDir lists a directory's immediate children
	ReadDir(name string) ([]fs.DirEntry, error)

	// Symlink operations
	Symlink(oldname, newname string) error
	Readlink(name string) (string, error)

	// Directory operations
	MkdirAll(path string, perm fs.FileMode) error

	// Remove deletes a file or symlink. For a directory symlink it must
	// delete the link itself, never its contents.
	Remove(name string) error

	// Hide sets hidden/system attributes on the path. Best-effort; a
	// no-op returning nil on platforms without such attributes.
	Hide(name string) error
}

// Detector decides whether a component's application is present on the
// host. Implementations live outside the reconciliation core.
type Detector interface {
	Detect(c *Component) (Availability, error)
}
