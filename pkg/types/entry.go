package types

// EntryKind classifies what sits at a filesystem path.
type EntryKind int

const (
	// EntryMissing means nothing exists at the path
	EntryMissing EntryKind = iota

	// EntryFile means a regular (non-symlink) file
	EntryFile

	// EntryDirectory means a real (non-symlink) directory
	EntryDirectory

	// EntrySymlink means a symbolic link; Entry.LinkTarget carries its
	// resolved destination
	EntrySymlink
)

func (k EntryKind) String() string {
	switch k {
	case EntryMissing:
		return "missing"
	case EntryFile:
		return "file"
	case EntryDirectory:
		return "directory"
	case EntrySymlink:
		return "symlink"
	}
	return "unknown"
}

// Entry is the result of probing a single path. All downstream logic
// branches on this value instead of re-probing the filesystem.
type Entry struct {
	Kind EntryKind

	// LinkTarget is the symlink destination resolved to an absolute,
	// cleaned path. Only set for EntrySymlink.
	LinkTarget string
}
