// Package inspect classifies filesystem entries for the reconciliation
// engine: file, directory, symlink (with resolved target), or missing.
// It is a read-only probe; every downstream decision branches on the
// returned types.Entry instead of re-probing the filesystem.
package inspect

import (
	"os"
	"path/filepath"

	"github.com/arthur-debert/linkdot/pkg/types"
)

// Inspector probes paths through a types.FS.
type Inspector struct {
	fs types.FS
}

// New creates an inspector over the given filesystem.
func New(fs types.FS) *Inspector {
	return &Inspector{fs: fs}
}

// Classify reports what sits at path. A non-existent path is reported as
// EntryMissing, never as an error. For symlinks the resolved absolute
// target is attached so correctness checks are plain string equality.
func (i *Inspector) Classify(path string) types.Entry {
	info, err := i.fs.Lstat(path)
	if err != nil {
		// Treat unreadable the same as absent; the walk must not abort
		// on a single bad probe.
		return types.Entry{Kind: types.EntryMissing}
	}

	if info.Mode()&os.ModeSymlink != 0 {
		target, err := i.fs.Readlink(path)
		if err != nil {
			return types.Entry{Kind: types.EntryMissing}
		}
		return types.Entry{
			Kind:       types.EntrySymlink,
			LinkTarget: i.resolveTarget(path, target),
		}
	}

	if info.IsDir() {
		return types.Entry{Kind: types.EntryDirectory}
	}
	return types.Entry{Kind: types.EntryFile}
}

// ResolveTarget returns the absolute, canonical destination of the symlink
// at path, or ok=false when path is not a symlink.
func (i *Inspector) ResolveTarget(path string) (string, bool) {
	entry := i.Classify(path)
	if entry.Kind != types.EntrySymlink {
		return "", false
	}
	return entry.LinkTarget, true
}

// resolveTarget canonicalizes a raw readlink result. Relative targets are
// relative to the symlink's own parent directory.
func (i *Inspector) resolveTarget(linkPath, raw string) string {
	if !filepath.IsAbs(raw) {
		raw = filepath.Join(filepath.Dir(linkPath), raw)
	}
	return Canonical(raw)
}

// Canonical normalizes a path so that two spellings of the same location
// compare equal: cleaned, with "." and ".." segments collapsed. Source
// paths fed to the engine must pass through the same normalization.
func Canonical(path string) string {
	return filepath.Clean(path)
}
