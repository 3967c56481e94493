package filesystem

import (
	"os"
	"path/filepath"
)

// CanSymlink probes whether the current process may create symbolic links
// at all. On Windows this fails without developer mode or elevation; the
// engine refuses to install when the probe fails.
func CanSymlink() bool {
	dir, err := os.MkdirTemp("", "linkdot-cap")
	if err != nil {
		return false
	}
	defer func() { _ = os.RemoveAll(dir) }()

	target := filepath.Join(dir, "target")
	if err := os.WriteFile(target, []byte{}, 0644); err != nil {
		return false
	}
	return os.Symlink(target, filepath.Join(dir, "link")) == nil
}
