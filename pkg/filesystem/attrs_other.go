//go:build !windows

package filesystem

// setHidden is a no-op where the filesystem has no hidden attribute;
// dotfile naming already hides the links.
func setHidden(string) error {
	return nil
}
