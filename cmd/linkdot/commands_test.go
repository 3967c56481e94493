// Test Type: Integration Test
// Description: End-to-end tests driving the cobra commands against a real
// temp dotfiles tree

package linkdot

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func setupDotfiles(t *testing.T) (root, home string) {
	t.Helper()
	root = t.TempDir()
	home = t.TempDir()
	t.Setenv("HOME", home)
	t.Setenv("LINKDOT_ROOT", root)

	require.NoError(t, os.MkdirAll(filepath.Join(root, "git"), 0755))
	require.NoError(t, os.WriteFile(filepath.Join(root, "git", ".gitconfig"), []byte("[user]"), 0644))
	require.NoError(t, os.WriteFile(filepath.Join(root, "linkdot.toml"), []byte(`
[components.git.detect]
method = "static"
availability = "always"
`), 0644))
	return root, home
}

func TestInstallCmdLinksFiles(t *testing.T) {
	root, home := setupDotfiles(t)

	rootCmd := NewRootCmd()
	rootCmd.SetArgs([]string{"install"})
	require.NoError(t, rootCmd.Execute())

	dest, err := os.Readlink(filepath.Join(home, ".gitconfig"))
	require.NoError(t, err)
	assert.Equal(t, filepath.Join(root, "git", ".gitconfig"), dest)
}

func TestInstallCmdDryRun(t *testing.T) {
	_, home := setupDotfiles(t)

	rootCmd := NewRootCmd()
	rootCmd.SetArgs([]string{"install", "--dry-run"})
	require.NoError(t, rootCmd.Execute())

	_, err := os.Lstat(filepath.Join(home, ".gitconfig"))
	assert.True(t, os.IsNotExist(err))
}

func TestRemoveCmdUnlinksFiles(t *testing.T) {
	_, home := setupDotfiles(t)

	rootCmd := NewRootCmd()
	rootCmd.SetArgs([]string{"install"})
	require.NoError(t, rootCmd.Execute())

	rootCmd = NewRootCmd()
	rootCmd.SetArgs([]string{"remove", "git"})
	require.NoError(t, rootCmd.Execute())

	_, err := os.Lstat(filepath.Join(home, ".gitconfig"))
	assert.True(t, os.IsNotExist(err))
}

func TestStatusCmd(t *testing.T) {
	setupDotfiles(t)

	rootCmd := NewRootCmd()
	rootCmd.SetArgs([]string{"status"})
	require.NoError(t, rootCmd.Execute())
}

func TestListCmd(t *testing.T) {
	setupDotfiles(t)

	rootCmd := NewRootCmd()
	rootCmd.SetArgs([]string{"list"})
	require.NoError(t, rootCmd.Execute())
}

func TestStatusCmdUnknownComponent(t *testing.T) {
	setupDotfiles(t)

	rootCmd := NewRootCmd()
	rootCmd.SetArgs([]string{"status", "nope"})
	require.Error(t, rootCmd.Execute())
}

func TestNoCommandShowsError(t *testing.T) {
	setupDotfiles(t)

	rootCmd := NewRootCmd()
	rootCmd.SetArgs([]string{})
	require.Error(t, rootCmd.Execute())
}
