// Test Type: Unit Test
// Description: Tests for the paths package - dotfiles root resolution and special folders

package paths_test

import (
	"path/filepath"
	"testing"

	"github.com/arthur-debert/linkdot/pkg/paths"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewExplicitRoot(t *testing.T) {
	dir := t.TempDir()
	p, err := paths.New(dir)
	require.NoError(t, err)

	assert.Equal(t, dir, p.DotfilesRoot())
	assert.False(t, p.UsedFallback())
	assert.Equal(t, filepath.Join(dir, "linkdot.toml"), p.MetadataPath())
}

func TestNewFromEnvironment(t *testing.T) {
	dir := t.TempDir()
	t.Setenv(paths.EnvDotfilesRoot, dir)

	p, err := paths.New("")
	require.NoError(t, err)
	assert.Equal(t, dir, p.DotfilesRoot())
	assert.False(t, p.UsedFallback())
}

func TestNewFallback(t *testing.T) {
	t.Setenv(paths.EnvDotfilesRoot, "")
	t.Setenv("HOME", t.TempDir())

	p, err := paths.New("")
	require.NoError(t, err)
	assert.True(t, p.UsedFallback())
	assert.Equal(t, "dotfiles", filepath.Base(p.DotfilesRoot()))
}

func TestExplicitRootBeatsEnvironment(t *testing.T) {
	envDir := t.TempDir()
	flagDir := t.TempDir()
	t.Setenv(paths.EnvDotfilesRoot, envDir)

	p, err := paths.New(flagDir)
	require.NoError(t, err)
	assert.Equal(t, flagDir, p.DotfilesRoot())
}

func TestSpecialFolder(t *testing.T) {
	home, err := paths.SpecialFolder("home")
	require.NoError(t, err)
	assert.NotEmpty(t, home)

	// Empty name means home
	def, err := paths.SpecialFolder("")
	require.NoError(t, err)
	assert.Equal(t, home, def)

	for _, name := range []string{"config", "data", "state", "cache"} {
		got, err := paths.SpecialFolder(name)
		require.NoError(t, err, name)
		assert.NotEmpty(t, got, name)
	}

	_, err = paths.SpecialFolder("registry")
	assert.Error(t, err)
}
