package testutil

import (
	"path/filepath"
	"testing"

	"github.com/arthur-debert/linkdot/pkg/types"
	"github.com/stretchr/testify/require"
)

// NewTestComponent builds an available component rooted at root/name with
// installPath as its target, ready to feed the reconciliation engine.
func NewTestComponent(name, root, installPath string) *types.Component {
	c := types.NewComponent(name, root)
	c.Availability = types.Available
	c.InstallPath = installPath
	return c
}

// SeedFiles creates the given files (with throwaway content) under the
// component's source path. Keys are source-relative slash paths.
func SeedFiles(t *testing.T, fs *MemoryFS, c *types.Component, relPaths ...string) {
	t.Helper()
	require.NoError(t, fs.MkdirAll(c.SourcePath, 0755))
	for _, rel := range relPaths {
		path := filepath.Join(c.SourcePath, filepath.FromSlash(rel))
		require.NoError(t, fs.WriteFile(path, []byte("fixture"), 0644))
	}
}

// SeedDir creates an empty directory under the component's source path.
func SeedDir(t *testing.T, fs *MemoryFS, c *types.Component, rel string) {
	t.Helper()
	require.NoError(t, fs.MkdirAll(filepath.Join(c.SourcePath, filepath.FromSlash(rel)), 0755))
}
