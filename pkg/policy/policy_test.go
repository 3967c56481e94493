// Test Type: Unit Test
// Description: Tests for the policy package - ignore precedence and target mapping

package policy_test

import (
	"path/filepath"
	"testing"

	"github.com/arthur-debert/linkdot/pkg/policy"
	"github.com/arthur-debert/linkdot/pkg/types"
	"github.com/stretchr/testify/assert"
)

func newComponent(install string) *types.Component {
	c := types.NewComponent("git", "/dotfiles")
	c.Availability = types.Available
	c.InstallPath = install
	return c
}

func TestIsIgnored(t *testing.T) {
	pol := policy.New([]string{"README.md", "docs"})
	c := newComponent("/home/user")
	c.IgnorePaths[".gitconfig.bak"] = struct{}{}

	tests := []struct {
		name string
		rel  string
		want bool
	}{
		{"component_ignore", ".gitconfig.bak", true},
		{"global_ignore_file", "README.md", true},
		{"global_ignore_directory", "docs", true},
		{"not_ignored", ".gitconfig", false},
		{"cleaned_before_lookup", "./README.md", true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, pol.IsIgnored(c, tt.rel))
		})
	}
}

func TestIgnorePrecedesRename(t *testing.T) {
	// A path in both tables is skipped entirely; the rename never applies.
	pol := policy.New(nil)
	c := newComponent("/home/user")
	c.IgnorePaths["gitconfig"] = struct{}{}
	c.RenamePaths["gitconfig"] = ".gitconfig"

	assert.True(t, pol.IsIgnored(c, "gitconfig"))
}

func TestTargetsForPlainFile(t *testing.T) {
	pol := policy.New(nil)
	c := newComponent("/home/user")

	targets := pol.TargetsFor(c, ".gitconfig")
	assert.Equal(t, []string{filepath.Join("/home/user", ".gitconfig")}, targets)
}

func TestTargetsForRenamedFile(t *testing.T) {
	pol := policy.New(nil)
	c := newComponent("/home/user")
	c.RenamePaths["gitconfig"] = ".gitconfig"

	targets := pol.TargetsFor(c, "gitconfig")
	assert.Equal(t, []string{filepath.Join("/home/user", ".gitconfig")}, targets)
}

func TestTargetsForAdditionalPaths(t *testing.T) {
	pol := policy.New(nil)
	c := newComponent("/home/user")
	c.AdditionalPaths[".gitconfig"] = []string{".config/git/config"}

	targets := pol.TargetsFor(c, ".gitconfig")
	assert.Equal(t, []string{
		filepath.Join("/home/user", ".gitconfig"),
		filepath.Join("/home/user", ".config/git/config"),
	}, targets)
}

func TestTargetsForRenameAndAdditional(t *testing.T) {
	// The renamed target stays first; additional targets follow.
	pol := policy.New(nil)
	c := newComponent("/home/user")
	c.RenamePaths["profile"] = ".profile"
	c.AdditionalPaths["profile"] = []string{".bash_profile", ".zprofile"}

	targets := pol.TargetsFor(c, "profile")
	assert.Equal(t, []string{
		filepath.Join("/home/user", ".profile"),
		filepath.Join("/home/user", ".bash_profile"),
		filepath.Join("/home/user", ".zprofile"),
	}, targets)
}

func TestDirTarget(t *testing.T) {
	// Directories never rename and never gain additional targets.
	pol := policy.New(nil)
	c := newComponent("/home/user")
	c.RenamePaths[".config"] = "elsewhere"

	assert.Equal(t, filepath.Join("/home/user", ".config"), pol.DirTarget(c, ".config"))
}
