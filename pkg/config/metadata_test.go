// Test Type: Unit Test
// Description: Tests for the config package - metadata parsing and merging

package config_test

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/arthur-debert/linkdot/pkg/config"
	"github.com/arthur-debert/linkdot/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeFile(t *testing.T, dir, name, content string) string {
	t.Helper()
	path := filepath.Join(dir, name)
	require.NoError(t, os.WriteFile(path, []byte(content), 0644))
	return path
}

func TestLoadMetadata(t *testing.T) {
	tests := []struct {
		name        string
		tomlContent string
		wantError   bool
		validate    func(t *testing.T, meta config.Metadata)
	}{
		{
			name: "full_component_section",
			tomlContent: `
[components.git]
friendly_name = "Git"
hide_links = true
ignore = ["README.md"]

[components.git.detect]
method = "binary"
binary = "git"

[components.git.install]
folder = "home"

[components.git.rename]
"gitconfig" = ".gitconfig"

[components.git.additional]
".gitconfig" = [".config/git/config"]
`,
			validate: func(t *testing.T, meta config.Metadata) {
				git := meta.Lookup("git")
				require.NotNil(t, git)
				assert.Equal(t, "Git", git.FriendlyName)
				require.NotNil(t, git.HideLinks)
				assert.True(t, *git.HideLinks)
				assert.Equal(t, []string{"README.md"}, git.Ignore)
				require.NotNil(t, git.Detect)
				assert.Equal(t, "binary", git.Detect.Method)
				require.NotNil(t, git.Install)
				assert.Equal(t, "home", git.Install.Folder)
				assert.Equal(t, ".gitconfig", git.Rename["gitconfig"])
				assert.Equal(t, []string{".config/git/config"}, git.Additional[".gitconfig"])
			},
		},
		{
			name:        "empty_file",
			tomlContent: ``,
			validate: func(t *testing.T, meta config.Metadata) {
				assert.Empty(t, meta.Components)
				assert.Nil(t, meta.Lookup("anything"))
			},
		},
		{
			name:        "invalid_toml",
			tomlContent: `[components.git`,
			wantError:   true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			path := writeFile(t, t.TempDir(), "linkdot.toml", tt.tomlContent)
			meta, err := config.LoadMetadata(path)
			if tt.wantError {
				require.Error(t, err)
				assert.True(t, errors.IsCode(err, errors.ErrConfigParse))
				return
			}
			require.NoError(t, err)
			tt.validate(t, meta)
		})
	}
}

func TestLoadMetadataMissingFile(t *testing.T) {
	meta, err := config.LoadMetadata(filepath.Join(t.TempDir(), "absent.toml"))
	require.NoError(t, err)
	assert.Empty(t, meta.Components)
}

func TestMerge(t *testing.T) {
	hideOn := true
	hideOff := false

	global := &config.ComponentMeta{
		FriendlyName: "Git",
		HideLinks:    &hideOn,
		Ignore:       []string{"README.md"},
		Detect:       &config.DetectMeta{Method: "automatic"},
		Rename:       map[string]string{"gitconfig": ".gitconfig"},
	}
	custom := &config.ComponentMeta{
		HideLinks: &hideOff,
		Ignore:    []string{"LICENSE"},
		Detect:    &config.DetectMeta{Method: "binary", Binary: "git"},
		Rename:    map[string]string{"gitconfig": ".config/git/config"},
	}

	merged := config.Merge(global, custom)

	assert.Equal(t, "Git", merged.FriendlyName, "unset override keeps the global value")
	require.NotNil(t, merged.HideLinks)
	assert.False(t, *merged.HideLinks, "explicit false override wins")
	assert.ElementsMatch(t, []string{"README.md", "LICENSE"}, merged.Ignore)
	assert.Equal(t, "binary", merged.Detect.Method, "override replaces the detect block")
	assert.Equal(t, ".config/git/config", merged.Rename["gitconfig"])
}

func TestMergeNilSides(t *testing.T) {
	global := &config.ComponentMeta{FriendlyName: "Vim"}

	merged := config.Merge(global, nil)
	assert.Equal(t, "Vim", merged.FriendlyName)

	merged = config.Merge(nil, global)
	assert.Equal(t, "Vim", merged.FriendlyName)

	merged = config.Merge(nil, nil)
	assert.Empty(t, merged.FriendlyName)
}

func TestLoadSettings(t *testing.T) {
	path := writeFile(t, t.TempDir(), "settings.yaml", `
global_ignore:
  - ".git"
  - ".DS_Store"
allow_nested_links: true
hide_links: true
`)

	settings, err := config.LoadSettings(path)
	require.NoError(t, err)
	assert.Equal(t, []string{".git", ".DS_Store"}, settings.GlobalIgnore)
	assert.True(t, settings.AllowNestedLinks)
	assert.True(t, settings.HideLinks)
}

func TestLoadSettingsMissingFileUsesDefaults(t *testing.T) {
	settings, err := config.LoadSettings(filepath.Join(t.TempDir(), "absent.yaml"))
	require.NoError(t, err)
	assert.Equal(t, config.DefaultSettings(), settings)
}

func TestLoadSettingsInvalidYAML(t *testing.T) {
	path := writeFile(t, t.TempDir(), "settings.yaml", "global_ignore: [unclosed")
	_, err := config.LoadSettings(path)
	require.Error(t, err)
	assert.True(t, errors.IsCode(err, errors.ErrConfigParse))
}
