package config

import (
	"os"

	"github.com/arthur-debert/linkdot/pkg/errors"
	"gopkg.in/yaml.v3"
)

// Settings are the process-wide knobs, loaded from the user's settings
// file in the XDG config directory. They apply across every component.
type Settings struct {
	// GlobalIgnore lists source-relative paths skipped in every component
	GlobalIgnore []string `yaml:"global_ignore"`

	// AllowNestedLinks recurses through wrong-target directory symlinks
	// instead of treating them as conflicts
	AllowNestedLinks bool `yaml:"allow_nested_links"`

	// HideLinks is the default for components that do not set their own
	HideLinks bool `yaml:"hide_links"`
}

// DefaultSettings returns the settings used when no file exists.
func DefaultSettings() Settings {
	return Settings{
		GlobalIgnore: []string{".DS_Store", "Thumbs.db"},
	}
}

// LoadSettings reads the settings file, falling back to defaults when it
// does not exist.
func LoadSettings(path string) (Settings, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			log.Debug().Str("path", path).Msg("No settings file, using defaults")
			return DefaultSettings(), nil
		}
		return Settings{}, errors.Wrap(err, errors.ErrConfigLoad, "failed to read settings file").
			WithDetail("path", path)
	}

	settings := DefaultSettings()
	if err := yaml.Unmarshal(data, &settings); err != nil {
		return Settings{}, errors.Wrap(err, errors.ErrConfigParse, "failed to parse settings YAML").
			WithDetail("path", path)
	}
	return settings, nil
}
