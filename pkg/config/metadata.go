package config

import (
	"os"

	"github.com/arthur-debert/linkdot/pkg/errors"
	"github.com/arthur-debert/linkdot/pkg/logging"
	toml "github.com/pelletier/go-toml/v2"
)

var log = logging.GetLogger("config")

// Metadata is a parsed component metadata file: the dotfiles root's
// built-in linkdot.toml, or the user's linkdot.user.toml overriding it.
type Metadata struct {
	Components map[string]ComponentMeta `toml:"components"`
}

// ComponentMeta is one component's section in a metadata file.
type ComponentMeta struct {
	// FriendlyName is an optional human label
	FriendlyName string `toml:"friendly_name"`

	// BasePath redirects the component's source root to a subdirectory
	// of its directory
	BasePath string `toml:"base_path"`

	// HideLinks is a tri-state so overrides can distinguish "unset"
	// from "explicitly off"
	HideLinks *bool `toml:"hide_links"`

	// Ignore lists source-relative paths excluded from processing
	Ignore []string `toml:"ignore"`

	// Detect selects the detection method
	Detect *DetectMeta `toml:"detect"`

	// Install controls where the component's tree is mirrored
	Install *InstallMeta `toml:"install"`

	// Rename maps a source-relative file to an alternate target path
	Rename map[string]string `toml:"rename"`

	// Additional maps a source-relative file to extra target paths
	Additional map[string][]string `toml:"additional"`
}

// DetectMeta mirrors detect.Spec in file form.
type DetectMeta struct {
	Method       string `toml:"method"`
	Match        string `toml:"match"`
	Regex        bool   `toml:"regex"`
	Binary       string `toml:"binary"`
	Path         string `toml:"path"`
	Availability string `toml:"availability"`
}

// InstallMeta resolves to an absolute install path: either an absolute
// override, or a special folder plus an optional relative suffix.
type InstallMeta struct {
	Folder   string `toml:"folder"`
	Suffix   string `toml:"suffix"`
	Absolute string `toml:"absolute"`
}

// LoadMetadata reads and parses a metadata file. A missing file is not an
// error; it yields empty metadata so a bare dotfiles root still works.
func LoadMetadata(path string) (Metadata, error) {
	logger := log.With().Str("path", path).Logger()

	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			logger.Debug().Msg("No metadata file")
			return Metadata{}, nil
		}
		return Metadata{}, errors.Wrap(err, errors.ErrConfigLoad, "failed to read metadata file").
			WithDetail("path", path)
	}

	var meta Metadata
	if err := toml.Unmarshal(data, &meta); err != nil {
		return Metadata{}, errors.Wrap(err, errors.ErrConfigParse, "failed to parse metadata TOML").
			WithDetail("path", path)
	}

	logger.Debug().Int("components", len(meta.Components)).Msg("Metadata loaded")
	return meta, nil
}

// Lookup returns the component's section, or nil when absent.
func (m Metadata) Lookup(name string) *ComponentMeta {
	if meta, ok := m.Components[name]; ok {
		return &meta
	}
	return nil
}

// Merge layers a custom override on top of a global default. Scalars from
// the override win when set; ignore lists concatenate; rename and
// additional tables merge with override entries winning per key. Either
// side may be nil.
func Merge(global, custom *ComponentMeta) ComponentMeta {
	var merged ComponentMeta
	if global != nil {
		merged = *global
	}
	if custom == nil {
		return merged
	}

	if custom.FriendlyName != "" {
		merged.FriendlyName = custom.FriendlyName
	}
	if custom.BasePath != "" {
		merged.BasePath = custom.BasePath
	}
	if custom.HideLinks != nil {
		merged.HideLinks = custom.HideLinks
	}
	if custom.Detect != nil {
		merged.Detect = custom.Detect
	}
	if custom.Install != nil {
		merged.Install = custom.Install
	}
	merged.Ignore = append(append([]string(nil), merged.Ignore...), custom.Ignore...)

	if len(custom.Rename) > 0 {
		renames := make(map[string]string, len(merged.Rename)+len(custom.Rename))
		for k, v := range merged.Rename {
			renames[k] = v
		}
		for k, v := range custom.Rename {
			renames[k] = v
		}
		merged.Rename = renames
	}
	if len(custom.Additional) > 0 {
		additionals := make(map[string][]string, len(merged.Additional)+len(custom.Additional))
		for k, v := range merged.Additional {
			additionals[k] = v
		}
		for k, v := range custom.Additional {
			additionals[k] = v
		}
		merged.Additional = additionals
	}
	return merged
}
