// Package paths provides centralized path handling for linkdot: locating
// the dotfiles root, the configuration files, and the special folders
// install-path policy can anchor to. XDG Base Directory compliant.
package paths

import (
	"os"
	"path/filepath"

	"github.com/adrg/xdg"
	"github.com/arthur-debert/linkdot/pkg/errors"
)

// Environment variable names
const (
	// EnvDotfilesRoot is the primary environment variable for the
	// dotfiles location
	EnvDotfilesRoot = "LINKDOT_ROOT"
)

// Well-known file names
const (
	// MetadataFile is the built-in metadata file at the dotfiles root
	MetadataFile = "linkdot.toml"

	// UserMetadataFile is the user's override metadata file
	UserMetadataFile = "linkdot.user.toml"

	// SettingsFile is the process-wide settings file
	SettingsFile = "settings.yaml"

	// DefaultDotfilesDir is the fallback dotfiles directory under home
	DefaultDotfilesDir = "dotfiles"
)

// Paths resolves every location linkdot reads or writes.
type Paths struct {
	dotfilesRoot string
	usedFallback bool
}

// New resolves the dotfiles root: an explicit argument wins, then
// LINKDOT_ROOT, then ~/dotfiles as a fallback.
func New(root string) (*Paths, error) {
	usedFallback := false

	if root == "" {
		root = os.Getenv(EnvDotfilesRoot)
	}
	if root == "" {
		home, err := os.UserHomeDir()
		if err != nil {
			return nil, errors.Wrap(err, errors.ErrInternal, "cannot determine home directory")
		}
		root = filepath.Join(home, DefaultDotfilesDir)
		usedFallback = true
	}

	abs, err := filepath.Abs(root)
	if err != nil {
		return nil, errors.Wrapf(err, errors.ErrInvalidInput, "invalid dotfiles root %q", root)
	}

	return &Paths{dotfilesRoot: abs, usedFallback: usedFallback}, nil
}

// DotfilesRoot returns the absolute dotfiles root directory.
func (p *Paths) DotfilesRoot() string {
	return p.dotfilesRoot
}

// UsedFallback reports whether the root came from the ~/dotfiles
// fallback rather than a flag or the environment.
func (p *Paths) UsedFallback() bool {
	return p.usedFallback
}

// MetadataPath is the built-in metadata file shipped with the dotfiles.
func (p *Paths) MetadataPath() string {
	return filepath.Join(p.dotfilesRoot, MetadataFile)
}

// UserMetadataPath is the user's override metadata file in the XDG
// config directory.
func (p *Paths) UserMetadataPath() string {
	return filepath.Join(ConfigDir(), UserMetadataFile)
}

// SettingsPath is the process-wide settings file.
func (p *Paths) SettingsPath() string {
	return filepath.Join(ConfigDir(), SettingsFile)
}

// ConfigDir is linkdot's XDG config directory.
func ConfigDir() string {
	return filepath.Join(xdg.ConfigHome, "linkdot")
}

// SpecialFolder resolves a named special folder to an absolute path.
// Install-path policy anchors component targets to these.
func SpecialFolder(name string) (string, error) {
	switch name {
	case "", "home":
		home, err := os.UserHomeDir()
		if err != nil {
			return "", errors.Wrap(err, errors.ErrInternal, "cannot determine home directory")
		}
		return home, nil
	case "config":
		return xdg.ConfigHome, nil
	case "data":
		return xdg.DataHome, nil
	case "state":
		return xdg.StateHome, nil
	case "cache":
		return xdg.CacheHome, nil
	}
	return "", errors.Newf(errors.ErrConfigValid, "unknown special folder %q", name)
}
