package types

import "path/filepath"

// Availability describes whether a component's application is present on the
// host, as determined once during configuration resolution.
type Availability string

const (
	// Available means detection found the application installed
	Available Availability = "available"

	// Unavailable means detection ran and did not find the application
	Unavailable Availability = "unavailable"

	// Ignored means the component is configured to be skipped entirely
	Ignored Availability = "ignored"

	// AlwaysInstall forces the component to be treated as installed
	AlwaysInstall Availability = "always"

	// NeverInstall forces the component to be treated as not installed
	NeverInstall Availability = "never"

	// DetectionFailure is the initial state, and the state after a
	// detection method errored
	DetectionFailure Availability = "detection-failure"

	// NoLogic means no detection method is configured for the component
	NoLogic Availability = "no-logic"
)

// Linkable reports whether the component's tree may be reconciled at all.
// Only available and force-installed components ever have an install path.
func (a Availability) Linkable() bool {
	return a == Available || a == AlwaysInstall
}

// InstallState is the lifecycle state of a component's symlink tree,
// recomputed after every install, verify, or remove pass.
type InstallState string

const (
	// StateInstalled means every linkable path is correctly linked
	StateInstalled InstallState = "installed"

	// StateNotInstalled means no linkable path is linked
	StateNotInstalled InstallState = "not-installed"

	// StatePartialInstall means some paths are linked and some are not
	StatePartialInstall InstallState = "partial"

	// StateUnknown means the pass produced no linkable outcomes
	StateUnknown InstallState = "unknown"

	// StateNotEvaluated means no pass has run yet
	StateNotEvaluated InstallState = "not-evaluated"
)

// Component represents one managed application: a subdirectory of the
// dotfiles root plus its resolved configuration and lifecycle state.
type Component struct {
	// Name is the component name, equal to its source subdirectory name
	Name string

	// SourcePath is the absolute path to the component's source subtree.
	// Configuration resolution may redirect it deeper via a base path.
	SourcePath string

	// FriendlyName is an optional human label for display
	FriendlyName string

	// Availability is set exactly once during configuration resolution
	Availability Availability

	// InstallPath is the absolute target directory for top-level
	// symlinking. Undefined unless Availability.Linkable().
	InstallPath string

	// HideLinks requests hidden/system attributes on created links.
	// A no-op on platforms without such attributes.
	HideLinks bool

	// IgnorePaths holds source-relative paths (slash-separated) excluded
	// from all processing. Takes precedence over renames and additionals.
	IgnorePaths map[string]struct{}

	// RenamePaths maps a source-relative file path to an alternate
	// relative target path
	RenamePaths map[string]string

	// AdditionalPaths maps a source-relative file path to extra relative
	// target paths the file is also linked to. Files only.
	AdditionalPaths map[string][]string

	// State is the install lifecycle state from the most recent pass
	State InstallState
}

// NewComponent constructs a component rooted at dotfilesRoot/name with
// detection not yet run.
func NewComponent(name, dotfilesRoot string) *Component {
	return &Component{
		Name:            name,
		SourcePath:      filepath.Join(dotfilesRoot, name),
		Availability:    DetectionFailure,
		State:           StateNotEvaluated,
		IgnorePaths:     make(map[string]struct{}),
		RenamePaths:     make(map[string]string),
		AdditionalPaths: make(map[string][]string),
	}
}

// DisplayName returns the friendly name when configured, the directory
// name otherwise.
func (c *Component) DisplayName() string {
	if c.FriendlyName != "" {
		return c.FriendlyName
	}
	return c.Name
}
