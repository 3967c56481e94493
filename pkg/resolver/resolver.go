// Package resolver turns raw metadata into fully configured components:
// it merges global and user metadata sections, runs detection, resolves
// the install path, and populates the path-policy tables the
// reconciliation engine consumes.
package resolver

import (
	"os"
	"path/filepath"
	"sort"

	"github.com/arthur-debert/linkdot/pkg/config"
	"github.com/arthur-debert/linkdot/pkg/detect"
	"github.com/arthur-debert/linkdot/pkg/errors"
	"github.com/arthur-debert/linkdot/pkg/logging"
	"github.com/arthur-debert/linkdot/pkg/paths"
	"github.com/arthur-debert/linkdot/pkg/policy"
	"github.com/arthur-debert/linkdot/pkg/types"
)

// Resolver builds components from metadata.
type Resolver struct {
	fs       types.FS
	detector *detect.Detector
	settings config.Settings
}

// New creates a resolver using the given detector and process settings.
func New(fs types.FS, detector *detect.Detector, settings config.Settings) *Resolver {
	return &Resolver{fs: fs, detector: detector, settings: settings}
}

// Resolve merges the metadata sections for name and produces a configured
// component. Detection runs exactly once here; the returned component's
// availability is read-only afterward. A detection or install-path error
// leaves the component at DetectionFailure and is returned alongside it
// so callers can report without dropping the component.
func (r *Resolver) Resolve(name, dotfilesRoot string, global, custom *config.ComponentMeta) (*types.Component, error) {
	logger := logging.GetLogger("resolver")
	comp := types.NewComponent(name, dotfilesRoot)
	meta := config.Merge(global, custom)

	comp.FriendlyName = meta.FriendlyName
	if meta.BasePath != "" {
		comp.SourcePath = filepath.Join(comp.SourcePath, filepath.FromSlash(meta.BasePath))
	}

	// Policy tables, normalized once so the engine compares plain strings
	for _, rel := range meta.Ignore {
		comp.IgnorePaths[policy.Normalize(rel)] = struct{}{}
	}
	for from, to := range meta.Rename {
		comp.RenamePaths[policy.Normalize(from)] = policy.Normalize(to)
	}
	for from, extras := range meta.Additional {
		for _, extra := range extras {
			key := policy.Normalize(from)
			comp.AdditionalPaths[key] = append(comp.AdditionalPaths[key], policy.Normalize(extra))
		}
	}

	if meta.HideLinks != nil {
		comp.HideLinks = *meta.HideLinks
	} else {
		comp.HideLinks = r.settings.HideLinks
	}

	spec, err := detectSpec(name, meta.Detect)
	if err != nil {
		return comp, err
	}
	availability, err := r.detector.Detect(name, spec)
	comp.Availability = availability
	if err != nil {
		return comp, err
	}

	if comp.Availability.Linkable() {
		installPath, err := resolveInstallPath(meta.Install)
		if err != nil {
			comp.Availability = types.DetectionFailure
			return comp, err
		}
		comp.InstallPath = installPath
	}

	logger.Debug().
		Str("component", name).
		Str("availability", string(comp.Availability)).
		Str("source", comp.SourcePath).
		Str("install", comp.InstallPath).
		Msg("Component resolved")
	return comp, nil
}

// Discover lists the component names in the dotfiles root: its immediate
// subdirectories, hidden ones excluded, sorted.
func Discover(fs types.FS, dotfilesRoot string) ([]string, error) {
	info, err := fs.Lstat(dotfilesRoot)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, errors.Wrap(err, errors.ErrNotFound, "dotfiles root does not exist").
				WithDetail("path", dotfilesRoot)
		}
		return nil, errors.Wrap(err, errors.ErrFileAccess, "cannot access dotfiles root").
			WithDetail("path", dotfilesRoot)
	}
	if !info.IsDir() {
		return nil, errors.New(errors.ErrInvalidInput, "dotfiles root is not a directory").
			WithDetail("path", dotfilesRoot)
	}

	entries, err := fs.ReadDir(dotfilesRoot)
	if err != nil {
		return nil, errors.Wrap(err, errors.ErrFileAccess, "cannot read dotfiles root").
			WithDetail("path", dotfilesRoot)
	}

	var names []string
	for _, entry := range entries {
		if !entry.IsDir() || entry.Name()[0] == '.' {
			continue
		}
		names = append(names, entry.Name())
	}
	sort.Strings(names)
	return names, nil
}

// detectSpec maps a metadata detect block to a detect.Spec.
func detectSpec(name string, meta *config.DetectMeta) (detect.Spec, error) {
	if meta == nil {
		return detect.Spec{}, nil
	}

	spec := detect.Spec{
		Method: detect.Method(meta.Method),
		Match:  meta.Match,
		Regex:  meta.Regex,
		Binary: meta.Binary,
		Path:   meta.Path,
	}

	switch meta.Availability {
	case "":
	case "always":
		spec.Result = types.AlwaysInstall
	case "never":
		spec.Result = types.NeverInstall
	case "ignored":
		spec.Result = types.Ignored
	case "available":
		spec.Result = types.Available
	case "unavailable":
		spec.Result = types.Unavailable
	default:
		return detect.Spec{}, errors.Newf(errors.ErrConfigValid,
			"component %q: unknown availability %q", name, meta.Availability)
	}
	return spec, nil
}

// resolveInstallPath computes the absolute target directory. The default
// is the user's home directory.
func resolveInstallPath(meta *config.InstallMeta) (string, error) {
	if meta == nil {
		return paths.SpecialFolder("home")
	}
	if meta.Absolute != "" {
		if !filepath.IsAbs(meta.Absolute) {
			return "", errors.Newf(errors.ErrConfigValid,
				"install path override %q is not absolute", meta.Absolute)
		}
		return filepath.Clean(meta.Absolute), nil
	}

	base, err := paths.SpecialFolder(meta.Folder)
	if err != nil {
		return "", err
	}
	if meta.Suffix != "" {
		return filepath.Join(base, filepath.FromSlash(meta.Suffix)), nil
	}
	return base, nil
}
