// Package commands provides the high-level command implementations for
// linkdot: the orchestration layer between the CLI surface and the
// reconciliation core. Each command loads configuration, resolves the
// requested components, runs the engine in the right mode, and returns
// per-component reports for the caller to present.
package commands

import (
	"context"

	"github.com/arthur-debert/linkdot/pkg/config"
	"github.com/arthur-debert/linkdot/pkg/detect"
	"github.com/arthur-debert/linkdot/pkg/errors"
	"github.com/arthur-debert/linkdot/pkg/filesystem"
	"github.com/arthur-debert/linkdot/pkg/logging"
	"github.com/arthur-debert/linkdot/pkg/paths"
	"github.com/arthur-debert/linkdot/pkg/policy"
	"github.com/arthur-debert/linkdot/pkg/reconcile"
	"github.com/arthur-debert/linkdot/pkg/resolver"
	"github.com/arthur-debert/linkdot/pkg/types"
)

// Options are shared by every component-reconciling command.
type Options struct {
	// DotfilesRoot overrides root resolution (flag > env > fallback)
	DotfilesRoot string

	// Components selects components by name; empty means all discovered
	Components []string

	// DryRun evaluates without mutating the filesystem
	DryRun bool

	// FS substitutes the filesystem; nil uses the OS
	FS types.FS

	// Detector substitutes detection; nil probes the host
	Detector *detect.Detector

	// CanSymlink overrides the capability probe; nil probes
	CanSymlink *bool
}

// ComponentReport is one component's outcome from a pass.
type ComponentReport struct {
	Component *types.Component
	State     types.InstallState
	Messages  []types.Message

	// Err is set when the component could not be processed at all
	// (bad configuration, missing source root). It never aborts the
	// other components' reports.
	Err error
}

// Result is a command's full outcome.
type Result struct {
	DotfilesRoot string
	Reports      []ComponentReport
}

// Install links every selected component whose application is present.
func Install(ctx context.Context, opts Options) (*Result, error) {
	mode := reconcile.ModeInstall
	if opts.DryRun {
		mode = reconcile.ModeSimulate
	}
	return run(ctx, opts, mode)
}

// Remove unlinks every selected component. With DryRun it reports what is
// currently linked, which is exactly what a real pass would remove.
func Remove(ctx context.Context, opts Options) (*Result, error) {
	if opts.DryRun {
		return run(ctx, opts, reconcile.ModeVerify)
	}
	return run(ctx, opts, reconcile.ModeRemove)
}

// Status verifies every selected component without mutating anything.
func Status(ctx context.Context, opts Options) (*Result, error) {
	return run(ctx, opts, reconcile.ModeVerify)
}

// environment bundles everything a pass needs, loaded once per command.
type environment struct {
	fs       types.FS
	paths    *paths.Paths
	settings config.Settings
	global   config.Metadata
	custom   config.Metadata
	resolver *resolver.Resolver
	engine   *reconcile.Engine
}

func setup(opts Options, needEngine bool) (*environment, error) {
	log := logging.GetLogger("commands")

	fs := opts.FS
	if fs == nil {
		fs = filesystem.NewOS()
	}

	p, err := paths.New(opts.DotfilesRoot)
	if err != nil {
		return nil, err
	}

	settings, err := config.LoadSettings(p.SettingsPath())
	if err != nil {
		return nil, err
	}
	global, err := config.LoadMetadata(p.MetadataPath())
	if err != nil {
		return nil, err
	}
	custom, err := config.LoadMetadata(p.UserMetadataPath())
	if err != nil {
		return nil, err
	}

	detector := opts.Detector
	if detector == nil {
		detector = detect.New()
	}

	env := &environment{
		fs:       fs,
		paths:    p,
		settings: settings,
		global:   global,
		custom:   custom,
		resolver: resolver.New(fs, detector, settings),
	}

	if needEngine {
		canSymlink := filesystem.CanSymlink
		if opts.CanSymlink != nil {
			canSymlink = func() bool { return *opts.CanSymlink }
		}
		env.engine = reconcile.New(fs, policy.New(settings.GlobalIgnore), reconcile.Context{
			AllowNestedLinks: settings.AllowNestedLinks,
			CanSymlink:       canSymlink(),
		})
	}

	log.Debug().Str("root", p.DotfilesRoot()).Msg("Command environment ready")
	return env, nil
}

// selectNames returns the component names a command operates on,
// validating explicit selections against the discovered set.
func (e *environment) selectNames(requested []string) ([]string, error) {
	discovered, err := resolver.Discover(e.fs, e.paths.DotfilesRoot())
	if err != nil {
		return nil, err
	}
	if len(requested) == 0 {
		return discovered, nil
	}

	known := make(map[string]struct{}, len(discovered))
	for _, name := range discovered {
		known[name] = struct{}{}
	}
	for _, name := range requested {
		if _, ok := known[name]; !ok {
			return nil, errors.Newf(errors.ErrComponentNotFound,
				"component %q not found in %s", name, e.paths.DotfilesRoot())
		}
	}
	return requested, nil
}

func run(ctx context.Context, opts Options, mode reconcile.Mode) (*Result, error) {
	env, err := setup(opts, true)
	if err != nil {
		return nil, err
	}
	names, err := env.selectNames(opts.Components)
	if err != nil {
		return nil, err
	}

	removal := mode == reconcile.ModeRemove
	result := &Result{DotfilesRoot: env.paths.DotfilesRoot()}

	for _, name := range names {
		report := env.reconcileOne(ctx, name, mode, removal)
		result.Reports = append(result.Reports, report)
		if ctx.Err() != nil {
			break
		}
	}
	return result, nil
}

// reconcileOne runs one component through resolution and, when linkable,
// a reconciliation pass. Failures stay inside the report.
func (e *environment) reconcileOne(ctx context.Context, name string, mode reconcile.Mode, removal bool) ComponentReport {
	comp, err := e.resolver.Resolve(name, e.paths.DotfilesRoot(),
		e.global.Lookup(name), e.custom.Lookup(name))
	if err != nil {
		comp.State = types.StateUnknown
		return ComponentReport{Component: comp, State: types.StateUnknown, Err: err}
	}

	if !comp.Availability.Linkable() {
		return ComponentReport{Component: comp, State: types.StateNotEvaluated}
	}

	res, err := e.engine.Reconcile(ctx, comp, mode)
	if err != nil {
		comp.State = types.StateUnknown
		return ComponentReport{Component: comp, State: types.StateUnknown, Err: err}
	}

	comp.State = reconcile.Aggregate(res.Outcomes, removal)
	return ComponentReport{Component: comp, State: comp.State, Messages: res.Messages}
}
