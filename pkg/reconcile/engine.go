package reconcile

import (
	"context"
	"io/fs"
	"path/filepath"

	"github.com/arthur-debert/linkdot/pkg/errors"
	"github.com/arthur-debert/linkdot/pkg/inspect"
	"github.com/arthur-debert/linkdot/pkg/logging"
	"github.com/arthur-debert/linkdot/pkg/policy"
	"github.com/arthur-debert/linkdot/pkg/types"
)

// Mode selects what a reconciliation pass does at each leaf.
type Mode int

const (
	// ModeInstall creates missing symlinks
	ModeInstall Mode = iota

	// ModeSimulate evaluates exactly the decisions ModeInstall would
	// take, with zero filesystem mutation: a missing target counts as a
	// success because installing would create it. This is dry run.
	ModeSimulate

	// ModeVerify reports what is currently linked: a missing target
	// counts as a failure because nothing is installed there. Discovery
	// and status use this mode.
	ModeVerify

	// ModeRemove deletes correctly-pointing symlinks
	ModeRemove
)

func (m Mode) String() string {
	switch m {
	case ModeInstall:
		return "install"
	case ModeSimulate:
		return "simulate"
	case ModeVerify:
		return "verify"
	case ModeRemove:
		return "remove"
	}
	return "unknown"
}

// Context carries the process-wide knobs the walk needs. It is immutable
// and threaded through recursive calls as a parameter, never read from
// ambient state.
type Context struct {
	// AllowNestedLinks recurses through a directory symlink that points
	// somewhere other than the expected source, instead of treating it
	// as a conflict
	AllowNestedLinks bool

	// CanSymlink gates whether Install may mutate at all. Callers check
	// the capability up front; the engine fails fast if asked to install
	// without it.
	CanSymlink bool
}

// Result collects a pass's per-leaf outcomes and structured messages.
type Result struct {
	Outcomes []bool
	Messages []types.Message
}

// Warnings returns the subset of messages at warning level or above.
func (r *Result) Warnings() []types.Message {
	var out []types.Message
	for _, m := range r.Messages {
		if m.Level == types.LevelWarning || m.Level == types.LevelError {
			out = append(out, m)
		}
	}
	return out
}

// Engine walks component trees. It is stateless across passes and safe to
// reuse for any number of components.
type Engine struct {
	fs        types.FS
	inspector *inspect.Inspector
	policy    *policy.Policy
	rctx      Context
}

// New creates an engine over the given filesystem and path policy.
func New(fsys types.FS, pol *policy.Policy, rctx Context) *Engine {
	return &Engine{
		fs:        fsys,
		inspector: inspect.New(fsys),
		policy:    pol,
		rctx:      rctx,
	}
}

// Reconcile runs one pass over the component in the given mode. The only
// error it returns is a missing or unreadable source root, which fails the
// whole component; every other deviation lands in the result as a false
// outcome and/or a message, and the walk continues past it. A cancelled
// ctx stops the walk between sibling dispatches.
func (e *Engine) Reconcile(ctx context.Context, comp *types.Component, mode Mode) (*Result, error) {
	logger := logging.GetLogger("reconcile")
	logger.Debug().
		Str("component", comp.Name).
		Str("mode", mode.String()).
		Str("source", comp.SourcePath).
		Str("target", comp.InstallPath).
		Msg("Starting reconciliation pass")

	info, err := e.fs.Lstat(comp.SourcePath)
	if err != nil {
		return nil, errors.Wrapf(err, errors.ErrSourceMissing,
			"component %q source root is missing", comp.Name).
			WithDetail("source", comp.SourcePath)
	}
	if !info.IsDir() {
		return nil, errors.Newf(errors.ErrSourceMissing,
			"component %q source root is not a directory", comp.Name).
			WithDetail("source", comp.SourcePath)
	}

	if mode == ModeInstall && !e.rctx.CanSymlink {
		return nil, errors.Newf(errors.ErrNoCapability,
			"cannot install %q: symlink creation is not permitted for this process", comp.Name)
	}

	res := &Result{}
	e.reconcileDir(ctx, comp, mode, inspect.Canonical(comp.SourcePath), comp.InstallPath, true, res)
	return res, nil
}

// reconcileDir handles one source directory against its expected target.
func (e *Engine) reconcileDir(ctx context.Context, comp *types.Component, mode Mode, dir, target string, isRoot bool, res *Result) {
	if !isRoot {
		rel, err := filepath.Rel(comp.SourcePath, dir)
		if err == nil && e.policy.IsIgnored(comp, rel) {
			res.debug(comp, dir, target, "directory ignored")
			return
		}
	}

	entry := e.inspector.Classify(target)
	switch entry.Kind {
	case types.EntryMissing:
		switch mode {
		case ModeInstall:
			e.linkDir(comp, dir, target, isRoot, res)
		case ModeSimulate:
			res.ok(comp, dir, target, "directory link would be created")
		case ModeVerify:
			res.no(comp, dir, target, "directory link is not present")
		case ModeRemove:
			res.warn(comp, dir, target, "nothing to remove")
		}

	case types.EntryFile:
		e.conflict(comp, mode, dir, target, "a file is in the way of a directory link", res)

	case types.EntrySymlink:
		if entry.LinkTarget == inspect.Canonical(dir) {
			switch mode {
			case ModeInstall, ModeSimulate, ModeVerify:
				res.ok(comp, dir, target, "directory already linked")
			case ModeRemove:
				// Deletes the link itself, never its contents.
				if err := e.fs.Remove(target); err != nil {
					res.fail(comp, dir, target, "could not remove directory link: "+err.Error())
				} else {
					res.ok(comp, dir, target, "directory link removed")
				}
			}
			return
		}
		if e.rctx.AllowNestedLinks {
			// The link points elsewhere but may shelter previously
			// created links further down; repair through it rather
			// than tearing it down.
			res.debug(comp, dir, target, "descending through nested symlink")
			e.recurseChildren(ctx, comp, mode, dir, target, res)
			return
		}
		e.conflict(comp, mode, dir, target, "symlink points to "+entry.LinkTarget+" instead of the source", res)

	case types.EntryDirectory:
		// A real directory cannot be replaced by a link; reconcile its
		// children individually.
		e.recurseChildren(ctx, comp, mode, dir, target, res)
	}
}

// recurseChildren reconciles every immediate child of dir, files first.
// Sibling outcomes are independent; the only ordering requirement is that
// all of them land in res before the caller returns.
func (e *Engine) recurseChildren(ctx context.Context, comp *types.Component, mode Mode, dir, target string, res *Result) {
	children, err := e.fs.ReadDir(dir)
	if err != nil {
		res.fail(comp, dir, target, "could not list source directory: "+err.Error())
		return
	}
	if len(children) == 0 {
		res.warn(comp, dir, target, "source directory is empty, nothing to link")
		return
	}

	var files, dirs []fs.DirEntry
	for _, child := range children {
		if child.IsDir() {
			dirs = append(dirs, child)
		} else {
			files = append(files, child)
		}
	}

	for _, child := range files {
		if ctx.Err() != nil {
			return
		}
		e.reconcileFile(comp, mode, filepath.Join(dir, child.Name()), res)
	}
	for _, child := range dirs {
		if ctx.Err() != nil {
			return
		}
		e.reconcileDir(ctx, comp, mode, filepath.Join(dir, child.Name()), filepath.Join(target, child.Name()), false, res)
	}
}

// reconcileFile handles one source file against each of its targets.
func (e *Engine) reconcileFile(comp *types.Component, mode Mode, file string, res *Result) {
	rel, err := filepath.Rel(comp.SourcePath, file)
	if err != nil {
		res.fail(comp, file, "", "could not relativize source path: "+err.Error())
		return
	}
	if e.policy.IsIgnored(comp, rel) {
		res.debug(comp, file, "", "file ignored")
		return
	}

	for _, target := range e.policy.TargetsFor(comp, rel) {
		entry := e.inspector.Classify(target)
		switch entry.Kind {
		case types.EntryMissing:
			switch mode {
			case ModeInstall:
				e.linkFile(comp, file, target, res)
			case ModeSimulate:
				res.ok(comp, file, target, "file link would be created")
			case ModeVerify:
				res.no(comp, file, target, "file link is not present")
			case ModeRemove:
				res.warn(comp, file, target, "nothing to remove")
			}

		case types.EntryDirectory:
			e.conflict(comp, mode, file, target, "a directory is in the way of a file link", res)

		case types.EntryFile:
			e.conflict(comp, mode, file, target, "a real file is in the way and will not be overwritten", res)

		case types.EntrySymlink:
			if entry.LinkTarget == inspect.Canonical(file) {
				switch mode {
				case ModeInstall, ModeSimulate, ModeVerify:
					res.ok(comp, file, target, "file already linked")
				case ModeRemove:
					if err := e.fs.Remove(target); err != nil {
						res.fail(comp, file, target, "could not remove file link: "+err.Error())
					} else {
						res.ok(comp, file, target, "file link removed")
					}
				}
				continue
			}
			// Files are leaves; a wrong-target link is a conflict even
			// when nested symlinks are permitted.
			e.conflict(comp, mode, file, target, "symlink points to "+entry.LinkTarget+" instead of the source", res)
		}
	}
}

// linkDir creates a directory symlink, bootstrapping the install path's
// parent for the component root.
func (e *Engine) linkDir(comp *types.Component, dir, target string, isRoot bool, res *Result) {
	if isRoot {
		if err := e.fs.MkdirAll(filepath.Dir(target), 0755); err != nil {
			res.fail(comp, dir, target, "could not create install path parent: "+err.Error())
			return
		}
	}
	if err := e.fs.Symlink(dir, target); err != nil {
		res.fail(comp, dir, target, "could not create directory link: "+err.Error())
		return
	}
	res.ok(comp, dir, target, "directory link created")
	e.hide(comp, target, res)
}

// linkFile creates a file symlink, creating any directories needed to
// host a renamed or additional target.
func (e *Engine) linkFile(comp *types.Component, file, target string, res *Result) {
	if err := e.fs.MkdirAll(filepath.Dir(target), 0755); err != nil {
		res.fail(comp, file, target, "could not create target directory: "+err.Error())
		return
	}
	if err := e.fs.Symlink(file, target); err != nil {
		res.fail(comp, file, target, "could not create file link: "+err.Error())
		return
	}
	res.ok(comp, file, target, "file link created")
	e.hide(comp, target, res)
}

// hide applies hidden attributes to a freshly created link. Failures are
// reported as warnings alongside the already-recorded success; attribute
// setting is not a correctness requirement.
func (e *Engine) hide(comp *types.Component, target string, res *Result) {
	if !comp.HideLinks {
		return
	}
	if err := e.fs.Hide(target); err != nil {
		res.warn(comp, "", target, "could not set hidden attributes: "+err.Error())
	}
}

// conflict records a blocking mismatch. During install and verify it is a
// failed outcome; during remove it is downgraded to a warning with no
// outcome entry, because removal is best-effort cleanup of trees that may
// be half-migrated.
func (e *Engine) conflict(comp *types.Component, mode Mode, source, target, detail string, res *Result) {
	if mode == ModeRemove {
		res.warn(comp, source, target, detail)
		return
	}
	res.fail(comp, source, target, detail)
}

func (r *Result) ok(comp *types.Component, source, target, detail string) {
	r.Outcomes = append(r.Outcomes, true)
	r.add(comp, types.LevelVerbose, source, target, detail)
}

func (r *Result) fail(comp *types.Component, source, target, detail string) {
	r.Outcomes = append(r.Outcomes, false)
	r.add(comp, types.LevelError, source, target, detail)
}

// no records an expected negative outcome, such as a link a status check
// found absent. Unlike fail it carries no error-level message.
func (r *Result) no(comp *types.Component, source, target, detail string) {
	r.Outcomes = append(r.Outcomes, false)
	r.add(comp, types.LevelVerbose, source, target, detail)
}

func (r *Result) warn(comp *types.Component, source, target, detail string) {
	r.add(comp, types.LevelWarning, source, target, detail)
}

func (r *Result) debug(comp *types.Component, source, target, detail string) {
	r.add(comp, types.LevelDebug, source, target, detail)
}

func (r *Result) add(comp *types.Component, level types.Level, source, target, detail string) {
	r.Messages = append(r.Messages, types.Message{
		Component: comp.Name,
		Level:     level,
		Source:    source,
		Target:    target,
		Detail:    detail,
	})
	logger := logging.GetLogger("reconcile")
	evt := logger.Debug()
	switch level {
	case types.LevelWarning:
		evt = logger.Warn()
	case types.LevelError:
		evt = logger.Error()
	}
	evt.Str("component", comp.Name).
		Str("source", source).
		Str("target", target).
		Msg(detail)
}
