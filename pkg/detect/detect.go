// Package detect decides whether a component's application is present on
// the host. It sits outside the reconciliation core: the engine only ever
// branches on the availability value detection produces.
package detect

import (
	"os"
	"os/exec"
	"regexp"
	"strings"

	"github.com/arthur-debert/linkdot/pkg/errors"
	"github.com/arthur-debert/linkdot/pkg/logging"
	"github.com/arthur-debert/linkdot/pkg/types"
)

// Method names a detection strategy.
type Method string

const (
	// MethodNone means no detection is configured
	MethodNone Method = ""

	// MethodAutomatic matches the component name (or a configured
	// pattern) against the index of installed programs
	MethodAutomatic Method = "automatic"

	// MethodBinary looks the named executable up on PATH
	MethodBinary Method = "binary"

	// MethodPath checks that a fixed path exists
	MethodPath Method = "path"

	// MethodStatic forces a fixed availability
	MethodStatic Method = "static"
)

// Spec is one component's detection configuration.
type Spec struct {
	Method Method

	// Match is the substring (or pattern, with Regex) for MethodAutomatic.
	// Empty falls back to the component name.
	Match string
	Regex bool

	// Binary is the executable name for MethodBinary
	Binary string

	// Path is the filesystem path for MethodPath
	Path string

	// Result is the forced availability for MethodStatic
	Result types.Availability
}

// ProgramLister supplies the names of installed programs. The PATH-backed
// implementation is the default; tests substitute fixed lists.
type ProgramLister interface {
	Names() ([]string, error)
}

// Detector evaluates detection specs. Zero-value fields fall back to the
// real host probes.
type Detector struct {
	Programs ProgramLister
	LookPath func(string) (string, error)
	Stat     func(string) (os.FileInfo, error)
}

// New creates a detector over the host: a cached PATH scan for program
// names, exec.LookPath for binaries, os.Stat for fixed paths.
func New() *Detector {
	return &Detector{
		Programs: NewPathIndex(),
		LookPath: exec.LookPath,
		Stat:     os.Stat,
	}
}

// Detect runs the spec for the named component. Probe failures come back
// as DetectionFailure plus the underlying error; an unconfigured spec is
// NoLogic, not an error.
func (d *Detector) Detect(name string, spec Spec) (types.Availability, error) {
	logger := logging.GetLogger("detect")

	switch spec.Method {
	case MethodNone:
		return types.NoLogic, nil

	case MethodStatic:
		if spec.Result == "" {
			return types.DetectionFailure, errors.Newf(errors.ErrConfigValid,
				"component %q: static detection needs an availability", name)
		}
		return spec.Result, nil

	case MethodBinary:
		binary := spec.Binary
		if binary == "" {
			binary = name
		}
		if _, err := d.LookPath(binary); err != nil {
			logger.Debug().Str("component", name).Str("binary", binary).Msg("Binary not on PATH")
			return types.Unavailable, nil
		}
		return types.Available, nil

	case MethodPath:
		if spec.Path == "" {
			return types.DetectionFailure, errors.Newf(errors.ErrConfigValid,
				"component %q: path detection needs a path", name)
		}
		if _, err := d.Stat(spec.Path); err != nil {
			if os.IsNotExist(err) {
				return types.Unavailable, nil
			}
			return types.DetectionFailure, errors.Wrapf(err, errors.ErrDetection,
				"component %q: cannot probe %s", name, spec.Path)
		}
		return types.Available, nil

	case MethodAutomatic:
		return d.detectAutomatic(name, spec)
	}

	return types.DetectionFailure, errors.Newf(errors.ErrConfigValid,
		"component %q: unknown detection method %q", name, spec.Method)
}

func (d *Detector) detectAutomatic(name string, spec Spec) (types.Availability, error) {
	match := spec.Match
	if match == "" {
		match = name
	}

	programs, err := d.Programs.Names()
	if err != nil {
		return types.DetectionFailure, errors.Wrapf(err, errors.ErrDetection,
			"component %q: cannot list installed programs", name)
	}

	if spec.Regex {
		re, err := regexp.Compile(match)
		if err != nil {
			return types.DetectionFailure, errors.Wrapf(err, errors.ErrConfigValid,
				"component %q: invalid detection pattern", name)
		}
		for _, program := range programs {
			if re.MatchString(program) {
				return types.Available, nil
			}
		}
		return types.Unavailable, nil
	}

	match = strings.ToLower(match)
	for _, program := range programs {
		if strings.Contains(strings.ToLower(program), match) {
			return types.Available, nil
		}
	}
	return types.Unavailable, nil
}
