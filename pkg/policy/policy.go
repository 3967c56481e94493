// Package policy computes, for any source-relative path of a component,
// whether it is skipped and which absolute target path(s) it maps to.
// It is a pure mapping over the component's configuration plus the
// process-wide global ignore set; it touches no filesystem.
package policy

import (
	"path/filepath"

	"github.com/arthur-debert/linkdot/pkg/types"
)

// Policy holds the cross-component pieces of path policy.
type Policy struct {
	globalIgnore map[string]struct{}
}

// New creates a policy with the given global ignore list. Entries are
// source-relative slash-separated paths, matched exactly.
func New(globalIgnore []string) *Policy {
	set := make(map[string]struct{}, len(globalIgnore))
	for _, p := range globalIgnore {
		set[Normalize(p)] = struct{}{}
	}
	return &Policy{globalIgnore: set}
}

// Normalize converts a relative path to the slash-separated cleaned form
// used as map keys throughout the configuration tables.
func Normalize(rel string) string {
	return filepath.ToSlash(filepath.Clean(rel))
}

// IsIgnored reports whether the source-relative path (file or directory)
// is excluded from all processing, either by the component or globally.
// Ignore takes precedence over renames and additional targets.
func (p *Policy) IsIgnored(c *types.Component, rel string) bool {
	rel = Normalize(rel)
	if _, ok := p.globalIgnore[rel]; ok {
		return true
	}
	_, ok := c.IgnorePaths[rel]
	return ok
}

// TargetsFor returns every absolute target path the source-relative file
// must be linked to: the renamed-or-plain primary target first, then each
// configured additional target. Files only; directories always map 1:1
// under the install path and support neither renames nor additionals.
func (p *Policy) TargetsFor(c *types.Component, rel string) []string {
	rel = Normalize(rel)

	primary := rel
	if renamed, ok := c.RenamePaths[rel]; ok {
		primary = Normalize(renamed)
	}

	targets := []string{filepath.Join(c.InstallPath, filepath.FromSlash(primary))}
	for _, extra := range c.AdditionalPaths[rel] {
		targets = append(targets, filepath.Join(c.InstallPath, filepath.FromSlash(Normalize(extra))))
	}
	return targets
}

// DirTarget returns the single target for a source-relative directory.
func (p *Policy) DirTarget(c *types.Component, rel string) string {
	return filepath.Join(c.InstallPath, filepath.FromSlash(Normalize(rel)))
}
