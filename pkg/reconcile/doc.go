// Package reconcile implements the symlink reconciliation engine: a
// recursive walk of a component's source tree against its install target,
// classifying every path and creating, checking, or removing symlinks.
//
// The walk shares one traversal shape across four modes. Install mutates
// the target tree; Simulate evaluates the identical decisions without
// touching the filesystem (dry run); Verify reports what is currently
// linked, for discovery and status; Remove deletes correctly-pointing
// links and downgrades every mismatch to a warning. Each linkable leaf
// contributes one boolean outcome; Aggregate
// reduces the flat outcome list to a component lifecycle state. A conflict
// never aborts the walk - one bad leaf never prevents reconciliation of
// its siblings.
package reconcile
