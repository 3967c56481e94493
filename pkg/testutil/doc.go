// Package testutil provides test helpers for linkdot: a symlink-aware
// in-memory types.FS and builders for component fixture trees.
package testutil
