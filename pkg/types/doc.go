// Package types defines the core data model shared across linkdot:
// components, their availability and install lifecycle states, filesystem
// entry classification, structured reporting messages, and the FS
// abstraction the reconciliation engine operates against.
package types
