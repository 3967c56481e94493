// Package config parses linkdot's configuration inputs: the TOML
// component metadata files (built-in defaults plus user overrides) and
// the YAML process-wide settings file. The reconciliation core never
// reads these files itself; it consumes the resolved records.
package config
