// Package config provides functionality for loading and managing application configuration.
//
// Settings are read from a YAML file, completed with defaults and validated
// before any component is constructed from them. Every settings struct exposes
// a Validate method so callers building settings in code get the same checks.
package config
