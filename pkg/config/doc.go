// Package config provides configuration loading for playlint.
//
// Configuration is read from a YAML file (.playlint.yaml by default);
// defaults are applied for unset fields and PLAYLINT_* environment
// variables override file values. The loading sequence is:
//
//  1. Load YAML from file (missing file falls back to defaults)
//  2. Apply default values
//  3. Apply environment variable overrides
//  4. Validate the final configuration
package config
