// Package config loads cgrc's application settings.
//
// Settings are layered, later layers overriding earlier ones:
//
//  1. Built-in defaults (embedded/defaults.toml)
//  2. The user settings file, cgrc.toml (or cgrc.yaml) in the user directory
//  3. CGRC_* environment variables, CGRC_OUTPUT_COLOR mapping to output.color
//  4. Overrides passed by the caller, typically command line flags
//
// Rule files are not settings; they are handled by pkg/confstore.
package config
