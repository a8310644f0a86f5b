// Package config loads and saves the loglens configuration file.
//
// # Overview
//
// The config file holds defaults for flags that are tedious to repeat: the
// level filter, the color mode, the pager switch and how diagnostics are
// logged. Every value can be overridden on the command line.
//
// # Configuration Discovery
//
// Load and Save resolve the path in this order:
//
//  1. If a path is explicitly provided (--config), use it
//  2. Otherwise, use $LOGLENS_CONFIG when set
//  3. Otherwise, use ~/.config/loglens/config.toml (default)
//
// A missing file is not an error: Load returns Default().
//
// # Default Values
//
//   - level: "" (no filter)
//   - color: always
//   - max_line_bytes: 1048576
//   - pager: false
//   - logging.level: warn
//   - logging.max_size: 10 (MB), max_backups: 3, max_age: 28 (days)
//
// # File Format
//
// TOML is the default. A .yaml or .yml extension switches both Load and Save
// to YAML.
//
//	level = "error"
//	color = "auto"
//	pager = false
//
//	[logging]
//	level = "debug"
//	path = "~/.local/state/loglens/loglens.log"
//
// # Validation
//
// Values are trimmed and empty values take their defaults. An unknown color
// mode fails with "parse config: invalid color mode ...". Tilde expansion is
// applied to logging.path.
//
// # Error Handling
//
// Errors are wrapped with the failing step: "open config", "read config",
// "parse config" for Load and "create config dir", "marshal config",
// "write config" for Save.
package config
