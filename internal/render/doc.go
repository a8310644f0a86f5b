// Package render formats parsed log entries for the terminal.
//
// # Level Colors
//
// Only three levels are colorized, matched exactly and case-sensitively:
//
//   - ERROR: bright red (ESC[91m)
//   - WARNING: bright yellow (ESC[93m)
//   - INFO: bright green (ESC[92m)
//
// Every colored token is followed by a full reset (ESC[0m). Any other level,
// including DEBUG or lowercase variants, is written as-is.
//
// # Color Modes
//
// The Formatter wraps a lipgloss renderer whose termenv profile is chosen
// from the ColorMode:
//
//   - always: force the 16-color ANSI profile (default)
//   - never: force the ASCII profile, so no escapes are emitted
//   - auto: let termenv inspect the output writer and environment
//     (NO_COLOR, CLICOLOR_FORCE, TTY detection)
//
// Only the level token is styled. The date and message are never touched.
package render
