// Package logger provides the zap-based diagnostics logger. Diagnostics never
// go to stdout, which carries the report.
package logger

// Config defines diagnostics logging. It is embedded in the config file as
// the [logging] table.
type Config struct {
	// Level: debug, info, warn or error. Empty means warn.
	Level string `toml:"level" yaml:"level"`
	// Path: rotate into this file instead of writing to stderr.
	Path string `toml:"path,omitempty" yaml:"path,omitempty"`
	// MaxSize: megabytes before rotation.
	MaxSize int `toml:"max_size" yaml:"max_size"`
	// MaxBackups: rotated files to keep.
	MaxBackups int `toml:"max_backups" yaml:"max_backups"`
	// MaxAge: days to keep rotated files.
	MaxAge int `toml:"max_age" yaml:"max_age"`
	// Compress: gzip rotated files.
	Compress bool `toml:"compress" yaml:"compress"`
}
