package config

import (
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	toml "github.com/pelletier/go-toml/v2"
	"gopkg.in/yaml.v3"

	"github.com/five82/loglens/internal/logger"
	"github.com/five82/loglens/internal/render"
)

// Config holds the persistent defaults for loglens. Flags override it.
type Config struct {
	Level        string        `toml:"level" yaml:"level"`
	Color        string        `toml:"color" yaml:"color"`
	MaxLineBytes int           `toml:"max_line_bytes" yaml:"max_line_bytes"`
	Pager        bool          `toml:"pager" yaml:"pager"`
	Logging      logger.Config `toml:"logging" yaml:"logging"`
}

// EnvConfigPath names the environment variable that overrides the default
// config location.
const EnvConfigPath = "LOGLENS_CONFIG"

const (
	defaultConfigPath   = "~/.config/loglens/config.toml"
	defaultColor        = string(render.ColorAlways)
	defaultMaxLineBytes = 1024 * 1024
	defaultLogLevel     = "warn"
	defaultLogMaxSize   = 10
	defaultLogBackups   = 3
	defaultLogMaxAge    = 28
)

// Default returns the configuration used when no file exists.
func Default() Config {
	return Config{
		Color:        defaultColor,
		MaxLineBytes: defaultMaxLineBytes,
		Logging: logger.Config{
			Level:      defaultLogLevel,
			MaxSize:    defaultLogMaxSize,
			MaxBackups: defaultLogBackups,
			MaxAge:     defaultLogMaxAge,
		},
	}
}

// Load reads the config at path, falling back to defaults when missing.
// An empty path means $LOGLENS_CONFIG, then ~/.config/loglens/config.toml.
func Load(path string) (Config, error) {
	resolved, err := ResolvePath(path)
	if err != nil {
		return Config{}, err
	}

	file, err := os.Open(resolved)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return Default(), nil
		}
		return Config{}, fmt.Errorf("open config: %w", err)
	}
	defer file.Close()

	bytes, err := io.ReadAll(file)
	if err != nil {
		return Config{}, fmt.Errorf("read config: %w", err)
	}

	cfg := Default()
	if isYAML(resolved) {
		err = yaml.Unmarshal(bytes, &cfg)
	} else {
		err = toml.Unmarshal(bytes, &cfg)
	}
	if err != nil {
		return Config{}, fmt.Errorf("parse config: %w", err)
	}

	if err := cfg.normalize(); err != nil {
		return Config{}, fmt.Errorf("parse config: %w", err)
	}
	return cfg, nil
}

func (c *Config) normalize() error {
	c.Level = strings.TrimSpace(c.Level)

	mode, err := render.ParseColorMode(c.Color)
	if err != nil {
		return err
	}
	c.Color = string(mode)

	if c.MaxLineBytes <= 0 {
		c.MaxLineBytes = defaultMaxLineBytes
	}

	c.Logging.Level = strings.ToLower(strings.TrimSpace(c.Logging.Level))
	if c.Logging.Level == "" {
		c.Logging.Level = defaultLogLevel
	}
	if path := strings.TrimSpace(c.Logging.Path); path != "" {
		c.Logging.Path = mustExpand(path)
	} else {
		c.Logging.Path = ""
	}
	if c.Logging.MaxSize <= 0 {
		c.Logging.MaxSize = defaultLogMaxSize
	}
	if c.Logging.MaxBackups < 0 {
		c.Logging.MaxBackups = defaultLogBackups
	}
	if c.Logging.MaxAge < 0 {
		c.Logging.MaxAge = defaultLogMaxAge
	}
	return nil
}

// Save writes cfg to path, creating directories as needed. The encoding
// follows the file extension, like Load.
func Save(path string, cfg Config) error {
	resolved, err := ResolvePath(path)
	if err != nil {
		return fmt.Errorf("resolve path: %w", err)
	}

	if err := os.MkdirAll(filepath.Dir(resolved), 0o755); err != nil {
		return fmt.Errorf("create config dir: %w", err)
	}

	var bytes []byte
	if isYAML(resolved) {
		bytes, err = yaml.Marshal(cfg)
	} else {
		bytes, err = toml.Marshal(cfg)
	}
	if err != nil {
		return fmt.Errorf("marshal config: %w", err)
	}

	if err := os.WriteFile(resolved, bytes, 0o644); err != nil {
		return fmt.Errorf("write config: %w", err)
	}
	return nil
}

// ResolvePath returns the absolute config path Load and Save would use.
func ResolvePath(path string) (string, error) {
	if strings.TrimSpace(path) != "" {
		return expandPath(path)
	}
	if env := strings.TrimSpace(os.Getenv(EnvConfigPath)); env != "" {
		return expandPath(env)
	}
	return expandPath(defaultConfigPath)
}

func isYAML(path string) bool {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".yaml", ".yml":
		return true
	}
	return false
}

func mustExpand(path string) string {
	expanded, err := expandPath(path)
	if err != nil {
		return path
	}
	return expanded
}

func expandPath(path string) (string, error) {
	trimmed := strings.TrimSpace(path)
	if trimmed == "" {
		return "", fmt.Errorf("path is empty")
	}
	if strings.HasPrefix(trimmed, "~") {
		home, err := os.UserHomeDir()
		if err != nil {
			return "", fmt.Errorf("resolve home dir: %w", err)
		}
		trimmed = filepath.Join(home, strings.TrimPrefix(trimmed, "~"))
	}
	return filepath.Abs(trimmed)
}
