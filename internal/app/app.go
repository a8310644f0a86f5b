package app

import (
	"bytes"
	"context"
	"fmt"
	"io"
	"os"
	"path/filepath"

	"github.com/mattn/go-isatty"

	"github.com/five82/loglens/internal/analyzer"
	"github.com/five82/loglens/internal/config"
	"github.com/five82/loglens/internal/logger"
	"github.com/five82/loglens/internal/pager"
	"github.com/five82/loglens/internal/render"
)

// Options configure one loglens run. Empty string fields fall back to the
// config file.
type Options struct {
	ConfigPath string
	LogFile    string
	Level      string
	LevelSet   bool // Level was given explicitly; an empty Level then disables the config's filter
	Color      string
	Pager      bool
	NoPager    bool // wins over Pager and the config's pager setting
	Verbose    bool

	Stdin  io.Reader // nil uses os.Stdin
	Stdout io.Writer // nil uses os.Stdout
	Stderr io.Writer // nil uses os.Stderr
}

// Run analyzes opts.LogFile and writes the report to stdout or the pager.
func Run(ctx context.Context, opts Options) error {
	stdin, stdout, stderr := opts.Stdin, opts.Stdout, opts.Stderr
	if stdin == nil {
		stdin = os.Stdin
	}
	if stdout == nil {
		stdout = os.Stdout
	}
	if stderr == nil {
		stderr = os.Stderr
	}

	cfg, err := config.Load(opts.ConfigPath)
	if err != nil {
		return fmt.Errorf("load config: %w", err)
	}

	logCfg := cfg.Logging
	if opts.Verbose {
		logCfg.Level = "debug"
	}
	log := logger.Init(logCfg, stderr)
	defer func() { _ = logger.Sync() }()
	ctx = logger.WithContext(ctx, log)

	colorSetting := cfg.Color
	if opts.Color != "" {
		colorSetting = opts.Color
	}
	mode, err := render.ParseColorMode(colorSetting)
	if err != nil {
		return err
	}

	level := cfg.Level
	if opts.LevelSet || opts.Level != "" {
		level = opts.Level
	}

	usePager := (opts.Pager || cfg.Pager) && !opts.NoPager
	if usePager && !isTerminal(stdout) {
		log.Debugw("stdout is not a terminal, printing report")
		usePager = false
	}

	analyzeOpts := analyzer.Options{
		Path:         opts.LogFile,
		Level:        level,
		MaxLineBytes: cfg.MaxLineBytes,
	}
	formatter := render.New(stdout, mode)
	log.Debugw("resolved options", "level", level, "color", string(mode), "colorized", formatter.Enabled(), "pager", usePager)
	a := analyzer.New(formatter)

	if !usePager {
		_, err := a.Run(ctx, analyzeOpts, stdout)
		return err
	}

	var buf bytes.Buffer
	if _, err := a.Run(ctx, analyzeOpts, &buf); err != nil {
		return err
	}
	log.Debugw("opening pager", "bytes", buf.Len())
	return pager.Run(ctx, filepath.Base(opts.LogFile), buf.String(), stdin, stdout)
}

func isTerminal(w io.Writer) bool {
	f, ok := w.(*os.File)
	if !ok {
		return false
	}
	return isatty.IsTerminal(f.Fd()) || isatty.IsCygwinTerminal(f.Fd())
}
