package logger

import (
	"context"
	"io"
	"os"
	"path/filepath"
	"strings"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"gopkg.in/natefinch/lumberjack.v2"
)

type contextKey string

const loggerKey = contextKey("logger")

const defaultLevel = zapcore.WarnLevel

var globalLogger *zap.SugaredLogger

// Init builds a logger from cfg, installs it as the global logger and
// returns it. Without a configured path, output goes to w (normally stderr).
func Init(cfg Config, w io.Writer) *zap.SugaredLogger {
	globalLogger = New(cfg, w)
	return globalLogger
}

// New builds a logger from cfg without touching the global logger.
func New(cfg Config, w io.Writer) *zap.SugaredLogger {
	if w == nil {
		w = os.Stderr
	}
	writeSyncer := zapcore.AddSync(w)

	var dirErr error
	if path := strings.TrimSpace(cfg.Path); path != "" {
		if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
			dirErr = err
		} else {
			writeSyncer = zapcore.AddSync(&lumberjack.Logger{
				Filename:   path,
				MaxSize:    cfg.MaxSize,
				MaxBackups: cfg.MaxBackups,
				MaxAge:     cfg.MaxAge,
				Compress:   cfg.Compress,
			})
		}
	}

	encoderConfig := zap.NewProductionEncoderConfig()
	encoderConfig.EncodeTime = zapcore.ISO8601TimeEncoder
	encoder := zapcore.NewConsoleEncoder(encoderConfig)

	core := zapcore.NewCore(encoder, writeSyncer, parseLevel(cfg.Level))
	sugar := zap.New(core).Sugar()

	if dirErr != nil {
		sugar.Warnw("cannot create log directory, logging to stderr", "path", cfg.Path, "error", dirErr)
	}
	sugar.Debugw("logging initialized", "level", parseLevel(cfg.Level).String(), "path", cfg.Path)
	return sugar
}

func parseLevel(s string) zapcore.Level {
	s = strings.TrimSpace(s)
	if s == "" {
		return defaultLevel
	}
	level, err := zapcore.ParseLevel(s)
	if err != nil {
		return defaultLevel
	}
	return level
}

// Sync flushes any buffered log entries.
func Sync() error {
	if globalLogger != nil {
		return globalLogger.Sync()
	}
	return nil
}

// Get returns the logger stored in ctx, then the global logger, then a
// no-op logger.
func Get(ctx context.Context) *zap.SugaredLogger {
	if ctx != nil {
		if l, ok := ctx.Value(loggerKey).(*zap.SugaredLogger); ok {
			return l
		}
	}
	if globalLogger != nil {
		return globalLogger
	}
	return zap.NewNop().Sugar()
}

// WithContext returns a copy of ctx carrying l.
func WithContext(ctx context.Context, l *zap.SugaredLogger) context.Context {
	return context.WithValue(ctx, loggerKey, l)
}
