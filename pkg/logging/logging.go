// Package logging provides the structured logger used across the analyzer.
// The logger is injected into every component that produces output so the
// transform pipeline itself stays free of logging state.
package logging

import (
	"fmt"
	"os"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

// Fields carries structured context attached to a log entry
type Fields map[string]any

// Logger is the logging interface used throughout the application
type Logger interface {
	Debug(msg string, fields ...Fields)
	Info(msg string, fields ...Fields)
	Warn(msg string, fields ...Fields)
	Error(msg string, fields ...Fields)
	WithFields(fields Fields) Logger
}

// Config controls logger construction
type Config struct {
	// Level is one of debug, info, warn, error
	Level string
	// File, when set, duplicates all entries to the given log file
	// in addition to the console
	File string
}

type zapLogger struct {
	base *zap.Logger
}

// New creates a logger writing to stderr and, when cfg.File is set, to the
// log file as well. An unknown level is rejected rather than defaulted.
func New(cfg Config) (Logger, error) {
	level, err := zapcore.ParseLevel(cfg.Level)
	if err != nil {
		return nil, fmt.Errorf("invalid log level %q: %w", cfg.Level, err)
	}

	encCfg := zap.NewProductionEncoderConfig()
	encCfg.EncodeTime = zapcore.ISO8601TimeEncoder
	encCfg.EncodeLevel = zapcore.CapitalLevelEncoder

	cores := []zapcore.Core{
		zapcore.NewCore(zapcore.NewConsoleEncoder(encCfg), zapcore.Lock(os.Stderr), level),
	}

	if cfg.File != "" {
		f, err := os.OpenFile(cfg.File, os.O_CREATE|os.O_APPEND|os.O_WRONLY, 0o644)
		if err != nil {
			return nil, fmt.Errorf("failed to open log file: %w", err)
		}
		cores = append(cores, zapcore.NewCore(zapcore.NewJSONEncoder(encCfg), zapcore.AddSync(f), level))
	}

	return &zapLogger{base: zap.New(zapcore.NewTee(cores...))}, nil
}

// NewDefaultLogger creates a console logger at info level
func NewDefaultLogger() Logger {
	logger, err := New(Config{Level: "info"})
	if err != nil {
		// info is always a valid level
		panic(err)
	}
	return logger
}

// NewNopLogger creates a logger that discards everything. Used in tests.
func NewNopLogger() Logger {
	return &zapLogger{base: zap.NewNop()}
}

func (l *zapLogger) Debug(msg string, fields ...Fields) {
	l.base.Debug(msg, zapFields(fields)...)
}

func (l *zapLogger) Info(msg string, fields ...Fields) {
	l.base.Info(msg, zapFields(fields)...)
}

func (l *zapLogger) Warn(msg string, fields ...Fields) {
	l.base.Warn(msg, zapFields(fields)...)
}

func (l *zapLogger) Error(msg string, fields ...Fields) {
	l.base.Error(msg, zapFields(fields)...)
}

func (l *zapLogger) WithFields(fields Fields) Logger {
	return &zapLogger{base: l.base.With(zapFields([]Fields{fields})...)}
}

func zapFields(fields []Fields) []zap.Field {
	var out []zap.Field
	for _, fs := range fields {
		for k, v := range fs {
			out = append(out, zap.Any(k, v))
		}
	}
	return out
}
