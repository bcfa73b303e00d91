// ============================================================================
// meinDENKWERK (mDW) - Numerik
// ============================================================================
//
// Package:     logging
// Description: Factory functions for zap-backed key/value loggers
// Author:      Mike Stoffels
// Created:     2026-10-18
// License:     MIT
// ============================================================================

package logging

import (
	"io"
	"os"
	"time"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"

	mdwerrors "github.com/msto63/mdw-simpson/pkg/core/errors"
)

// LoggerConfig holds configuration for creating loggers
type LoggerConfig struct {
	// Component name, added as the "logger" field
	ServiceName string

	// Log level (debug, info, warn, error)
	Level string

	// Output format: "console" or "json" (default: console)
	Format string

	// Output defaults to stderr; stdout is reserved for reports
	Output io.Writer
}

// DefaultLoggerConfig returns a default configuration
func DefaultLoggerConfig(serviceName string) LoggerConfig {
	return LoggerConfig{
		ServiceName: serviceName,
		Level:       "info",
		Format:      "console",
	}
}

// Logger wraps a zap logger with a key/value API
type Logger struct {
	z     *zap.Logger
	level zap.AtomicLevel
}

// NewLogger creates a logger from cfg
func NewLogger(cfg LoggerConfig) *Logger {
	level := zap.NewAtomicLevelAt(ParseLevel(cfg.Level).zapLevel())

	var output io.Writer = os.Stderr
	if cfg.Output != nil {
		output = cfg.Output
	}

	encCfg := zap.NewProductionEncoderConfig()
	encCfg.EncodeTime = zapcore.TimeEncoderOfLayout(time.RFC3339)
	encCfg.EncodeLevel = zapcore.CapitalLevelEncoder

	var encoder zapcore.Encoder
	if cfg.Format == "json" {
		encoder = zapcore.NewJSONEncoder(encCfg)
	} else {
		encoder = zapcore.NewConsoleEncoder(encCfg)
	}

	core := zapcore.NewCore(encoder, zapcore.AddSync(output), level)
	z := zap.New(core)
	if cfg.ServiceName != "" {
		z = z.Named(cfg.ServiceName)
	}

	return &Logger{z: z, level: level}
}

// Nop returns a logger that discards everything
func Nop() *Logger {
	return &Logger{z: zap.NewNop(), level: zap.NewAtomicLevelAt(zapcore.InfoLevel)}
}

// WithLevel returns a logger that writes to the same output at level
func (l *Logger) WithLevel(level Level) *Logger {
	atomic := zap.NewAtomicLevelAt(level.zapLevel())
	z := l.z.WithOptions(zap.WrapCore(func(c zapcore.Core) zapcore.Core {
		return &levelCore{Core: c, level: atomic}
	}))
	return &Logger{z: z, level: atomic}
}

// With returns a child logger that always carries the given key/value pairs
func (l *Logger) With(keysAndValues ...interface{}) *Logger {
	return &Logger{z: l.z.With(toFields(keysAndValues...)...), level: l.level}
}

// Enabled reports whether messages at level are written
func (l *Logger) Enabled(level Level) bool {
	return l.level.Enabled(level.zapLevel())
}

// Debug logs a debug message with key/value pairs
func (l *Logger) Debug(msg string, keysAndValues ...interface{}) {
	l.z.Debug(msg, toFields(keysAndValues...)...)
}

// Info logs an info message with key/value pairs
func (l *Logger) Info(msg string, keysAndValues ...interface{}) {
	l.z.Info(msg, toFields(keysAndValues...)...)
}

// Warn logs a warning message with key/value pairs
func (l *Logger) Warn(msg string, keysAndValues ...interface{}) {
	l.z.Warn(msg, toFields(keysAndValues...)...)
}

// Error logs an error message with key/value pairs
func (l *Logger) Error(msg string, keysAndValues ...interface{}) {
	l.z.Error(msg, toFields(keysAndValues...)...)
}

// Sync flushes buffered entries
func (l *Logger) Sync() error {
	return l.z.Sync()
}

// levelCore overrides the enabled level of the wrapped core
type levelCore struct {
	zapcore.Core
	level zap.AtomicLevel
}

func (c *levelCore) Enabled(lvl zapcore.Level) bool {
	return c.level.Enabled(lvl)
}

func (c *levelCore) With(fields []zapcore.Field) zapcore.Core {
	return &levelCore{Core: c.Core.With(fields), level: c.level}
}

func (c *levelCore) Check(ent zapcore.Entry, ce *zapcore.CheckedEntry) *zapcore.CheckedEntry {
	if c.Enabled(ent.Level) {
		return ce.AddCore(ent, c)
	}
	return ce
}

// toFields converts key-value pairs to zap fields. Non-string keys and a
// trailing orphan value are skipped. Coded errors add a "<key>_code" field.
func toFields(keysAndValues ...interface{}) []zap.Field {
	if len(keysAndValues) == 0 {
		return nil
	}

	fields := make([]zap.Field, 0, len(keysAndValues)/2)
	for i := 0; i < len(keysAndValues)-1; i += 2 {
		key, ok := keysAndValues[i].(string)
		if !ok {
			continue
		}
		if err, ok := keysAndValues[i+1].(error); ok {
			fields = append(fields, zap.NamedError(key, err))
			if code := mdwerrors.GetCode(err); code != mdwerrors.CodeUnknown {
				fields = append(fields, zap.String(key+"_code", code.String()))
			}
			continue
		}
		fields = append(fields, zap.Any(key, keysAndValues[i+1]))
	}
	return fields
}
