// Package logging builds the zap loggers used across the Ship Game.
package logging

import (
	"os"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"gopkg.in/natefinch/lumberjack.v2"
)

// Options controls where logs go and how verbose they are
type Options struct {
	// File is the log file path. Empty means stderr.
	File  string
	Debug bool
}

// Rolling file policy: 10MB per file, 3 backups, 7 days
const (
	maxSizeMB  = 10
	maxBackups = 3
	maxAgeDays = 7
)

// New builds a console-encoded logger. Stdout is never used since the MCP
// stdio transport owns it.
func New(opts Options) (*zap.Logger, error) {
	var ws zapcore.WriteSyncer
	if opts.File != "" {
		ws = zapcore.AddSync(&lumberjack.Logger{
			Filename:   opts.File,
			MaxSize:    maxSizeMB,
			MaxBackups: maxBackups,
			MaxAge:     maxAgeDays,
			Compress:   false,
		})
	} else {
		ws = zapcore.Lock(os.Stderr)
	}

	return newLogger(ws, opts.Debug), nil
}

func newLogger(ws zapcore.WriteSyncer, debug bool) *zap.Logger {
	level := zapcore.InfoLevel
	if debug {
		level = zapcore.DebugLevel
	}

	core := zapcore.NewCore(zapcore.NewConsoleEncoder(encoderConfig()), ws, level)
	return zap.New(core, zap.AddCaller())
}

func encoderConfig() zapcore.EncoderConfig {
	return zapcore.EncoderConfig{
		TimeKey:       "ts",
		LevelKey:      "level",
		NameKey:       "logger",
		CallerKey:     "caller",
		MessageKey:    "msg",
		StacktraceKey: "stack",
		LineEnding:    zapcore.DefaultLineEnding,
		EncodeLevel:   zapcore.CapitalLevelEncoder,
		EncodeTime:    zapcore.ISO8601TimeEncoder,
		EncodeCaller:  zapcore.ShortCallerEncoder,
	}
}

// Sync flushes buffered entries, ignoring the error stderr returns on some platforms
func Sync(logger *zap.Logger) {
	if logger != nil {
		_ = logger.Sync()
	}
}
