// Package util provides common utilities including logging helpers,
// file system locations and small numeric helpers.
package util

import (
	"fmt"
	"io"
	"os"
	"path/filepath"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"gopkg.in/natefinch/lumberjack.v2"
)

// Logger is the process-wide logger. It discards everything until
// InitLogger runs, so packages may log freely in tests.
var Logger = zap.NewNop().Sugar()

// LogOptions configures InitLogger.
type LogOptions struct {
	Path    string // rotating JSON log file; empty disables the file core
	Level   string
	Console bool      // also write warnings and errors as plain lines
	Stderr  io.Writer // console destination, os.Stderr when nil
}

// InitLogger builds the global logger and returns a flush function. The file
// core records everything at Level with stack traces on errors; the console
// core only shows warnings and errors, without stacks.
func InitLogger(opts LogOptions) (func(), error) {
	level := zap.InfoLevel
	if opts.Level != "" {
		if err := level.UnmarshalText([]byte(opts.Level)); err != nil {
			return nil, fmt.Errorf("invalid log level %q: %w", opts.Level, err)
		}
	}

	encoderConfig := zap.NewProductionEncoderConfig()
	encoderConfig.EncodeTime = zapcore.ISO8601TimeEncoder

	var (
		cores  []zapcore.Core
		closer io.Closer
	)
	if opts.Path != "" {
		if err := os.MkdirAll(filepath.Dir(opts.Path), 0o755); err != nil {
			return nil, err
		}
		rotator := &lumberjack.Logger{
			Filename:   opts.Path,
			MaxSize:    10, // MB
			MaxBackups: 5,
			MaxAge:     30, // days
		}
		closer = rotator
		cores = append(cores, zapcore.NewCore(
			zapcore.NewJSONEncoder(encoderConfig),
			zapcore.AddSync(rotator),
			level,
		))
	}
	if opts.Console {
		out := opts.Stderr
		if out == nil {
			out = os.Stderr
		}
		consoleConfig := encoderConfig
		consoleConfig.StacktraceKey = ""
		consoleConfig.CallerKey = ""
		consoleLevel := level
		if consoleLevel < zap.WarnLevel {
			consoleLevel = zap.WarnLevel
		}
		cores = append(cores, zapcore.NewCore(
			zapcore.NewConsoleEncoder(consoleConfig),
			zapcore.AddSync(out),
			consoleLevel,
		))
	}
	if len(cores) == 0 {
		Logger = zap.NewNop().Sugar()
		return func() {}, nil
	}

	logger := zap.New(zapcore.NewTee(cores...), zap.AddCaller(), zap.AddStacktrace(zap.ErrorLevel))
	Logger = logger.Sugar()
	return func() {
		_ = logger.Sync()
		if closer != nil {
			_ = closer.Close()
		}
	}, nil
}

// LogError logs an error with context if it is non-nil.
func LogError(context string, err error) {
	if err != nil {
		Logger.Errorw(context, "error", err)
	}
}
