// Copyright 2020 PingCAP, Inc. Licensed under Apache-2.0.

package logutil

import (
	"os"

	"github.com/pingcap/errors"
	pclog "github.com/pingcap/log"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

const (
	// DefaultLogLevel is the default level of the log.
	DefaultLogLevel = "info"
	// DefaultLogFormat is the default format of the log.
	DefaultLogFormat = "text"
)

var appLogger = Logger{zap.NewNop()}

// Logger wraps the zap logger.
type Logger struct {
	*zap.Logger
}

// LogConfig serializes log related config in toml/json.
type LogConfig struct {
	// Log level.
	// One of "debug", "info", "warn", "error", "dpanic", "panic", and "fatal".
	Level string `toml:"level" json:"level"`
	// Log filename, leave empty to log to stderr.
	File string `toml:"file" json:"file"`
	// Format of the log, one of `text`, `json` or `console`.
	Format string `toml:"format" json:"format"`
	// Disable automatic timestamps in output.
	DisableTimestamp bool `toml:"disable-timestamp" json:"disable-timestamp"`
}

// InitLogger inits the wrapped logger from config.
// Without a file, logs go to stderr so they never mix with the tool's
// results on stdout.
func InitLogger(cfg *LogConfig) error {
	pcfg := &pclog.Config{
		Level:            cfg.Level,
		Format:           cfg.Format,
		DisableTimestamp: cfg.DisableTimestamp,
		File: pclog.FileLogConfig{
			Filename: cfg.File,
		},
	}
	var (
		logger *zap.Logger
		err    error
	)
	if len(cfg.File) > 0 {
		logger, _, err = pclog.InitLogger(pcfg)
	} else {
		stderr := zapcore.Lock(os.Stderr)
		logger, _, err = pclog.InitLoggerWithWriteSyncer(pcfg, stderr, stderr)
	}
	if err != nil {
		return errors.Trace(err)
	}
	appLogger = Logger{logger.WithOptions(zap.AddCallerSkip(1))}
	return nil
}

// SetLogger sets the wrapped logger.
func SetLogger(logger *zap.Logger) {
	appLogger = Logger{logger}
}

// Sync flushes any buffered log entries.
func Sync() error {
	return appLogger.Sync()
}

// Info wraps *zap.Logger's Info function.
func Info(msg string, fields ...zap.Field) {
	appLogger.Info(msg, fields...)
}

// Warn wraps *zap.Logger's Warn function.
func Warn(msg string, fields ...zap.Field) {
	appLogger.Warn(msg, fields...)
}

// Error wraps *zap.Logger's Error function.
func Error(msg string, fields ...zap.Field) {
	appLogger.Error(msg, fields...)
}

// Debug wraps *zap.Logger's Debug function.
func Debug(msg string, fields ...zap.Field) {
	appLogger.Debug(msg, fields...)
}
