// Package logging builds the zap logger used by the CLI.
package logging

import (
	"strings"

	"github.com/pkg/errors"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

// Formats understood by New.
const (
	FormatJSON    = "json"
	FormatConsole = "console"
)

// ParseLevel maps debug, info, warn and error to zap levels.
func ParseLevel(levelStr string) (level zapcore.Level, err error) {
	switch strings.ToLower(levelStr) {
	case "debug":
		level = zapcore.DebugLevel
	case "", "info":
		level = zapcore.InfoLevel
	case "warn":
		level = zapcore.WarnLevel
	case "error":
		level = zapcore.ErrorLevel
	default:
		err = errors.Errorf("unknown log level: %q", levelStr)
	}
	return level, err
}

// New builds a logger writing to stderr. The json format uses zap's production encoder, anything else the
// development one.
func New(levelStr, format string) (logger *zap.Logger, err error) {
	var level zapcore.Level
	level, err = ParseLevel(levelStr)
	if err != nil {
		return logger, err
	}

	var cfg zap.Config
	if format == FormatJSON {
		cfg = zap.NewProductionConfig()
	} else {
		cfg = zap.NewDevelopmentConfig()
	}
	cfg.Level = zap.NewAtomicLevelAt(level)
	cfg.OutputPaths = []string{"stderr"}
	cfg.ErrorOutputPaths = []string{"stderr"}

	logger, err = cfg.Build()
	if err != nil {
		err = errors.Wrap(err, "failed to build logger")
		return logger, err
	}

	return logger, err
}
