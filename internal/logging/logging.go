// Package logging builds the diagnostic logger. Operator-facing output is
// written directly by the console and never goes through it.
package logging

import (
	"fmt"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"

	"github.com/ppiankov/dcntforecast/internal/model"
)

// New builds a zap logger. Without a log file only warnings reach stderr
// so the console stays readable; verbose lowers the level to debug.
// A log file gets JSON at info level or below.
func New(cfg model.LoggingConfig) (*zap.Logger, error) {
	config := zap.NewProductionConfig()
	config.Sampling = nil
	config.Level = zap.NewAtomicLevelAt(level(cfg))

	if cfg.File != "" {
		config.OutputPaths = []string{cfg.File}
	} else {
		config.Encoding = "console"
		config.EncoderConfig.EncodeTime = zapcore.ISO8601TimeEncoder
		config.EncoderConfig.EncodeLevel = zapcore.CapitalLevelEncoder
		config.OutputPaths = []string{"stderr"}
	}

	logger, err := config.Build()
	if err != nil {
		return nil, fmt.Errorf("failed to initialize logger: %w", err)
	}
	return logger, nil
}

func level(cfg model.LoggingConfig) zapcore.Level {
	switch {
	case cfg.Verbose:
		return zapcore.DebugLevel
	case cfg.File != "":
		return zapcore.InfoLevel
	default:
		return zapcore.WarnLevel
	}
}
