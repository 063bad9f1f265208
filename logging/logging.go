// Package logging builds the zap loggers used across blockfall.
//
// Loggers are injected, never global. Library packages take a *zap.Logger and
// usually Name it, e.g. logger.Named("spectate"). Tests use zaptest.NewLogger.
package logging

import (
	"fmt"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

// Options selects the logger flavor.
type Options struct {
	Level string
	// Development switches to the colored console encoder.
	Development bool
	// File sends output to a file instead of stderr.
	File string
}

// New returns a logger for opts.
func New(opts Options) (*zap.Logger, error) {
	level, err := zapcore.ParseLevel(opts.Level)
	if err != nil {
		return nil, fmt.Errorf("parse log level: %w", err)
	}

	return NewWith(func(cfg *zap.Config) {
		if opts.Development {
			*cfg = zap.NewDevelopmentConfig()
			cfg.EncoderConfig.EncodeLevel = zapcore.CapitalColorLevelEncoder
		}
		cfg.Level.SetLevel(level)
		if opts.File != "" {
			cfg.OutputPaths = []string{opts.File}
			cfg.ErrorOutputPaths = []string{opts.File}
			cfg.EncoderConfig.EncodeLevel = zapcore.CapitalLevelEncoder
		}
	})
}

// NewWith returns a logger from a modified production config.
func NewWith(cfgFn func(*zap.Config)) (*zap.Logger, error) {
	cfg := zap.NewProductionConfig()
	cfgFn(&cfg)
	logger, err := cfg.Build()
	if err != nil {
		return nil, fmt.Errorf("build logger: %w", err)
	}
	return logger, nil
}
