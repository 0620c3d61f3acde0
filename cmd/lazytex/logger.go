// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package main

import (
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

// newLogger builds the CLI logger. It writes human-readable entries to
// stderr at warn level, or at debug level when verbose is set.
func newLogger(verbose bool) (*zap.Logger, error) {
	level := zap.NewAtomicLevelAt(zap.WarnLevel)
	if verbose {
		level = zap.NewAtomicLevelAt(zap.DebugLevel)
	}

	cfg := zap.NewProductionConfig()
	cfg.Level = level
	cfg.Encoding = "console"
	cfg.EncoderConfig.EncodeTime = zapcore.ISO8601TimeEncoder
	cfg.DisableStacktrace = true
	cfg.OutputPaths = []string{"stderr"}
	cfg.ErrorOutputPaths = []string{"stderr"}
	return cfg.Build()
}
