// Package logging builds the zap logger shared by the CLI and the TUI.
package logging

import (
	"fmt"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"

	"github.com/Makepad-fr/shoplist/internal/config"
)

// New builds a production logger from cfg. verbose forces debug level.
// With interactive set and no log file, the logger is a no-op so output
// cannot tear the TUI's alternate screen.
func New(cfg config.LoggingConfig, verbose, interactive bool) (*zap.Logger, error) {
	if interactive && cfg.File == "" {
		return zap.NewNop(), nil
	}

	level, err := zapcore.ParseLevel(cfg.Level)
	if err != nil {
		return nil, fmt.Errorf("logging level: %w", err)
	}
	if verbose {
		level = zapcore.DebugLevel
	}

	zc := zap.NewProductionConfig()
	zc.Level = zap.NewAtomicLevelAt(level)
	zc.DisableStacktrace = true
	if cfg.File != "" {
		zc.OutputPaths = []string{cfg.File}
		zc.ErrorOutputPaths = []string{cfg.File}
	}

	logger, err := zc.Build()
	if err != nil {
		return nil, fmt.Errorf("failed to initialize logger: %w", err)
	}
	return logger.Named("shoplist"), nil
}
