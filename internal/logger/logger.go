// Package logger builds the application's zap logger.
package logger

import (
	"fmt"
	"sync"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"

	"github.com/pageza/forkcast/backend/config"
)

var (
	mu     sync.RWMutex
	global = zap.NewNop()
)

// New returns a JSON logger in production and CI, and a console logger
// otherwise.
func New(env config.Environment, level string) (*zap.Logger, error) {
	lvl, err := zapcore.ParseLevel(level)
	if err != nil {
		return nil, fmt.Errorf("invalid log level %q: %w", level, err)
	}

	var zc zap.Config
	switch env {
	case config.Production, config.CI:
		zc = zap.NewProductionConfig()
	default:
		zc = zap.NewDevelopmentConfig()
	}
	zc.Level = zap.NewAtomicLevelAt(lvl)

	log, err := zc.Build()
	if err != nil {
		return nil, fmt.Errorf("failed to build logger: %w", err)
	}
	return log.With(zap.String("service", "forkcast")), nil
}

// Init builds the logger for cfg and installs it as the process logger.
func Init(cfg *config.Config) (*zap.Logger, error) {
	log, err := New(cfg.Environment, cfg.LogLevel)
	if err != nil {
		return nil, err
	}
	mu.Lock()
	global = log
	mu.Unlock()
	zap.ReplaceGlobals(log)
	return log, nil
}

// L returns the process logger. It is a no-op logger until Init runs.
func L() *zap.Logger {
	mu.RLock()
	defer mu.RUnlock()
	return global
}
