package logger

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap/zapcore"

	"github.com/pageza/forkcast/backend/config"
)

func TestNewRespectsLevel(t *testing.T) {
	log, err := New(config.Production, "warn")
	require.NoError(t, err)
	assert.False(t, log.Core().Enabled(zapcore.InfoLevel))
	assert.True(t, log.Core().Enabled(zapcore.WarnLevel))
}

func TestNewRejectsUnknownLevel(t *testing.T) {
	_, err := New(config.Development, "loud")
	assert.Error(t, err)
}

func TestInitInstallsLogger(t *testing.T) {
	before := L()
	log, err := Init(&config.Config{Environment: config.Development, LogLevel: "debug"})
	require.NoError(t, err)
	t.Cleanup(func() {
		mu.Lock()
		global = before
		mu.Unlock()
	})

	assert.Same(t, log, L())
	assert.True(t, L().Core().Enabled(zapcore.DebugLevel))
}
