package logger

import (
	"testing"

	"github.com/amirhossein-jamali/calendar-units/internal/domain/port/core"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap/zapcore"
	"go.uber.org/zap/zaptest/observer"
)

func TestZapLoggerLevels(t *testing.T) {
	observed, logs := observer.New(zapcore.DebugLevel)
	log := NewWithCore(observed, core.LogLevelInfo)

	log.Debug("hidden", nil)
	log.Info("calendar created", map[string]any{"name": "tokyo"})

	require.Equal(t, 1, logs.Len())
	entry := logs.All()[0]
	assert.Equal(t, "calendar created", entry.Message)
	assert.Equal(t, "tokyo", entry.ContextMap()["name"])

	log.SetLevel(core.LogLevelDebug)
	assert.Equal(t, core.LogLevelDebug, log.GetLevel())
	log.Debug("now visible", nil)
	assert.Equal(t, 2, logs.Len())

	log.SetLevel(core.LogLevelError)
	assert.Equal(t, core.LogLevelError, log.GetLevel())
	log.Warn("dropped", nil)
	log.Error("kept", nil)
	assert.Equal(t, 1, logs.FilterMessage("kept").Len())
	assert.Equal(t, 0, logs.FilterMessage("dropped").Len())
}

func TestNewZapLogger(t *testing.T) {
	t.Run("Json at warn", func(t *testing.T) {
		log, err := NewZapLogger(Options{Level: "warn", Format: "json", OutputPaths: []string{"stderr"}})
		require.NoError(t, err)
		assert.Equal(t, core.LogLevelWarn, log.GetLevel())
	})

	t.Run("Console defaults to info", func(t *testing.T) {
		log, err := NewZapLogger(Options{Format: "console"})
		require.NoError(t, err)
		assert.Equal(t, core.LogLevelInfo, log.GetLevel())
	})

	t.Run("Unknown format", func(t *testing.T) {
		_, err := NewZapLogger(Options{Format: "xml"})
		assert.Error(t, err)
	})
}

func TestNoopLogger(t *testing.T) {
	log := NewNoopLogger()
	log.Info("ignored", map[string]any{"k": "v"})
	log.SetLevel(core.LogLevelWarn)
	assert.Equal(t, core.LogLevelWarn, log.GetLevel())
	assert.NoError(t, log.Flush())
}
