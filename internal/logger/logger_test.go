package logger

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"go.uber.org/zap/zaptest/observer"
)

func TestZapAdapterWritesFields(t *testing.T) {
	core, logs := observer.New(zapcore.DebugLevel)
	l := NewZapAdapter(zap.New(core))

	l.WithFields(map[string]interface{}{"career": "Data Scientist"}).Info("recommended", map[string]interface{}{"score": 23})

	entries := logs.All()
	require.Len(t, entries, 1)
	assert.Equal(t, "recommended", entries[0].Message)
	ctx := entries[0].ContextMap()
	assert.Equal(t, "Data Scientist", ctx["career"])
	assert.EqualValues(t, 23, ctx["score"])
}

func TestZapAdapterWithError(t *testing.T) {
	core, logs := observer.New(zapcore.InfoLevel)
	l := NewZapAdapter(zap.New(core))

	l.WithError(errors.New("boom")).Error("failed", nil)
	l.Debug("hidden", nil)

	entries := logs.All()
	require.Len(t, entries, 1)
	assert.Equal(t, "boom", entries[0].ContextMap()["error"])
}

func TestNewFallsBackToInfo(t *testing.T) {
	l := New("nonsense", "console")
	require.NotNil(t, l)
	assert.True(t, l.Core().Enabled(zapcore.InfoLevel))
	assert.False(t, l.Core().Enabled(zapcore.DebugLevel))
}

func TestNoOpLogger(t *testing.T) {
	l := NewNoOpLogger()
	l.Info("nothing", map[string]interface{}{"k": "v"})
	assert.NotNil(t, l.WithFields(nil))
}
