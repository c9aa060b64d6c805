package logger

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"go.uber.org/zap/zaptest/observer"
)

func TestParseLevel(t *testing.T) {
	assert.Equal(t, zapcore.DebugLevel, parseLevel("debug"))
	assert.Equal(t, zapcore.WarnLevel, parseLevel("warn"))
	assert.Equal(t, zapcore.ErrorLevel, parseLevel("error"))
	assert.Equal(t, zapcore.InfoLevel, parseLevel(""))
	assert.Equal(t, zapcore.InfoLevel, parseLevel("loud"))
}

func TestZapLoggerEmitsOrderedFields(t *testing.T) {
	core, logs := observer.New(zapcore.DebugLevel)
	z := &ZapLogger{log: zap.New(core)}

	z.Info("payment verification rejected", Fields{
		"reason": "transaction not found",
		"proof":  "0xabc",
	})

	entries := logs.All()
	require.Len(t, entries, 1)
	assert.Equal(t, "payment verification rejected", entries[0].Message)

	ctx := entries[0].ContextMap()
	assert.Equal(t, "transaction not found", ctx["reason"])
	assert.Equal(t, "0xabc", ctx["proof"])

	// Field keys come out sorted regardless of map iteration order.
	require.Len(t, entries[0].Context, 2)
	assert.Equal(t, "proof", entries[0].Context[0].Key)
	assert.Equal(t, "reason", entries[0].Context[1].Key)
}

func TestZapLoggerRespectsLevel(t *testing.T) {
	core, logs := observer.New(zapcore.WarnLevel)
	z := &ZapLogger{log: zap.New(core)}

	z.Debug("hidden", nil)
	z.Info("hidden", nil)
	z.Warn("shown", nil)
	z.Error("shown too", nil)

	require.Len(t, logs.All(), 2)
	assert.Equal(t, "shown", logs.All()[0].Message)
}

func TestNewZapLoggerBuilds(t *testing.T) {
	assert.NotNil(t, NewZapLogger("debug"))
	assert.NotNil(t, NewZapLogger("not-a-level"))
}
