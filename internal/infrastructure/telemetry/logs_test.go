package telemetry

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"go.uber.org/zap/zaptest"
	"go.uber.org/zap/zaptest/observer"
)

func TestNewLoggerProvider_Disabled(t *testing.T) {
	ctx := context.Background()
	lp, err := NewLoggerProvider(ctx, LogsConfig{ServiceName: "test-service"}, zaptest.NewLogger(t))
	require.NoError(t, err)

	assert.False(t, lp.IsEnabled())
	assert.NoError(t, lp.ForceFlush(ctx))
	assert.NoError(t, lp.Shutdown(ctx))
}

func TestNewZapOTELCore_DisabledIsNop(t *testing.T) {
	lp, err := NewLoggerProvider(context.Background(), LogsConfig{}, zap.NewNop())
	require.NoError(t, err)

	for _, core := range []zapcore.Core{
		NewZapOTELCore(nil, "svc", zapcore.InfoLevel),
		NewZapOTELCore(lp, "svc", zapcore.InfoLevel),
	} {
		assert.False(t, core.Enabled(zapcore.ErrorLevel))
	}
}

func TestBridgeLogger_KeepsBaseOutput(t *testing.T) {
	baseCore, baseLogs := observer.New(zapcore.InfoLevel)
	otelCore, otelLogs := observer.New(zapcore.DebugLevel)

	logger := BridgeLogger(zap.New(baseCore), otelCore)
	logger.Info("work order created", zap.String("company_id", "c1"))

	require.Equal(t, 1, baseLogs.Len())
	require.Equal(t, 1, otelLogs.Len())
	assert.Equal(t, "c1", otelLogs.All()[0].ContextMap()["company_id"])
}

func TestLevelFilterCore(t *testing.T) {
	inner, logs := observer.New(zapcore.DebugLevel)
	core := &levelFilterCore{Core: inner, minLevel: zapcore.WarnLevel}

	assert.False(t, core.Enabled(zapcore.InfoLevel))
	assert.True(t, core.Enabled(zapcore.ErrorLevel))

	logger := zap.New(core).With(zap.String("request_id", "r1"))
	logger.Info("dropped")
	logger.Warn("kept")

	require.Equal(t, 1, logs.Len())
	entry := logs.All()[0]
	assert.Equal(t, "kept", entry.Message)
	assert.Equal(t, "r1", entry.ContextMap()["request_id"])
}
