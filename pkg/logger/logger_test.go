package logger

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"go.uber.org/zap/zaptest/observer"

	appctx "storeadmin/internal/core/context"
)

func TestFromContext_AddsRequestFields(t *testing.T) {
	core, logs := observer.New(zapcore.DebugLevel)
	ctx := WithLogger(context.Background(), FromZap(zap.New(core)))
	ctx = appctx.WithTrace(ctx, appctx.NewTraceContext("trace-1", "req-1"))
	ctx = appctx.WithSession(ctx, &appctx.Session{UserID: "user-1"})
	ctx = appctx.WithStoreID(ctx, "store-1")

	Info(ctx, "listed products", "count", 3)

	require.Equal(t, 1, logs.Len())
	fields := logs.All()[0].ContextMap()
	assert.Equal(t, "trace-1", fields["trace_id"])
	assert.Equal(t, "req-1", fields["request_id"])
	assert.Equal(t, "user-1", fields["user_id"])
	assert.Equal(t, "store-1", fields["store_id"])
	assert.Equal(t, int64(3), fields["count"])
}

func TestFromContext_AnonymousRequest(t *testing.T) {
	core, logs := observer.New(zapcore.InfoLevel)
	ctx := WithLogger(context.Background(), FromZap(zap.New(core)))

	Debug(ctx, "dropped below level")
	Warn(ctx, "no session")

	require.Equal(t, 1, logs.Len())
	assert.NotContains(t, logs.All()[0].ContextMap(), "user_id")
}

func TestNew_UnknownLevelFallsBackToInfo(t *testing.T) {
	l, err := New(Config{Level: "loud", OutputPaths: []string{"stderr"}})
	require.NoError(t, err)
	assert.True(t, l.Desugar().Core().Enabled(zapcore.InfoLevel))
	assert.False(t, l.Desugar().Core().Enabled(zapcore.DebugLevel))
}
