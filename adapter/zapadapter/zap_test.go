package zapadapter

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"go.uber.org/zap/zaptest/observer"

	"github.com/philipp01105/canonlog/capture"
	"github.com/philipp01105/canonlog/core"
	"github.com/philipp01105/canonlog/logger"
)

func newObserved(level zapcore.Level) (*zap.Logger, *observer.ObservedLogs) {
	c, logs := observer.New(level)
	return zap.New(c), logs
}

func TestLogger_WritesTemplateFields(t *testing.T) {
	base, logs := newObserved(zapcore.DebugLevel)
	l := New(base, "orders")

	require.NoError(t, logger.Info(context.Background(), l, "Order {OrderId} processed for {Customer}", 123, "Test"))

	require.Equal(t, 1, logs.Len())
	e := logs.All()[0]
	assert.Equal(t, "Order 123 processed for Test", e.Message)
	assert.Equal(t, "orders", e.LoggerName)
	assert.Equal(t, zapcore.InfoLevel, e.Level)
	assert.Equal(t, map[string]any{"OrderId": int64(123), "Customer": "Test"}, e.ContextMap())
}

func TestLogger_LevelsAndExtras(t *testing.T) {
	base, logs := newObserved(zapcore.InfoLevel)
	l := New(base, "c")
	ctx := logger.WithScope(context.Background(), "job-7")

	assert.False(t, l.Enabled(core.DebugLevel))
	assert.False(t, l.Enabled(core.NoneLevel))
	require.NoError(t, logger.Trace(ctx, l, "dropped"))
	require.NoError(t, l.Log(ctx, core.CriticalLevel, core.EventID{ID: 3, Name: "Crash"},
		core.NewEvent("fatal-ish", logger.Duration("took", time.Second), logger.Bool("retry", false)),
		errors.New("boom"), nil))

	require.Equal(t, 1, logs.Len())
	e := logs.All()[0]
	assert.Equal(t, zapcore.ErrorLevel, e.Level)
	assert.Equal(t, "fatal-ish", e.Message)

	m := e.ContextMap()
	assert.Equal(t, int64(3), m[logger.EventIDKey])
	assert.Equal(t, "Crash", m[logger.EventNameKey])
	assert.Equal(t, "job-7", m[logger.ScopeKey])
	assert.Equal(t, time.Second, m["took"])
	assert.Equal(t, false, m["retry"])
	assert.Equal(t, "boom", m["error"])
}

func TestLogger_UnderCapture(t *testing.T) {
	base, logs := newObserved(zapcore.WarnLevel)
	reg := capture.NewRegistry(Factory(base))

	l := reg.CreateLogger("svc")
	require.NoError(t, logger.Info(context.Background(), l, "below zap level"))
	require.NoError(t, logger.Warn(context.Background(), l, "written"))

	assert.Equal(t, 1, logs.Len(), "zap keeps its own level policy")
	assert.Len(t, reg.FlushAll(), 2, "capture mirrors every call")
}
