package benchmark

import (
	"context"
	"io"
	"log/slog"
	"testing"

	"github.com/rs/zerolog"
	"github.com/sirupsen/logrus"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"

	"github.com/philipp01105/canonlog/adapter/logrusadapter"
	"github.com/philipp01105/canonlog/adapter/slogadapter"
	"github.com/philipp01105/canonlog/adapter/zapadapter"
	"github.com/philipp01105/canonlog/adapter/zerologadapter"
	"github.com/philipp01105/canonlog/capture"
	"github.com/philipp01105/canonlog/formatter"
	"github.com/philipp01105/canonlog/handler"
	"github.com/philipp01105/canonlog/logger"
)

// ---------------------------------------------------------------------------
// Backends – identical sink for every framework (io.Discard)
// ---------------------------------------------------------------------------

func newHandlerBackend() logger.Factory {
	h := handler.NewConsoleHandler(handler.ConsoleConfig{
		Writer:    io.Discard,
		Formatter: formatter.NewJSONFormatter(formatter.Config{}),
	})
	return logger.NewBuilder().WithHandler(h).WithLevel(logger.DebugLevel).Factory()
}

func newZapBackend() logger.Factory {
	enc := zapcore.NewJSONEncoder(zap.NewProductionEncoderConfig())
	c := zapcore.NewCore(enc, zapcore.AddSync(io.Discard), zap.DebugLevel)
	return zapadapter.Factory(zap.New(c))
}

func newSlogBackend() logger.Factory {
	return slogadapter.Factory(slog.New(slog.NewJSONHandler(io.Discard, &slog.HandlerOptions{Level: slog.LevelDebug})))
}

func newLogrusBackend() logger.Factory {
	l := logrus.New()
	l.SetOutput(io.Discard)
	l.SetFormatter(&logrus.JSONFormatter{})
	l.SetLevel(logrus.DebugLevel)
	return logrusadapter.Factory(l)
}

func newZerologBackend() logger.Factory {
	return zerologadapter.Factory(zerolog.New(io.Discard).With().Timestamp().Logger().Level(zerolog.DebugLevel))
}

var backends = []struct {
	name    string
	factory func() logger.Factory
}{
	{"handler", newHandlerBackend},
	{"zap", newZapBackend},
	{"slog", newSlogBackend},
	{"logrus", newLogrusBackend},
	{"zerolog", newZerologBackend},
}

// ---------------------------------------------------------------------------
// Scenario 1 – template message, written and captured
// ---------------------------------------------------------------------------

func BenchmarkCompetitive_TemplateCaptured(b *testing.B) {
	ctx := context.Background()
	for _, be := range backends {
		b.Run(be.name, func(b *testing.B) {
			reg := capture.NewRegistry(be.factory())
			l := reg.Logger("bench")
			b.ReportAllocs()
			b.ResetTimer()
			for i := 0; i < b.N; i++ {
				_ = logger.Info(ctx, l, "Order {OrderId} processed for {Customer}", i, "bench")
				if i%64 == 63 {
					sinkEntries = reg.FlushAll()
				}
			}
		})
	}
}

// ---------------------------------------------------------------------------
// Scenario 2 – same call without capture, for comparison
// ---------------------------------------------------------------------------

func BenchmarkCompetitive_TemplateDirect(b *testing.B) {
	ctx := context.Background()
	for _, be := range backends {
		b.Run(be.name, func(b *testing.B) {
			l := be.factory().CreateLogger("bench")
			b.ReportAllocs()
			b.ResetTimer()
			for i := 0; i < b.N; i++ {
				_ = logger.Info(ctx, l, "Order {OrderId} processed for {Customer}", i, "bench")
			}
		})
	}
}

// ---------------------------------------------------------------------------
// Scenario 3 – explicit fields inside a structured scope
// ---------------------------------------------------------------------------

func BenchmarkCompetitive_FieldsInScope(b *testing.B) {
	for _, be := range backends {
		b.Run(be.name, func(b *testing.B) {
			reg := capture.NewRegistry(be.factory())
			l := reg.Logger("bench")
			ctx, scope := l.BeginScope(context.Background(), "request")
			defer scope.Close()

			b.ReportAllocs()
			b.ResetTimer()
			for i := 0; i < b.N; i++ {
				_ = logger.LogFields(ctx, l, logger.InfoLevel, "request handled",
					logger.String("method", "GET"),
					logger.Int("status", 200),
					logger.Bool("cached", true),
				)
				if i%64 == 63 {
					sinkEntries = reg.FlushAll()
				}
			}
		})
	}
}
