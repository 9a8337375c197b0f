package config

import (
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"os"

	"github.com/rs/zerolog"
	"github.com/sirupsen/logrus"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"

	"github.com/philipp01105/canonlog/adapter/logrusadapter"
	"github.com/philipp01105/canonlog/adapter/slogadapter"
	"github.com/philipp01105/canonlog/adapter/zapadapter"
	"github.com/philipp01105/canonlog/adapter/zerologadapter"
	"github.com/philipp01105/canonlog/capture"
	"github.com/philipp01105/canonlog/core"
	"github.com/philipp01105/canonlog/formatter"
	"github.com/philipp01105/canonlog/handler"
	"github.com/philipp01105/canonlog/logger"
	"github.com/philipp01105/canonlog/middleware"
)

// Stack is a configured canonlog setup
type Stack struct {
	// Handler is the output handler shared by the sink and, for the
	// handler backend, by the loggers.
	Handler handler.Handler
	// Factory produces the underlying loggers
	Factory logger.Factory
	// Registry wraps Factory; Close releases everything else.
	Registry *capture.Registry
	// Sink receives each request's entries
	Sink middleware.Sink
	// Options configure Middleware and Hook
	Options []middleware.Option
}

// Build assembles the handler, backend, registry and sink described by cfg
func Build(cfg *Config) (*Stack, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	h, w, err := newOutput(cfg)
	if err != nil {
		return nil, err
	}

	level := logger.ParseLevel(cfg.Level)
	factory, sync := newFactory(cfg, h, w, level)

	closers := []io.Closer{h}
	if sync != nil {
		// flush the backend before the handler closes its file
		closers = []io.Closer{closerFunc(sync), h}
	}

	var sink middleware.Sink
	if cfg.Middleware.Mode == ModeEntries {
		sink = middleware.NewHandlerSink(h)
	} else {
		sink = middleware.NewCanonicalSink(h,
			middleware.WithMessage(cfg.Middleware.Message),
			middleware.WithCategory(cfg.Middleware.Category))
	}

	opts := []middleware.Option{
		middleware.WithSink(sink),
		middleware.WithRequestIDHeader(cfg.Middleware.RequestIDHeader),
	}
	if len(cfg.Middleware.ExcludePaths) > 0 {
		opts = append(opts, middleware.WithExcludePaths(cfg.Middleware.ExcludePaths...))
	}

	return &Stack{
		Handler:  h,
		Factory:  factory,
		Registry: capture.NewRegistry(factory, capture.WithClosers(closers...)),
		Sink:     sink,
		Options:  opts,
	}, nil
}

// Middleware wraps next with the stack's registry and options
func (s *Stack) Middleware(next http.Handler) http.Handler {
	return middleware.Middleware(next, s.Registry, s.Options...)
}

// Hook returns a Hook over the stack's registry and options
func (s *Stack) Hook() *middleware.Hook {
	return middleware.NewHook(s.Registry, s.Options...)
}

// Install registers the stack's registry as the default capture registry
// and the default logger.Factory
func (s *Stack) Install() {
	capture.SetDefault(s.Registry)
	logger.SetDefault(s.Registry)
}

// Close discards unflushed entries and closes the backend and handler
func (s *Stack) Close() error {
	return s.Registry.Close()
}

type closerFunc func() error

func (f closerFunc) Close() error { return f() }

func newOutput(cfg *Config) (handler.Handler, io.Writer, error) {
	fcfg := formatter.Config{IncludeCaller: cfg.IncludeCaller}
	var f formatter.Formatter = formatter.NewTextFormatter(fcfg)
	if cfg.Format == FormatJSON {
		f = formatter.NewJSONFormatter(fcfg)
	}

	switch cfg.Output {
	case OutputFile:
		fh, err := handler.NewFileHandler(handler.FileConfig{
			Filename:   cfg.File.Path,
			Formatter:  f,
			MaxSize:    int64(cfg.File.MaxSizeMB) << 20,
			MaxBackups: cfg.File.MaxBackups,
		})
		if err != nil {
			return nil, nil, fmt.Errorf("config: file output: %w", err)
		}
		return fh, fh, nil
	case OutputStderr:
		return handler.NewConsoleHandler(handler.ConsoleConfig{Writer: os.Stderr, Formatter: f}), os.Stderr, nil
	default:
		return handler.NewConsoleHandler(handler.ConsoleConfig{Writer: os.Stdout, Formatter: f}), os.Stdout, nil
	}
}

// newFactory returns the backend factory and, for backends that buffer,
// a function flushing them.
func newFactory(cfg *Config, h handler.Handler, w io.Writer, level core.Level) (logger.Factory, func() error) {
	json := cfg.Format == FormatJSON

	switch cfg.Backend {
	case BackendSlog:
		opts := &slog.HandlerOptions{Level: slogLevel(level)}
		var sh slog.Handler = slog.NewTextHandler(w, opts)
		if json {
			sh = slog.NewJSONHandler(w, opts)
		}
		return slogadapter.Factory(slog.New(sh)), nil

	case BackendZap:
		encCfg := zap.NewProductionEncoderConfig()
		encCfg.EncodeTime = zapcore.ISO8601TimeEncoder
		var enc zapcore.Encoder = zapcore.NewConsoleEncoder(encCfg)
		if json {
			enc = zapcore.NewJSONEncoder(encCfg)
		}
		zl := zap.New(zapcore.NewCore(enc, zapcore.AddSync(w), zapLevel(level)))
		if cfg.IncludeCaller {
			zl = zl.WithOptions(zap.AddCaller(), zap.AddCallerSkip(3))
		}
		return zapadapter.Factory(zl), syncIgnoringConsole(zl, cfg.Output)

	case BackendZerolog:
		var out io.Writer = w
		if !json {
			out = zerolog.ConsoleWriter{Out: w, NoColor: true}
		}
		zl := zerolog.New(out).With().Timestamp().Logger().Level(zerologLevel(level))
		return zerologadapter.Factory(zl), nil

	case BackendLogrus:
		ll := logrus.New()
		ll.SetOutput(w)
		ll.SetLevel(logrusLevel(level))
		if json {
			ll.SetFormatter(&logrus.JSONFormatter{})
		} else {
			ll.SetFormatter(&logrus.TextFormatter{FullTimestamp: true, DisableColors: true})
		}
		return logrusadapter.Factory(ll), nil

	default:
		// capture.Logger.Log and the leveled helpers sit between the
		// application and HandlerLogger.Log
		b := logger.NewBuilder().
			WithHandler(h).
			WithLevel(level).
			WithCaller(cfg.IncludeCaller).
			WithCallerSkip(2)
		return b.Factory(), nil
	}
}

// syncIgnoringConsole flushes zap; syncing a terminal fails on some
// platforms, so console outputs are left alone.
func syncIgnoringConsole(zl *zap.Logger, output string) func() error {
	if output != OutputFile {
		return nil
	}
	return zl.Sync
}

func slogLevel(level core.Level) slog.Level {
	switch level {
	case core.TraceLevel:
		return slogadapter.LevelTrace
	case core.DebugLevel:
		return slog.LevelDebug
	case core.InfoLevel:
		return slog.LevelInfo
	case core.WarnLevel:
		return slog.LevelWarn
	case core.ErrorLevel:
		return slog.LevelError
	case core.CriticalLevel:
		return slogadapter.LevelCritical
	default:
		return slogadapter.LevelCritical + 1
	}
}

func zapLevel(level core.Level) zapcore.Level {
	switch level {
	case core.TraceLevel, core.DebugLevel:
		return zapcore.DebugLevel
	case core.InfoLevel:
		return zapcore.InfoLevel
	case core.WarnLevel:
		return zapcore.WarnLevel
	case core.ErrorLevel, core.CriticalLevel:
		return zapcore.ErrorLevel
	default:
		return zapcore.FatalLevel + 1
	}
}

func zerologLevel(level core.Level) zerolog.Level {
	switch level {
	case core.TraceLevel:
		return zerolog.TraceLevel
	case core.DebugLevel:
		return zerolog.DebugLevel
	case core.InfoLevel:
		return zerolog.InfoLevel
	case core.WarnLevel:
		return zerolog.WarnLevel
	case core.ErrorLevel:
		return zerolog.ErrorLevel
	case core.CriticalLevel:
		return zerolog.FatalLevel
	default:
		return zerolog.Disabled
	}
}

func logrusLevel(level core.Level) logrus.Level {
	switch level {
	case core.TraceLevel:
		return logrus.TraceLevel
	case core.DebugLevel:
		return logrus.DebugLevel
	case core.InfoLevel:
		return logrus.InfoLevel
	case core.WarnLevel:
		return logrus.WarnLevel
	case core.ErrorLevel:
		return logrus.ErrorLevel
	default:
		// logrus has no level above panic; critical and none both keep
		// only fatal and panic entries
		return logrus.FatalLevel
	}
}
