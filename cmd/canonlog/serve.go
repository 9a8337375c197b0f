package main

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"os/signal"
	"strconv"
	"syscall"
	"time"

	"github.com/spf13/cobra"

	"github.com/philipp01105/canonlog/capture"
	"github.com/philipp01105/canonlog/config"
	"github.com/philipp01105/canonlog/core"
	"github.com/philipp01105/canonlog/logger"
)

var (
	serveAddr         string
	serveShutdownWait time.Duration
)

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Start the demo HTTP server",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, err := loadConfig()
		if err != nil {
			return err
		}
		stack, err := config.Build(cfg)
		if err != nil {
			return err
		}
		stack.Install()

		ctx, stop := signal.NotifyContext(cmd.Context(), syscall.SIGINT, syscall.SIGTERM)
		defer stop()
		return serve(ctx, stack)
	},
}

func init() {
	serveCmd.Flags().StringVar(&serveAddr, "addr", ":8080", "listen address")
	serveCmd.Flags().DurationVar(&serveShutdownWait, "shutdown-timeout", 10*time.Second, "graceful shutdown timeout")
	rootCmd.AddCommand(serveCmd)
}

func serve(ctx context.Context, stack *config.Stack) error {
	// lifecycle messages bypass capture so they never join a request's line
	log := stack.Factory.CreateLogger("canonlog.server")

	srv := &http.Server{
		Addr:              serveAddr,
		Handler:           stack.Middleware(routes()),
		ReadHeaderTimeout: 5 * time.Second,
	}

	errCh := make(chan error, 1)
	go func() {
		errCh <- srv.ListenAndServe()
	}()
	_ = logger.Info(ctx, log, "Listening on {Addr}", serveAddr)

	var serveErr error
	select {
	case err := <-errCh:
		if !errors.Is(err, http.ErrServerClosed) {
			serveErr = err
		}
	case <-ctx.Done():
		shutdownCtx, cancel := context.WithTimeout(context.Background(), serveShutdownWait)
		defer cancel()
		serveErr = srv.Shutdown(shutdownCtx)
	}

	// deliver entries left by requests cut short by the shutdown
	if stack.Registry.Stats().Pending() > 0 {
		stack.Hook().Flush(context.Background())
	}
	return errors.Join(serveErr, stack.Close())
}

func routes() http.Handler {
	mux := http.NewServeMux()

	mux.HandleFunc("GET /healthz", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusNoContent)
	})

	mux.HandleFunc("GET /orders/{id}", func(w http.ResponseWriter, r *http.Request) {
		ctx := r.Context()
		log := capture.FromContext(ctx).CreateLogger("orders")

		id, err := strconv.Atoi(r.PathValue("id"))
		if err != nil {
			_ = logger.LogError(ctx, log, core.WarnLevel, err, "Rejected order id {RawId}", r.PathValue("id"))
			http.Error(w, "invalid order id", http.StatusBadRequest)
			return
		}

		ctx, scope := log.BeginScope(ctx, core.NewEvent("", logger.Int("OrderId", id)))
		defer scope.Close()

		_ = logger.Debug(ctx, log, "Loading order {OrderId}", id)
		_ = logger.Info(ctx, log, "Order {OrderId} processed for {Customer}", id, "demo")
		fmt.Fprintf(w, "order %d\n", id)
	})

	mux.HandleFunc("GET /panic", func(w http.ResponseWriter, r *http.Request) {
		log := capture.FromContext(r.Context()).CreateLogger("demo")
		_ = logger.Critical(r.Context(), log, "About to panic")
		panic("demo panic")
	})

	return mux
}
