package config

import (
	"context"
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/philipp01105/canonlog/logger"
)

func TestBuild_Backends(t *testing.T) {
	for _, backend := range []string{BackendHandler, BackendSlog, BackendZap, BackendZerolog, BackendLogrus} {
		for _, format := range []string{FormatText, FormatJSON} {
			t.Run(backend+"/"+format, func(t *testing.T) {
				path := filepath.Join(t.TempDir(), "app.log")
				cfg := Default()
				cfg.Backend = backend
				cfg.Format = format
				cfg.Output = OutputFile
				cfg.File.Path = path

				stack, err := Build(cfg)
				require.NoError(t, err)

				h := stack.Middleware(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
					l := stack.Registry.CreateLogger("orders")
					_ = logger.Info(r.Context(), l, "Order {OrderId} accepted", 77)
				}))
				h.ServeHTTP(httptest.NewRecorder(), httptest.NewRequest(http.MethodGet, "/orders", nil))

				require.NoError(t, stack.Close())

				data, err := os.ReadFile(path)
				require.NoError(t, err)
				out := string(data)
				assert.Equal(t, 2, strings.Count(out, "\n"), "backend line plus canonical line: %s", out)
				assert.Contains(t, out, "Order 77 accepted")
				assert.Contains(t, out, "canonical-log-line")
				assert.Contains(t, out, "/orders")
			})
		}
	}
}

func TestBuild_EntriesMode(t *testing.T) {
	path := filepath.Join(t.TempDir(), "app.log")
	cfg := Default()
	cfg.Output = OutputFile
	cfg.File.Path = path
	cfg.Level = "none"
	cfg.Middleware.Mode = ModeEntries

	stack, err := Build(cfg)
	require.NoError(t, err)

	err = stack.Hook().Run(context.Background(), func(ctx context.Context) error {
		l := stack.Registry.CreateLogger("jobs")
		_ = logger.Info(ctx, l, "first")
		_ = logger.Warn(ctx, l, "second")
		return nil
	})
	require.NoError(t, err)
	require.NoError(t, stack.Close())

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	lines := strings.Split(strings.TrimSpace(string(data)), "\n")
	require.Len(t, lines, 2, "backend is silent at level none; the sink writes each entry")
	assert.Contains(t, lines[0], "jobs: first")
	assert.Contains(t, lines[1], "jobs: second")
}

func TestBuild_InvalidConfig(t *testing.T) {
	cfg := Default()
	cfg.Backend = "unknown"
	_, err := Build(cfg)
	assert.ErrorIs(t, err, ErrInvalidValue)
}
