// Package benchmark measures the cost of capturing on top of each
// supported backend.
package benchmark

import (
	"sync/atomic"

	"github.com/philipp01105/canonlog/core"
	"github.com/philipp01105/canonlog/handler"
)

// countingHandler drops entries after counting them, so benchmarks
// measure the logging path and not the output.
type countingHandler struct {
	handled atomic.Uint64
}

func newCountingHandler() handler.Handler {
	return &countingHandler{}
}

func (h *countingHandler) Handle(*core.Entry) error {
	h.handled.Add(1)
	return nil
}

func (h *countingHandler) Close() error {
	return nil
}
