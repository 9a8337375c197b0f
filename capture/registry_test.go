package capture

import (
	"context"
	"errors"
	"sync"
	"sync/atomic"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/philipp01105/canonlog/logger"
)

type countingFactory struct {
	created atomic.Int32
}

func (f *countingFactory) CreateLogger(string) logger.Logger {
	f.created.Add(1)
	return &recordingLogger{}
}

type closerFunc func() error

func (f closerFunc) Close() error { return f() }

func TestRegistry_SameCategorySameLogger(t *testing.T) {
	f := &countingFactory{}
	r := NewRegistry(f)

	a := r.CreateLogger("TestCategory")
	b := r.CreateLogger("TestCategory")
	c := r.CreateLogger("Other")

	assert.Same(t, a, b)
	assert.NotSame(t, a, c)
	assert.Equal(t, int32(2), f.created.Load())
	assert.Equal(t, []string{"Other", "TestCategory"}, r.Categories())
}

func TestRegistry_ConcurrentFirstAccess(t *testing.T) {
	f := &countingFactory{}
	r := NewRegistry(f)

	const n = 64
	got := make([]*Logger, n)
	var wg sync.WaitGroup
	start := make(chan struct{})
	for i := 0; i < n; i++ {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			<-start
			got[i] = r.Logger("shared")
		}(i)
	}
	close(start)
	wg.Wait()

	for _, l := range got {
		assert.Same(t, got[0], l)
	}
	assert.Equal(t, int32(1), f.created.Load(), "factory must run once per category")
}

func TestRegistry_FlushAll(t *testing.T) {
	ctx := context.Background()
	r := NewRegistry(&countingFactory{})

	_ = logger.Info(ctx, r.CreateLogger("Category1"), "Message 1")
	_ = logger.Info(ctx, r.CreateLogger("Category2"), "Message 2")

	entries := r.FlushAll()
	require.Len(t, entries, 2)

	messages := []string{entries[0].Message, entries[1].Message}
	assert.ElementsMatch(t, []string{"Message 1", "Message 2"}, messages)
	assert.Empty(t, r.FlushAll())
}

func TestRegistry_FlushAllKeepsCategoryOrder(t *testing.T) {
	ctx := context.Background()
	r := NewRegistry(&countingFactory{})
	a, b := r.Logger("a"), r.Logger("b")

	_ = logger.Info(ctx, a, "a1")
	_ = logger.Info(ctx, b, "b1")
	_ = logger.Info(ctx, a, "a2")
	_ = logger.Info(ctx, b, "b2")

	var gotA, gotB []string
	for _, e := range r.FlushAll() {
		switch e.Category {
		case "a":
			gotA = append(gotA, e.Message)
		case "b":
			gotB = append(gotB, e.Message)
		}
	}
	assert.Equal(t, []string{"a1", "a2"}, gotA)
	assert.Equal(t, []string{"b1", "b2"}, gotB)
}

func TestRegistry_CloseDiscardsUnflushed(t *testing.T) {
	ctx := context.Background()
	r := NewRegistry(&countingFactory{})
	first := r.Logger("c")

	_ = logger.Info(ctx, first, "flushed")
	require.Len(t, r.FlushAll(), 1)
	_ = logger.Info(ctx, first, "dropped 1")
	_ = logger.Info(ctx, first, "dropped 2")

	require.NoError(t, r.Close())

	snap := r.Stats()
	assert.Equal(t, uint64(3), snap.CapturedTotal)
	assert.Equal(t, uint64(1), snap.Flushed)
	assert.Equal(t, uint64(2), snap.Discarded)
	assert.Zero(t, snap.Pending())

	assert.Empty(t, r.Categories())
	assert.NotSame(t, first, r.Logger("c"), "a closed registry starts fresh loggers")
	assert.Nil(t, r.FlushAll())
}

func TestRegistry_ClosedLoggerOnlyForwards(t *testing.T) {
	ctx := context.Background()
	inner := &recordingLogger{}
	r := NewRegistry(logger.FactoryFunc(func(string) logger.Logger { return inner }))
	held := r.Logger("c")

	require.NoError(t, r.Close())
	require.NoError(t, logger.Info(ctx, held, "after close"))

	assert.Equal(t, 1, inner.callCount())
	assert.Zero(t, held.Pending())
	assert.Nil(t, held.Flush())
	assert.Zero(t, r.Stats().CapturedTotal)
}

func TestRegistry_DiscardAll(t *testing.T) {
	ctx := context.Background()
	r := NewRegistry(&countingFactory{})
	l := r.Logger("c")
	_ = logger.Info(ctx, l, "one")
	_ = logger.Info(ctx, r.Logger("d"), "two")

	r.DiscardAll()

	assert.Nil(t, r.FlushAll())
	assert.Equal(t, uint64(2), r.Stats().Discarded)
	assert.Same(t, l, r.Logger("c"))

	_ = logger.Info(ctx, l, "three")
	assert.Len(t, r.FlushAll(), 1, "loggers keep capturing")
}

func TestRegistry_CloseCombinesCloserErrors(t *testing.T) {
	errA := errors.New("a failed")
	errB := errors.New("b failed")
	calls := 0
	r := NewRegistry(&countingFactory{}, WithClosers(
		closerFunc(func() error { calls++; return errA }),
		closerFunc(func() error { calls++; return nil }),
		closerFunc(func() error { calls++; return errB }),
	))

	err := r.Close()
	assert.ErrorIs(t, err, errA)
	assert.ErrorIs(t, err, errB)
	assert.Equal(t, 3, calls)

	require.NoError(t, r.Close(), "closers run once")
	assert.Equal(t, 3, calls)
}

func TestNewRegistry_NilFactoryPanics(t *testing.T) {
	assert.Panics(t, func() { NewRegistry(nil) })
}
