package capture

import (
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/philipp01105/canonlog/core"
)

func TestBuffer_FIFO(t *testing.T) {
	var b Buffer
	assert.Nil(t, b.Drain())

	for _, msg := range []string{"a", "b", "c"} {
		b.Append(core.Entry{Message: msg})
	}
	assert.Equal(t, 3, b.Len())

	got := b.Drain()
	require.Len(t, got, 3)
	assert.Equal(t, "a", got[0].Message)
	assert.Equal(t, "b", got[1].Message)
	assert.Equal(t, "c", got[2].Message)

	assert.Zero(t, b.Len())
	assert.Nil(t, b.Drain())
}

func TestBuffer_DrainedSliceIsNotReused(t *testing.T) {
	var b Buffer
	b.Append(core.Entry{Message: "first"})
	first := b.Drain()

	b.Append(core.Entry{Message: "second"})
	assert.Equal(t, "first", first[0].Message)
}

func TestBuffer_ConcurrentAppendDrain(t *testing.T) {
	const writers, perWriter = 4, 1000
	var b Buffer
	var wg sync.WaitGroup

	for w := 0; w < writers; w++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for i := 0; i < perWriter; i++ {
				b.Append(core.Entry{})
			}
		}()
	}

	stop := make(chan struct{})
	drained := make(chan int)
	go func() {
		n := 0
		for {
			select {
			case <-stop:
				drained <- n
				return
			default:
				n += len(b.Drain())
			}
		}
	}()

	wg.Wait()
	close(stop)
	total := <-drained + len(b.Drain())
	assert.Equal(t, writers*perWriter, total)
}
