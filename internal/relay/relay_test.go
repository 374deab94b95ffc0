package relay

import (
	"context"
	"fmt"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLine_FIFOSingleProducer(t *testing.T) {
	line := NewLine[int](16)
	ctx := context.Background()

	for i := 0; i < 10; i++ {
		require.NoError(t, line.Enqueue(ctx, i))
	}
	line.Close()

	var got []int
	err := line.Run(ctx, func(v int) { got = append(got, v) })
	require.NoError(t, err)

	require.Len(t, got, 10)
	for i, v := range got {
		assert.Equal(t, i, v, "dequeue order must equal enqueue order")
	}
}

func TestLine_ConcurrentProducers(t *testing.T) {
	const producers = 8
	const perProducer = 50

	line := NewLine[string](producers * perProducer)
	ctx := context.Background()

	var wg sync.WaitGroup
	for p := 0; p < producers; p++ {
		wg.Add(1)
		go func(p int) {
			defer wg.Done()
			for i := 0; i < perProducer; i++ {
				_ = line.Enqueue(ctx, fmt.Sprintf("p%d-%d", p, i))
			}
		}(p)
	}
	wg.Wait()
	line.Close()

	var got []string
	err := line.Run(ctx, func(v string) { got = append(got, v) })
	require.NoError(t, err)

	// Every item arrives exactly once, and each producer's own items stay
	// in its enqueue order.
	assert.Len(t, got, producers*perProducer)

	next := make(map[string]int)
	for _, item := range got {
		var p, i int
		_, err := fmt.Sscanf(item, "p%d-%d", &p, &i)
		require.NoError(t, err)
		key := fmt.Sprintf("p%d", p)
		assert.Equal(t, next[key], i, "producer %d items out of order", p)
		next[key]++
	}
}

func TestLine_LiveConsumer(t *testing.T) {
	line := NewLine[int](4)
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	got := make(chan int, 100)
	done := make(chan error, 1)
	go func() {
		done <- line.Run(ctx, func(v int) { got <- v })
	}()

	for i := 0; i < 20; i++ {
		require.NoError(t, line.Enqueue(ctx, i))
	}

	for i := 0; i < 20; i++ {
		select {
		case v := <-got:
			assert.Equal(t, i, v)
		case <-time.After(time.Second):
			t.Fatalf("timed out waiting for item %d", i)
		}
	}

	line.Close()
	select {
	case err := <-done:
		assert.NoError(t, err)
	case <-time.After(time.Second):
		t.Fatal("consumer did not stop after Close")
	}
}

func TestLine_EnqueueAfterClose(t *testing.T) {
	line := NewLine[int](4)
	line.Close()

	err := line.Enqueue(context.Background(), 1)
	assert.ErrorIs(t, err, ErrLineClosed)
}

func TestLine_CloseIsIdempotent(t *testing.T) {
	line := NewLine[int](4)
	line.Close()
	line.Close()

	err := line.Run(context.Background(), func(int) {})
	assert.NoError(t, err)
}

func TestLine_CloseDrainsBufferedItems(t *testing.T) {
	line := NewLine[int](8)
	ctx := context.Background()

	for i := 0; i < 5; i++ {
		require.NoError(t, line.Enqueue(ctx, i))
	}
	line.Close()

	var got []int
	err := line.Run(ctx, func(v int) { got = append(got, v) })
	require.NoError(t, err)
	assert.Equal(t, []int{0, 1, 2, 3, 4}, got)
}

func TestLine_EnqueueUnblocksOnContextCancel(t *testing.T) {
	line := NewLine[int](1)
	ctx, cancel := context.WithCancel(context.Background())

	require.NoError(t, line.Enqueue(ctx, 1))

	// Buffer is full; the next enqueue blocks until cancellation.
	errCh := make(chan error, 1)
	go func() { errCh <- line.Enqueue(ctx, 2) }()

	time.Sleep(20 * time.Millisecond)
	cancel()

	select {
	case err := <-errCh:
		assert.ErrorIs(t, err, context.Canceled)
	case <-time.After(time.Second):
		t.Fatal("Enqueue did not unblock on context cancellation")
	}
}

func TestLine_RunReturnsContextError(t *testing.T) {
	line := NewLine[int](4)
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	err := line.Run(ctx, func(int) {})
	assert.ErrorIs(t, err, context.Canceled)
}

func TestLine_DefaultBuffer(t *testing.T) {
	line := NewLine[int](0)
	assert.Equal(t, DefaultBuffer, cap(line.items))

	line = NewLine[int](-5)
	assert.Equal(t, DefaultBuffer, cap(line.items))
}
