package queue

import (
	"context"
	"sync"
	"testing"

	"github.com/rs/zerolog"

	"github.com/arcadia/zoo-api/internal/core/ports"
)

type countingCounter struct {
	mu     sync.Mutex
	counts map[int64]int64
}

func newCountingCounter() *countingCounter {
	return &countingCounter{counts: make(map[int64]int64)}
}

func (c *countingCounter) Increment(_ context.Context, id int64) error {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.counts[id]++
	return nil
}

func (c *countingCounter) Count(_ context.Context, id int64) (int64, error) {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.counts[id], nil
}

func (c *countingCounter) Top(context.Context, int) ([]ports.RankedAnimal, error) { return nil, nil }
func (c *countingCounter) Forget(context.Context, int64) error                  { return nil }

func TestClickDispatcher_DeliversAllClicks(t *testing.T) {
	counter := newCountingCounter()
	d := NewClickDispatcher(3, counter, zerolog.Nop())

	ctx, cancel := context.WithCancel(context.Background())
	d.Start(ctx)

	for i := 0; i < 50; i++ {
		d.Enqueue(1)
		d.Enqueue(2)
	}

	cancel()
	d.Wait()

	if n, _ := counter.Count(context.Background(), 1); n != 50 {
		t.Fatalf("expected 50 clicks for animal 1, got %d", n)
	}
	if n, _ := counter.Count(context.Background(), 2); n != 50 {
		t.Fatalf("expected 50 clicks for animal 2, got %d", n)
	}
}

func TestClickDispatcher_ShardIsStable(t *testing.T) {
	d := NewClickDispatcher(8, newCountingCounter(), zerolog.Nop())

	first := d.shardIndex(42)
	for i := 0; i < 10; i++ {
		if got := d.shardIndex(42); got != first {
			t.Fatalf("shard index changed: %d != %d", got, first)
		}
	}
	if first < 0 || first >= 8 {
		t.Fatalf("shard index out of range: %d", first)
	}
}

func TestClickDispatcher_DropsWhenFull(t *testing.T) {
	counter := newCountingCounter()
	d := NewClickDispatcher(1, counter, zerolog.Nop())

	// Workers not started: the buffer fills and Enqueue must not block.
	for i := 0; i < channelBuffer+10; i++ {
		d.Enqueue(1)
	}

	ctx, cancel := context.WithCancel(context.Background())
	d.Start(ctx)
	cancel()
	d.Wait()

	if n, _ := counter.Count(context.Background(), 1); n != channelBuffer {
		t.Fatalf("expected %d counted clicks, got %d", channelBuffer, n)
	}
}

func TestNewClickDispatcher_DefaultWorkers(t *testing.T) {
	d := NewClickDispatcher(0, newCountingCounter(), zerolog.Nop())
	if len(d.workers) != defaultWorkers {
		t.Fatalf("expected %d workers, got %d", defaultWorkers, len(d.workers))
	}
}
