package queue

import (
	"context"
	"hash/fnv"
	"strconv"
	"sync"

	"github.com/rs/zerolog"

	"github.com/arcadia/zoo-api/internal/api/metrics"
	"github.com/arcadia/zoo-api/internal/core/ports"
)

const (
	defaultWorkers = 4
	channelBuffer  = 256
)

// ClickDispatcher counts animal clicks off the request path. Clicks are
// sharded by animal id so increments for one animal run on a single worker.
type ClickDispatcher struct {
	workers []chan int64
	counter ports.ClickCounter
	log     zerolog.Logger
	wg      sync.WaitGroup
}

// NewClickDispatcher uses defaultWorkers when numWorkers <= 0.
func NewClickDispatcher(numWorkers int, counter ports.ClickCounter, log zerolog.Logger) *ClickDispatcher {
	if numWorkers <= 0 {
		numWorkers = defaultWorkers
	}
	d := &ClickDispatcher{
		workers: make([]chan int64, numWorkers),
		counter: counter,
		log:     log,
	}
	for i := range d.workers {
		d.workers[i] = make(chan int64, channelBuffer)
	}
	return d
}

// Start launches the workers. They drain their queue and exit once ctx is
// cancelled; Wait blocks until they have.
func (d *ClickDispatcher) Start(ctx context.Context) {
	for i, ch := range d.workers {
		d.wg.Add(1)
		go d.runWorker(ctx, i, ch)
	}
}

func (d *ClickDispatcher) Wait() {
	d.wg.Wait()
}

// Enqueue never blocks: when the worker's buffer is full the click is dropped.
func (d *ClickDispatcher) Enqueue(animalID int64) {
	idx := d.shardIndex(animalID)
	select {
	case d.workers[idx] <- animalID:
		metrics.ClickQueueDepth.WithLabelValues(strconv.Itoa(idx)).Inc()
	default:
		metrics.ClicksDroppedTotal.Inc()
		d.log.Warn().Int64("animal_id", animalID).Int("worker_id", idx).Msg("click queue full, dropping click")
	}
}

func (d *ClickDispatcher) shardIndex(animalID int64) int {
	h := fnv.New32a()
	_, _ = h.Write([]byte(strconv.FormatInt(animalID, 10)))
	return int(h.Sum32() % uint32(len(d.workers)))
}

func (d *ClickDispatcher) runWorker(ctx context.Context, id int, ch <-chan int64) {
	defer d.wg.Done()
	label := strconv.Itoa(id)

	for {
		select {
		case <-ctx.Done():
			d.drain(id, label, ch)
			return
		case animalID := <-ch:
			d.process(ctx, id, label, animalID)
		}
	}
}

// drain flushes what is already queued with a fresh context so a shutdown
// does not lose accepted clicks.
func (d *ClickDispatcher) drain(id int, label string, ch <-chan int64) {
	for {
		select {
		case animalID := <-ch:
			d.process(context.Background(), id, label, animalID)
		default:
			return
		}
	}
}

func (d *ClickDispatcher) process(ctx context.Context, id int, label string, animalID int64) {
	metrics.ClickQueueDepth.WithLabelValues(label).Dec()
	if err := d.counter.Increment(ctx, animalID); err != nil {
		d.log.Error().Err(err).
			Int64("animal_id", animalID).
			Int("worker_id", id).
			Msg("click increment failed")
	}
}
