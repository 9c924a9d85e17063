package queue

import (
	"context"
	"hash/fnv"

	"github.com/rs/zerolog"

	"github.com/mikelm2020/estatehub/internal/api/metrics"
	"github.com/mikelm2020/estatehub/internal/core/ports"
)

const (
	defaultWorkers = 8
	channelBuffer  = 256
)

// Dispatcher routes interaction events to a fixed set of workers using
// consistent hashing on the property id, guaranteeing per-listing event
// ordering.
type Dispatcher struct {
	workers []chan ports.InteractionInput
	service ports.InteractionService
	log     zerolog.Logger
}

// NewDispatcher creates a Dispatcher with numWorkers sharded workers.
// If numWorkers <= 0, defaultWorkers is used.
func NewDispatcher(numWorkers int, service ports.InteractionService, log zerolog.Logger) *Dispatcher {
	if numWorkers <= 0 {
		numWorkers = defaultWorkers
	}
	d := &Dispatcher{
		workers: make([]chan ports.InteractionInput, numWorkers),
		service: service,
		log:     log,
	}
	for i := range d.workers {
		d.workers[i] = make(chan ports.InteractionInput, channelBuffer)
	}
	return d
}

// Start launches all worker goroutines. Workers stop when ctx is cancelled.
func (d *Dispatcher) Start(ctx context.Context) {
	for i, ch := range d.workers {
		go d.runWorker(ctx, i, ch)
	}
}

// Enqueue sends an event to the worker responsible for its property.
// The call is non-blocking up to channelBuffer capacity.
func (d *Dispatcher) Enqueue(event ports.InteractionInput) {
	d.workers[d.shardIndex(event.PropertyID)] <- event
}

// EnqueueBatch enqueues multiple events preserving per-listing ordering.
func (d *Dispatcher) EnqueueBatch(events []ports.InteractionInput) {
	for _, e := range events {
		d.Enqueue(e)
	}
}

// shardIndex maps a property id deterministically to a worker index.
func (d *Dispatcher) shardIndex(propertyID string) int {
	h := fnv.New32a()
	_, _ = h.Write([]byte(propertyID))
	return int(h.Sum32()) % len(d.workers)
}

func (d *Dispatcher) runWorker(ctx context.Context, id int, ch <-chan ports.InteractionInput) {
	for {
		select {
		case <-ctx.Done():
			return
		case event, ok := <-ch:
			if !ok {
				return
			}
			if err := d.service.Process(ctx, event); err != nil {
				metrics.InteractionsErrorsTotal.WithLabelValues("process_failed").Inc()
				d.log.Error().Err(err).
					Str("property_id", event.PropertyID).
					Int("worker_id", id).
					Msg("interaction processing failed")
			}
		}
	}
}
