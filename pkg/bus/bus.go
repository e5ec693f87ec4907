// Package bus implements the bounded buffer between normalization and
// scoring. The bus is partitioned: every event id hashes to exactly one
// partition, and each partition is consumed by a single worker, which gives
// per-event-id FIFO ordering without any cross-partition coordination.
package bus

import (
	"context"
	"errors"
	"hash/fnv"
	"log/slog"
	"sync/atomic"
	"time"

	"github.com/argus-soc/argus/pkg/config"
	"github.com/argus-soc/argus/pkg/metrics"
	"github.com/argus-soc/argus/pkg/models"
)

// Message is one buffered event plus its admission timestamp, which the
// retention check reads at dequeue time.
type Message struct {
	Event      *models.NormalizedEvent
	EnqueuedAt time.Time
}

// Bus is the bounded, partitioned event buffer. Capacity is enforced
// globally across partitions; ordering is guaranteed only within one.
type Bus struct {
	partitions []chan Message
	capacity   int64
	retention  time.Duration
	depth      atomic.Int64
	draining   atomic.Bool
	metrics    *metrics.PipelineMetrics
}

// NewBus sizes the bus from the pipeline config: one partition per worker,
// global capacity cfg.BusCapacity. metrics may be nil in tests.
func NewBus(cfg *config.PipelineConfig, m *metrics.PipelineMetrics) *Bus {
	if cfg == nil {
		panic("NewBus: cfg must not be nil")
	}
	partitions := make([]chan Message, cfg.MaxConcurrentEvents)
	for i := range partitions {
		// Each partition can absorb the full global capacity so the
		// atomic depth counter is the only admission gate.
		partitions[i] = make(chan Message, cfg.BusCapacity)
	}
	return &Bus{
		partitions: partitions,
		capacity:   int64(cfg.BusCapacity),
		retention:  cfg.BusRetention,
		metrics:    m,
	}
}

// Partitions returns the partition count. Workers consume one partition each.
func (b *Bus) Partitions() int {
	return len(b.partitions)
}

// Depth returns the number of buffered messages across all partitions.
func (b *Bus) Depth() int64 {
	return b.depth.Load()
}

// PartitionFor maps an event id to its partition index (FNV-1a).
func (b *Bus) PartitionFor(eventID string) int {
	h := fnv.New32a()
	h.Write([]byte(eventID))
	return int(h.Sum32() % uint32(len(b.partitions)))
}

// Enqueue admits one event. It fails fast with a Backpressure classification
// when the bus is at capacity and with Draining once shutdown has begun;
// callers translate both into retryable rejections.
func (b *Bus) Enqueue(event *models.NormalizedEvent) error {
	if b.draining.Load() {
		return models.Classify(models.FailureDraining, errors.New("bus is draining, new events rejected"))
	}

	if b.depth.Load() >= b.capacity {
		return models.Classify(models.FailureBackpressure, errors.New("bus at capacity"))
	}
	b.depth.Add(1)

	msg := Message{Event: event, EnqueuedAt: time.Now()}
	select {
	case b.partitions[b.PartitionFor(event.EventID)] <- msg:
		b.metrics.SetBusDepth(int(b.depth.Load()))
		return nil
	default:
		// Unreachable while partition buffers match global capacity,
		// kept so a future resize cannot silently block ingress.
		b.depth.Add(-1)
		return models.Classify(models.FailureBackpressure, errors.New("partition at capacity"))
	}
}

// Next blocks until the partition yields a message younger than the
// retention window, the context is done, or the partition is closed.
// Messages older than retention are dropped with a counter increment and
// never reach a worker.
func (b *Bus) Next(ctx context.Context, partition int) (Message, bool) {
	for {
		select {
		case <-ctx.Done():
			return Message{}, false
		case msg, ok := <-b.partitions[partition]:
			if !ok {
				return Message{}, false
			}
			b.depth.Add(-1)
			b.metrics.SetBusDepth(int(b.depth.Load()))

			if age := time.Since(msg.EnqueuedAt); age > b.retention {
				slog.Warn("Dropping event that outlived bus retention",
					"event_id", msg.Event.EventID,
					"age", age.String(),
					"retention", b.retention.String())
				b.metrics.RecordBusAgedOut()
				continue
			}
			return msg, true
		}
	}
}

// BeginDrain stops admission. Buffered messages remain consumable so
// in-flight work can finish.
func (b *Bus) BeginDrain() {
	b.draining.Store(true)
}

// Draining reports whether admission has been stopped.
func (b *Bus) Draining() bool {
	return b.draining.Load()
}

// Close closes every partition after draining has begun. Workers blocked in
// Next unblock with ok=false. Enqueue after Close would panic, so BeginDrain
// must be called first and ingress must be stopped.
func (b *Bus) Close() {
	b.draining.Store(true)
	for _, p := range b.partitions {
		close(p)
	}
}
