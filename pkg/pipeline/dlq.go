package pipeline

import (
	"sync"

	"github.com/google/uuid"

	"github.com/argus-soc/argus/pkg/models"
)

// deadLetterRing is the in-memory event DLQ: a fixed-capacity ring holding
// the most recent dead letters for operator inspection. Entries here are
// diagnostic; the durable copy of a dead-lettered event is its DEAD_LETTERED
// threat record, and store-write failures go to the disk journal instead.
type deadLetterRing struct {
	mu      sync.RWMutex
	entries []*models.DeadLetter
	start   int
	count   int
}

func newDeadLetterRing(capacity int) *deadLetterRing {
	if capacity <= 0 {
		capacity = 1
	}
	return &deadLetterRing{entries: make([]*models.DeadLetter, capacity)}
}

// add records one dead letter, evicting the oldest entry when the ring is
// full. Entries without an id get one stamped here.
func (r *deadLetterRing) add(entry *models.DeadLetter) {
	r.mu.Lock()
	defer r.mu.Unlock()

	if entry.ID == "" {
		entry.ID = uuid.NewString()
	}

	r.entries[(r.start+r.count)%len(r.entries)] = entry
	if r.count == len(r.entries) {
		r.start = (r.start + 1) % len(r.entries)
	} else {
		r.count++
	}
}

// snapshot returns the current entries newest first.
func (r *deadLetterRing) snapshot() []models.DeadLetter {
	r.mu.RLock()
	defer r.mu.RUnlock()

	out := make([]models.DeadLetter, 0, r.count)
	for i := r.count - 1; i >= 0; i-- {
		out = append(out, *r.entries[(r.start+i)%len(r.entries)])
	}
	return out
}

func (r *deadLetterRing) depth() int {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return r.count
}
