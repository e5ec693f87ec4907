package services

import (
	"context"
	"fmt"

	"github.com/argus-soc/argus/pkg/models"
)

// DeadLetterSource exposes the pipeline's in-memory dead letter ring.
// *pipeline.Pipeline implements this.
type DeadLetterSource interface {
	DeadLetters() []models.DeadLetter
}

// JournalReplayer drains the store's on-disk journal back into the database.
// *store.Store implements this.
type JournalReplayer interface {
	Replay(ctx context.Context) (replayed, remaining int, err error)
	JournalDepth() int
}

// DLQService serves both dead letter surfaces: the event DLQ ring holding
// findings that never became a usable record, and the store journal holding
// finished records that could not reach the database.
type DLQService struct {
	ring    DeadLetterSource
	journal JournalReplayer
}

// NewDLQService creates a new DLQService.
func NewDLQService(ring DeadLetterSource, journal JournalReplayer) *DLQService {
	if ring == nil {
		panic("NewDLQService: ring must not be nil")
	}
	if journal == nil {
		panic("NewDLQService: journal must not be nil")
	}
	return &DLQService{ring: ring, journal: journal}
}

// ListDeadLetters returns the ring contents, newest first.
func (s *DLQService) ListDeadLetters(ctx context.Context) *models.DLQListResponse {
	entries := s.ring.DeadLetters()
	return &models.DLQListResponse{
		Entries: entries,
		Total:   len(entries),
	}
}

// ReplayJournal writes journaled threat records back to the database.
// Records that still cannot be written stay journaled for the next attempt.
func (s *DLQService) ReplayJournal(ctx context.Context) (*models.ReplayResponse, error) {
	replayed, remaining, err := s.journal.Replay(ctx)
	if err != nil {
		return nil, fmt.Errorf("journal replay failed: %w", err)
	}
	return &models.ReplayResponse{
		Replayed:  replayed,
		Remaining: remaining,
	}, nil
}

// JournalDepth reports how many records are parked in the store journal.
func (s *DLQService) JournalDepth() int {
	return s.journal.JournalDepth()
}
