// Package cleanup enforces threat record retention.
package cleanup

import (
	"context"
	"errors"
	"log/slog"
	"time"

	"github.com/argus-soc/argus/ent"
	"github.com/argus-soc/argus/ent/threatrecord"
	"github.com/argus-soc/argus/pkg/config"
)

// Service periodically hard-deletes threat records whose expires_at horizon
// has passed. Expiry is stamped at write time, so a TTL change never shortens
// or extends the life of rows already stored.
//
// Deletes run in bounded batches and are idempotent, safe to run from
// multiple replicas.
type Service struct {
	client *ent.Client
	config *config.RetentionConfig

	cancel context.CancelFunc
	done   chan struct{}
	logger *slog.Logger
}

// NewService creates a new cleanup service.
func NewService(client *ent.Client, cfg *config.RetentionConfig) *Service {
	if client == nil {
		panic("cleanup.NewService: client must not be nil")
	}
	if cfg == nil {
		cfg = config.DefaultRetentionConfig()
	}
	return &Service{
		client: client,
		config: cfg,
		logger: slog.With("component", "cleanup"),
	}
}

// Start launches the background sweep loop.
func (s *Service) Start(ctx context.Context) {
	if s.cancel != nil {
		return
	}
	ctx, s.cancel = context.WithCancel(ctx)
	s.done = make(chan struct{})

	go s.run(ctx)

	s.logger.Info("retention sweeper started",
		"record_ttl", s.config.RecordTTL,
		"interval", s.config.CleanupInterval,
		"batch_size", s.batchSize())
}

// Stop signals the sweep loop to exit and waits for it to finish.
func (s *Service) Stop() {
	if s.cancel == nil {
		return
	}
	s.cancel()
	<-s.done
	s.logger.Info("retention sweeper stopped")
}

func (s *Service) run(ctx context.Context) {
	defer close(s.done)

	s.sweep(ctx)

	ticker := time.NewTicker(s.config.CleanupInterval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
			s.sweep(ctx)
		}
	}
}

func (s *Service) sweep(ctx context.Context) {
	count, err := s.deleteExpired(ctx)
	if err != nil {
		if errors.Is(err, context.Canceled) {
			return
		}
		s.logger.Error("retention sweep failed", "error", err, "deleted", count)
		return
	}
	if count > 0 {
		s.logger.Info("retention sweep removed expired threat records", "count", count)
	}
}

// deleteExpired removes rows past their expiry in batches until none remain.
// Postgres DELETE has no LIMIT, so each batch selects IDs first.
func (s *Service) deleteExpired(ctx context.Context) (int, error) {
	batch := s.batchSize()
	total := 0

	for {
		ids, err := s.client.ThreatRecord.Query().
			Where(threatrecord.ExpiresAtLT(time.Now().UTC())).
			Limit(batch).
			IDs(ctx)
		if err != nil {
			return total, err
		}
		if len(ids) == 0 {
			return total, nil
		}

		n, err := s.client.ThreatRecord.Delete().
			Where(threatrecord.IDIn(ids...)).
			Exec(ctx)
		total += n
		if err != nil {
			return total, err
		}
		if n < batch {
			return total, nil
		}
	}
}

func (s *Service) batchSize() int {
	if s.config.SweepBatchSize > 0 {
		return s.config.SweepBatchSize
	}
	return config.DefaultRetentionConfig().SweepBatchSize
}
