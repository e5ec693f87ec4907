package store

import (
	"context"
	"errors"
	"log/slog"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/argus-soc/argus/pkg/models"
)

func journalThreat(eventID string) *models.Threat {
	return &models.Threat{
		NormalizedEvent: models.NormalizedEvent{
			EventID:    eventID,
			Source:     models.SourceGuardDuty,
			AccountID:  "123456789012",
			Region:     "us-east-1",
			Kind:       "UnauthorizedAccess:IAMUser",
			Severity:   models.SeverityHigh,
			ObservedAt: time.Date(2026, 3, 1, 12, 0, 0, 0, time.UTC),
			ReceivedAt: time.Date(2026, 3, 1, 12, 0, 5, 0, time.UTC),
		},
		Enrichment: models.Enrichment{Status: models.StatusStoredOnly},
	}
}

func TestJournal(t *testing.T) {
	logger := slog.Default()

	t.Run("append increments depth and persists across reopen", func(t *testing.T) {
		path := filepath.Join(t.TempDir(), "store-dlq.jsonl")

		j := newJournal(path, logger)
		assert.Equal(t, 0, j.depth())

		require.NoError(t, j.append(journalThreat("evt-1")))
		require.NoError(t, j.append(journalThreat("evt-2")))
		assert.Equal(t, 2, j.depth())

		// A fresh journal over the same file sees the surviving entries.
		reopened := newJournal(path, logger)
		assert.Equal(t, 2, reopened.depth())
	})

	t.Run("creates missing parent directory", func(t *testing.T) {
		path := filepath.Join(t.TempDir(), "data", "nested", "store-dlq.jsonl")

		j := newJournal(path, logger)
		require.NoError(t, j.append(journalThreat("evt-1")))

		_, err := os.Stat(path)
		require.NoError(t, err)
	})

	t.Run("replay removes written entries and keeps failures", func(t *testing.T) {
		path := filepath.Join(t.TempDir(), "store-dlq.jsonl")
		j := newJournal(path, logger)
		require.NoError(t, j.append(journalThreat("evt-ok")))
		require.NoError(t, j.append(journalThreat("evt-bad")))
		require.NoError(t, j.append(journalThreat("evt-ok-2")))

		put := func(_ context.Context, threat *models.Threat) error {
			if threat.EventID == "evt-bad" {
				return errors.New("still down")
			}
			return nil
		}

		replayed, remaining, err := j.replay(context.Background(), put)
		require.NoError(t, err)
		assert.Equal(t, 2, replayed)
		assert.Equal(t, 1, remaining)
		assert.Equal(t, 1, j.depth())

		// Only the failing entry is left on disk.
		entries, err := j.load()
		require.NoError(t, err)
		require.Len(t, entries, 1)
		assert.Equal(t, "evt-bad", entries[0].Threat.EventID)
	})

	t.Run("replay drains file when everything succeeds", func(t *testing.T) {
		path := filepath.Join(t.TempDir(), "store-dlq.jsonl")
		j := newJournal(path, logger)
		require.NoError(t, j.append(journalThreat("evt-1")))

		replayed, remaining, err := j.replay(context.Background(),
			func(context.Context, *models.Threat) error { return nil })
		require.NoError(t, err)
		assert.Equal(t, 1, replayed)
		assert.Equal(t, 0, remaining)

		_, statErr := os.Stat(path)
		assert.True(t, errors.Is(statErr, os.ErrNotExist), "drained journal file should be removed")
	})

	t.Run("canceled context keeps untried entries journaled", func(t *testing.T) {
		path := filepath.Join(t.TempDir(), "store-dlq.jsonl")
		j := newJournal(path, logger)
		require.NoError(t, j.append(journalThreat("evt-1")))
		require.NoError(t, j.append(journalThreat("evt-2")))

		ctx, cancel := context.WithCancel(context.Background())
		cancel()

		replayed, remaining, err := j.replay(ctx,
			func(context.Context, *models.Threat) error { return nil })
		require.NoError(t, err)
		assert.Equal(t, 0, replayed)
		assert.Equal(t, 2, remaining)
	})

	t.Run("corrupt line is skipped, valid lines survive", func(t *testing.T) {
		path := filepath.Join(t.TempDir(), "store-dlq.jsonl")
		j := newJournal(path, logger)
		require.NoError(t, j.append(journalThreat("evt-1")))

		// Simulate a torn final write.
		f, err := os.OpenFile(path, os.O_APPEND|os.O_WRONLY, 0o644)
		require.NoError(t, err)
		_, err = f.WriteString(`{"journaled_at":"2026-03-01T12:`)
		require.NoError(t, err)
		require.NoError(t, f.Close())

		reopened := newJournal(path, logger)
		assert.Equal(t, 1, reopened.depth())

		entries, err := reopened.load()
		require.NoError(t, err)
		require.Len(t, entries, 1)
		assert.Equal(t, "evt-1", entries[0].Threat.EventID)
	})
}
