package store

import (
	"context"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/argus-soc/argus/pkg/config"
	"github.com/argus-soc/argus/pkg/services"
	testdb "github.com/argus-soc/argus/test/database"
)

func reachableStoreAt(t *testing.T, journalPath string) *Store {
	client := testdb.NewTestClient(t)
	cfg := testStoreConfig(t)
	cfg.JournalPath = journalPath
	return New(client, cfg, &config.RetentionConfig{
		RecordTTL:       24 * time.Hour,
		CleanupInterval: time.Hour,
	}, nil)
}

func TestJournalMonitor_RaisesWarningWhileJournalHoldsRecords(t *testing.T) {
	path := filepath.Join(t.TempDir(), "store-dlq.jsonl")
	broken := unreachableStore(t, path)

	err := broken.Put(context.Background(), baseThreat("evt-journal-warn", time.Now().UTC()))
	require.ErrorIs(t, err, ErrJournaled)

	warnings := services.NewSystemWarningsService()
	monitor := NewJournalMonitor(broken, warnings, time.Minute)
	monitor.check()

	got := warnings.GetWarnings()
	require.Len(t, got, 1)
	assert.Equal(t, services.WarningCategoryStoreDLQ, got[0].Category)
	assert.Equal(t, path, got[0].Scope)
	assert.Contains(t, got[0].Message, "1 threat record")
}

func TestJournalMonitor_ClearsWarningOnceReplayDrains(t *testing.T) {
	ctx := context.Background()
	path := filepath.Join(t.TempDir(), "store-dlq.jsonl")

	broken := unreachableStore(t, path)
	err := broken.Put(ctx, baseThreat("evt-journal-clear", time.Now().UTC()))
	require.ErrorIs(t, err, ErrJournaled)

	// A fresh store over the same journal picks up the leftover entry.
	reachable := reachableStoreAt(t, path)
	require.Equal(t, 1, reachable.JournalDepth())

	warnings := services.NewSystemWarningsService()
	monitor := NewJournalMonitor(reachable, warnings, time.Minute)

	monitor.check()
	require.Len(t, warnings.GetWarnings(), 1)

	replayed, remaining, err := reachable.Replay(ctx)
	require.NoError(t, err)
	assert.Equal(t, 1, replayed)
	assert.Zero(t, remaining)

	monitor.check()
	assert.Empty(t, warnings.GetWarnings())
}

func TestJournalMonitor_Lifecycle(t *testing.T) {
	path := filepath.Join(t.TempDir(), "store-dlq.jsonl")
	broken := unreachableStore(t, path)

	err := broken.Put(context.Background(), baseThreat("evt-journal-loop", time.Now().UTC()))
	require.ErrorIs(t, err, ErrJournaled)

	warnings := services.NewSystemWarningsService()
	monitor := NewJournalMonitor(broken, warnings, 10*time.Millisecond)

	monitor.Start(context.Background())
	monitor.Start(context.Background()) // second Start is a no-op

	require.Eventually(t, func() bool {
		return len(warnings.GetWarnings()) == 1
	}, 2*time.Second, 10*time.Millisecond)

	monitor.Stop()
	monitor.Stop() // Stop is idempotent
}

func TestJournalMonitor_IdleWithoutJournal(t *testing.T) {
	client := testdb.NewTestClient(t)
	cfg := testStoreConfig(t)
	cfg.JournalPath = ""
	s := New(client, cfg, nil, nil)

	monitor := NewJournalMonitor(s, services.NewSystemWarningsService(), time.Minute)
	monitor.Start(context.Background())
	monitor.Stop() // never started a loop; must not block
}
