package bus

import (
	"context"
	"fmt"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/argus-soc/argus/pkg/config"
	"github.com/argus-soc/argus/pkg/models"
)

func testConfig(capacity, workers int, retention time.Duration) *config.PipelineConfig {
	cfg := config.DefaultPipelineConfig()
	cfg.BusCapacity = capacity
	cfg.MaxConcurrentEvents = workers
	cfg.BusRetention = retention
	return cfg
}

func event(id string) *models.NormalizedEvent {
	return &models.NormalizedEvent{
		EventID:    id,
		Source:     models.SourceGuardDuty,
		AccountID:  "123456789012",
		Region:     "eu-central-1",
		Kind:       "GuardDuty Finding",
		Severity:   models.SeverityHigh,
		ObservedAt: time.Now().UTC(),
	}
}

func TestEnqueueAndNext(t *testing.T) {
	b := NewBus(testConfig(10, 4, time.Hour), nil)

	require.NoError(t, b.Enqueue(event("evt-1")))
	assert.Equal(t, int64(1), b.Depth())

	ctx, cancel := context.WithTimeout(context.Background(), time.Second)
	defer cancel()

	msg, ok := b.Next(ctx, b.PartitionFor("evt-1"))
	require.True(t, ok)
	assert.Equal(t, "evt-1", msg.Event.EventID)
	assert.Equal(t, int64(0), b.Depth())
}

func TestSameEventIDKeepsOrder(t *testing.T) {
	b := NewBus(testConfig(100, 8, time.Hour), nil)

	// Several messages for the same id land on one partition in order.
	for i := 0; i < 5; i++ {
		e := event("evt-ordered")
		e.Kind = fmt.Sprintf("kind-%d", i)
		require.NoError(t, b.Enqueue(e))
	}

	ctx, cancel := context.WithTimeout(context.Background(), time.Second)
	defer cancel()

	partition := b.PartitionFor("evt-ordered")
	for i := 0; i < 5; i++ {
		msg, ok := b.Next(ctx, partition)
		require.True(t, ok)
		assert.Equal(t, fmt.Sprintf("kind-%d", i), msg.Event.Kind)
	}
}

func TestPartitionForIsStable(t *testing.T) {
	b := NewBus(testConfig(10, 16, time.Hour), nil)

	first := b.PartitionFor("evt-abc")
	for i := 0; i < 10; i++ {
		assert.Equal(t, first, b.PartitionFor("evt-abc"))
	}
	assert.GreaterOrEqual(t, first, 0)
	assert.Less(t, first, 16)
}

func TestEnqueueBackpressureWhenFull(t *testing.T) {
	b := NewBus(testConfig(2, 2, time.Hour), nil)

	require.NoError(t, b.Enqueue(event("evt-1")))
	require.NoError(t, b.Enqueue(event("evt-2")))

	err := b.Enqueue(event("evt-3"))
	require.Error(t, err)
	assert.Equal(t, models.FailureBackpressure, models.ClassOf(err))
	assert.Equal(t, int64(2), b.Depth())
}

func TestEnqueueRejectedWhileDraining(t *testing.T) {
	b := NewBus(testConfig(10, 2, time.Hour), nil)
	require.NoError(t, b.Enqueue(event("evt-1")))

	b.BeginDrain()
	assert.True(t, b.Draining())

	err := b.Enqueue(event("evt-2"))
	require.Error(t, err)
	assert.Equal(t, models.FailureDraining, models.ClassOf(err))

	// Already buffered messages stay consumable.
	ctx, cancel := context.WithTimeout(context.Background(), time.Second)
	defer cancel()
	msg, ok := b.Next(ctx, b.PartitionFor("evt-1"))
	require.True(t, ok)
	assert.Equal(t, "evt-1", msg.Event.EventID)
}

func TestNextDropsAgedOutMessages(t *testing.T) {
	b := NewBus(testConfig(10, 2, 30*time.Millisecond), nil)

	require.NoError(t, b.Enqueue(event("evt-stale")))
	time.Sleep(60 * time.Millisecond)
	require.NoError(t, b.Enqueue(event("evt-stale"))) // same id, same partition, fresh

	ctx, cancel := context.WithTimeout(context.Background(), time.Second)
	defer cancel()

	msg, ok := b.Next(ctx, b.PartitionFor("evt-stale"))
	require.True(t, ok, "fresh message should survive the retention check")
	assert.Equal(t, "evt-stale", msg.Event.EventID)
	assert.WithinDuration(t, time.Now(), msg.EnqueuedAt, 50*time.Millisecond)
	assert.Equal(t, int64(0), b.Depth(), "both messages left the bus")
}

func TestNextReturnsOnContextCancel(t *testing.T) {
	b := NewBus(testConfig(10, 2, time.Hour), nil)

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, ok := b.Next(ctx, 0)
	assert.False(t, ok)
}

func TestNextReturnsOnClose(t *testing.T) {
	b := NewBus(testConfig(10, 2, time.Hour), nil)

	done := make(chan bool)
	go func() {
		_, ok := b.Next(context.Background(), 0)
		done <- ok
	}()

	b.Close()

	select {
	case ok := <-done:
		assert.False(t, ok)
	case <-time.After(time.Second):
		t.Fatal("Next did not unblock on Close")
	}
}
