package e2e

import (
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/argus-soc/argus/pkg/config"
	"github.com/argus-soc/argus/pkg/models"
)

// TestMalformedFindingsRejectedAndDeadLettered submits findings that fail
// normalization and verifies each is rejected with a permanent status,
// parked in the event DLQ and kept out of the database.
func TestMalformedFindingsRejectedAndDeadLettered(t *testing.T) {
	app := NewTestApp(t)

	missingID := guardDutyFinding("", 5, "Recon:EC2/PortProbe", nil)
	delete(missingID, "id")
	resp := app.SubmitFindingExpecting(http.StatusBadRequest, "aws.guardduty", missingID)
	assert.False(t, resp.Accepted)
	assert.Equal(t, string(models.FailureMalformedSource), resp.Reason)
	assert.Contains(t, resp.Detail, `missing required field "id"`)

	badTime := guardDutyFinding("e2e-bad-time-1", 5, "Recon:EC2/PortProbe", nil)
	badTime["time"] = "yesterday"
	resp = app.SubmitFindingExpecting(http.StatusBadRequest, "aws.guardduty", badTime)
	assert.False(t, resp.Accepted)
	assert.Equal(t, string(models.FailureMalformedSource), resp.Reason)
	assert.Contains(t, resp.Detail, "not RFC 3339")

	resp = app.SubmitFindingExpecting(http.StatusBadRequest, "aws.guardduty", "not an envelope")
	assert.False(t, resp.Accepted)
	assert.Equal(t, string(models.FailureMalformedSource), resp.Reason)
	assert.Contains(t, resp.Detail, "not a JSON envelope")

	// All three are inspectable in the DLQ ring with their raw payloads.
	dlq := app.ListDLQ()
	assert.Equal(t, 3, dlq.Total)
	require.Len(t, dlq.Entries, 3)
	for _, entry := range dlq.Entries {
		assert.Equal(t, models.FailureMalformedSource, entry.Class)
		assert.Equal(t, "aws.guardduty", entry.SourceTag)
		assert.NotEmpty(t, entry.Payload)
		assert.Equal(t, 1, entry.Attempts)
	}

	// Nothing malformed reached the store.
	assert.Equal(t, 0, app.CountThreatRows())
}

// TestBackpressureRejectsWhenBusFull fills a one-worker, two-slot bus by
// holding the worker inside a scoring call, then verifies the next
// submission bounces with 429 and that releasing the hold drains
// everything that was accepted.
func TestBackpressureRejectsWhenBusFull(t *testing.T) {
	app := NewTestApp(t,
		WithWorkerCount(1),
		WithConfig(func(cfg *config.Config) { cfg.Pipeline.BusCapacity = 2 }),
	)

	hold := make(chan struct{})
	started := make(chan struct{}, 1)
	app.Scorer.ScoreFor("e2e-bp-hold", ScoreEntry{Score: 5, WaitCh: hold, OnBlock: started})

	app.SubmitFinding("aws.guardduty", guardDutyFinding("e2e-bp-hold", 3, "Recon:EC2/PortProbe", nil))

	// Only proceed once the worker is parked inside the scorer; from here
	// the bus depth is deterministic.
	<-started

	app.SubmitFinding("aws.guardduty", guardDutyFinding("e2e-bp-fill-1", 3, "Recon:EC2/PortProbe", nil))
	app.SubmitFinding("aws.guardduty", guardDutyFinding("e2e-bp-fill-2", 3, "Recon:EC2/PortProbe", nil))

	resp := app.SubmitFindingExpecting(http.StatusTooManyRequests, "aws.guardduty",
		guardDutyFinding("e2e-bp-overflow", 3, "Recon:EC2/PortProbe", nil))
	assert.False(t, resp.Accepted)
	assert.Equal(t, string(models.FailureBackpressure), resp.Reason)

	close(hold)

	app.WaitForStored("e2e-bp-hold")
	app.WaitForStored("e2e-bp-fill-1")
	app.WaitForStored("e2e-bp-fill-2")
	app.WaitForIdle()

	// The overflow event was rejected, not queued: it never reached the
	// store and nothing about it is in the DLQ (the caller owns retries).
	assert.Equal(t, 3, app.CountThreatRows())
	assert.Equal(t, 0, app.ListDLQ().Total)
}
