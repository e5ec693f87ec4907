package e2e

import (
	"encoding/json"
	"net/http"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/argus-soc/argus/ent/threatrecord"
	"github.com/argus-soc/argus/pkg/api"
	"github.com/argus-soc/argus/pkg/config"
	"github.com/argus-soc/argus/pkg/services"
	testdb "github.com/argus-soc/argus/test/database"
)

// hasStoreDLQWarning polls the warnings endpoint without failing the test,
// so it is safe inside require.Eventually.
func hasStoreDLQWarning(app *TestApp, journalPath string) bool {
	status, body, err := app.tryGet("/api/v1/admin/warnings")
	if err != nil || status != http.StatusOK {
		return false
	}
	var resp api.SystemWarningsResponse
	if json.Unmarshal(body, &resp) != nil {
		return false
	}
	for _, w := range resp.Warnings {
		if w.Category == services.WarningCategoryStoreDLQ && w.Scope == journalPath {
			return true
		}
	}
	return false
}

// A database outage must not lose threat records: once write retries are
// exhausted the record lands in the on-disk journal, a system warning is
// raised, and readiness goes dark. A restarted instance pointed at the same
// journal picks the backlog up and replays it into Postgres on demand.
func TestStoreOutageJournalsThenReplaysAfterRestart(t *testing.T) {
	shared := testdb.NewSharedTestDB(t)
	journalPath := filepath.Join(t.TempDir(), "store-dlq.jsonl")

	clientA := shared.NewClient(t)
	appA := NewTestApp(t,
		WithDBClient(clientA),
		WithConfig(func(cfg *config.Config) { cfg.Store.JournalPath = journalPath }),
	)

	// Kill the first instance's connection pool. Everything up to the store
	// stage keeps working; only the final write can fail.
	require.NoError(t, clientA.DB().Close())

	const eventID = "e2e-journal-1"
	observedAt := time.Now().UTC().Truncate(time.Millisecond)
	finding := guardDutyFinding(eventID, 3, "Discovery:S3/BucketEnum", nil)
	finding["time"] = observedAt.Format(time.RFC3339Nano)
	appA.SubmitFinding("aws.guardduty", finding)

	require.Eventually(t, func() bool {
		return appA.Store.JournalDepth() == 1
	}, 10*time.Second, 50*time.Millisecond, "record never reached the journal")

	// The journal monitor surfaces the backlog as an operator warning.
	require.Eventually(t, func() bool {
		return hasStoreDLQWarning(appA, journalPath)
	}, 10*time.Second, 100*time.Millisecond, "store DLQ warning never raised")

	warnings := appA.GetWarnings()
	var found api.SystemWarningItem
	for _, w := range warnings {
		if w.Category == services.WarningCategoryStoreDLQ {
			found = w
		}
	}
	assert.Equal(t, "1 threat record(s) journaled to the store DLQ awaiting replay", found.Message)
	assert.True(t, strings.Contains(found.Details, "replay"), "details should tell the operator what to do: %q", found.Details)

	// Readiness folds in the database ping.
	status, _, err := appA.tryGet("/readyz")
	require.NoError(t, err)
	assert.Equal(t, http.StatusServiceUnavailable, status)

	// "Restart": a second instance on the same schema and journal path. The
	// backlog is counted at boot, before any replay is triggered.
	appB := NewTestApp(t,
		WithDBClient(shared.NewClient(t)),
		WithConfig(func(cfg *config.Config) { cfg.Store.JournalPath = journalPath }),
	)
	assert.Equal(t, 1, appB.Store.JournalDepth(), "journal backlog should survive a restart")

	replay := appB.ReplayDLQ()
	assert.Equal(t, 1, replay.Replayed)
	assert.Equal(t, 0, replay.Remaining)

	rec := appB.WaitForStored(eventID)
	assert.Equal(t, threatrecord.StatusStoredOnly, rec.Status)
	assert.Equal(t, threatrecord.SeverityMedium, rec.Severity)
	requireTimesClose(t, observedAt, rec.ObservedAt, time.Second)

	// A drained journal leaves no file behind and the warning clears on the
	// monitor's next sweep.
	assert.Equal(t, 0, appB.Store.JournalDepth())
	_, statErr := os.Stat(journalPath)
	assert.True(t, os.IsNotExist(statErr), "drained journal file should be removed")

	require.Eventually(t, func() bool {
		return !hasStoreDLQWarning(appB, journalPath)
	}, 5*time.Second, 100*time.Millisecond, "store DLQ warning never cleared after replay")
}
