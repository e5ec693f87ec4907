package store

import (
	"context"
	stdsql "database/sql"
	"path/filepath"
	"testing"
	"time"

	"entgo.io/ent/dialect"
	entsql "entgo.io/ent/dialect/sql"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/argus-soc/argus/ent"
	"github.com/argus-soc/argus/ent/threatrecord"
	"github.com/argus-soc/argus/pkg/config"
	"github.com/argus-soc/argus/pkg/database"
	"github.com/argus-soc/argus/pkg/models"
	testdb "github.com/argus-soc/argus/test/database"
)

func testStoreConfig(t *testing.T) *config.StoreConfig {
	return &config.StoreConfig{
		WriteTimeout:     5 * time.Second,
		RetryInitial:     time.Millisecond,
		RetryFactor:      2.0,
		RetryMaxAttempts: 4,
		JournalPath:      filepath.Join(t.TempDir(), "store-dlq.jsonl"),
	}
}

func newTestStore(t *testing.T) (*Store, *database.Client) {
	client := testdb.NewTestClient(t)
	s := New(client, testStoreConfig(t), &config.RetentionConfig{
		RecordTTL:       24 * time.Hour,
		CleanupInterval: time.Hour,
	}, nil)
	return s, client
}

// unreachableStore returns a Store whose database connection targets a
// closed port, so every write attempt fails immediately.
func unreachableStore(t *testing.T, journalPath string) *Store {
	db, err := stdsql.Open("pgx",
		"host=127.0.0.1 port=1 user=argus password=argus dbname=argus sslmode=disable connect_timeout=1")
	require.NoError(t, err)
	t.Cleanup(func() { _ = db.Close() })

	drv := entsql.OpenDB(dialect.Postgres, db)
	client := database.NewClientFromEnt(ent.NewClient(ent.Driver(drv)), db)

	cfg := testStoreConfig(t)
	cfg.JournalPath = journalPath
	return New(client, cfg, nil, nil)
}

func baseThreat(eventID string, observed time.Time) *models.Threat {
	raw := 7.5
	return &models.Threat{
		NormalizedEvent: models.NormalizedEvent{
			EventID:      eventID,
			Source:       models.SourceGuardDuty,
			AccountID:    "123456789012",
			Region:       "us-east-1",
			Kind:         "UnauthorizedAccess:IAMUser",
			Severity:     models.SeverityHigh,
			RawSeverity:  &raw,
			ObservedAt:   observed,
			ReceivedAt:   observed.Add(2 * time.Second),
			ResourceType: "AccessKey",
			ResourceID:   "AKIA000EXAMPLE",
			Details:      map[string]any{"errorCode": "AccessDenied"},
		},
	}
}

func fetchRecord(t *testing.T, client *database.Client, eventID string) *ent.ThreatRecord {
	t.Helper()
	rec, err := client.ThreatRecord.Query().
		Where(threatrecord.EventID(eventID)).
		Only(context.Background())
	require.NoError(t, err)
	return rec
}

func TestStorePut_InsertCarriesEnrichment(t *testing.T) {
	s, client := newTestStore(t)
	ctx := context.Background()
	observed := time.Date(2026, 3, 1, 12, 0, 0, 0, time.UTC)

	notified := observed.Add(10 * time.Second)
	threat := baseThreat("evt-full", observed)
	threat.ML = &models.MLVerdict{
		ThreatScore:    82.5,
		Confidence:     0.93,
		ModelVersion:   "rf-2026-02",
		FeatureVersion: "cloudtrail-rf-v1",
		ScoredAt:       observed.Add(3 * time.Second),
	}
	threat.Triage = &models.TriageResult{
		Priority:            88.1,
		Band:                models.SeverityCritical,
		RecommendedActions:  []string{"isolate", "rotate credentials"},
		RequiresHumanReview: true,
		TriagedAt:           observed.Add(3 * time.Second),
	}
	threat.Analysis = &models.AnalysisReport{
		RiskScore:          9,
		AttackVector:       "credential-compromise",
		RecommendedActions: []string{"revoke sessions"},
		BusinessImpact:     "production account takeover",
		Confidence:         0.8,
		Summary:            "Stolen key used from a new ASN",
		AnalyzedAt:         observed.Add(8 * time.Second),
	}
	threat.Remediation = &models.RemediationOutcome{
		Action:      config.ActionDisableCredential,
		Status:      models.RemediationSucceeded,
		Attempts:    1,
		CompletedAt: observed.Add(9 * time.Second),
	}
	threat.NotifiedAt = &notified
	threat.Status = models.StatusRemediated

	require.NoError(t, s.Put(ctx, threat))

	rec := fetchRecord(t, client, "evt-full")
	assert.Equal(t, threatrecord.SeverityHigh, rec.Severity)
	require.NotNil(t, rec.MlThreatScore)
	assert.InDelta(t, 82.5, *rec.MlThreatScore, 0.001)
	require.NotNil(t, rec.TriagePriority)
	assert.InDelta(t, 88.1, *rec.TriagePriority, 0.001)
	assert.Equal(t, threatrecord.TriageBandCritical, rec.TriageBand)
	assert.Equal(t, []string{"isolate", "rotate credentials"}, rec.RecommendedActions)
	assert.True(t, rec.RequiresHumanReview)
	require.NotNil(t, rec.AnalysisRiskScore)
	assert.InDelta(t, 9.0, *rec.AnalysisRiskScore, 0.001)
	require.NotNil(t, rec.AnalysisSummary)
	assert.Equal(t, "Stolen key used from a new ASN", *rec.AnalysisSummary)
	require.NotNil(t, rec.RemediationAction)
	assert.Equal(t, string(config.ActionDisableCredential), *rec.RemediationAction)
	assert.Equal(t, threatrecord.RemediationStatusSucceeded, rec.RemediationStatus)
	assert.Equal(t, threatrecord.StatusRemediated, rec.Status)
	require.NotNil(t, rec.NotifiedAt)
	assert.WithinDuration(t, notified, *rec.NotifiedAt, time.Millisecond)
	assert.WithinDuration(t, observed, rec.ObservedAt, time.Millisecond)
	assert.True(t, rec.ExpiresAt.After(time.Now().UTC().Add(23*time.Hour)),
		"expires_at should be stamped roughly one RecordTTL out")
}

func TestStorePut_MergePreservesAbsentEnvelopes(t *testing.T) {
	s, client := newTestStore(t)
	ctx := context.Background()
	observed := time.Date(2026, 3, 1, 12, 0, 0, 0, time.UTC)

	// First delivery: scored but degraded.
	first := baseThreat("evt-merge", observed)
	first.ML = &models.MLVerdict{
		FeatureVersion: "cloudtrail-rf-v1",
		ScoredAt:       observed.Add(time.Second),
		Error:          "exhausted",
	}
	first.Status = models.StatusStoredOnly
	require.NoError(t, s.Put(ctx, first))

	// Redelivery: healthy score plus triage, notified.
	second := baseThreat("evt-merge", observed)
	second.ML = &models.MLVerdict{
		ThreatScore:    74,
		Confidence:     0.9,
		ModelVersion:   "rf-2026-02",
		FeatureVersion: "cloudtrail-rf-v1",
		ScoredAt:       observed.Add(4 * time.Second),
	}
	second.Triage = &models.TriageResult{
		Priority:           76.4,
		Band:               models.SeverityHigh,
		RecommendedActions: []string{"investigate"},
		TriagedAt:          observed.Add(4 * time.Second),
	}
	second.Status = models.StatusNotified
	require.NoError(t, s.Put(ctx, second))

	rec := fetchRecord(t, client, "evt-merge")
	require.NotNil(t, rec.MlThreatScore)
	assert.InDelta(t, 74, *rec.MlThreatScore, 0.001)
	assert.Nil(t, rec.MlError, "healthy rescore must clear the degraded marker")
	require.NotNil(t, rec.TriagePriority)
	assert.InDelta(t, 76.4, *rec.TriagePriority, 0.001)
	assert.Equal(t, threatrecord.StatusNotified, rec.Status)

	// Third delivery carries no ML envelope at all: stored scores survive.
	third := baseThreat("evt-merge", observed)
	third.Status = models.StatusStoredOnly
	require.NoError(t, s.Put(ctx, third))

	rec = fetchRecord(t, client, "evt-merge")
	require.NotNil(t, rec.MlThreatScore)
	assert.InDelta(t, 74, *rec.MlThreatScore, 0.001)
	require.NotNil(t, rec.TriagePriority)
	assert.InDelta(t, 76.4, *rec.TriagePriority, 0.001)
}

func TestStorePut_StatusNeverRegresses(t *testing.T) {
	s, client := newTestStore(t)
	ctx := context.Background()
	observed := time.Date(2026, 3, 1, 12, 0, 0, 0, time.UTC)

	put := func(status models.ThreatStatus) {
		t.Helper()
		threat := baseThreat("evt-status", observed)
		threat.Status = status
		require.NoError(t, s.Put(ctx, threat))
	}

	put(models.StatusNotified)
	put(models.StatusStoredOnly)
	assert.Equal(t, threatrecord.StatusNotified, fetchRecord(t, client, "evt-status").Status)

	put(models.StatusRemediated)
	put(models.StatusNotified)
	assert.Equal(t, threatrecord.StatusRemediated, fetchRecord(t, client, "evt-status").Status)
}

func TestStorePut_DeadLetterOverwritesAndSheds(t *testing.T) {
	s, client := newTestStore(t)
	ctx := context.Background()
	observed := time.Date(2026, 3, 1, 12, 0, 0, 0, time.UTC)

	put := func(status models.ThreatStatus) {
		t.Helper()
		threat := baseThreat("evt-dl", observed)
		threat.Status = status
		require.NoError(t, s.Put(ctx, threat))
	}

	put(models.StatusNotified)
	put(models.StatusDeadLettered)
	assert.Equal(t, threatrecord.StatusDeadLettered, fetchRecord(t, client, "evt-dl").Status)

	// A replayed event that completes sheds the dead-letter disposition.
	put(models.StatusStoredOnly)
	assert.Equal(t, threatrecord.StatusStoredOnly, fetchRecord(t, client, "evt-dl").Status)
}

func TestStorePut_OrderIndependence(t *testing.T) {
	s, client := newTestStore(t)
	ctx := context.Background()
	observed := time.Date(2026, 3, 1, 12, 0, 0, 0, time.UTC)

	writes := func(eventID string) []*models.Threat {
		scored := baseThreat(eventID, observed)
		scored.ML = &models.MLVerdict{ThreatScore: 60, Confidence: 0.8, ModelVersion: "rf-2026-02", ScoredAt: observed}
		scored.Status = models.StatusStoredOnly

		triaged := baseThreat(eventID, observed)
		triaged.Triage = &models.TriageResult{Priority: 71.5, Band: models.SeverityHigh, TriagedAt: observed}
		triaged.Status = models.StatusNotified

		remediated := baseThreat(eventID, observed)
		remediated.Remediation = &models.RemediationOutcome{
			Action: config.ActionDisableCredential, Status: models.RemediationSucceeded, Attempts: 1,
		}
		remediated.Status = models.StatusRemediated

		return []*models.Threat{scored, triaged, remediated}
	}

	forward := writes("evt-fwd")
	for _, w := range forward {
		require.NoError(t, s.Put(ctx, w))
	}

	reversed := writes("evt-rev")
	for i := len(reversed) - 1; i >= 0; i-- {
		require.NoError(t, s.Put(ctx, reversed[i]))
	}

	a := fetchRecord(t, client, "evt-fwd")
	b := fetchRecord(t, client, "evt-rev")

	assert.Equal(t, a.Status, b.Status)
	assert.Equal(t, threatrecord.StatusRemediated, a.Status)
	require.NotNil(t, a.MlThreatScore)
	require.NotNil(t, b.MlThreatScore)
	assert.Equal(t, *a.MlThreatScore, *b.MlThreatScore)
	require.NotNil(t, a.TriagePriority)
	require.NotNil(t, b.TriagePriority)
	assert.Equal(t, *a.TriagePriority, *b.TriagePriority)
	assert.Equal(t, a.RemediationStatus, b.RemediationStatus)
}

func TestStorePut_RejectsMissingIdentity(t *testing.T) {
	s := unreachableStore(t, filepath.Join(t.TempDir(), "store-dlq.jsonl"))

	threat := baseThreat("", time.Time{})
	err := s.Put(context.Background(), threat)
	require.Error(t, err)
	assert.Equal(t, models.FailureMalformedSource, models.ClassOf(err))
	assert.Equal(t, 0, s.JournalDepth(), "identity errors must not be journaled")
}

func TestStorePut_JournalsWhenDatabaseUnreachable(t *testing.T) {
	journalPath := filepath.Join(t.TempDir(), "store-dlq.jsonl")
	s := unreachableStore(t, journalPath)

	threat := baseThreat("evt-down", time.Date(2026, 3, 1, 12, 0, 0, 0, time.UTC))
	err := s.Put(context.Background(), threat)
	require.Error(t, err)
	assert.ErrorIs(t, err, ErrJournaled)
	assert.Equal(t, 1, s.JournalDepth())

	// A restarted store over the same journal sees the entry.
	restarted := unreachableStore(t, journalPath)
	assert.Equal(t, 1, restarted.JournalDepth())
}

func TestStoreReplay_WritesJournaledRecords(t *testing.T) {
	journalPath := filepath.Join(t.TempDir(), "store-dlq.jsonl")

	// Journal one record against a dead database.
	down := unreachableStore(t, journalPath)
	threat := baseThreat("evt-replay", time.Date(2026, 3, 1, 12, 0, 0, 0, time.UTC))
	threat.Status = models.StatusStoredOnly
	err := down.Put(context.Background(), threat)
	require.ErrorIs(t, err, ErrJournaled)

	// Recovered process: same journal, healthy database.
	client := testdb.NewTestClient(t)
	cfg := testStoreConfig(t)
	cfg.JournalPath = journalPath
	recovered := New(client, cfg, nil, nil)
	require.Equal(t, 1, recovered.JournalDepth())

	replayed, remaining, err := recovered.Replay(context.Background())
	require.NoError(t, err)
	assert.Equal(t, 1, replayed)
	assert.Equal(t, 0, remaining)
	assert.Equal(t, 0, recovered.JournalDepth())

	rec := fetchRecord(t, client, "evt-replay")
	assert.Equal(t, threatrecord.StatusStoredOnly, rec.Status)
}
