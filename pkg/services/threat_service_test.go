package services

import (
	"context"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/argus-soc/argus/ent"
	"github.com/argus-soc/argus/ent/threatrecord"
	"github.com/argus-soc/argus/pkg/models"
	testdb "github.com/argus-soc/argus/test/database"
)

// seedThreat inserts a sane HIGH/NOTIFIED record and lets the caller adjust it.
func seedThreat(t *testing.T, client *ent.Client, mutate func(*ent.ThreatRecordCreate)) *ent.ThreatRecord {
	t.Helper()
	now := time.Now().UTC().Truncate(time.Microsecond)
	create := client.ThreatRecord.Create().
		SetID(uuid.New().String()).
		SetEventID(uuid.New().String()).
		SetObservedAt(now).
		SetReceivedAt(now.Add(time.Second)).
		SetSource("aws.guardduty").
		SetAccountID("123456789012").
		SetRegion("us-east-1").
		SetKind("UnauthorizedAccess:IAMUser/MaliciousIPCaller").
		SetSeverity(threatrecord.SeverityHigh).
		SetStatus(threatrecord.StatusNotified).
		SetTriagePriority(75).
		SetTriageBand(threatrecord.TriageBandHigh).
		SetExpiresAt(now.Add(30 * 24 * time.Hour))
	if mutate != nil {
		mutate(create)
	}
	rec, err := create.Save(context.Background())
	require.NoError(t, err)
	return rec
}

func TestThreatService_ListThreats(t *testing.T) {
	client := testdb.NewTestClient(t)
	svc := NewThreatService(client.Client)
	ctx := context.Background()

	critical := seedThreat(t, client.Client, func(c *ent.ThreatRecordCreate) {
		c.SetTriagePriority(92).
			SetTriageBand(threatrecord.TriageBandCritical).
			SetSeverity(threatrecord.SeverityCritical).
			SetStatus(threatrecord.StatusRemediated)
	})
	high := seedThreat(t, client.Client, nil)
	medium := seedThreat(t, client.Client, func(c *ent.ThreatRecordCreate) {
		c.SetTriagePriority(45).
			SetTriageBand(threatrecord.TriageBandMedium).
			SetSeverity(threatrecord.SeverityMedium).
			SetStatus(threatrecord.StatusStoredOnly).
			SetSource("aws.inspector").
			SetAccountID("999999999999")
	})
	// Dead letter that never reached triage; must sort after scored records.
	unscored := seedThreat(t, client.Client, func(c *ent.ThreatRecordCreate) {
		c.SetStatus(threatrecord.StatusDeadLettered).
			SetSeverity(threatrecord.SeverityLow)
		c.Mutation().ClearTriagePriority()
		c.Mutation().ClearTriageBand()
	})

	t.Run("orders by priority with unscored records last", func(t *testing.T) {
		resp, err := svc.ListThreats(ctx, models.ThreatFilters{})
		require.NoError(t, err)
		assert.Equal(t, 4, resp.TotalCount)
		require.Len(t, resp.Threats, 4)
		assert.Equal(t, critical.ID, resp.Threats[0].ID)
		assert.Equal(t, high.ID, resp.Threats[1].ID)
		assert.Equal(t, medium.ID, resp.Threats[2].ID)
		assert.Equal(t, unscored.ID, resp.Threats[3].ID)
	})

	t.Run("filters by status", func(t *testing.T) {
		resp, err := svc.ListThreats(ctx, models.ThreatFilters{Status: "REMEDIATED"})
		require.NoError(t, err)
		require.Len(t, resp.Threats, 1)
		assert.Equal(t, critical.ID, resp.Threats[0].ID)
	})

	t.Run("filters by severity", func(t *testing.T) {
		resp, err := svc.ListThreats(ctx, models.ThreatFilters{Severity: "MEDIUM"})
		require.NoError(t, err)
		require.Len(t, resp.Threats, 1)
		assert.Equal(t, medium.ID, resp.Threats[0].ID)
	})

	t.Run("filters by source and account", func(t *testing.T) {
		resp, err := svc.ListThreats(ctx, models.ThreatFilters{
			Source:    "aws.inspector",
			AccountID: "999999999999",
		})
		require.NoError(t, err)
		require.Len(t, resp.Threats, 1)
		assert.Equal(t, medium.ID, resp.Threats[0].ID)
	})

	t.Run("filters by minimum priority", func(t *testing.T) {
		min := 70.0
		resp, err := svc.ListThreats(ctx, models.ThreatFilters{MinPriority: &min})
		require.NoError(t, err)
		assert.Equal(t, 2, resp.TotalCount)
	})

	t.Run("applies pagination", func(t *testing.T) {
		resp, err := svc.ListThreats(ctx, models.ThreatFilters{Limit: 1, Offset: 1})
		require.NoError(t, err)
		require.Len(t, resp.Threats, 1)
		assert.Equal(t, high.ID, resp.Threats[0].ID)
		assert.Equal(t, 4, resp.TotalCount, "total ignores pagination")
		assert.Equal(t, 1, resp.Limit)
		assert.Equal(t, 1, resp.Offset)
	})

	t.Run("caps the page size", func(t *testing.T) {
		resp, err := svc.ListThreats(ctx, models.ThreatFilters{Limit: 10000})
		require.NoError(t, err)
		assert.Equal(t, maxListLimit, resp.Limit)
	})

	t.Run("rejects unknown enum filters", func(t *testing.T) {
		for _, filters := range []models.ThreatFilters{
			{Status: "EXPLODED"},
			{Severity: "MEGA"},
			{Band: "PURPLE"},
		} {
			_, err := svc.ListThreats(ctx, filters)
			require.Error(t, err)
			assert.True(t, IsValidationError(err))
		}
	})
}

func TestThreatService_GetThreat(t *testing.T) {
	client := testdb.NewTestClient(t)
	svc := NewThreatService(client.Client)
	ctx := context.Background()

	t.Run("returns all records for a recycled event id, newest first", func(t *testing.T) {
		eventID := uuid.New().String()
		older := time.Date(2026, 2, 1, 8, 0, 0, 0, time.UTC)
		newer := older.Add(48 * time.Hour)

		seedThreat(t, client.Client, func(c *ent.ThreatRecordCreate) {
			c.SetEventID(eventID).SetObservedAt(older)
		})
		seedThreat(t, client.Client, func(c *ent.ThreatRecordCreate) {
			c.SetEventID(eventID).
				SetObservedAt(newer).
				SetAnalysisRiskScore(8.5).
				SetAnalysisSummary("credential theft in progress")
		})

		records, err := svc.GetThreat(ctx, eventID)
		require.NoError(t, err)
		require.Len(t, records, 2)
		assert.True(t, records[0].ObservedAt.After(records[1].ObservedAt))
		assert.True(t, records[0].Analyzed)
		assert.False(t, records[1].Analyzed, "record without an analysis envelope renders analyzed false")
	})

	t.Run("counts a degraded analysis as analyzed", func(t *testing.T) {
		rec := seedThreat(t, client.Client, func(c *ent.ThreatRecordCreate) {
			c.SetAnalysisError("timeout")
		})

		records, err := svc.GetThreat(ctx, rec.EventID)
		require.NoError(t, err)
		require.Len(t, records, 1)
		assert.True(t, records[0].Analyzed)
	})

	t.Run("returns ErrNotFound for an unknown event id", func(t *testing.T) {
		_, err := svc.GetThreat(ctx, "evt-does-not-exist")
		assert.ErrorIs(t, err, ErrNotFound)
	})

	t.Run("rejects an empty event id", func(t *testing.T) {
		_, err := svc.GetThreat(ctx, "")
		assert.True(t, IsValidationError(err))
	})
}

func TestThreatService_GetStats(t *testing.T) {
	client := testdb.NewTestClient(t)
	svc := NewThreatService(client.Client)
	ctx := context.Background()

	seedThreat(t, client.Client, func(c *ent.ThreatRecordCreate) {
		c.SetSeverity(threatrecord.SeverityCritical).
			SetStatus(threatrecord.StatusRemediated).
			SetRemediationStatus(threatrecord.RemediationStatusSucceeded).
			SetRemediationAction("disable_access_key")
	})
	seedThreat(t, client.Client, func(c *ent.ThreatRecordCreate) {
		c.SetRequiresHumanReview(true)
	})
	seedThreat(t, client.Client, func(c *ent.ThreatRecordCreate) {
		c.SetSeverity(threatrecord.SeverityMedium).
			SetStatus(threatrecord.StatusStoredOnly)
	})
	seedThreat(t, client.Client, func(c *ent.ThreatRecordCreate) {
		c.SetSeverity(threatrecord.SeverityLow).
			SetStatus(threatrecord.StatusDeadLettered)
		c.Mutation().ClearTriagePriority()
		c.Mutation().ClearTriageBand()
	})

	stats, err := svc.GetStats(ctx)
	require.NoError(t, err)

	assert.Equal(t, 4, stats.TotalThreats)
	assert.Equal(t, map[string]int{
		"CRITICAL": 1,
		"HIGH":     1,
		"MEDIUM":   1,
		"LOW":      1,
	}, stats.BySeverity)
	assert.Equal(t, map[string]int{
		"REMEDIATED":    1,
		"NOTIFIED":      1,
		"STORED_ONLY":   1,
		"DEAD_LETTERED": 1,
	}, stats.ByStatus)
	assert.Equal(t, 1, stats.AutoRemediated)
	assert.Equal(t, 1, stats.HumanReviewRequired)
	assert.Equal(t, 1, stats.DeadLettered)
}

func TestThreatService_GetStatsEmpty(t *testing.T) {
	client := testdb.NewTestClient(t)
	svc := NewThreatService(client.Client)

	stats, err := svc.GetStats(context.Background())
	require.NoError(t, err)
	assert.Zero(t, stats.TotalThreats)
	assert.Empty(t, stats.BySeverity)
	assert.Empty(t, stats.ByStatus)
}
