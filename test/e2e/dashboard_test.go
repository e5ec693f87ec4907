package e2e

import (
	"net/http"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/argus-soc/argus/ent/threatrecord"
	"github.com/argus-soc/argus/pkg/config"
)

// The read API over a mixed population: one benign finding that only got
// stored, one that crossed the warn gate, and one that went all the way to
// remediation. List filters, ordering, pagination, the stats counters and
// the scrape surfaces all read off the same rows.
func TestDashboardListStatsAndProbes(t *testing.T) {
	app := NewTestApp(t, WithPolicy(config.PolicyFull))

	app.Scorer.ScoreFor("e2e-dash-low", ScoreEntry{Score: 5, Confidence: 0.9})
	app.Scorer.ScoreFor("e2e-dash-mid", ScoreEntry{Score: 60, Confidence: 0.8})
	app.Scorer.ScoreFor("e2e-dash-crit", ScoreEntry{Score: 85, Confidence: 0.95})
	app.Analyst.ScriptFor("e2e-dash-mid",
		AnalysisEntry{Text: analysisReport(5, "credential-stuffing", "ROTATE_KEYS")})
	app.Analyst.ScriptFor("e2e-dash-crit",
		AnalysisEntry{Text: analysisReport(9, "credential-compromise", "DISABLE_CREDENTIAL")})

	app.SubmitFinding("aws.securityhub",
		securityHubFinding("e2e-dash-low", 10, "Software and Configuration Checks/Industry Standards"))
	app.SubmitFinding("aws.guardduty",
		guardDutyFinding("e2e-dash-mid", 5, "PrivilegeEscalation:IAMUser/AdministrativePermissions", nil))
	app.SubmitFinding("aws.guardduty",
		guardDutyFinding("e2e-dash-crit", 8, "UnauthorizedAccess:IAMUser/InstanceCredentialExfiltration", nil))

	low := app.WaitForStored("e2e-dash-low")
	mid := app.WaitForStored("e2e-dash-mid")
	crit := app.WaitForStored("e2e-dash-crit")

	assert.Equal(t, threatrecord.StatusStoredOnly, low.Status)
	assert.Equal(t, threatrecord.StatusNotified, mid.Status)
	assert.Equal(t, threatrecord.StatusRemediated, crit.Status)

	// Default listing is priority-descending.
	all := app.ListThreats("")
	require.Len(t, all.Threats, 3)
	assert.Equal(t, 3, all.TotalCount)
	assert.Equal(t, "e2e-dash-crit", all.Threats[0].EventID)
	assert.Equal(t, "e2e-dash-mid", all.Threats[1].EventID)
	assert.Equal(t, "e2e-dash-low", all.Threats[2].EventID)
	assert.True(t, all.Threats[0].Analyzed)
	assert.True(t, all.Threats[1].Analyzed)
	assert.False(t, all.Threats[2].Analyzed, "a record below the warn gate carries no analysis")
	require.NotNil(t, all.Threats[0].TriagePriority)
	assert.InDelta(t, 100.0, *all.Threats[0].TriagePriority, 0.01)
	require.NotNil(t, all.Threats[1].TriagePriority)
	assert.InDelta(t, 79.2, *all.Threats[1].TriagePriority, 0.01)

	// Filters compose against the same population.
	remediated := app.ListThreats("status=REMEDIATED")
	require.Len(t, remediated.Threats, 1)
	assert.Equal(t, "e2e-dash-crit", remediated.Threats[0].EventID)

	highBand := app.ListThreats("band=HIGH")
	require.Len(t, highBand.Threats, 1)
	assert.Equal(t, "e2e-dash-mid", highBand.Threats[0].EventID)

	bySource := app.ListThreats("source=aws.securityhub")
	require.Len(t, bySource.Threats, 1)
	assert.Equal(t, "e2e-dash-low", bySource.Threats[0].EventID)

	urgent := app.ListThreats("min_priority=70")
	assert.Equal(t, 2, urgent.TotalCount)
	require.Len(t, urgent.Threats, 2)

	// Pagination reports the unpaginated total.
	page := app.ListThreats("limit=2&offset=1")
	require.Len(t, page.Threats, 2)
	assert.Equal(t, 3, page.TotalCount)
	assert.Equal(t, 2, page.Limit)
	assert.Equal(t, 1, page.Offset)
	assert.Equal(t, "e2e-dash-mid", page.Threats[0].EventID)
	assert.Equal(t, "e2e-dash-low", page.Threats[1].EventID)

	stats := app.GetStats()
	assert.Equal(t, 3, stats.TotalThreats)
	assert.Equal(t, map[string]int{"MEDIUM": 1, "HIGH": 1, "CRITICAL": 1}, stats.BySeverity)
	assert.Equal(t, map[string]int{"STORED_ONLY": 1, "NOTIFIED": 1, "REMEDIATED": 1}, stats.ByStatus)
	assert.Equal(t, 1, stats.AutoRemediated)
	assert.Equal(t, 1, stats.HumanReviewRequired, "only the clamped-to-100 event crosses the review bar")
	assert.Equal(t, 0, stats.DeadLettered)

	// Liveness stays independent of dependencies; metrics expose pipeline
	// counters under the argus_ namespace.
	var live map[string]any
	app.getJSON("/healthz", http.StatusOK, &live)
	assert.Equal(t, "ok", live["status"])

	status, body, err := app.tryGet("/metrics")
	require.NoError(t, err)
	require.Equal(t, http.StatusOK, status)
	assert.True(t, strings.Contains(string(body), "argus_findings_ingested_total"),
		"metrics exposition should carry the ingest counter")
}
