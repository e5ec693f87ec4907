package e2e

import (
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/argus-soc/argus/ent/threatrecord"
	"github.com/argus-soc/argus/pkg/config"
)

// TestPolicyFlipAppliesToInFlightEvents holds an event inside deep
// analysis, dials the policy from FULL down to NOTIFY_ONLY through the
// admin API, and verifies the held event respects the new policy at its
// remediation gate. Flipping back re-arms remediation without a restart.
func TestPolicyFlipAppliesToInFlightEvents(t *testing.T) {
	app := NewTestApp(t, WithPolicy(config.PolicyFull))

	const heldID = "e2e-policy-held-1"
	release := make(chan struct{})
	blocked := make(chan struct{}, 1)

	app.Scorer.ScoreFor(heldID, ScoreEntry{Score: 85, Confidence: 0.9})
	app.Analyst.ScriptFor(heldID, AnalysisEntry{
		Text:    analysisReport(9, "credential-compromise", "Disable the exposed key"),
		WaitCh:  release,
		OnBlock: blocked,
	})

	app.SubmitFinding("aws.guardduty",
		guardDutyFinding(heldID, 8, "UnauthorizedAccess:IAMUser/TorIPCaller", nil))

	// The event is now parked inside the analyst call: past the analysis
	// gate, before the remediation gate.
	<-blocked
	app.UpdatePolicy(config.PolicyNotifyOnly)
	close(release)

	rec := app.WaitForStored(heldID)

	// The flip landed before the remediation decision: analyzed and
	// notified, nothing executed.
	require.NotNil(t, rec.AnalysisRiskScore)
	assert.InDelta(t, 9, *rec.AnalysisRiskScore, 0.001)
	assert.Equal(t, threatrecord.StatusNotified, rec.Status)
	assert.Empty(t, rec.RemediationStatus)
	assert.Equal(t, 0, app.Effector.CallCount())

	// Flip back up: the next event remediates without a restart.
	app.UpdatePolicy(config.PolicyFull)

	const nextID = "e2e-policy-next-1"
	app.Scorer.ScoreFor(nextID, ScoreEntry{Score: 85, Confidence: 0.9})
	app.Analyst.ScriptFor(nextID, AnalysisEntry{
		Text: analysisReport(9, "credential-compromise", "Disable the exposed key"),
	})
	app.SubmitFinding("aws.guardduty",
		guardDutyFinding(nextID, 8, "UnauthorizedAccess:IAMUser/TorIPCaller", nil))

	rec = app.WaitForStored(nextID)
	assert.Equal(t, threatrecord.StatusRemediated, rec.Status)
	require.Len(t, app.Effector.CallsFor(nextID), 1)
}

// TestPolicyUpdateValidation rejects unknown policies and keeps the
// current one in force.
func TestPolicyUpdateValidation(t *testing.T) {
	app := NewTestApp(t)

	var out map[string]any
	app.putJSON("/api/v1/admin/policy",
		map[string]any{"action_policy": "SOMETIMES"}, http.StatusBadRequest, &out)
	assert.Contains(t, out["error"], "invalid")

	assert.Equal(t, config.PolicyNotifyOnly, app.GetPolicy())
}
