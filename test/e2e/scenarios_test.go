package e2e

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/argus-soc/argus/ent/threatrecord"
	"github.com/argus-soc/argus/pkg/config"
)

// TestBenignFindingStoredOnly drives a low-severity Security Hub finding
// through the pipeline and verifies it is stored without waking the
// analyst, the effector or the alert channel.
func TestBenignFindingStoredOnly(t *testing.T) {
	app := NewTestApp(t)

	const eventID = "e2e-benign-1"
	app.Scorer.ScoreFor(eventID, ScoreEntry{Score: 5, Confidence: 0.8})

	app.SubmitFinding("aws.securityhub", securityHubFinding(eventID, 10, "Informational"))

	rec := app.WaitForStored(eventID)

	// Normalized 10 lands in the MEDIUM band on Security Hub's 0-100 scale.
	assert.Equal(t, threatrecord.SeverityMedium, rec.Severity)
	require.NotNil(t, rec.RawSeverity)
	assert.InDelta(t, 10, *rec.RawSeverity, 0.001)

	// Priority (5*0.6 + 20) * 1.1 = 25.3: LOW, under every gate.
	require.NotNil(t, rec.TriagePriority)
	assert.InDelta(t, 25.3, *rec.TriagePriority, 0.01)
	assert.Equal(t, threatrecord.TriageBandLow, rec.TriageBand)
	assert.False(t, rec.RequiresHumanReview)

	assert.Equal(t, threatrecord.StatusStoredOnly, rec.Status)
	assert.Nil(t, rec.NotifiedAt)
	assert.Nil(t, rec.AnalysisRiskScore)
	assert.Nil(t, rec.RemediationAction)
	assert.Empty(t, rec.RemediationStatus)

	// Resource came out of the Security Hub resources array.
	assert.Equal(t, "AwsS3Bucket", rec.ResourceType)
	assert.Equal(t, "arn:aws:s3:::audit-logs", rec.ResourceID)

	require.Len(t, app.Scorer.CallsFor(eventID), 1)
	assert.Equal(t, 0, app.Analyst.CallCount())
	assert.Equal(t, 0, app.Effector.CallCount())

	history := app.GetThreatHistory(eventID)
	require.Len(t, history.Records, 1)
	assert.False(t, history.Records[0].Analyzed)
}

// TestNotifyOnlyPolicySuppressesRemediation runs a critical finding under
// the default NOTIFY_ONLY policy: analysis and alerting happen, the
// effector is never called.
func TestNotifyOnlyPolicySuppressesRemediation(t *testing.T) {
	app := NewTestApp(t)

	const eventID = "e2e-notify-only-1"
	app.Scorer.ScoreFor(eventID, ScoreEntry{Score: 85, Confidence: 0.9})
	app.Analyst.ScriptFor(eventID, AnalysisEntry{
		Text: analysisReport(8, "credential-compromise", "Disable the exposed key"),
	})

	app.SubmitFinding("aws.guardduty",
		guardDutyFinding(eventID, 8, "UnauthorizedAccess:IAMUser/TorIPCaller", nil))

	rec := app.WaitForStored(eventID)

	require.NotNil(t, rec.TriagePriority)
	assert.InDelta(t, 100, *rec.TriagePriority, 0.001)

	// Analysis ran and the alert went out; the infrastructure was never
	// touched.
	require.NotNil(t, rec.AnalysisRiskScore)
	assert.InDelta(t, 8, *rec.AnalysisRiskScore, 0.001)
	assert.Equal(t, threatrecord.StatusNotified, rec.Status)
	require.NotNil(t, rec.NotifiedAt)
	assert.Nil(t, rec.RemediationAction)
	assert.Empty(t, rec.RemediationStatus)
	assert.Equal(t, 0, rec.RemediationAttempts)

	assert.Equal(t, 1, app.Analyst.CallsFor(eventID))
	assert.Equal(t, 0, app.Effector.CallCount())
	assert.Equal(t, config.PolicyNotifyOnly, app.GetPolicy())
}

// TestEffectorFailureFallsBackToNotify exhausts the effector's retry
// budget and verifies the failure is recorded and still paged out.
func TestEffectorFailureFallsBackToNotify(t *testing.T) {
	app := NewTestApp(t, WithPolicy(config.PolicyFull))

	const eventID = "e2e-effector-down-1"
	app.Scorer.ScoreFor(eventID, ScoreEntry{Score: 85, Confidence: 0.9})
	app.Analyst.ScriptFor(eventID, AnalysisEntry{
		Text: analysisReport(9, "credential-compromise", "Disable the exposed key"),
	})
	app.Effector.FailNext(2)

	app.SubmitFinding("aws.guardduty",
		guardDutyFinding(eventID, 8, "UnauthorizedAccess:IAMUser/TorIPCaller", nil))

	rec := app.WaitForStored(eventID)

	// Both attempts failed; the record says so and the event did not
	// count as remediated.
	require.NotNil(t, rec.RemediationAction)
	assert.Equal(t, string(config.ActionDisableCredential), *rec.RemediationAction)
	assert.Equal(t, threatrecord.RemediationStatusFailed, rec.RemediationStatus)
	assert.Equal(t, 2, rec.RemediationAttempts)
	require.NotNil(t, rec.RemediationError)
	assert.Equal(t, threatrecord.StatusNotified, rec.Status)
	require.NotNil(t, rec.NotifiedAt)

	calls := app.Effector.CallsFor(eventID)
	require.Len(t, calls, 2)
	assert.Equal(t, calls[0].IdempotencyKey, calls[1].IdempotencyKey,
		"retries must reuse the idempotency key")
}
