package e2e

import (
	"context"
	"testing"

	"github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/argus-soc/argus/ent/threatrecord"
	"github.com/argus-soc/argus/pkg/config"
)

// TestPipelineFullPath walks one critical GuardDuty finding through every
// stage: ingest, masking, scoring, triage, deep analysis with a playbook
// excerpt, webhook remediation, notification, storage and the Redis
// lifecycle feed.
func TestPipelineFullPath(t *testing.T) {
	app := NewTestApp(t, WithPolicy(config.PolicyFull), WithRedis())

	const eventID = "e2e-full-path-1"

	app.Scorer.ScoreFor(eventID, ScoreEntry{Score: 85, Confidence: 0.95})
	app.Analyst.ScriptFor(eventID, AnalysisEntry{
		Text: analysisReport(9, "credential-compromise", "Disable the exposed key", "Rotate credentials"),
	})
	app.Playbooks.Set("unauthorizedaccess-iamuser-toripcaller",
		"# Tor IP Caller\n\nDisable the exposed key immediately, then rotate.")

	finding := guardDutyFinding(eventID, 8, "UnauthorizedAccess:IAMUser/TorIPCaller", map[string]any{
		"resource": map[string]any{
			"resourceType":     "AccessKey",
			"accessKeyDetails": map[string]any{"accessKeyId": "AKIAE2E7EXAMPLE"},
		},
		"sessionToken": "FwoGZXIvYXdzEBEaDHRlc3Q",
	})

	resp := app.SubmitFinding("aws.guardduty", finding)
	require.Equal(t, eventID, resp.EventID)

	rec := app.WaitForStored(eventID)

	// Triage: (85*0.6 + 40) * 1.2 * 1.3 clamps to 100.
	require.NotNil(t, rec.TriagePriority)
	assert.InDelta(t, 100, *rec.TriagePriority, 0.001)
	assert.Equal(t, threatrecord.TriageBandCritical, rec.TriageBand)
	assert.Equal(t, threatrecord.SeverityCritical, rec.Severity)
	assert.True(t, rec.RequiresHumanReview)

	require.NotNil(t, rec.MlThreatScore)
	assert.InDelta(t, 85, *rec.MlThreatScore, 0.001)
	assert.Nil(t, rec.MlError)

	require.NotNil(t, rec.AnalysisRiskScore)
	assert.InDelta(t, 9, *rec.AnalysisRiskScore, 0.001)
	require.NotNil(t, rec.AnalysisAttackVector)
	assert.Equal(t, "credential-compromise", *rec.AnalysisAttackVector)
	assert.Nil(t, rec.AnalysisError)
	assert.Equal(t, []string{"IMMEDIATE_ISOLATION", "DISABLE_CREDENTIALS", "NOTIFY_SECURITY_TEAM"},
		rec.RecommendedActions, "critical band carries the critical playbook")

	require.NotNil(t, rec.RemediationAction)
	assert.Equal(t, string(config.ActionDisableCredential), *rec.RemediationAction)
	assert.Equal(t, threatrecord.RemediationStatusSucceeded, rec.RemediationStatus)
	assert.Equal(t, 1, rec.RemediationAttempts)
	assert.Equal(t, threatrecord.StatusRemediated, rec.Status)
	require.NotNil(t, rec.NotifiedAt)

	// Resource extraction named the key the effector was told to disable.
	assert.Equal(t, "AccessKey", rec.ResourceType)
	assert.Equal(t, "AKIAE2E7EXAMPLE", rec.ResourceID)

	// The session token was masked before the payload went anywhere.
	assert.Equal(t, "__MASKED__", rec.Details["sessionToken"])

	// Upstream traffic: one scoring call carrying the feature vector, one
	// analysis call carrying the playbook excerpt, one effector call with
	// the idempotency key.
	scoreCalls := app.Scorer.CallsFor(eventID)
	require.Len(t, scoreCalls, 1)
	assert.Equal(t, "cloudtrail-rf-v1", scoreCalls[0].FeatureVersion)
	assert.Contains(t, scoreCalls[0].Features, "api_call_count")

	require.Equal(t, 1, app.Analyst.CallsFor(eventID))
	prompts := app.Analyst.PromptsFor(eventID)
	require.Len(t, prompts, 1)
	assert.Contains(t, prompts[0], "Disable the exposed key immediately")

	effectorCalls := app.Effector.CallsFor(eventID)
	require.Len(t, effectorCalls, 1)
	assert.Equal(t, string(config.ActionDisableCredential), effectorCalls[0].Action)
	assert.Equal(t, eventID+"/"+string(config.ActionDisableCredential), effectorCalls[0].IdempotencyKey)
	assert.Equal(t, "AKIAE2E7EXAMPLE", effectorCalls[0].ResourceID)

	// Terminal lifecycle event on the Redis stream.
	rdb := redis.NewClient(&redis.Options{Addr: app.Redis.Addr()})
	defer rdb.Close()
	msgs, err := rdb.XRange(context.Background(), "argus:threats", "-", "+").Result()
	require.NoError(t, err)
	require.Len(t, msgs, 1)
	assert.Equal(t, "threat.remediated", msgs[0].Values["kind"])
	assert.Equal(t, eventID, msgs[0].Values["event_id"])

	// The API reads the record back as analyzed.
	history := app.GetThreatHistory(eventID)
	require.Len(t, history.Records, 1)
	assert.True(t, history.Records[0].Analyzed)
	assert.Equal(t, eventID, history.EventID)
}
