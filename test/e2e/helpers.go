package e2e

import (
	"bytes"
	"context"
	"encoding/json"
	"io"
	"net/http"
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"github.com/argus-soc/argus/ent"
	"github.com/argus-soc/argus/ent/threatrecord"
	"github.com/argus-soc/argus/pkg/api"
	"github.com/argus-soc/argus/pkg/config"
	"github.com/argus-soc/argus/pkg/models"
)

// doJSON issues one request against the app and decodes the response into
// out (skipped when out is nil). The status must match expectStatus; on
// mismatch the body is included in the failure for diagnosis.
func (app *TestApp) doJSON(method, path string, body any, expectStatus int, out any) {
	app.t.Helper()

	var reqBody io.Reader
	if body != nil {
		encoded, err := json.Marshal(body)
		require.NoError(app.t, err, "encoding %s %s body", method, path)
		reqBody = bytes.NewReader(encoded)
	}

	req, err := http.NewRequest(method, app.BaseURL+path, reqBody)
	require.NoError(app.t, err, "building %s %s", method, path)
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}

	resp, err := http.DefaultClient.Do(req)
	require.NoError(app.t, err, "calling %s %s", method, path)
	defer resp.Body.Close()

	raw, err := io.ReadAll(resp.Body)
	require.NoError(app.t, err, "reading %s %s response", method, path)
	require.Equal(app.t, expectStatus, resp.StatusCode,
		"%s %s returned unexpected status, body: %s", method, path, raw)

	if out != nil {
		require.NoError(app.t, json.Unmarshal(raw, out),
			"decoding %s %s response: %s", method, path, raw)
	}
}

func (app *TestApp) postJSON(path string, body any, expectStatus int, out any) {
	app.t.Helper()
	app.doJSON(http.MethodPost, path, body, expectStatus, out)
}

func (app *TestApp) putJSON(path string, body any, expectStatus int, out any) {
	app.t.Helper()
	app.doJSON(http.MethodPut, path, body, expectStatus, out)
}

func (app *TestApp) getJSON(path string, expectStatus int, out any) {
	app.t.Helper()
	app.doJSON(http.MethodGet, path, nil, expectStatus, out)
}

// tryGet issues a GET without failing the test. For polling loops, which
// run off the test goroutine and must not call FailNow.
func (app *TestApp) tryGet(path string) (status int, body []byte, err error) {
	resp, err := http.Get(app.BaseURL + path)
	if err != nil {
		return 0, nil, err
	}
	defer resp.Body.Close()
	raw, err := io.ReadAll(resp.Body)
	if err != nil {
		return 0, nil, err
	}
	return resp.StatusCode, raw, nil
}

// guardDutyFinding builds a minimal GuardDuty-shaped EventBridge envelope.
// severity uses the provider's 0-10 scale and lands top-level in detail;
// callers mutate the returned map for malformed or time-pinned variants.
func guardDutyFinding(eventID string, severity float64, kind string, detail map[string]any) map[string]any {
	if detail == nil {
		detail = map[string]any{}
	}
	detail["severity"] = severity
	return map[string]any{
		"id":          eventID,
		"time":        time.Now().UTC().Format(time.RFC3339Nano),
		"source":      "aws.guardduty",
		"account":     "123456789012",
		"region":      "us-east-1",
		"detail-type": kind,
		"detail":      detail,
	}
}

// securityHubFinding builds a Security Hub envelope with the severity
// nested under findings[0].Severity.Normalized (0-100 scale), the shape
// the import bridge forwards.
func securityHubFinding(eventID string, normalized float64, kind string) map[string]any {
	return map[string]any{
		"id":          eventID,
		"time":        time.Now().UTC().Format(time.RFC3339Nano),
		"source":      "aws.securityhub",
		"account":     "123456789012",
		"region":      "eu-west-1",
		"detail-type": kind,
		"detail": map[string]any{
			"findings": []any{
				map[string]any{
					"Severity": map[string]any{"Normalized": normalized},
					"Resources": []any{
						map[string]any{"Type": "AwsS3Bucket", "Id": "arn:aws:s3:::audit-logs"},
					},
				},
			},
		},
	}
}

// SubmitFinding posts a finding and requires the pipeline to accept it.
func (app *TestApp) SubmitFinding(source string, finding map[string]any) models.SubmitFindingResponse {
	app.t.Helper()
	resp := app.SubmitFindingExpecting(http.StatusAccepted, source, finding)
	require.True(app.t, resp.Accepted, "finding should have been accepted: %+v", resp)
	return resp
}

// SubmitFindingExpecting posts a finding and requires the given status.
func (app *TestApp) SubmitFindingExpecting(expectStatus int, source string, finding any) models.SubmitFindingResponse {
	app.t.Helper()
	var resp models.SubmitFindingResponse
	app.postJSON("/api/v1/events", map[string]any{
		"source":  source,
		"finding": finding,
	}, expectStatus, &resp)
	return resp
}

// WaitForStored polls until the event has a stored threat record and
// returns it. Records are written once, at the terminal state, so this is
// the "pipeline finished with this event" synchronization point.
func (app *TestApp) WaitForStored(eventID string) *ent.ThreatRecord {
	app.t.Helper()

	var rec *ent.ThreatRecord
	require.Eventually(app.t, func() bool {
		found, err := app.DBClient.Client.ThreatRecord.Query().
			Where(threatrecord.EventID(eventID)).
			Order(ent.Desc(threatrecord.FieldObservedAt)).
			First(context.Background())
		if err != nil {
			return false
		}
		rec = found
		return true
	}, 15*time.Second, 50*time.Millisecond,
		"no threat record stored for event %s", eventID)
	return rec
}

// WaitForIdle polls readiness until nothing is queued or processing.
func (app *TestApp) WaitForIdle() {
	app.t.Helper()
	require.Eventually(app.t, func() bool {
		status, body, err := app.tryGet("/readyz")
		if err != nil || status != http.StatusOK {
			return false
		}
		var health models.HealthResponse
		if err := json.Unmarshal(body, &health); err != nil {
			return false
		}
		return health.InFlight == 0 && health.BusDepth == 0
	}, 15*time.Second, 50*time.Millisecond, "pipeline never went idle")
}

// CountThreatRows counts every stored threat record.
func (app *TestApp) CountThreatRows() int {
	app.t.Helper()
	n, err := app.DBClient.Client.ThreatRecord.Query().Count(context.Background())
	require.NoError(app.t, err, "counting threat records")
	return n
}

// GetThreatHistory fetches every stored revision of an event, newest first.
func (app *TestApp) GetThreatHistory(eventID string) api.ThreatHistoryResponse {
	app.t.Helper()
	var resp api.ThreatHistoryResponse
	app.getJSON("/api/v1/threats/"+eventID, http.StatusOK, &resp)
	return resp
}

// ListThreats fetches the threat list; query is a raw query string such as
// "status=REMEDIATED&limit=10", or empty for no filters.
func (app *TestApp) ListThreats(query string) models.ThreatListResponse {
	app.t.Helper()
	path := "/api/v1/threats"
	if query != "" {
		path += "?" + query
	}
	var resp models.ThreatListResponse
	app.getJSON(path, http.StatusOK, &resp)
	return resp
}

// GetStats fetches the dashboard counters.
func (app *TestApp) GetStats() models.ThreatStatsResponse {
	app.t.Helper()
	var resp models.ThreatStatsResponse
	app.getJSON("/api/v1/stats", http.StatusOK, &resp)
	return resp
}

// GetPolicy reads the live action policy.
func (app *TestApp) GetPolicy() config.ActionPolicy {
	app.t.Helper()
	var resp models.PolicyResponse
	app.getJSON("/api/v1/admin/policy", http.StatusOK, &resp)
	return resp.ActionPolicy
}

// UpdatePolicy switches the live action policy.
func (app *TestApp) UpdatePolicy(policy config.ActionPolicy) {
	app.t.Helper()
	var resp models.PolicyResponse
	app.putJSON("/api/v1/admin/policy", models.UpdatePolicyRequest{ActionPolicy: policy}, http.StatusOK, &resp)
	require.Equal(app.t, policy, resp.ActionPolicy, "policy update should report the new policy")
}

// ListDLQ fetches the event dead letter ring, newest first.
func (app *TestApp) ListDLQ() models.DLQListResponse {
	app.t.Helper()
	var resp models.DLQListResponse
	app.getJSON("/api/v1/admin/dlq", http.StatusOK, &resp)
	return resp
}

// ReplayDLQ triggers a store journal replay.
func (app *TestApp) ReplayDLQ() models.ReplayResponse {
	app.t.Helper()
	var resp models.ReplayResponse
	app.postJSON("/api/v1/admin/dlq/replay", nil, http.StatusOK, &resp)
	return resp
}

// GetWarnings fetches active system warnings.
func (app *TestApp) GetWarnings() []api.SystemWarningItem {
	app.t.Helper()
	var resp api.SystemWarningsResponse
	app.getJSON("/api/v1/admin/warnings", http.StatusOK, &resp)
	return resp.Warnings
}

// requireTimesClose asserts two timestamps are within a tolerance, for
// times that cross a JSON round trip.
func requireTimesClose(t *testing.T, want, got time.Time, tolerance time.Duration) {
	t.Helper()
	diff := want.Sub(got)
	if diff < 0 {
		diff = -diff
	}
	require.LessOrEqual(t, diff, tolerance, "timestamps differ by %s: %s vs %s", diff, want, got)
}
