package notifier

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"sync/atomic"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/argus-soc/argus/pkg/config"
	"github.com/argus-soc/argus/pkg/models"
	"github.com/argus-soc/argus/pkg/slack"
)

// slackServer fakes chat.postMessage. fail flips delivery failures on.
type slackServer struct {
	*httptest.Server
	calls atomic.Int32
	fail  atomic.Bool
}

func newSlackServer(t *testing.T) *slackServer {
	t.Helper()
	s := &slackServer{}
	s.Server = httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		s.calls.Add(1)
		w.Header().Set("Content-Type", "application/json")
		if s.fail.Load() {
			_ = json.NewEncoder(w).Encode(map[string]any{"ok": false, "error": "service_unavailable"})
			return
		}
		_ = json.NewEncoder(w).Encode(map[string]any{"ok": true, "ts": "1700000000.000100"})
	}))
	t.Cleanup(s.Close)
	return s
}

func testNotifier(t *testing.T, server *slackServer, cfg *config.NotifierConfig) *Notifier {
	t.Helper()
	if cfg == nil {
		cfg = config.DefaultNotifierConfig()
	}
	client := slack.NewClientWithAPIURL("xoxb-test", "C123", server.URL+"/")
	svc := slack.NewServiceWithClient(client, "https://argus.example.com")
	return New(cfg, svc, nil)
}

func notifiableThreat(eventID string) *models.Threat {
	return &models.Threat{
		NormalizedEvent: models.NormalizedEvent{
			EventID:    eventID,
			Source:     models.SourceGuardDuty,
			Kind:       "UnauthorizedAccess:IAMUser/TorIPCaller",
			Severity:   models.SeverityHigh,
			AccountID:  "123456789012",
			Region:     "us-east-1",
			ObservedAt: time.Now(),
		},
		Enrichment: models.Enrichment{
			ML:     &models.MLVerdict{ThreatScore: 88, Confidence: 0.9},
			Triage: &models.TriageResult{Priority: 86.4, Band: models.SeverityHigh},
		},
	}
}

func TestNotifier_Notify(t *testing.T) {
	t.Run("delivers and reports sent", func(t *testing.T) {
		server := newSlackServer(t)
		n := testNotifier(t, server, nil)

		assert.True(t, n.Notify(context.Background(), notifiableThreat("evt-n1")))
		assert.Equal(t, int32(1), server.calls.Load())
	})

	t.Run("duplicate event within the window is suppressed", func(t *testing.T) {
		server := newSlackServer(t)
		n := testNotifier(t, server, nil)

		assert.True(t, n.Notify(context.Background(), notifiableThreat("evt-n2")))
		assert.False(t, n.Notify(context.Background(), notifiableThreat("evt-n2")))
		assert.Equal(t, int32(1), server.calls.Load(), "second alert never reaches Slack")
	})

	t.Run("different events are not deduped against each other", func(t *testing.T) {
		server := newSlackServer(t)
		n := testNotifier(t, server, nil)

		assert.True(t, n.Notify(context.Background(), notifiableThreat("evt-n3")))
		assert.True(t, n.Notify(context.Background(), notifiableThreat("evt-n4")))
		assert.Equal(t, int32(2), server.calls.Load())
	})

	t.Run("failed delivery leaves the event eligible for redelivery", func(t *testing.T) {
		server := newSlackServer(t)
		server.fail.Store(true)
		n := testNotifier(t, server, nil)

		assert.False(t, n.Notify(context.Background(), notifiableThreat("evt-n5")))

		server.fail.Store(false)
		assert.True(t, n.Notify(context.Background(), notifiableThreat("evt-n5")),
			"failure must not poison the dedup cache")
	})

	t.Run("breaker opens after consecutive failures and drops without calling Slack", func(t *testing.T) {
		server := newSlackServer(t)
		server.fail.Store(true)

		cfg := config.DefaultNotifierConfig()
		cfg.Breaker.ConsecutiveFailures = 2
		cfg.Breaker.OpenTimeout = time.Minute
		n := testNotifier(t, server, cfg)

		assert.False(t, n.Notify(context.Background(), notifiableThreat("evt-b1")))
		assert.False(t, n.Notify(context.Background(), notifiableThreat("evt-b2")))
		callsWhenTripped := server.calls.Load()

		// Breaker is now open: no further Slack traffic.
		assert.False(t, n.Notify(context.Background(), notifiableThreat("evt-b3")))
		assert.Equal(t, callsWhenTripped, server.calls.Load())
	})

	t.Run("expired dedup entries allow a fresh alert", func(t *testing.T) {
		server := newSlackServer(t)
		cfg := config.DefaultNotifierConfig()
		cfg.DedupWindow = 50 * time.Millisecond
		n := testNotifier(t, server, cfg)

		assert.True(t, n.Notify(context.Background(), notifiableThreat("evt-n6")))
		time.Sleep(120 * time.Millisecond)
		assert.True(t, n.Notify(context.Background(), notifiableThreat("evt-n6")))
	})

	t.Run("nil slack service counts as sent", func(t *testing.T) {
		n := New(config.DefaultNotifierConfig(), nil, nil)
		assert.True(t, n.Notify(context.Background(), notifiableThreat("evt-n7")))
	})

	t.Run("nil config panics", func(t *testing.T) {
		assert.Panics(t, func() { New(nil, nil, nil) })
	})
}

func TestBuildAlert(t *testing.T) {
	t.Run("analysis summary and risk score flow through", func(t *testing.T) {
		threat := notifiableThreat("evt-a1")
		threat.Analysis = &models.AnalysisReport{
			RiskScore: 8,
			Summary:   "Likely credential compromise.",
		}

		alert := buildAlert(threat)
		require.NotNil(t, alert.RiskScore)
		assert.Equal(t, 8.0, *alert.RiskScore)
		assert.Equal(t, "Likely credential compromise.", alert.Summary)
	})

	t.Run("degraded analysis contributes no risk score", func(t *testing.T) {
		threat := notifiableThreat("evt-a2")
		threat.Analysis = &models.AnalysisReport{Error: models.AnalysisErrorTimeout}

		alert := buildAlert(threat)
		assert.Nil(t, alert.RiskScore)
		assert.Contains(t, alert.Summary, "UnauthorizedAccess")
	})

	t.Run("failed remediation flags the alert", func(t *testing.T) {
		threat := notifiableThreat("evt-a3")
		threat.Remediation = &models.RemediationOutcome{
			Action: config.ActionDisableCredential,
			Status: models.RemediationFailed,
		}

		alert := buildAlert(threat)
		assert.True(t, alert.RemediationFailed)
	})
}
