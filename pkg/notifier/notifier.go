// Package notifier turns threats that crossed the warn gate (or failed
// remediation) into operator alerts. Delivery is best-effort: suppression,
// breaker trips and Slack failures are counted and logged, never fatal.
package notifier

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/hashicorp/golang-lru/v2/expirable"
	"github.com/sony/gobreaker"

	"github.com/argus-soc/argus/pkg/config"
	"github.com/argus-soc/argus/pkg/metrics"
	"github.com/argus-soc/argus/pkg/models"
	"github.com/argus-soc/argus/pkg/slack"
)

// Notifier deduplicates and delivers threat alerts. The dedup cache is
// in-memory and best-effort by contract: a restart forgets suppression
// state and that is acceptable, duplicate pages beat missed ones.
type Notifier struct {
	cfg     *config.NotifierConfig
	slack   *slack.Service
	dedup   *expirable.LRU[string, time.Time]
	breaker *gobreaker.CircuitBreaker
	metrics *metrics.PipelineMetrics
	logger  *slog.Logger
}

// New creates the notifier. slackSvc may be nil (no Slack configured);
// alerts are then counted as sent without leaving the process, keeping
// pipeline semantics identical across deployments.
func New(cfg *config.NotifierConfig, slackSvc *slack.Service, m *metrics.PipelineMetrics) *Notifier {
	if cfg == nil {
		panic("notifier config is required")
	}

	logger := slog.With("component", "notifier")
	settings := gobreaker.Settings{
		Name:        "alert-delivery",
		MaxRequests: 1,
		Timeout:     cfg.Breaker.OpenTimeout,
		ReadyToTrip: func(counts gobreaker.Counts) bool {
			return counts.ConsecutiveFailures >= cfg.Breaker.ConsecutiveFailures
		},
		OnStateChange: func(name string, from, to gobreaker.State) {
			logger.Warn("Alert delivery breaker state changed",
				"breaker", name,
				"from", from.String(),
				"to", to.String())
		},
	}

	return &Notifier{
		cfg:     cfg,
		slack:   slackSvc,
		dedup:   expirable.NewLRU[string, time.Time](cfg.DedupSize, nil, cfg.DedupWindow),
		breaker: gobreaker.NewCircuitBreaker(settings),
		metrics: m,
		logger:  logger,
	}
}

// Notify delivers an alert for threat and reports whether one actually
// went out. The caller has already decided the threat warrants a page;
// this layer decides whether it is a duplicate and survives delivery.
func (n *Notifier) Notify(ctx context.Context, threat *models.Threat) bool {
	if _, seen := n.dedup.Get(threat.EventID); seen {
		n.metrics.RecordNotification(metrics.NotifyOutcomeDeduped)
		n.logger.Info("Alert suppressed by dedup window",
			"event_id", threat.EventID)
		return false
	}

	alert := buildAlert(threat)
	_, err := n.breaker.Execute(func() (interface{}, error) {
		return nil, n.slack.SendAlert(ctx, alert)
	})
	switch {
	case err == gobreaker.ErrOpenState || err == gobreaker.ErrTooManyRequests:
		n.metrics.RecordNotification(metrics.NotifyOutcomeBreakerOpen)
		n.logger.Warn("Alert dropped, delivery breaker is open",
			"event_id", threat.EventID)
		return false
	case err != nil:
		n.metrics.RecordNotification(metrics.NotifyOutcomeFailed)
		n.logger.Error("Alert delivery failed",
			"event_id", threat.EventID,
			"error", err)
		return false
	}

	// Mark after a successful send so a failed delivery can be retried by
	// a redelivered event.
	n.dedup.Add(threat.EventID, time.Now())
	n.metrics.RecordNotification(metrics.NotifyOutcomeSent)
	return true
}

// buildAlert flattens a threat into the notification payload.
func buildAlert(threat *models.Threat) *models.Alert {
	alert := &models.Alert{
		EventID:   threat.EventID,
		Source:    threat.Source,
		Kind:      threat.Kind,
		Severity:  threat.Severity,
		RecordKey: threat.EventID,
		Summary:   summarize(threat),
	}
	if ml := threat.ML; ml != nil {
		alert.ThreatScore = ml.ThreatScore
	}
	if tr := threat.Triage; tr != nil {
		alert.Priority = tr.Priority
		alert.Band = tr.Band
	} else {
		alert.Band = threat.Severity
	}
	if an := threat.Analysis; an != nil && an.Error == "" {
		risk := an.RiskScore
		alert.RiskScore = &risk
	}
	if rem := threat.Remediation; rem != nil && rem.Status == models.RemediationFailed {
		alert.RemediationFailed = true
	}
	return alert
}

// summarize produces the one-line human summary: the analyst's words when
// available, a synthesized line otherwise.
func summarize(threat *models.Threat) string {
	if an := threat.Analysis; an != nil && an.Summary != "" {
		return an.Summary
	}
	return fmt.Sprintf("%s reported %s in %s/%s", threat.Source, threat.Kind, threat.AccountID, threat.Region)
}
