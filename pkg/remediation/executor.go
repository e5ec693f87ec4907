package remediation

import (
	"context"
	"errors"
	"log/slog"
	"time"

	"github.com/argus-soc/argus/pkg/config"
	"github.com/argus-soc/argus/pkg/metrics"
	"github.com/argus-soc/argus/pkg/models"
)

// errNoEffector is reported when the table names a mutating action but no
// automation endpoint is configured. The FAILED outcome routes through
// notification, so an operator learns their table is toothless.
var errNoEffector = errors.New("no effector configured")

// maxAttempts is the effector attempt cap: the initial call plus one retry.
const maxAttempts = 2

// Executor resolves the configured action for a threat and applies it.
// It never blocks the pipeline: every path ends in a RemediationOutcome,
// FAILED included.
type Executor struct {
	cfg      *config.RemediationConfig
	effector Effector
	metrics  *metrics.PipelineMetrics
	logger   *slog.Logger
}

// NewExecutor creates the remediation executor. effector may be nil when
// no automation endpoint is configured.
func NewExecutor(cfg *config.RemediationConfig, effector Effector, m *metrics.PipelineMetrics) *Executor {
	if cfg == nil {
		panic("remediation config is required")
	}
	return &Executor{
		cfg:      cfg,
		effector: effector,
		metrics:  m,
		logger:   slog.With("component", "remediation"),
	}
}

// Execute looks up the action for threat and applies it. Table misses and
// NONE entries are SKIPPED; effector errors get one retry and then FAILED.
// The caller has already decided that remediation should happen at all
// (gate score and action policy); this layer only decides what and how.
func (e *Executor) Execute(ctx context.Context, threat *models.Threat) *models.RemediationOutcome {
	action := e.cfg.ActionFor(threat.Source, threat.Kind)
	if !action.Mutating() {
		e.metrics.RecordRemediation(string(action), string(models.RemediationSkipped))
		e.logger.Info("No remediation mapped for finding",
			"event_id", threat.EventID,
			"source", threat.Source,
			"kind", threat.Kind)
		return &models.RemediationOutcome{
			Action:      config.ActionNone,
			Status:      models.RemediationSkipped,
			CompletedAt: time.Now(),
		}
	}

	outcome := &models.RemediationOutcome{Action: action}
	if e.effector == nil {
		outcome.Status = models.RemediationFailed
		outcome.Error = errNoEffector.Error()
		outcome.CompletedAt = time.Now()
		e.metrics.RecordRemediation(string(action), string(models.RemediationFailed))
		e.logger.Error("Remediation table names a mutating action but no effector is configured",
			"event_id", threat.EventID,
			"action", action)
		return outcome
	}

	var lastErr error
	for attempt := 1; attempt <= maxAttempts; attempt++ {
		outcome.Attempts = attempt
		lastErr = e.apply(ctx, threat, action)
		if lastErr == nil {
			outcome.Status = models.RemediationSucceeded
			outcome.CompletedAt = time.Now()
			e.metrics.RecordRemediation(string(action), string(models.RemediationSucceeded))
			e.logger.Info("Remediation applied",
				"event_id", threat.EventID,
				"action", action,
				"attempts", attempt)
			return outcome
		}
		if ctx.Err() != nil {
			break
		}
		if attempt < maxAttempts {
			e.logger.Warn("Effector attempt failed, retrying",
				"event_id", threat.EventID,
				"action", action,
				"attempt", attempt,
				"error", lastErr)
		}
	}

	outcome.Status = models.RemediationFailed
	outcome.Error = lastErr.Error()
	outcome.CompletedAt = time.Now()
	e.metrics.RecordRemediation(string(action), string(models.RemediationFailed))
	e.logger.Error("Remediation failed",
		"event_id", threat.EventID,
		"action", action,
		"attempts", outcome.Attempts,
		"error", lastErr)
	return outcome
}

// apply runs one effector attempt under the per-invocation timeout.
func (e *Executor) apply(ctx context.Context, threat *models.Threat, action config.ActionKind) error {
	timeout := e.cfg.EffectorTimeout
	if timeout <= 0 {
		timeout = 10 * time.Second
	}
	ctx, cancel := context.WithTimeout(ctx, timeout)
	defer cancel()
	return e.effector.Apply(ctx, threat, action)
}
