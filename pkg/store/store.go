// Package store persists terminal threat records.
//
// Put is an idempotent upsert keyed by (event_id, observed_at): a redelivered
// event merges into the existing row instead of duplicating it. Enrichment
// merges envelope-wise (a present envelope overwrites its columns, an absent
// one preserves them) and status merges monotonically, so the stored record
// is independent of write arrival order. Writes that exhaust their retry
// budget are appended to an on-disk journal for operator replay.
package store

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/cenkalti/backoff/v4"
	"github.com/google/uuid"

	"github.com/argus-soc/argus/ent"
	"github.com/argus-soc/argus/ent/threatrecord"
	"github.com/argus-soc/argus/pkg/config"
	"github.com/argus-soc/argus/pkg/database"
	"github.com/argus-soc/argus/pkg/metrics"
	"github.com/argus-soc/argus/pkg/models"
)

// ErrJournaled reports that a write exhausted its retry budget and the
// record was appended to the store DLQ journal instead of the database.
var ErrJournaled = errors.New("threat record journaled to store DLQ")

// Store writes threat records to PostgreSQL with bounded retries and a
// journal fallback, and owns the journal replay path.
type Store struct {
	client    *database.Client
	cfg       *config.StoreConfig
	retention *config.RetentionConfig
	journal   *journal
	metrics   *metrics.PipelineMetrics
	logger    *slog.Logger
}

// New creates a Store. client and cfg must be non-nil. A nil retention
// config falls back to the built-in defaults.
func New(client *database.Client, cfg *config.StoreConfig, retention *config.RetentionConfig, m *metrics.PipelineMetrics) *Store {
	if client == nil {
		panic("store: nil database client")
	}
	if cfg == nil {
		panic("store: nil config")
	}
	if retention == nil {
		retention = config.DefaultRetentionConfig()
	}

	logger := slog.With("component", "store")

	var j *journal
	if cfg.JournalPath != "" {
		j = newJournal(cfg.JournalPath, logger)
	} else {
		logger.Warn("store DLQ journal disabled; records that exhaust write retries will be dropped")
	}

	return &Store{
		client:    client,
		cfg:       cfg,
		retention: retention,
		journal:   j,
		metrics:   m,
		logger:    logger,
	}
}

// Put upserts the threat keyed by (event_id, observed_at), retrying failed
// writes on the configured backoff schedule. On exhaustion the record is
// journaled and the returned error wraps ErrJournaled.
//
// Callers persisting a terminal state should pass a context that is not tied
// to the request that produced the event, so shutdown does not abandon the
// write mid-schedule.
func (s *Store) Put(ctx context.Context, threat *models.Threat) error {
	if threat == nil {
		return errors.New("store: nil threat")
	}
	if threat.EventID == "" || threat.ObservedAt.IsZero() {
		return models.Classify(models.FailureMalformedSource,
			fmt.Errorf("threat record missing identity key (event_id=%q)", threat.EventID))
	}

	operation := func() error {
		return s.putOnce(ctx, threat)
	}

	bo := backoff.NewExponentialBackOff()
	bo.InitialInterval = s.cfg.RetryInitial
	bo.Multiplier = s.cfg.RetryFactor
	bo.MaxElapsedTime = 0 // the attempt cap bounds the schedule

	notify := func(err error, wait time.Duration) {
		s.metrics.RecordStoreRetry()
		s.logger.Warn("retrying threat record write",
			"event_id", threat.EventID,
			"wait", wait,
			"error", err)
	}

	var retries uint64
	if s.cfg.RetryMaxAttempts > 1 {
		retries = uint64(s.cfg.RetryMaxAttempts - 1)
	}

	err := backoff.RetryNotify(operation, backoff.WithContext(backoff.WithMaxRetries(bo, retries), ctx), notify)
	if err == nil {
		return nil
	}

	s.metrics.RecordStoreDLQ()

	if s.journal == nil {
		s.logger.Error("threat record dropped: write retries exhausted and journal disabled",
			"event_id", threat.EventID, "error", err)
		return fmt.Errorf("threat record write exhausted retries (journal disabled): %w", err)
	}
	if jerr := s.journal.append(threat); jerr != nil {
		s.logger.Error("threat record lost: write and journal both failed",
			"event_id", threat.EventID, "write_error", err, "journal_error", jerr)
		return fmt.Errorf("threat record write failed and journaling failed: %w", errors.Join(err, jerr))
	}

	s.logger.Error("threat record journaled after write retries exhausted",
		"event_id", threat.EventID, "error", err)
	return fmt.Errorf("%w: %w", ErrJournaled, err)
}

// Replay feeds journaled records back through the write path, one attempt
// per entry. Records that still fail stay journaled. Returns how many were
// written and how many remain.
func (s *Store) Replay(ctx context.Context) (replayed, remaining int, err error) {
	if s.journal == nil {
		return 0, 0, nil
	}
	replayed, remaining, err = s.journal.replay(ctx, s.putOnce)
	if replayed > 0 || err != nil {
		s.logger.Info("store DLQ replay finished",
			"replayed", replayed, "remaining", remaining, "error", err)
	}
	return replayed, remaining, err
}

// JournalDepth reports how many records are waiting in the DLQ journal.
func (s *Store) JournalDepth() int {
	if s == nil || s.journal == nil {
		return 0
	}
	return s.journal.depth()
}

// JournalPath returns the on-disk location of the DLQ journal, or "" when
// journaling is disabled.
func (s *Store) JournalPath() string {
	if s.journal == nil {
		return ""
	}
	return s.journal.path
}

// putOnce performs a single upsert attempt bounded by the write timeout.
func (s *Store) putOnce(parent context.Context, threat *models.Threat) error {
	ctx, cancel := context.WithTimeout(parent, s.cfg.WriteTimeout)
	defer cancel()

	// Postgres stores timestamps at microsecond precision; truncate so the
	// lookup matches what an earlier insert persisted.
	observed := threat.ObservedAt.Truncate(time.Microsecond)

	existing, err := s.client.ThreatRecord.Query().
		Where(
			threatrecord.EventID(threat.EventID),
			threatrecord.ObservedAt(observed),
		).
		Only(ctx)
	switch {
	case err == nil:
		return s.merge(ctx, existing, threat)
	case ent.IsNotFound(err):
		return s.insert(ctx, observed, threat)
	default:
		return fmt.Errorf("query threat record: %w", err)
	}
}

// insert writes a fresh row carrying whatever enrichment the threat has.
func (s *Store) insert(ctx context.Context, observed time.Time, threat *models.Threat) error {
	create := s.client.ThreatRecord.Create().
		SetID(uuid.NewString()).
		SetEventID(threat.EventID).
		SetObservedAt(observed).
		SetReceivedAt(threat.ReceivedAt).
		SetSource(threat.Source).
		SetAccountID(threat.AccountID).
		SetRegion(threat.Region).
		SetKind(threat.Kind).
		SetSeverity(threatrecord.Severity(threat.Severity)).
		SetStatus(threatrecord.Status(effectiveStatus(threat))).
		SetExpiresAt(time.Now().UTC().Add(s.retention.RecordTTL))

	if threat.RawSeverity != nil {
		create.SetRawSeverity(*threat.RawSeverity)
	}
	if threat.ResourceType != "" {
		create.SetResourceType(threat.ResourceType)
	}
	if threat.ResourceID != "" {
		create.SetResourceID(threat.ResourceID)
	}
	if threat.Details != nil {
		create.SetDetails(threat.Details)
	}

	if v := threat.ML; v != nil {
		create.SetMlThreatScore(v.ThreatScore)
		create.SetMlConfidence(v.Confidence)
		if v.ModelVersion != "" {
			create.SetMlModelVersion(v.ModelVersion)
		}
		if v.FeatureVersion != "" {
			create.SetMlFeatureVersion(v.FeatureVersion)
		}
		if v.Error != "" {
			create.SetMlError(v.Error)
		}
	}

	if v := threat.Triage; v != nil {
		create.SetTriagePriority(v.Priority)
		create.SetTriageBand(threatrecord.TriageBand(v.Band))
		create.SetRecommendedActions(v.RecommendedActions)
		create.SetRequiresHumanReview(v.RequiresHumanReview)
	}

	if v := threat.Analysis; v != nil {
		create.SetAnalysisRiskScore(v.RiskScore)
		create.SetAnalysisConfidence(v.Confidence)
		if v.AttackVector != "" {
			create.SetAnalysisAttackVector(v.AttackVector)
		}
		if v.BusinessImpact != "" {
			create.SetAnalysisBusinessImpact(v.BusinessImpact)
		}
		if v.Summary != "" {
			create.SetAnalysisSummary(v.Summary)
		}
		if v.Error != "" {
			create.SetAnalysisError(v.Error)
		}
	}

	if v := threat.Remediation; v != nil {
		create.SetRemediationAction(string(v.Action))
		create.SetRemediationStatus(threatrecord.RemediationStatus(v.Status))
		create.SetRemediationAttempts(v.Attempts)
		if v.Error != "" {
			create.SetRemediationError(v.Error)
		}
	}

	if threat.NotifiedAt != nil {
		create.SetNotifiedAt(*threat.NotifiedAt)
	}

	if _, err := create.Save(ctx); err != nil {
		if ent.IsConstraintError(err) {
			// Another writer inserted the row between our lookup and this
			// save; the next attempt takes the merge path.
			return fmt.Errorf("concurrent insert for %s: %w", threat.EventID, err)
		}
		return fmt.Errorf("insert threat record: %w", err)
	}
	return nil
}

// merge folds the threat's enrichment into an existing row. Absent envelopes
// leave their columns untouched; present envelopes overwrite them entirely.
// The status predicate makes the monotonic merge optimistic: if another
// writer moved the status first, the save reports not-found and the retry
// recomputes against the fresh row.
func (s *Store) merge(ctx context.Context, existing *ent.ThreatRecord, threat *models.Threat) error {
	merged := models.MergeStatus(models.ThreatStatus(existing.Status), threat.Status)

	update := existing.Update().
		Where(threatrecord.StatusEQ(existing.Status)).
		SetReceivedAt(threat.ReceivedAt).
		SetSeverity(threatrecord.Severity(threat.Severity)).
		SetStatus(threatrecord.Status(merged)).
		SetExpiresAt(time.Now().UTC().Add(s.retention.RecordTTL))

	if threat.RawSeverity != nil {
		update.SetRawSeverity(*threat.RawSeverity)
	}
	if threat.ResourceType != "" {
		update.SetResourceType(threat.ResourceType)
	}
	if threat.ResourceID != "" {
		update.SetResourceID(threat.ResourceID)
	}
	if threat.Details != nil {
		update.SetDetails(threat.Details)
	}

	if v := threat.ML; v != nil {
		update.SetMlThreatScore(v.ThreatScore)
		update.SetMlConfidence(v.Confidence)
		if v.ModelVersion != "" {
			update.SetMlModelVersion(v.ModelVersion)
		} else {
			update.ClearMlModelVersion()
		}
		if v.FeatureVersion != "" {
			update.SetMlFeatureVersion(v.FeatureVersion)
		} else {
			update.ClearMlFeatureVersion()
		}
		if v.Error != "" {
			update.SetMlError(v.Error)
		} else {
			update.ClearMlError()
		}
	}

	if v := threat.Triage; v != nil {
		update.SetTriagePriority(v.Priority)
		update.SetTriageBand(threatrecord.TriageBand(v.Band))
		update.SetRecommendedActions(v.RecommendedActions)
		update.SetRequiresHumanReview(v.RequiresHumanReview)
	}

	if v := threat.Analysis; v != nil {
		update.SetAnalysisRiskScore(v.RiskScore)
		update.SetAnalysisConfidence(v.Confidence)
		if v.AttackVector != "" {
			update.SetAnalysisAttackVector(v.AttackVector)
		} else {
			update.ClearAnalysisAttackVector()
		}
		if v.BusinessImpact != "" {
			update.SetAnalysisBusinessImpact(v.BusinessImpact)
		} else {
			update.ClearAnalysisBusinessImpact()
		}
		if v.Summary != "" {
			update.SetAnalysisSummary(v.Summary)
		} else {
			update.ClearAnalysisSummary()
		}
		if v.Error != "" {
			update.SetAnalysisError(v.Error)
		} else {
			update.ClearAnalysisError()
		}
	}

	if v := threat.Remediation; v != nil {
		update.SetRemediationAction(string(v.Action))
		update.SetRemediationStatus(threatrecord.RemediationStatus(v.Status))
		update.SetRemediationAttempts(v.Attempts)
		if v.Error != "" {
			update.SetRemediationError(v.Error)
		} else {
			update.ClearRemediationError()
		}
	}

	if threat.NotifiedAt != nil {
		update.SetNotifiedAt(*threat.NotifiedAt)
	}

	if _, err := update.Save(ctx); err != nil {
		if ent.IsNotFound(err) {
			return fmt.Errorf("concurrent status change for %s: %w", threat.EventID, err)
		}
		return fmt.Errorf("merge threat record: %w", err)
	}
	return nil
}

func effectiveStatus(threat *models.Threat) models.ThreatStatus {
	if threat.Status == "" {
		return models.StatusStoredOnly
	}
	return threat.Status
}
