package oracle

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"time"

	"github.com/cenkalti/backoff/v4"
	"golang.org/x/sync/semaphore"

	"github.com/argus-soc/argus/pkg/config"
	"github.com/argus-soc/argus/pkg/metrics"
	"github.com/argus-soc/argus/pkg/models"
	"github.com/argus-soc/argus/pkg/version"
)

const (
	// scorerAttemptTimeout bounds a single HTTP call so a hung connection
	// cannot eat the whole scoring budget before the first retry.
	scorerAttemptTimeout = 2 * time.Second

	// maxScorerResponseBytes caps how much of an inference response we
	// read. Verdicts are tiny; anything larger is a misbehaving endpoint.
	maxScorerResponseBytes = 64 * 1024
)

// scoreRequest is the wire payload sent to the inference endpoint.
type scoreRequest struct {
	EventID        string        `json:"event_id"`
	FeatureVersion string        `json:"feature_version"`
	Features       FeatureVector `json:"features"`
}

// scoreResponse is the inference endpoint's verdict.
type scoreResponse struct {
	ThreatScore  float64 `json:"threat_score"`
	Confidence   float64 `json:"confidence"`
	ModelVersion string  `json:"model_version"`
}

// HTTPScorer calls the ML inference endpoint over HTTP. Transient failures
// (timeouts, connection errors, 5xx) are retried on an exponential schedule
// inside the scoring budget; exhaustion degrades to a zero verdict with
// Error set so the event keeps moving. A 4xx means the feature payload does
// not match the model schema — that is permanent and fails the event.
type HTTPScorer struct {
	cfg     *config.ScorerConfig
	client  *http.Client
	sem     *semaphore.Weighted
	metrics *metrics.PipelineMetrics
	logger  *slog.Logger
}

// NewHTTPScorer creates a scorer client. concurrency caps in-flight calls
// across all pipeline workers.
func NewHTTPScorer(cfg *config.ScorerConfig, concurrency int64, m *metrics.PipelineMetrics) *HTTPScorer {
	if cfg == nil {
		panic("scorer config is required")
	}
	if concurrency < 1 {
		concurrency = 1
	}
	return &HTTPScorer{
		cfg:     cfg,
		client:  &http.Client{},
		sem:     semaphore.NewWeighted(concurrency),
		metrics: m,
		logger:  slog.With("component", "oracle.scorer"),
	}
}

// Score extracts the feature vector for event and asks the inference
// endpoint for a verdict. The returned error is non-nil only for permanent
// failures (schema mismatch); everything else degrades.
func (s *HTTPScorer) Score(ctx context.Context, event *models.NormalizedEvent) (*models.MLVerdict, error) {
	ctx, cancel := context.WithTimeout(ctx, s.cfg.Timeout)
	defer cancel()

	if err := s.sem.Acquire(ctx, 1); err != nil {
		return s.degraded(event, "saturated", err), nil
	}
	defer s.sem.Release(1)

	payload, err := json.Marshal(scoreRequest{
		EventID:        event.EventID,
		FeatureVersion: s.cfg.FeatureVersion,
		Features:       ExtractFeatures(event),
	})
	if err != nil {
		return nil, fmt.Errorf("encoding score request: %w", err)
	}

	bo := backoff.NewExponentialBackOff()
	bo.InitialInterval = s.cfg.RetryInitial
	bo.Multiplier = s.cfg.RetryFactor
	bo.MaxElapsedTime = s.cfg.Timeout

	var verdict scoreResponse
	operation := func() error {
		return s.invoke(ctx, payload, &verdict)
	}
	notify := func(err error, next time.Duration) {
		s.metrics.RecordOracleRetry(metrics.OracleScorer)
		s.logger.Warn("Scorer call failed, retrying",
			"event_id", event.EventID,
			"next_retry_in", next,
			"error", err)
	}

	maxRetries := uint64(0)
	if s.cfg.RetryMaxAttempts > 1 {
		maxRetries = uint64(s.cfg.RetryMaxAttempts - 1)
	}
	err = backoff.RetryNotify(operation, backoff.WithContext(backoff.WithMaxRetries(bo, maxRetries), ctx), notify)
	if err != nil {
		if models.ClassOf(err) == models.FailureMalformedSource {
			// Schema mismatch: retrying the same payload can never succeed.
			return nil, err
		}
		return s.degraded(event, "exhausted", err), nil
	}

	return &models.MLVerdict{
		ThreatScore:    verdict.ThreatScore,
		Confidence:     verdict.Confidence,
		ModelVersion:   verdict.ModelVersion,
		FeatureVersion: s.cfg.FeatureVersion,
		ScoredAt:       time.Now(),
	}, nil
}

// invoke performs one HTTP attempt. Permanent errors are wrapped with
// backoff.Permanent so the retry loop stops immediately.
func (s *HTTPScorer) invoke(ctx context.Context, payload []byte, out *scoreResponse) error {
	attemptCtx, cancel := context.WithTimeout(ctx, scorerAttemptTimeout)
	defer cancel()

	req, err := http.NewRequestWithContext(attemptCtx, http.MethodPost, s.cfg.Endpoint, bytes.NewReader(payload))
	if err != nil {
		return backoff.Permanent(fmt.Errorf("building score request: %w", err))
	}
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("User-Agent", version.Full())

	resp, err := s.client.Do(req)
	if err != nil {
		return fmt.Errorf("calling scorer: %w", err)
	}
	defer func() { _ = resp.Body.Close() }()

	body, err := io.ReadAll(io.LimitReader(resp.Body, maxScorerResponseBytes))
	if err != nil {
		return fmt.Errorf("reading scorer response: %w", err)
	}

	switch {
	case resp.StatusCode >= 200 && resp.StatusCode < 300:
		// Decoded below.
	case resp.StatusCode >= 400 && resp.StatusCode < 500:
		return backoff.Permanent(models.Classify(models.FailureMalformedSource,
			fmt.Errorf("scorer rejected feature payload: %s", resp.Status)))
	default:
		return fmt.Errorf("scorer returned %s", resp.Status)
	}

	if err := json.Unmarshal(body, out); err != nil {
		return fmt.Errorf("decoding scorer response: %w", err)
	}
	return nil
}

// degraded builds the zero verdict recorded when scoring gave up. The
// pipeline continues with it; triage sees threat_score 0.
func (s *HTTPScorer) degraded(event *models.NormalizedEvent, reason string, err error) *models.MLVerdict {
	s.metrics.RecordOracleDegraded(metrics.OracleScorer, reason)
	s.logger.Error("Scoring degraded to zero verdict",
		"event_id", event.EventID,
		"reason", reason,
		"error", err)
	return &models.MLVerdict{
		FeatureVersion: s.cfg.FeatureVersion,
		ScoredAt:       time.Now(),
		Error:          err.Error(),
	}
}
