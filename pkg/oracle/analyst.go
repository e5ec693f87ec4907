package oracle

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"os"
	"strings"
	"time"

	"github.com/anthropics/anthropic-sdk-go"
	"github.com/anthropics/anthropic-sdk-go/option"
	"golang.org/x/sync/semaphore"

	"github.com/argus-soc/argus/pkg/config"
	"github.com/argus-soc/argus/pkg/metrics"
	"github.com/argus-soc/argus/pkg/models"
)

// ClaudeAnalyst is the deep-analysis oracle. It is consulted only for
// events whose priority crossed the warn gate, and it never fails an
// event: timeouts and unparseable responses degrade to a zero report with
// the error marker set.
type ClaudeAnalyst struct {
	cfg     *config.AnalystConfig
	client  anthropic.Client
	sem     *semaphore.Weighted
	metrics *metrics.PipelineMetrics
	logger  *slog.Logger
}

// NewClaudeAnalyst creates the analyst client. The API key is read from
// the configured environment variable; base URL override is for tests and
// gateways. concurrency caps in-flight calls across all workers.
func NewClaudeAnalyst(cfg *config.AnalystConfig, concurrency int64, m *metrics.PipelineMetrics) *ClaudeAnalyst {
	if cfg == nil {
		panic("analyst config is required")
	}
	if concurrency < 1 {
		concurrency = 1
	}

	// Retry policy lives in Analyze, not in the transport: the SDK's own
	// 5xx retries would stack on top of ours and blow the stage budget.
	opts := []option.RequestOption{option.WithMaxRetries(0)}
	if key := os.Getenv(cfg.APIKeyEnv); key != "" {
		opts = append(opts, option.WithAPIKey(key))
	}
	if cfg.BaseURL != "" {
		opts = append(opts, option.WithBaseURL(cfg.BaseURL))
	}

	return &ClaudeAnalyst{
		cfg:     cfg,
		client:  anthropic.NewClient(opts...),
		sem:     semaphore.NewWeighted(concurrency),
		metrics: m,
		logger:  slog.With("component", "oracle.analyst"),
	}
}

// Analyze asks the model for a structured risk report on threat. Always
// returns a report: a degraded one (zero scores, attack_vector "unknown",
// Error set to "timeout" or "parse_failed") when the model could not be
// reached or kept answering outside the output contract.
func (a *ClaudeAnalyst) Analyze(ctx context.Context, threat *models.Threat, playbookExcerpt string) *models.AnalysisReport {
	ctx, cancel := context.WithTimeout(ctx, a.cfg.Timeout)
	defer cancel()

	if err := a.sem.Acquire(ctx, 1); err != nil {
		return a.degraded(threat, models.AnalysisErrorTimeout, err)
	}
	defer a.sem.Release(1)

	prompt := buildAnalysisPrompt(threat, playbookExcerpt)

	var lastErr error
	for attempt := 0; attempt <= a.cfg.Retries; attempt++ {
		if attempt > 0 {
			a.metrics.RecordOracleRetry(metrics.OracleAnalyst)
			a.logger.Warn("Retrying deep analysis",
				"event_id", threat.EventID,
				"attempt", attempt+1,
				"error", lastErr)
		}

		report, err := a.invoke(ctx, prompt)
		if err == nil {
			a.logger.Info("Deep analysis completed",
				"event_id", threat.EventID,
				"risk_score", report.RiskScore,
				"attack_vector", report.AttackVector)
			return report
		}
		lastErr = err

		// Out of budget: a retry would just burn the caller's deadline.
		if ctx.Err() != nil {
			break
		}
	}

	marker := models.AnalysisErrorTimeout
	if errors.Is(lastErr, errParseFailed) {
		marker = models.AnalysisErrorParseFailed
	}
	return a.degraded(threat, marker, lastErr)
}

// invoke performs one model call and parses the response.
func (a *ClaudeAnalyst) invoke(ctx context.Context, prompt string) (*models.AnalysisReport, error) {
	msg, err := a.client.Messages.New(ctx, anthropic.MessageNewParams{
		Model:     anthropic.Model(a.cfg.Model),
		MaxTokens: int64(a.cfg.MaxTokens),
		System:    []anthropic.TextBlockParam{{Text: analysisSystemPrompt}},
		Messages:  []anthropic.MessageParam{anthropic.NewUserMessage(anthropic.NewTextBlock(prompt))},
	})
	if err != nil {
		return nil, fmt.Errorf("calling analyst model: %w", err)
	}

	var text strings.Builder
	for _, block := range msg.Content {
		if block.Type == "text" {
			text.WriteString(block.Text)
		}
	}
	if text.Len() == 0 {
		return nil, fmt.Errorf("%w: response had no text blocks", errParseFailed)
	}

	return parseAnalysisReport(text.String())
}

// degraded builds the fallback report. RiskScore 0 with Error set; the
// pipeline stores it and moves on.
func (a *ClaudeAnalyst) degraded(threat *models.Threat, marker string, err error) *models.AnalysisReport {
	a.metrics.RecordOracleDegraded(metrics.OracleAnalyst, marker)
	a.logger.Error("Deep analysis degraded",
		"event_id", threat.EventID,
		"marker", marker,
		"error", err)
	return &models.AnalysisReport{
		AttackVector:       "unknown",
		RecommendedActions: []string{},
		AnalyzedAt:         time.Now(),
		Error:              marker,
	}
}
