package playbook

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"strings"
	"time"

	"github.com/argus-soc/argus/pkg/config"
	"github.com/argus-soc/argus/pkg/metrics"
	"github.com/argus-soc/argus/pkg/version"
)

const (
	// fetchTimeout bounds one playbook fetch. The analyst stage has its own
	// budget; a slow playbook host must not eat it.
	fetchTimeout = 3 * time.Second

	// maxExcerptBytes caps how much playbook text reaches the analyst
	// prompt. Anything past this is cut at the last line boundary.
	maxExcerptBytes = 4096
)

// Fetch result labels for the playbook metrics counter.
const (
	fetchCacheHit = "cache_hit"
	fetchOK       = "fetched"
	fetchMiss     = "miss"
	fetchError    = "error"
)

// Service resolves playbook excerpts by finding kind. A nil *Service is
// valid and resolves nothing, which is how deployments without a playbook
// repository run.
type Service struct {
	cfg     *config.PlaybookConfig
	client  *http.Client
	cache   *cache
	metrics *metrics.PipelineMetrics
	logger  *slog.Logger
}

// NewService creates the playbook service, or nil when no base URL is
// configured.
func NewService(cfg *config.PlaybookConfig, m *metrics.PipelineMetrics) *Service {
	if cfg == nil || cfg.BaseURL == "" {
		slog.Info("Playbook service disabled (no base URL configured)")
		return nil
	}

	cacheTTL := 5 * time.Minute
	if cfg.CacheTTL > 0 {
		cacheTTL = cfg.CacheTTL
	}

	return &Service{
		cfg:     cfg,
		client:  &http.Client{Timeout: fetchTimeout},
		cache:   newCache(cacheTTL),
		metrics: m,
		logger:  slog.With("component", "playbook"),
	}
}

// Excerpt returns the playbook excerpt for a finding kind, or "" when none
// is registered or the fetch failed. Never returns an error: playbooks are
// advisory context, not a processing dependency.
func (s *Service) Excerpt(ctx context.Context, kind string) string {
	if s == nil || kind == "" {
		return ""
	}

	slug := kindSlug(kind)
	if slug == "" {
		return ""
	}

	if content, ok := s.cache.get(slug); ok {
		s.metrics.RecordPlaybookFetch(fetchCacheHit)
		return content
	}

	content, err := s.fetch(ctx, slug)
	if err != nil {
		s.metrics.RecordPlaybookFetch(fetchError)
		s.logger.Warn("Playbook fetch failed, continuing without",
			"kind", kind,
			"error", err)
		return ""
	}
	if content == "" {
		s.metrics.RecordPlaybookFetch(fetchMiss)
		// Negative result is cached too: unknown kinds repeat.
		s.cache.set(slug, "")
		return ""
	}

	s.metrics.RecordPlaybookFetch(fetchOK)
	s.cache.set(slug, content)
	return content
}

// fetch retrieves {base_url}/{slug}.md. A 404 is a clean miss; anything
// else unhealthy is an error.
func (s *Service) fetch(ctx context.Context, slug string) (string, error) {
	playbookURL := convertToRawURL(strings.TrimSuffix(s.cfg.BaseURL, "/") + "/" + slug + ".md")
	if err := validatePlaybookURL(playbookURL, s.cfg.AllowedDomains); err != nil {
		return "", err
	}

	ctx, cancel := context.WithTimeout(ctx, fetchTimeout)
	defer cancel()

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, playbookURL, nil)
	if err != nil {
		return "", fmt.Errorf("building playbook request: %w", err)
	}
	req.Header.Set("User-Agent", version.Full())

	resp, err := s.client.Do(req)
	if err != nil {
		return "", fmt.Errorf("fetching playbook: %w", err)
	}
	defer func() { _ = resp.Body.Close() }()

	if resp.StatusCode == http.StatusNotFound {
		return "", nil
	}
	if resp.StatusCode != http.StatusOK {
		return "", fmt.Errorf("playbook host returned %s for %s", resp.Status, playbookURL)
	}

	body, err := io.ReadAll(io.LimitReader(resp.Body, maxExcerptBytes+1))
	if err != nil {
		return "", fmt.Errorf("reading playbook: %w", err)
	}

	return excerpt(string(body)), nil
}

// excerpt trims the playbook to the prompt budget, cutting at the last
// full line so the analyst never sees a truncated sentence mid-word.
func excerpt(content string) string {
	content = strings.TrimSpace(content)
	if len(content) <= maxExcerptBytes {
		return content
	}
	cut := content[:maxExcerptBytes]
	if idx := strings.LastIndexByte(cut, '\n'); idx > 0 {
		cut = cut[:idx]
	}
	return strings.TrimSpace(cut)
}
