package e2e

import (
	"context"
	"net"
	"net/http"
	"path/filepath"
	"testing"
	"time"

	"github.com/alicebob/miniredis/v2"
	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/require"

	"github.com/argus-soc/argus/pkg/api"
	"github.com/argus-soc/argus/pkg/config"
	"github.com/argus-soc/argus/pkg/database"
	"github.com/argus-soc/argus/pkg/events"
	"github.com/argus-soc/argus/pkg/masking"
	"github.com/argus-soc/argus/pkg/metrics"
	"github.com/argus-soc/argus/pkg/models"
	"github.com/argus-soc/argus/pkg/notifier"
	"github.com/argus-soc/argus/pkg/oracle"
	"github.com/argus-soc/argus/pkg/pipeline"
	"github.com/argus-soc/argus/pkg/playbook"
	"github.com/argus-soc/argus/pkg/remediation"
	"github.com/argus-soc/argus/pkg/services"
	"github.com/argus-soc/argus/pkg/store"
	testdb "github.com/argus-soc/argus/test/database"
)

// TestApp is a fully wired Argus instance for one test: the real pipeline
// and HTTP API in front of a per-test Postgres schema, with the outbound
// surfaces (ML inference, Anthropic API, effector webhook, playbook host)
// replaced by scripted doubles. The production clients still do the
// talking, so their retry and degradation paths are part of every run.
type TestApp struct {
	t *testing.T

	Config   *config.Config
	DBClient *database.Client
	Policy   *config.PolicyStore
	Pipeline *pipeline.Pipeline
	Store    *store.Store
	Warnings *services.SystemWarningsService

	Scorer    *ScorerMock
	Analyst   *AnalystMock
	Effector  *EffectorMock
	Playbooks *PlaybookMock
	Redis     *miniredis.Miniredis // nil unless WithRedis

	// BaseURL is the API root, e.g. http://127.0.0.1:41234.
	BaseURL string
}

type testAppOptions struct {
	mutators []func(*config.Config)
	dbClient *database.Client
	redis    bool
}

// TestAppOption customizes NewTestApp.
type TestAppOption func(*testAppOptions)

// WithConfig applies mutate after the test defaults are in place.
func WithConfig(mutate func(*config.Config)) TestAppOption {
	return func(o *testAppOptions) { o.mutators = append(o.mutators, mutate) }
}

// WithPolicy sets the initial action policy.
func WithPolicy(policy config.ActionPolicy) TestAppOption {
	return WithConfig(func(cfg *config.Config) { cfg.Triage.ActionPolicy = policy })
}

// WithWorkerCount sets the pipeline worker (and bus partition) count.
func WithWorkerCount(n int) TestAppOption {
	return WithConfig(func(cfg *config.Config) { cfg.Pipeline.MaxConcurrentEvents = n })
}

// WithDBClient reuses an existing database client instead of provisioning
// a fresh schema. Restart tests use it to run two app instances against
// one schema.
func WithDBClient(client *database.Client) TestAppOption {
	return func(o *testAppOptions) { o.dbClient = client }
}

// WithRedis backs the event publisher with an in-process Redis.
func WithRedis() TestAppOption {
	return func(o *testAppOptions) { o.redis = true }
}

// NewTestApp boots the service and tears it down with the test. Shutdown
// runs in reverse order of construction: HTTP server, journal monitor,
// pipeline drain, publisher.
func NewTestApp(t *testing.T, opts ...TestAppOption) *TestApp {
	t.Helper()
	gin.SetMode(gin.TestMode)

	options := &testAppOptions{}
	for _, opt := range opts {
		opt(options)
	}

	scorerMock := NewScorerMock()
	t.Cleanup(scorerMock.Close)
	analystMock := NewAnalystMock()
	t.Cleanup(analystMock.Close)
	effectorMock := NewEffectorMock()
	t.Cleanup(effectorMock.Close)
	playbookMock := NewPlaybookMock()
	t.Cleanup(playbookMock.Close)

	// The analyst reads its key from the environment, same as production.
	t.Setenv("ARGUS_E2E_ANTHROPIC_KEY", "test-key")

	cfg := defaultTestConfig(t, scorerMock.URL(), analystMock.URL(), effectorMock.URL(), playbookMock.URL())

	var mr *miniredis.Miniredis
	if options.redis {
		mr = miniredis.RunT(t)
		cfg.Redis.Enabled = true
		cfg.Redis.Addr = mr.Addr()
	}

	for _, mutate := range options.mutators {
		mutate(cfg)
	}

	dbClient := options.dbClient
	if dbClient == nil {
		dbClient = testdb.NewTestClient(t)
	}

	policy, err := config.NewPolicyStore(cfg.Triage.ActionPolicy)
	require.NoError(t, err, "initial action policy must be valid")

	m := metrics.NewPipelineMetrics()
	maskingService := masking.NewService(cfg.Defaults.Masking)
	recordStore := store.New(dbClient, cfg.Store, cfg.Retention, m)
	playbooks := playbook.NewService(cfg.Playbooks, m)

	oracleConcurrency := int64(cfg.Pipeline.OracleConcurrency)
	scorer := oracle.NewHTTPScorer(cfg.Oracles.Scorer, oracleConcurrency, m)
	analyst := oracle.NewClaudeAnalyst(cfg.Oracles.Analyst, oracleConcurrency, m)

	// Slack stays unwired. The notifier treats missing delivery as a
	// successful no-op, which keeps NOTIFIED transitions observable
	// without a chat backend; delivery itself is covered at unit level.
	alertNotifier := notifier.New(cfg.Notifier, nil, m)

	var effector remediation.Effector
	if webhook := remediation.NewWebhookEffector(cfg.Remediation); webhook != nil {
		effector = webhook
	}
	remediator := remediation.NewExecutor(cfg.Remediation, effector, m)

	publisher := events.NewPublisher(cfg.Redis)

	pl := pipeline.New(cfg.Pipeline, cfg.Triage, pipeline.Deps{
		Scorer:     scorer,
		Analyst:    analyst,
		Remediator: remediator,
		Notifier:   alertNotifier,
		Store:      recordStore,
		Policy:     policy,
		Masker:     maskingService,
		Playbooks:  playbooks,
		Publisher:  publisher,
		Metrics:    m,
	})

	appCtx, cancel := context.WithCancel(context.Background())
	pl.Start(appCtx)

	warningsService := services.NewSystemWarningsService()
	ingestService := services.NewIngestService(pl)
	threatService := services.NewThreatService(dbClient.Client)
	dlqService := services.NewDLQService(pl, recordStore)

	// Tight interval so journal warnings surface within a test's patience.
	journalMonitor := store.NewJournalMonitor(recordStore, warningsService, 100*time.Millisecond)
	journalMonitor.Start(appCtx)

	server := api.NewServer(dbClient, ingestService, threatService, dlqService, pl, policy)
	server.SetWarningsService(warningsService)

	ln, err := net.Listen("tcp", "127.0.0.1:0")
	require.NoError(t, err, "binding test listener")

	go func() {
		if serveErr := server.StartWithListener(ln); serveErr != nil && serveErr != http.ErrServerClosed {
			t.Logf("test server exited: %v", serveErr)
		}
	}()

	t.Cleanup(func() {
		shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer shutdownCancel()
		_ = server.Shutdown(shutdownCtx)
		journalMonitor.Stop()
		pl.Stop()
		cancel()
		_ = publisher.Close()
	})

	return &TestApp{
		t:         t,
		Config:    cfg,
		DBClient:  dbClient,
		Policy:    policy,
		Pipeline:  pl,
		Store:     recordStore,
		Warnings:  warningsService,
		Scorer:    scorerMock,
		Analyst:   analystMock,
		Effector:  effectorMock,
		Playbooks: playbookMock,
		Redis:     mr,
		BaseURL:   "http://" + ln.Addr().String(),
	}
}

// defaultTestConfig mirrors the production defaults with the knobs turned
// for tests: short retry schedules and deadlines, a journal under the
// test's temp dir, and every outbound endpoint pointed at a double.
func defaultTestConfig(t *testing.T, scorerURL, analystURL, effectorURL, playbookURL string) *config.Config {
	t.Helper()

	pipelineCfg := config.DefaultPipelineConfig()
	pipelineCfg.BusCapacity = 64
	pipelineCfg.MaxConcurrentEvents = 4
	pipelineCfg.OracleConcurrency = 8
	pipelineCfg.EventDeadline = 10 * time.Second
	pipelineCfg.GracefulShutdownTimeout = 5 * time.Second
	pipelineCfg.DLQCapacity = 32

	scorerCfg := config.DefaultScorerConfig()
	scorerCfg.Endpoint = scorerURL + "/score"
	scorerCfg.Timeout = 2 * time.Second
	scorerCfg.RetryInitial = 10 * time.Millisecond
	scorerCfg.RetryMaxAttempts = 3

	analystCfg := config.DefaultAnalystConfig()
	analystCfg.APIKeyEnv = "ARGUS_E2E_ANTHROPIC_KEY"
	analystCfg.BaseURL = analystURL
	analystCfg.Timeout = 2 * time.Second

	storeCfg := config.DefaultStoreConfig()
	storeCfg.WriteTimeout = 2 * time.Second
	storeCfg.RetryInitial = 10 * time.Millisecond
	storeCfg.RetryMaxAttempts = 2
	storeCfg.JournalPath = filepath.Join(t.TempDir(), "store-dlq.jsonl")

	remediationCfg := config.DefaultRemediationConfig()
	remediationCfg.Endpoint = effectorURL
	remediationCfg.EffectorTimeout = 2 * time.Second
	remediationCfg.Actions = []config.ActionRule{
		{Source: models.SourceGuardDuty, KindPrefix: "UnauthorizedAccess", Action: config.ActionDisableCredential},
	}

	return &config.Config{
		Defaults: &config.Defaults{
			Masking: &config.MaskingDefaults{Enabled: true, PatternGroup: "security"},
		},
		Pipeline:    pipelineCfg,
		Triage:      config.DefaultTriageConfig(),
		Oracles:     &config.OracleConfig{Scorer: scorerCfg, Analyst: analystCfg},
		Remediation: remediationCfg,
		Notifier:    config.DefaultNotifierConfig(),
		Slack:       &config.SlackConfig{},
		Redis:       &config.RedisConfig{Stream: "argus:threats", MaxLen: 1000},
		Store:       storeCfg,
		Playbooks: &config.PlaybookConfig{
			BaseURL:        playbookURL,
			CacheTTL:       time.Minute,
			AllowedDomains: []string{"127.0.0.1"},
		},
		Retention: config.DefaultRetentionConfig(),
	}
}
