// Argus pipeline server — ingests raw security findings over HTTP, drives
// them through scoring, triage, gated analysis and remediation, and serves
// the dashboard read API over the stored results.
package main

import (
	"context"
	"flag"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"path/filepath"
	"syscall"
	"time"

	"github.com/joho/godotenv"

	"github.com/argus-soc/argus/pkg/api"
	"github.com/argus-soc/argus/pkg/cleanup"
	"github.com/argus-soc/argus/pkg/config"
	"github.com/argus-soc/argus/pkg/database"
	"github.com/argus-soc/argus/pkg/events"
	"github.com/argus-soc/argus/pkg/masking"
	"github.com/argus-soc/argus/pkg/metrics"
	"github.com/argus-soc/argus/pkg/notifier"
	"github.com/argus-soc/argus/pkg/oracle"
	"github.com/argus-soc/argus/pkg/pipeline"
	"github.com/argus-soc/argus/pkg/playbook"
	"github.com/argus-soc/argus/pkg/remediation"
	"github.com/argus-soc/argus/pkg/services"
	"github.com/argus-soc/argus/pkg/slack"
	"github.com/argus-soc/argus/pkg/store"
	"github.com/argus-soc/argus/pkg/version"
)

func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

func main() {
	// Parse command-line flags
	configDir := flag.String("config-dir",
		getEnv("CONFIG_DIR", "./deploy/config"),
		"Path to configuration directory")
	flag.Parse()

	// Load .env file from config directory
	envPath := filepath.Join(*configDir, ".env")
	if err := godotenv.Load(envPath); err != nil {
		slog.Warn("Could not load .env file, continuing with existing environment",
			"path", envPath, "error", err)
	} else {
		slog.Info("Loaded environment", "path", envPath)
	}

	httpPort := getEnv("HTTP_PORT", "8080")

	slog.Info("Starting Argus",
		"version", version.Full(),
		"http_port", httpPort,
		"config_dir", *configDir)

	ctx := context.Background()

	// 1. Initialize configuration
	cfg, err := config.Initialize(ctx, *configDir)
	if err != nil {
		slog.Error("Failed to initialize configuration", "error", err)
		os.Exit(1)
	}

	// 2. Initialize database
	dbConfig, err := database.LoadConfigFromEnv()
	if err != nil {
		slog.Error("Failed to load database config", "error", err)
		os.Exit(1)
	}

	dbClient, err := database.NewClient(ctx, dbConfig)
	if err != nil {
		slog.Error("Failed to connect to database", "error", err)
		os.Exit(1)
	}
	defer func() {
		if err := dbClient.Close(); err != nil {
			slog.Error("Error closing database client", "error", err)
		}
	}()
	slog.Info("Connected to PostgreSQL database")

	// 3. Live action policy: seeded from YAML, switched at runtime through
	// the admin API or an edited config file.
	policy, err := config.NewPolicyStore(cfg.Triage.ActionPolicy)
	if err != nil {
		slog.Error("Failed to create policy store", "error", err)
		os.Exit(1)
	}
	stopWatch, err := config.WatchPolicy(ctx, *configDir, policy)
	if err != nil {
		slog.Warn("Policy file watcher unavailable, runtime changes only via the admin API",
			"error", err)
	} else {
		defer stopWatch()
	}

	// 4. Stage components
	pipelineMetrics := metrics.NewPipelineMetrics()
	maskingService := masking.NewService(cfg.Defaults.Masking)
	recordStore := store.New(dbClient, cfg.Store, cfg.Retention, pipelineMetrics)
	playbooks := playbook.NewService(cfg.Playbooks, pipelineMetrics)

	oracleConcurrency := int64(cfg.Pipeline.OracleConcurrency)
	scorer := oracle.NewHTTPScorer(cfg.Oracles.Scorer, oracleConcurrency, pipelineMetrics)
	analyst := oracle.NewClaudeAnalyst(cfg.Oracles.Analyst, oracleConcurrency, pipelineMetrics)

	var slackSvc *slack.Service
	if cfg.Slack != nil && cfg.Slack.Enabled {
		slackSvc = slack.NewService(slack.ServiceConfig{
			Token:        os.Getenv(cfg.Slack.TokenEnv),
			Channel:      cfg.Slack.Channel,
			DashboardURL: cfg.DashboardURL,
		})
		if slackSvc == nil {
			slog.Warn("Slack enabled but token or channel missing, alerts will not leave the process")
		}
	}
	alertNotifier := notifier.New(cfg.Notifier, slackSvc, pipelineMetrics)

	// Keep the effector interface nil when no endpoint is configured; a
	// typed nil would defeat the executor's missing-effector check.
	var effector remediation.Effector
	if webhook := remediation.NewWebhookEffector(cfg.Remediation); webhook != nil {
		effector = webhook
	}
	remediator := remediation.NewExecutor(cfg.Remediation, effector, pipelineMetrics)

	publisher := events.NewPublisher(cfg.Redis)
	defer func() {
		if err := publisher.Close(); err != nil {
			slog.Error("Error closing event publisher", "error", err)
		}
	}()

	// 5. Assemble and start the pipeline
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
		Metrics:    pipelineMetrics,
	})
	pl.Start(ctx)

	// 6. Dashboard and admin services
	warningsService := services.NewSystemWarningsService()
	ingestService := services.NewIngestService(pl)
	threatService := services.NewThreatService(dbClient.Client)
	dlqService := services.NewDLQService(pl, recordStore)
	slog.Info("Services initialized")

	// 7. Background maintenance
	journalMonitor := store.NewJournalMonitor(recordStore, warningsService, 0)
	journalMonitor.Start(ctx)
	defer journalMonitor.Stop()

	sweeper := cleanup.NewService(dbClient.Client, cfg.Retention)
	sweeper.Start(ctx)
	defer sweeper.Stop()

	// 8. Create and start the HTTP server (non-blocking)
	httpServer := api.NewServer(dbClient, ingestService, threatService, dlqService, pl, policy)
	httpServer.SetWarningsService(warningsService)

	errCh := make(chan error, 1)
	go func() {
		addr := ":" + httpPort
		slog.Info("HTTP server listening", "addr", addr)
		if err := httpServer.Start(addr); err != nil && err != http.ErrServerClosed {
			slog.Error("HTTP server error", "error", err)
			errCh <- err
		}
	}()

	slog.Info("Argus started successfully")

	// 9. Wait for shutdown signal or server error
	sigCh := make(chan os.Signal, 1)
	signal.Notify(sigCh, syscall.SIGTERM, syscall.SIGINT)

	select {
	case sig := <-sigCh:
		slog.Info("Shutdown signal received", "signal", sig)
	case err := <-errCh:
		slog.Error("Server error triggered shutdown", "error", err)
	}

	// 10. Graceful shutdown. Drain the pipeline first: ingress rejects new
	// findings while queued events run to a terminal state. The drain bounds
	// itself with the configured graceful window.
	pl.Stop()

	// Stop HTTP server with its own timeout budget
	httpShutdownCtx, httpCancel := context.WithTimeout(ctx, 5*time.Second)
	defer httpCancel()
	if err := httpServer.Shutdown(httpShutdownCtx); err != nil {
		slog.Error("HTTP server shutdown error", "error", err)
	}

	slog.Info("Shutdown complete")
}
