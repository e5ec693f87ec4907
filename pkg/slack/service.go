package slack

import (
	"context"
	"log/slog"
	"time"

	"github.com/argus-soc/argus/pkg/models"
)

// sendTimeout bounds one chat.postMessage call. The notifier's circuit
// breaker handles a Slack that is down; this handles one that is slow.
const sendTimeout = 5 * time.Second

// ServiceConfig holds the parameters needed to construct a Service.
type ServiceConfig struct {
	Token        string
	Channel      string
	DashboardURL string
}

// Service handles Slack alert delivery.
// Nil-safe: a nil service accepts every alert and delivers nothing, which
// is how deployments without Slack run.
type Service struct {
	client       *Client
	dashboardURL string
	logger       *slog.Logger
}

// NewService creates a new Slack alert service.
// Returns nil if Token or Channel is empty.
func NewService(cfg ServiceConfig) *Service {
	if cfg.Token == "" || cfg.Channel == "" {
		return nil
	}
	return &Service{
		client:       NewClient(cfg.Token, cfg.Channel),
		dashboardURL: cfg.DashboardURL,
		logger:       slog.Default().With("component", "slack-service"),
	}
}

// NewServiceWithClient creates a Service backed by a pre-built Client.
// Useful for testing with a mock API server.
func NewServiceWithClient(client *Client, dashboardURL string) *Service {
	return &Service{
		client:       client,
		dashboardURL: dashboardURL,
		logger:       slog.Default().With("component", "slack-service"),
	}
}

// SendAlert posts one threat alert to the configured channel. The error is
// returned rather than swallowed: the caller's circuit breaker needs to
// see delivery failures.
func (s *Service) SendAlert(ctx context.Context, alert *models.Alert) error {
	if s == nil {
		return nil
	}

	blocks := BuildAlertMessage(alert, s.dashboardURL)
	if err := s.client.PostMessage(ctx, blocks, sendTimeout); err != nil {
		s.logger.Error("Failed to send Slack alert",
			"event_id", alert.EventID,
			"band", alert.Band,
			"error", err)
		return err
	}

	s.logger.Info("Slack alert sent",
		"event_id", alert.EventID,
		"band", alert.Band)
	return nil
}
