package remediation

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"

	"github.com/argus-soc/argus/pkg/config"
	"github.com/argus-soc/argus/pkg/models"
	"github.com/argus-soc/argus/pkg/version"
)

// maxWebhookResponseBytes caps how much of a runner response we read when
// building an error message.
const maxWebhookResponseBytes = 4 * 1024

// actionRequest is the wire payload posted to the automation runner. The
// idempotency key repeats the (event_id, action) pair so the runner can
// drop duplicates without parsing the body.
type actionRequest struct {
	EventID      string `json:"event_id"`
	Action       string `json:"action"`
	Source       string `json:"source"`
	Kind         string `json:"kind"`
	AccountID    string `json:"account_id"`
	Region       string `json:"region"`
	ResourceType string `json:"resource_type,omitempty"`
	ResourceID   string `json:"resource_id,omitempty"`
}

// WebhookEffector posts actions to an automation runner over HTTP. The
// runner owns cloud credentials and the actual mutation; this side owns
// retries and idempotency keys.
type WebhookEffector struct {
	endpoint string
	client   *http.Client
}

// NewWebhookEffector creates an effector for the given runner endpoint, or
// nil when none is configured.
func NewWebhookEffector(cfg *config.RemediationConfig) *WebhookEffector {
	if cfg == nil || cfg.Endpoint == "" {
		return nil
	}
	return &WebhookEffector{
		endpoint: cfg.Endpoint,
		client:   &http.Client{},
	}
}

// Apply posts one action. Any non-2xx response is an error; the executor
// decides whether to retry.
func (w *WebhookEffector) Apply(ctx context.Context, threat *models.Threat, action config.ActionKind) error {
	payload, err := json.Marshal(actionRequest{
		EventID:      threat.EventID,
		Action:       string(action),
		Source:       threat.Source,
		Kind:         threat.Kind,
		AccountID:    threat.AccountID,
		Region:       threat.Region,
		ResourceType: threat.ResourceType,
		ResourceID:   threat.ResourceID,
	})
	if err != nil {
		return fmt.Errorf("encoding action request: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, w.endpoint, bytes.NewReader(payload))
	if err != nil {
		return fmt.Errorf("building action request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("User-Agent", version.Full())
	req.Header.Set("Idempotency-Key", threat.EventID+"/"+string(action))

	resp, err := w.client.Do(req)
	if err != nil {
		return fmt.Errorf("calling automation runner: %w", err)
	}
	defer func() { _ = resp.Body.Close() }()

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		body, _ := io.ReadAll(io.LimitReader(resp.Body, maxWebhookResponseBytes))
		return fmt.Errorf("automation runner returned %s: %s", resp.Status, bytes.TrimSpace(body))
	}
	return nil
}
