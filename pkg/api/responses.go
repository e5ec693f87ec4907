package api

import (
	"github.com/argus-soc/argus/pkg/models"
)

// LivenessResponse is returned by GET /healthz.
type LivenessResponse struct {
	Status  string `json:"status"`
	Version string `json:"version"`
}

// ThreatHistoryResponse is returned by GET /api/v1/threats/:event_id.
// Records hold every stored revision of the event, newest first.
type ThreatHistoryResponse struct {
	EventID string                   `json:"event_id"`
	Records []*models.ThreatResponse `json:"records"`
}

// SystemWarningsResponse is returned by GET /api/v1/admin/warnings.
type SystemWarningsResponse struct {
	Warnings []SystemWarningItem `json:"warnings"`
}

// SystemWarningItem is a single system warning.
type SystemWarningItem struct {
	ID        string `json:"id"`
	Category  string `json:"category"`
	Message   string `json:"message"`
	Details   string `json:"details"`
	Scope     string `json:"scope,omitempty"`
	CreatedAt string `json:"created_at"`
}
