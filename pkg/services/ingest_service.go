package services

import (
	"context"
	"encoding/json"
	"strings"

	"github.com/argus-soc/argus/pkg/models"
)

// FindingSubmitter admits raw findings into the processing pipeline.
// *pipeline.Pipeline implements this.
type FindingSubmitter interface {
	Submit(ctx context.Context, sourceTag string, payload json.RawMessage) models.SubmitFindingResponse
}

// IngestService validates raw findings and hands them to the pipeline.
// Admission is synchronous; enrichment happens on the pipeline workers.
type IngestService struct {
	pipeline FindingSubmitter
}

// NewIngestService creates a new IngestService.
func NewIngestService(pipeline FindingSubmitter) *IngestService {
	if pipeline == nil {
		panic("NewIngestService: pipeline must not be nil")
	}
	return &IngestService{pipeline: pipeline}
}

// SubmitFinding validates the request and admits the finding. The returned
// response carries the accept/reject decision; a rejected finding is not an
// error at this level, the caller reads Accepted and Reason.
func (s *IngestService) SubmitFinding(ctx context.Context, req *models.SubmitFindingRequest) (models.SubmitFindingResponse, error) {
	if req == nil {
		return models.SubmitFindingResponse{}, NewValidationError("request", "request body is required")
	}

	source := strings.TrimSpace(req.Source)
	if source == "" {
		return models.SubmitFindingResponse{}, NewValidationError("source", "source tag is required")
	}
	if len(req.Finding) == 0 {
		return models.SubmitFindingResponse{}, NewValidationError("finding", "finding payload is required")
	}

	return s.pipeline.Submit(ctx, source, req.Finding), nil
}
