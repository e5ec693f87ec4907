package services

import (
	"context"
	"fmt"

	"entgo.io/ent/dialect/sql"

	"github.com/argus-soc/argus/ent"
	"github.com/argus-soc/argus/ent/threatrecord"
	"github.com/argus-soc/argus/pkg/models"
)

const (
	defaultListLimit = 50
	maxListLimit     = 200
)

// ThreatService serves stored threat records to the dashboard API.
// It is read-only; every write goes through the pipeline's store.
type ThreatService struct {
	client *ent.Client
}

// NewThreatService creates a new ThreatService.
func NewThreatService(client *ent.Client) *ThreatService {
	if client == nil {
		panic("NewThreatService: client must not be nil")
	}
	return &ThreatService{client: client}
}

// ListThreats returns stored threats ordered by triage priority, highest
// first, then by recency. Records without a priority (dead letters that never
// reached triage) sort last. Unknown enum filters are rejected rather than
// silently matching nothing.
func (s *ThreatService) ListThreats(ctx context.Context, filters models.ThreatFilters) (*models.ThreatListResponse, error) {
	query := s.client.ThreatRecord.Query()

	if filters.Status != "" {
		status := threatrecord.Status(filters.Status)
		if err := threatrecord.StatusValidator(status); err != nil {
			return nil, NewValidationError("status", fmt.Sprintf("unknown status '%s'", filters.Status))
		}
		query = query.Where(threatrecord.StatusEQ(status))
	}
	if filters.Severity != "" {
		severity := threatrecord.Severity(filters.Severity)
		if err := threatrecord.SeverityValidator(severity); err != nil {
			return nil, NewValidationError("severity", fmt.Sprintf("unknown severity '%s'", filters.Severity))
		}
		query = query.Where(threatrecord.SeverityEQ(severity))
	}
	if filters.Band != "" {
		band := threatrecord.TriageBand(filters.Band)
		if err := threatrecord.TriageBandValidator(band); err != nil {
			return nil, NewValidationError("band", fmt.Sprintf("unknown triage band '%s'", filters.Band))
		}
		query = query.Where(threatrecord.TriageBandEQ(band))
	}
	if filters.Source != "" {
		query = query.Where(threatrecord.SourceEQ(filters.Source))
	}
	if filters.AccountID != "" {
		query = query.Where(threatrecord.AccountIDEQ(filters.AccountID))
	}
	if filters.MinPriority != nil {
		query = query.Where(threatrecord.TriagePriorityGTE(*filters.MinPriority))
	}
	if filters.ObservedAfter != nil {
		query = query.Where(threatrecord.ObservedAtGTE(*filters.ObservedAfter))
	}
	if filters.ObservedBefore != nil {
		query = query.Where(threatrecord.ObservedAtLT(*filters.ObservedBefore))
	}

	// Total count before pagination
	total, err := query.Clone().Count(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to count threats: %w", err)
	}

	limit := filters.Limit
	if limit <= 0 {
		limit = defaultListLimit
	}
	if limit > maxListLimit {
		limit = maxListLimit
	}
	offset := filters.Offset
	if offset < 0 {
		offset = 0
	}

	records, err := query.
		Order(
			threatrecord.ByTriagePriority(sql.OrderDesc(), sql.OrderNullsLast()),
			threatrecord.ByObservedAt(sql.OrderDesc()),
		).
		Limit(limit).
		Offset(offset).
		All(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list threats: %w", err)
	}

	return &models.ThreatListResponse{
		Threats:    renderThreats(records),
		TotalCount: total,
		Limit:      limit,
		Offset:     offset,
	}, nil
}

// GetThreat returns every stored record for an event ID, newest observation
// first. Sources recycle event IDs across time, so one ID can map to several
// rows. Returns ErrNotFound when no record exists.
func (s *ThreatService) GetThreat(ctx context.Context, eventID string) ([]*models.ThreatResponse, error) {
	if eventID == "" {
		return nil, NewValidationError("event_id", "event ID is required")
	}

	records, err := s.client.ThreatRecord.Query().
		Where(threatrecord.EventIDEQ(eventID)).
		Order(threatrecord.ByObservedAt(sql.OrderDesc())).
		All(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to get threat %s: %w", eventID, err)
	}
	if len(records) == 0 {
		return nil, ErrNotFound
	}

	return renderThreats(records), nil
}

// GetStats aggregates the dashboard counters across all stored threats.
func (s *ThreatService) GetStats(ctx context.Context) (*models.ThreatStatsResponse, error) {
	stats := &models.ThreatStatsResponse{
		BySeverity: make(map[string]int),
		ByStatus:   make(map[string]int),
	}

	var severityRows []struct {
		Severity string `json:"severity"`
		Count    int    `json:"count"`
	}
	if err := s.client.ThreatRecord.Query().
		GroupBy(threatrecord.FieldSeverity).
		Aggregate(ent.Count()).
		Scan(ctx, &severityRows); err != nil {
		return nil, fmt.Errorf("failed to aggregate severities: %w", err)
	}
	for _, row := range severityRows {
		stats.BySeverity[row.Severity] = row.Count
		stats.TotalThreats += row.Count
	}

	var statusRows []struct {
		Status string `json:"status"`
		Count  int    `json:"count"`
	}
	if err := s.client.ThreatRecord.Query().
		GroupBy(threatrecord.FieldStatus).
		Aggregate(ent.Count()).
		Scan(ctx, &statusRows); err != nil {
		return nil, fmt.Errorf("failed to aggregate statuses: %w", err)
	}
	for _, row := range statusRows {
		stats.ByStatus[row.Status] = row.Count
	}
	stats.DeadLettered = stats.ByStatus[string(threatrecord.StatusDeadLettered)]

	autoRemediated, err := s.client.ThreatRecord.Query().
		Where(threatrecord.RemediationStatusEQ(threatrecord.RemediationStatusSucceeded)).
		Count(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to count remediated threats: %w", err)
	}
	stats.AutoRemediated = autoRemediated

	humanReview, err := s.client.ThreatRecord.Query().
		Where(threatrecord.RequiresHumanReview(true)).
		Count(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to count the review queue: %w", err)
	}
	stats.HumanReviewRequired = humanReview

	return stats, nil
}

// renderThreats wraps records for the API, flagging which ones carry a deep
// analysis envelope (a degraded analysis still counts; it wrote an error).
func renderThreats(records []*ent.ThreatRecord) []*models.ThreatResponse {
	out := make([]*models.ThreatResponse, 0, len(records))
	for _, rec := range records {
		out = append(out, &models.ThreatResponse{
			ThreatRecord: rec,
			Analyzed:     rec.AnalysisRiskScore != nil || rec.AnalysisError != nil,
		})
	}
	return out
}
