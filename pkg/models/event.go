package models

import (
	"encoding/json"
	"time"
)

// Source tags accepted at ingress. Findings are routed to a normalizer by
// tag alone; payload sniffing is never used to guess the detector.
const (
	SourceGuardDuty   = "aws.guardduty"
	SourceSecurityHub = "aws.securityhub"
)

// SeverityBand buckets detector-native severity scales onto one ladder so
// downstream stages never see a detector-specific number.
type SeverityBand string

const (
	SeverityLow      SeverityBand = "LOW"
	SeverityMedium   SeverityBand = "MEDIUM"
	SeverityHigh     SeverityBand = "HIGH"
	SeverityCritical SeverityBand = "CRITICAL"
)

// RawFinding is an unparsed detector payload plus the tag it arrived under.
type RawFinding struct {
	SourceTag  string          `json:"source"`
	Payload    json.RawMessage `json:"finding"`
	ReceivedAt time.Time       `json:"received_at"`
}

// NormalizedEvent is the canonical envelope produced at ingress. Every
// downstream stage consumes this shape regardless of which detector
// produced the finding.
type NormalizedEvent struct {
	EventID      string         `json:"event_id"`
	Source       string         `json:"source"`
	AccountID    string         `json:"account_id"`
	Region       string         `json:"region"`
	Kind         string         `json:"kind"`
	Severity     SeverityBand   `json:"severity"`
	RawSeverity  *float64       `json:"raw_severity,omitempty"`
	ObservedAt   time.Time      `json:"observed_at"`
	ReceivedAt   time.Time      `json:"received_at"`
	ResourceType string         `json:"resource_type,omitempty"`
	ResourceID   string         `json:"resource_id,omitempty"`
	Details      map[string]any `json:"details,omitempty"`
}
