package models

import (
	"encoding/json"
	"errors"
	"fmt"
	"time"
)

// FailureClass labels every pipeline failure with one taxonomy entry so
// rejection reasons, dead letter records and counters all agree on what
// went wrong.
type FailureClass string

const (
	FailureMalformedSource   FailureClass = "MalformedSource"
	FailureBackpressure      FailureClass = "Backpressure"
	FailureDraining          FailureClass = "Draining"
	FailureOracleUnavailable FailureClass = "OracleUnavailable"
	FailureEffectorFailed    FailureClass = "EffectorFailed"
	FailureStoreUnavailable  FailureClass = "StoreUnavailable"
	FailureDeadlineExceeded  FailureClass = "DeadlineExceeded"
	FailurePolicyViolation   FailureClass = "PolicyViolation"
)

// ClassifiedError pairs an error with its failure class. Stages wrap
// whatever went wrong so the orchestrator can route by class without
// string matching.
type ClassifiedError struct {
	Class FailureClass
	Err   error
}

func (e *ClassifiedError) Error() string {
	if e.Err == nil {
		return string(e.Class)
	}
	return fmt.Sprintf("%s: %v", e.Class, e.Err)
}

func (e *ClassifiedError) Unwrap() error {
	return e.Err
}

// Classify wraps err with a failure class.
func Classify(class FailureClass, err error) *ClassifiedError {
	return &ClassifiedError{Class: class, Err: err}
}

// ClassOf walks the error chain and returns the first failure class found,
// or empty when the error was never classified.
func ClassOf(err error) FailureClass {
	var ce *ClassifiedError
	if errors.As(err, &ce) {
		return ce.Class
	}
	return ""
}

// DeadLetter is one dead letter queue entry: the payload that could not be
// processed plus why. Payload holds the original raw finding when rejection
// happened before normalization; Threat holds the enriched snapshot when
// the pipeline gave up further in.
type DeadLetter struct {
	ID        string          `json:"id"`
	EventID   string          `json:"event_id,omitempty"`
	SourceTag string          `json:"source,omitempty"`
	Payload   json.RawMessage `json:"payload,omitempty"`
	Threat    *Threat         `json:"threat,omitempty"`
	Class     FailureClass    `json:"class"`
	Reason    string          `json:"reason"`
	Attempts  int             `json:"attempts"`
	DeadAt    time.Time       `json:"dead_at"`
}
