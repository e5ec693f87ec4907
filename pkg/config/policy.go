package config

import (
	"fmt"
	"log/slog"
	"sync/atomic"
)

// PolicyStore holds the live action policy. The remediation gate reads it
// per event at decision time, so a flip applies to every event that has
// not yet passed the gate, including events already in flight.
type PolicyStore struct {
	v atomic.Value // ActionPolicy
}

// NewPolicyStore creates a policy store seeded with the configured policy.
func NewPolicyStore(initial ActionPolicy) (*PolicyStore, error) {
	if !initial.IsValid() {
		return nil, fmt.Errorf("%w: %s", ErrInvalidValue, initial)
	}
	s := &PolicyStore{}
	s.v.Store(initial)
	return s, nil
}

// Get returns the current action policy.
func (s *PolicyStore) Get() ActionPolicy {
	return s.v.Load().(ActionPolicy)
}

// Set switches the action policy. Invalid values are rejected, never stored.
func (s *PolicyStore) Set(p ActionPolicy) error {
	if !p.IsValid() {
		return fmt.Errorf("%w: %s", ErrInvalidValue, p)
	}
	old := s.Get()
	s.v.Store(p)
	if old != p {
		slog.Info("Action policy changed", "from", old, "to", p)
	}
	return nil
}
