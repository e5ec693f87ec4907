package services

import (
	"sync"
	"time"

	"github.com/google/uuid"
)

// WarningCategoryStoreDLQ marks threat records parked in the on-disk store
// journal, waiting for an operator-triggered replay.
const WarningCategoryStoreDLQ = "store_dlq"

// SystemWarning is a non-fatal condition an operator should know about.
// Scope narrows the category to a concrete subject, e.g. the journal path.
type SystemWarning struct {
	ID        string    `json:"id"`
	Category  string    `json:"category"`
	Message   string    `json:"message"`
	Details   string    `json:"details,omitempty"`
	Scope     string    `json:"scope,omitempty"`
	CreatedAt time.Time `json:"created_at"`
}

// SystemWarningsService holds the active warnings in memory. One warning
// exists per (category, scope) pair; re-raising updates it in place, so a
// monitor can refresh its message every tick without flooding the list.
// Warnings are transient and reset on restart.
type SystemWarningsService struct {
	mu     sync.RWMutex
	active map[warningKey]*SystemWarning
}

type warningKey struct {
	category string
	scope    string
}

// NewSystemWarningsService creates an empty warnings registry.
func NewSystemWarningsService() *SystemWarningsService {
	return &SystemWarningsService{
		active: make(map[warningKey]*SystemWarning),
	}
}

// AddWarning raises (or refreshes) the warning for category+scope and
// returns its ID. A refreshed warning gets a new ID and timestamp.
func (s *SystemWarningsService) AddWarning(category, message, details, scope string) string {
	w := &SystemWarning{
		ID:        uuid.New().String(),
		Category:  category,
		Message:   message,
		Details:   details,
		Scope:     scope,
		CreatedAt: time.Now(),
	}

	s.mu.Lock()
	s.active[warningKey{category, scope}] = w
	s.mu.Unlock()
	return w.ID
}

// GetWarnings returns copies of all active warnings. Callers can read and
// compare them without holding any lock.
func (s *SystemWarningsService) GetWarnings() []*SystemWarning {
	s.mu.RLock()
	defer s.mu.RUnlock()

	result := make([]*SystemWarning, 0, len(s.active))
	for _, w := range s.active {
		cp := *w
		result = append(result, &cp)
	}
	return result
}

// ClearByScope drops the warning for category+scope, reporting whether one
// was active. Monitors call this when the condition recovers.
func (s *SystemWarningsService) ClearByScope(category, scope string) bool {
	s.mu.Lock()
	defer s.mu.Unlock()

	key := warningKey{category, scope}
	if _, ok := s.active[key]; !ok {
		return false
	}
	delete(s.active, key)
	return true
}
