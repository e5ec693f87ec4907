package store

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/argus-soc/argus/pkg/services"
)

const defaultMonitorInterval = 30 * time.Second

// JournalMonitor keeps an operator-visible warning raised while threat
// records sit in the store DLQ journal, and clears it once a replay drains
// the file. Runs a background goroutine polling the journal depth.
type JournalMonitor struct {
	store    *Store
	warnings *services.SystemWarningsService

	interval time.Duration

	cancel context.CancelFunc
	done   chan struct{}
	logger *slog.Logger
}

// NewJournalMonitor creates a monitor over the store's DLQ journal.
// An interval of zero or less falls back to the 30s default.
func NewJournalMonitor(store *Store, warnings *services.SystemWarningsService, interval time.Duration) *JournalMonitor {
	if store == nil {
		panic("NewJournalMonitor: store must not be nil")
	}
	if warnings == nil {
		panic("NewJournalMonitor: warnings must not be nil")
	}
	if interval <= 0 {
		interval = defaultMonitorInterval
	}
	return &JournalMonitor{
		store:    store,
		warnings: warnings,
		interval: interval,
		logger:   slog.With("component", "journal_monitor"),
	}
}

// Start launches the background check loop.
// Calling Start on an already-running monitor is a no-op.
func (m *JournalMonitor) Start(ctx context.Context) {
	if m.cancel != nil {
		return // already started
	}
	if m.store.JournalPath() == "" {
		m.logger.Warn("journal monitor idle; store has no DLQ journal configured")
		return
	}
	ctx, m.cancel = context.WithCancel(ctx)
	m.done = make(chan struct{})
	go m.loop(ctx)
}

// Stop shuts the monitor down and waits for the loop to exit.
// After Stop returns, Start may be called again.
func (m *JournalMonitor) Stop() {
	if m.cancel == nil {
		return
	}
	m.cancel()
	<-m.done
	m.cancel = nil
	m.done = nil
}

func (m *JournalMonitor) loop(ctx context.Context) {
	defer close(m.done)

	// Surface entries left over from a previous run right away.
	m.check()

	ticker := time.NewTicker(m.interval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
			m.check()
		}
	}
}

func (m *JournalMonitor) check() {
	depth := m.store.JournalDepth()
	path := m.store.JournalPath()

	if depth == 0 {
		m.warnings.ClearByScope(services.WarningCategoryStoreDLQ, path)
		return
	}

	m.warnings.AddWarning(
		services.WarningCategoryStoreDLQ,
		fmt.Sprintf("%d threat record(s) journaled to the store DLQ awaiting replay", depth),
		"records could not reach the database; check connectivity, then trigger a replay",
		path,
	)
}
