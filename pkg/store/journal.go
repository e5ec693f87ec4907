package store

import (
	"bufio"
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io/fs"
	"log/slog"
	"os"
	"path/filepath"
	"sync"
	"time"

	"github.com/argus-soc/argus/pkg/models"
)

// Journal lines are bounded so one oversized detail payload cannot break
// scanning the rest of the file.
const maxJournalLineBytes = 1 << 20

// journalEntry is one line of the store DLQ journal.
type journalEntry struct {
	JournaledAt time.Time      `json:"journaled_at"`
	Threat      *models.Threat `json:"threat"`
}

// journal is an append-only JSONL file holding threat records whose store
// writes exhausted retries. Appends are fsynced: an entry that made it into
// the journal survives a crash and is replayable after recovery.
type journal struct {
	mu     sync.Mutex
	path   string
	count  int
	logger *slog.Logger
}

// newJournal opens (or prepares) the journal at path and counts entries
// left over from a previous run so the DLQ depth is right from boot.
func newJournal(path string, logger *slog.Logger) *journal {
	j := &journal{path: path, logger: logger}
	entries, err := j.load()
	if err != nil {
		logger.Warn("could not read store DLQ journal; depth starts at zero",
			"path", path, "error", err)
		return j
	}
	j.count = len(entries)
	if j.count > 0 {
		logger.Warn("store DLQ journal has entries from a previous run awaiting replay",
			"path", path, "entries", j.count)
	}
	return j
}

func (j *journal) append(threat *models.Threat) error {
	j.mu.Lock()
	defer j.mu.Unlock()

	if dir := filepath.Dir(j.path); dir != "." {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return fmt.Errorf("create journal directory: %w", err)
		}
	}

	line, err := json.Marshal(journalEntry{JournaledAt: time.Now().UTC(), Threat: threat})
	if err != nil {
		return fmt.Errorf("encode journal entry: %w", err)
	}

	f, err := os.OpenFile(j.path, os.O_APPEND|os.O_CREATE|os.O_WRONLY, 0o644)
	if err != nil {
		return fmt.Errorf("open journal: %w", err)
	}
	defer f.Close()

	if _, err := f.Write(append(line, '\n')); err != nil {
		return fmt.Errorf("append journal entry: %w", err)
	}
	if err := f.Sync(); err != nil {
		return fmt.Errorf("sync journal: %w", err)
	}

	j.count++
	return nil
}

func (j *journal) depth() int {
	j.mu.Lock()
	defer j.mu.Unlock()
	return j.count
}

// load reads all journal entries. Corrupt lines (for example a torn final
// write) are skipped rather than poisoning replay.
func (j *journal) load() ([]journalEntry, error) {
	f, err := os.Open(j.path)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return nil, nil
		}
		return nil, err
	}
	defer f.Close()

	var entries []journalEntry
	scanner := bufio.NewScanner(f)
	scanner.Buffer(make([]byte, 0, 64*1024), maxJournalLineBytes)
	for scanner.Scan() {
		line := bytes.TrimSpace(scanner.Bytes())
		if len(line) == 0 {
			continue
		}
		var e journalEntry
		if err := json.Unmarshal(line, &e); err != nil || e.Threat == nil {
			j.logger.Warn("skipping corrupt store DLQ journal line", "path", j.path)
			continue
		}
		entries = append(entries, e)
	}
	if err := scanner.Err(); err != nil {
		return entries, err
	}
	return entries, nil
}

// replay feeds every journaled record to put and atomically rewrites the
// journal with the ones that still failed. A canceled context keeps the
// untried remainder journaled.
func (j *journal) replay(ctx context.Context, put func(context.Context, *models.Threat) error) (int, int, error) {
	j.mu.Lock()
	defer j.mu.Unlock()

	entries, err := j.load()
	if err != nil {
		return 0, j.count, fmt.Errorf("read journal: %w", err)
	}

	var kept []journalEntry
	replayed := 0
	for _, e := range entries {
		if ctx.Err() != nil {
			kept = append(kept, e)
			continue
		}
		if err := put(ctx, e.Threat); err != nil {
			j.logger.Warn("store DLQ entry still failing",
				"event_id", e.Threat.EventID, "error", err)
			kept = append(kept, e)
			continue
		}
		replayed++
	}

	if err := j.rewrite(kept); err != nil {
		return replayed, len(kept), fmt.Errorf("rewrite journal: %w", err)
	}
	j.count = len(kept)
	return replayed, len(kept), nil
}

// rewrite replaces the journal contents via temp file + rename so a crash
// mid-rewrite never loses entries that were not replayed.
func (j *journal) rewrite(entries []journalEntry) error {
	if len(entries) == 0 {
		if err := os.Remove(j.path); err != nil && !errors.Is(err, fs.ErrNotExist) {
			return err
		}
		return nil
	}

	dir := filepath.Dir(j.path)
	tmp, err := os.CreateTemp(dir, filepath.Base(j.path)+".tmp-*")
	if err != nil {
		return err
	}
	defer os.Remove(tmp.Name())

	for _, e := range entries {
		line, err := json.Marshal(e)
		if err != nil {
			tmp.Close()
			return err
		}
		if _, err := tmp.Write(append(line, '\n')); err != nil {
			tmp.Close()
			return err
		}
	}
	if err := tmp.Sync(); err != nil {
		tmp.Close()
		return err
	}
	if err := tmp.Close(); err != nil {
		return err
	}
	return os.Rename(tmp.Name(), j.path)
}
