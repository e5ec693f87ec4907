package e2e

import (
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/http/httptest"
	"sort"
	"strings"
	"sync"
)

// Scripted HTTP doubles for the three systems the pipeline calls out to:
// the ML inference endpoint, the Anthropic Messages API and the effector
// webhook. Each is a real HTTP server, so the production clients run
// their full request, retry and degradation paths during tests.

// ScoreEntry scripts one inference response. Entries scripted for an
// event id are consumed in order and the final one repeats, so a single
// entry acts as a standing response.
type ScoreEntry struct {
	Score      float64
	Confidence float64
	Status     int // non-zero and not 200 serves an HTTP error instead

	// WaitCh, when set, holds the response until the channel is closed or
	// the client gives up. OnBlock receives a non-blocking send the moment
	// the call arrives, letting tests sequence around a held call.
	WaitCh  <-chan struct{}
	OnBlock chan<- struct{}
}

// ScoreCall is one recorded inference request.
type ScoreCall struct {
	EventID        string
	FeatureVersion string
	Features       map[string]float64
}

// ScorerMock plays the ML inference endpoint.
type ScorerMock struct {
	mu       sync.Mutex
	scripts  map[string][]ScoreEntry
	fallback ScoreEntry
	calls    []ScoreCall

	srv *httptest.Server
}

// NewScorerMock starts the mock with a benign fallback verdict for
// unscripted event ids.
func NewScorerMock() *ScorerMock {
	m := &ScorerMock{
		scripts:  make(map[string][]ScoreEntry),
		fallback: ScoreEntry{Score: 5, Confidence: 0.9},
	}
	m.srv = httptest.NewServer(http.HandlerFunc(m.handle))
	return m
}

func (m *ScorerMock) URL() string { return m.srv.URL }
func (m *ScorerMock) Close()      { m.srv.Close() }

// ScoreFor appends scripted responses for one event id.
func (m *ScorerMock) ScoreFor(eventID string, entries ...ScoreEntry) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.scripts[eventID] = append(m.scripts[eventID], entries...)
}

// Always replaces the fallback served to unscripted event ids.
func (m *ScorerMock) Always(entry ScoreEntry) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.fallback = entry
}

// Calls returns a copy of every recorded request, in arrival order.
func (m *ScorerMock) Calls() []ScoreCall {
	m.mu.Lock()
	defer m.mu.Unlock()
	out := make([]ScoreCall, len(m.calls))
	copy(out, m.calls)
	return out
}

// CallsFor returns the recorded requests for one event id, in order.
func (m *ScorerMock) CallsFor(eventID string) []ScoreCall {
	var out []ScoreCall
	for _, c := range m.Calls() {
		if c.EventID == eventID {
			out = append(out, c)
		}
	}
	return out
}

func (m *ScorerMock) CallCount() int {
	m.mu.Lock()
	defer m.mu.Unlock()
	return len(m.calls)
}

func (m *ScorerMock) handle(w http.ResponseWriter, r *http.Request) {
	var req struct {
		EventID        string             `json:"event_id"`
		FeatureVersion string             `json:"feature_version"`
		Features       map[string]float64 `json:"features"`
	}
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, "bad request", http.StatusBadRequest)
		return
	}

	m.mu.Lock()
	m.calls = append(m.calls, ScoreCall{
		EventID:        req.EventID,
		FeatureVersion: req.FeatureVersion,
		Features:       req.Features,
	})
	entry := m.nextLocked(req.EventID)
	m.mu.Unlock()

	if entry.OnBlock != nil {
		select {
		case entry.OnBlock <- struct{}{}:
		default:
		}
	}
	if entry.WaitCh != nil {
		select {
		case <-entry.WaitCh:
		case <-r.Context().Done():
			return
		}
	}
	if entry.Status != 0 && entry.Status != http.StatusOK {
		http.Error(w, "scripted scorer failure", entry.Status)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	fmt.Fprintf(w, `{"threat_score": %g, "confidence": %g, "model_version": "e2e-stub"}`,
		entry.Score, entry.Confidence)
}

func (m *ScorerMock) nextLocked(eventID string) ScoreEntry {
	script := m.scripts[eventID]
	if len(script) == 0 {
		return m.fallback
	}
	entry := script[0]
	if len(script) > 1 {
		m.scripts[eventID] = script[1:]
	}
	return entry
}

// AnalysisEntry scripts one Messages API response.
type AnalysisEntry struct {
	Text   string // served text block, usually a fenced JSON report
	Status int    // non-zero and not 200 serves an anthropic-style error
	Hang   bool   // hold the response until the client abandons the call

	WaitCh  <-chan struct{}
	OnBlock chan<- struct{}
}

// AnalystMock plays the Anthropic Messages endpoint. Requests are routed
// to scripts by searching the prompt for a scripted event id; the
// analysis prompt always embeds the event id.
type AnalystMock struct {
	mu       sync.Mutex
	scripts  map[string][]AnalysisEntry
	fallback AnalysisEntry
	total    int
	calls    map[string]int
	prompts  map[string][]string

	srv *httptest.Server
}

func NewAnalystMock() *AnalystMock {
	m := &AnalystMock{
		scripts:  make(map[string][]AnalysisEntry),
		fallback: AnalysisEntry{Text: analysisReport(5, "credential-exposure")},
		calls:    make(map[string]int),
		prompts:  make(map[string][]string),
	}
	m.srv = httptest.NewServer(http.HandlerFunc(m.handle))
	return m
}

func (m *AnalystMock) URL() string { return m.srv.URL }
func (m *AnalystMock) Close()      { m.srv.Close() }

// ScriptFor appends scripted responses for one event id.
func (m *AnalystMock) ScriptFor(eventID string, entries ...AnalysisEntry) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.scripts[eventID] = append(m.scripts[eventID], entries...)
}

func (m *AnalystMock) CallCount() int {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.total
}

// CallsFor reports how many requests were routed to eventID.
func (m *AnalystMock) CallsFor(eventID string) int {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.calls[eventID]
}

// PromptsFor returns the raw request bodies routed to eventID.
func (m *AnalystMock) PromptsFor(eventID string) []string {
	m.mu.Lock()
	defer m.mu.Unlock()
	out := make([]string, len(m.prompts[eventID]))
	copy(out, m.prompts[eventID])
	return out
}

func (m *AnalystMock) handle(w http.ResponseWriter, r *http.Request) {
	body, err := io.ReadAll(r.Body)
	if err != nil {
		http.Error(w, "bad request", http.StatusBadRequest)
		return
	}

	m.mu.Lock()
	matched := m.routeLocked(string(body))
	entry := m.nextLocked(matched)
	m.total++
	m.calls[matched]++
	m.prompts[matched] = append(m.prompts[matched], string(body))
	m.mu.Unlock()

	if entry.OnBlock != nil {
		select {
		case entry.OnBlock <- struct{}{}:
		default:
		}
	}
	if entry.WaitCh != nil {
		select {
		case <-entry.WaitCh:
		case <-r.Context().Done():
			return
		}
	}
	if entry.Hang {
		<-r.Context().Done()
		return
	}
	if entry.Status != 0 && entry.Status != http.StatusOK {
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(entry.Status)
		fmt.Fprint(w, `{"type":"error","error":{"type":"api_error","message":"scripted analyst failure"}}`)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	_ = json.NewEncoder(w).Encode(map[string]any{
		"id":          "msg_e2e",
		"type":        "message",
		"role":        "assistant",
		"model":       "claude-sonnet-4-5",
		"content":     []map[string]any{{"type": "text", "text": entry.Text}},
		"stop_reason": "end_turn",
		"usage":       map[string]any{"input_tokens": 10, "output_tokens": 25},
	})
}

// routeLocked finds the scripted event id the prompt mentions. Sorted
// iteration keeps routing deterministic when several ids are scripted.
func (m *AnalystMock) routeLocked(body string) string {
	ids := make([]string, 0, len(m.scripts))
	for id := range m.scripts {
		ids = append(ids, id)
	}
	sort.Strings(ids)
	for _, id := range ids {
		if strings.Contains(body, id) {
			return id
		}
	}
	return ""
}

func (m *AnalystMock) nextLocked(eventID string) AnalysisEntry {
	script := m.scripts[eventID]
	if len(script) == 0 {
		return m.fallback
	}
	entry := script[0]
	if len(script) > 1 {
		m.scripts[eventID] = script[1:]
	}
	return entry
}

// analysisReport builds a model response the report parser accepts,
// wrapped in the markdown fence real models tend to emit.
func analysisReport(risk float64, vector string, actions ...string) string {
	if actions == nil {
		actions = []string{}
	}
	report := map[string]any{
		"risk_score":          risk,
		"attack_vector":       vector,
		"recommended_actions": actions,
		"business_impact":     "contained to a single credential",
		"confidence":          0.9,
		"summary":             "Scripted analysis for pipeline tests.",
	}
	b, _ := json.Marshal(report)
	return "```json\n" + string(b) + "\n```"
}

// EffectorCall is one recorded remediation request.
type EffectorCall struct {
	EventID        string
	Action         string
	ResourceType   string
	ResourceID     string
	IdempotencyKey string
}

// EffectorMock plays the remediation webhook. Calls succeed unless
// FailNext arms scripted failures.
type EffectorMock struct {
	mu       sync.Mutex
	calls    []EffectorCall
	failures int

	srv *httptest.Server
}

func NewEffectorMock() *EffectorMock {
	m := &EffectorMock{}
	m.srv = httptest.NewServer(http.HandlerFunc(m.handle))
	return m
}

func (m *EffectorMock) URL() string { return m.srv.URL }
func (m *EffectorMock) Close()      { m.srv.Close() }

// FailNext makes the next n calls serve 500s.
func (m *EffectorMock) FailNext(n int) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.failures = n
}

func (m *EffectorMock) Calls() []EffectorCall {
	m.mu.Lock()
	defer m.mu.Unlock()
	out := make([]EffectorCall, len(m.calls))
	copy(out, m.calls)
	return out
}

func (m *EffectorMock) CallsFor(eventID string) []EffectorCall {
	var out []EffectorCall
	for _, c := range m.Calls() {
		if c.EventID == eventID {
			out = append(out, c)
		}
	}
	return out
}

func (m *EffectorMock) CallCount() int {
	m.mu.Lock()
	defer m.mu.Unlock()
	return len(m.calls)
}

func (m *EffectorMock) handle(w http.ResponseWriter, r *http.Request) {
	var req struct {
		EventID      string `json:"event_id"`
		Action       string `json:"action"`
		ResourceType string `json:"resource_type"`
		ResourceID   string `json:"resource_id"`
	}
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, "bad request", http.StatusBadRequest)
		return
	}

	m.mu.Lock()
	m.calls = append(m.calls, EffectorCall{
		EventID:        req.EventID,
		Action:         req.Action,
		ResourceType:   req.ResourceType,
		ResourceID:     req.ResourceID,
		IdempotencyKey: r.Header.Get("Idempotency-Key"),
	})
	fail := m.failures > 0
	if fail {
		m.failures--
	}
	m.mu.Unlock()

	if fail {
		http.Error(w, "scripted effector failure", http.StatusInternalServerError)
		return
	}
	w.Header().Set("Content-Type", "application/json")
	fmt.Fprint(w, `{"status":"completed"}`)
}

// PlaybookMock serves markdown playbooks by kind slug. Unset slugs 404,
// which the playbook service treats as "no playbook for this kind".
type PlaybookMock struct {
	mu   sync.Mutex
	docs map[string]string

	srv *httptest.Server
}

func NewPlaybookMock() *PlaybookMock {
	m := &PlaybookMock{docs: make(map[string]string)}
	m.srv = httptest.NewServer(http.HandlerFunc(m.handle))
	return m
}

func (m *PlaybookMock) URL() string { return m.srv.URL }
func (m *PlaybookMock) Close()      { m.srv.Close() }

// Set installs the playbook served for a kind slug, e.g.
// "unauthorizedaccess-iamuser-toripcaller".
func (m *PlaybookMock) Set(slug, markdown string) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.docs[slug] = markdown
}

func (m *PlaybookMock) handle(w http.ResponseWriter, r *http.Request) {
	slug := strings.TrimSuffix(strings.TrimPrefix(r.URL.Path, "/"), ".md")
	m.mu.Lock()
	doc, ok := m.docs[slug]
	m.mu.Unlock()
	if !ok {
		http.NotFound(w, r)
		return
	}
	w.Header().Set("Content-Type", "text/markdown")
	fmt.Fprint(w, doc)
}
