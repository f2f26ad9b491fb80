package metrics

import (
	"sync"
	"time"
)

type documentStats struct {
	loads       int
	errors      int
	lastLatency time.Duration
}

// Recorder captures lightweight, in-memory metrics about a report run.
// When built by Setup it also feeds OpenTelemetry instruments.
type Recorder struct {
	mu        sync.Mutex
	documents map[string]*documentStats
	players   int
	sentences map[string]int
	runs      int
	runErrors int
	otel      *otelInstruments
}

func NewRecorder() *Recorder {
	return newRecorder(nil)
}

func newRecorder(otel *otelInstruments) *Recorder {
	return &Recorder{
		documents: make(map[string]*documentStats),
		sentences: make(map[string]int),
		otel:      otel,
	}
}

// RecordDocumentLoad counts a source document load and stores its latency.
func (r *Recorder) RecordDocumentLoad(document string, duration time.Duration, err error) {
	if r == nil {
		return
	}

	r.mu.Lock()
	stats, ok := r.documents[document]
	if !ok {
		stats = &documentStats{}
		r.documents[document] = stats
	}
	stats.loads++
	stats.lastLatency = duration
	if err != nil {
		stats.errors++
	}
	r.mu.Unlock()

	if r.otel != nil {
		r.otel.recordDocumentLoad(document, duration, err)
	}
}

// RecordPlayers adds to the number of aggregated players.
func (r *Recorder) RecordPlayers(count int) {
	if r == nil || count <= 0 {
		return
	}
	r.mu.Lock()
	r.players += count
	r.mu.Unlock()

	if r.otel != nil {
		r.otel.recordPlayers(count)
	}
}

// RecordLeaderSentence counts a leadership sentence attached for stat.
func (r *Recorder) RecordLeaderSentence(stat string) {
	if r == nil {
		return
	}
	r.mu.Lock()
	r.sentences[stat]++
	r.mu.Unlock()

	if r.otel != nil {
		r.otel.recordSentence(stat)
	}
}

// RecordRun tracks a full pipeline run.
func (r *Recorder) RecordRun(duration time.Duration, err error) {
	if r == nil {
		return
	}
	r.mu.Lock()
	r.runs++
	if err != nil {
		r.runErrors++
	}
	r.mu.Unlock()

	if r.otel != nil {
		r.otel.recordRun(duration, err)
	}
}

// Snapshot is a copy of the recorded counters.
type Snapshot struct {
	DocumentLoads  map[string]int
	DocumentErrors map[string]int
	Players        int
	Sentences      int
	Runs           int
	RunErrors      int
}

// Snapshot returns a copy of the current counters.
func (r *Recorder) Snapshot() Snapshot {
	if r == nil {
		return Snapshot{}
	}
	r.mu.Lock()
	defer r.mu.Unlock()

	snap := Snapshot{
		DocumentLoads:  make(map[string]int, len(r.documents)),
		DocumentErrors: make(map[string]int, len(r.documents)),
		Players:        r.players,
		Runs:           r.runs,
		RunErrors:      r.runErrors,
	}
	for name, stats := range r.documents {
		snap.DocumentLoads[name] = stats.loads
		snap.DocumentErrors[name] = stats.errors
	}
	for _, n := range r.sentences {
		snap.Sentences += n
	}
	return snap
}

// SentencesFor returns how many leadership sentences were attached for stat.
func (r *Recorder) SentencesFor(stat string) int {
	if r == nil {
		return 0
	}
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.sentences[stat]
}

// LastDocumentLatency returns the last recorded load latency for document.
func (r *Recorder) LastDocumentLatency(document string) time.Duration {
	if r == nil {
		return 0
	}
	r.mu.Lock()
	defer r.mu.Unlock()
	if stats, ok := r.documents[document]; ok {
		return stats.lastLatency
	}
	return 0
}
