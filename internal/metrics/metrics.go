package metrics

import (
	"sync"
	"time"
)

type conferenceStats struct {
	gamesApplied int
	eliminations int
}

type sourceStats struct {
	loads       int
	errors      int
	lastLatency time.Duration
}

// Recorder captures lightweight, in-memory metrics about a season run and mirrors
// them to OpenTelemetry instruments when configured.
type Recorder struct {
	mu           sync.Mutex
	conferences  map[string]*conferenceStats
	sources      map[string]*sourceStats
	passes       int
	lastPassTime time.Duration
	otel         *otelInstruments
}

func NewRecorder() *Recorder {
	return newRecorder(nil)
}

func newRecorder(otel *otelInstruments) *Recorder {
	return &Recorder{
		conferences: make(map[string]*conferenceStats),
		sources:     make(map[string]*sourceStats),
		otel:        otel,
	}
}

// RecordGameApplied counts a result that updated at least one team in conference.
func (r *Recorder) RecordGameApplied(conference string) {
	if r == nil {
		return
	}
	r.mu.Lock()
	r.ensureConference(conference).gamesApplied++
	r.mu.Unlock()
	if r.otel != nil {
		r.otel.recordGameApplied(conference)
	}
}

// RecordElimination counts a team eliminated from conference.
func (r *Recorder) RecordElimination(conference string) {
	if r == nil {
		return
	}
	r.mu.Lock()
	r.ensureConference(conference).eliminations++
	r.mu.Unlock()
	if r.otel != nil {
		r.otel.recordElimination(conference)
	}
}

// RecordPass tracks one end-of-day elimination pass and how long it took.
func (r *Recorder) RecordPass(duration time.Duration) {
	if r == nil {
		return
	}
	r.mu.Lock()
	r.passes++
	r.lastPassTime = duration
	r.mu.Unlock()
	if r.otel != nil {
		r.otel.recordPass(duration)
	}
}

// RecordSourceLoad tracks reading a roster or results source.
func (r *Recorder) RecordSourceLoad(source string, duration time.Duration, err error) {
	if r == nil {
		return
	}
	r.mu.Lock()
	stats, ok := r.sources[source]
	if !ok {
		stats = &sourceStats{}
		r.sources[source] = stats
	}
	stats.loads++
	stats.lastLatency = duration
	if err != nil {
		stats.errors++
	}
	r.mu.Unlock()
	if r.otel != nil {
		r.otel.recordSourceLoad(source, duration, err)
	}
}

// Snapshot is a copy of the recorded counters.
type Snapshot struct {
	Passes           int
	LastPassDuration time.Duration
	GamesApplied     map[string]int
	Eliminations     map[string]int
	SourceLoads      map[string]int
	SourceErrors     map[string]int
}

// Snapshot returns a copy of the current counters.
func (r *Recorder) Snapshot() Snapshot {
	snap := Snapshot{
		GamesApplied: map[string]int{},
		Eliminations: map[string]int{},
		SourceLoads:  map[string]int{},
		SourceErrors: map[string]int{},
	}
	if r == nil {
		return snap
	}
	r.mu.Lock()
	defer r.mu.Unlock()

	snap.Passes = r.passes
	snap.LastPassDuration = r.lastPassTime
	for name, stats := range r.conferences {
		snap.GamesApplied[name] = stats.gamesApplied
		snap.Eliminations[name] = stats.eliminations
	}
	for name, stats := range r.sources {
		snap.SourceLoads[name] = stats.loads
		snap.SourceErrors[name] = stats.errors
	}
	return snap
}

// caller holds r.mu
func (r *Recorder) ensureConference(conference string) *conferenceStats {
	stats, ok := r.conferences[conference]
	if !ok {
		stats = &conferenceStats{}
		r.conferences[conference] = stats
	}
	return stats
}
