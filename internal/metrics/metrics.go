package metrics

import (
	"sync"
	"time"
)

type leagueStats struct {
	calls           int
	errors          int
	lastCallLatency time.Duration
}

type notifyStats struct {
	sent   int
	failed int
}

// Recorder captures lightweight, in-memory metrics about schedule fetches and
// notification delivery. It is intentionally simple so it can be swapped for
// a real backend later; when otel instruments are attached it mirrors every
// observation to them.
type Recorder struct {
	mu     sync.Mutex
	stats  map[string]*leagueStats
	notify notifyStats
	otel   *otelInstruments
}

func NewRecorder() *Recorder {
	return newRecorder(nil)
}

func newRecorder(otel *otelInstruments) *Recorder {
	return &Recorder{
		stats: make(map[string]*leagueStats),
		otel:  otel,
	}
}

// RecordFetchAttempt increments counters for one league's schedule fetch and
// stores the last observed latency. Safe for concurrent callers: the
// scheduler cycle and a team-update live check can fetch the same league at
// the same time.
func (r *Recorder) RecordFetchAttempt(league string, duration time.Duration, err error) {
	if r == nil {
		return
	}

	r.recordFetch(league, duration, err)
	if r.otel != nil {
		r.otel.recordFetchAttempt(league, duration, err)
	}
}

func (r *Recorder) recordFetch(league string, duration time.Duration, err error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	stats, ok := r.stats[league]
	if !ok {
		stats = &leagueStats{}
		r.stats[league] = stats
	}
	stats.calls++
	stats.lastCallLatency = duration
	if err != nil {
		stats.errors++
	}
}

// RecordNotification tracks one delivery attempt and its outcome.
func (r *Recorder) RecordNotification(league string, ok bool) {
	if r == nil {
		return
	}

	r.mu.Lock()
	if ok {
		r.notify.sent++
	} else {
		r.notify.failed++
	}
	r.mu.Unlock()

	if r.otel != nil {
		r.otel.recordNotification(league, ok)
	}
}

// RecordCycle tracks one notification-gate cycle.
func (r *Recorder) RecordCycle(duration time.Duration, games, eligible int) {
	if r == nil || r.otel == nil {
		return
	}
	r.otel.recordCycle(duration, games, eligible)
}

// RecordHTTPRequest tracks basic HTTP metrics.
func (r *Recorder) RecordHTTPRequest(method, path string, status int, duration time.Duration) {
	if r == nil || r.otel == nil {
		return
	}
	r.otel.recordHTTPRequest(method, path, status, duration)
}

// Snapshot is a copy of the current per-league fetch stats.
type Snapshot struct {
	Calls           int
	Errors          int
	LastCallLatency time.Duration
}

func (r *Recorder) Snapshot(league string) Snapshot {
	if r == nil {
		return Snapshot{}
	}
	stats := r.snapshot(league)
	return Snapshot{
		Calls:           stats.calls,
		Errors:          stats.errors,
		LastCallLatency: stats.lastCallLatency,
	}
}

// FetchCalls returns the total fetch attempts recorded for a league.
func (r *Recorder) FetchCalls(league string) int {
	return r.Snapshot(league).Calls
}

// FetchErrors returns the total failed fetches recorded for a league.
func (r *Recorder) FetchErrors(league string) int {
	return r.Snapshot(league).Errors
}

// NotificationsSent returns the count of successful deliveries.
func (r *Recorder) NotificationsSent() int {
	if r == nil {
		return 0
	}
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.notify.sent
}

// NotificationsFailed returns the count of failed deliveries.
func (r *Recorder) NotificationsFailed() int {
	if r == nil {
		return 0
	}
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.notify.failed
}

func (r *Recorder) snapshot(league string) leagueStats {
	r.mu.Lock()
	defer r.mu.Unlock()

	if stats, ok := r.stats[league]; ok && stats != nil {
		return *stats
	}
	return leagueStats{}
}
