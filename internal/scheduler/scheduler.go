package scheduler

import (
	"context"
	"log/slog"
	"sync"
	"time"

	"gamewatch/internal/logging"
	"gamewatch/internal/timeutil"
)

const defaultInterval = 2 * time.Minute

// CycleRunner executes one notification cycle. Satisfied by *notify.Gate.
type CycleRunner interface {
	RunCycle(ctx context.Context) error
}

// ResetStore clears the notified set at the daily boundary. Satisfied by
// *dedup.Store.
type ResetStore interface {
	Clear() error
}

// Scheduler drives the notification gate: one cycle on boot, then one per
// interval, plus a daily reset of the dedup set at the configured local hour.
// Cycles never overlap; if the previous cycle is still running when the ticker
// fires, the new tick is skipped.
type Scheduler struct {
	runner    CycleRunner
	reset     ResetStore
	logger    *slog.Logger
	interval  time.Duration
	resetHour int
	now       func() time.Time

	ticker   *time.Ticker
	done     chan struct{}
	stopOnce sync.Once
	startMu  sync.Mutex
	started  bool
	cycleMu  sync.Mutex

	statusMu sync.RWMutex
	status   Status
}

// Status describes the recent health of the scheduling loop.
type Status struct {
	ConsecutiveFailures int
	LastError           string
	LastAttempt         time.Time
	LastSuccess         time.Time
}

// IsReady reports whether the scheduler has had a recent success and is not
// failing repeatedly.
func (s Status) IsReady() bool {
	if s.LastSuccess.IsZero() {
		return false
	}
	return s.ConsecutiveFailures < 3
}

// New constructs a Scheduler with sane defaults.
func New(runner CycleRunner, reset ResetStore, logger *slog.Logger, interval time.Duration, resetHour int) *Scheduler {
	if interval <= 0 {
		interval = defaultInterval
	}
	return &Scheduler{
		runner:    runner,
		reset:     reset,
		logger:    logger,
		interval:  interval,
		resetHour: resetHour,
		now:       time.Now,
		done:      make(chan struct{}),
	}
}

// Start begins the loop until the context is cancelled or Stop is called.
func (s *Scheduler) Start(ctx context.Context) {
	s.startMu.Lock()
	if s.started {
		s.startMu.Unlock()
		return
	}
	s.started = true
	s.startMu.Unlock()

	s.ticker = time.NewTicker(s.interval)
	resetTimer := time.NewTimer(s.untilNextReset())

	go func() {
		s.logInfo("scheduler started",
			slog.Int64(logging.FieldDurationMS, s.interval.Milliseconds()),
			slog.Int("reset_hour", s.resetHour),
		)
		// Initial cycle to warm data on boot.
		s.runOnce(ctx)

		for {
			select {
			case <-ctx.Done():
				s.stopTimers(resetTimer)
				s.logInfo("scheduler stopped")
				return
			case <-s.done:
				s.stopTimers(resetTimer)
				s.logInfo("scheduler stopped")
				return
			case <-s.ticker.C:
				s.runOnce(ctx)
			case <-resetTimer.C:
				s.resetOnce()
				resetTimer.Reset(s.untilNextReset())
			}
		}
	}()
}

// Stop halts the loop.
func (s *Scheduler) Stop(ctx context.Context) error {
	_ = ctx
	s.stopOnce.Do(func() {
		close(s.done)
		if s.ticker != nil {
			s.ticker.Stop()
		}
	})
	return nil
}

// runOnce executes a single cycle, skipping the tick entirely when the
// previous cycle has not finished.
func (s *Scheduler) runOnce(ctx context.Context) {
	if !s.cycleMu.TryLock() {
		s.logWarn("previous cycle still running, skipping tick")
		return
	}
	defer s.cycleMu.Unlock()

	start := time.Now()
	s.recordAttempt(start)
	if err := s.runner.RunCycle(ctx); err != nil {
		s.logError("notification cycle failed", err,
			slog.Int64(logging.FieldDurationMS, time.Since(start).Milliseconds()))
		s.recordFailure(err, start)
		return
	}
	s.recordSuccess(start)
}

// resetOnce clears the notified set so the new day's games can notify.
func (s *Scheduler) resetOnce() {
	if s.reset == nil {
		return
	}
	if err := s.reset.Clear(); err != nil {
		s.logError("daily reset failed", err)
		return
	}
	s.logInfo("daily reset complete", slog.Int("reset_hour", s.resetHour))
}

func (s *Scheduler) untilNextReset() time.Duration {
	now := s.now()
	return timeutil.NextDailyTick(now, s.resetHour).Sub(now)
}

func (s *Scheduler) stopTimers(resetTimer *time.Timer) {
	if s.ticker != nil {
		s.ticker.Stop()
	}
	resetTimer.Stop()
}

func (s *Scheduler) logInfo(msg string, args ...any) {
	if s.logger != nil {
		s.logger.Info(msg, args...)
	}
}

func (s *Scheduler) logWarn(msg string, args ...any) {
	if s.logger != nil {
		s.logger.Warn(msg, args...)
	}
}

func (s *Scheduler) logError(msg string, err error, attrs ...any) {
	if s.logger != nil {
		s.logger.Error(msg, append(attrs, "error", err)...)
	}
}

func (s *Scheduler) recordAttempt(at time.Time) {
	s.statusMu.Lock()
	defer s.statusMu.Unlock()
	s.status.LastAttempt = at
}

func (s *Scheduler) recordSuccess(at time.Time) {
	s.statusMu.Lock()
	defer s.statusMu.Unlock()
	s.status.ConsecutiveFailures = 0
	s.status.LastError = ""
	s.status.LastSuccess = at
}

func (s *Scheduler) recordFailure(err error, at time.Time) {
	s.statusMu.Lock()
	defer s.statusMu.Unlock()
	s.status.ConsecutiveFailures++
	if err != nil {
		s.status.LastError = err.Error()
	}
	s.status.LastAttempt = at
}

// Status returns a snapshot of the scheduler's recent health.
func (s *Scheduler) Status() Status {
	s.statusMu.RLock()
	defer s.statusMu.RUnlock()
	return s.status
}
