package notify

import (
	"context"
	"log/slog"
	"sync"
	"time"

	"gamewatch/internal/dedup"
	"gamewatch/internal/domain"
	"gamewatch/internal/logging"
	"gamewatch/internal/metrics"
	"gamewatch/internal/providers"
	"gamewatch/internal/store"
	"gamewatch/internal/users"
)

// Eligibility window around a game's scheduled start: from 5 minutes before
// kickoff to 30 minutes after, tolerating polling jitter and schedule slips.
const (
	windowBeforeStart = 5 * time.Minute
	windowAfterStart  = 30 * time.Minute
)

// UserSource yields the full user set for matching.
type UserSource interface {
	All() []users.User
}

// Gate is the notification dedup engine. Each cycle it aggregates the
// current schedule, decides which games are newly eligible, fans
// notifications out to matched users, and records the game keys durably so
// they are never re-notified until the daily reset.
type Gate struct {
	aggregator *providers.Aggregator
	games      *store.MemoryStore
	users      UserSource
	notified   *dedup.Store
	notifier   *Notifier
	logger     *slog.Logger
	metrics    *metrics.Recorder
	now        func() time.Time
}

// NewGate constructs a Gate with the given collaborators.
func NewGate(aggregator *providers.Aggregator, games *store.MemoryStore, userSource UserSource, notified *dedup.Store, notifier *Notifier, logger *slog.Logger, recorder *metrics.Recorder) *Gate {
	return &Gate{
		aggregator: aggregator,
		games:      games,
		users:      userSource,
		notified:   notified,
		notifier:   notifier,
		logger:     logger,
		metrics:    recorder,
		now:        time.Now,
	}
}

// RunCycle executes one polling cycle. Delivery failures do not keep a game
// eligible: its key is recorded regardless of outcome, so each game triggers
// at most one delivery attempt per user. The dedup set is flushed to disk
// once per cycle; a failed flush is logged and returned, and the in-memory
// state stays authoritative until the next flush converges.
func (g *Gate) RunCycle(ctx context.Context) error {
	start := time.Now()
	games := g.aggregator.FetchAll(ctx)
	g.games.SetGames(games)

	allUsers := g.users.All()
	now := g.now()
	eligible := 0

	for _, game := range games {
		key := game.Key()
		if g.notified.Contains(key) {
			continue
		}
		if !g.Eligible(game, now) {
			// Not in the window yet (or already past it): leave the key
			// absent so a future cycle can still pick the game up.
			continue
		}
		eligible++

		matched := MatchUsers(game, allUsers)
		g.deliverAll(ctx, game, matched)

		// Terminal for this key until the daily reset, even when every
		// delivery failed: at-most-once per game, no notification storms.
		g.notified.Add(key)
	}

	flushErr := g.notified.Flush()
	if flushErr != nil {
		logging.Error(g.logger, "failed to persist notified set", flushErr)
	}

	if g.metrics != nil {
		g.metrics.RecordCycle(time.Since(start), len(games), eligible)
	}
	logging.Info(g.logger, "notification cycle complete",
		slog.Int(logging.FieldCount, len(games)),
		slog.Int("eligible", eligible),
		slog.Int64(logging.FieldDurationMS, time.Since(start).Milliseconds()),
	)
	return flushErr
}

// Eligible reports whether a game may notify right now: live games always,
// scheduled games only inside the start window.
func (g *Gate) Eligible(game domain.Game, now time.Time) bool {
	if game.IsLive() {
		return true
	}
	delta := game.StartTime.Sub(now)
	return delta <= windowBeforeStart && delta >= -windowAfterStart
}

// deliverAll fans deliveries out concurrently and waits for all of them; a
// slow topic delays only this game's barrier.
func (g *Gate) deliverAll(ctx context.Context, game domain.Game, matched []users.User) {
	var wg sync.WaitGroup
	for _, u := range matched {
		wg.Add(1)
		go func(u users.User) {
			defer wg.Done()
			g.notifier.Notify(ctx, u, game)
		}(u)
	}
	wg.Wait()
}

// NotifyNewlyFollowed handles a user's team-list update: for every currently
// live game involving a newly added team, notify that user immediately. This
// bypasses the dedup set on purpose: the trigger is the user's own action,
// not the polling loop.
func (g *Gate) NotifyNewlyFollowed(ctx context.Context, user users.User, added users.TeamSets) int {
	if len(added) == 0 {
		return 0
	}

	games := g.aggregator.FetchAll(ctx)
	g.games.SetGames(games)

	sent := 0
	for _, game := range games {
		if !game.IsLive() {
			continue
		}
		if !added.Contains(game.League, game.HomeAbbrev) && !added.Contains(game.League, game.AwayAbbrev) {
			continue
		}
		if g.notifier.Notify(ctx, user, game) {
			sent++
		}
	}
	return sent
}
