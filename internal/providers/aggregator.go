package providers

import (
	"context"
	"log/slog"
	"sync"
	"time"

	"gamewatch/internal/domain"
	"gamewatch/internal/logging"
	"gamewatch/internal/metrics"
)

// Aggregator fans out to every registered ScheduleProvider and concatenates
// their results. One league's outage never blocks or cancels the others: the
// join is an all-settle, with failed leagues degrading to empty.
type Aggregator struct {
	providers []ScheduleProvider
	logger    *slog.Logger
	metrics   *metrics.Recorder
}

// NewAggregator constructs an Aggregator over the given providers.
func NewAggregator(providers []ScheduleProvider, logger *slog.Logger, recorder *metrics.Recorder) *Aggregator {
	return &Aggregator{
		providers: providers,
		logger:    logger,
		metrics:   recorder,
	}
}

// FetchAll fetches every league concurrently and returns the combined game
// list in no particular cross-league order.
func (a *Aggregator) FetchAll(ctx context.Context) []domain.Game {
	results := make([][]domain.Game, len(a.providers))

	var wg sync.WaitGroup
	for i, p := range a.providers {
		wg.Add(1)
		go func(i int, p ScheduleProvider) {
			defer wg.Done()
			start := time.Now()
			games, err := p.FetchGames(ctx)
			if a.metrics != nil {
				a.metrics.RecordFetchAttempt(string(p.League()), time.Since(start), err)
			}
			if err != nil {
				logging.Error(a.logger, "schedule fetch failed", err,
					slog.String(logging.FieldLeague, string(p.League())),
					slog.Int64(logging.FieldDurationMS, time.Since(start).Milliseconds()),
				)
				return
			}
			results[i] = games
		}(i, p)
	}
	wg.Wait()

	var all []domain.Game
	for _, games := range results {
		all = append(all, games...)
	}
	return all
}
