package providers

import (
	"context"

	"gamewatch/internal/domain"
)

// ScheduleProvider defines how one league's upstream schedule is fetched and
// normalized. Implementations map their raw status vocabulary into the shared
// domain.GameState set and must tolerate schema drift: a malformed record
// degrades to zero values instead of failing the batch.
type ScheduleProvider interface {
	League() domain.League
	FetchGames(ctx context.Context) ([]domain.Game, error)
}
