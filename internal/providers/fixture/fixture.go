package fixture

import (
	"context"
	"time"

	"gamewatch/internal/domain"
)

// Provider returns a static set of games for one league, useful for local
// testing and bootstrapping without hitting real upstreams.
type Provider struct {
	league domain.League
	now    func() time.Time
}

// New creates a fixture provider for the given league.
func New(league domain.League) *Provider {
	return &Provider{
		league: league,
		now:    time.Now,
	}
}

// League identifies this provider's league.
func (p *Provider) League() domain.League {
	return p.league
}

// FetchGames returns a deterministic pair of example games: one starting
// shortly (inside the notification window) and one live.
func (p *Provider) FetchGames(ctx context.Context) ([]domain.Game, error) {
	_ = ctx

	now := p.now().UTC()
	home, away, homeName, awayName := fixtureTeams(p.league)

	return []domain.Game{
		{
			League:     p.league,
			GameID:     "fixture-" + string(p.league) + "-1",
			StartTime:  now.Add(3 * time.Minute),
			HomeAbbrev: home,
			AwayAbbrev: away,
			HomeName:   homeName,
			AwayName:   awayName,
			State:      domain.StateScheduled,
		},
		{
			League:     p.league,
			GameID:     "fixture-" + string(p.league) + "-2",
			StartTime:  now.Add(-time.Hour),
			HomeAbbrev: away,
			AwayAbbrev: home,
			HomeName:   awayName,
			AwayName:   homeName,
			State:      domain.StateLive,
		},
	}, nil
}

func fixtureTeams(league domain.League) (home, away, homeName, awayName string) {
	switch league {
	case domain.LeagueNBA:
		return "BOS", "LAL", "Boston Celtics", "Los Angeles Lakers"
	case domain.LeagueMLB:
		return "NYY", "BOS", "New York Yankees", "Boston Red Sox"
	default:
		return "TOR", "MTL", "Toronto Maple Leafs", "Montreal Canadiens"
	}
}
