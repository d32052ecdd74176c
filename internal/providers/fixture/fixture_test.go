package fixture

import (
	"context"
	"testing"
	"time"

	"gamewatch/internal/domain"
)

func TestFixtureProviderIsDeterministic(t *testing.T) {
	p := New(domain.LeagueNHL)
	p.now = func() time.Time { return time.Date(2024, 1, 15, 12, 0, 0, 0, time.UTC) }

	games, err := p.FetchGames(context.Background())
	if err != nil {
		t.Fatalf("FetchGames returned error: %v", err)
	}
	if len(games) != 2 {
		t.Fatalf("expected 2 games, got %d", len(games))
	}

	if games[0].State != domain.StateScheduled {
		t.Errorf("first game state = %s", games[0].State)
	}
	if want := time.Date(2024, 1, 15, 12, 3, 0, 0, time.UTC); !games[0].StartTime.Equal(want) {
		t.Errorf("first game start = %v, want %v", games[0].StartTime, want)
	}
	if games[1].State != domain.StateLive {
		t.Errorf("second game state = %s", games[1].State)
	}
	for _, g := range games {
		if g.League != domain.LeagueNHL {
			t.Errorf("league = %s", g.League)
		}
	}
}

func TestFixtureTeamsPerLeague(t *testing.T) {
	for _, league := range domain.Leagues() {
		games, err := New(league).FetchGames(context.Background())
		if err != nil {
			t.Fatalf("%s: %v", league, err)
		}
		dir := domain.NewDirectory()
		for _, g := range games {
			if _, ok := dir.Lookup(league, g.HomeAbbrev); !ok {
				t.Errorf("%s: unknown home abbrev %s", league, g.HomeAbbrev)
			}
		}
	}
}
