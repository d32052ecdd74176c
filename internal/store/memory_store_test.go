package store

import (
	"testing"

	"gamewatch/internal/domain"
)

func TestMemoryStoreRoundTrip(t *testing.T) {
	s := NewMemoryStore()

	if games := s.ListGames(); len(games) != 0 {
		t.Fatalf("expected empty store, got %d games", len(games))
	}

	s.SetGames([]domain.Game{
		{League: domain.LeagueNHL, GameID: "1"},
		{League: domain.LeagueNBA, GameID: "1"},
	})

	if games := s.ListGames(); len(games) != 2 {
		t.Fatalf("expected 2 games, got %d", len(games))
	}

	// Same gameID in different leagues are distinct keys.
	g, ok := s.GetGame(domain.LeagueNBA, "1")
	if !ok || g.League != domain.LeagueNBA {
		t.Fatalf("GetGame(nba, 1) = %+v, %v", g, ok)
	}

	if _, ok := s.GetGame(domain.LeagueMLB, "1"); ok {
		t.Error("expected miss for absent league")
	}
}

func TestSetGamesReplacesSnapshot(t *testing.T) {
	s := NewMemoryStore()
	s.SetGames([]domain.Game{{League: domain.LeagueNHL, GameID: "old"}})
	s.SetGames([]domain.Game{{League: domain.LeagueNHL, GameID: "new"}})

	if _, ok := s.GetGame(domain.LeagueNHL, "old"); ok {
		t.Error("stale game survived replacement")
	}
	if _, ok := s.GetGame(domain.LeagueNHL, "new"); !ok {
		t.Error("new game missing after replacement")
	}
}
