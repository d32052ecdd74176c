package domain

import (
	"fmt"
	"time"
)

// League identifies one of the supported sports organizations.
type League string

const (
	LeagueNHL League = "nhl"
	LeagueNBA League = "nba"
	LeagueMLB League = "mlb"
)

// Leagues lists every supported league in a stable order.
func Leagues() []League {
	return []League{LeagueNHL, LeagueNBA, LeagueMLB}
}

// IsValidLeague reports whether the value names a supported league.
func IsValidLeague(value string) bool {
	switch League(value) {
	case LeagueNHL, LeagueNBA, LeagueMLB:
		return true
	}
	return false
}

// GameState mirrors the shared contract for game lifecycle states.
// Provider-specific raw status codes are normalized into this set; anything
// a mapper does not recognize becomes StateUnknown.
type GameState string

const (
	StateScheduled GameState = "scheduled"
	StateLive      GameState = "live"
	StateFinal     GameState = "final"
	StateUnknown   GameState = "unknown"
)

// Game is the canonical game shape shared across providers. Games are
// rebuilt fresh on every poll and never persisted.
type Game struct {
	League     League    `json:"league"`
	GameID     string    `json:"gameId"`
	StartTime  time.Time `json:"startTime"`
	HomeAbbrev string    `json:"homeTeam"`
	AwayAbbrev string    `json:"awayTeam"`
	HomeName   string    `json:"homeTeamName"`
	AwayName   string    `json:"awayTeamName"`
	State      GameState `json:"state"`
}

// Key returns the compound identity used for notification dedup.
func (g Game) Key() string {
	return fmt.Sprintf("%s-%s", g.League, g.GameID)
}

// IsLive reports whether the game is currently in progress.
func (g Game) IsLive() bool {
	return g.State == StateLive
}

// Team is one entry in the static team directory.
type Team struct {
	League League `json:"league"`
	Abbrev string `json:"abbrev"`
	Name   string `json:"name"`
	City   string `json:"city"`
	Slug   string `json:"streamName"`
}
