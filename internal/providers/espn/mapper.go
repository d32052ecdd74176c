package espn

import (
	"strings"
	"time"

	"gamewatch/internal/domain"
)

func mapEvent(league domain.League, ev eventResponse) domain.Game {
	game := domain.Game{
		League:    league,
		GameID:    ev.ID,
		StartTime: parseStartTime(ev.Date),
		State:     mapStatus(ev.Status.Type.Name),
	}

	if len(ev.Competitions) == 0 {
		return game
	}
	for _, c := range ev.Competitions[0].Competitors {
		switch c.HomeAway {
		case "home":
			game.HomeAbbrev = c.Team.Abbreviation
			game.HomeName = c.Team.DisplayName
		case "away":
			game.AwayAbbrev = c.Team.Abbreviation
			game.AwayName = c.Team.DisplayName
		}
	}
	return game
}

// mapStatus normalizes ESPN's STATUS_* vocabulary into the shared state set.
func mapStatus(name string) domain.GameState {
	switch strings.ToUpper(name) {
	case "STATUS_SCHEDULED":
		return domain.StateScheduled
	case "STATUS_IN_PROGRESS", "STATUS_HALFTIME", "STATUS_END_PERIOD", "STATUS_RAIN_DELAY":
		return domain.StateLive
	case "STATUS_FINAL", "STATUS_FULL_TIME":
		return domain.StateFinal
	default:
		return domain.StateUnknown
	}
}

func parseStartTime(raw string) time.Time {
	// ESPN emits RFC3339 with and without seconds depending on the sport.
	for _, layout := range []string{time.RFC3339, "2006-01-02T15:04Z07:00"} {
		if t, err := time.Parse(layout, raw); err == nil {
			return t
		}
	}
	return time.Time{}
}
