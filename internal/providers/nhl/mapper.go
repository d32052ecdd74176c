package nhl

import (
	"strconv"
	"strings"
	"time"

	"gamewatch/internal/domain"
)

func mapGame(g gameResponse) domain.Game {
	return domain.Game{
		League:     domain.LeagueNHL,
		GameID:     strconv.FormatInt(g.ID, 10),
		StartTime:  parseStartTime(g.StartTimeUTC),
		HomeAbbrev: g.HomeTeam.Abbrev,
		AwayAbbrev: g.AwayTeam.Abbrev,
		HomeName:   teamName(g.HomeTeam),
		AwayName:   teamName(g.AwayTeam),
		State:      mapState(g.GameState),
	}
}

// mapState normalizes the NHL status vocabulary (FUT, PRE, LIVE, CRIT, OFF,
// FINAL) into the shared state set.
func mapState(state string) domain.GameState {
	switch strings.ToUpper(state) {
	case "FUT", "PRE":
		return domain.StateScheduled
	case "LIVE", "CRIT":
		return domain.StateLive
	case "OFF", "FINAL", "OVER":
		return domain.StateFinal
	default:
		return domain.StateUnknown
	}
}

func teamName(t teamResponse) string {
	place := strings.TrimSpace(t.PlaceName.Default)
	common := strings.TrimSpace(t.CommonName.Default)
	switch {
	case place == "":
		return common
	case common == "":
		return place
	default:
		return place + " " + common
	}
}

func parseStartTime(raw string) time.Time {
	t, err := time.Parse(time.RFC3339, raw)
	if err != nil {
		return time.Time{}
	}
	return t
}
