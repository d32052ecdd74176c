package notify

import (
	"gamewatch/internal/domain"
	"gamewatch/internal/users"
)

// MatchUsers returns every user following either participant of the game in
// the game's league. Pure; result order is unspecified.
func MatchUsers(game domain.Game, all []users.User) []users.User {
	var matched []users.User
	for _, u := range all {
		if u.Teams.Contains(game.League, game.HomeAbbrev) || u.Teams.Contains(game.League, game.AwayAbbrev) {
			matched = append(matched, u)
		}
	}
	return matched
}
