package users

import (
	"time"

	"gamewatch/internal/domain"
)

// TeamSets maps a league to the team abbreviations a user follows.
type TeamSets map[domain.League][]string

// Contains reports whether the league set includes the abbreviation.
func (t TeamSets) Contains(league domain.League, abbrev string) bool {
	for _, a := range t[league] {
		if a == abbrev {
			return true
		}
	}
	return false
}

// Added returns, per league, the abbreviations present in next but not in t.
func (t TeamSets) Added(next TeamSets) TeamSets {
	added := TeamSets{}
	for league, teams := range next {
		for _, abbrev := range teams {
			if !t.Contains(league, abbrev) {
				added[league] = append(added[league], abbrev)
			}
		}
	}
	return added
}

// EmptySets returns a TeamSets with an empty entry per supported league.
func EmptySets() TeamSets {
	sets := TeamSets{}
	for _, league := range domain.Leagues() {
		sets[league] = []string{}
	}
	return sets
}

// User is one registered notification recipient. The ID doubles as the
// storage key; the ntfy topic is the private delivery channel.
type User struct {
	ID        string    `json:"userId"`
	NtfyTopic string    `json:"ntfyTopic"`
	Teams     TeamSets  `json:"teams"`
	Browser   string    `json:"browser,omitempty"`
	CreatedAt time.Time `json:"createdAt"`
}
