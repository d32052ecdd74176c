package domain

import "fmt"

// StreamURL builds the external watch link for a matchup:
// {base}/{league}/{awaySlug}-vs-{homeSlug}/
func StreamURL(base string, league League, away, home Team) string {
	return fmt.Sprintf("%s/%s/%s-vs-%s/", base, league, away.Slug, home.Slug)
}

// GameStreamURL resolves both teams through the directory and builds the
// watch link. The second return is false when either team is unknown.
func GameStreamURL(base string, dir *Directory, game Game) (string, bool) {
	home, ok := dir.Lookup(game.League, game.HomeAbbrev)
	if !ok {
		return "", false
	}
	away, ok := dir.Lookup(game.League, game.AwayAbbrev)
	if !ok {
		return "", false
	}
	return StreamURL(base, game.League, away, home), true
}
