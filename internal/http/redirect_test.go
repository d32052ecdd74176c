package http

import (
	nethttp "net/http"
	"testing"
	"time"

	"gamewatch/internal/domain"
)

func seedGame(f *fixture) domain.Game {
	game := domain.Game{
		League:     domain.LeagueNHL,
		GameID:     "2024020100",
		StartTime:  time.Now(),
		HomeAbbrev: "TOR",
		AwayAbbrev: "MTL",
		State:      domain.StateLive,
	}
	f.games.SetGames([]domain.Game{game})
	return game
}

const wantStream = "https://v2.streameast.sk/nhl/montreal-canadiens-vs-toronto-maple-leafs/"

func TestWatchRedirectsToStream(t *testing.T) {
	f := newFixture(t)
	seedGame(f)

	rec := f.do(t, nethttp.MethodGet, "/watch/nhl/2024020100", "")
	if rec.Code != nethttp.StatusFound {
		t.Fatalf("status = %d", rec.Code)
	}
	if got := rec.Header().Get("Location"); got != wantStream {
		t.Errorf("Location = %q, want %q", got, wantStream)
	}
}

func TestWatchUnknownGame(t *testing.T) {
	f := newFixture(t)
	seedGame(f)

	for _, path := range []string{"/watch/nhl/999", "/watch/xfl/2024020100"} {
		rec := f.do(t, nethttp.MethodGet, path, "")
		if rec.Code != nethttp.StatusNotFound {
			t.Errorf("%s: status = %d", path, rec.Code)
		}
	}
}

func TestWatchUnknownTeamData(t *testing.T) {
	f := newFixture(t)
	f.games.SetGames([]domain.Game{{
		League: domain.LeagueNHL, GameID: "1", HomeAbbrev: "???", AwayAbbrev: "MTL",
	}})

	rec := f.do(t, nethttp.MethodGet, "/watch/nhl/1", "")
	if rec.Code != nethttp.StatusNotFound {
		t.Fatalf("status = %d", rec.Code)
	}
}

func TestSmartRedirectBrowserSchemes(t *testing.T) {
	cases := []struct {
		browser string
		want    string
	}{
		{"", wantStream},
		{"default", wantStream},
		{"chrome", "intent://v2.streameast.sk/nhl/montreal-canadiens-vs-toronto-maple-leafs/#Intent;scheme=https;package=com.android.chrome;end"},
		{"firefox", "firefox://open-url?url=https%3A%2F%2Fv2.streameast.sk%2Fnhl%2Fmontreal-canadiens-vs-toronto-maple-leafs%2F"},
		{"brave", "brave://open-url?url=https%3A%2F%2Fv2.streameast.sk%2Fnhl%2Fmontreal-canadiens-vs-toronto-maple-leafs%2F"},
	}
	for _, tc := range cases {
		t.Run("browser "+tc.browser, func(t *testing.T) {
			f := newFixture(t)
			seedGame(f)
			u, _ := f.users.GetOrCreate("")
			if tc.browser != "" {
				if _, err := f.users.UpdateBrowser(u.ID, tc.browser); err != nil {
					t.Fatal(err)
				}
			}

			rec := f.do(t, nethttp.MethodGet, "/go/nhl/2024020100?u="+u.ID, "")
			if rec.Code != nethttp.StatusFound {
				t.Fatalf("status = %d", rec.Code)
			}
			if got := rec.Header().Get("Location"); got != tc.want {
				t.Errorf("Location = %q, want %q", got, tc.want)
			}
		})
	}
}

func TestSmartRedirectUnknownUserFallsBack(t *testing.T) {
	f := newFixture(t)
	seedGame(f)

	rec := f.do(t, nethttp.MethodGet, "/go/nhl/2024020100?u=missing", "")
	if rec.Code != nethttp.StatusFound {
		t.Fatalf("status = %d", rec.Code)
	}
	if got := rec.Header().Get("Location"); got != wantStream {
		t.Errorf("Location = %q, want plain stream URL", got)
	}
}

func TestSmartRedirectNoUserParam(t *testing.T) {
	f := newFixture(t)
	seedGame(f)

	rec := f.do(t, nethttp.MethodGet, "/go/nhl/2024020100", "")
	if rec.Code != nethttp.StatusFound {
		t.Fatalf("status = %d", rec.Code)
	}
	if got := rec.Header().Get("Location"); got != wantStream {
		t.Errorf("Location = %q", got)
	}
}

func TestBrowserURLHTTPTarget(t *testing.T) {
	got := browserURL("chrome", "http://example.com/x")
	want := "intent://example.com/x#Intent;scheme=http;package=com.android.chrome;end"
	if got != want {
		t.Errorf("got %q, want %q", got, want)
	}
}

func TestBrowserURLNoScheme(t *testing.T) {
	if got := browserURL("chrome", "example.com/x"); got != "example.com/x" {
		t.Errorf("got %q, want pass-through", got)
	}
}
