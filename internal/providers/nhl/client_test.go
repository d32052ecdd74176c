package nhl

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	"gamewatch/internal/domain"
	"gamewatch/internal/providers"
)

const scheduleFixture = `{
  "gameWeek": [
    {
      "date": "2024-10-08",
      "games": [
        {
          "id": 2024020001,
          "startTimeUTC": "2024-10-08T23:00:00Z",
          "gameState": "FUT",
          "homeTeam": {"abbrev": "TOR", "placeName": {"default": "Toronto"}, "commonName": {"default": "Maple Leafs"}},
          "awayTeam": {"abbrev": "MTL", "placeName": {"default": "Montreal"}, "commonName": {"default": "Canadiens"}}
        }
      ]
    },
    {
      "date": "2024-10-09",
      "games": [
        {
          "id": 2024020002,
          "startTimeUTC": "2024-10-09T23:00:00Z",
          "gameState": "LIVE",
          "homeTeam": {"abbrev": "BOS", "placeName": {"default": "Boston"}, "commonName": {"default": "Bruins"}},
          "awayTeam": {"abbrev": "NYR", "placeName": {"default": "New York"}, "commonName": {"default": "Rangers"}}
        }
      ]
    }
  ]
}`

func TestFetchGamesFlattensGameWeek(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path != schedulePath {
			t.Errorf("unexpected path %s", r.URL.Path)
		}
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(scheduleFixture))
	}))
	defer srv.Close()

	client := NewClient(Config{BaseURL: srv.URL})
	games, err := client.FetchGames(context.Background())
	if err != nil {
		t.Fatalf("FetchGames returned error: %v", err)
	}

	if len(games) != 2 {
		t.Fatalf("expected 2 games across days, got %d", len(games))
	}
	if games[0].GameID != "2024020001" || games[0].State != domain.StateScheduled {
		t.Errorf("unexpected first game: %+v", games[0])
	}
	if games[1].GameID != "2024020002" || games[1].State != domain.StateLive {
		t.Errorf("unexpected second game: %+v", games[1])
	}
}

func TestFetchGamesNon200(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, "upstream down", http.StatusBadGateway)
	}))
	defer srv.Close()

	client := NewClient(Config{BaseURL: srv.URL})
	_, err := client.FetchGames(context.Background())
	if err == nil {
		t.Fatal("expected error")
	}

	fErr, ok := providers.AsFetchError(err)
	if !ok {
		t.Fatalf("expected FetchError, got %T", err)
	}
	if fErr.League != domain.LeagueNHL || fErr.StatusCode != http.StatusBadGateway {
		t.Errorf("unexpected FetchError: %+v", fErr)
	}
}

func TestFetchGamesBadJSON(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		_, _ = w.Write([]byte("{not json"))
	}))
	defer srv.Close()

	client := NewClient(Config{BaseURL: srv.URL})
	if _, err := client.FetchGames(context.Background()); err == nil {
		t.Fatal("expected decode error")
	}
}

func TestFetchGamesEmptyWeek(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		_, _ = w.Write([]byte(`{"gameWeek": []}`))
	}))
	defer srv.Close()

	client := NewClient(Config{BaseURL: srv.URL})
	games, err := client.FetchGames(context.Background())
	if err != nil {
		t.Fatalf("FetchGames returned error: %v", err)
	}
	if len(games) != 0 {
		t.Fatalf("expected no games, got %d", len(games))
	}
}
