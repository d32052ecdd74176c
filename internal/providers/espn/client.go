package espn

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strings"

	"gamewatch/internal/domain"
	"gamewatch/internal/providers"
)

// sportPaths maps a league to its ESPN scoreboard path segment.
var sportPaths = map[domain.League]string{
	domain.LeagueNBA: "basketball/nba",
	domain.LeagueMLB: "baseball/mlb",
}

// Config controls how the ESPN client reaches the upstream API.
type Config struct {
	League     domain.League
	BaseURL    string
	HTTPClient *http.Client
}

// Client fetches one league's scoreboard from ESPN's site API and maps it to
// domain games. The same client serves NBA and MLB; only the path differs.
type Client struct {
	league     domain.League
	baseURL    string
	httpClient *http.Client
}

// NewClient constructs an ESPN scoreboard client for the configured league.
func NewClient(cfg Config) *Client {
	return &Client{
		league:     cfg.League,
		baseURL:    normalizeBaseURL(cfg.BaseURL),
		httpClient: resolveHTTPClient(cfg.HTTPClient),
	}
}

// League identifies this provider's league.
func (c *Client) League() domain.League {
	return c.league
}

// FetchGames retrieves today's scoreboard for the configured league.
func (c *Client) FetchGames(ctx context.Context) ([]domain.Game, error) {
	path, ok := sportPaths[c.league]
	if !ok {
		return nil, &providers.FetchError{League: c.league, Err: fmt.Errorf("espn: unsupported league %q", c.league)}
	}

	url := fmt.Sprintf("%s/apis/site/v2/sports/%s/scoreboard", c.baseURL, path)
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return nil, &providers.FetchError{League: c.league, Err: err}
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, &providers.FetchError{League: c.league, Err: err}
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		body, _ := io.ReadAll(io.LimitReader(resp.Body, 512))
		return nil, &providers.FetchError{
			League:     c.league,
			StatusCode: resp.StatusCode,
			Err:        fmt.Errorf("unexpected status: %s", strings.TrimSpace(string(body))),
		}
	}

	var payload scoreboardResponse
	if decodeErr := json.NewDecoder(resp.Body).Decode(&payload); decodeErr != nil {
		return nil, &providers.FetchError{League: c.league, Err: decodeErr}
	}

	games := make([]domain.Game, 0, len(payload.Events))
	for _, ev := range payload.Events {
		games = append(games, mapEvent(c.league, ev))
	}
	return games, nil
}

func normalizeBaseURL(base string) string {
	if base == "" {
		return defaultBaseURL
	}
	return strings.TrimRight(base, "/")
}

func resolveHTTPClient(client *http.Client) *http.Client {
	if client != nil {
		return client
	}
	return &http.Client{Timeout: defaultHTTPTimeout}
}
