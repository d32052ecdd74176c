package nhl

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

// Config controls how the NHL client reaches the upstream API.
type Config struct {
	BaseURL    string
	HTTPClient *http.Client
}

// Client fetches the NHL weekly schedule and maps it to domain games.
type Client struct {
	baseURL    string
	httpClient *http.Client
}

// NewClient constructs an NHL schedule client with the provided configuration.
func NewClient(cfg Config) *Client {
	return &Client{
		baseURL:    normalizeBaseURL(cfg.BaseURL),
		httpClient: resolveHTTPClient(cfg.HTTPClient),
	}
}

// League identifies this provider's league.
func (c *Client) League() domain.League {
	return domain.LeagueNHL
}

// FetchGames retrieves the current schedule window from the NHL API.
func (c *Client) FetchGames(ctx context.Context) ([]domain.Game, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.baseURL+schedulePath, nil)
	if err != nil {
		return nil, &providers.FetchError{League: domain.LeagueNHL, Err: err}
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, &providers.FetchError{League: domain.LeagueNHL, Err: err}
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		body, _ := io.ReadAll(io.LimitReader(resp.Body, 512))
		return nil, &providers.FetchError{
			League:     domain.LeagueNHL,
			StatusCode: resp.StatusCode,
			Err:        fmt.Errorf("unexpected status: %s", strings.TrimSpace(string(body))),
		}
	}

	var payload scheduleResponse
	if decodeErr := json.NewDecoder(resp.Body).Decode(&payload); decodeErr != nil {
		return nil, &providers.FetchError{League: domain.LeagueNHL, Err: decodeErr}
	}

	games := make([]domain.Game, 0)
	for _, day := range payload.GameWeek {
		for _, g := range day.Games {
			games = append(games, mapGame(g))
		}
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
