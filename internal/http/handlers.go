package http

import (
	"context"
	"encoding/json"
	"errors"
	"io"
	"log/slog"
	nethttp "net/http"
	"sort"
	"time"

	"github.com/go-chi/chi/v5"

	"gamewatch/internal/domain"
	"gamewatch/internal/ntfy"
	"gamewatch/internal/scheduler"
	"gamewatch/internal/store"
	"gamewatch/internal/users"
)

type nowFunc func() time.Time

// Window within which a followed game counts as upcoming for /api/games.
const upcomingWindow = 24 * time.Hour

// UserStore is the user persistence surface the handlers need.
type UserStore interface {
	GetOrCreate(id string) (users.User, error)
	Get(id string) (users.User, error)
	UpdateTeams(id string, teams users.TeamSets) (users.User, users.TeamSets, error)
	UpdateBrowser(id, browser string) (users.User, error)
}

// LiveChecker pushes immediate notifications for live games involving newly
// followed teams. Satisfied by *notify.Gate.
type LiveChecker interface {
	NotifyNewlyFollowed(ctx context.Context, user users.User, added users.TeamSets) int
}

// Sender delivers ad-hoc messages, used by the test-notification endpoint.
type Sender interface {
	Publish(ctx context.Context, topic string, msg ntfy.Message) error
}

// Handler wires HTTP routes to the stores and the notification engine.
type Handler struct {
	users         UserStore
	directory     *domain.Directory
	games         *store.MemoryStore
	live          LiveChecker
	sender        Sender
	streamBaseURL string
	logger        *slog.Logger
	statusFn      func() scheduler.Status
	now           nowFunc
}

// NewHandler constructs a Handler with defaults.
func NewHandler(userStore UserStore, directory *domain.Directory, games *store.MemoryStore, live LiveChecker, sender Sender, streamBaseURL string, logger *slog.Logger, statusFn func() scheduler.Status) *Handler {
	return &Handler{
		users:         userStore,
		directory:     directory,
		games:         games,
		live:          live,
		sender:        sender,
		streamBaseURL: streamBaseURL,
		logger:        logger,
		statusFn:      statusFn,
		now:           time.Now,
	}
}

// Health reports the service health.
func (h *Handler) Health(w nethttp.ResponseWriter, r *nethttp.Request) {
	if err := r.Context().Err(); err != nil {
		writeError(w, r, nethttp.StatusServiceUnavailable, "shutting down", h.logger)
		return
	}
	writeJSON(w, nethttp.StatusOK, map[string]string{"status": "ok"}, h.logger)
}

// Ready reports readiness for traffic based on the scheduler's recent health.
func (h *Handler) Ready(w nethttp.ResponseWriter, r *nethttp.Request) {
	if h.statusFn == nil {
		writeJSON(w, nethttp.StatusOK, map[string]string{"status": "ready"}, h.logger)
		return
	}
	status := h.statusFn()
	if status.IsReady() {
		writeJSON(w, nethttp.StatusOK, map[string]string{"status": "ready"}, h.logger)
		return
	}
	msg := status.LastError
	if msg == "" {
		msg = "not ready"
	}
	writeError(w, r, nethttp.StatusServiceUnavailable, msg, h.logger)
}

// CreateUser gets or creates a user. A known userId in the body returns that
// user unchanged; anything else registers a fresh one.
func (h *Handler) CreateUser(w nethttp.ResponseWriter, r *nethttp.Request) {
	var body struct {
		UserID string `json:"userId"`
	}
	if err := json.NewDecoder(r.Body).Decode(&body); err != nil && !errors.Is(err, io.EOF) {
		writeError(w, r, nethttp.StatusBadRequest, "invalid request body", h.logger)
		return
	}

	user, err := h.users.GetOrCreate(body.UserID)
	if err != nil {
		writeError(w, r, nethttp.StatusInternalServerError, "failed to save user", h.logger)
		return
	}
	writeJSON(w, nethttp.StatusOK, user, h.logger)
}

// GetUser returns a user by ID.
func (h *Handler) GetUser(w nethttp.ResponseWriter, r *nethttp.Request) {
	user, err := h.users.Get(chi.URLParam(r, "userID"))
	if err != nil {
		writeError(w, r, nethttp.StatusNotFound, "user not found", h.logger)
		return
	}
	writeJSON(w, nethttp.StatusOK, user, h.logger)
}

// UpdateTeams replaces the user's followed teams and immediately notifies
// them about live games involving any newly added team.
func (h *Handler) UpdateTeams(w nethttp.ResponseWriter, r *nethttp.Request) {
	var body struct {
		Teams users.TeamSets `json:"teams"`
	}
	if err := json.NewDecoder(r.Body).Decode(&body); err != nil || body.Teams == nil {
		writeError(w, r, nethttp.StatusBadRequest, "invalid request body", h.logger)
		return
	}
	for league := range body.Teams {
		if !domain.IsValidLeague(string(league)) {
			writeError(w, r, nethttp.StatusBadRequest, "unknown league", h.logger)
			return
		}
	}

	user, added, err := h.users.UpdateTeams(chi.URLParam(r, "userID"), body.Teams)
	if errors.Is(err, users.ErrNotFound) {
		writeError(w, r, nethttp.StatusNotFound, "user not found", h.logger)
		return
	}
	if err != nil {
		writeError(w, r, nethttp.StatusInternalServerError, "failed to save user", h.logger)
		return
	}

	if h.live != nil && len(added) > 0 {
		h.live.NotifyNewlyFollowed(r.Context(), user, added)
	}

	writeJSON(w, nethttp.StatusOK, map[string]any{"success": true, "teams": user.Teams}, h.logger)
}

// UpdateBrowser records the user's preferred mobile browser for redirects.
func (h *Handler) UpdateBrowser(w nethttp.ResponseWriter, r *nethttp.Request) {
	var body struct {
		Browser string `json:"browser"`
	}
	if err := json.NewDecoder(r.Body).Decode(&body); err != nil {
		writeError(w, r, nethttp.StatusBadRequest, "invalid request body", h.logger)
		return
	}
	if !validBrowser(body.Browser) {
		writeError(w, r, nethttp.StatusBadRequest, "unknown browser", h.logger)
		return
	}

	user, err := h.users.UpdateBrowser(chi.URLParam(r, "userID"), body.Browser)
	if errors.Is(err, users.ErrNotFound) {
		writeError(w, r, nethttp.StatusNotFound, "user not found", h.logger)
		return
	}
	if err != nil {
		writeError(w, r, nethttp.StatusInternalServerError, "failed to save user", h.logger)
		return
	}
	writeJSON(w, nethttp.StatusOK, user, h.logger)
}

// Teams returns the full static team directory keyed by league.
func (h *Handler) Teams(w nethttp.ResponseWriter, r *nethttp.Request) {
	writeJSON(w, nethttp.StatusOK, h.directory.All(), h.logger)
}

// gameWithStream is a game plus its resolved watch link; the link is null
// when either team is missing from the directory.
type gameWithStream struct {
	domain.Game
	StreamURL *string `json:"streamUrl"`
}

// GamesForUser returns the user's followed games starting within the next 24
// hours, served from the game cache refreshed by the polling loop.
func (h *Handler) GamesForUser(w nethttp.ResponseWriter, r *nethttp.Request) {
	user, err := h.users.Get(chi.URLParam(r, "userID"))
	if err != nil {
		writeError(w, r, nethttp.StatusNotFound, "user not found", h.logger)
		return
	}

	cutoff := h.now().Add(upcomingWindow)
	result := make([]gameWithStream, 0)
	for _, game := range h.games.ListGames() {
		followed := user.Teams.Contains(game.League, game.HomeAbbrev) ||
			user.Teams.Contains(game.League, game.AwayAbbrev)
		if !followed || game.StartTime.After(cutoff) {
			continue
		}
		entry := gameWithStream{Game: game}
		if url, ok := domain.GameStreamURL(h.streamBaseURL, h.directory, game); ok {
			entry.StreamURL = &url
		}
		result = append(result, entry)
	}
	sort.Slice(result, func(i, j int) bool {
		return result[i].StartTime.Before(result[j].StartTime)
	})

	writeJSON(w, nethttp.StatusOK, result, h.logger)
}

// TestNotification sends a canned message to the user's topic so they can
// verify their subscription end to end.
func (h *Handler) TestNotification(w nethttp.ResponseWriter, r *nethttp.Request) {
	user, err := h.users.Get(chi.URLParam(r, "userID"))
	if err != nil {
		writeError(w, r, nethttp.StatusNotFound, "user not found", h.logger)
		return
	}

	msg := ntfy.Message{
		Title:    "Test Notification",
		Body:     "Your GameWatch notifications are working!",
		ClickURL: "https://ntfy.sh",
	}
	sendErr := h.sender.Publish(r.Context(), user.NtfyTopic, msg)
	writeJSON(w, nethttp.StatusOK, map[string]bool{"success": sendErr == nil}, h.logger)
}

// resolveStream maps the (league, gameID) route params to the external
// stream URL via the game cache and the team directory.
func (h *Handler) resolveStream(w nethttp.ResponseWriter, r *nethttp.Request) (string, bool) {
	league := chi.URLParam(r, "league")
	if !domain.IsValidLeague(league) {
		writeError(w, r, nethttp.StatusNotFound, "game not found", h.logger)
		return "", false
	}

	game, ok := h.games.GetGame(domain.League(league), chi.URLParam(r, "gameID"))
	if !ok {
		writeError(w, r, nethttp.StatusNotFound, "game not found", h.logger)
		return "", false
	}

	url, ok := domain.GameStreamURL(h.streamBaseURL, h.directory, game)
	if !ok {
		writeError(w, r, nethttp.StatusNotFound, "team data not found", h.logger)
		return "", false
	}
	return url, true
}

// Watch redirects straight to the stream URL for a game.
func (h *Handler) Watch(w nethttp.ResponseWriter, r *nethttp.Request) {
	url, ok := h.resolveStream(w, r)
	if !ok {
		return
	}
	nethttp.Redirect(w, r, url, nethttp.StatusFound)
}

// SmartRedirect redirects to the stream URL wrapped in the scheme of the
// requesting user's preferred mobile browser. Unknown users and users without
// a preference get the plain URL.
func (h *Handler) SmartRedirect(w nethttp.ResponseWriter, r *nethttp.Request) {
	url, ok := h.resolveStream(w, r)
	if !ok {
		return
	}

	browser := ""
	if userID := r.URL.Query().Get("u"); userID != "" {
		if user, err := h.users.Get(userID); err == nil {
			browser = user.Browser
		}
	}

	nethttp.Redirect(w, r, browserURL(browser, url), nethttp.StatusFound)
}

func validBrowser(browser string) bool {
	switch browser {
	case "", "default", "chrome", "firefox", "brave":
		return true
	}
	return false
}
