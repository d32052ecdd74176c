package http

import (
	"context"
	"encoding/json"
	"errors"
	nethttp "net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"gamewatch/internal/domain"
	"gamewatch/internal/ntfy"
	"gamewatch/internal/scheduler"
	"gamewatch/internal/store"
	"gamewatch/internal/users"
)

type stubLiveChecker struct {
	calls int
	user  users.User
	added users.TeamSets
}

func (s *stubLiveChecker) NotifyNewlyFollowed(ctx context.Context, user users.User, added users.TeamSets) int {
	s.calls++
	s.user = user
	s.added = added
	return 0
}

type stubSender struct {
	topics []string
	err    error
}

func (s *stubSender) Publish(ctx context.Context, topic string, msg ntfy.Message) error {
	if s.err != nil {
		return s.err
	}
	s.topics = append(s.topics, topic)
	return nil
}

type fixture struct {
	handler *Handler
	router  nethttp.Handler
	users   *users.FileStore
	games   *store.MemoryStore
	live    *stubLiveChecker
	sender  *stubSender
}

func newFixture(t *testing.T) *fixture {
	t.Helper()

	userStore := users.NewFileStore(t.TempDir(), nil)
	games := store.NewMemoryStore()
	live := &stubLiveChecker{}
	sender := &stubSender{}

	h := NewHandler(userStore, domain.NewDirectory(), games, live, sender,
		"https://v2.streameast.sk", nil, nil)
	return &fixture{
		handler: h,
		router:  NewRouter(h, nil, nil),
		users:   userStore,
		games:   games,
		live:    live,
		sender:  sender,
	}
}

func (f *fixture) do(t *testing.T, method, path, body string) *httptest.ResponseRecorder {
	t.Helper()
	var reader *strings.Reader
	if body == "" {
		reader = strings.NewReader("")
	} else {
		reader = strings.NewReader(body)
	}
	req := httptest.NewRequest(method, path, reader)
	rec := httptest.NewRecorder()
	f.router.ServeHTTP(rec, req)
	return rec
}

func decodeUser(t *testing.T, rec *httptest.ResponseRecorder) users.User {
	t.Helper()
	var u users.User
	if err := json.NewDecoder(rec.Body).Decode(&u); err != nil {
		t.Fatalf("decode user: %v", err)
	}
	return u
}

func TestCreateUserRegistersNew(t *testing.T) {
	f := newFixture(t)

	rec := f.do(t, nethttp.MethodPost, "/api/user", "{}")
	if rec.Code != nethttp.StatusOK {
		t.Fatalf("status = %d, body %s", rec.Code, rec.Body.String())
	}

	u := decodeUser(t, rec)
	if u.ID == "" {
		t.Fatal("expected a generated user ID")
	}
	if !strings.HasPrefix(u.NtfyTopic, "gamewatch-") {
		t.Errorf("topic = %q", u.NtfyTopic)
	}
	for _, league := range domain.Leagues() {
		if _, ok := u.Teams[league]; !ok {
			t.Errorf("missing empty team set for %s", league)
		}
	}
}

func TestCreateUserReturnsExisting(t *testing.T) {
	f := newFixture(t)
	existing, err := f.users.GetOrCreate("")
	if err != nil {
		t.Fatal(err)
	}

	rec := f.do(t, nethttp.MethodPost, "/api/user", `{"userId":"`+existing.ID+`"}`)
	if got := decodeUser(t, rec); got.ID != existing.ID {
		t.Fatalf("got %q, want existing %q", got.ID, existing.ID)
	}
}

func TestCreateUserUnknownIDRegistersFresh(t *testing.T) {
	f := newFixture(t)

	rec := f.do(t, nethttp.MethodPost, "/api/user", `{"userId":"no-such-user"}`)
	if got := decodeUser(t, rec); got.ID == "no-such-user" || got.ID == "" {
		t.Fatalf("expected fresh ID, got %q", got.ID)
	}
}

func TestGetUser(t *testing.T) {
	f := newFixture(t)
	existing, _ := f.users.GetOrCreate("")

	rec := f.do(t, nethttp.MethodGet, "/api/user/"+existing.ID, "")
	if rec.Code != nethttp.StatusOK {
		t.Fatalf("status = %d", rec.Code)
	}

	rec = f.do(t, nethttp.MethodGet, "/api/user/missing", "")
	if rec.Code != nethttp.StatusNotFound {
		t.Fatalf("status = %d for unknown user", rec.Code)
	}
	var body map[string]string
	if err := json.NewDecoder(rec.Body).Decode(&body); err != nil {
		t.Fatal(err)
	}
	if body["error"] != "user not found" {
		t.Errorf("error = %q", body["error"])
	}
}

func TestUpdateTeamsTriggersLiveCheck(t *testing.T) {
	f := newFixture(t)
	existing, _ := f.users.GetOrCreate("")

	rec := f.do(t, nethttp.MethodPut, "/api/user/"+existing.ID+"/teams",
		`{"teams":{"nhl":["TOR","BOS"],"nba":[],"mlb":[]}}`)
	if rec.Code != nethttp.StatusOK {
		t.Fatalf("status = %d, body %s", rec.Code, rec.Body.String())
	}

	if f.live.calls != 1 {
		t.Fatalf("live check called %d times", f.live.calls)
	}
	if !f.live.added.Contains(domain.LeagueNHL, "TOR") || !f.live.added.Contains(domain.LeagueNHL, "BOS") {
		t.Errorf("added = %v", f.live.added)
	}

	var body struct {
		Success bool           `json:"success"`
		Teams   users.TeamSets `json:"teams"`
	}
	if err := json.NewDecoder(rec.Body).Decode(&body); err != nil {
		t.Fatal(err)
	}
	if !body.Success || !body.Teams.Contains(domain.LeagueNHL, "TOR") {
		t.Errorf("body = %+v", body)
	}
}

func TestUpdateTeamsNoAdditionsSkipsLiveCheck(t *testing.T) {
	f := newFixture(t)
	existing, _ := f.users.GetOrCreate("")
	if _, _, err := f.users.UpdateTeams(existing.ID, users.TeamSets{domain.LeagueNHL: {"TOR"}}); err != nil {
		t.Fatal(err)
	}

	// Removal only: TOR dropped, nothing added.
	rec := f.do(t, nethttp.MethodPut, "/api/user/"+existing.ID+"/teams", `{"teams":{"nhl":[]}}`)
	if rec.Code != nethttp.StatusOK {
		t.Fatalf("status = %d", rec.Code)
	}
	if f.live.calls != 0 {
		t.Fatalf("live check called %d times for a removal", f.live.calls)
	}
}

func TestUpdateTeamsRejectsUnknownLeague(t *testing.T) {
	f := newFixture(t)
	existing, _ := f.users.GetOrCreate("")

	rec := f.do(t, nethttp.MethodPut, "/api/user/"+existing.ID+"/teams", `{"teams":{"xfl":["AAA"]}}`)
	if rec.Code != nethttp.StatusBadRequest {
		t.Fatalf("status = %d", rec.Code)
	}
}

func TestUpdateTeamsUnknownUser(t *testing.T) {
	f := newFixture(t)
	rec := f.do(t, nethttp.MethodPut, "/api/user/missing/teams", `{"teams":{"nhl":["TOR"]}}`)
	if rec.Code != nethttp.StatusNotFound {
		t.Fatalf("status = %d", rec.Code)
	}
}

func TestUpdateBrowser(t *testing.T) {
	f := newFixture(t)
	existing, _ := f.users.GetOrCreate("")

	rec := f.do(t, nethttp.MethodPut, "/api/user/"+existing.ID+"/browser", `{"browser":"firefox"}`)
	if rec.Code != nethttp.StatusOK {
		t.Fatalf("status = %d", rec.Code)
	}
	if got := decodeUser(t, rec); got.Browser != "firefox" {
		t.Errorf("browser = %q", got.Browser)
	}

	rec = f.do(t, nethttp.MethodPut, "/api/user/"+existing.ID+"/browser", `{"browser":"netscape"}`)
	if rec.Code != nethttp.StatusBadRequest {
		t.Fatalf("status = %d for unknown browser", rec.Code)
	}
}

func TestTeamsDirectory(t *testing.T) {
	f := newFixture(t)

	rec := f.do(t, nethttp.MethodGet, "/api/teams", "")
	if rec.Code != nethttp.StatusOK {
		t.Fatalf("status = %d", rec.Code)
	}

	var body map[string][]domain.Team
	if err := json.NewDecoder(rec.Body).Decode(&body); err != nil {
		t.Fatal(err)
	}
	if len(body["nhl"]) != 33 || len(body["nba"]) != 30 || len(body["mlb"]) != 30 {
		t.Errorf("roster sizes: nhl=%d nba=%d mlb=%d", len(body["nhl"]), len(body["nba"]), len(body["mlb"]))
	}
}

func TestGamesForUser(t *testing.T) {
	f := newFixture(t)
	existing, _ := f.users.GetOrCreate("")
	f.users.UpdateTeams(existing.ID, users.TeamSets{domain.LeagueNHL: {"TOR"}})

	now := time.Now()
	f.handler.now = func() time.Time { return now }
	f.games.SetGames([]domain.Game{
		{League: domain.LeagueNHL, GameID: "1", StartTime: now.Add(2 * time.Hour), HomeAbbrev: "TOR", AwayAbbrev: "MTL", State: domain.StateScheduled},
		{League: domain.LeagueNHL, GameID: "2", StartTime: now.Add(48 * time.Hour), HomeAbbrev: "TOR", AwayAbbrev: "BOS", State: domain.StateScheduled},
		{League: domain.LeagueNHL, GameID: "3", StartTime: now.Add(time.Hour), HomeAbbrev: "EDM", AwayAbbrev: "CGY", State: domain.StateScheduled},
	})

	rec := f.do(t, nethttp.MethodGet, "/api/games/"+existing.ID, "")
	if rec.Code != nethttp.StatusOK {
		t.Fatalf("status = %d", rec.Code)
	}

	var body []gameWithStream
	if err := json.NewDecoder(rec.Body).Decode(&body); err != nil {
		t.Fatal(err)
	}
	if len(body) != 1 {
		t.Fatalf("got %d games, want 1 (followed, within 24h)", len(body))
	}
	if body[0].GameID != "1" {
		t.Errorf("gameId = %q", body[0].GameID)
	}
	if body[0].StreamURL == nil {
		t.Fatal("expected a stream URL")
	}
	if want := "https://v2.streameast.sk/nhl/montreal-canadiens-vs-toronto-maple-leafs/"; *body[0].StreamURL != want {
		t.Errorf("streamUrl = %q, want %q", *body[0].StreamURL, want)
	}
}

func TestGamesForUserEmptyIsArray(t *testing.T) {
	f := newFixture(t)
	existing, _ := f.users.GetOrCreate("")

	rec := f.do(t, nethttp.MethodGet, "/api/games/"+existing.ID, "")
	if got := strings.TrimSpace(rec.Body.String()); got != "[]" {
		t.Fatalf("body = %q, want empty array", got)
	}
}

func TestTestNotification(t *testing.T) {
	f := newFixture(t)
	existing, _ := f.users.GetOrCreate("")

	rec := f.do(t, nethttp.MethodPost, "/api/test-notification/"+existing.ID, "")
	if rec.Code != nethttp.StatusOK {
		t.Fatalf("status = %d", rec.Code)
	}
	var body map[string]bool
	json.NewDecoder(rec.Body).Decode(&body)
	if !body["success"] {
		t.Error("expected success = true")
	}
	if len(f.sender.topics) != 1 || f.sender.topics[0] != existing.NtfyTopic {
		t.Errorf("published to %v", f.sender.topics)
	}
}

func TestTestNotificationDeliveryFailure(t *testing.T) {
	f := newFixture(t)
	existing, _ := f.users.GetOrCreate("")
	f.sender.err = errors.New("unreachable")

	rec := f.do(t, nethttp.MethodPost, "/api/test-notification/"+existing.ID, "")
	if rec.Code != nethttp.StatusOK {
		t.Fatalf("status = %d", rec.Code)
	}
	var body map[string]bool
	json.NewDecoder(rec.Body).Decode(&body)
	if body["success"] {
		t.Error("expected success = false")
	}
}

func TestHealth(t *testing.T) {
	f := newFixture(t)
	rec := f.do(t, nethttp.MethodGet, "/health", "")
	if rec.Code != nethttp.StatusOK {
		t.Fatalf("status = %d", rec.Code)
	}
}

func TestReady(t *testing.T) {
	f := newFixture(t)

	status := scheduler.Status{}
	f.handler.statusFn = func() scheduler.Status { return status }

	rec := f.do(t, nethttp.MethodGet, "/ready", "")
	if rec.Code != nethttp.StatusServiceUnavailable {
		t.Fatalf("status = %d before first success", rec.Code)
	}

	status = scheduler.Status{LastSuccess: time.Now()}
	rec = f.do(t, nethttp.MethodGet, "/ready", "")
	if rec.Code != nethttp.StatusOK {
		t.Fatalf("status = %d after success", rec.Code)
	}

	status = scheduler.Status{LastSuccess: time.Now(), ConsecutiveFailures: 3, LastError: "flush failed"}
	rec = f.do(t, nethttp.MethodGet, "/ready", "")
	if rec.Code != nethttp.StatusServiceUnavailable {
		t.Fatalf("status = %d while failing", rec.Code)
	}
	if !strings.Contains(rec.Body.String(), "flush failed") {
		t.Errorf("body = %s", rec.Body.String())
	}
}
