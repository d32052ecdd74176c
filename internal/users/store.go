package users

import (
	"encoding/json"
	"errors"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"sync"
	"time"

	"github.com/google/uuid"

	"gamewatch/internal/logging"
)

// ErrNotFound reports an unknown user ID.
var ErrNotFound = errors.New("user not found")

const usersFileName = "users.json"

// record is the on-disk shape; the map key carries the user ID.
type record struct {
	NtfyTopic string    `json:"ntfyTopic"`
	Teams     TeamSets  `json:"teams"`
	Browser   string    `json:"browser,omitempty"`
	CreatedAt time.Time `json:"createdAt"`
}

// FileStore persists users wholesale to a single JSON file. Every mutation is
// a read-modify-write of the whole collection under one lock, matching the
// store's single-file durability contract.
type FileStore struct {
	path   string
	logger *slog.Logger
	now    func() time.Time

	mu sync.Mutex
}

// NewFileStore constructs a store rooted at dataDir.
func NewFileStore(dataDir string, logger *slog.Logger) *FileStore {
	return &FileStore{
		path:   filepath.Join(dataDir, usersFileName),
		logger: logger,
		now:    time.Now,
	}
}

// GetOrCreate returns the user for id when it exists, or registers a new user
// (fresh uuid, private topic, empty team sets) when id is empty or unknown.
func (s *FileStore) GetOrCreate(id string) (User, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	all := s.load()
	if id != "" {
		if rec, ok := all[id]; ok {
			return toUser(id, rec), nil
		}
	}

	newID := uuid.NewString()
	rec := record{
		NtfyTopic: "gamewatch-" + newID[:8],
		Teams:     EmptySets(),
		CreatedAt: s.now(),
	}
	all[newID] = rec
	if err := s.save(all); err != nil {
		return User{}, err
	}
	return toUser(newID, rec), nil
}

// Get returns the user for id, or ErrNotFound.
func (s *FileStore) Get(id string) (User, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	rec, ok := s.load()[id]
	if !ok {
		return User{}, ErrNotFound
	}
	return toUser(id, rec), nil
}

// All returns every registered user.
func (s *FileStore) All() []User {
	s.mu.Lock()
	defer s.mu.Unlock()

	all := s.load()
	result := make([]User, 0, len(all))
	for id, rec := range all {
		result = append(result, toUser(id, rec))
	}
	return result
}

// UpdateTeams replaces the user's followed-team sets and returns the updated
// user together with the per-league newly added abbreviations.
func (s *FileStore) UpdateTeams(id string, teams TeamSets) (User, TeamSets, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	all := s.load()
	rec, ok := all[id]
	if !ok {
		return User{}, nil, ErrNotFound
	}

	added := rec.Teams.Added(teams)
	rec.Teams = teams
	all[id] = rec
	if err := s.save(all); err != nil {
		return User{}, nil, err
	}
	return toUser(id, rec), added, nil
}

// UpdateBrowser records the user's preferred mobile browser.
func (s *FileStore) UpdateBrowser(id string, browser string) (User, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	all := s.load()
	rec, ok := all[id]
	if !ok {
		return User{}, ErrNotFound
	}

	rec.Browser = browser
	all[id] = rec
	if err := s.save(all); err != nil {
		return User{}, err
	}
	return toUser(id, rec), nil
}

// load reads the whole collection; a missing or corrupt file degrades to an
// empty map with a logged warning rather than failing the caller.
func (s *FileStore) load() map[string]record {
	data, err := os.ReadFile(s.path)
	if err != nil {
		if !os.IsNotExist(err) {
			logging.Warn(s.logger, "failed to read user store, starting empty", "path", s.path, "error", err)
		}
		return map[string]record{}
	}

	var all map[string]record
	if err := json.Unmarshal(data, &all); err != nil {
		logging.Warn(s.logger, "failed to decode user store, starting empty", "path", s.path, "error", err)
		return map[string]record{}
	}
	if all == nil {
		all = map[string]record{}
	}
	return all
}

func (s *FileStore) save(all map[string]record) error {
	if err := os.MkdirAll(filepath.Dir(s.path), 0o755); err != nil {
		return fmt.Errorf("create data dir: %w", err)
	}

	data, err := json.MarshalIndent(all, "", "  ")
	if err != nil {
		return err
	}

	tmp := s.path + ".tmp"
	if err := os.WriteFile(tmp, data, 0o644); err != nil {
		return err
	}
	return os.Rename(tmp, s.path)
}

func toUser(id string, rec record) User {
	teams := rec.Teams
	if teams == nil {
		teams = EmptySets()
	}
	return User{
		ID:        id,
		NtfyTopic: rec.NtfyTopic,
		Teams:     teams,
		Browser:   rec.Browser,
		CreatedAt: rec.CreatedAt,
	}
}
