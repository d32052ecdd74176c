package dedup

import (
	"encoding/json"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"sort"
	"sync"

	"gamewatch/internal/logging"
)

const notifiedFileName = "notified.json"

// Store is the durable set of already-notified game keys. Membership is the
// dedup invariant: once a key is added, the game is never notified again
// until the daily Clear. The in-memory set is authoritative; Flush mirrors it
// to disk wholesale.
type Store struct {
	path   string
	logger *slog.Logger

	mu   sync.Mutex
	keys map[string]struct{}
}

// NewStore constructs a dedup store rooted at dataDir.
func NewStore(dataDir string, logger *slog.Logger) *Store {
	return &Store{
		path:   filepath.Join(dataDir, notifiedFileName),
		logger: logger,
		keys:   make(map[string]struct{}),
	}
}

// Load reads the persisted key set. A missing or corrupt file degrades to an
// empty set with a logged warning; notifications resume from scratch.
func (s *Store) Load() {
	s.mu.Lock()
	defer s.mu.Unlock()

	data, err := os.ReadFile(s.path)
	if err != nil {
		if !os.IsNotExist(err) {
			logging.Warn(s.logger, "failed to read notified set, starting empty", "path", s.path, "error", err)
		}
		return
	}

	var keys []string
	if err := json.Unmarshal(data, &keys); err != nil {
		logging.Warn(s.logger, "failed to decode notified set, starting empty", "path", s.path, "error", err)
		return
	}
	for _, k := range keys {
		s.keys[k] = struct{}{}
	}
}

// Contains reports whether the key has already been notified.
func (s *Store) Contains(key string) bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	_, ok := s.keys[key]
	return ok
}

// Add marks a key as notified in memory. Callers batch the durable write via
// Flush at the end of a cycle.
func (s *Store) Add(key string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.keys[key] = struct{}{}
}

// Len returns the number of notified keys.
func (s *Store) Len() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return len(s.keys)
}

// Flush persists the current set wholesale via an atomic rename.
func (s *Store) Flush() error {
	s.mu.Lock()
	keys := make([]string, 0, len(s.keys))
	for k := range s.keys {
		keys = append(keys, k)
	}
	s.mu.Unlock()
	sort.Strings(keys)

	if err := os.MkdirAll(filepath.Dir(s.path), 0o755); err != nil {
		return fmt.Errorf("create data dir: %w", err)
	}

	data, err := json.Marshal(keys)
	if err != nil {
		return err
	}

	tmp := s.path + ".tmp"
	if err := os.WriteFile(tmp, data, 0o644); err != nil {
		return err
	}
	return os.Rename(tmp, s.path)
}

// Clear empties the set and persists the empty state. Called by the daily
// reset so game IDs reused across days can notify again.
func (s *Store) Clear() error {
	s.mu.Lock()
	s.keys = make(map[string]struct{})
	s.mu.Unlock()
	return s.Flush()
}
