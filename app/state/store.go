package state

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"slices"
	"time"
)

// fileState is the on-disk JSON shape of the processed-episode state.
type fileState struct {
	ProcessedEpisodes []string   `json:"processed_episodes"`
	LastRun           *time.Time `json:"last_run,omitempty"`
}

// State tracks which episode guids have already been turned into posts.
// The guid set only ever grows; guids are recorded in memory and flushed
// once per run via Store.Save.
type State struct {
	processed map[string]struct{}
	lastRun   *time.Time
}

func NewState() *State {
	return &State{processed: make(map[string]struct{})}
}

func (s *State) Contains(guid string) bool {
	_, ok := s.processed[guid]
	return ok
}

// Record marks guid as processed. Recording the same guid twice is a no-op.
func (s *State) Record(guid string) {
	s.processed[guid] = struct{}{}
}

func (s *State) Count() int {
	return len(s.processed)
}

func (s *State) LastRun() *time.Time {
	return s.lastRun
}

// Store persists State as a single JSON file. No locking is done: two
// concurrent runs against the same file race, and the second writer's
// snapshot silently overwrites the first. Invocations are expected to be
// serialized (one scheduled job at a time).
type Store struct {
	path string
}

func NewStore(path string) *Store {
	return &Store{path: path}
}

// Load returns the persisted state, or a fresh empty state when no file
// exists yet.
func (s *Store) Load() (*State, error) {
	data, err := os.ReadFile(s.path)
	if err != nil {
		if os.IsNotExist(err) {
			return NewState(), nil
		}
		return nil, fmt.Errorf("failed to read state file: %w", err)
	}

	var raw fileState
	if err := json.Unmarshal(data, &raw); err != nil {
		return nil, fmt.Errorf("failed to parse state file: %w", err)
	}

	st := NewState()
	for _, guid := range raw.ProcessedEpisodes {
		st.processed[guid] = struct{}{}
	}
	st.lastRun = raw.LastRun

	return st, nil
}

// Save writes the full state back to disk, creating the containing
// directory as needed and stamping the current time as the last run.
func (s *Store) Save(st *State) error {
	now := time.Now().UTC()
	st.lastRun = &now

	guids := make([]string, 0, len(st.processed))
	for guid := range st.processed {
		guids = append(guids, guid)
	}
	slices.Sort(guids)

	data, err := json.MarshalIndent(fileState{ProcessedEpisodes: guids, LastRun: st.lastRun}, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to encode state: %w", err)
	}

	if dir := filepath.Dir(s.path); dir != "." {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return fmt.Errorf("failed to create state directory: %w", err)
		}
	}
	if err := os.WriteFile(s.path, data, 0o644); err != nil {
		return fmt.Errorf("failed to write state file: %w", err)
	}

	return nil
}
