package tracker

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
)

// state is the persisted form of a Tracker.
type state struct {
	Points []Point `json:"points"`
}

// SaveState writes the tracking history to path as JSON. The series
// describes one person's inner state, so the file is written
// owner-only.
func (t *Tracker) SaveState(path string) error {
	t.mu.Lock()
	s := state{Points: make([]Point, len(t.points))}
	copy(s.Points, t.points)
	t.mu.Unlock()

	data, err := json.MarshalIndent(s, "", "  ")
	if err != nil {
		return fmt.Errorf("encoding tracker state: %w", err)
	}

	if dir := filepath.Dir(path); dir != "." {
		if err := os.MkdirAll(dir, 0o700); err != nil {
			return fmt.Errorf("creating state directory: %w", err)
		}
	}
	if err := os.WriteFile(path, data, 0o600); err != nil {
		return fmt.Errorf("writing tracker state: %w", err)
	}
	return nil
}

// LoadState replaces the tracking history with the contents of path.
// A missing file leaves the tracker empty.
func (t *Tracker) LoadState(path string) error {
	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return nil
		}
		return fmt.Errorf("reading tracker state: %w", err)
	}

	var s state
	if err := json.Unmarshal(data, &s); err != nil {
		return fmt.Errorf("decoding tracker state: %w", err)
	}

	t.mu.Lock()
	defer t.mu.Unlock()
	t.points = s.Points
	return nil
}
