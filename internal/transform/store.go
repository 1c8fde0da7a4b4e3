package transform

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"sort"
)

// state is the persisted form of a Transformer.
type state struct {
	Events []Event    `json:"events"`
	Bank   []Fragment `json:"wisdom_bank"`
}

// SaveState writes the grief registry and wisdom bank to path as
// JSON. Reflection-derived content is personal, so the file is
// written owner-only.
func (t *Transformer) SaveState(path string) error {
	t.mu.Lock()
	s := state{
		Events: make([]Event, 0, len(t.events)),
		Bank:   append([]Fragment(nil), t.bank...),
	}
	for _, e := range t.events {
		s.Events = append(s.Events, *e)
	}
	t.mu.Unlock()

	sort.Slice(s.Events, func(i, j int) bool { return s.Events[i].ID < s.Events[j].ID })

	data, err := json.MarshalIndent(s, "", "  ")
	if err != nil {
		return fmt.Errorf("encoding transformer state: %w", err)
	}

	if dir := filepath.Dir(path); dir != "." {
		if err := os.MkdirAll(dir, 0o700); err != nil {
			return fmt.Errorf("creating state directory: %w", err)
		}
	}
	if err := os.WriteFile(path, data, 0o600); err != nil {
		return fmt.Errorf("writing transformer state: %w", err)
	}
	return nil
}

// LoadState replaces the grief registry and wisdom bank with the
// contents of path. A missing file leaves the transformer empty.
func (t *Transformer) LoadState(path string) error {
	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return nil
		}
		return fmt.Errorf("reading transformer state: %w", err)
	}

	var s state
	if err := json.Unmarshal(data, &s); err != nil {
		return fmt.Errorf("decoding transformer state: %w", err)
	}

	t.mu.Lock()
	defer t.mu.Unlock()
	t.events = make(map[string]*Event, len(s.Events))
	for i := range s.Events {
		e := s.Events[i]
		t.events[e.ID] = &e
	}
	t.bank = s.Bank
	return nil
}
