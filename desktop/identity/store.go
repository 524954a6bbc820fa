// Package identity maps player display names to their game identity and
// verifies those identities against the game vendor's account API.
package identity

import (
	"encoding/json"
	"fmt"
	"os"
)

// Identity is one player's external identity record.
type Identity struct {
	LolID string `json:"lolId"`
}

// Store persists the display-name to identity mapping as a flat JSON object,
// whole-file rewritten on every change.
type Store struct {
	path    string
	entries map[string]Identity
}

func NewStore(path string) *Store {
	return &Store{path: path, entries: make(map[string]Identity)}
}

// Load reads the mapping file. A missing file starts the store empty.
func (s *Store) Load() error {
	data, err := os.ReadFile(s.path)
	if os.IsNotExist(err) {
		s.entries = make(map[string]Identity)
		return nil
	}
	if err != nil {
		return fmt.Errorf("failed to read identity file %s: %w", s.path, err)
	}

	entries := make(map[string]Identity)
	if err := json.Unmarshal(data, &entries); err != nil {
		return fmt.Errorf("failed to decode identity file %s: %w", s.path, err)
	}
	s.entries = entries
	return nil
}

// Resolve returns the identity stored for a display name.
func (s *Store) Resolve(name string) (Identity, bool) {
	id, ok := s.entries[name]
	return id, ok
}

// All returns a copy of every stored entry.
func (s *Store) All() map[string]Identity {
	out := make(map[string]Identity, len(s.entries))
	for name, id := range s.entries {
		out[name] = id
	}
	return out
}

// Put stores an identity for a display name and rewrites the file.
func (s *Store) Put(name string, id Identity) error {
	s.entries[name] = id
	return s.save()
}

// Remove drops a display name's identity and rewrites the file.
func (s *Store) Remove(name string) error {
	delete(s.entries, name)
	return s.save()
}

func (s *Store) save() error {
	data, err := json.MarshalIndent(s.entries, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to encode identity file: %w", err)
	}
	if err := os.WriteFile(s.path, data, 0o644); err != nil {
		return fmt.Errorf("failed to write identity file %s: %w", s.path, err)
	}
	return nil
}
