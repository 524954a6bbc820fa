package store

import (
	"context"
	"fmt"
	"os"
	"path/filepath"

	"github.com/Acronica/Team-Maker/domain/entities"
)

// FileStore keeps the snapshot in a single JSON file. Saves rewrite the
// whole file through a temp-and-rename so a crash never leaves a
// half-written snapshot behind.
type FileStore struct {
	path string
}

func NewFileStore(path string) *FileStore {
	return &FileStore{path: path}
}

// Load returns an empty map when the file does not exist yet.
func (s *FileStore) Load(_ context.Context) (map[string]entities.GuildConfig, error) {
	data, err := os.ReadFile(s.path)
	if os.IsNotExist(err) {
		return make(map[string]entities.GuildConfig), nil
	}
	if err != nil {
		return nil, fmt.Errorf("failed to read config snapshot %s: %w", s.path, err)
	}
	return decodeSnapshot(data)
}

func (s *FileStore) Save(_ context.Context, configs map[string]entities.GuildConfig) error {
	data, err := encodeSnapshot(configs)
	if err != nil {
		return err
	}

	tmp, err := os.CreateTemp(filepath.Dir(s.path), ".snapshot-*")
	if err != nil {
		return fmt.Errorf("failed to create temp snapshot: %w", err)
	}
	tmpName := tmp.Name()
	if _, err := tmp.Write(data); err != nil {
		tmp.Close()
		os.Remove(tmpName)
		return fmt.Errorf("failed to write config snapshot: %w", err)
	}
	if err := tmp.Close(); err != nil {
		os.Remove(tmpName)
		return fmt.Errorf("failed to close config snapshot: %w", err)
	}
	if err := os.Rename(tmpName, s.path); err != nil {
		os.Remove(tmpName)
		return fmt.Errorf("failed to replace config snapshot %s: %w", s.path, err)
	}
	return nil
}
