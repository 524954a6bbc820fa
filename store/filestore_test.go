package store

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/Acronica/Team-Maker/domain/entities"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFileStore_LoadMissingFile(t *testing.T) {
	t.Parallel()

	s := NewFileStore(filepath.Join(t.TempDir(), "server-configs.json"))

	configs, err := s.Load(context.Background())
	require.NoError(t, err)
	assert.Empty(t, configs)
}

func TestFileStore_SaveAndLoadRoundTrip(t *testing.T) {
	t.Parallel()

	path := filepath.Join(t.TempDir(), "server-configs.json")
	s := NewFileStore(path)

	want := map[string]entities.GuildConfig{
		"guild-1": {LobbyChannelID: "l1", Team1ChannelID: "t1", Team2ChannelID: "t2"},
		"guild-2": {LobbyChannelID: "l2", Team1ChannelID: "t3", Team2ChannelID: "t4"},
	}
	require.NoError(t, s.Save(context.Background(), want))

	got, err := NewFileStore(path).Load(context.Background())
	require.NoError(t, err)
	assert.Equal(t, want, got)
}

func TestFileStore_SaveOverwritesPriorSnapshot(t *testing.T) {
	t.Parallel()

	path := filepath.Join(t.TempDir(), "server-configs.json")
	s := NewFileStore(path)
	ctx := context.Background()

	require.NoError(t, s.Save(ctx, map[string]entities.GuildConfig{
		"guild-1": {LobbyChannelID: "l1", Team1ChannelID: "t1", Team2ChannelID: "t2"},
	}))
	require.NoError(t, s.Save(ctx, map[string]entities.GuildConfig{
		"guild-2": {LobbyChannelID: "l2", Team1ChannelID: "t3", Team2ChannelID: "t4"},
	}))

	got, err := s.Load(ctx)
	require.NoError(t, err)
	assert.Len(t, got, 1)
	assert.Contains(t, got, "guild-2")
}

func TestFileStore_LoadCorruptSnapshot(t *testing.T) {
	t.Parallel()

	path := filepath.Join(t.TempDir(), "server-configs.json")
	require.NoError(t, os.WriteFile(path, []byte("{not json"), 0o644))

	_, err := NewFileStore(path).Load(context.Background())
	assert.Error(t, err)
}
