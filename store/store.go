// Package store persists guild channel configuration snapshots.
//
// A snapshot is the full config map for every guild, written as a list
// of [guildID, config] pairs so the on-disk layout stays stable across
// Go map iteration order.
package store

import (
	"context"
	"encoding/json"
	"fmt"
	"sort"

	"github.com/Acronica/Team-Maker/domain/entities"
)

// SnapshotStore loads and saves the whole guild config map at once.
type SnapshotStore interface {
	Load(ctx context.Context) (map[string]entities.GuildConfig, error)
	Save(ctx context.Context, configs map[string]entities.GuildConfig) error
}

type configPair struct {
	GuildID string               `json:"guildId"`
	Config  entities.GuildConfig `json:"config"`
}

func encodeSnapshot(configs map[string]entities.GuildConfig) ([]byte, error) {
	pairs := make([]configPair, 0, len(configs))
	for id, cfg := range configs {
		pairs = append(pairs, configPair{GuildID: id, Config: cfg})
	}
	sort.Slice(pairs, func(i, j int) bool { return pairs[i].GuildID < pairs[j].GuildID })

	data, err := json.MarshalIndent(pairs, "", "  ")
	if err != nil {
		return nil, fmt.Errorf("failed to encode config snapshot: %w", err)
	}
	return data, nil
}

func decodeSnapshot(data []byte) (map[string]entities.GuildConfig, error) {
	var pairs []configPair
	if err := json.Unmarshal(data, &pairs); err != nil {
		return nil, fmt.Errorf("failed to decode config snapshot: %w", err)
	}
	configs := make(map[string]entities.GuildConfig, len(pairs))
	for _, p := range pairs {
		configs[p.GuildID] = p.Config
	}
	return configs, nil
}
