package store

import (
	"context"
	"fmt"

	"github.com/Acronica/Team-Maker/domain/entities"

	"github.com/redis/go-redis/v9"
)

const snapshotKey = "team-maker:guild-configs"

// RedisStore keeps the snapshot under a single key so Load and Save stay
// symmetric with the file backend.
type RedisStore struct {
	client *redis.Client
}

func NewRedisStore(url string) (*RedisStore, error) {
	opts, err := redis.ParseURL(url)
	if err != nil {
		return nil, fmt.Errorf("failed to parse redis url: %w", err)
	}
	return NewRedisStoreWithClient(redis.NewClient(opts)), nil
}

// NewRedisStoreWithClient exists so tests can hand in a miniredis-backed
// client.
func NewRedisStoreWithClient(client *redis.Client) *RedisStore {
	return &RedisStore{client: client}
}

func (s *RedisStore) Load(ctx context.Context) (map[string]entities.GuildConfig, error) {
	data, err := s.client.Get(ctx, snapshotKey).Bytes()
	if err == redis.Nil {
		return make(map[string]entities.GuildConfig), nil
	}
	if err != nil {
		return nil, fmt.Errorf("failed to read config snapshot from redis: %w", err)
	}
	return decodeSnapshot(data)
}

func (s *RedisStore) Save(ctx context.Context, configs map[string]entities.GuildConfig) error {
	data, err := encodeSnapshot(configs)
	if err != nil {
		return err
	}
	if err := s.client.Set(ctx, snapshotKey, data, 0).Err(); err != nil {
		return fmt.Errorf("failed to write config snapshot to redis: %w", err)
	}
	return nil
}
