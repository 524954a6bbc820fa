package store

import (
	"context"
	"testing"

	"github.com/Acronica/Team-Maker/domain/entities"

	"github.com/alicebob/miniredis/v2"
	"github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/stretchr/testify/suite"
)

type RedisStoreSuite struct {
	suite.Suite
	mr    *miniredis.Miniredis
	store *RedisStore
}

func (s *RedisStoreSuite) SetupTest() {
	mr, err := miniredis.Run()
	s.Require().NoError(err)
	s.mr = mr
	s.store = NewRedisStoreWithClient(redis.NewClient(&redis.Options{Addr: mr.Addr()}))
}

func (s *RedisStoreSuite) TearDownTest() {
	s.mr.Close()
}

func (s *RedisStoreSuite) TestLoadEmpty() {
	configs, err := s.store.Load(context.Background())
	s.Require().NoError(err)
	s.Empty(configs)
}

func (s *RedisStoreSuite) TestSaveAndLoadRoundTrip() {
	want := map[string]entities.GuildConfig{
		"guild-1": {LobbyChannelID: "l1", Team1ChannelID: "t1", Team2ChannelID: "t2"},
	}
	s.Require().NoError(s.store.Save(context.Background(), want))

	got, err := s.store.Load(context.Background())
	s.Require().NoError(err)
	s.Equal(want, got)
}

func TestRedisStoreSuite(t *testing.T) {
	suite.Run(t, new(RedisStoreSuite))
}

func TestNewRedisStore_BadURL(t *testing.T) {
	t.Parallel()

	_, err := NewRedisStore("not a url")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "redis url")
}
