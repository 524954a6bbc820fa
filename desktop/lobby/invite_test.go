package lobby

import (
	"context"
	"errors"
	"path/filepath"
	"testing"

	"github.com/Acronica/Team-Maker/desktop/identity"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

type mockClient struct {
	mock.Mock
}

func (m *mockClient) SummonerByRiotID(ctx context.Context, riotID string) (Summoner, error) {
	args := m.Called(ctx, riotID)
	return args.Get(0).(Summoner), args.Error(1)
}

func (m *mockClient) Invite(ctx context.Context, summonerIDs []string) error {
	args := m.Called(ctx, summonerIDs)
	return args.Error(0)
}

func testStore(t *testing.T, entries map[string]string) *identity.Store {
	t.Helper()

	s := identity.NewStore(filepath.Join(t.TempDir(), "users.json"))
	for name, lolID := range entries {
		require.NoError(t, s.Put(name, identity.Identity{LolID: lolID}))
	}
	return s
}

func TestInvitePlayers(t *testing.T) {
	t.Parallel()

	store := testStore(t, map[string]string{"alice": "Alice#EUW", "bob": "Bob#EUW"})
	client := new(mockClient)
	client.On("SummonerByRiotID", mock.Anything, "Alice#EUW").Return(Summoner{ID: "s1", Name: "Alice#EUW"}, nil)
	client.On("SummonerByRiotID", mock.Anything, "Bob#EUW").Return(Summoner{ID: "s2", Name: "Bob#EUW"}, nil)
	client.On("Invite", mock.Anything, mock.MatchedBy(func(ids []string) bool {
		return len(ids) == 2
	})).Return(nil)

	result, err := NewInviter(store, client).InvitePlayers(context.Background(), []string{"alice", "bob"})

	require.NoError(t, err)
	assert.Equal(t, 2, result.Invited)
	assert.Empty(t, result.Missing)
	client.AssertExpectations(t)
}

func TestInvitePlayers_PartialFailuresCollected(t *testing.T) {
	t.Parallel()

	store := testStore(t, map[string]string{"alice": "Alice#EUW", "bob": "Bob#EUW"})
	client := new(mockClient)
	client.On("SummonerByRiotID", mock.Anything, "Alice#EUW").Return(Summoner{ID: "s1"}, nil)
	client.On("SummonerByRiotID", mock.Anything, "Bob#EUW").Return(Summoner{}, errors.New("offline"))
	client.On("Invite", mock.Anything, []string{"s1"}).Return(nil)

	result, err := NewInviter(store, client).InvitePlayers(context.Background(), []string{"alice", "bob", "unmapped"})

	require.NoError(t, err, "partial lookup failures never abort the round")
	assert.Equal(t, 1, result.Invited)
	assert.ElementsMatch(t, []string{"bob", "unmapped"}, result.Missing)
}

func TestInvitePlayers_NoResolvablePlayers(t *testing.T) {
	t.Parallel()

	store := testStore(t, nil)
	client := new(mockClient)

	_, err := NewInviter(store, client).InvitePlayers(context.Background(), []string{"ghost"})

	assert.ErrorIs(t, err, ErrNoPlayers)
	client.AssertNotCalled(t, "Invite", mock.Anything, mock.Anything)
}

func TestInvitePlayers_InviteFailure(t *testing.T) {
	t.Parallel()

	store := testStore(t, map[string]string{"alice": "Alice#EUW"})
	client := new(mockClient)
	client.On("SummonerByRiotID", mock.Anything, "Alice#EUW").Return(Summoner{ID: "s1"}, nil)
	client.On("Invite", mock.Anything, []string{"s1"}).Return(errors.New("lobby closed"))

	result, err := NewInviter(store, client).InvitePlayers(context.Background(), []string{"alice"})

	assert.Error(t, err)
	assert.Zero(t, result.Invited)
}
