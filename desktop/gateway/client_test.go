package gateway

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestClient_SendsAPIKey(t *testing.T) {
	t.Parallel()

	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "secret", r.Header.Get(APIKeyHeader))
		json.NewEncoder(w).Encode(NamedRef{ID: "g1", Name: "My Guild"})
	}))
	defer srv.Close()

	guild, err := NewClient(srv.URL, "secret").Server(context.Background(), "g1")
	require.NoError(t, err)
	assert.Equal(t, NamedRef{ID: "g1", Name: "My Guild"}, guild)
}

func TestClient_Config(t *testing.T) {
	t.Parallel()

	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/servers/g1/config", r.URL.Path)
		json.NewEncoder(w).Encode(ResolvedConfig{
			Guild: NamedRef{ID: "g1", Name: "My Guild"},
			Lobby: NamedRef{ID: "l", Name: "Waiting"},
			Team1: NamedRef{ID: "a", Name: "Blue"},
			Team2: NamedRef{ID: "b", Name: "Red"},
		})
	}))
	defer srv.Close()

	cfg, err := NewClient(srv.URL, "secret").Config(context.Background(), "g1")
	require.NoError(t, err)
	assert.Equal(t, "Waiting", cfg.Lobby.Name)
	assert.Equal(t, "Red", cfg.Team2.Name)
}

func TestClient_ErrorEnvelope(t *testing.T) {
	t.Parallel()

	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusNotFound)
		json.NewEncoder(w).Encode(map[string]string{"error": "server not configured"})
	}))
	defer srv.Close()

	_, err := NewClient(srv.URL, "secret").Config(context.Background(), "g1")

	require.Error(t, err)
	assert.True(t, NotFound(err))
	apiErr := err.(*APIError)
	assert.Equal(t, "server not configured", apiErr.Message)
}

func TestClient_NonJSONErrorBody(t *testing.T) {
	t.Parallel()

	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, "boom", http.StatusInternalServerError)
	}))
	defer srv.Close()

	_, err := NewClient(srv.URL, "secret").Server(context.Background(), "g1")

	require.Error(t, err)
	assert.False(t, NotFound(err))
	assert.IsType(t, &APIError{}, err)
}

func TestClient_Unreachable(t *testing.T) {
	t.Parallel()

	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {}))
	srv.Close()

	_, err := NewClient(srv.URL, "secret").Server(context.Background(), "g1")

	require.Error(t, err)
	assert.NotContains(t, err.Error(), "api error", "transport failures are not APIErrors")
}

func TestClient_SubmitTeams(t *testing.T) {
	t.Parallel()

	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodPost, r.Method)
		assert.Equal(t, "/submit-teams", r.URL.Path)

		var body struct {
			GuildID string   `json:"guildId"`
			Team1   []string `json:"team1"`
			Team2   []string `json:"team2"`
		}
		require.NoError(t, json.NewDecoder(r.Body).Decode(&body))
		assert.Equal(t, "g1", body.GuildID)
		assert.Equal(t, []string{"alice"}, body.Team1)

		json.NewEncoder(w).Encode(map[string]string{"status": "ok"})
	}))
	defer srv.Close()

	err := NewClient(srv.URL, "secret").SubmitTeams(context.Background(), "g1", []string{"alice"}, []string{"bob"})
	assert.NoError(t, err)
}

func TestClient_UpdateConfig(t *testing.T) {
	t.Parallel()

	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		var body map[string]any
		require.NoError(t, json.NewDecoder(r.Body).Decode(&body))
		assert.Equal(t, "g1", body["guild"].(map[string]any)["id"])

		json.NewEncoder(w).Encode(map[string]string{"status": "ok"})
	}))
	defer srv.Close()

	err := NewClient(srv.URL, "secret").UpdateConfig(context.Background(), "g1", "l", "a", "b")
	assert.NoError(t, err)
}
