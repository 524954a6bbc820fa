// Package gateway is the companion's HTTP client for the bot's API surface.
package gateway

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"time"

	"github.com/Acronica/Team-Maker/domain/entities"
)

// APIKeyHeader must match the header the bot's API checks.
const APIKeyHeader = "X-Api-Key"

// APIError is a non-2xx response with the server's error envelope decoded.
type APIError struct {
	Status  int
	Message string
}

func (e *APIError) Error() string {
	return fmt.Sprintf("api error %d: %s", e.Status, e.Message)
}

// NotFound reports whether err is a 404 from the bot.
func NotFound(err error) bool {
	apiErr, ok := err.(*APIError)
	return ok && apiErr.Status == http.StatusNotFound
}

// NamedRef is an {id, name} pair as the API renders guilds and channels.
type NamedRef struct {
	ID   string `json:"id"`
	Name string `json:"name"`
}

// ResolvedConfig is a guild's configured channels with names resolved.
type ResolvedConfig struct {
	Guild NamedRef `json:"guild"`
	Lobby NamedRef `json:"lobby"`
	Team1 NamedRef `json:"team1"`
	Team2 NamedRef `json:"team2"`
}

type Client struct {
	baseURL string
	apiKey  string
	http    *http.Client
}

func NewClient(baseURL, apiKey string) *Client {
	return &Client{
		baseURL: baseURL,
		apiKey:  apiKey,
		http:    &http.Client{Timeout: 10 * time.Second},
	}
}

// Server fetches a guild's identity.
func (c *Client) Server(ctx context.Context, guildID string) (NamedRef, error) {
	var out NamedRef
	err := c.do(ctx, http.MethodGet, "/server/"+guildID, nil, &out)
	return out, err
}

// Config fetches a guild's resolved channel configuration.
func (c *Client) Config(ctx context.Context, guildID string) (ResolvedConfig, error) {
	var out ResolvedConfig
	err := c.do(ctx, http.MethodGet, "/servers/"+guildID+"/config", nil, &out)
	return out, err
}

// Channels fetches the guild's categories that contain voice channels.
func (c *Client) Channels(ctx context.Context, guildID string) ([]entities.Category, error) {
	var out []entities.Category
	err := c.do(ctx, http.MethodGet, "/servers/"+guildID+"/channels", nil, &out)
	return out, err
}

// ChannelMembers fetches who currently sits in a voice channel.
func (c *Client) ChannelMembers(ctx context.Context, channelID string) ([]entities.Member, error) {
	var out []entities.Member
	err := c.do(ctx, http.MethodGet, "/channel-members/"+channelID, nil, &out)
	return out, err
}

// SubmitTeams pushes both rosters into the guild's active session.
func (c *Client) SubmitTeams(ctx context.Context, guildID string, team1, team2 []string) error {
	body := map[string]any{"guildId": guildID, "team1": team1, "team2": team2}
	return c.do(ctx, http.MethodPost, "/submit-teams", body, nil)
}

// UpdateConfig overwrites the guild's channel configuration.
func (c *Client) UpdateConfig(ctx context.Context, guildID, lobbyID, team1ID, team2ID string) error {
	body := map[string]any{
		"guild": map[string]string{"id": guildID},
		"channels": map[string]any{
			"lobby": map[string]string{"id": lobbyID},
			"team1": map[string]string{"id": team1ID},
			"team2": map[string]string{"id": team2ID},
		},
	}
	return c.do(ctx, http.MethodPost, "/update-config", body, nil)
}

func (c *Client) do(ctx context.Context, method, path string, body, out any) error {
	var reader *bytes.Reader
	if body != nil {
		data, err := json.Marshal(body)
		if err != nil {
			return fmt.Errorf("failed to encode request: %w", err)
		}
		reader = bytes.NewReader(data)
	} else {
		reader = bytes.NewReader(nil)
	}

	req, err := http.NewRequestWithContext(ctx, method, c.baseURL+path, reader)
	if err != nil {
		return fmt.Errorf("failed to build request: %w", err)
	}
	req.Header.Set(APIKeyHeader, c.apiKey)
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}

	resp, err := c.http.Do(req)
	if err != nil {
		return fmt.Errorf("bot api unreachable: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode >= 400 {
		var envelope struct {
			Error string `json:"error"`
		}
		if decodeErr := json.NewDecoder(resp.Body).Decode(&envelope); decodeErr != nil || envelope.Error == "" {
			envelope.Error = resp.Status
		}
		return &APIError{Status: resp.StatusCode, Message: envelope.Error}
	}

	if out == nil {
		return nil
	}
	if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
		return fmt.Errorf("failed to decode response: %w", err)
	}
	return nil
}
