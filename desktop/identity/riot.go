package identity

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"net/url"
	"strings"
	"time"
)

var (
	ErrInvalidRiotID   = errors.New("riot id must be in the form name#tag")
	ErrUnauthorized    = errors.New("riot api rejected the key")
	ErrAccountNotFound = errors.New("riot account not found")
)

// Verifier checks a claimed game identity and returns its canonical form.
type Verifier interface {
	Verify(ctx context.Context, riotID string) (string, error)
}

// RiotVerifier verifies an identity through the vendor's account-v1 and
// summoner-v4 endpoints. Base URLs are injectable for tests.
type RiotVerifier struct {
	apiKey       string
	accountBase  string
	summonerBase string
	http         *http.Client
}

func NewRiotVerifier(apiKey string) *RiotVerifier {
	return &RiotVerifier{
		apiKey:       apiKey,
		accountBase:  "https://europe.api.riotgames.com",
		summonerBase: "https://euw1.api.riotgames.com",
		http:         &http.Client{Timeout: 10 * time.Second},
	}
}

// NewRiotVerifierWithBase exists for tests pointing at a stub server.
func NewRiotVerifierWithBase(apiKey, accountBase, summonerBase string) *RiotVerifier {
	v := NewRiotVerifier(apiKey)
	v.accountBase = accountBase
	v.summonerBase = summonerBase
	return v
}

// Verify resolves name#tag to an account, checks the summoner exists, and
// returns the canonical riot ID with the vendor's casing.
func (v *RiotVerifier) Verify(ctx context.Context, riotID string) (string, error) {
	parts := strings.Split(riotID, "#")
	if len(parts) != 2 || strings.TrimSpace(parts[0]) == "" || strings.TrimSpace(parts[1]) == "" {
		return "", ErrInvalidRiotID
	}
	name, tag := strings.TrimSpace(parts[0]), strings.TrimSpace(parts[1])

	var account struct {
		PUUID    string `json:"puuid"`
		GameName string `json:"gameName"`
		TagLine  string `json:"tagLine"`
	}
	accountPath := fmt.Sprintf("%s/riot/account/v1/accounts/by-riot-id/%s/%s",
		v.accountBase, url.PathEscape(name), url.PathEscape(tag))
	if err := v.get(ctx, accountPath, &account); err != nil {
		return "", err
	}

	var summoner struct {
		ID string `json:"id"`
	}
	summonerPath := fmt.Sprintf("%s/lol/summoner/v4/summoners/by-puuid/%s",
		v.summonerBase, url.PathEscape(account.PUUID))
	if err := v.get(ctx, summonerPath, &summoner); err != nil {
		return "", err
	}

	return account.GameName + "#" + account.TagLine, nil
}

func (v *RiotVerifier) get(ctx context.Context, rawURL string, out any) error {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, rawURL, nil)
	if err != nil {
		return fmt.Errorf("failed to build riot request: %w", err)
	}
	req.Header.Set("X-Riot-Token", v.apiKey)

	resp, err := v.http.Do(req)
	if err != nil {
		return fmt.Errorf("riot api unreachable: %w", err)
	}
	defer resp.Body.Close()

	switch resp.StatusCode {
	case http.StatusOK:
	case http.StatusUnauthorized, http.StatusForbidden:
		return ErrUnauthorized
	case http.StatusNotFound:
		return ErrAccountNotFound
	default:
		return fmt.Errorf("riot api returned %s", resp.Status)
	}

	if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
		return fmt.Errorf("failed to decode riot response: %w", err)
	}
	return nil
}
