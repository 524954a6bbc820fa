// Package lobby invites rostered players into a game-client lobby through
// whatever local connector the shell provides.
package lobby

import (
	"context"
	"errors"
	"fmt"
	"sync"

	"github.com/Acronica/Team-Maker/desktop/identity"

	log "github.com/sirupsen/logrus"
)

// ErrNoPlayers means no roster name could be resolved to an invitable player.
var ErrNoPlayers = errors.New("no invitable players on the roster")

// Summoner is a resolved game-client player.
type Summoner struct {
	ID   string
	Name string
}

// Client is the game-client connector surface the inviter needs.
type Client interface {
	// SummonerByRiotID resolves a riot ID to the local client's summoner.
	SummonerByRiotID(ctx context.Context, riotID string) (Summoner, error)

	// Invite sends lobby invitations to the given summoners.
	Invite(ctx context.Context, summonerIDs []string) error
}

// Result is the aggregate outcome of one invitation round.
type Result struct {
	Invited int
	Missing []string // display names that could not be resolved
}

// Inviter resolves display names through the identity store and invites the
// resolved set into the current lobby.
type Inviter struct {
	ids    *identity.Store
	client Client
}

func NewInviter(ids *identity.Store, client Client) *Inviter {
	return &Inviter{ids: ids, client: client}
}

// InvitePlayers invites every resolvable roster name. Lookups run
// concurrently and all settle before anything is invited; a failed lookup
// puts the name on the missing list instead of aborting the round.
func (inv *Inviter) InvitePlayers(ctx context.Context, names []string) (Result, error) {
	type lookup struct {
		name     string
		summoner Summoner
		err      error
	}

	var result Result
	lookups := make([]lookup, 0, len(names))
	for _, name := range names {
		id, ok := inv.ids.Resolve(name)
		if !ok {
			result.Missing = append(result.Missing, name)
			continue
		}
		lookups = append(lookups, lookup{name: name, summoner: Summoner{Name: id.LolID}})
	}

	var wg sync.WaitGroup
	for i := range lookups {
		wg.Add(1)
		go func(l *lookup) {
			defer wg.Done()
			l.summoner, l.err = inv.client.SummonerByRiotID(ctx, l.summoner.Name)
		}(&lookups[i])
	}
	wg.Wait()

	summonerIDs := make([]string, 0, len(lookups))
	for _, l := range lookups {
		if l.err != nil {
			log.WithField("player", l.name).WithError(l.err).Warn("Summoner lookup failed")
			result.Missing = append(result.Missing, l.name)
			continue
		}
		summonerIDs = append(summonerIDs, l.summoner.ID)
	}

	if len(summonerIDs) == 0 {
		return result, ErrNoPlayers
	}
	if err := inv.client.Invite(ctx, summonerIDs); err != nil {
		return result, fmt.Errorf("failed to send lobby invitations: %w", err)
	}
	result.Invited = len(summonerIDs)
	return result, nil
}
