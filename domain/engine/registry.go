package engine

import (
	"sync"

	"github.com/Acronica/Team-Maker/domain/entities"
)

// Registry is the concurrency-safe owner of the engine state. The discordgo
// callbacks and the HTTP API run on different goroutines, so every mutation
// goes through Dispatch under the lock; readers take consistent copies.
type Registry struct {
	mu sync.Mutex
	st *State
}

// NewRegistry returns a registry over an empty state.
func NewRegistry() *Registry {
	return &Registry{st: NewState()}
}

// SeedConfigs installs a loaded snapshot. Called once at startup before any
// interaction handler runs.
func (r *Registry) SeedConfigs(configs map[string]entities.GuildConfig) {
	r.mu.Lock()
	defer r.mu.Unlock()
	for guildID, cfg := range configs {
		r.st.Configs[guildID] = cfg
	}
}

// Dispatch applies a command and returns the effects to execute.
func (r *Registry) Dispatch(cmd Command) ([]Effect, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	return Apply(r.st, cmd)
}

// Config returns the guild's config, if one is set.
func (r *Registry) Config(guildID string) (entities.GuildConfig, bool) {
	r.mu.Lock()
	defer r.mu.Unlock()
	cfg, ok := r.st.Configs[guildID]
	return cfg, ok
}

// ConfigsSnapshot returns a copy of every guild config, for persistence.
func (r *Registry) ConfigsSnapshot() map[string]entities.GuildConfig {
	r.mu.Lock()
	defer r.mu.Unlock()
	snap := make(map[string]entities.GuildConfig, len(r.st.Configs))
	for guildID, cfg := range r.st.Configs {
		snap[guildID] = cfg
	}
	return snap
}

// Session returns a copy of the channel's session, if one is active.
func (r *Registry) Session(channelID string) (entities.GameSession, bool) {
	r.mu.Lock()
	defer r.mu.Unlock()
	gs, ok := r.st.Sessions[channelID]
	if !ok {
		return entities.GameSession{}, false
	}
	return copySession(gs), true
}

// SessionForGuild returns a copy of an active session belonging to the guild.
// Guilds normally run one custom at a time; when several channels are active
// the session in the lowest channel ID wins, so repeated calls always target
// the same one.
func (r *Registry) SessionForGuild(guildID string) (entities.GameSession, bool) {
	r.mu.Lock()
	defer r.mu.Unlock()
	var pick *entities.GameSession
	var pickID string
	for channelID, gs := range r.st.Sessions {
		if gs.GuildID != guildID {
			continue
		}
		if pick == nil || channelID < pickID {
			pick, pickID = gs, channelID
		}
	}
	if pick == nil {
		return entities.GameSession{}, false
	}
	return copySession(pick), true
}

// Setup returns a copy of the wizard session for the key, if one exists.
func (r *Registry) Setup(key entities.SetupKey) (entities.SetupSession, bool) {
	r.mu.Lock()
	defer r.mu.Unlock()
	ss, ok := r.st.Setups[key.String()]
	if !ok {
		return entities.SetupSession{}, false
	}
	return *ss, true
}

// SetupCount reports the number of live wizard sessions (sweep metrics).
func (r *Registry) SetupCount() int {
	r.mu.Lock()
	defer r.mu.Unlock()
	return len(r.st.Setups)
}

func copySession(gs *entities.GameSession) entities.GameSession {
	out := *gs
	out.Team1 = append([]string{}, gs.Team1...)
	out.Team2 = append([]string{}, gs.Team2...)
	return out
}
