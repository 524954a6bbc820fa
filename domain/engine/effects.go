package engine

// Effect is a side effect requested by a state transition. Apply never
// executes effects; the bot layer runs them after the transition commits.
type Effect interface{ isEffect() }

// PersistConfigs rewrites the full guild-config snapshot.
type PersistConfigs struct{}

// RefreshPanel re-renders the active control panel of a guild, if one exists.
type RefreshPanel struct {
	GuildID string
}

// RenderPanel re-renders the control panel of a specific session.
type RenderPanel struct {
	ChannelID string
}

// SwapVoice relocates every member sitting in either team channel to the
// opposite team channel. Issued only by SwapTeams.
type SwapVoice struct {
	ChannelID string
}

func (PersistConfigs) isEffect() {}
func (RefreshPanel) isEffect()   {}
func (RenderPanel) isEffect()    {}
func (SwapVoice) isEffect()      {}
