package engine

import (
	"fmt"

	"github.com/Acronica/Team-Maker/domain/entities"
)

// State holds everything the bot owns: persistent guild configs plus the two
// transient maps (game sessions by channel, wizard sessions by key). It is a
// plain value with no ambient globals; callers pass it explicitly.
type State struct {
	Configs  map[string]entities.GuildConfig
	Sessions map[string]*entities.GameSession
	Setups   map[string]*entities.SetupSession
}

// NewState returns an empty state.
func NewState() *State {
	return &State{
		Configs:  make(map[string]entities.GuildConfig),
		Sessions: make(map[string]*entities.GameSession),
		Setups:   make(map[string]*entities.SetupSession),
	}
}

// Apply executes one command against the state and returns the side effects
// the caller must run. Apply performs no I/O: persistence, message edits and
// voice relocation all come back as effects.
func Apply(st *State, cmd Command) ([]Effect, error) {
	switch c := cmd.(type) {
	case BeginSetup:
		st.Setups[c.Key.String()] = entities.NewSetupSession(c.Key, c.Now)
		return nil, nil

	case SelectCategory:
		ss, ok := st.Setups[c.Key.String()]
		if !ok {
			return nil, ErrSetupExpired
		}
		ss.Step = entities.StepChannelPick
		ss.CategoryID = c.CategoryID
		return nil, nil

	case PickChannel:
		ss, ok := st.Setups[c.Key.String()]
		if !ok {
			return nil, ErrSetupExpired
		}
		ss.Pick(c.Slot, c.ChannelID)
		return nil, nil

	case SaveSetup:
		ss, ok := st.Setups[c.Key.String()]
		if !ok {
			return nil, ErrSetupExpired
		}
		if !ss.Picks.Complete() {
			return nil, ErrSetupIncomplete
		}
		if !ss.Picks.Distinct() {
			return nil, ErrSetupDuplicate
		}
		st.Configs[c.Key.GuildID] = ss.Picks
		delete(st.Setups, c.Key.String())
		return []Effect{PersistConfigs{}, RefreshPanel{GuildID: c.Key.GuildID}}, nil

	case ExpireSetups:
		for key, ss := range st.Setups {
			if ss.ExpiredBy(c.Cutoff) {
				delete(st.Setups, key)
			}
		}
		return nil, nil

	case StartSession:
		if _, ok := st.Configs[c.GuildID]; !ok {
			return nil, ErrNotConfigured
		}
		st.Sessions[c.ChannelID] = entities.NewGameSession(c.ChannelID, c.GuildID)
		return nil, nil

	case AttachPanel:
		gs, ok := st.Sessions[c.ChannelID]
		if !ok {
			return nil, ErrNoSession
		}
		gs.PanelMessageID = c.MessageID
		return nil, nil

	case ReplaceRosters:
		gs, ok := st.Sessions[c.ChannelID]
		if !ok {
			return nil, ErrNoSession
		}
		// Empty on both sides is a legal submission: it clears the rosters.
		gs.ReplaceRosters(c.Team1, c.Team2)
		return []Effect{RenderPanel{ChannelID: c.ChannelID}}, nil

	case SwapTeams:
		gs, ok := st.Sessions[c.ChannelID]
		if !ok {
			return nil, ErrNoSession
		}
		gs.SwapTeams()
		return []Effect{SwapVoice{ChannelID: c.ChannelID}, RenderPanel{ChannelID: c.ChannelID}}, nil

	case EndSession:
		delete(st.Sessions, c.ChannelID)
		return nil, nil

	case SetConfig:
		if err := c.Config.Validate(); err != nil {
			return nil, err
		}
		st.Configs[c.GuildID] = c.Config
		return []Effect{PersistConfigs{}, RefreshPanel{GuildID: c.GuildID}}, nil
	}

	return nil, fmt.Errorf("unknown command %T", cmd)
}
