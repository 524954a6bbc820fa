package engine

import (
	"time"

	"github.com/Acronica/Team-Maker/domain/entities"
)

// Command is one member of the closed set of state transitions. Every
// interaction surface (slash command, button, modal, select menu, HTTP call)
// reduces to one of these before it touches shared state.
type Command interface{ isCommand() }

// BeginSetup opens (or restarts) the channel setup wizard for an operator.
type BeginSetup struct {
	Key entities.SetupKey
	Now time.Time
}

// SelectCategory records the wizard's category choice and advances to the
// channel-pick step.
type SelectCategory struct {
	Key        entities.SetupKey
	CategoryID string
}

// PickChannel records one of the three independent channel choices.
type PickChannel struct {
	Key       entities.SetupKey
	Slot      entities.ChannelSlot
	ChannelID string
}

// SaveSetup validates the picked triple and commits it as the guild config.
type SaveSetup struct {
	Key entities.SetupKey
}

// ExpireSetups drops wizard sessions created before the cutoff.
type ExpireSetups struct {
	Cutoff time.Time
}

// StartSession activates a game session in a channel. Requires the guild to
// be configured; an existing session in the channel is replaced.
type StartSession struct {
	ChannelID string
	GuildID   string
}

// AttachPanel records the control-panel message rendered for a session.
type AttachPanel struct {
	ChannelID string
	MessageID string
}

// ReplaceRosters overwrites both team lists of the channel's session.
type ReplaceRosters struct {
	ChannelID string
	Team1     []string
	Team2     []string
}

// SwapTeams exchanges the two roster lists of the channel's session.
type SwapTeams struct {
	ChannelID string
}

// EndSession destroys the channel's session. Ending an already-ended
// session is a no-op.
type EndSession struct {
	ChannelID string
}

// SetConfig overwrites a guild's config directly (the companion's
// update-config call).
type SetConfig struct {
	GuildID string
	Config  entities.GuildConfig
}

func (BeginSetup) isCommand()     {}
func (SelectCategory) isCommand() {}
func (PickChannel) isCommand()    {}
func (SaveSetup) isCommand()      {}
func (ExpireSetups) isCommand()   {}
func (StartSession) isCommand()   {}
func (AttachPanel) isCommand()    {}
func (ReplaceRosters) isCommand() {}
func (SwapTeams) isCommand()      {}
func (EndSession) isCommand()     {}
func (SetConfig) isCommand()      {}
