package entities

import (
	"fmt"
	"time"
)

// SetupStep tracks which page of the channel setup wizard the operator is on.
type SetupStep int

const (
	StepCategory SetupStep = iota + 1
	StepChannelPick
)

// SetupKey identifies a wizard run: one per (guild, operator) pair.
type SetupKey struct {
	GuildID    string
	OperatorID string
}

// String renders the key in the form embedded in component custom IDs.
func (k SetupKey) String() string {
	return fmt.Sprintf("%s-%s", k.GuildID, k.OperatorID)
}

// SetupSession is the transient state of one wizard run. The three channel
// picks are unordered and independent; Save validates the full triple.
type SetupSession struct {
	Key        SetupKey
	Step       SetupStep
	CategoryID string
	Picks      GuildConfig
	CreatedAt  time.Time
}

// NewSetupSession starts a wizard run at the category step.
func NewSetupSession(key SetupKey, now time.Time) *SetupSession {
	return &SetupSession{Key: key, Step: StepCategory, CreatedAt: now}
}

// Pick records a channel choice without changing step.
func (ss *SetupSession) Pick(slot ChannelSlot, channelID string) {
	switch slot {
	case SlotLobby:
		ss.Picks.LobbyChannelID = channelID
	case SlotTeam1:
		ss.Picks.Team1ChannelID = channelID
	case SlotTeam2:
		ss.Picks.Team2ChannelID = channelID
	}
}

// ExpiredBy reports whether the session was created before the cutoff.
func (ss *SetupSession) ExpiredBy(cutoff time.Time) bool {
	return ss.CreatedAt.Before(cutoff)
}
