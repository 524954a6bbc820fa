package entities

import "fmt"

// ChannelSlot identifies one of the three configured voice channels.
type ChannelSlot string

const (
	SlotLobby ChannelSlot = "lobby"
	SlotTeam1 ChannelSlot = "team1"
	SlotTeam2 ChannelSlot = "team2"
)

// ChannelSlots lists the slots in display order.
var ChannelSlots = []ChannelSlot{SlotLobby, SlotTeam1, SlotTeam2}

// Label returns the operator-facing name of the slot.
func (s ChannelSlot) Label() string {
	switch s {
	case SlotLobby:
		return "Waiting"
	case SlotTeam1:
		return "Team 1"
	case SlotTeam2:
		return "Team 2"
	}
	return string(s)
}

// GuildConfig holds the three voice channels a guild plays customs in.
// Invariant: the three IDs are pairwise distinct (enforced by Validate).
type GuildConfig struct {
	LobbyChannelID string `json:"lobbyId"`
	Team1ChannelID string `json:"team1Id"`
	Team2ChannelID string `json:"team2Id"`
}

// Channel returns the channel ID configured for the given slot.
func (c GuildConfig) Channel(slot ChannelSlot) string {
	switch slot {
	case SlotLobby:
		return c.LobbyChannelID
	case SlotTeam1:
		return c.Team1ChannelID
	case SlotTeam2:
		return c.Team2ChannelID
	}
	return ""
}

// Complete reports whether all three channels have been chosen.
func (c GuildConfig) Complete() bool {
	return c.LobbyChannelID != "" && c.Team1ChannelID != "" && c.Team2ChannelID != ""
}

// Distinct reports whether the three chosen channels are pairwise distinct.
func (c GuildConfig) Distinct() bool {
	return c.LobbyChannelID != c.Team1ChannelID &&
		c.LobbyChannelID != c.Team2ChannelID &&
		c.Team1ChannelID != c.Team2ChannelID
}

// Validate checks completeness and distinctness.
func (c GuildConfig) Validate() error {
	if !c.Complete() {
		return fmt.Errorf("guild config incomplete: lobby=%q team1=%q team2=%q",
			c.LobbyChannelID, c.Team1ChannelID, c.Team2ChannelID)
	}
	if !c.Distinct() {
		return fmt.Errorf("guild config channels must be pairwise distinct")
	}
	return nil
}
