package entities

// GameSession is the transient per-channel record of an active custom game:
// the two team rosters plus the control-panel message that displays them.
type GameSession struct {
	ChannelID      string
	GuildID        string
	Team1          []string
	Team2          []string
	PanelMessageID string
}

// NewGameSession creates an active session with empty rosters.
func NewGameSession(channelID, guildID string) *GameSession {
	return &GameSession{
		ChannelID: channelID,
		GuildID:   guildID,
		Team1:     []string{},
		Team2:     []string{},
	}
}

// HasRosters reports whether either team has at least one player.
func (gs *GameSession) HasRosters() bool {
	return len(gs.Team1) > 0 || len(gs.Team2) > 0
}

// ReplaceRosters overwrites both team lists in full. Submissions never merge.
func (gs *GameSession) ReplaceRosters(team1, team2 []string) {
	gs.Team1 = append([]string{}, team1...)
	gs.Team2 = append([]string{}, team2...)
}

// SwapTeams exchanges the two roster lists.
func (gs *GameSession) SwapTeams() {
	gs.Team1, gs.Team2 = gs.Team2, gs.Team1
}

// OnTeam1 reports whether the display name is rostered on team 1.
func (gs *GameSession) OnTeam1(name string) bool {
	return contains(gs.Team1, name)
}

// OnTeam2 reports whether the display name is rostered on team 2.
func (gs *GameSession) OnTeam2(name string) bool {
	return contains(gs.Team2, name)
}

func contains(names []string, name string) bool {
	for _, n := range names {
		if n == name {
			return true
		}
	}
	return false
}
