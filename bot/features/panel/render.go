package panel

import (
	"fmt"
	"strings"

	"github.com/Acronica/Team-Maker/domain/entities"
)

// DeletedChannelPlaceholder is rendered for a configured channel that no
// longer resolves.
const DeletedChannelPlaceholder = "deleted channel"

// blankRoster stands in for a team with no players so the line keeps its shape.
const blankRoster = " "

// View is everything the renderer needs, resolved ahead of time. Rendering
// itself touches no state.
type View struct {
	GuildName  string
	Configured bool

	// ChannelNames maps each configured slot to its resolved name. An empty
	// value renders as the deleted-channel placeholder.
	ChannelNames map[entities.ChannelSlot]string

	// Session is nil when no game is active in the channel.
	Session *entities.GameSession
}

// Render produces the full control-panel text for a view.
func Render(v View) string {
	var b strings.Builder

	fmt.Fprintf(&b, "## %s Customs\n\n", v.GuildName)

	switch {
	case v.Session == nil:
		b.WriteString("No game in progress. Press **Start Game** to begin a session.\n")
	case !v.Session.HasRosters():
		b.WriteString("Session active. Submit rosters from the companion app or press **Add Players**.\n")
	default:
		fmt.Fprintf(&b, "**Team 1:** %s\n", rosterLine(v.Session.Team1))
		fmt.Fprintf(&b, "**Team 2:** %s\n", rosterLine(v.Session.Team2))
	}

	b.WriteString("\n")
	if !v.Configured {
		b.WriteString("-# Voice channels not configured. Press **Setup Channels**.")
		return b.String()
	}

	parts := make([]string, 0, len(entities.ChannelSlots))
	for _, slot := range entities.ChannelSlots {
		name := v.ChannelNames[slot]
		if name == "" {
			name = DeletedChannelPlaceholder
		}
		parts = append(parts, fmt.Sprintf("%s: %s", slot.Label(), name))
	}
	b.WriteString("-# " + strings.Join(parts, " · "))

	return b.String()
}

func rosterLine(names []string) string {
	if len(names) == 0 {
		return blankRoster
	}
	return strings.Join(names, ", ")
}
