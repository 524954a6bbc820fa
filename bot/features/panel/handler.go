package panel

import (
	"context"
	"errors"
	"fmt"

	"github.com/Acronica/Team-Maker/bot/common"
	"github.com/Acronica/Team-Maker/domain/engine"
	"github.com/Acronica/Team-Maker/domain/entities"

	"github.com/bwmarrin/discordgo"
	log "github.com/sirupsen/logrus"
)

// HandleCommand handles the /customs slash command by posting the panel
func (f *Feature) HandleCommand(s *discordgo.Session, i *discordgo.InteractionCreate) {
	ctx := context.Background()

	var view View
	if gs, ok := f.registry.Session(i.ChannelID); ok {
		view = f.buildView(ctx, i.GuildID, &gs)
	} else {
		view = f.buildView(ctx, i.GuildID, nil)
	}

	components := BuildIdleComponents()
	if view.Session != nil {
		components = BuildActiveComponents()
	}
	if err := common.RespondWithComponents(s, i, Render(view), components, false); err != nil {
		log.Errorf("Error posting control panel: %v", err)
		return
	}

	// The panel just posted replaces any previous panel message for a session
	// already running in this channel.
	if view.Session != nil {
		f.attachPanelMessage(s, i)
	}
}

// HandleStart activates a session in the panel's channel. The caller has
// already verified the guild is configured.
func (f *Feature) HandleStart(s *discordgo.Session, i *discordgo.InteractionCreate) {
	ctx := context.Background()

	_, err := f.registry.Dispatch(engine.StartSession{ChannelID: i.ChannelID, GuildID: i.GuildID})
	if errors.Is(err, engine.ErrNotConfigured) {
		common.RespondWithError(s, i, "Voice channels are not configured yet. Press Setup Channels first.")
		return
	}
	if err != nil {
		common.HandleError(s, i, err)
		return
	}
	if _, err := f.registry.Dispatch(engine.AttachPanel{ChannelID: i.ChannelID, MessageID: i.Message.ID}); err != nil {
		common.HandleError(s, i, err)
		return
	}

	gs, _ := f.registry.Session(i.ChannelID)
	view := f.buildView(ctx, i.GuildID, &gs)
	if err := common.UpdateComponentMessage(s, i, Render(view), BuildActiveComponents()); err != nil {
		log.Errorf("Error updating panel after start: %v", err)
	}
}

// HandleMove relocates rostered lobby members into their team channels
func (f *Feature) HandleMove(s *discordgo.Session, i *discordgo.InteractionCreate) {
	ctx := context.Background()

	cfg, gs, err := f.requireActive(i)
	if err != nil {
		common.HandleError(s, i, err)
		return
	}

	count, err := f.orchestrator.MoveToTeams(ctx, i.GuildID, cfg, gs)
	if err != nil {
		common.HandleError(s, i, common.NewSystemError(err, "move to teams failed"))
		return
	}
	common.RespondEphemeral(s, i, fmt.Sprintf("Moved %d member(s) to team channels.", count))
}

// HandleSwap exchanges the rosters and the physical channel occupants
func (f *Feature) HandleSwap(s *discordgo.Session, i *discordgo.InteractionCreate) {
	ctx := context.Background()

	effects, err := f.registry.Dispatch(engine.SwapTeams{ChannelID: i.ChannelID})
	if errors.Is(err, engine.ErrNoSession) {
		common.RespondWithError(s, i, "No game is running in this channel.")
		return
	}
	if err != nil {
		common.HandleError(s, i, err)
		return
	}

	f.runner.RunEffects(ctx, effects)
	common.RespondEphemeral(s, i, "Teams swapped.")
}

// HandleInputPlayers opens the pasted-roster modal
func (f *Feature) HandleInputPlayers(s *discordgo.Session, i *discordgo.InteractionCreate) {
	if _, ok := f.registry.Session(i.ChannelID); !ok {
		common.RespondWithError(s, i, "No game is running in this channel.")
		return
	}

	modal := BuildRosterModal()
	err := s.InteractionRespond(i.Interaction, &discordgo.InteractionResponse{
		Type: discordgo.InteractionResponseModal,
		Data: &modal,
	})
	if err != nil {
		log.Errorf("Error opening roster modal: %v", err)
	}
}

// HandleRosterModal replaces both rosters from the pasted text
func (f *Feature) HandleRosterModal(s *discordgo.Session, i *discordgo.InteractionCreate) {
	ctx := context.Background()

	text := extractModalText(i)
	team1, team2 := entities.ParseRosterText(text)
	if len(team1) == 0 && len(team2) == 0 {
		common.RespondWithError(s, i, "No players recognized. Use one line per pair: `player1 : player2` (use `-` for an empty side).")
		return
	}

	effects, err := f.registry.Dispatch(engine.ReplaceRosters{ChannelID: i.ChannelID, Team1: team1, Team2: team2})
	switch {
	case errors.Is(err, engine.ErrNoSession):
		common.RespondWithError(s, i, "No game is running in this channel.")
		return
	case err != nil:
		common.HandleError(s, i, err)
		return
	}

	f.runner.RunEffects(ctx, effects)
	common.RespondEphemeral(s, i, "Rosters updated.")
}

// HandleReturn relocates everyone in the given team channel back to the lobby
func (f *Feature) HandleReturn(s *discordgo.Session, i *discordgo.InteractionCreate, team entities.ChannelSlot) {
	ctx := context.Background()

	cfg, _, err := f.requireActive(i)
	if err != nil {
		common.HandleError(s, i, err)
		return
	}

	count, err := f.orchestrator.ReturnToLobby(ctx, i.GuildID, cfg, team)
	if err != nil {
		common.HandleError(s, i, common.NewSystemError(err, "return to lobby failed"))
		return
	}
	common.RespondEphemeral(s, i, fmt.Sprintf("Returned %d member(s) to the waiting channel.", count))
}

// HandleEnd destroys the session and resets the panel to idle
func (f *Feature) HandleEnd(s *discordgo.Session, i *discordgo.InteractionCreate) {
	ctx := context.Background()

	if _, err := f.registry.Dispatch(engine.EndSession{ChannelID: i.ChannelID}); err != nil {
		common.HandleError(s, i, err)
		return
	}

	view := f.buildView(ctx, i.GuildID, nil)
	if err := common.UpdateComponentMessage(s, i, Render(view), BuildIdleComponents()); err != nil {
		log.Errorf("Error resetting panel after end: %v", err)
	}
}

// requireActive is the fail-fast gate shared by the relocation buttons.
func (f *Feature) requireActive(i *discordgo.InteractionCreate) (entities.GuildConfig, entities.GameSession, error) {
	cfg, ok := f.registry.Config(i.GuildID)
	if !ok {
		return entities.GuildConfig{}, entities.GameSession{}, common.NewUserError(
			"Voice channels are not configured yet. Press Setup Channels first.",
			"relocation requested without guild config")
	}
	gs, ok := f.registry.Session(i.ChannelID)
	if !ok {
		return entities.GuildConfig{}, entities.GameSession{}, common.NewUserError(
			"No game is running in this channel.",
			"relocation requested without active session")
	}
	return cfg, gs, nil
}

// attachPanelMessage repoints an existing session at the freshly posted panel.
func (f *Feature) attachPanelMessage(s *discordgo.Session, i *discordgo.InteractionCreate) {
	msg, err := s.InteractionResponse(i.Interaction)
	if err != nil {
		log.Errorf("Error fetching posted panel message: %v", err)
		return
	}
	if _, err := f.registry.Dispatch(engine.AttachPanel{ChannelID: i.ChannelID, MessageID: msg.ID}); err != nil {
		log.Errorf("Error attaching panel message: %v", err)
	}
}

func extractModalText(i *discordgo.InteractionCreate) string {
	for _, row := range i.ModalSubmitData().Components {
		actionRow, ok := row.(*discordgo.ActionsRow)
		if !ok {
			continue
		}
		for _, comp := range actionRow.Components {
			if input, ok := comp.(*discordgo.TextInput); ok && input.CustomID == CustomIDRosterModalInput {
				return input.Value
			}
		}
	}
	return ""
}
