package setup

import (
	"context"
	"errors"

	"github.com/Acronica/Team-Maker/bot/common"
	"github.com/Acronica/Team-Maker/domain/engine"
	"github.com/Acronica/Team-Maker/domain/entities"

	"github.com/bwmarrin/discordgo"
	log "github.com/sirupsen/logrus"
)

const expiredMessage = "Setup session expired. Press Setup Channels to start over."

// Begin opens the wizard at the category step. Fails without creating a
// session when no category can host all three channels.
func (f *Feature) Begin(s *discordgo.Session, i *discordgo.InteractionCreate) {
	ctx := context.Background()

	categories, err := f.directory.VoiceCategories(ctx, i.GuildID)
	if err != nil {
		common.HandleError(s, i, common.NewSystemError(err, "failed to list voice categories"))
		return
	}

	eligible := make([]entities.Category, 0, len(categories))
	for _, cat := range categories {
		if len(cat.Channels) >= minVoiceChannels {
			eligible = append(eligible, cat)
		}
	}
	if len(eligible) == 0 {
		common.RespondWithError(s, i, "No category has at least 3 voice channels. Create one and try again.")
		return
	}

	if _, err := f.registry.Dispatch(engine.BeginSetup{Key: f.key(i), Now: f.clk.Now()}); err != nil {
		common.HandleError(s, i, err)
		return
	}

	err = common.RespondWithComponents(s, i,
		"**Channel setup — step 1 of 2**\nPick the category your voice channels live in.",
		BuildCategoryComponents(eligible), true)
	if err != nil {
		log.Errorf("Error starting setup wizard: %v", err)
	}
}

// HandleCategorySelect records the category and advances to the channel picks
func (f *Feature) HandleCategorySelect(s *discordgo.Session, i *discordgo.InteractionCreate) {
	ctx := context.Background()

	categoryID := selectedValue(i)
	if _, err := f.registry.Dispatch(engine.SelectCategory{Key: f.key(i), CategoryID: categoryID}); err != nil {
		f.rejectInteraction(s, i, err)
		return
	}

	categories, err := f.directory.VoiceCategories(ctx, i.GuildID)
	if err != nil {
		common.HandleError(s, i, common.NewSystemError(err, "failed to list voice categories"))
		return
	}
	var channels []entities.Channel
	for _, cat := range categories {
		if cat.ID == categoryID {
			channels = cat.Channels
			break
		}
	}

	err = common.UpdateComponentMessage(s, i,
		"**Channel setup — step 2 of 2**\nPick the waiting channel and the two team channels, then save.",
		BuildChannelPickComponents(channels))
	if err != nil {
		log.Errorf("Error advancing setup wizard: %v", err)
	}
}

// HandleChannelPick records one of the three independent channel choices
func (f *Feature) HandleChannelPick(s *discordgo.Session, i *discordgo.InteractionCreate, slot entities.ChannelSlot) {
	cmd := engine.PickChannel{Key: f.key(i), Slot: slot, ChannelID: selectedValue(i)}
	if _, err := f.registry.Dispatch(cmd); err != nil {
		f.rejectInteraction(s, i, err)
		return
	}
	common.AckComponent(s, i)
}

// HandleSave validates the triple and commits it as the guild config
func (f *Feature) HandleSave(s *discordgo.Session, i *discordgo.InteractionCreate) {
	ctx := context.Background()

	effects, err := f.registry.Dispatch(engine.SaveSetup{Key: f.key(i)})
	switch {
	case errors.Is(err, engine.ErrSetupExpired):
		f.rejectInteraction(s, i, err)
		return
	case errors.Is(err, engine.ErrSetupIncomplete):
		common.RespondWithError(s, i, "Pick all three channels before saving.")
		return
	case errors.Is(err, engine.ErrSetupDuplicate):
		common.RespondWithError(s, i, "The three channels must be different from each other.")
		return
	case err != nil:
		common.HandleError(s, i, err)
		return
	}

	f.runner.RunEffects(ctx, effects)

	if err := common.UpdateComponentMessage(s, i, "✅ Voice channels saved.", []discordgo.MessageComponent{}); err != nil {
		log.Errorf("Error closing setup wizard: %v", err)
	}
}

// rejectInteraction closes the wizard message on a stale session, or falls
// back to the generic error path.
func (f *Feature) rejectInteraction(s *discordgo.Session, i *discordgo.InteractionCreate, err error) {
	if errors.Is(err, engine.ErrSetupExpired) {
		if err := common.UpdateComponentMessage(s, i, "❌ "+expiredMessage, []discordgo.MessageComponent{}); err != nil {
			log.Errorf("Error showing expired setup message: %v", err)
		}
		return
	}
	common.HandleError(s, i, err)
}

func (f *Feature) key(i *discordgo.InteractionCreate) entities.SetupKey {
	return entities.SetupKey{GuildID: i.GuildID, OperatorID: i.Member.User.ID}
}

func selectedValue(i *discordgo.InteractionCreate) string {
	values := i.MessageComponentData().Values
	if len(values) == 0 {
		return ""
	}
	return values[0]
}
