package panel

import (
	"context"

	"github.com/Acronica/Team-Maker/domain/engine"
	"github.com/Acronica/Team-Maker/domain/entities"
	"github.com/Acronica/Team-Maker/domain/interfaces"
	"github.com/Acronica/Team-Maker/domain/services"

	"github.com/bwmarrin/discordgo"
	log "github.com/sirupsen/logrus"
)

// EffectRunner executes the effects returned by a dispatched command.
type EffectRunner interface {
	RunEffects(ctx context.Context, effects []engine.Effect)
}

// Feature owns the control panel: the /customs command, the session
// lifecycle buttons, and panel rendering for the engine's panel effects.
type Feature struct {
	session      *discordgo.Session
	registry     *engine.Registry
	orchestrator *services.ChannelOrchestrator
	directory    interfaces.Directory
	runner       EffectRunner
}

// NewFeature creates a new panel feature instance
func NewFeature(session *discordgo.Session, registry *engine.Registry, orchestrator *services.ChannelOrchestrator, directory interfaces.Directory, runner EffectRunner) *Feature {
	return &Feature{
		session:      session,
		registry:     registry,
		orchestrator: orchestrator,
		directory:    directory,
		runner:       runner,
	}
}

// buildView resolves everything the renderer needs for a guild. Channel
// resolution failures degrade to the placeholder instead of failing the
// render.
func (f *Feature) buildView(ctx context.Context, guildID string, gs *entities.GameSession) View {
	v := View{GuildName: guildID, Session: gs}

	guild, err := f.directory.GuildInfo(ctx, guildID)
	if err != nil {
		log.WithField("guild_id", guildID).WithError(err).Warn("Failed to resolve guild name for panel")
	} else {
		v.GuildName = guild.Name
	}

	cfg, ok := f.registry.Config(guildID)
	if !ok {
		return v
	}
	v.Configured = true
	v.ChannelNames = make(map[entities.ChannelSlot]string, len(entities.ChannelSlots))
	for _, slot := range entities.ChannelSlots {
		name, err := f.directory.ChannelName(ctx, cfg.Channel(slot))
		if err != nil {
			continue
		}
		v.ChannelNames[slot] = name
	}
	return v
}

// RenderSessionPanel pushes a fresh render into the session's panel message.
func (f *Feature) RenderSessionPanel(ctx context.Context, channelID string) {
	gs, ok := f.registry.Session(channelID)
	if !ok || gs.PanelMessageID == "" {
		return
	}

	content := Render(f.buildView(ctx, gs.GuildID, &gs))
	components := BuildActiveComponents()
	_, err := f.session.ChannelMessageEditComplex(&discordgo.MessageEdit{
		ID:         gs.PanelMessageID,
		Channel:    channelID,
		Content:    &content,
		Components: &components,
	})
	if err != nil {
		log.WithFields(log.Fields{
			"channel_id": channelID,
			"message_id": gs.PanelMessageID,
		}).WithError(err).Error("Failed to edit control panel message")
	}
}

// RefreshGuildPanel re-renders the panel of the guild's active session, if
// any. Used after a config save so the footer picks up the new channels.
func (f *Feature) RefreshGuildPanel(ctx context.Context, guildID string) {
	gs, ok := f.registry.SessionForGuild(guildID)
	if !ok {
		return
	}
	f.RenderSessionPanel(ctx, gs.ChannelID)
}
