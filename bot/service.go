package bot

import (
	"context"

	"github.com/Acronica/Team-Maker/domain/engine"
	"github.com/Acronica/Team-Maker/domain/entities"
)

// The methods below implement httpapi.Service, the companion's view of the
// bot. Reads go through the discord gateway and the registry; writes reduce
// to engine commands with their effects run in-line.

func (b *Bot) GuildInfo(ctx context.Context, guildID string) (entities.Guild, error) {
	return b.gateway.GuildInfo(ctx, guildID)
}

func (b *Bot) GuildConfig(guildID string) (entities.GuildConfig, bool) {
	return b.registry.Config(guildID)
}

func (b *Bot) ChannelName(ctx context.Context, channelID string) (string, error) {
	return b.gateway.ChannelName(ctx, channelID)
}

func (b *Bot) VoiceCategories(ctx context.Context, guildID string) ([]entities.Category, error) {
	return b.gateway.VoiceCategories(ctx, guildID)
}

func (b *Bot) ChannelMembers(ctx context.Context, channelID string) ([]entities.Member, error) {
	return b.gateway.ChannelMembers(ctx, channelID)
}

func (b *Bot) UpdateConfig(ctx context.Context, guildID string, cfg entities.GuildConfig) error {
	effects, err := b.registry.Dispatch(engine.SetConfig{GuildID: guildID, Config: cfg})
	if err != nil {
		return err
	}
	b.RunEffects(ctx, effects)
	return nil
}

func (b *Bot) SubmitTeams(ctx context.Context, guildID string, team1, team2 []string) error {
	gs, ok := b.registry.SessionForGuild(guildID)
	if !ok {
		return engine.ErrNoSession
	}

	effects, err := b.registry.Dispatch(engine.ReplaceRosters{ChannelID: gs.ChannelID, Team1: team1, Team2: team2})
	if err != nil {
		return err
	}
	b.RunEffects(ctx, effects)
	return nil
}
