// Package discord adapts a discordgo session to the domain gateway
// interfaces. Reads prefer the state cache and fall back to the REST API.
package discord

import (
	"context"
	"fmt"

	"github.com/Acronica/Team-Maker/domain/entities"
	"github.com/Acronica/Team-Maker/domain/interfaces"

	"github.com/bwmarrin/discordgo"
)

// Gateway implements interfaces.VoiceGateway and interfaces.Directory.
type Gateway struct {
	session *discordgo.Session
}

func NewGateway(session *discordgo.Session) *Gateway {
	return &Gateway{session: session}
}

// GuildInfo returns the guild's identity.
func (g *Gateway) GuildInfo(_ context.Context, guildID string) (entities.Guild, error) {
	guild, err := g.guild(guildID)
	if err != nil {
		return entities.Guild{}, err
	}
	return entities.Guild{ID: guild.ID, Name: guild.Name}, nil
}

// VoiceCategories lists the guild's categories with the voice channels each
// contains. Categories without voice channels are omitted.
func (g *Gateway) VoiceCategories(_ context.Context, guildID string) ([]entities.Category, error) {
	channels, err := g.session.GuildChannels(guildID)
	if err != nil {
		return nil, fmt.Errorf("failed to list guild channels: %w", err)
	}

	voiceByParent := make(map[string][]entities.Channel)
	for _, ch := range channels {
		if ch.Type == discordgo.ChannelTypeGuildVoice && ch.ParentID != "" {
			voiceByParent[ch.ParentID] = append(voiceByParent[ch.ParentID], entities.Channel{ID: ch.ID, Name: ch.Name})
		}
	}

	var categories []entities.Category
	for _, ch := range channels {
		if ch.Type != discordgo.ChannelTypeGuildCategory {
			continue
		}
		voice, ok := voiceByParent[ch.ID]
		if !ok {
			continue
		}
		categories = append(categories, entities.Category{ID: ch.ID, Name: ch.Name, Channels: voice})
	}
	return categories, nil
}

// ChannelName resolves a channel's current name.
func (g *Gateway) ChannelName(_ context.Context, channelID string) (string, error) {
	ch, err := g.channel(channelID)
	if err != nil {
		return "", err
	}
	return ch.Name, nil
}

// VoiceMembers lists members currently connected to the voice channel, with
// their display names.
func (g *Gateway) VoiceMembers(_ context.Context, guildID, channelID string) ([]entities.Member, error) {
	guild, err := g.session.State.Guild(guildID)
	if err != nil {
		return nil, fmt.Errorf("guild %s not in state cache: %w", guildID, err)
	}

	var members []entities.Member
	for _, vs := range guild.VoiceStates {
		if vs.ChannelID != channelID {
			continue
		}
		members = append(members, entities.Member{
			ID:   vs.UserID,
			Name: g.displayName(guildID, vs.UserID),
		})
	}
	return members, nil
}

// MoveMember relocates one connected member into the target voice channel.
func (g *Gateway) MoveMember(_ context.Context, guildID, userID, channelID string) error {
	return g.session.GuildMemberMove(guildID, userID, &channelID)
}

// ChannelMembers resolves a bare channel ID to its voice members, for the
// companion API where no guild ID accompanies the request.
func (g *Gateway) ChannelMembers(ctx context.Context, channelID string) ([]entities.Member, error) {
	ch, err := g.channel(channelID)
	if err != nil {
		return nil, interfaces.ErrUnknownChannel
	}
	if ch.Type != discordgo.ChannelTypeGuildVoice {
		return nil, interfaces.ErrNotVoice
	}
	return g.VoiceMembers(ctx, ch.GuildID, channelID)
}

func (g *Gateway) guild(guildID string) (*discordgo.Guild, error) {
	if guild, err := g.session.State.Guild(guildID); err == nil {
		return guild, nil
	}
	guild, err := g.session.Guild(guildID)
	if err != nil {
		return nil, fmt.Errorf("failed to fetch guild %s: %w", guildID, err)
	}
	return guild, nil
}

func (g *Gateway) channel(channelID string) (*discordgo.Channel, error) {
	if ch, err := g.session.State.Channel(channelID); err == nil {
		return ch, nil
	}
	ch, err := g.session.Channel(channelID)
	if err != nil {
		return nil, fmt.Errorf("failed to fetch channel %s: %w", channelID, err)
	}
	return ch, nil
}

// displayName mirrors the platform's display precedence: guild nickname,
// then global name, then username.
func (g *Gateway) displayName(guildID, userID string) string {
	member, err := g.session.State.Member(guildID, userID)
	if err != nil {
		member, err = g.session.GuildMember(guildID, userID)
		if err != nil {
			return userID
		}
	}
	if member.Nick != "" {
		return member.Nick
	}
	if member.User != nil {
		if member.User.GlobalName != "" {
			return member.User.GlobalName
		}
		return member.User.Username
	}
	return userID
}
