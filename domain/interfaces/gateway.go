package interfaces

import (
	"context"
	"errors"

	"github.com/Acronica/Team-Maker/domain/entities"
)

// Channel lookup failures the API surface distinguishes from transport errors.
var (
	ErrUnknownChannel = errors.New("unknown channel")
	ErrNotVoice       = errors.New("not a voice channel")
)

// VoiceGateway is the slice of the chat platform the channel orchestrator
// needs: who sits in a voice channel, and moving one member between channels.
type VoiceGateway interface {
	// VoiceMembers lists members currently connected to the voice channel.
	VoiceMembers(ctx context.Context, guildID, channelID string) ([]entities.Member, error)

	// MoveMember relocates one connected member into the target voice channel.
	MoveMember(ctx context.Context, guildID, userID, channelID string) error
}

// Directory resolves guild structure for the setup wizard, the control panel
// footer and the companion API.
type Directory interface {
	// GuildInfo returns the guild's identity.
	GuildInfo(ctx context.Context, guildID string) (entities.Guild, error)

	// VoiceCategories lists the guild's categories together with the voice
	// channels they contain. Categories without voice channels are omitted.
	VoiceCategories(ctx context.Context, guildID string) ([]entities.Category, error)

	// ChannelName resolves a channel's current name. A deleted or otherwise
	// unresolvable channel returns an error; callers render a placeholder.
	ChannelName(ctx context.Context, channelID string) (string, error)
}
