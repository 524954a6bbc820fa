package services

import (
	"context"
	"fmt"
	"sync"

	"github.com/Acronica/Team-Maker/domain/entities"
	"github.com/Acronica/Team-Maker/domain/interfaces"

	log "github.com/sirupsen/logrus"
)

// ChannelOrchestrator runs the batch voice relocations behind the move, swap
// and return panel actions. Each batch issues one relocation request per
// affected member, all concurrently, and reports only an aggregate count:
// individual failures (member left voice mid-flight, permissions) are logged
// and swallowed, never itemized to the operator.
type ChannelOrchestrator struct {
	voice interfaces.VoiceGateway
}

// NewChannelOrchestrator creates an orchestrator over the given gateway.
func NewChannelOrchestrator(voice interfaces.VoiceGateway) *ChannelOrchestrator {
	return &ChannelOrchestrator{voice: voice}
}

// relocation is one member-to-channel move inside a batch.
type relocation struct {
	member    entities.Member
	channelID string
}

// MoveToTeams relocates every lobby member whose display name appears on a
// roster into that team's channel. Members matching neither roster stay put.
// Returns the number of relocation requests issued.
func (o *ChannelOrchestrator) MoveToTeams(ctx context.Context, guildID string, cfg entities.GuildConfig, gs entities.GameSession) (int, error) {
	lobby, err := o.voice.VoiceMembers(ctx, guildID, cfg.LobbyChannelID)
	if err != nil {
		return 0, fmt.Errorf("failed to list lobby members: %w", err)
	}

	var batch []relocation
	for _, m := range lobby {
		switch {
		case gs.OnTeam1(m.Name):
			batch = append(batch, relocation{member: m, channelID: cfg.Team1ChannelID})
		case gs.OnTeam2(m.Name):
			batch = append(batch, relocation{member: m, channelID: cfg.Team2ChannelID})
		}
	}

	o.run(ctx, guildID, batch)
	return len(batch), nil
}

// SwapChannels relocates everyone currently sitting in the team 1 channel to
// the team 2 channel and vice versa. The swap goes by physical location, not
// roster membership. Returns the number of relocation requests issued.
func (o *ChannelOrchestrator) SwapChannels(ctx context.Context, guildID string, cfg entities.GuildConfig) (int, error) {
	inTeam1, err := o.voice.VoiceMembers(ctx, guildID, cfg.Team1ChannelID)
	if err != nil {
		return 0, fmt.Errorf("failed to list team 1 members: %w", err)
	}
	inTeam2, err := o.voice.VoiceMembers(ctx, guildID, cfg.Team2ChannelID)
	if err != nil {
		return 0, fmt.Errorf("failed to list team 2 members: %w", err)
	}

	var batch []relocation
	for _, m := range inTeam1 {
		batch = append(batch, relocation{member: m, channelID: cfg.Team2ChannelID})
	}
	for _, m := range inTeam2 {
		batch = append(batch, relocation{member: m, channelID: cfg.Team1ChannelID})
	}

	o.run(ctx, guildID, batch)
	return len(batch), nil
}

// ReturnToLobby relocates every member in the given team channel back to the
// lobby channel. Returns the number of relocation requests issued.
func (o *ChannelOrchestrator) ReturnToLobby(ctx context.Context, guildID string, cfg entities.GuildConfig, team entities.ChannelSlot) (int, error) {
	members, err := o.voice.VoiceMembers(ctx, guildID, cfg.Channel(team))
	if err != nil {
		return 0, fmt.Errorf("failed to list %s members: %w", team, err)
	}

	var batch []relocation
	for _, m := range members {
		batch = append(batch, relocation{member: m, channelID: cfg.LobbyChannelID})
	}

	o.run(ctx, guildID, batch)
	return len(batch), nil
}

// run issues every relocation concurrently and waits for all outcomes.
// Completion order is unspecified. A sync.WaitGroup rather than errgroup:
// one failed move must not cancel the rest of the batch.
func (o *ChannelOrchestrator) run(ctx context.Context, guildID string, batch []relocation) {
	var wg sync.WaitGroup
	for _, r := range batch {
		wg.Add(1)
		go func(r relocation) {
			defer wg.Done()
			if err := o.voice.MoveMember(ctx, guildID, r.member.ID, r.channelID); err != nil {
				log.WithFields(log.Fields{
					"guild_id":   guildID,
					"member":     r.member.Name,
					"channel_id": r.channelID,
				}).WithError(err).Warn("Member relocation failed")
			}
		}(r)
	}
	wg.Wait()
}
