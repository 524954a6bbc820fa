package bot

import (
	"context"

	"github.com/Acronica/Team-Maker/domain/engine"

	log "github.com/sirupsen/logrus"
)

// RunEffects executes the side effects returned by a dispatched command.
// Effect failures are logged, never propagated: the state transition has
// already committed by the time effects run.
func (b *Bot) RunEffects(ctx context.Context, effects []engine.Effect) {
	for _, effect := range effects {
		switch e := effect.(type) {
		case engine.PersistConfigs:
			if err := b.snapshots.Save(ctx, b.registry.ConfigsSnapshot()); err != nil {
				log.WithError(err).Error("Failed to persist config snapshot")
			}

		case engine.RefreshPanel:
			b.panel.RefreshGuildPanel(ctx, e.GuildID)

		case engine.RenderPanel:
			b.panel.RenderSessionPanel(ctx, e.ChannelID)

		case engine.SwapVoice:
			b.swapVoice(ctx, e.ChannelID)

		default:
			log.Errorf("Unknown effect %T", effect)
		}
	}
}

func (b *Bot) swapVoice(ctx context.Context, channelID string) {
	gs, ok := b.registry.Session(channelID)
	if !ok {
		return
	}
	cfg, ok := b.registry.Config(gs.GuildID)
	if !ok {
		return
	}

	count, err := b.orchestrator.SwapChannels(ctx, gs.GuildID, cfg)
	if err != nil {
		log.WithField("channel_id", channelID).WithError(err).Error("Voice swap failed")
		return
	}
	log.WithFields(log.Fields{
		"channel_id": channelID,
		"relocated":  count,
	}).Info("Swapped team channel members")
}
