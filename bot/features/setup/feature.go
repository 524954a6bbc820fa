package setup

import (
	"context"

	"github.com/Acronica/Team-Maker/dependencies/clock"
	"github.com/Acronica/Team-Maker/domain/engine"
	"github.com/Acronica/Team-Maker/domain/interfaces"

	"github.com/bwmarrin/discordgo"
)

// minVoiceChannels is the smallest category that can host a full setup.
const minVoiceChannels = 3

// EffectRunner executes the effects returned by a dispatched command.
type EffectRunner interface {
	RunEffects(ctx context.Context, effects []engine.Effect)
}

// Feature walks an operator through the channel setup wizard
type Feature struct {
	session   *discordgo.Session
	registry  *engine.Registry
	directory interfaces.Directory
	clk       clock.Clock
	runner    EffectRunner
}

// NewFeature creates a new setup feature instance
func NewFeature(session *discordgo.Session, registry *engine.Registry, directory interfaces.Directory, clk clock.Clock, runner EffectRunner) *Feature {
	return &Feature{
		session:   session,
		registry:  registry,
		directory: directory,
		clk:       clk,
		runner:    runner,
	}
}
