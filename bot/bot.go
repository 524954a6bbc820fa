package bot

import (
	"fmt"
	"time"

	"github.com/Acronica/Team-Maker/bot/features/panel"
	"github.com/Acronica/Team-Maker/bot/features/setup"
	"github.com/Acronica/Team-Maker/dependencies/clock"
	"github.com/Acronica/Team-Maker/discord"
	"github.com/Acronica/Team-Maker/domain/engine"
	"github.com/Acronica/Team-Maker/domain/entities"
	"github.com/Acronica/Team-Maker/domain/services"
	"github.com/Acronica/Team-Maker/store"

	"github.com/bwmarrin/discordgo"
)

// Config holds bot configuration
type Config struct {
	Token           string
	SetupSessionTTL time.Duration
	SweepInterval   time.Duration
}

type Bot struct {
	config       Config
	session      *discordgo.Session
	registry     *engine.Registry
	snapshots    store.SnapshotStore
	gateway      *discord.Gateway
	orchestrator *services.ChannelOrchestrator
	clock        clock.Clock

	panel *panel.Feature
	setup *setup.Feature

	stop chan struct{}
}

func New(config Config, registry *engine.Registry, snapshots store.SnapshotStore, clk clock.Clock) (*Bot, error) {
	dg, err := discordgo.New("Bot " + config.Token)
	if err != nil {
		return nil, fmt.Errorf("error creating discord session: %w", err)
	}
	dg.Identify.Intents = discordgo.IntentsGuilds | discordgo.IntentsGuildVoiceStates | discordgo.IntentsGuildMembers

	if config.SweepInterval <= 0 {
		config.SweepInterval = time.Minute
	}

	gateway := discord.NewGateway(dg)
	bot := &Bot{
		config:       config,
		session:      dg,
		registry:     registry,
		snapshots:    snapshots,
		gateway:      gateway,
		orchestrator: services.NewChannelOrchestrator(gateway),
		clock:        clk,
		stop:         make(chan struct{}),
	}
	bot.panel = panel.NewFeature(dg, registry, bot.orchestrator, gateway, bot)
	bot.setup = setup.NewFeature(dg, registry, gateway, clk, bot)

	// Register slash command handlers
	dg.AddHandler(bot.handleCommands)

	// Register component and modal interaction handlers
	dg.AddHandler(bot.handleComponentInteraction)
	dg.AddHandler(bot.handleModalSubmit)

	// Open websocket connection
	if err := dg.Open(); err != nil {
		return nil, fmt.Errorf("error opening connection: %w", err)
	}

	// Register slash commands with Discord
	if err := bot.registerCommands(); err != nil {
		dg.Close()
		return nil, fmt.Errorf("error registering commands: %w", err)
	}

	// Start periodic expiry of abandoned setup wizard sessions
	go bot.startSetupSweep()

	return bot, nil
}

func (b *Bot) Close() error {
	close(b.stop)
	return b.session.Close()
}

func (b *Bot) handleCommands(s *discordgo.Session, i *discordgo.InteractionCreate) {
	if i.Type != discordgo.InteractionApplicationCommand {
		return
	}

	switch i.ApplicationCommandData().Name {
	case "customs":
		b.panel.HandleCommand(s, i)
	}
}

func (b *Bot) handleComponentInteraction(s *discordgo.Session, i *discordgo.InteractionCreate) {
	if i.Type != discordgo.InteractionMessageComponent {
		return
	}

	switch i.MessageComponentData().CustomID {
	case panel.CustomIDStart:
		// Starting without a config redirects straight into the wizard.
		if _, ok := b.registry.Config(i.GuildID); !ok {
			b.setup.Begin(s, i)
			return
		}
		b.panel.HandleStart(s, i)
	case panel.CustomIDMove:
		b.panel.HandleMove(s, i)
	case panel.CustomIDSwap:
		b.panel.HandleSwap(s, i)
	case panel.CustomIDInputPlayers:
		b.panel.HandleInputPlayers(s, i)
	case panel.CustomIDReturnTeam1:
		b.panel.HandleReturn(s, i, entities.SlotTeam1)
	case panel.CustomIDReturnTeam2:
		b.panel.HandleReturn(s, i, entities.SlotTeam2)
	case panel.CustomIDEnd:
		b.panel.HandleEnd(s, i)
	case panel.CustomIDSetup:
		b.setup.Begin(s, i)
	case setup.CustomIDCategorySelect:
		b.setup.HandleCategorySelect(s, i)
	case setup.CustomIDLobbySelect:
		b.setup.HandleChannelPick(s, i, entities.SlotLobby)
	case setup.CustomIDTeam1Select:
		b.setup.HandleChannelPick(s, i, entities.SlotTeam1)
	case setup.CustomIDTeam2Select:
		b.setup.HandleChannelPick(s, i, entities.SlotTeam2)
	case setup.CustomIDSave:
		b.setup.HandleSave(s, i)
	}
}

func (b *Bot) handleModalSubmit(s *discordgo.Session, i *discordgo.InteractionCreate) {
	if i.Type != discordgo.InteractionModalSubmit {
		return
	}

	if i.ModalSubmitData().CustomID == panel.CustomIDRosterModal {
		b.panel.HandleRosterModal(s, i)
	}
}
