package panel

import "github.com/bwmarrin/discordgo"

// Component custom IDs routed by the bot's interaction handler.
const (
	CustomIDStart        = "start_game_button"
	CustomIDMove         = "move_teams"
	CustomIDSwap         = "swap_teams"
	CustomIDInputPlayers = "input_players"
	CustomIDSetup        = "setup_channels"
	CustomIDReturnTeam1  = "return_team_1"
	CustomIDReturnTeam2  = "return_team_2"
	CustomIDEnd          = "end_game"

	CustomIDRosterModal      = "player_input_modal"
	CustomIDRosterModalInput = "player_input_text"
)

// BuildIdleComponents creates the buttons shown when no game is active
func BuildIdleComponents() []discordgo.MessageComponent {
	return []discordgo.MessageComponent{
		discordgo.ActionsRow{
			Components: []discordgo.MessageComponent{
				discordgo.Button{
					Label:    "Start Game",
					Style:    discordgo.SuccessButton,
					CustomID: CustomIDStart,
				},
				discordgo.Button{
					Label:    "Setup Channels",
					Style:    discordgo.SecondaryButton,
					CustomID: CustomIDSetup,
				},
			},
		},
	}
}

// BuildActiveComponents creates the full control set for an active session
func BuildActiveComponents() []discordgo.MessageComponent {
	return []discordgo.MessageComponent{
		discordgo.ActionsRow{
			Components: []discordgo.MessageComponent{
				discordgo.Button{
					Label:    "Add Players",
					Style:    discordgo.PrimaryButton,
					CustomID: CustomIDInputPlayers,
				},
				discordgo.Button{
					Label:    "Move to Teams",
					Style:    discordgo.PrimaryButton,
					CustomID: CustomIDMove,
				},
				discordgo.Button{
					Label:    "Swap Teams",
					Style:    discordgo.PrimaryButton,
					CustomID: CustomIDSwap,
				},
			},
		},
		discordgo.ActionsRow{
			Components: []discordgo.MessageComponent{
				discordgo.Button{
					Label:    "Return Team 1",
					Style:    discordgo.SecondaryButton,
					CustomID: CustomIDReturnTeam1,
				},
				discordgo.Button{
					Label:    "Return Team 2",
					Style:    discordgo.SecondaryButton,
					CustomID: CustomIDReturnTeam2,
				},
				discordgo.Button{
					Label:    "Setup Channels",
					Style:    discordgo.SecondaryButton,
					CustomID: CustomIDSetup,
				},
				discordgo.Button{
					Label:    "End Game",
					Style:    discordgo.DangerButton,
					CustomID: CustomIDEnd,
				},
			},
		},
	}
}

// BuildRosterModal creates the pasted-roster modal
func BuildRosterModal() discordgo.InteractionResponseData {
	return discordgo.InteractionResponseData{
		CustomID: CustomIDRosterModal,
		Title:    "Add Players",
		Components: []discordgo.MessageComponent{
			discordgo.ActionsRow{
				Components: []discordgo.MessageComponent{
					discordgo.TextInput{
						CustomID:    CustomIDRosterModalInput,
						Label:       "One pair per line: player1 : player2",
						Style:       discordgo.TextInputParagraph,
						Placeholder: "Faker : Chovy\nZeus : -\n...",
						Required:    true,
					},
				},
			},
		},
	}
}
