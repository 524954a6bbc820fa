package setup

import (
	"github.com/Acronica/Team-Maker/domain/entities"

	"github.com/bwmarrin/discordgo"
)

// Component custom IDs routed by the bot's interaction handler.
const (
	CustomIDCategorySelect = "setup_category_select"
	CustomIDLobbySelect    = "setup_lobby_select"
	CustomIDTeam1Select    = "setup_team1_select"
	CustomIDTeam2Select    = "setup_team2_select"
	CustomIDSave           = "setup_save"
)

// Discord caps select menus at 25 options.
const maxSelectOptions = 25

// SlotSelectID returns the custom ID of the picker for a slot.
func SlotSelectID(slot entities.ChannelSlot) string {
	switch slot {
	case entities.SlotLobby:
		return CustomIDLobbySelect
	case entities.SlotTeam1:
		return CustomIDTeam1Select
	case entities.SlotTeam2:
		return CustomIDTeam2Select
	}
	return ""
}

// BuildCategoryComponents creates the category select menu
func BuildCategoryComponents(categories []entities.Category) []discordgo.MessageComponent {
	options := make([]discordgo.SelectMenuOption, 0, len(categories))
	for _, cat := range categories {
		if len(options) == maxSelectOptions {
			break
		}
		options = append(options, discordgo.SelectMenuOption{
			Label: cat.Name,
			Value: cat.ID,
		})
	}

	return []discordgo.MessageComponent{
		discordgo.ActionsRow{
			Components: []discordgo.MessageComponent{
				discordgo.SelectMenu{
					CustomID:    CustomIDCategorySelect,
					Placeholder: "Pick a category",
					Options:     options,
				},
			},
		},
	}
}

// BuildChannelPickComponents creates the three channel pickers plus the save
// button, all scoped to the selected category's voice channels
func BuildChannelPickComponents(channels []entities.Channel) []discordgo.MessageComponent {
	options := make([]discordgo.SelectMenuOption, 0, len(channels))
	for _, ch := range channels {
		if len(options) == maxSelectOptions {
			break
		}
		options = append(options, discordgo.SelectMenuOption{
			Label: ch.Name,
			Value: ch.ID,
		})
	}

	components := make([]discordgo.MessageComponent, 0, len(entities.ChannelSlots)+1)
	for _, slot := range entities.ChannelSlots {
		// Each select needs its own option slice: discordgo serializes the
		// shared backing array per menu.
		menuOptions := make([]discordgo.SelectMenuOption, len(options))
		copy(menuOptions, options)

		components = append(components, discordgo.ActionsRow{
			Components: []discordgo.MessageComponent{
				discordgo.SelectMenu{
					CustomID:    SlotSelectID(slot),
					Placeholder: slot.Label() + " channel",
					Options:     menuOptions,
				},
			},
		})
	}

	components = append(components, discordgo.ActionsRow{
		Components: []discordgo.MessageComponent{
			discordgo.Button{
				Label:    "Save",
				Style:    discordgo.SuccessButton,
				CustomID: CustomIDSave,
			},
		},
	})
	return components
}
