// Command companion is a headless stand-in for the desktop shell: it drives
// the bot's API the same way the drag-and-drop editor does.
package main

import (
	"context"
	"fmt"
	"os"
	"strings"

	"github.com/Acronica/Team-Maker/desktop/gateway"

	"github.com/spf13/cobra"
)

var (
	apiBase string
	apiKey  string
)

func client() *gateway.Client {
	return gateway.NewClient(apiBase, apiKey)
}

func main() {
	root := &cobra.Command{
		Use:   "companion",
		Short: "Drive the team maker bot from the command line",
	}
	root.PersistentFlags().StringVar(&apiBase, "api", "http://localhost:3000", "bot API base URL")
	root.PersistentFlags().StringVar(&apiKey, "key", os.Getenv("API_KEY"), "bot API shared secret")

	root.AddCommand(serverCmd(), configCmd(), channelsCmd(), membersCmd(), submitCmd(), updateConfigCmd())

	if err := root.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func serverCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "server <guild-id>",
		Short: "Show a server's identity",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			guild, err := client().Server(context.Background(), args[0])
			if err != nil {
				return err
			}
			fmt.Printf("%s (%s)\n", guild.Name, guild.ID)
			return nil
		},
	}
}

func configCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "config <guild-id>",
		Short: "Show a server's configured channels",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := client().Config(context.Background(), args[0])
			if gateway.NotFound(err) {
				return fmt.Errorf("server %s is not configured yet", args[0])
			}
			if err != nil {
				return err
			}
			fmt.Printf("Server:  %s\n", cfg.Guild.Name)
			fmt.Printf("Waiting: %s (%s)\n", cfg.Lobby.Name, cfg.Lobby.ID)
			fmt.Printf("Team 1:  %s (%s)\n", cfg.Team1.Name, cfg.Team1.ID)
			fmt.Printf("Team 2:  %s (%s)\n", cfg.Team2.Name, cfg.Team2.ID)
			return nil
		},
	}
}

func channelsCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "channels <guild-id>",
		Short: "List a server's voice channels by category",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			categories, err := client().Channels(context.Background(), args[0])
			if err != nil {
				return err
			}
			for _, cat := range categories {
				fmt.Printf("%s (%s)\n", cat.Name, cat.ID)
				for _, ch := range cat.Channels {
					fmt.Printf("  %s (%s)\n", ch.Name, ch.ID)
				}
			}
			return nil
		},
	}
}

func membersCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "members <channel-id>",
		Short: "List members currently in a voice channel",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			members, err := client().ChannelMembers(context.Background(), args[0])
			if gateway.NotFound(err) {
				return fmt.Errorf("%s is not a voice channel", args[0])
			}
			if err != nil {
				return err
			}
			for _, m := range members {
				fmt.Printf("%s (%s)\n", m.Name, m.ID)
			}
			return nil
		},
	}
}

func submitCmd() *cobra.Command {
	var team1, team2 string
	cmd := &cobra.Command{
		Use:   "submit <guild-id>",
		Short: "Submit both team rosters to the server's active session",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			err := client().SubmitTeams(context.Background(), args[0], splitNames(team1), splitNames(team2))
			if gateway.NotFound(err) {
				return fmt.Errorf("no active game session for server %s", args[0])
			}
			if err != nil {
				return err
			}
			fmt.Println("rosters submitted")
			return nil
		},
	}
	cmd.Flags().StringVar(&team1, "team1", "", "comma-separated team 1 names")
	cmd.Flags().StringVar(&team2, "team2", "", "comma-separated team 2 names")
	return cmd
}

func updateConfigCmd() *cobra.Command {
	var lobby, team1, team2 string
	cmd := &cobra.Command{
		Use:   "update-config <guild-id>",
		Short: "Overwrite a server's channel configuration",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := client().UpdateConfig(context.Background(), args[0], lobby, team1, team2); err != nil {
				return err
			}
			fmt.Println("config updated")
			return nil
		},
	}
	cmd.Flags().StringVar(&lobby, "lobby", "", "waiting channel ID")
	cmd.Flags().StringVar(&team1, "team1", "", "team 1 channel ID")
	cmd.Flags().StringVar(&team2, "team2", "", "team 2 channel ID")
	cmd.MarkFlagRequired("lobby")
	cmd.MarkFlagRequired("team1")
	cmd.MarkFlagRequired("team2")
	return cmd
}

func splitNames(raw string) []string {
	if raw == "" {
		return []string{}
	}
	parts := strings.Split(raw, ",")
	names := make([]string, 0, len(parts))
	for _, p := range parts {
		if trimmed := strings.TrimSpace(p); trimmed != "" {
			names = append(names, trimmed)
		}
	}
	return names
}
