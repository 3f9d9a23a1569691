package cli

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

func newPlayerCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "player",
		Short: "Player directory commands",
	}

	cmd.AddCommand(newPlayerAddCmd())
	cmd.AddCommand(newPlayerGetCmd())
	cmd.AddCommand(newPlayerListCmd())
	cmd.AddCommand(newPlayerImportCmd())

	return cmd
}

func newPlayerAddCmd() *cobra.Command {
	var account, first, last, entryType, host string

	cmd := &cobra.Command{
		Use:   "add",
		Short: "Enroll a new player",
		RunE: func(cmd *cobra.Command, args []string) error {
			path, err := eventPath("/players")
			if err != nil {
				return err
			}

			req := map[string]any{
				"account_number": account,
				"first_name":     first,
				"last_name":      last,
				"entry_type":     entryType,
				"host":           host,
			}
			var result NewPlayerResult

			if err := client.Post(path, req, &result); err != nil {
				return err
			}

			out := NewOutput(cfg.Output)
			out.Print(result)
			return nil
		},
	}

	cmd.Flags().StringVar(&account, "account", "", "Account number (required)")
	cmd.Flags().StringVar(&first, "first", "", "First name")
	cmd.Flags().StringVar(&last, "last", "", "Last name")
	cmd.Flags().StringVar(&entryType, "entry-type", "", "Entry type: PAY or COMP")
	cmd.Flags().StringVar(&host, "host", "", "Casino host")
	_ = cmd.MarkFlagRequired("account")

	return cmd
}

func newPlayerGetCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "get <account>",
		Short: "Look up a player by account number",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			path, err := eventPath("/players/" + args[0])
			if err != nil {
				return err
			}

			var result Player
			if err := client.Get(path, &result); err != nil {
				return err
			}

			out := NewOutput(cfg.Output)
			out.Print(result)
			return nil
		},
	}
}

func newPlayerListCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "list",
		Short: "List all enrolled players",
		RunE: func(cmd *cobra.Command, args []string) error {
			path, err := eventPath("/players")
			if err != nil {
				return err
			}

			var result []Player
			if err := client.Get(path, &result); err != nil {
				return err
			}

			out := NewOutput(cfg.Output)
			out.Print(result)
			return nil
		},
	}
}

func newPlayerImportCmd() *cobra.Command {
	var file string

	cmd := &cobra.Command{
		Use:   "import",
		Short: "Replace the player directory from a JSON file",
		Long: `Replaces the event's entire player directory with the contents of a
JSON file holding an array of players:

  [{"account_number": "42", "first_name": "Ada", "last_name": "Lovelace"}]`,
		RunE: func(cmd *cobra.Command, args []string) error {
			path, err := eventPath("/players")
			if err != nil {
				return err
			}

			data, err := os.ReadFile(file)
			if err != nil {
				return fmt.Errorf("failed to read %s: %w", file, err)
			}

			var players []map[string]any
			if err := json.Unmarshal(data, &players); err != nil {
				return fmt.Errorf("failed to parse %s: %w", file, err)
			}

			req := map[string]any{"players": players}
			if err := client.Put(path, req, nil); err != nil {
				return err
			}

			out := NewOutput(cfg.Output)
			out.PrintMessage(fmt.Sprintf("Imported %d players", len(players)))
			return nil
		},
	}

	cmd.Flags().StringVar(&file, "file", "", "JSON file to import (required)")
	_ = cmd.MarkFlagRequired("file")

	return cmd
}
