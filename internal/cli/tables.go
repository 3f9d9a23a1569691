package cli

import (
	"strconv"

	"github.com/spf13/cobra"
)

func newTablesCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "tables",
		Short: "Table availability commands",
	}

	cmd.AddCommand(newTablesStatusCmd())
	cmd.AddCommand(newTablesToggleCmd())

	return cmd
}

func newTablesStatusCmd() *cobra.Command {
	var round string
	var timeSlot int

	cmd := &cobra.Command{
		Use:   "status",
		Short: "Show open and closed tables for a round and time slot",
		RunE: func(cmd *cobra.Command, args []string) error {
			path, err := eventPath("/tables?round=" + round + "&time_slot=" + strconv.Itoa(timeSlot))
			if err != nil {
				return err
			}

			var result TablesStatus
			if err := client.Get(path, &result); err != nil {
				return err
			}

			out := NewOutput(cfg.Output)
			out.Print(result)
			return nil
		},
	}

	cmd.Flags().StringVar(&round, "round", "round1", "Round")
	cmd.Flags().IntVar(&timeSlot, "slot", 1, "Time slot")

	return cmd
}

func newTablesToggleCmd() *cobra.Command {
	var round string
	var timeSlot, table int

	cmd := &cobra.Command{
		Use:   "toggle",
		Short: "Toggle a table open or closed",
		RunE: func(cmd *cobra.Command, args []string) error {
			path, err := eventPath("/tables/toggle")
			if err != nil {
				return err
			}

			req := map[string]any{
				"round":     round,
				"time_slot": timeSlot,
				"table":     table,
			}
			var result ToggleResult

			if err := client.Post(path, req, &result); err != nil {
				return err
			}

			out := NewOutput(cfg.Output)
			out.Print(result)
			return nil
		},
	}

	cmd.Flags().StringVar(&round, "round", "round1", "Round")
	cmd.Flags().IntVar(&timeSlot, "slot", 1, "Time slot")
	cmd.Flags().IntVar(&table, "table", 0, "Table number (required)")
	_ = cmd.MarkFlagRequired("table")

	return cmd
}
