package cli

import (
	"github.com/spf13/cobra"
)

func newLedgerCmd() *cobra.Command {
	var round string

	cmd := &cobra.Command{
		Use:   "ledger",
		Short: "Show the event's committed registrations",
		RunE: func(cmd *cobra.Command, args []string) error {
			suffix := "/registrations"
			if round != "" {
				suffix += "?round=" + round
			}
			path, err := eventPath(suffix)
			if err != nil {
				return err
			}

			var result []Registration
			if err := client.Get(path, &result); err != nil {
				return err
			}

			out := NewOutput(cfg.Output)
			out.Print(result)
			return nil
		},
	}

	cmd.Flags().StringVar(&round, "round", "", "Filter by round")

	return cmd
}
