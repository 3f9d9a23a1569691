package cli

import (
	"net/url"
	"strconv"

	"github.com/spf13/cobra"
)

func newSeatCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "seat",
		Short: "Seat assignment commands for this terminal's pending registration",
	}

	cmd.AddCommand(newSeatPendingCmd())
	cmd.AddCommand(newSeatAvailableCmd())
	cmd.AddCommand(newSeatRandomCmd())
	cmd.AddCommand(newSeatSelectCmd())
	cmd.AddCommand(newSeatConflictCmd())
	cmd.AddCommand(newSeatConfirmCmd())
	cmd.AddCommand(newSeatAbandonCmd())

	return cmd
}

func newSeatPendingCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "pending",
		Short: "Show the registration awaiting a seat",
		RunE: func(cmd *cobra.Command, args []string) error {
			path, err := eventPath("/seating")
			if err != nil {
				return err
			}

			var result Pending
			if err := client.Get(path, &result); err != nil {
				return err
			}

			out := NewOutput(cfg.Output)
			out.Print(result)
			return nil
		},
	}
}

func newSeatAvailableCmd() *cobra.Command {
	var preferences []int

	cmd := &cobra.Command{
		Use:   "available",
		Short: "List open seats",
		RunE: func(cmd *cobra.Command, args []string) error {
			suffix := "/seating/available"
			if len(preferences) > 0 {
				query := url.Values{}
				for _, pos := range preferences {
					query.Add("prefer", strconv.Itoa(pos))
				}
				suffix += "?" + query.Encode()
			}
			path, err := eventPath(suffix)
			if err != nil {
				return err
			}

			var result AvailableSeats
			if err := client.Get(path, &result); err != nil {
				return err
			}

			out := NewOutput(cfg.Output)
			out.Print(result)
			return nil
		},
	}

	cmd.Flags().IntSliceVar(&preferences, "prefer", nil, "Restrict the listing to these seat positions (e.g. --prefer 1,6)")

	return cmd
}

func newSeatRandomCmd() *cobra.Command {
	var preferences []int

	cmd := &cobra.Command{
		Use:   "random",
		Short: "Draw a random open seat",
		RunE: func(cmd *cobra.Command, args []string) error {
			path, err := eventPath("/seating/random")
			if err != nil {
				return err
			}

			req := map[string]any{"preferences": preferences}
			var result Seat

			if err := client.Post(path, req, &result); err != nil {
				return err
			}

			out := NewOutput(cfg.Output)
			out.Print(result)
			return nil
		},
	}

	cmd.Flags().IntSliceVar(&preferences, "prefer", nil, "Restrict the draw to these seat positions (e.g. --prefer 1,6)")

	return cmd
}

func newSeatSelectCmd() *cobra.Command {
	var table, seat int

	cmd := &cobra.Command{
		Use:   "select",
		Short: "Choose a specific seat",
		Long: `Chooses a specific table and seat. Selecting an occupied seat is
allowed; confirming will evict the current occupant.`,
		RunE: func(cmd *cobra.Command, args []string) error {
			path, err := eventPath("/seating/select")
			if err != nil {
				return err
			}

			req := map[string]any{"table": table, "seat": seat}
			var result Seat

			if err := client.Post(path, req, &result); err != nil {
				return err
			}

			out := NewOutput(cfg.Output)
			out.Print(result)
			return nil
		},
	}

	cmd.Flags().IntVar(&table, "table", 0, "Table number (required)")
	cmd.Flags().IntVar(&seat, "seat", 0, "Seat number (required)")
	_ = cmd.MarkFlagRequired("table")
	_ = cmd.MarkFlagRequired("seat")

	return cmd
}

func newSeatConflictCmd() *cobra.Command {
	var table int
	var clear bool

	cmd := &cobra.Command{
		Use:   "conflict",
		Short: "Mark a table as unusable for this assignment",
		RunE: func(cmd *cobra.Command, args []string) error {
			path, err := eventPath("/seating/conflict")
			if err != nil {
				return err
			}

			req := map[string]any{"table": table, "clear": clear}
			if err := client.Post(path, req, nil); err != nil {
				return err
			}

			out := NewOutput(cfg.Output)
			if clear {
				out.PrintMessage("Conflict cleared")
			} else {
				out.PrintMessage("Table marked as conflict")
			}
			return nil
		},
	}

	cmd.Flags().IntVar(&table, "table", 0, "Table number (required)")
	cmd.Flags().BoolVar(&clear, "clear", false, "Clear the conflict mark instead")
	_ = cmd.MarkFlagRequired("table")

	return cmd
}

func newSeatConfirmCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "confirm",
		Short: "Commit the selected seat to the ledger",
		RunE: func(cmd *cobra.Command, args []string) error {
			path, err := eventPath("/seating/confirm")
			if err != nil {
				return err
			}

			var result ConfirmResult
			if err := client.Post(path, nil, &result); err != nil {
				return err
			}

			out := NewOutput(cfg.Output)
			out.Print(result)
			return nil
		},
	}
}

func newSeatAbandonCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "abandon",
		Short: "Discard the pending registration without committing",
		RunE: func(cmd *cobra.Command, args []string) error {
			path, err := eventPath("/seating/abandon")
			if err != nil {
				return err
			}

			if err := client.Post(path, nil, nil); err != nil {
				return err
			}

			out := NewOutput(cfg.Output)
			out.PrintMessage("Registration abandoned")
			return nil
		},
	}
}
