package cli

import (
	"github.com/spf13/cobra"
)

func newRegisterCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "register",
		Short: "Registration commands",
	}

	cmd.AddCommand(newRegisterSearchCmd())
	cmd.AddCommand(newRegisterSubmitCmd())

	return cmd
}

func newRegisterSearchCmd() *cobra.Command {
	var account, round string

	cmd := &cobra.Command{
		Use:   "search",
		Short: "Look up a player's standing for a round",
		RunE: func(cmd *cobra.Command, args []string) error {
			path, err := eventPath("/search")
			if err != nil {
				return err
			}

			req := map[string]any{
				"account_number": account,
				"round":          round,
			}
			var result SearchResult

			if err := client.Post(path, req, &result); err != nil {
				return err
			}

			out := NewOutput(cfg.Output)
			out.Print(result)
			return nil
		},
	}

	cmd.Flags().StringVar(&account, "account", "", "Account number (required)")
	cmd.Flags().StringVar(&round, "round", "round1", "Round")
	_ = cmd.MarkFlagRequired("account")

	return cmd
}

func newRegisterSubmitCmd() *cobra.Command {
	var (
		account, round          string
		timeSlot                int
		payType                 string
		amount                  int
		splitType               string
		splitAmount             int
		mulliganType            string
		mulliganAmount          int
		update                  bool
		host, comment, employee string
	)

	cmd := &cobra.Command{
		Use:   "submit",
		Short: "Submit a registration and open seat assignment",
		Long: `Validates payment and stages the registration for this terminal.
Nothing is committed until a seat is confirmed with "floorman seat confirm".`,
		RunE: func(cmd *cobra.Command, args []string) error {
			path, err := eventPath("/registrations")
			if err != nil {
				return err
			}

			req := map[string]any{
				"account_number": account,
				"round":          round,
				"time_slot":      timeSlot,
				"payment": map[string]any{
					"type":         payType,
					"amount":       amount,
					"split_type":   splitType,
					"split_amount": splitAmount,
				},
				"update":   update,
				"host":     host,
				"comment":  comment,
				"employee": employee,
			}
			if mulliganType != "" || mulliganAmount != 0 {
				req["mulligan"] = map[string]any{
					"type":   mulliganType,
					"amount": mulliganAmount,
				}
			}

			var result Pending
			if err := client.Post(path, req, &result); err != nil {
				return err
			}

			out := NewOutput(cfg.Output)
			out.Print(result)
			return nil
		},
	}

	cmd.Flags().StringVar(&account, "account", "", "Account number (required)")
	cmd.Flags().StringVar(&round, "round", "round1", "Round")
	cmd.Flags().IntVar(&timeSlot, "slot", 1, "Time slot")
	cmd.Flags().StringVar(&payType, "pay-type", "", "Payment type: Cash, Credit, Chips, Comp")
	cmd.Flags().IntVar(&amount, "amount", 0, "Payment amount")
	cmd.Flags().StringVar(&splitType, "split-type", "", "Second payment type for split payments")
	cmd.Flags().IntVar(&splitAmount, "split-amount", 0, "Second payment amount")
	cmd.Flags().StringVar(&mulliganType, "mulligan-type", "", "Mulligan payment type")
	cmd.Flags().IntVar(&mulliganAmount, "mulligan-amount", 0, "Mulligan payment amount")
	cmd.Flags().BoolVar(&update, "update", false, "Edit an existing registration")
	cmd.Flags().StringVar(&host, "host", "", "Casino host")
	cmd.Flags().StringVar(&comment, "comment", "", "Comment")
	cmd.Flags().StringVar(&employee, "employee", "", "Employee taking the registration")
	_ = cmd.MarkFlagRequired("account")

	return cmd
}
