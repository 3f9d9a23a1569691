package cli

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

var (
	cfg    *Config
	client *Client
)

// NewRootCmd creates the root command
func NewRootCmd() *cobra.Command {
	cfg = DefaultConfig()

	rootCmd := &cobra.Command{
		Use:   "floorman",
		Short: "CLI tool for the tournament registration API",
		Long: `floorman is a CLI tool for running a blackjack tournament floor:
enrolling players, taking registrations and payments, assigning seats,
and managing table availability.

Most commands are scoped to an event (--event or FLOORMAN_EVENT) and a
terminal identity (--terminal or FLOORMAN_TERMINAL); the terminal scopes
the in-flight seat assignment so desks never clobber each other.`,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			client = NewClient(cfg.ServerURL, cfg.Terminal)
			return nil
		},
		SilenceUsage: true,
	}

	// Global flags
	rootCmd.PersistentFlags().StringVar(&cfg.ServerURL, "server", cfg.ServerURL, "Server URL (env: FLOORMAN_SERVER)")
	rootCmd.PersistentFlags().StringVar(&cfg.Event, "event", cfg.Event, "Event name (env: FLOORMAN_EVENT)")
	rootCmd.PersistentFlags().StringVar(&cfg.Terminal, "terminal", cfg.Terminal, "Terminal identity (env: FLOORMAN_TERMINAL)")
	rootCmd.PersistentFlags().StringVarP(&cfg.Output, "output", "o", cfg.Output, "Output format: text, json")
	rootCmd.PersistentFlags().BoolVarP(&cfg.Verbose, "verbose", "v", cfg.Verbose, "Verbose output")

	// Add subcommands
	rootCmd.AddCommand(newPlayerCmd())
	rootCmd.AddCommand(newRegisterCmd())
	rootCmd.AddCommand(newSeatCmd())
	rootCmd.AddCommand(newTablesCmd())
	rootCmd.AddCommand(newLedgerCmd())
	rootCmd.AddCommand(newHealthCmd())

	return rootCmd
}

// Execute runs the root command
func Execute() {
	if err := NewRootCmd().Execute(); err != nil {
		os.Exit(1)
	}
}

// eventPath builds an event-scoped API path, failing when no event is set
func eventPath(suffix string) (string, error) {
	if cfg.Event == "" {
		return "", fmt.Errorf("--event is required (or set FLOORMAN_EVENT)")
	}
	return "/api/v1/events/" + cfg.Event + suffix, nil
}
