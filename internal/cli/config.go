package cli

import (
	"os"
)

// Config holds CLI configuration
type Config struct {
	ServerURL string
	Event     string
	Terminal  string
	Output    string
	Verbose   bool
}

// DefaultConfig returns a Config with default values
func DefaultConfig() *Config {
	return &Config{
		ServerURL: getEnvOrDefault("FLOORMAN_SERVER", "http://localhost:8080"),
		Event:     os.Getenv("FLOORMAN_EVENT"),
		Terminal:  getEnvOrDefault("FLOORMAN_TERMINAL", defaultTerminal()),
		Output:    "text",
		Verbose:   false,
	}
}

// defaultTerminal falls back to the hostname so two desks naturally get
// distinct seating sessions
func defaultTerminal() string {
	host, err := os.Hostname()
	if err != nil {
		return "terminal"
	}
	return host
}

func getEnvOrDefault(key, defaultVal string) string {
	if val := os.Getenv(key); val != "" {
		return val
	}
	return defaultVal
}
