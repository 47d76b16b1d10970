package cli

import (
	"cmp"
	"os"
)

// Config holds CLI configuration
type Config struct {
	ServerURL string
	Output    string
	Verbose   bool
}

// DefaultConfig returns a Config with default values
func DefaultConfig() *Config {
	return &Config{
		ServerURL: cmp.Or(os.Getenv("FWGAME_SERVER"), "http://localhost:8080"),
		Output:    "text",
	}
}
