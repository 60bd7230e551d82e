package config

import (
	"os"
	"path/filepath"
)

// Form option sets offered on the new-script screen. Age ranges are an open
// label set; these are the ones the form offers.
var (
	AgeRanges    = []string{"6-10", "11-14", "Mixed"}
	VideoLengths = []string{"5 min", "10 min", "15 min"}
	StyleOptions = []string{"Story-driven", "Quiz-heavy", "Fun Facts", "Modern Connections"}
)

// Form defaults.
const (
	DefaultAgeRange    = "6-10"
	DefaultVideoLength = "10 min"
)

// DefaultConfig returns a Config with sensible defaults.
func DefaultConfig() *Config {
	dataDir := ".historyquest"
	if home, err := os.UserHomeDir(); err == nil {
		dataDir = filepath.Join(home, ".historyquest")
	}
	return &Config{
		AgentMode: ModeOpenAI,
		Model:     "gpt-4o",
		DataDir:   dataDir,
		Server: ServerConfig{
			Port: 8675,
		},
	}
}
