package config

import (
	"fmt"
	"os"
	"strings"

	"github.com/knadh/koanf/parsers/yaml"
	"github.com/knadh/koanf/providers/env"
	"github.com/knadh/koanf/providers/file"
	"github.com/knadh/koanf/v2"
	yamlv3 "gopkg.in/yaml.v3"
)

// Load reads configuration from the given YAML file, then overlays
// environment variable overrides (HISTORYQUEST_*).
func Load(path string) (*Config, error) {
	k := koanf.New(".")

	// Start from defaults.
	cfg := DefaultConfig()

	// Load YAML file if it exists.
	if _, err := os.Stat(path); err == nil {
		if err := k.Load(file.Provider(path), yaml.Parser()); err != nil {
			return nil, fmt.Errorf("reading config %s: %w", path, err)
		}
	} else if !os.IsNotExist(err) {
		return nil, fmt.Errorf("accessing config %s: %w", path, err)
	}

	// Overlay environment variables: HISTORYQUEST_AGENT_MODE -> agent_mode,
	// HISTORYQUEST_SERVER__PORT -> server.port, etc.
	if err := k.Load(env.Provider("HISTORYQUEST_", ".", func(s string) string {
		s = strings.ToLower(strings.TrimPrefix(s, "HISTORYQUEST_"))
		return strings.ReplaceAll(s, "__", ".")
	}), nil); err != nil {
		return nil, fmt.Errorf("loading env overrides: %w", err)
	}

	if err := k.Unmarshal("", cfg); err != nil {
		return nil, fmt.Errorf("unmarshalling config: %w", err)
	}

	return cfg, nil
}

// Save writes the configuration to the given YAML file path.
func (c *Config) Save(path string) error {
	data, err := yamlv3.Marshal(c)
	if err != nil {
		return fmt.Errorf("marshalling config: %w", err)
	}
	if err := os.WriteFile(path, data, 0644); err != nil {
		return fmt.Errorf("writing config to %s: %w", path, err)
	}
	return nil
}

// validModes is the set of recognized agent modes.
var validModes = map[AgentMode]bool{
	ModeGateway: true,
	ModeOpenAI:  true,
}

// Validate checks that the configuration contains valid values.
func (c *Config) Validate() error {
	if c.AgentMode == "" {
		return fmt.Errorf("agent_mode is required")
	}
	if !validModes[c.AgentMode] {
		return fmt.Errorf("invalid agent_mode %q: must be gateway or openai", c.AgentMode)
	}
	if c.AgentMode == ModeGateway && c.AgentBaseURL == "" {
		return fmt.Errorf("agent_base_url is required in gateway mode")
	}
	if c.AgentMode == ModeOpenAI && c.Model == "" {
		return fmt.Errorf("model is required in openai mode")
	}
	if c.DataDir == "" {
		return fmt.Errorf("data_dir is required")
	}
	if c.Server.Port <= 0 || c.Server.Port > 65535 {
		return fmt.Errorf("server.port must be between 1 and 65535")
	}
	return nil
}
