package cmd

import (
	"fmt"

	"github.com/historyquest/historyquest/internal/agent"
	"github.com/historyquest/historyquest/internal/config"
	"github.com/historyquest/historyquest/internal/generator"
	"github.com/historyquest/historyquest/internal/script"
	"github.com/historyquest/historyquest/internal/store"
)

// loadConfig reads and validates the configuration file.
func loadConfig() (*config.Config, error) {
	cfg, err := config.Load(cfgFile)
	if err != nil {
		return nil, fmt.Errorf("loading config: %w", err)
	}
	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid config: %w", err)
	}
	return cfg, nil
}

// openStore opens the script library from the configured data directory.
func openStore(cfg *config.Config) *store.Store {
	return store.Open(cfg.DataDir)
}

// createGeneratorFromConfig creates a generator backed by the configured
// agent mode. This is the shared version used by new, serve and mcp.
func createGeneratorFromConfig(cfg *config.Config) (*generator.Generator, error) {
	inv, err := agent.NewInvoker(string(cfg.AgentMode), cfg.AgentBaseURL, cfg.Model)
	if err != nil {
		return nil, fmt.Errorf("creating agent invoker: %w", err)
	}
	return generator.New(inv), nil
}

// library returns saved scripts followed by the bundled samples when enabled.
func library(st *store.Store, includeSamples bool) []script.SavedScript {
	docs := st.List()
	if includeSamples {
		docs = append(docs, script.Samples()...)
	}
	return docs
}

// findScript looks a script up by id among the samples and the saved library.
func findScript(st *store.Store, id string) (script.SavedScript, bool) {
	if script.IsSample(id) {
		for _, doc := range script.Samples() {
			if doc.ID == id {
				return doc, true
			}
		}
		return script.SavedScript{}, false
	}
	return st.Get(id)
}
