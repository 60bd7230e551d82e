package cmd

import (
	"errors"
	"fmt"
	"os"
	"strconv"

	"github.com/manifoldco/promptui"
	"github.com/spf13/cobra"

	"github.com/historyquest/historyquest/internal/config"
)

var initCmd = &cobra.Command{
	Use:   "init",
	Short: "Create a configuration file interactively",
	RunE: func(cmd *cobra.Command, args []string) error {
		if _, err := os.Stat(cfgFile); err == nil {
			confirm := promptui.Prompt{
				Label:     fmt.Sprintf("%s already exists, overwrite", cfgFile),
				IsConfirm: true,
			}
			if _, err := confirm.Run(); err != nil {
				if errors.Is(err, promptui.ErrAbort) {
					fmt.Println("Aborted.")
					return nil
				}
				return err
			}
		}

		cfg := config.DefaultConfig()

		modePrompt := promptui.Select{
			Label: "Agent mode",
			Items: []string{
				"openai  — emulate the agent pipeline with one OpenAI call",
				"gateway — call a deployed multi-agent service over HTTP",
			},
		}
		modeIdx, _, err := modePrompt.Run()
		if err != nil {
			return fmt.Errorf("agent mode: %w", err)
		}

		switch modeIdx {
		case 0:
			cfg.AgentMode = config.ModeOpenAI
			modelPrompt := promptui.Prompt{Label: "OpenAI model", Default: cfg.Model}
			if cfg.Model, err = modelPrompt.Run(); err != nil {
				return fmt.Errorf("model: %w", err)
			}
		case 1:
			cfg.AgentMode = config.ModeGateway
			urlPrompt := promptui.Prompt{
				Label: "Agent gateway base URL",
				Validate: func(s string) error {
					if s == "" {
						return fmt.Errorf("base URL is required")
					}
					return nil
				},
			}
			if cfg.AgentBaseURL, err = urlPrompt.Run(); err != nil {
				return fmt.Errorf("base URL: %w", err)
			}
		}

		dataPrompt := promptui.Prompt{Label: "Data directory for the script library", Default: cfg.DataDir}
		if cfg.DataDir, err = dataPrompt.Run(); err != nil {
			return fmt.Errorf("data dir: %w", err)
		}

		portPrompt := promptui.Prompt{
			Label:   "Server port",
			Default: strconv.Itoa(cfg.Server.Port),
			Validate: func(s string) error {
				_, err := strconv.Atoi(s)
				return err
			},
		}
		portStr, err := portPrompt.Run()
		if err != nil {
			return fmt.Errorf("port: %w", err)
		}
		cfg.Server.Port, _ = strconv.Atoi(portStr)

		if err := cfg.Validate(); err != nil {
			return fmt.Errorf("invalid config: %w", err)
		}
		if err := cfg.Save(cfgFile); err != nil {
			return fmt.Errorf("saving config: %w", err)
		}

		fmt.Printf("Wrote %s\n", cfgFile)
		fmt.Println("Run `historyquest new` to generate your first script.")
		return nil
	},
}

func init() {
	rootCmd.AddCommand(initCmd)
}
