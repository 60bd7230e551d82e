package cmd

import (
	"context"
	"errors"
	"fmt"
	"os"
	"strings"

	"github.com/manifoldco/promptui"
	"github.com/spf13/cobra"

	"github.com/historyquest/historyquest/internal/app"
	"github.com/historyquest/historyquest/internal/config"
	"github.com/historyquest/historyquest/internal/generator"
	"github.com/historyquest/historyquest/internal/progress"
)

var (
	newAge    string
	newLength string
	newStyles []string
	newFocus  string
	newSave   bool
)

var newCmd = &cobra.Command{
	Use:   "new [topic]",
	Short: "Generate a new history video script",
	Long: `Generates a script for a historical topic. With no arguments it runs an
interactive wizard; with a topic argument it uses the flag values directly.`,
	Args: cobra.MaximumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, err := loadConfig()
		if err != nil {
			return err
		}
		gen, err := createGeneratorFromConfig(cfg)
		if err != nil {
			return err
		}

		a := app.New(openStore(cfg), gen)
		a.SetShowSamples(cfg.Samples)
		a.Navigate(app.ScreenNewScript)

		req := generator.Request{
			AgeRange:    newAge,
			VideoLength: newLength,
			StyleTags:   newStyles,
			Focus:       newFocus,
		}
		if len(args) == 1 {
			req.Topic = args[0]
		} else {
			if err := runNewWizard(&req); err != nil {
				return err
			}
		}

		reporter := progress.NewReporter()
		reporter.Start()
		err = a.Generate(context.Background(), req)
		reporter.Finish()
		if err != nil {
			return fmt.Errorf("%s", a.Err())
		}

		doc := a.Current()
		fmt.Println()
		renderScript(os.Stdout, *doc)
		renderResearch(os.Stdout, *doc)
		renderExtras(os.Stdout, *doc)

		if !newSave {
			confirm := promptui.Prompt{Label: "Save to library", IsConfirm: true}
			if _, err := confirm.Run(); err != nil {
				if errors.Is(err, promptui.ErrAbort) {
					fmt.Println("Discarded.")
					return nil
				}
				return err
			}
		}

		saved, ok := a.Save()
		if !ok {
			return fmt.Errorf("nothing to save")
		}
		fmt.Printf("Saved as %s\n", saved.ID)
		return nil
	},
}

// runNewWizard collects the generation parameters interactively.
func runNewWizard(req *generator.Request) error {
	topicPrompt := promptui.Prompt{
		Label: "Topic",
		Validate: func(s string) error {
			if strings.TrimSpace(s) == "" {
				return fmt.Errorf("topic is required")
			}
			return nil
		},
	}
	topic, err := topicPrompt.Run()
	if err != nil {
		return fmt.Errorf("topic: %w", err)
	}
	req.Topic = strings.TrimSpace(topic)

	agePrompt := promptui.Select{
		Label: "Target age range",
		Items: config.AgeRanges,
	}
	_, req.AgeRange, err = agePrompt.Run()
	if err != nil {
		return fmt.Errorf("age range: %w", err)
	}

	lengthPrompt := promptui.Select{
		Label: "Video length",
		Items: config.VideoLengths,
	}
	_, req.VideoLength, err = lengthPrompt.Run()
	if err != nil {
		return fmt.Errorf("video length: %w", err)
	}

	stylePrompt := promptui.Prompt{
		Label:   fmt.Sprintf("Style preferences, comma-separated (%s)", strings.Join(config.StyleOptions, ", ")),
		Default: "",
	}
	styleStr, err := stylePrompt.Run()
	if err != nil {
		return fmt.Errorf("styles: %w", err)
	}
	req.StyleTags = nil
	for _, tag := range strings.Split(styleStr, ",") {
		if tag = strings.TrimSpace(tag); tag != "" {
			req.StyleTags = append(req.StyleTags, tag)
		}
	}

	focusPrompt := promptui.Prompt{
		Label:   "Specific focus (optional)",
		Default: "",
	}
	focus, err := focusPrompt.Run()
	if err != nil {
		return fmt.Errorf("focus: %w", err)
	}
	req.Focus = strings.TrimSpace(focus)

	return nil
}

func init() {
	newCmd.Flags().StringVar(&newAge, "age", config.DefaultAgeRange, "target age range")
	newCmd.Flags().StringVar(&newLength, "length", config.DefaultVideoLength, "target video length")
	newCmd.Flags().StringSliceVar(&newStyles, "style", nil, "style preference (repeatable)")
	newCmd.Flags().StringVar(&newFocus, "focus", "", "specific focus within the topic")
	newCmd.Flags().BoolVar(&newSave, "save", false, "save without asking")
	rootCmd.AddCommand(newCmd)
}
