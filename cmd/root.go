package cmd

import (
	"github.com/spf13/cobra"
)

var (
	cfgFile string
	verbose bool
)

var rootCmd = &cobra.Command{
	Use:   "historyquest",
	Short: "AI-generated educational history video scripts",
	Long: `HistoryQuest generates kid-friendly history video scripts through a
multi-agent AI pipeline. Pick a topic, age range and style, and it
produces a scene-by-scene script with quiz questions, fun facts and
modern connections, saved to a local library.`,
}

func Execute() error {
	return rootCmd.Execute()
}

func init() {
	rootCmd.PersistentFlags().StringVar(&cfgFile, "config", ".historyquest.yml", "config file path")
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "verbose output")
}
