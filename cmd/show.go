package cmd

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

var showCmd = &cobra.Command{
	Use:   "show <id>",
	Short: "Print a script from the library",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, err := loadConfig()
		if err != nil {
			return err
		}

		doc, ok := findScript(openStore(cfg), args[0])
		if !ok {
			return fmt.Errorf("no script with id %q", args[0])
		}

		renderScript(os.Stdout, doc.Script)
		renderResearch(os.Stdout, doc.Script)
		renderExtras(os.Stdout, doc.Script)
		return nil
	},
}

func init() {
	rootCmd.AddCommand(showCmd)
}
