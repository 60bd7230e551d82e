package cmd

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/historyquest/historyquest/internal/script"
)

var (
	exportFormat string
	exportOut    string
)

var exportCmd = &cobra.Command{
	Use:   "export <id>",
	Short: "Export a script as plain text or HTML",
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

		var content string
		switch exportFormat {
		case "text":
			content = script.ExportText(doc.Script)
		case "html":
			content, err = script.ExportHTML(doc.Script)
			if err != nil {
				return fmt.Errorf("exporting HTML: %w", err)
			}
		default:
			return fmt.Errorf("unknown export format %q (want text or html)", exportFormat)
		}

		if exportOut == "" {
			fmt.Print(content)
			return nil
		}
		if err := os.WriteFile(exportOut, []byte(content), 0o644); err != nil {
			return fmt.Errorf("writing %s: %w", exportOut, err)
		}
		fmt.Printf("Wrote %s\n", exportOut)
		return nil
	},
}

func init() {
	exportCmd.Flags().StringVarP(&exportFormat, "format", "f", "text", "export format (text or html)")
	exportCmd.Flags().StringVarP(&exportOut, "output", "o", "", "write to file instead of stdout")
	rootCmd.AddCommand(exportCmd)
}
