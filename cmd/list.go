package cmd

import (
	"fmt"
	"os"
	"text/tabwriter"

	"github.com/spf13/cobra"

	"github.com/historyquest/historyquest/internal/script"
)

var (
	listQuery   string
	listAge     string
	listSamples bool
)

var listCmd = &cobra.Command{
	Use:   "list",
	Short: "List scripts in the library",
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, err := loadConfig()
		if err != nil {
			return err
		}

		includeSamples := cfg.Samples
		if cmd.Flags().Changed("samples") {
			includeSamples = listSamples
		}

		docs := script.Filter(library(openStore(cfg), includeSamples), listQuery, listAge)
		if len(docs) == 0 {
			fmt.Println("No scripts found.")
			return nil
		}

		w := tabwriter.NewWriter(os.Stdout, 0, 4, 2, ' ', 0)
		fmt.Fprintln(w, "ID\tTITLE\tAGES\tLENGTH\tCREATED")
		for _, doc := range docs {
			title := doc.ScriptTitle
			if title == "" {
				title = "Untitled"
			}
			fmt.Fprintf(w, "%s\t%s\t%s\t%s\t%s\n",
				doc.ID, title, doc.TargetAgeRange, doc.VideoLength,
				doc.CreatedAt.Format("2006-01-02"))
		}
		return w.Flush()
	},
}

func init() {
	listCmd.Flags().StringVarP(&listQuery, "query", "q", "", "search titles and topics")
	listCmd.Flags().StringVar(&listAge, "age", script.AgeFilterAll, "filter by target age range")
	listCmd.Flags().BoolVar(&listSamples, "samples", true, "include bundled sample scripts")
	rootCmd.AddCommand(listCmd)
}
