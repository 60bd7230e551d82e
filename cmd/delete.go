package cmd

import (
	"errors"
	"fmt"

	"github.com/manifoldco/promptui"
	"github.com/spf13/cobra"

	"github.com/historyquest/historyquest/internal/script"
)

var deleteYes bool

var deleteCmd = &cobra.Command{
	Use:   "delete <id>",
	Short: "Delete a script from the library",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		id := args[0]
		if script.IsSample(id) {
			return fmt.Errorf("sample scripts cannot be deleted")
		}

		cfg, err := loadConfig()
		if err != nil {
			return err
		}
		st := openStore(cfg)

		doc, ok := st.Get(id)
		if !ok {
			return fmt.Errorf("no script with id %q", id)
		}

		if !deleteYes {
			confirm := promptui.Prompt{
				Label:     fmt.Sprintf("Delete %q", doc.ScriptTitle),
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

		st.Delete(id)
		fmt.Printf("Deleted %s\n", id)
		return nil
	},
}

func init() {
	deleteCmd.Flags().BoolVarP(&deleteYes, "yes", "y", false, "delete without asking")
	rootCmd.AddCommand(deleteCmd)
}
