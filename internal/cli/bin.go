package cli

import (
	"fmt"

	"github.com/dustin/go-humanize"
	"github.com/spf13/cobra"
)

var binCmd = &cobra.Command{
	Use:   "bin",
	Short: "Inspect and restore soft-deleted folders",
}

var binLsCmd = &cobra.Command{
	Use:   "ls",
	Short: "List the contents of the trash bin",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		tk, err := newToolkit()
		if err != nil {
			return err
		}

		history, err := tk.bin().List()
		if err != nil {
			return err
		}

		if jsonOutput {
			return outputJSON(history)
		}

		PrintSection("Trash Bin")

		if len(history.Entries) == 0 {
			PrintEmptyState("The bin is empty.")
			return nil
		}

		rows := make([][]string, 0, len(history.Entries))
		for _, entry := range history.Entries {
			kind := "file"
			if entry.IsDir {
				kind = "dir"
			}
			rows = append(rows, []string{
				entry.ID,
				kind,
				entry.From,
				humanize.Time(entry.Timestamp),
			})
		}
		PrintTable([]string{"ID", "Type", "Original Path", "Deleted"}, rows)
		return nil
	},
}

var binRestoreCmd = &cobra.Command{
	Use:   "restore <id>",
	Short: "Restore an entry from the trash bin to its original path",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		tk, err := newToolkit()
		if err != nil {
			return err
		}

		entry, err := tk.bin().Restore(args[0])
		if err != nil {
			return err
		}

		PrintSuccess(fmt.Sprintf("Restored '%s' to '%s'", entry.ID, entry.From))
		return nil
	},
}

func init() {
	binCmd.AddCommand(binLsCmd)
	binCmd.AddCommand(binRestoreCmd)
}
