package cli

import (
	"fmt"

	"github.com/spf13/cobra"
)

var (
	deleteOlderThan int
	deleteYes       bool
)

var deleteCmd = &cobra.Command{
	Use:   "delete <path>",
	Short: "Send stale project folders to the trash bin (safe delete)",
	Long: `Move stale project folders into the sweeper trash bin.

Nothing is destroyed: binned folders can be listed with 'sweeper bin ls'
and brought back with 'sweeper bin restore'. Without --yes the stale
folders are only listed.`,
	Args: cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		tk, err := newToolkit()
		if err != nil {
			return err
		}

		days := deleteOlderThan
		if !cmd.Flags().Changed("older-than") {
			days = tk.cfg.DeleteOlderThanDays
		}

		report, err := tk.scanner().Scan(args[0], days)
		if err != nil {
			return err
		}

		if len(report.Stale) == 0 {
			PrintEmptyState("Nothing to delete.")
			return nil
		}

		if jsonOutput && !deleteYes {
			return outputJSON(report)
		}

		printReport(report)

		if !deleteYes {
			fmt.Println()
			PrintWarning("Dry-run only. Use --yes to move these folders to the bin.")
			return nil
		}

		paths := make([]string, 0, len(report.Stale))
		for _, item := range report.Stale {
			paths = append(paths, item.Path)
		}

		entries, err := tk.bin().PutAll(paths)
		if err != nil {
			// Items binned before the failure stay binned.
			if len(entries) > 0 {
				PrintWarning(fmt.Sprintf("%s moved to the bin before the failure", PrintCount(len(entries), "folder was", "folders were")))
			}
			return err
		}

		fmt.Println()
		PrintSuccess(fmt.Sprintf("Moved %s to the bin", PrintCount(len(entries), "folder", "folders")))
		return nil
	},
}

func init() {
	deleteCmd.Flags().IntVar(&deleteOlderThan, "older-than", 90, "Age threshold in days")
	deleteCmd.Flags().BoolVar(&deleteYes, "yes", false, "Move to the bin instead of listing")
}
