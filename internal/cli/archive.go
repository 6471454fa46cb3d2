package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/danieljhkim/sweeper/internal/planner"
)

var (
	archiveDest      string
	archiveOlderThan int
	archiveYes       bool
)

var archiveCmd = &cobra.Command{
	Use:   "archive <path>",
	Short: "Archive stale project folders into YYYY-MM buckets",
	Long: `Move stale project folders under a destination, bucketed by the
current month (dest/YYYY-MM/name).

Without --yes the planned moves are printed but nothing is touched.
Name collisions in the destination get a numeric suffix instead of
overwriting. Projects already inside the destination are never moved.`,
	Args: cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		tk, err := newToolkit()
		if err != nil {
			return err
		}

		dest := archiveDest
		if dest == "" {
			dest = tk.cfg.ArchiveDest
		}
		if dest == "" {
			return fmt.Errorf("no archive destination: pass --dest or set archive.dest in %s", tk.paths.Config)
		}

		days := archiveOlderThan
		if !cmd.Flags().Changed("older-than") {
			days = tk.cfg.ScanOlderThanDays
		}

		report, err := tk.scanner().Scan(args[0], days)
		if err != nil {
			return err
		}

		plan, err := planner.BuildArchivePlan(tk.fs, tk.clock, report, dest)
		if err != nil {
			return err
		}

		if jsonOutput && !archiveYes {
			return outputJSON(plan)
		}

		if !jsonOutput {
			printPlan(plan)
		}

		if len(plan.Moves) == 0 {
			if jsonOutput {
				return outputJSON(plan)
			}
			return nil
		}

		if !archiveYes {
			fmt.Println()
			PrintWarning("Dry-run only. Use --yes to apply.")
			return nil
		}

		if err := planner.Apply(tk.fs, plan); err != nil {
			return err
		}

		if jsonOutput {
			return outputJSON(plan)
		}

		fmt.Println()
		PrintSuccess(fmt.Sprintf("Archived %s into %s", PrintCount(len(plan.Moves), "folder", "folders"), plan.DestRoot))
		return nil
	},
}

func init() {
	archiveCmd.Flags().StringVar(&archiveDest, "dest", "", "Archive destination root")
	archiveCmd.Flags().IntVar(&archiveOlderThan, "older-than", 30, "Age threshold in days")
	archiveCmd.Flags().BoolVar(&archiveYes, "yes", false, "Apply the plan instead of printing it")
}

// printPlan renders an archive plan without touching the filesystem.
func printPlan(plan *planner.ArchivePlan) {
	PrintSection("Archive Plan")
	PrintLabelValue("Destination", plan.DestRoot)
	PrintLabelValue("Month bucket", plan.MonthBucket)
	PrintLabelValue("Planned moves", PrintCount(len(plan.Moves), "move", "moves"))

	if len(plan.Moves) == 0 {
		PrintEmptyState("Nothing to archive.")
		return
	}

	items := make([]string, 0, len(plan.Moves))
	for _, mv := range plan.Moves {
		items = append(items, fmt.Sprintf("'%s' -> '%s'", mv.From, mv.To))
	}
	PrintNumberedList(items, 1)
}
