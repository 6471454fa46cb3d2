package cli

import (
	"strconv"

	"github.com/dustin/go-humanize"
	"github.com/spf13/cobra"

	"github.com/danieljhkim/sweeper/internal/scan"
)

var scanOlderThan int

var scanCmd = &cobra.Command{
	Use:   "scan <path>",
	Short: "Scan for stale project folders",
	Long: `Scan the immediate subdirectories of a path for stale projects.

A project's age is the newest modification time found inside it (bounded
depth), so touching any file keeps the whole project fresh. Hidden
directories are ignored.`,
	Args: cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		tk, err := newToolkit()
		if err != nil {
			return err
		}

		days := scanOlderThan
		if !cmd.Flags().Changed("older-than") {
			days = tk.cfg.ScanOlderThanDays
		}

		report, err := tk.scanner().Scan(args[0], days)
		if err != nil {
			return err
		}

		if jsonOutput {
			return outputJSON(report)
		}

		printReport(report)
		return nil
	},
}

func init() {
	scanCmd.Flags().IntVar(&scanOlderThan, "older-than", 30, "Age threshold in days")
}

// printReport renders a scan report, stale projects oldest first.
func printReport(report *scan.Report) {
	PrintSection("Stale Project Scan")
	PrintLabelValue("Root", report.Root)
	PrintLabelValue("Scanned folders", strconv.Itoa(report.ScannedCount))
	PrintLabelValue("Threshold", PrintCount(report.OlderThanDays, "day", "days"))

	if len(report.Stale) == 0 {
		PrintEmptyState("No stale folders found.")
		return
	}

	rows := make([][]string, 0, len(report.Stale))
	for i, item := range report.Stale {
		rows = append(rows, []string{
			strconv.Itoa(i + 1),
			item.Path,
			item.LastModified.Format("2006-01-02 15:04"),
			humanize.Time(item.LastModified),
		})
	}
	PrintTable([]string{"#", "Path", "Last Modified", "Age"}, rows)
}
