package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/danieljhkim/sweeper/internal/organize"
)

var organizeDryRun bool

var organizeCmd = &cobra.Command{
	Use:   "organize <path>",
	Short: "Organize files in a folder by type",
	Long: `Sort the files directly inside a folder into category subfolders
(Documents, Images, Archives, Installers, Spreadsheets, Other) based on
their extension.

Use --dry-run to preview the moves without applying them.`,
	Args: cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		tk, err := newToolkit()
		if err != nil {
			return err
		}

		moves, err := organize.BuildPlan(tk.fs, args[0])
		if err != nil {
			return err
		}

		if jsonOutput && organizeDryRun {
			return outputJSON(moves)
		}

		PrintSection("Organize")

		if len(moves) == 0 {
			PrintEmptyState("No files to organize.")
			return nil
		}

		items := make([]string, 0, len(moves))
		for _, mv := range moves {
			items = append(items, fmt.Sprintf("'%s' -> '%s'", mv.From, mv.To))
		}
		PrintList(items, 1)

		if organizeDryRun {
			fmt.Println()
			PrintWarning("Dry-run only. Use without --dry-run to apply.")
			return nil
		}

		if err := organize.Apply(tk.fs, moves); err != nil {
			return err
		}

		fmt.Println()
		PrintSuccess(fmt.Sprintf("Organized %s", PrintCount(len(moves), "file", "files")))
		return nil
	},
}

func init() {
	organizeCmd.Flags().BoolVar(&organizeDryRun, "dry-run", false, "Preview moves without applying them")
}
