package cmd

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/lakshaymaurya-felt/gitcleaner/internal/clean"
	"github.com/lakshaymaurya-felt/gitcleaner/internal/ui"
)

var cleanCmd = &cobra.Command{
	Use:   "clean",
	Short: "Delete junk and free disk space",
	Long:  "Find junk matching the configured patterns and delete it, reporting the space freed. Use --dry-run to preview.",
	RunE: func(cmd *cobra.Command, args []string) error {
		entries, err := buildCatalog()
		if err != nil {
			log.Errorf("%v", err)
			return err
		}

		ui.PrintCatalog(os.Stdout, entries)

		res := clean.Run(entries, dryRun, log)
		fmt.Println()
		ui.PrintCleanSummary(os.Stdout, res.Deleted, len(res.Failed), res.Freed, dryRun)
		printDiskLine()
		return nil
	},
}

func init() {
	cleanCmd.Flags().BoolVarP(&dryRun, "dry-run", "d", false, "Preview the cleanup plan without deleting")
}
