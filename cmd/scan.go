package cmd

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/lakshaymaurya-felt/gitcleaner/internal/config"
	"github.com/lakshaymaurya-felt/gitcleaner/internal/scan"
	"github.com/lakshaymaurya-felt/gitcleaner/internal/ui"
)

// sizerConcurrency bounds parallel directory reads during sizing.
const sizerConcurrency = 8

var scanCmd = &cobra.Command{
	Use:   "scan",
	Short: "Find junk and report sizes",
	Long:  "Scan the current directory tree for junk matching the configured patterns and print each match with its size.",
	RunE: func(cmd *cobra.Command, args []string) error {
		entries, err := buildCatalog()
		if err != nil {
			log.Errorf("%v", err)
			return err
		}

		ui.PrintCatalog(os.Stdout, entries)
		printDiskLine()
		return nil
	},
}

// buildCatalog runs the shared scan pipeline: resolve patterns, match paths,
// size them, sort. Only a failure to read the working directory itself is
// returned as an error; everything below degrades to warnings.
func buildCatalog() ([]scan.Entry, error) {
	cwd, err := os.Getwd()
	if err != nil {
		return nil, fmt.Errorf("cannot determine working directory: %w", err)
	}

	patterns, src, err := config.Resolve(cwd)
	if err != nil {
		log.Warnf("%v — using default patterns", err)
	} else if src == config.SourceFile {
		log.Infof("Using %d pattern(s) from %s", len(patterns), config.FileName)
	}

	matcher := scan.NewMatcher(log)
	sizer := scan.NewSizer(sizerConcurrency, log)

	// Matching and sizing both run under the spinner; sizing large trees can
	// dominate the wait.
	var entries []scan.Entry
	var matchErr error
	ui.RunWithSpinner("Scanning", matcher.Visited, func() {
		paths, err := matcher.Match(cwd, patterns)
		if err != nil {
			matchErr = err
			return
		}
		entries = scan.Build(paths, sizer)
	})
	if matchErr != nil {
		return nil, fmt.Errorf("scan failed: %w", matchErr)
	}
	log.Debugf("cataloged %d entries across %d visited", len(entries), matcher.Visited())

	return entries, nil
}

// printDiskLine prints the volume free-space line when available.
func printDiskLine() {
	cwd, err := os.Getwd()
	if err != nil {
		return
	}
	if line := ui.DiskLine(cwd); line != "" {
		fmt.Println(ui.SizeStyle.Render(line))
	}
}
