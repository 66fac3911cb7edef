package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/lakshaymaurya-felt/gitcleaner/internal/logger"
)

var (
	// Global flags
	debug  bool
	dryRun bool

	// Version info populated from main
	appVersion = "dev"
	appCommit  = "none"
	appDate    = "unknown"

	log *logger.Logger
)

// SetVersionInfo sets build-time version information.
func SetVersionInfo(version, commit, date string) {
	appVersion = version
	appCommit = commit
	appDate = date
	rootCmd.Version = version
}

var rootCmd = &cobra.Command{
	Use:   "gitcleaner",
	Short: "Find and remove project junk",
	Long: `GitCleaner - Find and remove project junk.

Scans the current directory tree for build artifacts, caches, and logs
(node_modules, dist, __pycache__, *.log, ...), reports their sizes, and
optionally deletes them. Override the pattern list with a .gitcleaner.json
file containing {"patterns": [...]}.`,
	SilenceUsage:  true,
	SilenceErrors: true,
	PersistentPreRun: func(cmd *cobra.Command, args []string) {
		log = logger.Default(debug)
		if debug {
			if w, err := logger.OpenDebugLog(); err == nil {
				log.AttachFile(w)
			}
		}
	},
	RunE: func(cmd *cobra.Command, args []string) error {
		// No subcommand: usage hint plus full help.
		fmt.Println("Run 'gitcleaner scan' to look for junk, 'gitcleaner clean' to delete it.")
		fmt.Println()
		return cmd.Help()
	},
}

// Execute runs the root command.
func Execute() error {
	return rootCmd.Execute()
}

func init() {
	rootCmd.PersistentFlags().BoolVar(&debug, "debug", false, "Show detailed operation logs")

	// Register all subcommands
	rootCmd.AddCommand(scanCmd)
	rootCmd.AddCommand(cleanCmd)
	rootCmd.AddCommand(completionCmd)
	rootCmd.AddCommand(versionCmd)
}
