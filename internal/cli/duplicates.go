package cli

import (
	"github.com/spf13/cobra"

	"github.com/vvka-141/treetidy/internal/duplicates"
	"github.com/vvka-141/treetidy/internal/files/filesystem"
)

var duplicatesCmd = newBaseCommand(&cobra.Command{
	Use:   "clean-duplicates",
	Short: "Move duplicate source files into a backup mirror",
	Long: `clean-duplicates finds .swift and .py files that share a filename across
subdirectories of the project and keeps only the one with the shortest path.

Every other copy is moved (not copied) into Project_Backup_Duplicates,
mirroring its path relative to the project root, so it can be restored by
hand. Directories containing .xcodeproj or .git, and the backup directory
itself, are never entered.

Configuration:
  Settings are read from treetidy.yaml in the working directory, from the
  file named by $TREETIDY_CONFIG, or from --config:

    root: .
    duplicates:
      backup_dir: Project_Backup_Duplicates
      extensions: [.swift, .py]
      skip: [.xcodeproj, .git]

Exit Codes:
  0  - Success (including nothing found)
  1  - General error
  2  - CLI usage error
  10 - Invalid configuration
  11 - Root directory not found
  12 - One or more duplicates could not be moved

Examples:
  # Preview which files would be moved
  clean-duplicates --dry-run

  # Move duplicates, logging every destination
  clean-duplicates -v`,
	Args: RejectArgs,
	RunE: runDuplicates,
})

type duplicatesFlagValues struct {
	config  string
	dryRun  bool
	verbose bool
}

var duplicatesFlags duplicatesFlagValues

func init() {
	duplicatesCmd.Flags().StringVar(&duplicatesFlags.config, "config", "",
		"Path to a treetidy.yaml file (default: ./treetidy.yaml or $TREETIDY_CONFIG)")
	duplicatesCmd.Flags().BoolVar(&duplicatesFlags.dryRun, "dry-run", false,
		"Report duplicates without moving anything")
	duplicatesCmd.Flags().BoolVarP(&duplicatesFlags.verbose, "verbose", "v", false,
		"Enable verbose output")
}

func runDuplicates(cmd *cobra.Command, args []string) error {
	logger := newCommandLogger(cmd, duplicatesFlags.verbose)

	cfg, err := loadConfig(duplicatesFlags.config, logger)
	if err != nil {
		return err
	}

	settings := duplicates.SettingsFromConfig(cfg)
	settings.DryRun = duplicatesFlags.dryRun

	out := cmd.OutOrStdout()
	finder := duplicates.NewFinder(filesystem.NewOSFileSystem(), logger)
	_, err = finder.Run(settings, duplicates.NewReporter(out, newCommandStyles(out)))
	return err
}
