package cli

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/vvka-141/treetidy/internal/files/filesystem"
	"github.com/vvka-141/treetidy/internal/placeholders"
	"github.com/vvka-141/treetidy/pkg/treetidy"
)

var placeholdersCmd = newBaseCommand(&cobra.Command{
	Use:   "find-placeholders [root]",
	Short: "Report Xcode editor placeholders left in source files",
	Long: `find-placeholders scans source files for editor placeholders such as
<#identifier#>, <#T##name##Type#> and <#[# ... #]#> that Xcode inserts
during code completion. Any placeholder left in a file breaks the build.

Scanned files: .swift .m .mm .h .hpp .cpp .c .xcconfig
Skipped directories: DerivedData .build Build Pods Carthage SourcePackages .git

Arguments:
  root    Directory to scan (default: current working directory)

Exit Codes:
  0  - No placeholders found
  1  - Placeholders found (or general error)
  2  - CLI usage error
  10 - Invalid configuration
  11 - Root directory not found

Examples:
  # Gate a build on a clean tree
  find-placeholders ./MyApp || exit 1

  # Also skip directories listed in .gitignore (respect_gitignore in treetidy.yaml)
  find-placeholders --config ci/treetidy.yaml`,
	Args: OptionalRoot,
	RunE: runPlaceholders,
})

type placeholdersFlagValues struct {
	config  string
	verbose bool
}

var placeholdersFlags placeholdersFlagValues

func init() {
	placeholdersCmd.Flags().StringVar(&placeholdersFlags.config, "config", "",
		"Path to a treetidy.yaml file (default: ./treetidy.yaml or $TREETIDY_CONFIG)")
	placeholdersCmd.Flags().BoolVarP(&placeholdersFlags.verbose, "verbose", "v", false,
		"Enable verbose output")
}

func runPlaceholders(cmd *cobra.Command, args []string) error {
	logger := newCommandLogger(cmd, placeholdersFlags.verbose)

	cfg, err := loadConfig(placeholdersFlags.config, logger)
	if err != nil {
		return err
	}

	var root string
	if len(args) == 1 {
		root = args[0]
	} else {
		root, err = os.Getwd()
		if err != nil {
			return fmt.Errorf("failed to get working directory: %w", err)
		}
	}

	scanner := placeholders.NewScanner(filesystem.NewOSFileSystem(), logger)
	settings, err := scanner.Settings(cfg, root)
	if err != nil {
		return err
	}

	result, err := scanner.Scan(settings)
	if err != nil {
		return err
	}

	out := cmd.OutOrStdout()
	placeholders.WriteReport(out, newCommandStyles(out), result)

	if !result.Clean() {
		return fmt.Errorf("%d placeholder(s) in %s: %w", len(result.Matches), root, treetidy.ErrPlaceholdersFound)
	}
	return nil
}
