package cli

import (
	"errors"
	"fmt"
	"io"

	"github.com/spf13/cobra"

	"github.com/vvka-141/treetidy/internal/config"
	"github.com/vvka-141/treetidy/internal/logging"
	"github.com/vvka-141/treetidy/internal/ui"
	"github.com/vvka-141/treetidy/pkg/treetidy"
)

// ExecuteDuplicates runs the clean-duplicates command.
func ExecuteDuplicates() error {
	return execute(duplicatesCmd)
}

// ExecutePlaceholders runs the find-placeholders command.
func ExecutePlaceholders() error {
	return execute(placeholdersCmd)
}

// execute runs cmd and prints errors to stderr. Found placeholders are not
// an error worth printing; the report already says so.
func execute(cmd *cobra.Command) error {
	err := cmd.Execute()
	if err != nil && !errors.Is(err, treetidy.ErrPlaceholdersFound) {
		fmt.Fprintf(cmd.ErrOrStderr(), "Error: %v\n", err)
	}
	return err
}

// newCommandLogger creates the diagnostics logger for cmd.
func newCommandLogger(cmd *cobra.Command, verbose bool) treetidy.Logger {
	return logging.NewWriterLogger(cmd.ErrOrStderr(), verbose)
}

// newCommandStyles creates report styles for cmd's output writer.
func newCommandStyles(out io.Writer) *ui.Styles {
	return ui.NewStyles(out, ui.ColorEnabled(out))
}

// loadConfig resolves the configuration for a command run.
func loadConfig(configPath string, logger treetidy.Logger) (*config.Config, error) {
	cfg, err := config.Resolve(configPath)
	if err != nil {
		return nil, err
	}
	logger.Verbose("Configuration: root=%s backup_dir=%s", cfg.Root, cfg.Duplicates.BackupDir)
	return cfg, nil
}

func newBaseCommand(cmd *cobra.Command) *cobra.Command {
	cmd.SilenceUsage = true
	cmd.SilenceErrors = true
	cmd.Version = versionString()
	cmd.SetVersionTemplate("{{.Version}}\n")
	cmd.SetFlagErrorFunc(usageFlagError)
	return cmd
}
