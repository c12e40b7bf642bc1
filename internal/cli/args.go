package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/vvka-141/treetidy/pkg/treetidy"
)

// RejectArgs validates that no positional argument is provided.
// The duplicate finder takes its target from configuration only.
func RejectArgs(cmd *cobra.Command, args []string) error {
	if len(args) > 0 {
		return fmt.Errorf(`%w: %s takes no arguments, received %d

The directory to clean is set by "root" in %s (default: current directory).`,
			treetidy.ErrUsage, cmd.CommandPath(), len(args), treetidy.ConfigFileName)
	}
	return nil
}

// OptionalRoot validates that at most one root argument is provided.
func OptionalRoot(cmd *cobra.Command, args []string) error {
	if len(args) > 1 {
		return fmt.Errorf(`%w: accepts at most 1 arg(s), received %d

Usage: %s`, treetidy.ErrUsage, len(args), cmd.UseLine())
	}
	return nil
}

// usageFlagError marks flag parsing failures as usage errors.
func usageFlagError(_ *cobra.Command, err error) error {
	return fmt.Errorf("%w: %v", treetidy.ErrUsage, err)
}
