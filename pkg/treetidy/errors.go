package treetidy

import (
	"errors"
)

// Sentinel errors for common failure scenarios.
// These enable callers to distinguish error types using errors.Is().
//
// Example usage:
//
//	_, err := finder.Run(settings, reporter)
//	if errors.Is(err, treetidy.ErrRelocationFailed) {
//	    // Some duplicates are still in place
//	}
var (
	// ErrInvalidConfig indicates the provided configuration is invalid.
	ErrInvalidConfig = errors.New("invalid configuration")

	// ErrUsage indicates the command line was malformed.
	ErrUsage = errors.New("usage error")

	// ErrRootNotFound indicates the directory to scan does not exist or is not a directory.
	ErrRootNotFound = errors.New("root directory not found")

	// ErrRelocationFailed indicates at least one duplicate could not be moved.
	ErrRelocationFailed = errors.New("relocation failed")

	// ErrPlaceholdersFound indicates the scan found editor placeholders.
	ErrPlaceholdersFound = errors.New("placeholders found")
)

// ExitCodeForError returns the appropriate exit code for an error.
// Returns ExitSuccess (0) for nil errors, semantic codes for known errors,
// and ExitGeneralError (1) for unclassified errors.
func ExitCodeForError(err error) int {
	if err == nil {
		return ExitSuccess
	}

	switch {
	case errors.Is(err, ErrPlaceholdersFound):
		return ExitPlaceholdersFound
	case errors.Is(err, ErrUsage):
		return ExitUsageError
	case errors.Is(err, ErrInvalidConfig):
		return ExitConfigError
	case errors.Is(err, ErrRootNotFound):
		return ExitRootNotFound
	case errors.Is(err, ErrRelocationFailed):
		return ExitRelocationFailed
	}

	return ExitGeneralError
}
