package treetidy

// Logger provides a pluggable logging interface for diagnostics.
// Reports meant for the user are written separately; Logger output is
// progress and troubleshooting detail.
type Logger interface {
	// Verbose logs detailed diagnostic information.
	// Only logged when verbose mode is enabled.
	Verbose(format string, args ...interface{})

	// Info logs informational messages about normal operations.
	Info(format string, args ...interface{})

	// Error logs error messages.
	Error(format string, args ...interface{})
}
