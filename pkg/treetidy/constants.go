package treetidy

// Exit codes for semantic error classification.
// These follow Unix/GNU conventions:
//   - 0: Success
//   - 1: General error, or placeholders found
//   - 2: CLI usage error (misuse of command line)
//   - 3+: Application-specific errors
const (
	ExitSuccess           = 0  // Scan or cleanup completed successfully
	ExitGeneralError      = 1  // Unknown or unclassified error
	ExitPlaceholdersFound = 1  // At least one editor placeholder was found
	ExitUsageError        = 2  // CLI usage error (unexpected args, invalid flags)
	ExitPanic             = 3  // Internal panic (unexpected crash)
	ExitConfigError       = 10 // Invalid configuration
	ExitRootNotFound      = 11 // Root directory missing or not a directory
	ExitRelocationFailed  = 12 // One or more duplicates could not be moved
)

const (
	// DefaultRoot is the directory the duplicate finder operates on.
	DefaultRoot = "."

	// DefaultBackupDir is the name of the backup mirror directory.
	// Relative values are resolved against the root being cleaned.
	DefaultBackupDir = "Project_Backup_Duplicates"

	// MaxSnippetLength is the maximum number of characters in a reported
	// placeholder snippet, including the truncation marker.
	MaxSnippetLength = 120

	// TruncationMarker is appended to snippets cut at MaxSnippetLength.
	TruncationMarker = "..."

	// ConfigFileName is looked up in the working directory when no explicit
	// config path is given.
	ConfigFileName = "treetidy.yaml"

	// ConfigEnvVar names the environment variable holding an explicit config path.
	ConfigEnvVar = "TREETIDY_CONFIG"
)

// DefaultDuplicateExtensions returns the extensions tracked by the duplicate finder.
func DefaultDuplicateExtensions() []string {
	return []string{".swift", ".py"}
}

// DefaultDuplicateSkip returns the path fragments the duplicate finder never enters.
// The backup directory name is added at scan time.
func DefaultDuplicateSkip() []string {
	return []string{".xcodeproj", ".git"}
}

// DefaultPlaceholderExtensions returns the extensions the placeholder scanner reads.
func DefaultPlaceholderExtensions() []string {
	return []string{".swift", ".m", ".mm", ".h", ".hpp", ".cpp", ".c", ".xcconfig"}
}

// DefaultPlaceholderSkip returns the directory names the placeholder scanner never enters.
func DefaultPlaceholderSkip() []string {
	return []string{"DerivedData", ".build", "Build", "Pods", "Carthage", "SourcePackages", ".git"}
}
