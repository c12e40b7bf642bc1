package cli

import (
	"fmt"
	"runtime"
)

// Build-time variables set via ldflags
var (
	version = "dev"
	commit  = "unknown"
	date    = "unknown"
)

func versionString() string {
	return fmt.Sprintf("treetidy %s (%s, %s) %s/%s", version, commit, date, runtime.GOOS, runtime.GOARCH)
}
