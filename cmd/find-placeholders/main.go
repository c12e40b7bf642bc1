package main

import (
	"fmt"
	"os"
	"runtime/debug"

	"github.com/vvka-141/treetidy/internal/cli"
	"github.com/vvka-141/treetidy/pkg/treetidy"
)

func main() {
	// A panic must not look like a clean tree to the build that runs us.
	defer func() {
		if r := recover(); r != nil {
			fmt.Fprintf(os.Stderr, "panic: %v\n%s\n", r, debug.Stack())
			os.Exit(treetidy.ExitPanic)
		}
	}()

	if err := cli.ExecutePlaceholders(); err != nil {
		os.Exit(treetidy.ExitCodeForError(err))
	}
}
