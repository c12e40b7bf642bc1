package main

import (
	"fmt"
	"os"
	"runtime/debug"

	"github.com/vvka-141/treetidy/internal/cli"
	"github.com/vvka-141/treetidy/pkg/treetidy"
)

func main() {
	defer func() {
		if r := recover(); r != nil {
			fmt.Fprintf(os.Stderr, "panic: %v\n%s\n", r, debug.Stack())
			os.Exit(treetidy.ExitPanic)
		}
	}()

	if err := cli.ExecuteDuplicates(); err != nil {
		os.Exit(treetidy.ExitCodeForError(err))
	}
}
