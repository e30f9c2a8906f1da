package main

import (
	"fmt"
	"os"
	"runtime/debug"

	"github.com/vvka-141/mkcatalog/internal/cli"
	"github.com/vvka-141/mkcatalog/pkg/mkcatalog"
)

func main() {
	// Recover from panics to ensure graceful exits with stack traces
	defer func() {
		if r := recover(); r != nil {
			fmt.Fprintf(os.Stderr, "panic: %v\n%s\n", r, debug.Stack())
			os.Exit(mkcatalog.ExitPanic)
		}
	}()

	if err := cli.Execute(); err != nil {
		os.Exit(mkcatalog.ExitCodeForError(err))
	}
}
