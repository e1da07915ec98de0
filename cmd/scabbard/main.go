package main

import (
	"context"
	"fmt"
	"os"

	"github.com/chazu/scabbard/cmd/scabbard/commands"
)

// Set via -ldflags at build time.
var (
	version   = "dev"
	commit    = "none"
	buildDate = "unknown"
)

func main() {
	if err := commands.Execute(context.Background(), version, commit, buildDate); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
