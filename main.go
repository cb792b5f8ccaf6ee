package main

import (
	"fmt"
	"os"

	"github.com/pkgsmith/pkgsmith/cmd"
	"github.com/pkgsmith/pkgsmith/internal/infrastructure/terminal"
)

// Build-time version information, set via -ldflags.
var (
	version = "dev"
	commit  = "none"
	date    = "unknown"
)

func main() {
	rootCmd := cmd.NewRootCommand(version, commit, date)
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, terminal.Errorf.Render(fmt.Sprintf("Error: %v", err)))
		os.Exit(1)
	}
}
