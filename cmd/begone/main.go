// Package main is the entry point for the begone CLI.
//
// The binary removes build-artifact and dependency directories from
// project trees beneath the current working directory. All functionality
// lives in the internal/cli package; main only injects build-time
// version information and hands control to cobra.
package main

import (
	"github.com/mmr-tortoise/begone/internal/cli"
)

// version, commit, and date are set at build time via ldflags.
// During development they default to "dev", "none", and "unknown".
var (
	version = "dev"
	commit  = "none"
	date    = "unknown"
)

func main() {
	cli.Version = version
	cli.Commit = commit
	cli.Date = date

	rootCmd := cli.NewRootCommand()
	cli.Execute(rootCmd)
}
