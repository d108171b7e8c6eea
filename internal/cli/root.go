// Package cli implements the cobra-based command surface for begone.
//
// The root command only carries the global flags (--dry-run, --verbose)
// and help text; the actual cleaning lives in the generated per-ecosystem
// subcommands defined in clean.go.
package cli

import (
	"errors"
	"fmt"
	"os"

	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"

	"github.com/mmr-tortoise/begone/internal/model"
	"github.com/mmr-tortoise/begone/internal/rules"
)

// Global flag variables, bound to persistent flags on the root command
// and therefore shared by every subcommand.
var (
	// dryRun reports what would be removed without deleting anything.
	dryRun bool

	// verbose lowers the logging floor from info to debug.
	verbose bool
)

// Version, Commit, and Date are set at build time via ldflags.
// They are injected from the main package to display version information.
var (
	Version = "dev"
	Commit  = "none"
	Date    = "unknown"
)

// NewRootCommand creates and configures the root cobra command with one
// clean subcommand per built-in rule set, plus "all".
func NewRootCommand() *cobra.Command {
	rootCmd := &cobra.Command{
		Use:   "begone",
		Short: "Remove build artifacts and dependency directories from project trees",
		Long: `begone recursively scans the current directory for project roots and
removes the build-artifact and dependency directories that pile up inside
them (target/, node_modules/, .venv/, bin/, obj/, ...).

A directory counts as a project root when it directly contains a known
indicator file such as Cargo.toml, package.json, or go.mod. Only the fixed,
per-ecosystem target directories are ever removed; use --dry-run to preview
a run without deleting anything.`,

		// Errors are formatted by Execute; keep cobra quiet.
		SilenceUsage:  true,
		SilenceErrors: true,

		Version: fmt.Sprintf("%s (commit: %s, built: %s)", Version, Commit, Date),

		PersistentPreRun: func(cmd *cobra.Command, args []string) {
			configureLogging(verbose)
		},
	}

	rootCmd.PersistentFlags().BoolVarP(&dryRun, "dry-run", "d", false,
		"Report what would be removed without deleting anything")
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false,
		"Enable verbose output")

	// One subcommand per rule set, generated from the table, plus "all".
	for _, rs := range rules.Builtin {
		rootCmd.AddCommand(newCleanCommand(rs))
	}
	rootCmd.AddCommand(newCleanAllCommand())

	return rootCmd
}

// configureLogging sets up the process-wide logger. Diagnostics go to
// stderr so stdout stays reserved for the action lines.
func configureLogging(verbose bool) {
	logrus.SetOutput(os.Stderr)
	logrus.SetFormatter(&logrus.TextFormatter{DisableTimestamp: true})
	if verbose {
		logrus.SetLevel(logrus.DebugLevel)
	} else {
		logrus.SetLevel(logrus.InfoLevel)
	}
}

// Execute runs the root command and translates errors into process exit
// codes. CLIError values carry their own code; anything else exits 1.
// Per-directory deletion failures never reach this path — they are
// counted in the run summaries and leave the exit code at zero.
func Execute(rootCmd *cobra.Command) {
	if err := rootCmd.Execute(); err != nil {
		var cliErr *model.CLIError
		if errors.As(err, &cliErr) {
			fmt.Fprintf(os.Stderr, "Error: %s\n", cliErr.Error())
			os.Exit(int(cliErr.Code))
		}

		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(int(model.ExitGeneralError))
	}
}
