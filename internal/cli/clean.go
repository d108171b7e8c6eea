// Package cli — clean.go defines the cleaning subcommands.
//
// Every built-in rule set becomes its own subcommand (begone rust,
// begone js, ...) via newCleanCommand; "all" applies the whole table in
// its fixed order. The commands share one code path: resolve the working
// directory, then run each rule set to completion before the next.
package cli

import (
	"os"
	"strings"

	"github.com/sirupsen/logrus"
	"github.com/spf13/afero"
	"github.com/spf13/cobra"

	"github.com/mmr-tortoise/begone/internal/clean"
	"github.com/mmr-tortoise/begone/internal/model"
	"github.com/mmr-tortoise/begone/internal/rules"
)

// newCleanCommand creates the subcommand for a single rule set.
func newCleanCommand(rs rules.RuleSet) *cobra.Command {
	indicators := make([]string, len(rs.Indicators))
	for i, p := range rs.Indicators {
		indicators[i] = p.String()
	}

	return &cobra.Command{
		Use:   rs.Name,
		Short: "Clean " + rs.Label + " project directories",
		Long: "Clean " + rs.Label + " project directories.\n\n" +
			"Project roots are directories directly containing one of: " +
			strings.Join(indicators, ", ") + ".\n" +
			"Removed beneath each root: " + strings.Join(rs.Targets, ", ") + ".",
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runClean(rs)
		},
	}
}

// newCleanAllCommand creates the "all" subcommand, which applies every
// built-in rule set sequentially in table order.
func newCleanAllCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "all",
		Short: "Clean all supported project directories",
		Long:  "Clean project directories for every supported ecosystem, one ecosystem at a time.",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runClean(rules.Builtin...)
		},
	}
}

// runClean resolves the working directory and runs each rule set under
// it. An unresolvable working directory is the one fatal error; the
// passes themselves always run to completion.
func runClean(sets ...rules.RuleSet) error {
	cwd, err := os.Getwd()
	if err != nil {
		return model.WrapCLIError(model.ExitGeneralError,
			"failed to determine current directory", err)
	}
	logrus.Debugf("Current directory: %s", cwd)

	runner := clean.NewRunner(afero.NewOsFs(), clean.NewReporter(os.Stdout), dryRun)
	for _, rs := range sets {
		runner.Run(cwd, rs)
	}
	return nil
}
