// Package cli — clean_test.go contains unit tests for the command
// wiring: subcommand registration, flag declarations, and the generated
// help text. The cleaning logic itself is tested in internal/clean.
package cli

import (
	"testing"

	"github.com/spf13/cobra"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/mmr-tortoise/begone/internal/rules"
)

// findCommand locates a direct subcommand of root by name.
func findCommand(t *testing.T, root *cobra.Command, name string) *cobra.Command {
	t.Helper()

	for _, cmd := range root.Commands() {
		if cmd.Name() == name {
			return cmd
		}
	}
	t.Fatalf("subcommand %q not registered", name)
	return nil
}

// TestSubcommandRegistration verifies that every built-in rule set gets
// its own subcommand and that "all" exists alongside them.
func TestSubcommandRegistration(t *testing.T) {
	root := NewRootCommand()

	for _, name := range []string{"rust", "python", "js", "java", "go", "dotnet", "all"} {
		findCommand(t, root, name)
	}
}

// TestGlobalFlags verifies the persistent flags and their defaults:
// both modes are off unless asked for.
func TestGlobalFlags(t *testing.T) {
	root := NewRootCommand()

	dry := root.PersistentFlags().Lookup("dry-run")
	require.NotNil(t, dry)
	assert.Equal(t, "false", dry.DefValue)
	assert.Equal(t, "d", dry.Shorthand)

	verb := root.PersistentFlags().Lookup("verbose")
	require.NotNil(t, verb)
	assert.Equal(t, "false", verb.DefValue)
	assert.Equal(t, "v", verb.Shorthand)
}

// TestCleanCommandHelpNamesTargets verifies that each generated
// subcommand documents its indicators and targets, so `begone rust -h`
// tells the user exactly what is at stake.
func TestCleanCommandHelpNamesTargets(t *testing.T) {
	root := NewRootCommand()

	rustCmd := findCommand(t, root, "rust")
	assert.Contains(t, rustCmd.Long, "Cargo.toml")
	assert.Contains(t, rustCmd.Long, "target")

	dotnetCmd := findCommand(t, root, "dotnet")
	assert.Contains(t, dotnetCmd.Long, "*.csproj")
	assert.Contains(t, dotnetCmd.Long, "obj")
}

// TestCommandsRejectArguments verifies that the cleaning subcommands
// take no positional arguments — the run always starts from the current
// working directory.
func TestCommandsRejectArguments(t *testing.T) {
	root := NewRootCommand()

	for _, name := range append(ruleNames(), "all") {
		cmd := findCommand(t, root, name)
		err := cmd.Args(cmd, []string{"/some/path"})
		assert.Error(t, err, "command %q should reject positional args", name)
	}
}

// ruleNames lists the subcommand tokens of the built-in table.
func ruleNames() []string {
	names := make([]string, len(rules.Builtin))
	for i, rs := range rules.Builtin {
		names[i] = rs.Name
	}
	return names
}
