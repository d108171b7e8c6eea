package rules

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// TestParsePattern verifies that table notation is split into the two
// pattern variants: a leading "*" produces a suffix wildcard, anything
// else a literal name.
func TestParsePattern(t *testing.T) {
	tests := []struct {
		name  string
		input string
		want  Pattern
	}{
		{
			name:  "literal file name",
			input: "Cargo.toml",
			want:  Pattern{Kind: Literal, Value: "Cargo.toml"},
		},
		{
			name:  "suffix wildcard",
			input: "*.csproj",
			want:  Pattern{Kind: SuffixWildcard, Value: ".csproj"},
		},
		{
			name:  "bare star matches everything",
			input: "*",
			want:  Pattern{Kind: SuffixWildcard, Value: ""},
		},
		{
			name:  "star in the middle stays literal",
			input: "a*b",
			want:  Pattern{Kind: Literal, Value: "a*b"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, ParsePattern(tt.input))
		})
	}
}

// TestPatternMatchName covers both variants against individual entry names.
func TestPatternMatchName(t *testing.T) {
	literal := ParsePattern("package.json")
	assert.True(t, literal.MatchName("package.json"))
	assert.False(t, literal.MatchName("package.json5"))
	assert.False(t, literal.MatchName("Package.json"), "literal matching is case sensitive")

	wildcard := ParsePattern("*.sln")
	assert.True(t, wildcard.MatchName("App.sln"))
	assert.True(t, wildcard.MatchName(".sln"), "bare suffix still matches")
	assert.False(t, wildcard.MatchName("App.slnx"))
}

// TestPatternString verifies the round trip back to table notation.
func TestPatternString(t *testing.T) {
	for _, s := range []string{"go.mod", "*.fsproj"} {
		assert.Equal(t, s, ParsePattern(s).String())
	}
}

// TestBuiltinTable sanity-checks the fixed rule table: six ecosystems in
// a stable order, unique subcommand names, and no wildcard targets (the
// cleaner only ever removes exact directory names).
func TestBuiltinTable(t *testing.T) {
	require.Len(t, Builtin, 6)

	wantOrder := []string{"rust", "python", "js", "java", "go", "dotnet"}
	seen := map[string]bool{}
	for i, rs := range Builtin {
		assert.Equal(t, wantOrder[i], rs.Name)
		assert.False(t, seen[rs.Name], "duplicate subcommand name %q", rs.Name)
		seen[rs.Name] = true

		assert.NotEmpty(t, rs.Label)
		assert.NotEmpty(t, rs.Indicators)
		assert.NotEmpty(t, rs.Targets)
		for _, target := range rs.Targets {
			assert.NotContains(t, target, "*", "targets must be plain names")
			assert.NotContains(t, target, "/", "targets must be relative names")
		}
	}
}

// TestLookup verifies subcommand-name resolution against the table.
func TestLookup(t *testing.T) {
	rs, ok := Lookup("dotnet")
	require.True(t, ok)
	assert.Equal(t, ".NET", rs.Label)

	_, ok = Lookup("cobol")
	assert.False(t, ok)
}
