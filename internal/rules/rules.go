package rules

import "strings"

// PatternKind discriminates the two indicator pattern variants.
type PatternKind int

const (
	// Literal matches a direct child entry with exactly this name.
	Literal PatternKind = iota

	// SuffixWildcard matches any direct child entry whose name ends
	// with the pattern's value. Written "*<suffix>" in table form,
	// e.g. "*.csproj".
	SuffixWildcard
)

// Pattern is a single indicator pattern. A directory counts as a project
// root when at least one of its rule set's patterns matches; matching
// only ever inspects the directory's immediate children, never deeper.
type Pattern struct {
	Kind PatternKind

	// Value is the exact entry name for Literal patterns, or the
	// required name suffix (leading "*" already stripped) for
	// SuffixWildcard patterns.
	Value string
}

// ParsePattern converts the table notation into a Pattern. A leading "*"
// marks a suffix wildcard; everything else is a literal name.
func ParsePattern(s string) Pattern {
	if strings.HasPrefix(s, "*") {
		return Pattern{Kind: SuffixWildcard, Value: strings.TrimPrefix(s, "*")}
	}
	return Pattern{Kind: Literal, Value: s}
}

// MatchName reports whether a single directory entry name satisfies the
// pattern.
func (p Pattern) MatchName(name string) bool {
	if p.Kind == SuffixWildcard {
		return strings.HasSuffix(name, p.Value)
	}
	return name == p.Value
}

// String returns the pattern in its table notation.
func (p Pattern) String() string {
	if p.Kind == SuffixWildcard {
		return "*" + p.Value
	}
	return p.Value
}

// RuleSet describes how to clean one ecosystem. Values are immutable
// after construction; the cleaner never mutates them.
type RuleSet struct {
	// Name is the subcommand token used on the command line ("rust",
	// "js", "dotnet", ...).
	Name string

	// Label is the human-readable ecosystem name used in output
	// ("Rust", "JavaScript/TypeScript", ...).
	Label string

	// Indicators are evaluated in order; the first match wins.
	Indicators []Pattern

	// Targets are plain directory names (no wildcards) removed beneath
	// each matched project root, in order.
	Targets []string
}

// patterns parses a list of table-notation strings.
func patterns(specs ...string) []Pattern {
	out := make([]Pattern, len(specs))
	for i, s := range specs {
		out[i] = ParsePattern(s)
	}
	return out
}

// Builtin is the full rule table in the order the "all" command applies
// it. The entries mirror the conventional layout of each ecosystem's
// build tooling.
var Builtin = []RuleSet{
	{
		Name:       "rust",
		Label:      "Rust",
		Indicators: patterns("Cargo.toml"),
		Targets:    []string{"target"},
	},
	{
		Name:       "python",
		Label:      "Python",
		Indicators: patterns("requirements.txt", "pyproject.toml", "setup.py", "Pipfile"),
		Targets:    []string{".venv", "venv", "__pycache__", ".pytest_cache", ".mypy_cache"},
	},
	{
		Name:       "js",
		Label:      "JavaScript/TypeScript",
		Indicators: patterns("package.json"),
		Targets:    []string{"node_modules", ".next", ".nuxt", ".cache", "dist", "build"},
	},
	{
		Name:       "java",
		Label:      "Java",
		Indicators: patterns("pom.xml", "build.gradle", "build.gradle.kts"),
		Targets:    []string{"target", "build", ".gradle", ".classpath"},
	},
	{
		Name:       "go",
		Label:      "Go",
		Indicators: patterns("go.mod", "go.sum"),
		Targets:    []string{"bin", "pkg", "__debug_bin"},
	},
	{
		Name:       "dotnet",
		Label:      ".NET",
		Indicators: patterns("*.csproj", "*.fsproj", "*.sln"),
		Targets:    []string{"bin", "obj"},
	},
}

// Lookup finds a built-in rule set by its subcommand name.
func Lookup(name string) (RuleSet, bool) {
	for _, rs := range Builtin {
		if rs.Name == name {
			return rs, true
		}
	}
	return RuleSet{}, false
}
