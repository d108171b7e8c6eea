// Package rules defines the cleaning rule sets for each supported
// ecosystem.
//
// A RuleSet pairs a list of indicator patterns (file names that mark a
// directory as a project root, e.g. "Cargo.toml" or "*.csproj") with a
// list of target directory names that are safe to remove beneath such a
// root (e.g. "target", "node_modules").
//
// The built-in table is fixed data. There is deliberately no way to load
// rules from a config file: the safety of the tool rests on the rule sets
// being known and reviewed.
package rules
