// Package clean implements the action executor for the begone CLI.
//
// For every project root found by the scanner, the Runner checks each of
// the rule set's target directory names and either removes the directory
// or, in dry-run mode, reports what would be removed. Outcomes are
// aggregated into a per-rule-set Summary that is logged when the pass
// finishes.
//
// Deletion failures (permission denied, directory in use, races with
// other processes) are logged and counted, then the run moves on — a
// single failed target never aborts the pass.
package clean
