package clean

import (
	"path/filepath"

	"github.com/sirupsen/logrus"
	"github.com/spf13/afero"

	"github.com/mmr-tortoise/begone/internal/rules"
	"github.com/mmr-tortoise/begone/internal/scan"
)

// Summary holds the per-rule-set counters for one cleaning pass.
// It is created when the pass starts, logged when it ends, and then
// discarded; nothing carries over between passes.
type Summary struct {
	// Label is the rule set's display name.
	Label string

	// Removed counts target directories removed, or in dry-run mode,
	// target directories that would have been removed.
	Removed int

	// Failed counts target directories whose removal failed.
	Failed int

	// DryRun records which mode produced the counters, for wording
	// the summary line.
	DryRun bool
}

// Runner applies rule sets beneath a root directory: scan for project
// roots, remove (or report) target directories, log a summary.
type Runner struct {
	fs       afero.Fs
	scanner  *scan.Scanner
	reporter *Reporter
	dryRun   bool
}

// NewRunner creates a Runner. All filesystem access, including the
// recursive deletions, goes through fsys; action lines are written via
// the reporter.
func NewRunner(fsys afero.Fs, reporter *Reporter, dryRun bool) *Runner {
	return &Runner{
		fs:       fsys,
		scanner:  scan.NewScanner(fsys),
		reporter: reporter,
		dryRun:   dryRun,
	}
}

// Run executes one full pass of a rule set under root and returns the
// finalized Summary. Rule sets are independent: Run holds no state
// between calls, so "all" mode is a plain loop over the table.
func (r *Runner) Run(root string, rs rules.RuleSet) Summary {
	logrus.Debugf("Cleaning %s projects in: %s", rs.Label, root)

	sum := Summary{Label: rs.Label, DryRun: r.dryRun}
	r.scanner.ProjectRoots(root, rs, func(dir string) {
		r.cleanRoot(dir, rs, &sum)
	})

	logSummary(sum)
	return sum
}

// cleanRoot handles the target directories of a single matched project
// root. Targets that do not exist are skipped without counting. Only
// names listed in the rule set are ever touched; indicator files are
// never removed.
func (r *Runner) cleanRoot(dir string, rs rules.RuleSet, sum *Summary) {
	for _, target := range rs.Targets {
		path := filepath.Join(dir, target)

		exists, err := afero.Exists(r.fs, path)
		if err != nil || !exists {
			continue
		}

		if r.dryRun {
			r.reporter.WouldRemove(path, rs.Label)
			sum.Removed++
			continue
		}

		if err := r.fs.RemoveAll(path); err != nil {
			// Keep going: the remaining targets and roots are still
			// attempted, and the failure shows up in the summary.
			logrus.Errorf("Failed to remove %s: %v", path, err)
			sum.Failed++
			continue
		}

		r.reporter.Removed(path)
		sum.Removed++
	}
}

// logSummary emits the end-of-pass lines: one info line with the count
// of projects acted upon, a warning when removals failed, or a single
// "nothing found" line when the pass was a no-op.
func logSummary(sum Summary) {
	if sum.Removed == 0 && sum.Failed == 0 {
		logrus.Infof("No %s projects found to clean", sum.Label)
		return
	}

	action := "Removed"
	if sum.DryRun {
		action = "Would remove"
	}
	logrus.Infof("%s %d %s %s", action, sum.Removed, sum.Label, pluralize(sum.Removed, "project"))

	if sum.Failed > 0 {
		logrus.Warnf("Failed to remove %d directories (permission denied or in use)", sum.Failed)
	}
}

// pluralize returns the noun with an "s" appended unless n is exactly 1.
func pluralize(n int, noun string) string {
	if n == 1 {
		return noun
	}
	return noun + "s"
}
