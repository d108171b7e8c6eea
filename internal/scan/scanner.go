package scan

import (
	"os"
	"path/filepath"

	"github.com/spf13/afero"

	"github.com/mmr-tortoise/begone/internal/rules"
)

// Scanner walks directory trees and classifies project roots.
//
// All filesystem access goes through the afero.Fs handed to NewScanner,
// so the scanner works identically against the real disk and the
// in-memory filesystem used in tests.
type Scanner struct {
	fs afero.Fs
}

// NewScanner creates a Scanner backed by the given filesystem.
func NewScanner(fsys afero.Fs) *Scanner {
	return &Scanner{fs: fsys}
}

// ProjectRoots walks every directory under (and including) root and
// calls visit, in walk order, for each directory that matches at least
// one indicator pattern of the rule set.
//
// Entries that fail to stat or list are skipped; the walk never aborts
// on a single unreadable entry. Each directory is visited exactly once
// per call, and classification is computed fresh for every directory —
// a match is never inherited from a parent or cached across calls.
func (s *Scanner) ProjectRoots(root string, rs rules.RuleSet, visit func(dir string)) {
	_ = afero.Walk(s.fs, root, func(path string, info os.FileInfo, err error) error {
		if err != nil {
			// Unreadable or concurrently removed entry. Skip it and
			// keep walking the rest of the tree.
			return nil
		}
		if !info.IsDir() {
			return nil
		}
		if s.IsProjectRoot(path, rs) {
			visit(path)
		}
		return nil
	})
}

// IsProjectRoot reports whether the directory satisfies at least one of
// the rule set's indicator patterns. Patterns are evaluated in order and
// evaluation stops at the first match.
func (s *Scanner) IsProjectRoot(dir string, rs rules.RuleSet) bool {
	for _, p := range rs.Indicators {
		if s.matches(dir, p) {
			return true
		}
	}
	return false
}

// matches evaluates one indicator pattern against one directory.
//
// A literal pattern matches when an entry with exactly that name exists
// directly under dir. A suffix wildcard matches when any immediate child
// name carries the suffix; if the directory cannot be listed, the
// wildcard reports no match rather than an error.
func (s *Scanner) matches(dir string, p rules.Pattern) bool {
	if p.Kind == rules.Literal {
		ok, err := afero.Exists(s.fs, filepath.Join(dir, p.Value))
		return err == nil && ok
	}

	entries, err := afero.ReadDir(s.fs, dir)
	if err != nil {
		return false
	}
	for _, entry := range entries {
		if p.MatchName(entry.Name()) {
			return true
		}
	}
	return false
}
