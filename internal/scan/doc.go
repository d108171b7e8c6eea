// Package scan implements the directory traversal and project-root
// classification for the begone CLI.
//
// The Scanner walks a filesystem subtree and classifies every directory
// against a rule set's indicator patterns. Classification looks only at
// a directory's immediate children; nested projects are detected
// independently because the walk always descends, whether or not the
// current directory matched.
//
// Traversal is best-effort: unreadable entries are skipped and the walk
// continues, so a single permission error never aborts a pass.
package scan
