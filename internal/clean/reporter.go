package clean

import (
	"fmt"
	"io"
	"os"

	"github.com/charmbracelet/lipgloss"
	"github.com/mattn/go-isatty"
)

// Action line styles. Green for completed removals, yellow for dry-run
// previews, faint for the trailing ecosystem hint.
var (
	removedStyle = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("#04B575"))
	previewStyle = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("#E5C07B"))
	detailStyle  = lipgloss.NewStyle().Faint(true)
)

// Reporter writes the per-action status lines ("Removed: ...",
// "Would remove: ...") to its output writer. Styling is applied only
// when the writer is an interactive terminal, so piped output stays
// plain text.
type Reporter struct {
	out    io.Writer
	styled bool
}

// NewReporter creates a Reporter for the given writer, enabling styles
// when the writer is a terminal.
func NewReporter(out io.Writer) *Reporter {
	styled := false
	if f, ok := out.(*os.File); ok {
		styled = isatty.IsTerminal(f.Fd()) || isatty.IsCygwinTerminal(f.Fd())
	}
	return &Reporter{out: out, styled: styled}
}

// Removed reports a successful removal.
func (r *Reporter) Removed(path string) {
	fmt.Fprintf(r.out, "%s %s\n", r.render(removedStyle, "Removed:"), path)
}

// WouldRemove reports a removal skipped in dry-run mode, including which
// rule set matched the enclosing project.
func (r *Reporter) WouldRemove(path, label string) {
	fmt.Fprintf(r.out, "%s %s %s\n",
		r.render(previewStyle, "Would remove:"),
		path,
		r.render(detailStyle, fmt.Sprintf("(%s project)", label)))
}

// render applies the style when styling is enabled.
func (r *Reporter) render(style lipgloss.Style, s string) string {
	if !r.styled {
		return s
	}
	return style.Render(s)
}
