package ui

import (
	"fmt"
	"io"
	"strings"

	"github.com/arthur-debert/dotlink/pkg/core"
	"github.com/arthur-debert/dotlink/pkg/paths"
	"github.com/arthur-debert/dotlink/pkg/types"
	"github.com/arthur-debert/dotlink/pkg/ui/styles"
	"github.com/charmbracelet/lipgloss"
)

// Column widths fit the longest category (non-link) and detail (overwrite).
const (
	categoryWidth = 8
	detailWidth   = 9
)

// TerminalReporter writes one aligned line per action:
//
//	link     create    ~/.tmux.conf -> ~/dotfiles/tmux.conf
type TerminalReporter struct {
	out     io.Writer
	homeDir string
	styles  *styles.Registry
	err     error
}

// NewTerminalReporter creates a line reporter. When color is false the
// output carries no escape sequences at all.
func NewTerminalReporter(out io.Writer, homeDir string, color bool) (*TerminalReporter, error) {
	reg := styles.Plain()
	if color {
		var err error
		reg, err = styles.New(lipgloss.NewRenderer(out))
		if err != nil {
			return nil, err
		}
	}
	return &TerminalReporter{out: out, homeDir: homeDir, styles: reg}, nil
}

func (r *TerminalReporter) Report(action types.Action) {
	category := r.styles.Render(categoryStyle(action.Category), pad(string(action.Category), categoryWidth))
	detail := r.styles.Render(detailStyle(action.Detail), pad(string(action.Detail), detailWidth))

	var target string
	switch {
	case action.Destination != "" && action.Source != "":
		target = r.path(action.Destination) + " " + r.styles.Render("Arrow", "->") + " " + r.path(action.Source)
	case action.Destination != "":
		target = r.path(action.Destination)
	default:
		target = r.path(action.Source)
	}

	r.printf("%s %s %s\n", category, detail, target)
}

func (r *TerminalReporter) Command(line string) {
	r.printf("%s\n", r.styles.Render("Shell", "  $ "+line))
}

// Finish prints the summary line, for example
//
//	install: 2 link/create, 1 non-link/create (dry run)
func (r *TerminalReporter) Finish(result *core.RunResult) error {
	r.printf("%s\n", r.styles.Render("Summary", Summary(result)))
	return r.err
}

func (r *TerminalReporter) RenderError(err error) error {
	r.printf("%s %v\n", r.styles.Render("Error", "Error:"), err)
	return r.err
}

func (r *TerminalReporter) path(p string) string {
	return r.styles.Render("Path", paths.FormatPath(p, r.homeDir))
}

// printf keeps the first write error; Report cannot return one.
func (r *TerminalReporter) printf(format string, args ...interface{}) {
	if r.err != nil {
		return
	}
	_, r.err = fmt.Fprintf(r.out, format, args...)
}

// Summary renders the counts of result in order of first appearance.
func Summary(result *core.RunResult) string {
	var b strings.Builder
	b.WriteString(string(result.Mode))
	b.WriteString(": ")

	if len(result.Actions) == 0 {
		b.WriteString("nothing to do")
	} else {
		seen := make(map[string]bool)
		var parts []string
		for _, a := range result.Actions {
			key := a.Key()
			if seen[key] {
				continue
			}
			seen[key] = true
			parts = append(parts, fmt.Sprintf("%d %s", result.Counts[key], key))
		}
		b.WriteString(strings.Join(parts, ", "))
	}

	if result.RunMode.DryRun {
		b.WriteString(" (dry run)")
	}
	return b.String()
}

func pad(s string, width int) string {
	if len(s) >= width {
		return s
	}
	return s + strings.Repeat(" ", width-len(s))
}

func categoryStyle(c types.Category) string {
	switch c {
	case types.CategoryLink:
		return "Link"
	case types.CategoryNonLink:
		return "NonLink"
	case types.CategoryEntry:
		return "Entry"
	case types.CategoryCommand:
		return "Command"
	}
	return ""
}

// detailStyle maps a detail to its style name: "create" -> "Create".
func detailStyle(d types.Detail) string {
	if d == "" {
		return ""
	}
	return strings.ToUpper(string(d[:1])) + string(d[1:])
}

var _ Reporter = (*TerminalReporter)(nil)
