package ui

import (
	"fmt"
	"io"

	"github.com/arthur-debert/lazy-scripts/pkg/desktop"
	"github.com/arthur-debert/lazy-scripts/pkg/installer"
	"github.com/arthur-debert/lazy-scripts/pkg/sandbox"
	"github.com/arthur-debert/lazy-scripts/pkg/shellrc"
	"github.com/arthur-debert/lazy-scripts/pkg/stub"
	"github.com/charmbracelet/lipgloss"
)

// Reporter prints one line per install event.
type Reporter struct {
	w      io.Writer
	styled bool
}

var _ installer.Reporter = (*Reporter)(nil)

// NewReporter returns a reporter writing to w. FormatAuto is resolved
// against w.
func NewReporter(w io.Writer, format Format) *Reporter {
	return &Reporter{w: w, styled: Resolve(format, w) == FormatTerminal}
}

func (r *Reporter) PathRegistered(p shellrc.Profile, changed bool) {
	if changed {
		r.line(createdStyle, "path", "added %s to %s", p.ExportLine, p.RCFile)
		return
	}
	r.line(mutedStyle, "path", "already registered in %s", p.RCFile)
}

func (r *Reporter) Skipped(fileName, reason string) {
	r.line(skipStyle, "skip", "%s (%s)", fileName, reason)
}

func (r *Reporter) Configuration(s installer.Script) {
	r.line(labelStyle, "config", "%s %s", s.FileName, s.Metadata.String())
}

func (r *Reporter) SandboxCreated(stubName string, sb sandbox.Sandbox) {
	r.line(createdStyle, "zshrc", "%s -> %s", stubName, sb.Dir)
}

func (r *Reporter) StubWritten(s stub.Stub) {
	r.line(createdStyle, "stub", "%s", s.Name)
}

func (r *Reporter) DesktopEntryWritten(e desktop.Entry) {
	r.line(createdStyle, "desktop", "%s", e.Name)
}

// Summary prints the totals of a finished run.
func (r *Reporter) Summary(result *installer.Result) {
	text := fmt.Sprintf("%s, %s, %d skipped",
		plural(len(result.Stubs), "stub", "stubs"),
		plural(len(result.DesktopEntries), "desktop entry", "desktop entries"),
		result.Skipped)
	if r.styled {
		text = summaryStyle.Render(text)
	}
	_, _ = fmt.Fprintln(r.w, text)
}

func (r *Reporter) line(style lipgloss.Style, label, format string, args ...interface{}) {
	label = fmt.Sprintf("%-8s", label)
	if r.styled {
		label = style.Render(label)
	}
	_, _ = fmt.Fprintf(r.w, "%s %s\n", label, fmt.Sprintf(format, args...))
}

func plural(n int, one, many string) string {
	if n == 1 {
		return fmt.Sprintf("%d %s", n, one)
	}
	return fmt.Sprintf("%d %s", n, many)
}
