package reporter

import (
	"io"
	"time"

	"github.com/charmbracelet/lipgloss"
	"github.com/muesli/termenv"

	"github.com/dkoosis/pspec/pkg/report"
)

// footer renders the host summary shared by every reporter: failure details
// followed by the counts line.
type footer struct {
	tw    *TermWriter
	stats *report.Stats

	pass lipgloss.Style
	fail lipgloss.Style
	warn lipgloss.Style
	head lipgloss.Style
}

func newFooter(out io.Writer, tw *TermWriter, stats *report.Stats, colorEnabled bool) footer {
	r := lipgloss.NewRenderer(out)
	if colorEnabled {
		r.SetColorProfile(termenv.ANSI)
	} else {
		r.SetColorProfile(termenv.Ascii)
	}
	return footer{
		tw:    tw,
		stats: stats,
		pass:  r.NewStyle().Foreground(lipgloss.Color("2")).Bold(true),
		fail:  r.NewStyle().Foreground(lipgloss.Color("1")).Bold(true),
		warn:  r.NewStyle().Foreground(lipgloss.Color("3")).Bold(true),
		head:  r.NewStyle().Bold(true),
	}
}

func (f footer) write(elapsed time.Duration) {
	f.section("FAILURES", f.stats.Reports(report.CategoryFailed))
	f.section("ERRORS", f.stats.Reports(report.CategoryError))

	style := f.pass
	switch {
	case f.stats.Failed():
		style = f.fail
	case f.stats.Count(report.CategoryPassed) == 0:
		style = f.warn
	}
	f.tw.BlankSep()
	f.tw.Line(style.Render(f.tw.SepLine("=", f.stats.Summary(elapsed))))
}

func (f footer) section(title string, reports []report.TestReport) {
	if len(reports) == 0 {
		return
	}
	f.tw.BlankSep()
	f.tw.Line(f.head.Render(f.tw.SepLine("=", title)))
	for _, r := range reports {
		f.tw.Line(f.fail.Render(f.tw.SepLine("_", r.NodeID)))
		for _, l := range r.Longrepr {
			f.tw.Line(l)
		}
	}
}
