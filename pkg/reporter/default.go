package reporter

import (
	"fmt"
	"io"
	"strings"
	"time"

	"github.com/dkoosis/pspec/pkg/collect"
	"github.com/dkoosis/pspec/pkg/report"
)

// Default prints one "<node id> <OUTCOME>" line per test, the way the host
// does in verbose mode. Collected descriptions are ignored.
type Default struct {
	tw     *TermWriter
	footer footer
	stats  *report.Stats
}

var _ report.Consumer = (*Default)(nil)

// NewDefault returns the host-style reporter writing to out.
func NewDefault(out io.Writer, opts Options) *Default {
	tw := NewTermWriter(out, opts.Width)
	stats := report.NewStats()
	return &Default{
		tw:     tw,
		footer: newFooter(out, tw, stats, opts.Color),
		stats:  stats,
	}
}

// Stats returns the summary statistics recorded so far.
func (d *Default) Stats() *report.Stats { return d.stats }

// OnCollectionFinished is a no-op; identifiers are printed unmodified.
func (d *Default) OnCollectionFinished([]collect.Item) {}

// OnTestOutcome prints the report's line.
func (d *Default) OnTestOutcome(r report.TestReport) {
	d.stats.Record(r)
	if r.When != report.PhaseCall && !r.Skipped() {
		return
	}
	d.tw.Line(fmt.Sprintf("%s %s", r.NodeID, strings.ToUpper(r.Outcome)))
}

// Finish writes the summary footer.
func (d *Default) Finish(elapsed time.Duration) error {
	d.footer.write(elapsed)
	return d.tw.Err()
}
