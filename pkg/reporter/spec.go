package reporter

import (
	"io"
	"time"

	"github.com/charmbracelet/log"

	"github.com/dkoosis/pspec/pkg/collect"
	"github.com/dkoosis/pspec/pkg/decorate"
	"github.com/dkoosis/pspec/pkg/model"
	"github.com/dkoosis/pspec/pkg/report"
)

// Spec prints each test as a decorated sentence grouped under a header that
// is printed once per consecutive run of results sharing it.
type Spec struct {
	tw       *TermWriter
	footer   footer
	stats    *report.Stats
	patterns model.PatternConfig
	wrappers []decorate.Wrapper
	logger   *log.Logger

	display    map[string]string // node id -> display id, until reported
	lastHeader string
	headerSet  bool
}

var _ report.Consumer = (*Spec)(nil)

// NewSpec returns a spec-style reporter writing to out.
func NewSpec(out io.Writer, opts Options) *Spec {
	tw := NewTermWriter(out, opts.Width)
	stats := report.NewStats()
	return &Spec{
		tw:       tw,
		footer:   newFooter(out, tw, stats, opts.Color),
		stats:    stats,
		patterns: opts.Patterns,
		wrappers: decorate.Chain(opts.Format, opts.Color),
		logger:   opts.logger(),
		display:  make(map[string]string),
	}
}

// Stats returns the summary statistics recorded so far.
func (s *Spec) Stats() *report.Stats { return s.stats }

// OnCollectionFinished records the display identifier of each item.
func (s *Spec) OnCollectionFinished(items []collect.Item) {
	for _, item := range items {
		if id := collect.DisplayID(item); id != item.NodeID {
			s.display[item.NodeID] = id
		}
	}
}

// OnTestOutcome renders one report.
func (s *Spec) OnTestOutcome(r report.TestReport) {
	s.stats.Record(r)

	displayID, described := s.display[r.NodeID]
	if r.When != report.PhaseSetup {
		// call or teardown is the node's last chance to be rendered
		delete(s.display, r.NodeID)
	}

	if r.When != report.PhaseCall && !r.Skipped() {
		return
	}
	if described {
		r.NodeID = displayID
	}

	line := decorate.Apply(s.result(r), s.wrappers)

	if header := line.Header(); !s.headerSet || header != s.lastHeader {
		s.lastHeader = header
		s.headerSet = true
		s.tw.BlankSep()
		s.tw.Line(header)
	}
	s.tw.Line(line.Render())
}

func (s *Spec) result(r report.TestReport) model.Result {
	res, err := model.FromReport(r, s.patterns)
	if err != nil {
		s.logger.Warn("rendering raw identifier", "id", r.NodeID, "err", err)
		return model.NewResult(r.Outcome, model.Node{Title: r.NodeID, ModuleName: r.NodeID})
	}
	return res
}

// Finish writes the summary footer.
func (s *Spec) Finish(elapsed time.Duration) error {
	s.footer.write(elapsed)
	return s.tw.Err()
}
