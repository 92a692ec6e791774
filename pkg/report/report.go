// Package report defines the contract between the host test runner and a
// reporter: ordered test-outcome events plus the summary statistics the host
// footer is built from.
package report

import (
	"time"

	"github.com/dkoosis/pspec/pkg/collect"
)

// Outcome strings reported by the host. Other values are passed through
// verbatim and rendered with the default glyph.
const (
	Passed  = "passed"
	Failed  = "failed"
	Skipped = "skipped"
)

// Phase identifies which part of a test's lifecycle a report belongs to.
type Phase string

const (
	PhaseSetup    Phase = "setup"
	PhaseCall     Phase = "call"
	PhaseTeardown Phase = "teardown"
)

// TestReport is one test-outcome event.
type TestReport struct {
	NodeID   string
	Outcome  string
	When     Phase
	Duration time.Duration
	Longrepr []string // failure output, if any
}

// Skipped reports whether the test was skipped in this phase.
func (r TestReport) Skipped() bool { return r.Outcome == Skipped }

// Failed reports whether the test failed in this phase.
func (r TestReport) Failed() bool { return r.Outcome == Failed }

// Consumer receives host events in arrival order. Implementations must not
// reorder or buffer them.
type Consumer interface {
	OnCollectionFinished(items []collect.Item)
	OnTestOutcome(r TestReport)
	Finish(elapsed time.Duration) error
}
