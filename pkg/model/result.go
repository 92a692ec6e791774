package model

import (
	"fmt"

	"github.com/dkoosis/pspec/pkg/report"
)

var bracketByOutcome = map[string]string{
	report.Passed:  "[x]",
	report.Failed:  "[ ]",
	report.Skipped: ">>>",
}

const defaultBracket = ">>>"

// Result pairs an outcome with the node it belongs to. Results are never
// mutated; decoration wraps them instead.
type Result struct {
	outcome string
	node    Node
}

// NewResult returns a Result for outcome and node.
func NewResult(outcome string, node Node) Result {
	return Result{outcome: outcome, node: node}
}

// FromReport builds a Result from a host report.
func FromReport(r report.TestReport, cfg PatternConfig) (Result, error) {
	node, err := ParseNode(r.NodeID, cfg)
	if err != nil {
		return Result{}, err
	}
	return NewResult(r.Outcome, node), nil
}

// Outcome returns the outcome string as reported by the host.
func (r Result) Outcome() string { return r.outcome }

// Node returns the parsed node.
func (r Result) Node() Node { return r.node }

// Title returns the node title.
func (r Result) Title() string { return r.node.Title }

// Header is the grouping label: the class name when present, else the module.
func (r Result) Header() string {
	if r.node.HasClass && r.node.ClassName != "" {
		return r.node.ClassName
	}
	return r.node.ModuleName
}

// Render returns the plaintext line, e.g. " [x] a thing".
func (r Result) Render() string {
	bracket, ok := bracketByOutcome[r.outcome]
	if !ok {
		bracket = defaultBracket
	}
	return fmt.Sprintf(" %s %s", bracket, r.node)
}

// String implements fmt.Stringer.
func (r Result) String() string { return r.Render() }

// GoString returns a printable representation.
func (r Result) GoString() string {
	return fmt.Sprintf("Result(outcome=%q, node=%#v)", r.outcome, r.node)
}
