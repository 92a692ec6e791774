// Package gotest adapts the go test -json event stream to the reporter
// contract in package report.
//
// go test has no separate collection phase, so each test is collected on its
// first "run" event. A test that ran subtests is treated as a class: its own
// terminal event is reported as a teardown, and its subtests are reported
// as calls under <pkg>::<TestName>::()::<subtest>. A subtest named like
// "k=v,k2=v2" directly under a test is treated as a parametrization of that
// test instead.
package gotest

import (
	"io"
	"strings"

	"github.com/charmbracelet/log"

	"github.com/dkoosis/pspec/pkg/collect"
	"github.com/dkoosis/pspec/pkg/report"
	"github.com/dkoosis/pspec/pkg/testjson"
)

const (
	sep         = "::"
	classMarker = "()"
	subtestSep  = " / "
	// packageLeaf names the pseudo-test that carries package-level failures.
	packageLeaf = "[package]"
)

var outcomeByAction = map[string]string{
	testjson.ActionPass: report.Passed,
	testjson.ActionFail: report.Failed,
	testjson.ActionSkip: report.Skipped,
}

// Adapter forwards go test -json events to a report.Consumer.
type Adapter struct {
	consumer report.Consumer
	docs     collect.Docs
	logger   *log.Logger
	packages map[string]*pkgState
	builds   map[string][]string // build-output by import path
}

type pkgState struct {
	tests  map[string]*testState
	ran    int // tests that reached a terminal event
	failed int
	output []string // package-level output
}

type testState struct {
	nodeID      string
	children    bool
	childFailed bool
	output      []string
}

// Option configures an Adapter.
type Option func(*Adapter)

// WithDocs supplies test descriptions scanned from source.
func WithDocs(docs collect.Docs) Option {
	return func(a *Adapter) { a.docs = docs }
}

// WithLogger sets the diagnostics logger.
func WithLogger(l *log.Logger) Option {
	return func(a *Adapter) { a.logger = l }
}

// New returns an Adapter delivering to consumer.
func New(consumer report.Consumer, opts ...Option) *Adapter {
	a := &Adapter{
		consumer: consumer,
		packages: make(map[string]*pkgState),
		builds:   make(map[string][]string),
	}
	for _, opt := range opts {
		opt(a)
	}
	if a.logger == nil {
		a.logger = log.New(io.Discard)
	}
	return a
}

func (a *Adapter) pkg(name string) *pkgState {
	if p, ok := a.packages[name]; ok {
		return p
	}
	p := &pkgState{tests: make(map[string]*testState)}
	a.packages[name] = p
	return p
}

// Handle processes one event. It is a testjson.ProcessFunc.
func (a *Adapter) Handle(e testjson.TestEvent) {
	switch {
	case e.Action == testjson.ActionRun:
		a.handleRun(e)
	case e.Action == testjson.ActionOutput:
		a.handleOutput(e)
	case e.Action == testjson.ActionBuildOutput:
		if line := strings.TrimRight(e.Output, "\n"); line != "" {
			a.builds[e.ImportPath] = append(a.builds[e.ImportPath], line)
		}
	case e.Terminal() && e.Test != "":
		a.handleTestEnd(e)
	case e.Terminal():
		a.handlePackageEnd(e)
	}
	// start, pause, cont, bench and build-fail have no display impact
}

func (a *Adapter) handleRun(e testjson.TestEvent) {
	if e.Test == "" {
		return
	}
	p := a.pkg(e.Package)
	if _, seen := p.tests[e.Test]; seen {
		return
	}
	if parent, ok := p.tests[parentName(e.Test)]; ok {
		parent.children = true
	}

	item := a.collectItem(e)
	p.tests[e.Test] = &testState{nodeID: item.NodeID}
	a.consumer.OnCollectionFinished([]collect.Item{item})
}

// collectItem builds the collected item for the test in e.
func (a *Adapter) collectItem(e testjson.TestEvent) collect.Item {
	fn, sub := e.TestPath()
	doc := a.docs.Lookup(e.Package, fn)

	if len(sub) == 0 {
		return collect.Item{NodeID: e.Package + sep + fn, Name: fn, Doc: doc}
	}
	if len(sub) == 1 {
		if params, ok := collect.ParseParams(sub[0]); ok {
			return collect.Item{
				NodeID: e.Package + sep + fn + "[" + sub[0] + "]",
				Name:   fn,
				Doc:    doc,
				Params: params,
			}
		}
	}
	return collect.Item{
		NodeID:   e.Package + sep + fn + sep + classMarker + sep + strings.Join(sub, subtestSep),
		Name:     sub[len(sub)-1],
		ClassDoc: doc,
	}
}

func (a *Adapter) handleOutput(e testjson.TestEvent) {
	line := strings.TrimRight(e.Output, "\n")
	if line == "" {
		return
	}
	p := a.pkg(e.Package)
	if e.Test == "" {
		p.output = append(p.output, line)
		return
	}
	if ts, ok := p.tests[e.Test]; ok {
		ts.output = append(ts.output, line)
	}
}

func (a *Adapter) handleTestEnd(e testjson.TestEvent) {
	p := a.pkg(e.Package)
	ts, ok := p.tests[e.Test]
	if !ok {
		// terminal event without a run event, e.g. a truncated stream
		ts = &testState{nodeID: a.collectItem(e).NodeID}
	}
	delete(p.tests, e.Test)

	r := report.TestReport{
		NodeID:   ts.nodeID,
		Outcome:  outcomeByAction[e.Action],
		When:     report.PhaseCall,
		Duration: e.Duration(),
	}
	if r.Failed() || r.Skipped() {
		r.Longrepr = filterBoilerplate(ts.output)
	}
	if ts.children {
		r.When = report.PhaseTeardown
		if ts.childFailed && r.Failed() && len(r.Longrepr) == 0 {
			// go test fails every ancestor of a failed subtest; with no
			// output of its own the failure is the subtest's, already
			// reported.
			r.Outcome = report.Passed
			r.Longrepr = nil
		}
	} else {
		p.ran++
	}
	if r.Failed() {
		p.failed++
		if parent, ok := p.tests[parentName(e.Test)]; ok {
			parent.childFailed = true
		}
	}
	a.consumer.OnTestOutcome(r)
}

func (a *Adapter) handlePackageEnd(e testjson.TestEvent) {
	p := a.pkg(e.Package)
	defer delete(a.packages, e.Package)

	if e.Action != testjson.ActionFail || p.failed > 0 {
		return
	}

	// The package failed without a failing test: a build error, a TestMain
	// failure or a panic outside any test.
	when := report.PhaseTeardown
	if p.ran == 0 {
		when = report.PhaseSetup
	}
	longrepr := filterBoilerplate(p.output)
	if e.FailedBuild != "" {
		longrepr = append(a.builds[e.FailedBuild], longrepr...)
		delete(a.builds, e.FailedBuild)
	}
	a.logger.Warn("package failed outside of a test", "package", e.Package, "phase", when, "build", e.FailedBuild)
	a.consumer.OnTestOutcome(report.TestReport{
		NodeID:   e.Package + sep + packageLeaf,
		Outcome:  report.Failed,
		When:     when,
		Duration: e.Duration(),
		Longrepr: longrepr,
	})
}

// parentName returns the name of the test that ran test, or "" for a
// top-level test.
func parentName(test string) string {
	if i := strings.LastIndex(test, "/"); i >= 0 {
		return test[:i]
	}
	return ""
}

// filterBoilerplate drops go test's own progress lines.
func filterBoilerplate(lines []string) []string {
	var out []string
	for _, l := range lines {
		trimmed := strings.TrimSpace(l)
		if strings.HasPrefix(trimmed, "=== ") ||
			strings.HasPrefix(trimmed, "--- PASS") ||
			strings.HasPrefix(trimmed, "--- FAIL") ||
			strings.HasPrefix(trimmed, "--- SKIP") ||
			trimmed == "FAIL" || trimmed == "PASS" ||
			strings.HasPrefix(trimmed, "FAIL\t") || strings.HasPrefix(trimmed, "ok  \t") {
			continue
		}
		out = append(out, l)
	}
	return out
}
