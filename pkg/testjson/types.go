// Package testjson reads go test -json NDJSON streams.
package testjson

import (
	"strings"
	"time"
)

// Actions emitted by go test -json.
const (
	ActionStart  = "start"
	ActionRun    = "run"
	ActionPause  = "pause"
	ActionCont   = "cont"
	ActionPass   = "pass"
	ActionFail   = "fail"
	ActionSkip   = "skip"
	ActionOutput = "output"
	ActionBench  = "bench"

	// Build events (go 1.24+) carry ImportPath instead of Package.
	ActionBuildOutput = "build-output"
	ActionBuildFail   = "build-fail"
)

// TestEvent represents a single event from go test -json output.
type TestEvent struct {
	Time    time.Time `json:"Time"`
	Action  string    `json:"Action"`
	Package string    `json:"Package"`
	Test    string    `json:"Test"`
	Elapsed float64   `json:"Elapsed"`
	Output  string    `json:"Output"`

	ImportPath  string `json:"ImportPath,omitempty"`
	FailedBuild string `json:"FailedBuild,omitempty"`
}

// ProcessFunc handles one event.
type ProcessFunc func(TestEvent)

// Terminal reports whether the event ends a test or package.
func (e TestEvent) Terminal() bool {
	switch e.Action {
	case ActionPass, ActionFail, ActionSkip:
		return true
	}
	return false
}

// Duration returns Elapsed as a time.Duration.
func (e TestEvent) Duration() time.Duration {
	return time.Duration(e.Elapsed * float64(time.Second))
}

// TestPath splits a test name into its top-level function and subtest path.
// "TestA/b/c" returns "TestA" and ["b", "c"].
func (e TestEvent) TestPath() (string, []string) {
	parts := strings.Split(e.Test, "/")
	return parts[0], parts[1:]
}
