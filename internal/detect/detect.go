// Package detect sniffs stdin to determine the input format.
package detect

import (
	"bytes"
	"encoding/json"
)

// Format represents a recognized input format.
type Format int

const (
	Unknown    Format = iota
	GoTestJSON        // go test -json NDJSON stream
)

func (f Format) String() string {
	if f == GoTestJSON {
		return "go test -json"
	}
	return "unknown"
}

var validActions = map[string]bool{
	"start": true, "run": true, "pause": true, "cont": true,
	"pass": true, "bench": true, "fail": true, "output": true, "skip": true,
	// go 1.24+ reports build failures before any test event
	"build-output": true, "build-fail": true,
}

// Sniff examines the first bytes of input to determine format.
// Input must contain at least the first line.
func Sniff(data []byte) Format {
	data = bytes.TrimLeft(data, " \t\r\n")
	if len(data) == 0 || data[0] != '{' {
		return Unknown
	}
	if isGoTestJSON(data) {
		return GoTestJSON
	}
	return Unknown
}

func isGoTestJSON(data []byte) bool {
	firstLine, _, _ := bytes.Cut(data, []byte{'\n'})

	var event struct {
		Action string `json:"Action"`
	}
	if err := json.Unmarshal(firstLine, &event); err != nil {
		return false
	}
	return validActions[event.Action]
}
