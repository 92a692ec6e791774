// Package reporter renders host test-outcome events as terminal lines.
//
// Spec is the spec-style reporter: every test becomes a sentence under its
// class or module header. Default mirrors the host's own verbose output and
// never rewrites identifiers. Both keep the host's summary statistics so the
// footer stays accurate.
package reporter

import (
	"io"

	"github.com/charmbracelet/log"

	"github.com/dkoosis/pspec/pkg/model"
)

// Options configures a reporter.
type Options struct {
	Patterns model.PatternConfig
	Format   string // "utf8" or "plaintext"
	Color    bool
	Width    int
	Logger   *log.Logger
}

func (o Options) logger() *log.Logger {
	if o.Logger != nil {
		return o.Logger
	}
	return log.New(io.Discard)
}
