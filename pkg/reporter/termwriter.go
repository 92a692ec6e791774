package reporter

import (
	"fmt"
	"io"
	"strings"

	"github.com/mattn/go-runewidth"
)

// TermWriter is the single point of report output. All lines flow through
// it; nothing else writes to the output stream while a run is reported.
type TermWriter struct {
	out   io.Writer
	width int
	err   error // first write error
}

// NewTermWriter returns a writer for out, wrapping separators at width
// columns (80 when width is not positive).
func NewTermWriter(out io.Writer, width int) *TermWriter {
	if width <= 0 {
		width = 80
	}
	return &TermWriter{out: out, width: width}
}

// Line writes s followed by a newline.
func (w *TermWriter) Line(s string) {
	if w.err != nil {
		return
	}
	if _, err := fmt.Fprintln(w.out, s); err != nil {
		w.err = err
	}
}

// BlankSep writes an empty separator line.
func (w *TermWriter) BlankSep() { w.Line("") }

// SepLine returns a full-width line of char with title centred in it,
// e.g. "===== 3 passed in 0.10s =====".
func (w *TermWriter) SepLine(char, title string) string {
	if char == "" {
		char = "="
	}
	if title == "" {
		return strings.Repeat(char, w.width/runewidth.StringWidth(char))
	}

	title = " " + title + " "
	fill := w.width - runewidth.StringWidth(title)
	if fill < 2 {
		fill = 2
	}
	charWidth := runewidth.StringWidth(char)
	left := (fill / 2) / charWidth
	right := (fill - fill/2) / charWidth
	return strings.Repeat(char, left) + title + strings.Repeat(char, right)
}

// Err returns the first error encountered while writing.
func (w *TermWriter) Err() error { return w.err }
