// Package decorate layers rendering-only transformations over results:
// UTF-8 glyphs instead of bracket notation, and ANSI colour by outcome.
// A decorator embeds the Line it wraps, so everything except Render is
// answered by the innermost result.
package decorate

import (
	"fmt"

	"github.com/fatih/color"

	"github.com/dkoosis/pspec/pkg/report"
)

// Line is a renderable test result.
type Line interface {
	Outcome() string
	Title() string
	Header() string
	Render() string
}

// Wrapper decorates a Line.
type Wrapper func(Line) Line

// Format values for the output style.
const (
	FormatUTF8      = "utf8"
	FormatPlaintext = "plaintext"
)

var glyphByOutcome = map[string]string{
	report.Passed:  "✓",
	report.Failed:  "✗",
	report.Skipped: "»",
}

const defaultGlyph = "»"

var colorByOutcome = map[string]*color.Color{
	report.Passed:  forced(color.FgHiGreen),
	report.Failed:  forced(color.FgHiRed),
	report.Skipped: forced(color.FgHiYellow),
}

// forced returns a colour that ignores fatih/color's terminal detection;
// whether colour is wanted at all is decided by Chain.
func forced(attr color.Attribute) *color.Color {
	c := color.New(attr)
	c.EnableColor()
	return c
}

type utf8Line struct{ Line }

// UTF8 renders inner as " {glyph} {title}".
func UTF8(inner Line) Line { return utf8Line{inner} }

func (l utf8Line) Render() string {
	glyph, ok := glyphByOutcome[l.Outcome()]
	if !ok {
		glyph = defaultGlyph
	}
	return fmt.Sprintf(" %s %s", glyph, l.Title())
}

type colorLine struct{ Line }

// Color wraps whatever inner renders in the colour for its outcome.
// Unknown outcomes are left uncoloured.
func Color(inner Line) Line { return colorLine{inner} }

func (l colorLine) Render() string {
	text := l.Line.Render()
	c, ok := colorByOutcome[l.Outcome()]
	if !ok {
		return text
	}
	return c.Sprint(text)
}

// Chain returns the active wrappers, innermost first: UTF8 unless the format
// is plaintext, then Color when colour is enabled.
func Chain(format string, colorEnabled bool) []Wrapper {
	var ws []Wrapper
	if format != FormatPlaintext {
		ws = append(ws, UTF8)
	}
	if colorEnabled {
		ws = append(ws, Color)
	}
	return ws
}

// Apply wraps l with each wrapper in order.
func Apply(l Line, wrappers []Wrapper) Line {
	for _, w := range wrappers {
		l = w(l)
	}
	return l
}
