// Package collect derives the display identifier of a collected test from
// its description (a doc comment) and parametrization, before any outcome is
// reported. Only the displayed identifier changes; the test's identity does
// not.
package collect

import (
	"strings"
)

const (
	separator   = "::"
	classMarker = "()"
)

// Item is one collected test.
type Item struct {
	NodeID   string  // host identifier, <module>::[<class>::()::]<leaf>
	Name     string  // function name the test was declared with
	Doc      string  // description of the test function, if any
	ClassDoc string  // description of the enclosing class, if any
	Params   []Param // parametrization values, nil when not parametrized
}

// DisplayID returns the identifier to render for item.
func DisplayID(item Item) string {
	parts := strings.Split(item.NodeID, separator)
	if len(parts) < 2 {
		return item.NodeID
	}

	last := len(parts) - 1
	if doc := strings.TrimSpace(item.Doc); doc != "" {
		parts[last] = describe(doc, item)
	} else if len(item.Params) > 0 {
		parts[last] = FormatParametrizedName(item.Name, item.Params)
	}

	if doc := strings.TrimSpace(item.ClassDoc); doc != "" && hasClass(parts) {
		parts[last-2] = doc
	}
	return strings.Join(parts, separator)
}

func describe(doc string, item Item) string {
	if len(item.Params) == 0 {
		return doc
	}
	text, err := Interpolate(doc, item.Params)
	if err != nil {
		return FormatParametrizedName(item.Name, item.Params)
	}
	return text
}

func hasClass(parts []string) bool {
	return len(parts) >= 3 && strings.Contains(parts[len(parts)-2], classMarker)
}
