// Package model parses test identifiers into display units and pairs them
// with outcomes.
package model

import (
	"errors"
	"fmt"
	"regexp"
	"strconv"
	"strings"

	"github.com/dkoosis/pspec/pkg/naming"
)

// ErrMalformedIdentifier is returned for identifiers with fewer than two
// "::"-separated segments.
var ErrMalformedIdentifier = errors.New("malformed test identifier")

// Separator joins identifier segments.
const Separator = "::"

// classMarker in the second-to-last segment marks an enclosing class.
const classMarker = "()"

// PatternConfig holds the naming-convention globs stripped before humanizing.
type PatternConfig struct {
	Files     []string
	Functions []string
	Classes   []string
}

// Node is the display unit of one test.
type Node struct {
	Title      string
	ClassName  string
	HasClass   bool
	ModuleName string
}

// ParseNode parses an identifier of the form
// <module>::[<class>::()::]<function>.
func ParseNode(id string, cfg PatternConfig) (Node, error) {
	parts := strings.Split(id, Separator)
	if len(parts) < 2 {
		return Node{}, fmt.Errorf("%w: %q", ErrMalformedIdentifier, id)
	}

	n := Node{
		Title:      naming.FormatTitle(parts[len(parts)-1], cfg.Functions),
		ModuleName: naming.FormatModuleName(parts[0], cfg.Files),
	}
	if len(parts) >= 3 && strings.Contains(parts[len(parts)-2], classMarker) {
		n.ClassName = naming.FormatClassName(parts[len(parts)-3], cfg.Classes)
		n.HasClass = true
	}
	return n, nil
}

// String returns the title.
func (n Node) String() string { return n.Title }

// GoString returns a printable representation that ParseNodeRepr reads back.
func (n Node) GoString() string {
	class := "nil"
	if n.HasClass {
		class = strconv.Quote(n.ClassName)
	}
	return fmt.Sprintf("Node(title=%s, class_name=%s, module_name=%s)",
		strconv.Quote(n.Title), class, strconv.Quote(n.ModuleName))
}

var reprRe = regexp.MustCompile(
	`^Node\(title=("(?:[^"\\]|\\.)*"), class_name=(nil|"(?:[^"\\]|\\.)*"), module_name=("(?:[^"\\]|\\.)*")\)$`,
)

// ParseNodeRepr reconstructs a Node from its GoString form.
func ParseNodeRepr(s string) (Node, error) {
	m := reprRe.FindStringSubmatch(s)
	if m == nil {
		return Node{}, fmt.Errorf("parsing node representation %q: unrecognized form", s)
	}

	var n Node
	var err error
	if n.Title, err = strconv.Unquote(m[1]); err != nil {
		return Node{}, fmt.Errorf("parsing node title: %w", err)
	}
	if m[2] != "nil" {
		if n.ClassName, err = strconv.Unquote(m[2]); err != nil {
			return Node{}, fmt.Errorf("parsing node class name: %w", err)
		}
		n.HasClass = true
	}
	if n.ModuleName, err = strconv.Unquote(m[3]); err != nil {
		return Node{}, fmt.Errorf("parsing node module name: %w", err)
	}
	return n, nil
}
