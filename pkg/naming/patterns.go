package naming

import "strings"

// ruleKind says where a stripping rule is anchored.
type ruleKind int

const (
	prefixRule ruleKind = iota
	suffixRule
)

type rule struct {
	kind ruleKind
	text string
}

// RemovePatterns strips each glob-style pattern from s, in order, each rule
// operating on the result of the previous one:
//
//	"*suffix"    removes suffix at the end
//	"prefix*"    removes prefix at the start
//	"head*tail"  removes head at the start, then tail at the end
//	"literal"    removes literal at the start only
//
// Only "*" is special. Every rule removes at most one occurrence.
func RemovePatterns(s string, patterns []string) string {
	for _, p := range patterns {
		for _, r := range expand(p) {
			s = r.apply(s)
		}
	}
	return s
}

// expand turns one glob pattern into the anchored rules that implement it.
func expand(pattern string) []rule {
	switch {
	case strings.HasPrefix(pattern, "*"):
		return []rule{{kind: suffixRule, text: strings.ReplaceAll(pattern, "*", "")}}
	case strings.HasSuffix(pattern, "*"):
		return []rule{{kind: prefixRule, text: strings.ReplaceAll(pattern, "*", "")}}
	case strings.Contains(pattern, "*"):
		head, tail, _ := strings.Cut(pattern, "*")
		return []rule{
			{kind: prefixRule, text: head},
			{kind: suffixRule, text: strings.ReplaceAll(tail, "*", "")},
		}
	default:
		// Literal patterns only ever strip a prefix.
		return []rule{{kind: prefixRule, text: pattern}}
	}
}

func (r rule) apply(s string) string {
	if r.text == "" {
		return s
	}
	if r.kind == suffixRule {
		return strings.TrimSuffix(s, r.text)
	}
	return strings.TrimPrefix(s, r.text)
}
