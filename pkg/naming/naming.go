// Package naming turns test identifiers into readable phrases.
//
// Identifiers are first stripped of the naming conventions the test runner
// uses to discover them (Test*, *_test.go, ...) and then humanized: underscores
// become spaces and CamelCase class names are split into words, leaving
// abbreviations such as HTTP intact.
package naming

import (
	"strings"
	"unicode"
)

// FormatTitle strips patterns from raw, replaces underscores with spaces and
// trims the result.
func FormatTitle(raw string, patterns []string) string {
	return strings.TrimSpace(strings.ReplaceAll(RemovePatterns(raw, patterns), "_", " "))
}

// FormatClassName strips patterns from raw and splits CamelCase into words.
// A name that already contains a space is considered humanized and is only
// trimmed.
func FormatClassName(raw string, patterns []string) string {
	name := RemovePatterns(raw, patterns)
	if strings.Contains(name, " ") {
		return strings.TrimSpace(name)
	}

	runes := []rune(name)
	var sb strings.Builder
	for i, r := range runes {
		if unicode.IsUpper(r) && hasLowerNeighbor(runes, i) {
			sb.WriteRune(' ')
		}
		sb.WriteRune(r)
	}
	return strings.TrimSpace(sb.String())
}

// FormatModuleName formats the last "/"-separated component of raw as a title.
func FormatModuleName(raw string, patterns []string) string {
	if i := strings.LastIndex(raw, "/"); i >= 0 {
		raw = raw[i+1:]
	}
	return FormatTitle(raw, patterns)
}

func hasLowerNeighbor(runes []rune, i int) bool {
	if i > 0 && unicode.IsLower(runes[i-1]) {
		return true
	}
	return i < len(runes)-1 && unicode.IsLower(runes[i+1])
}
