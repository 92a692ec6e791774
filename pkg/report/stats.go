package report

import (
	"fmt"
	"strings"
	"time"
)

// Category names used in the summary footer, in display order.
const (
	CategoryFailed  = "failed"
	CategoryPassed  = "passed"
	CategorySkipped = "skipped"
	CategoryError   = "error"
)

var categoryOrder = []string{CategoryFailed, CategoryPassed, CategorySkipped, CategoryError}

// Category classifies a report for the summary. Setup and teardown phases
// only count when they fail (as errors) or skip; an empty category means
// the report is not counted.
func Category(r TestReport) string {
	switch {
	case r.Skipped():
		return CategorySkipped
	case r.When == PhaseCall:
		return r.Outcome
	case r.Failed():
		return CategoryError
	default:
		return ""
	}
}

// Stats holds the reports recorded per category.
type Stats struct {
	byCategory map[string][]TestReport
	order      []string // categories in first-seen order, for unknown outcomes
}

// NewStats returns empty statistics.
func NewStats() *Stats {
	return &Stats{byCategory: make(map[string][]TestReport)}
}

// Record files r under its category.
func (s *Stats) Record(r TestReport) {
	cat := Category(r)
	if cat == "" {
		return
	}
	if _, ok := s.byCategory[cat]; !ok {
		s.order = append(s.order, cat)
	}
	s.byCategory[cat] = append(s.byCategory[cat], r)
}

// Count returns the number of reports in category.
func (s *Stats) Count(category string) int {
	return len(s.byCategory[category])
}

// Reports returns the reports in category, in arrival order.
func (s *Stats) Reports(category string) []TestReport {
	return s.byCategory[category]
}

// Total returns the number of counted reports.
func (s *Stats) Total() int {
	n := 0
	for _, rs := range s.byCategory {
		n += len(rs)
	}
	return n
}

// Failed reports whether anything failed or errored.
func (s *Stats) Failed() bool {
	return s.Count(CategoryFailed) > 0 || s.Count(CategoryError) > 0
}

// Summary renders the footer line, e.g. "2 passed, 1 failed in 0.52s".
func (s *Stats) Summary(elapsed time.Duration) string {
	var parts []string
	seen := make(map[string]bool)
	for _, cat := range categoryOrder {
		seen[cat] = true
		if n := s.Count(cat); n > 0 {
			parts = append(parts, fmt.Sprintf("%d %s", n, plural(cat, n)))
		}
	}
	for _, cat := range s.order {
		if !seen[cat] {
			parts = append(parts, fmt.Sprintf("%d %s", s.Count(cat), cat))
		}
	}
	if len(parts) == 0 {
		parts = append(parts, "no tests ran")
	}
	return fmt.Sprintf("%s in %.2fs", strings.Join(parts, ", "), elapsed.Seconds())
}

func plural(cat string, n int) string {
	if cat == CategoryError && n != 1 {
		return "errors"
	}
	return cat
}
