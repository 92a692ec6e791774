package collect

import (
	"fmt"
	"strconv"
	"strings"
)

// Param is one parametrization value.
type Param struct {
	Name  string
	Value any
}

// conventionalPrefixes are stripped from function names in generated
// descriptions.
var conventionalPrefixes = []string{"test_", "Test"}

// FormatParametrizedName builds "<cleaned name> with k=v, k2=v2" for a
// parametrized test. String values are single-quoted. Without params the
// cleaned name is returned on its own.
func FormatParametrizedName(name string, params []Param) string {
	for _, p := range conventionalPrefixes {
		if strings.HasPrefix(name, p) {
			name = strings.TrimPrefix(name, p)
			break
		}
	}
	name = strings.TrimSpace(strings.ReplaceAll(name, "_", " "))
	if len(params) == 0 {
		return name
	}

	pairs := make([]string, len(params))
	for i, p := range params {
		pairs[i] = strings.ReplaceAll(p.Name, "_", " ") + "=" + formatValue(p.Value)
	}
	return name + " with " + strings.Join(pairs, ", ")
}

func formatValue(v any) string {
	switch val := v.(type) {
	case string:
		return "'" + strings.ReplaceAll(val, "'", `\'`) + "'"
	case nil:
		return "None"
	default:
		return fmt.Sprint(val)
	}
}

// ParseParams recognises subtest names of the form "k=v,k2=v2". go test
// replaces spaces in subtest names with underscores; they are restored in
// string values. Numbers and booleans are typed.
func ParseParams(name string) ([]Param, bool) {
	if !strings.Contains(name, "=") {
		return nil, false
	}

	fields := strings.Split(name, ",")
	params := make([]Param, 0, len(fields))
	for _, f := range fields {
		key, raw, ok := strings.Cut(f, "=")
		if !ok || key == "" || strings.ContainsAny(key, " /") {
			return nil, false
		}
		params = append(params, Param{Name: key, Value: parseValue(raw)})
	}
	return params, true
}

func parseValue(raw string) any {
	if i, err := strconv.ParseInt(raw, 10, 64); err == nil {
		return i
	}
	if strings.ContainsAny(raw, "0123456789") {
		if f, err := strconv.ParseFloat(raw, 64); err == nil {
			return f
		}
	}
	if b, err := strconv.ParseBool(raw); err == nil && (raw == "true" || raw == "false") {
		return b
	}
	return strings.ReplaceAll(raw, "_", " ")
}
