package collect

import (
	"errors"
	"fmt"
	"strings"
)

var (
	// ErrUnknownPlaceholder is returned when a description references a
	// parameter that does not exist.
	ErrUnknownPlaceholder = errors.New("unknown placeholder")
	// ErrMalformedFormat is returned for unbalanced braces.
	ErrMalformedFormat = errors.New("malformed format string")
)

// Interpolate replaces {name} placeholders in doc with parameter values.
// "{{" and "}}" produce literal braces.
func Interpolate(doc string, params []Param) (string, error) {
	values := make(map[string]any, len(params))
	for _, p := range params {
		values[p.Name] = p.Value
	}

	var sb strings.Builder
	for i := 0; i < len(doc); i++ {
		c := doc[i]
		switch c {
		case '{':
			if i+1 < len(doc) && doc[i+1] == '{' {
				sb.WriteByte('{')
				i++
				continue
			}
			end := strings.IndexByte(doc[i+1:], '}')
			if end < 0 {
				return "", fmt.Errorf("%w: unclosed '{' at offset %d", ErrMalformedFormat, i)
			}
			name := doc[i+1 : i+1+end]
			if strings.ContainsRune(name, '{') {
				return "", fmt.Errorf("%w: nested '{' at offset %d", ErrMalformedFormat, i)
			}
			v, ok := values[name]
			if !ok {
				return "", fmt.Errorf("%w: %q", ErrUnknownPlaceholder, name)
			}
			sb.WriteString(fmt.Sprint(v))
			i += end + 1
		case '}':
			if i+1 < len(doc) && doc[i+1] == '}' {
				sb.WriteByte('}')
				i++
				continue
			}
			return "", fmt.Errorf("%w: single '}' at offset %d", ErrMalformedFormat, i)
		default:
			sb.WriteByte(c)
		}
	}
	return sb.String(), nil
}
