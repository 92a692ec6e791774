package collect

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestInterpolate(t *testing.T) {
	t.Parallel()

	params := []Param{{Name: "a", Value: 1}, {Name: "b", Value: "two"}}

	got, err := Interpolate("{a} and {b}", params)
	require.NoError(t, err)
	assert.Equal(t, "1 and two", got)

	got, err = Interpolate("literal {{braces}} {a}", params)
	require.NoError(t, err)
	assert.Equal(t, "literal {braces} 1", got)

	got, err = Interpolate("no placeholders", nil)
	require.NoError(t, err)
	assert.Equal(t, "no placeholders", got)
}

func TestInterpolate_Errors(t *testing.T) {
	t.Parallel()

	params := []Param{{Name: "a", Value: 1}}

	_, err := Interpolate("{missing}", params)
	assert.ErrorIs(t, err, ErrUnknownPlaceholder)

	for _, doc := range []string{"{a", "a}", "{{a}", "{x{a}"} {
		_, err := Interpolate(doc, params)
		assert.ErrorIs(t, err, ErrMalformedFormat, doc)
	}
}
