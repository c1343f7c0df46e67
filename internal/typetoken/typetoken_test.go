package typetoken_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/zclconf/go-cty/cty"

	"github.com/vk/flowgrid/internal/typetoken"
)

func TestLookup_KnownLabels(t *testing.T) {
	for _, name := range []string{
		"int", "integer", "number", "long", "long long", "float", "double",
		"string", "str", "bool", "boolean",
	} {
		_, err := typetoken.Lookup(name)
		require.NoError(t, err, name)
	}

	_, err := typetoken.Lookup("unknown")
	require.Error(t, err)
}

// TestLookup_DistinctLabelsAreDistinctTokens is the regression test for E7:
// a "long long" producer must never bind to an "int" consumer just because
// both happen to be represented as cty.Number at runtime.
func TestLookup_DistinctLabelsAreDistinctTokens(t *testing.T) {
	int_, err := typetoken.Lookup("int")
	require.NoError(t, err)
	longLong, err := typetoken.Lookup("long long")
	require.NoError(t, err)

	assert.False(t, int_.Equals(longLong), "int and long long must not be equal type_tokens")

	// Re-looking up the same label must yield the same token, so that two
	// arguments declaring the same type still bind.
	intAgain, err := typetoken.Lookup("int")
	require.NoError(t, err)
	assert.True(t, int_.Equals(intAgain))
}

func TestParseDefault(t *testing.T) {
	v, err := typetoken.ParseDefault("42", cty.Number)
	require.NoError(t, err)
	f, _ := v.AsBigFloat().Float64()
	assert.Equal(t, float64(42), f)

	s, err := typetoken.ParseDefault("hello", cty.String)
	require.NoError(t, err)
	assert.Equal(t, "hello", s.AsString())

	b, err := typetoken.ParseDefault("true", cty.Bool)
	require.NoError(t, err)
	assert.True(t, b.True())

	_, err = typetoken.ParseDefault("not-a-number", cty.Number)
	require.Error(t, err)
}

func TestParseDefault_EmptyLiteralIsNull(t *testing.T) {
	v, err := typetoken.ParseDefault("", cty.Number)
	require.NoError(t, err)
	assert.True(t, v.IsNull())
}

// TestParseDefault_WithLookupToken confirms label-specific tokens from
// Lookup decode exactly like their underlying cty.Kind.
func TestParseDefault_WithLookupToken(t *testing.T) {
	longLong, err := typetoken.Lookup("long long")
	require.NoError(t, err)

	v, err := typetoken.ParseDefault("9000000000", longLong)
	require.NoError(t, err)
	f, _ := v.AsBigFloat().Float64()
	assert.Equal(t, float64(9000000000), f)

	empty, err := typetoken.ParseDefault("", longLong)
	require.NoError(t, err)
	assert.True(t, empty.IsNull())
}
