package util

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestTimestamp(t *testing.T) {
	ts := FormatTimestamp(time.Date(2024, 3, 9, 7, 5, 1, 42_000, time.FixedZone("BRT", -3*3600)))
	assert.Equal(t, "2024-03-09T10:05:01.000042Z", ts)

	parsed, err := ParseTimestamp(ts)
	require.NoError(t, err)
	assert.Equal(t, 10, parsed.Hour())

	assert.Len(t, Timestamp(), len(TimestampLayout))
}

func TestTernary(t *testing.T) {
	assert.Equal(t, "a", Ternary(true, "a", "b"))
	assert.Equal(t, 2, Ternary(false, 1, 2))
}

func TestLikePatterns(t *testing.T) {
	assert.Equal(t, "%ana%", Contains("ana"))
	assert.Equal(t, `%50\%%`, Contains("50%"))
	assert.Equal(t, `a\_b%`, StartsWith("a_b"))
	assert.Equal(t, `%@email.com`, EndsWith("@email.com"))
}
