package helpers_test

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/hrmslite/backend/internal/pkg/helpers"
)

func TestParseDate(t *testing.T) {
	t.Parallel()

	parsed, err := helpers.ParseDate("2024-03-01")
	require.NoError(t, err)
	assert.Equal(t, 2024, parsed.Year())
	assert.Equal(t, time.March, parsed.Month())
	assert.Equal(t, 1, parsed.Day())
}

func TestParseDate_Invalid(t *testing.T) {
	t.Parallel()

	cases := []string{"01-03-2024", "2024/03/01", "2024-13-01", "not-a-date", ""}
	for _, input := range cases {
		_, err := helpers.ParseDate(input)
		assert.Error(t, err, "expected error for input %q", input)
	}
}

func TestTruncateToDay(t *testing.T) {
	t.Parallel()

	ts := time.Date(2024, time.March, 1, 18, 45, 12, 999, time.UTC)
	day := helpers.TruncateToDay(ts)

	assert.Equal(t, time.Date(2024, time.March, 1, 0, 0, 0, 0, time.UTC), day)
}

func TestTruncateToDay_LastSecondOfDay(t *testing.T) {
	t.Parallel()

	// 23:59:59 still belongs to the same calendar day.
	ts := time.Date(2024, time.March, 1, 23, 59, 59, 0, time.UTC)
	day := helpers.TruncateToDay(ts)

	assert.Equal(t, "2024-03-01", helpers.FormatDate(day))
}

func TestFormatDate(t *testing.T) {
	t.Parallel()

	ts := time.Date(2024, time.December, 31, 5, 0, 0, 0, time.UTC)
	assert.Equal(t, "2024-12-31", helpers.FormatDate(ts))
}
