package utils

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMonthWindow(t *testing.T) {
	start, end, err := MonthWindow("2025-07")
	require.NoError(t, err)

	assert.Equal(t, time.Date(2025, 7, 1, 0, 0, 0, 0, time.UTC), start)
	assert.Equal(t, time.Date(2025, 8, 1, 0, 0, 0, 0, time.UTC), end)
}

func TestMonthWindow_December(t *testing.T) {
	start, end, err := MonthWindow("2025-12")
	require.NoError(t, err)

	assert.Equal(t, time.Date(2025, 12, 1, 0, 0, 0, 0, time.UTC), start)
	assert.Equal(t, time.Date(2026, 1, 1, 0, 0, 0, 0, time.UTC), end)
}

func TestMonthWindow_Invalid(t *testing.T) {
	_, _, err := MonthWindow("julho-2025")
	assert.Error(t, err)

	_, _, err = MonthWindow("2025-07-01")
	assert.Error(t, err)
}

func TestParseUserTime(t *testing.T) {
	t.Run("RFC3339", func(t *testing.T) {
		result, err := ParseUserTime("2024-01-15T10:30:00Z", false)
		require.NoError(t, err)
		assert.Equal(t, time.Date(2024, 1, 15, 10, 30, 0, 0, time.UTC), result)
	})

	t.Run("date only start of day", func(t *testing.T) {
		result, err := ParseUserTime("2024-01-15", false)
		require.NoError(t, err)
		assert.Equal(t, time.Date(2024, 1, 15, 0, 0, 0, 0, time.UTC), result)
	})

	t.Run("date only end of day", func(t *testing.T) {
		result, err := ParseUserTime("2024-01-15", true)
		require.NoError(t, err)
		assert.Equal(t, time.Date(2024, 1, 15, 23, 59, 59, 0, time.UTC), result)
	})

	t.Run("invalid", func(t *testing.T) {
		_, err := ParseUserTime("15/01/2024", false)
		assert.Error(t, err)
	})
}
