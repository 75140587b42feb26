package utils

import (
	"fmt"
	"time"
)

// MonthWindow parses a YYYY-MM month string and returns the half-open
// interval [start, end) covering that calendar month in UTC. An order
// created at the last second of the month is inside the window, one
// created at midnight on the first of the next month is not.
func MonthWindow(month string) (time.Time, time.Time, error) {
	start, err := time.Parse("2006-01", month)
	if err != nil {
		return time.Time{}, time.Time{}, fmt.Errorf("invalid month format, expected YYYY-MM, got %s", month)
	}
	return start, start.AddDate(0, 1, 0), nil
}

// ParseUserTime parses a time string that can be either RFC3339 or YYYY-MM-DD format.
// For YYYY-MM-DD format, if isEndTime is true, it will set the time to end of day (23:59:59).
func ParseUserTime(timeStr string, isEndTime bool) (time.Time, error) {
	t, err := time.Parse(time.RFC3339, timeStr)
	if err == nil {
		return t, nil
	}

	t, err = time.Parse("2006-01-02", timeStr)
	if err != nil {
		return time.Time{}, fmt.Errorf("invalid time format, expected RFC3339 or YYYY-MM-DD, got %s", timeStr)
	}

	if isEndTime {
		t = t.Add(24*time.Hour - time.Second)
	}

	return t, nil
}
