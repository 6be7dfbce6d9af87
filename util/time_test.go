package util

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func mustParse(t *testing.T, value string) time.Time {
	parsed, err := time.Parse(time.RFC3339, value)
	assert.Nil(t, err)
	return parsed
}

func TestDaysBetween(t *testing.T) {
	from := mustParse(t, "2026-08-01T00:00:00Z")
	assert.Equal(t, 14, DaysBetween(from, mustParse(t, "2026-08-15T00:00:00Z")))
	assert.Equal(t, 0, DaysBetween(from, from))
	// Clock skew never yields negative recency.
	assert.Equal(t, 0, DaysBetween(from, mustParse(t, "2026-07-20T00:00:00Z")))
}

func TestMonthKeyAndBeginningOfMonth(t *testing.T) {
	ts := mustParse(t, "2026-08-15T13:45:00Z")
	assert.Equal(t, "2026-08", MonthKey(ts))
	assert.Equal(t, mustParse(t, "2026-08-01T00:00:00Z"), BeginningOfMonth(ts))
}

func TestMonthsBetween(t *testing.T) {
	assert.Equal(t, 0, MonthsBetween(mustParse(t, "2026-08-01T00:00:00Z"), mustParse(t, "2026-08-31T00:00:00Z")))
	assert.Equal(t, 2, MonthsBetween(mustParse(t, "2026-06-30T00:00:00Z"), mustParse(t, "2026-08-01T00:00:00Z")))
	assert.Equal(t, 13, MonthsBetween(mustParse(t, "2025-07-15T00:00:00Z"), mustParse(t, "2026-08-15T00:00:00Z")))
}

func TestAddMonths(t *testing.T) {
	monthStart := mustParse(t, "2026-01-01T00:00:00Z")
	assert.Equal(t, mustParse(t, "2026-03-01T00:00:00Z"), AddMonths(monthStart, 2))
	assert.Equal(t, mustParse(t, "2025-12-01T00:00:00Z"), AddMonths(monthStart, -1))
}

func TestSafePercentage(t *testing.T) {
	assert.Equal(t, 60.0, SafePercentage(6, 10))
	assert.Equal(t, 33.3, SafePercentage(1, 3))
	assert.Equal(t, 0.0, SafePercentage(5, 0))
}

func TestRounding(t *testing.T) {
	assert.Equal(t, 1.3, RoundTo1Decimal(1.25))
	assert.Equal(t, 12.35, RoundTo2Decimals(12.346))
	assert.Equal(t, 0.0, SafeDivide(4, 0))
	assert.Equal(t, 2.0, SafeDivide(4, 2))
}
