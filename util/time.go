package util

import (
	"math"
	"time"

	"github.com/jinzhu/now"
)

const SecondsInOneDay = 86400

// DaysBetween returns whole days from `from` to `to`, floored at zero so a
// clock skew between the store and the app never yields negative recency.
func DaysBetween(from, to time.Time) int {
	days := int(to.Sub(from).Hours() / 24)
	if days < 0 {
		return 0
	}
	return days
}

func BeginningOfMonth(t time.Time) time.Time {
	return now.New(t.UTC()).BeginningOfMonth()
}

// MonthKey formats a timestamp as its calendar month bucket, e.g. "2026-08".
func MonthKey(t time.Time) string {
	return t.UTC().Format("2006-01")
}

// AddMonths moves a month-start timestamp by n calendar months.
func AddMonths(monthStart time.Time, n int) time.Time {
	return monthStart.AddDate(0, n, 0)
}

// MonthsBetween counts calendar month steps from the month of `from` to the
// month of `to`. Same month returns 0.
func MonthsBetween(from, to time.Time) int {
	f := BeginningOfMonth(from)
	t := BeginningOfMonth(to)
	months := (t.Year()-f.Year())*12 + int(t.Month()) - int(f.Month())
	if months < 0 {
		return 0
	}
	return months
}

func RoundTo1Decimal(v float64) float64 {
	return math.Round(v*10) / 10
}

func RoundTo2Decimals(v float64) float64 {
	return math.Round(v*100) / 100
}

// SafePercentage guards the ratio against a zero denominator, returning 0
// instead of failing on empty inputs.
func SafePercentage(part, total int) float64 {
	if total == 0 {
		return 0
	}
	return RoundTo1Decimal(float64(part) / float64(total) * 100)
}

func SafeDivide(numerator, denominator float64) float64 {
	if denominator == 0 {
		return 0
	}
	return numerator / denominator
}
