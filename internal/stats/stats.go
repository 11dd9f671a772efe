// Package stats computes derived rollups over a trip ledger. Every function
// here is a pure read of the ledger: nothing is mutated and results are
// recomputed on each call. Any ratio with a zero denominator yields 0, never
// NaN or Inf, since these values are rendered directly by consumers.
package stats

import "time"

// hoursPerTrip is the rough active-time estimate used for per-hour averages
// when only trip counts are known (~15 minutes per delivery).
const hoursPerTrip = 0.25

// mileageRate is the IRS standard mileage deduction in dollars per mile.
const mileageRate = 0.67

// weekGoal is the weekly earnings target used for goal progress.
const weekGoal = 500.0

// dayTime converts a YYYY-MM-DD bucket date to a local time at noon. Noon
// keeps date arithmetic stable across DST boundaries.
func dayTime(date string) time.Time {
	t, err := time.ParseInLocation("2006-01-02", date, time.Local)
	if err != nil {
		return time.Time{}
	}
	return t.Add(12 * time.Hour)
}

// safeDiv divides, returning 0 for a zero (or negative-count) denominator.
func safeDiv(num, den float64) float64 {
	if den <= 0 {
		return 0
	}
	return num / den
}
