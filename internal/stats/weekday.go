package stats

import (
	"time"

	"lastmile/internal/domain"
)

// WeekdayTotals holds all-history sums for one weekday.
type WeekdayTotals struct {
	Weekday  string // "Sunday".."Saturday"
	Earnings float64
	Trips    int
}

// WeekdayTotalsRollup sums earnings and trip counts per weekday, Sunday
// first.
func WeekdayTotalsRollup(ledger *domain.Ledger) [7]WeekdayTotals {
	var totals [7]WeekdayTotals
	for i := range totals {
		totals[i].Weekday = time.Weekday(i).String()
	}
	for _, day := range ledger.Days {
		wd := dayTime(day.Date).Weekday()
		totals[wd].Earnings += day.Stats.TotalEarnings
		totals[wd].Trips += day.Stats.TripCount
	}
	return totals
}

// BestWeekdayByTotal returns the weekday with the highest total earnings.
func BestWeekdayByTotal(ledger *domain.Ledger) WeekdayTotals {
	totals := WeekdayTotalsRollup(ledger)
	best := totals[0]
	for _, t := range totals[1:] {
		if t.Earnings > best.Earnings {
			best = t
		}
	}
	return best
}

// WeekdayEfficiency reports per-trip averages for one weekday.
type WeekdayEfficiency struct {
	Weekday        string
	Trips          int
	DaysWorked     int
	Earnings       float64
	Tips           float64
	Distance       float64
	AvgPerTrip     float64
	AvgTipPerTrip  float64
	TipRatePercent float64
	AvgPerMile     float64
	AvgTripsPerDay float64
}

// WeekdayEfficiencyRollup computes per-trip averages for each weekday,
// Sunday first.
func WeekdayEfficiencyRollup(ledger *domain.Ledger) [7]WeekdayEfficiency {
	var rollup [7]WeekdayEfficiency
	for i := range rollup {
		rollup[i].Weekday = time.Weekday(i).String()
	}
	for _, day := range ledger.Days {
		wd := dayTime(day.Date).Weekday()
		rollup[wd].Earnings += day.Stats.TotalEarnings
		rollup[wd].Tips += day.Stats.TotalTips
		rollup[wd].Trips += day.Stats.TripCount
		rollup[wd].Distance += day.Stats.TotalDistance
		rollup[wd].DaysWorked++
	}
	for i := range rollup {
		m := &rollup[i]
		m.AvgPerTrip = safeDiv(m.Earnings, float64(m.Trips))
		m.AvgTipPerTrip = safeDiv(m.Tips, float64(m.Trips))
		m.TipRatePercent = safeDiv(m.Tips, m.Earnings) * 100
		m.AvgPerMile = safeDiv(m.Earnings, m.Distance)
		m.AvgTripsPerDay = safeDiv(float64(m.Trips), float64(m.DaysWorked))
	}
	return rollup
}

// BestWeekdayByAvgPerTrip returns the weekday with the highest per-trip
// average among weekdays with at least one trip. The zero value is returned
// when no weekday qualifies.
func BestWeekdayByAvgPerTrip(ledger *domain.Ledger) WeekdayEfficiency {
	rollup := WeekdayEfficiencyRollup(ledger)
	var best WeekdayEfficiency
	for _, m := range rollup {
		if m.Trips == 0 {
			continue
		}
		if best.Trips == 0 || m.AvgPerTrip > best.AvgPerTrip {
			best = m
		}
	}
	return best
}
