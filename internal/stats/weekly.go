package stats

import (
	"time"

	"lastmile/internal/domain"
)

// WeekRollup sums one Sunday-start week of day buckets.
type WeekRollup struct {
	Start        time.Time
	End          time.Time // last included day (Saturday)
	Earnings     float64
	Trips        int
	Miles        float64
	DaysWorked   int
	AvgPerTrip   float64
	AvgPerHour   float64
	GoalProgress float64 // percent of the weekly goal, capped at 100
}

// WeekStartOf returns local midnight of the Sunday on or before the given
// time.
func WeekStartOf(t time.Time) time.Time {
	midnight := time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, t.Location())
	return midnight.AddDate(0, 0, -int(midnight.Weekday()))
}

// LatestWeekStart returns the week start containing the most recent day in
// the ledger, or the current week when the ledger is empty.
func LatestWeekStart(ledger *domain.Ledger) time.Time {
	if len(ledger.Days) == 0 {
		return WeekStartOf(time.Now())
	}
	return WeekStartOf(dayTime(ledger.Days[len(ledger.Days)-1].Date))
}

// WeekStats sums every day bucket whose date falls within the seven days
// starting at weekStart, inclusive of the closing Saturday.
func WeekStats(ledger *domain.Ledger, weekStart time.Time) WeekRollup {
	rollup := WeekRollup{
		Start: weekStart,
		End:   weekStart.AddDate(0, 0, 6),
	}
	limit := weekStart.AddDate(0, 0, 7)

	for _, day := range ledger.Days {
		d := dayTime(day.Date)
		if d.Before(weekStart) || !d.Before(limit) {
			continue
		}
		rollup.Earnings += day.Stats.TotalEarnings
		rollup.Trips += day.Stats.TripCount
		rollup.Miles += day.Stats.TotalDistance
		rollup.DaysWorked++
	}

	rollup.AvgPerTrip = safeDiv(rollup.Earnings, float64(rollup.Trips))
	rollup.AvgPerHour = safeDiv(rollup.Earnings, float64(rollup.Trips)*hoursPerTrip)
	rollup.GoalProgress = safeDiv(rollup.Earnings, weekGoal) * 100
	if rollup.GoalProgress > 100 {
		rollup.GoalProgress = 100
	}
	return rollup
}
