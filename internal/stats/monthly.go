package stats

import "lastmile/internal/domain"

// MonthRollup sums all day buckets sharing a (month, year) label.
type MonthRollup struct {
	Label      string // e.g. "March 2024"
	Earnings   float64
	Tips       float64
	Distance   float64
	Trips      int
	DaysWorked int
	AvgPerTrip float64
}

// MonthlyRollup groups days by calendar month, in chronological order.
func MonthlyRollup(ledger *domain.Ledger) []MonthRollup {
	var months []MonthRollup
	index := make(map[string]int)

	for _, day := range ledger.Days {
		label := dayTime(day.Date).Format("January 2006")
		i, ok := index[label]
		if !ok {
			i = len(months)
			index[label] = i
			months = append(months, MonthRollup{Label: label})
		}
		months[i].Earnings += day.Stats.TotalEarnings
		months[i].Tips += day.Stats.TotalTips
		months[i].Distance += day.Stats.TotalDistance
		months[i].Trips += day.Stats.TripCount
		months[i].DaysWorked++
	}

	for i := range months {
		months[i].AvgPerTrip = safeDiv(months[i].Earnings, float64(months[i].Trips))
	}
	return months
}
