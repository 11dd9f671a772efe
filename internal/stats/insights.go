package stats

import "lastmile/internal/domain"

// Insights is the headline findings block: the single best day, the most
// frequented restaurant, the peak-hour window, and the strongest weekday.
type Insights struct {
	BestDayDate         string
	BestDayEarnings     float64
	TopRestaurant       string
	TopRestaurantTrips  int
	PeakHoursLabel      string
	PeakHoursAvgPay     float64
	BestWeekday         string
	BestWeekdayEarnings float64
}

// BuildInsights derives the headline findings from the ledger. Fields are
// left zero-valued when the ledger has no data to support them.
func BuildInsights(ledger *domain.Ledger) Insights {
	var insights Insights

	var bestDay *domain.DayBucket
	for _, day := range ledger.Days {
		if bestDay == nil || day.Stats.TotalEarnings > bestDay.Stats.TotalEarnings {
			bestDay = day
		}
	}
	if bestDay != nil {
		insights.BestDayDate = bestDay.Date
		insights.BestDayEarnings = bestDay.Stats.TotalEarnings
	}

	// Top restaurant here is by raw pickup count, with no eligibility floor;
	// the ranking threshold only applies to the top-N lists.
	var topTrips int
	for _, r := range RestaurantRollup(ledger) {
		if r.Trips > topTrips {
			topTrips = r.Trips
			insights.TopRestaurant = r.Name
			insights.TopRestaurantTrips = r.Trips
		}
	}

	peaks := HourlyPeaks(ledger)
	insights.PeakHoursLabel = peaks.Label
	insights.PeakHoursAvgPay = peaks.TopAvgPay

	if ledger.Stats.TotalTrips > 0 {
		best := BestWeekdayByTotal(ledger)
		insights.BestWeekday = best.Weekday
		insights.BestWeekdayEarnings = best.Earnings
	}

	return insights
}
