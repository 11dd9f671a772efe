package stats

import (
	"sort"

	"lastmile/internal/domain"
)

// Summary holds the all-history average metrics shown on the stats page.
type Summary struct {
	AvgPerTrip     float64
	AvgPerHour     float64
	AvgPerMile     float64
	AvgPerDay      float64
	TipRatePercent float64
	EstimatedHours float64
}

// Summarize computes global averages from the ledger totals.
func Summarize(ledger *domain.Ledger) Summary {
	s := ledger.Stats
	estimatedHours := float64(s.TotalTrips) * hoursPerTrip
	return Summary{
		AvgPerTrip:     safeDiv(s.TotalEarnings, float64(s.TotalTrips)),
		AvgPerHour:     safeDiv(s.TotalEarnings, estimatedHours),
		AvgPerMile:     safeDiv(s.TotalEarnings, s.TotalDistance),
		AvgPerDay:      safeDiv(s.TotalEarnings, float64(s.TotalDays)),
		TipRatePercent: safeDiv(s.TotalTips, s.TotalEarnings) * 100,
		EstimatedHours: estimatedHours,
	}
}

// TaxEstimate is the rough self-employment tax picture: mileage deduction at
// the standard rate and the remaining taxable income, floored at 0.
type TaxEstimate struct {
	MileageDeduction float64
	TaxableIncome    float64
}

// EstimateTax computes the mileage deduction and taxable income.
func EstimateTax(s domain.GlobalStats) TaxEstimate {
	deduction := s.TotalDistance * mileageRate
	taxable := s.TotalEarnings - deduction
	if taxable < 0 {
		taxable = 0
	}
	return TaxEstimate{MileageDeduction: deduction, TaxableIncome: taxable}
}

// RankedDay is a day bucket with its position in an earnings ranking.
type RankedDay struct {
	Rank  int
	Date  string
	Stats domain.DayStats
}

// TopDays returns the n highest-earning days, best first.
func TopDays(ledger *domain.Ledger, n int) []RankedDay {
	days := make([]*domain.DayBucket, len(ledger.Days))
	copy(days, ledger.Days)

	// Stable keeps the earlier date first on earnings ties.
	sortStableByEarningsDesc(days)

	if n > len(days) {
		n = len(days)
	}
	ranked := make([]RankedDay, 0, n)
	for i := 0; i < n; i++ {
		ranked = append(ranked, RankedDay{Rank: i + 1, Date: days[i].Date, Stats: days[i].Stats})
	}
	return ranked
}

func sortStableByEarningsDesc(days []*domain.DayBucket) {
	sort.SliceStable(days, func(i, j int) bool {
		return days[i].Stats.TotalEarnings > days[j].Stats.TotalEarnings
	})
}
