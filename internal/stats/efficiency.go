package stats

import (
	"sort"

	"lastmile/internal/domain"
)

// Category classifies a trip by duration and pay.
type Category string

const (
	CategoryOptimal    Category = "optimal"    // 15-25 min and $15+
	CategoryAcceptable Category = "acceptable" // $8+ at any duration
	CategoryShort      Category = "short"      // under 15 min
	CategoryLong       Category = "long"       // over 25 min
	CategoryLowPay     Category = "low-pay"    // under $8
)

// Classification thresholds.
const (
	optimalMinMinutes = 15
	optimalMaxMinutes = 25
	optimalMinPay     = 15.0
	acceptableMinPay  = 8.0
)

// TripEfficiency is one trip's efficiency metrics and classification. The
// boolean flags are tracked independently of the category so the summary
// tiles can count them on their own.
type TripEfficiency struct {
	Date            string
	Restaurant      string
	DurationMinutes int
	Pay             float64
	Distance        float64
	PerHour         float64
	PerMile         float64
	Category        Category
	IsShort         bool
	IsLong          bool
	IsLowPay        bool
	ManualEntry     bool
}

// Classify assigns a category to a single trip. The branches are evaluated
// in strict priority order: optimal, acceptable, short, long, low-pay.
func Classify(durationMinutes int, pay float64) Category {
	switch {
	case durationMinutes >= optimalMinMinutes && durationMinutes <= optimalMaxMinutes && pay >= optimalMinPay:
		return CategoryOptimal
	case pay >= acceptableMinPay:
		return CategoryAcceptable
	case durationMinutes > 0 && durationMinutes < optimalMinMinutes:
		return CategoryShort
	case durationMinutes > optimalMaxMinutes:
		return CategoryLong
	default:
		return CategoryLowPay
	}
}

// EfficiencyReport summarizes per-trip efficiency across all history.
type EfficiencyReport struct {
	Trips           []TripEfficiency
	OptimalCount    int
	AcceptableCount int
	ShortCount      int // short trips not already counted optimal/acceptable
	LongCount       int // long trips not already counted optimal/acceptable
	LowPayCount     int
	AvgDuration     float64 // over trips with a known duration
	AvgPerHour      float64 // over trips with a known duration
	AvgPerMile      float64 // over trips with a known distance
	Score           float64 // percent of trips classified optimal or acceptable
}

// Efficiency classifies every trip in the ledger and computes the summary
// counts and averages.
func Efficiency(ledger *domain.Ledger) EfficiencyReport {
	var report EfficiencyReport

	var durationSum, perHourSum, perMileSum float64
	var withDuration, withDistance int

	for _, day := range ledger.Days {
		for _, trip := range day.Trips {
			e := TripEfficiency{
				Date:            day.Date,
				Restaurant:      trip.Restaurant,
				DurationMinutes: trip.DurationMinutes,
				Pay:             trip.TotalPay,
				Distance:        trip.DistanceMiles,
				PerHour:         trip.PerHour(),
				PerMile:         trip.PerMile(),
				Category:        Classify(trip.DurationMinutes, trip.TotalPay),
				IsShort:         trip.DurationMinutes > 0 && trip.DurationMinutes < optimalMinMinutes,
				IsLong:          trip.DurationMinutes > optimalMaxMinutes,
				IsLowPay:        trip.TotalPay < acceptableMinPay,
				ManualEntry:     trip.ManualEntry,
			}
			report.Trips = append(report.Trips, e)

			switch e.Category {
			case CategoryOptimal:
				report.OptimalCount++
			case CategoryAcceptable:
				report.AcceptableCount++
			}
			// Optimal/acceptable trips stay out of the short/long tiles
			// even when their flags are set.
			if e.IsShort && e.Category != CategoryOptimal && e.Category != CategoryAcceptable {
				report.ShortCount++
			}
			if e.IsLong && e.Category != CategoryOptimal && e.Category != CategoryAcceptable {
				report.LongCount++
			}
			if e.IsLowPay {
				report.LowPayCount++
			}

			if e.DurationMinutes > 0 {
				withDuration++
				durationSum += float64(e.DurationMinutes)
				perHourSum += e.PerHour
			}
			if e.Distance > 0 {
				withDistance++
				perMileSum += e.PerMile
			}
		}
	}

	report.AvgDuration = safeDiv(durationSum, float64(withDuration))
	report.AvgPerHour = safeDiv(perHourSum, float64(withDuration))
	report.AvgPerMile = safeDiv(perMileSum, float64(withDistance))
	report.Score = safeDiv(float64(report.OptimalCount+report.AcceptableCount), float64(len(report.Trips))) * 100
	return report
}

// FilterTrips returns the trips matching an efficiency tab filter ("all" or
// a category name), sorted by date descending then per-hour rate descending.
func FilterTrips(trips []TripEfficiency, filter string) []TripEfficiency {
	var out []TripEfficiency
	for _, t := range trips {
		switch Category(filter) {
		case CategoryOptimal, CategoryAcceptable:
			if t.Category == Category(filter) {
				out = append(out, t)
			}
		case CategoryLowPay:
			// The low-pay tab counts by flag, not category.
			if t.IsLowPay {
				out = append(out, t)
			}
		case CategoryShort:
			if t.IsShort && t.Category != CategoryOptimal && t.Category != CategoryAcceptable {
				out = append(out, t)
			}
		case CategoryLong:
			if t.IsLong && t.Category != CategoryOptimal && t.Category != CategoryAcceptable {
				out = append(out, t)
			}
		default:
			out = append(out, t)
		}
	}

	sort.SliceStable(out, func(i, j int) bool {
		if out[i].Date != out[j].Date {
			return out[i].Date > out[j].Date
		}
		return out[i].PerHour > out[j].PerHour
	})
	return out
}
