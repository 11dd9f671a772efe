package stats

import (
	"sort"

	"lastmile/internal/domain"
)

// minTripsForRanking is the floor a restaurant must reach before it appears
// in any top-N ranking; single-trip outliers would otherwise dominate.
const minTripsForRanking = 10

// rankingSize is how many restaurants each ranking returns.
const rankingSize = 5

// RestaurantStats aggregates all trips picked up from one restaurant.
type RestaurantStats struct {
	Name           string
	Trips          int
	TippedTrips    int
	TotalTips      float64
	TotalPay       float64
	AvgTip         float64
	AvgPay         float64
	TipRatePercent float64 // share of trips that received any tip
}

// RestaurantRollup groups trips by restaurant name, most-visited first.
func RestaurantRollup(ledger *domain.Ledger) []RestaurantStats {
	byName := make(map[string]*RestaurantStats)
	var order []string

	for _, day := range ledger.Days {
		for _, trip := range day.Trips {
			r, ok := byName[trip.Restaurant]
			if !ok {
				r = &RestaurantStats{Name: trip.Restaurant}
				byName[trip.Restaurant] = r
				order = append(order, trip.Restaurant)
			}
			r.Trips++
			r.TotalTips += trip.Tip
			r.TotalPay += trip.TotalPay
			if trip.Tip > 0 {
				r.TippedTrips++
			}
		}
	}

	out := make([]RestaurantStats, 0, len(order))
	for _, name := range order {
		r := byName[name]
		r.AvgTip = safeDiv(r.TotalTips, float64(r.Trips))
		r.AvgPay = safeDiv(r.TotalPay, float64(r.Trips))
		r.TipRatePercent = safeDiv(float64(r.TippedTrips), float64(r.Trips)) * 100
		out = append(out, *r)
	}

	sort.SliceStable(out, func(i, j int) bool { return out[i].Trips > out[j].Trips })
	return out
}

// BestTippers ranks eligible restaurants by average tip.
func BestTippers(ledger *domain.Ledger) []RestaurantStats {
	return rankRestaurants(ledger, func(r RestaurantStats) bool {
		return r.Trips >= minTripsForRanking && r.TotalTips > 0
	}, func(a, b RestaurantStats) bool {
		return a.AvgTip > b.AvgTip
	})
}

// MostFrequent ranks eligible restaurants by trip count.
func MostFrequent(ledger *domain.Ledger) []RestaurantStats {
	return rankRestaurants(ledger, func(r RestaurantStats) bool {
		return r.Trips >= minTripsForRanking
	}, func(a, b RestaurantStats) bool {
		return a.Trips > b.Trips
	})
}

// BestValue ranks eligible restaurants by average total pay.
func BestValue(ledger *domain.Ledger) []RestaurantStats {
	return rankRestaurants(ledger, func(r RestaurantStats) bool {
		return r.Trips >= minTripsForRanking
	}, func(a, b RestaurantStats) bool {
		return a.AvgPay > b.AvgPay
	})
}

func rankRestaurants(ledger *domain.Ledger, eligible func(RestaurantStats) bool, less func(a, b RestaurantStats) bool) []RestaurantStats {
	var out []RestaurantStats
	for _, r := range RestaurantRollup(ledger) {
		if eligible(r) {
			out = append(out, r)
		}
	}
	sort.SliceStable(out, func(i, j int) bool { return less(out[i], out[j]) })
	if len(out) > rankingSize {
		out = out[:rankingSize]
	}
	return out
}
