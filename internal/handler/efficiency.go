package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"lastmile/internal/stats"
)

// EfficiencyResponse is the HTTP response for the trip efficiency report.
type EfficiencyResponse struct {
	OptimalCount    int                   `json:"optimal_count"`
	AcceptableCount int                   `json:"acceptable_count"`
	ShortCount      int                   `json:"short_count"`
	LongCount       int                   `json:"long_count"`
	LowPayCount     int                   `json:"low_pay_count"`
	AvgDuration     float64               `json:"avg_duration_minutes"`
	AvgPerHour      float64               `json:"avg_per_hour"`
	AvgPerMile      float64               `json:"avg_per_mile"`
	Score           float64               `json:"score"`
	Trips           []TripEfficiencyEntry `json:"trips"`
}

// TripEfficiencyEntry is one classified trip in the efficiency report.
type TripEfficiencyEntry struct {
	Date            string  `json:"date"`
	Restaurant      string  `json:"restaurant"`
	DurationMinutes int     `json:"duration_minutes"`
	Pay             float64 `json:"pay"`
	Distance        float64 `json:"distance"`
	PerHour         float64 `json:"per_hour"`
	PerMile         float64 `json:"per_mile"`
	Category        string  `json:"category"`
	ManualEntry     bool    `json:"manual_entry"`
}

// GetEfficiency handles GET /v1/stats/efficiency?filter=
// The filter parameter narrows the trip list to one category tab: all,
// optimal, acceptable, short, long or low-pay.
func (h *StatsHandler) GetEfficiency(c *gin.Context) {
	filter := c.DefaultQuery("filter", "all")

	report, err := h.statsService.Efficiency(c.Request.Context(), filter)
	if err != nil {
		respondError(c, err)
		return
	}

	response := EfficiencyResponse{
		OptimalCount:    report.OptimalCount,
		AcceptableCount: report.AcceptableCount,
		ShortCount:      report.ShortCount,
		LongCount:       report.LongCount,
		LowPayCount:     report.LowPayCount,
		AvgDuration:     report.AvgDuration,
		AvgPerHour:      report.AvgPerHour,
		AvgPerMile:      report.AvgPerMile,
		Score:           report.Score,
		Trips:           make([]TripEfficiencyEntry, 0, len(report.Trips)),
	}
	for _, t := range report.Trips {
		response.Trips = append(response.Trips, TripEfficiencyEntry{
			Date:            t.Date,
			Restaurant:      t.Restaurant,
			DurationMinutes: t.DurationMinutes,
			Pay:             t.Pay,
			Distance:        t.Distance,
			PerHour:         t.PerHour,
			PerMile:         t.PerMile,
			Category:        string(t.Category),
			ManualEntry:     t.ManualEntry,
		})
	}
	respondJSON(c, http.StatusOK, response)
}

// RestaurantsResponse is the HTTP response for restaurant rankings.
type RestaurantsResponse struct {
	BestTippers  []RestaurantEntry `json:"best_tippers"`
	MostFrequent []RestaurantEntry `json:"most_frequent"`
	BestValue    []RestaurantEntry `json:"best_value"`
}

// RestaurantEntry is one restaurant's aggregated stats.
type RestaurantEntry struct {
	Name           string  `json:"name"`
	Trips          int     `json:"trips"`
	AvgTip         float64 `json:"avg_tip"`
	AvgPay         float64 `json:"avg_pay"`
	TotalTips      float64 `json:"total_tips"`
	TipRatePercent float64 `json:"tip_rate_percent"`
}

// GetRestaurants handles GET /v1/stats/restaurants
func (h *StatsHandler) GetRestaurants(c *gin.Context) {
	rankings, err := h.statsService.Restaurants(c.Request.Context())
	if err != nil {
		respondError(c, err)
		return
	}

	respondJSON(c, http.StatusOK, RestaurantsResponse{
		BestTippers:  toRestaurantEntries(rankings.BestTippers),
		MostFrequent: toRestaurantEntries(rankings.MostFrequent),
		BestValue:    toRestaurantEntries(rankings.BestValue),
	})
}

func toRestaurantEntries(list []stats.RestaurantStats) []RestaurantEntry {
	entries := make([]RestaurantEntry, 0, len(list))
	for _, r := range list {
		entries = append(entries, RestaurantEntry{
			Name:           r.Name,
			Trips:          r.Trips,
			AvgTip:         r.AvgTip,
			AvgPay:         r.AvgPay,
			TotalTips:      r.TotalTips,
			TipRatePercent: r.TipRatePercent,
		})
	}
	return entries
}
