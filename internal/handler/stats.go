package handler

import (
	"net/http"
	"strconv"
	"time"

	"github.com/gin-gonic/gin"

	"lastmile/internal/service"
	"lastmile/internal/stats"
)

// StatsHandler handles HTTP requests for statistics rollups.
type StatsHandler struct {
	statsService *service.StatsService
}

// NewStatsHandler creates a new StatsHandler.
func NewStatsHandler(statsService *service.StatsService) *StatsHandler {
	return &StatsHandler{statsService: statsService}
}

// SummaryResponse is the HTTP response for the stats summary.
type SummaryResponse struct {
	TotalEarnings    float64 `json:"total_earnings"`
	TotalTips        float64 `json:"total_tips"`
	TotalDistance    float64 `json:"total_distance"`
	TotalTrips       int     `json:"total_trips"`
	TotalDays        int     `json:"total_days"`
	AvgPerTrip       float64 `json:"avg_per_trip"`
	AvgPerHour       float64 `json:"avg_per_hour"`
	AvgPerMile       float64 `json:"avg_per_mile"`
	AvgPerDay        float64 `json:"avg_per_day"`
	TipRatePercent   float64 `json:"tip_rate_percent"`
	EstimatedHours   float64 `json:"estimated_hours"`
	MileageDeduction float64 `json:"mileage_deduction"`
	TaxableIncome    float64 `json:"taxable_income"`
}

// GetSummary handles GET /v1/stats/summary
func (h *StatsHandler) GetSummary(c *gin.Context) {
	global, err := h.statsService.GlobalStats()
	if err != nil {
		respondError(c, err)
		return
	}
	summary, tax, err := h.statsService.Summary()
	if err != nil {
		respondError(c, err)
		return
	}

	respondJSON(c, http.StatusOK, SummaryResponse{
		TotalEarnings:    global.TotalEarnings,
		TotalTips:        global.TotalTips,
		TotalDistance:    global.TotalDistance,
		TotalTrips:       global.TotalTrips,
		TotalDays:        global.TotalDays,
		AvgPerTrip:       summary.AvgPerTrip,
		AvgPerHour:       summary.AvgPerHour,
		AvgPerMile:       summary.AvgPerMile,
		AvgPerDay:        summary.AvgPerDay,
		TipRatePercent:   summary.TipRatePercent,
		EstimatedHours:   summary.EstimatedHours,
		MileageDeduction: tax.MileageDeduction,
		TaxableIncome:    tax.TaxableIncome,
	})
}

// InsightsResponse is the HTTP response for the headline findings.
type InsightsResponse struct {
	BestDayDate         string  `json:"best_day_date,omitempty"`
	BestDayEarnings     float64 `json:"best_day_earnings"`
	TopRestaurant       string  `json:"top_restaurant,omitempty"`
	TopRestaurantTrips  int     `json:"top_restaurant_trips"`
	PeakHours           string  `json:"peak_hours,omitempty"`
	PeakHoursAvgPay     float64 `json:"peak_hours_avg_pay"`
	BestWeekday         string  `json:"best_weekday,omitempty"`
	BestWeekdayEarnings float64 `json:"best_weekday_earnings"`
}

// GetInsights handles GET /v1/stats/insights
func (h *StatsHandler) GetInsights(c *gin.Context) {
	insights, err := h.statsService.Insights()
	if err != nil {
		respondError(c, err)
		return
	}

	respondJSON(c, http.StatusOK, InsightsResponse{
		BestDayDate:         insights.BestDayDate,
		BestDayEarnings:     insights.BestDayEarnings,
		TopRestaurant:       insights.TopRestaurant,
		TopRestaurantTrips:  insights.TopRestaurantTrips,
		PeakHours:           insights.PeakHoursLabel,
		PeakHoursAvgPay:     insights.PeakHoursAvgPay,
		BestWeekday:         insights.BestWeekday,
		BestWeekdayEarnings: insights.BestWeekdayEarnings,
	})
}

// WeekResponse is the HTTP response for a weekly rollup.
type WeekResponse struct {
	WeekStart    string  `json:"week_start"`
	WeekEnd      string  `json:"week_end"`
	Earnings     float64 `json:"earnings"`
	Trips        int     `json:"trips"`
	Miles        float64 `json:"miles"`
	DaysWorked   int     `json:"days_worked"`
	AvgPerTrip   float64 `json:"avg_per_trip"`
	AvgPerHour   float64 `json:"avg_per_hour"`
	GoalProgress float64 `json:"goal_progress_percent"`
}

// GetWeek handles GET /v1/stats/week?start=YYYY-MM-DD
// Without a start parameter it reports the most recent week in the data.
func (h *StatsHandler) GetWeek(c *gin.Context) {
	var rollup stats.WeekRollup
	var err error

	if start := c.Query("start"); start != "" {
		var t time.Time
		t, err = time.ParseInLocation("2006-01-02", start, time.Local)
		if err != nil {
			respondError(c, service.ErrInvalidWeekStart)
			return
		}
		rollup, err = h.statsService.WeekStats(t)
	} else {
		rollup, err = h.statsService.LatestWeekStats()
	}
	if err != nil {
		respondError(c, err)
		return
	}

	respondJSON(c, http.StatusOK, WeekResponse{
		WeekStart:    rollup.Start.Format("2006-01-02"),
		WeekEnd:      rollup.End.Format("2006-01-02"),
		Earnings:     rollup.Earnings,
		Trips:        rollup.Trips,
		Miles:        rollup.Miles,
		DaysWorked:   rollup.DaysWorked,
		AvgPerTrip:   rollup.AvgPerTrip,
		AvgPerHour:   rollup.AvgPerHour,
		GoalProgress: rollup.GoalProgress,
	})
}

// MonthResponse is one month's rollup in the monthly breakdown.
type MonthResponse struct {
	Label      string  `json:"label"`
	Earnings   float64 `json:"earnings"`
	Tips       float64 `json:"tips"`
	Distance   float64 `json:"distance"`
	Trips      int     `json:"trips"`
	DaysWorked int     `json:"days_worked"`
	AvgPerTrip float64 `json:"avg_per_trip"`
}

// GetMonthly handles GET /v1/stats/monthly
func (h *StatsHandler) GetMonthly(c *gin.Context) {
	months, err := h.statsService.Monthly(c.Request.Context())
	if err != nil {
		respondError(c, err)
		return
	}

	response := make([]MonthResponse, 0, len(months))
	for _, m := range months {
		response = append(response, MonthResponse{
			Label:      m.Label,
			Earnings:   m.Earnings,
			Tips:       m.Tips,
			Distance:   m.Distance,
			Trips:      m.Trips,
			DaysWorked: m.DaysWorked,
			AvgPerTrip: m.AvgPerTrip,
		})
	}
	c.JSON(http.StatusOK, response)
}

// WeekdayTotalsResponse is the HTTP response for weekday totals.
type WeekdayTotalsResponse struct {
	Weekdays    []WeekdayTotalsEntry `json:"weekdays"`
	BestWeekday string               `json:"best_weekday,omitempty"`
}

// WeekdayTotalsEntry is one weekday's totals.
type WeekdayTotalsEntry struct {
	Weekday  string  `json:"weekday"`
	Earnings float64 `json:"earnings"`
	Trips    int     `json:"trips"`
}

// GetWeekdayTotals handles GET /v1/stats/weekdays/totals
func (h *StatsHandler) GetWeekdayTotals(c *gin.Context) {
	totals, best, err := h.statsService.WeekdayTotals()
	if err != nil {
		respondError(c, err)
		return
	}

	response := WeekdayTotalsResponse{BestWeekday: best.Weekday}
	for _, t := range totals {
		response.Weekdays = append(response.Weekdays, WeekdayTotalsEntry{
			Weekday:  t.Weekday,
			Earnings: t.Earnings,
			Trips:    t.Trips,
		})
	}
	respondJSON(c, http.StatusOK, response)
}

// WeekdayEfficiencyResponse is the HTTP response for weekday per-trip
// averages.
type WeekdayEfficiencyResponse struct {
	Weekdays    []WeekdayEfficiencyEntry `json:"weekdays"`
	BestWeekday string                   `json:"best_weekday,omitempty"`
}

// WeekdayEfficiencyEntry is one weekday's per-trip averages.
type WeekdayEfficiencyEntry struct {
	Weekday        string  `json:"weekday"`
	Trips          int     `json:"trips"`
	DaysWorked     int     `json:"days_worked"`
	AvgPerTrip     float64 `json:"avg_per_trip"`
	AvgTipPerTrip  float64 `json:"avg_tip_per_trip"`
	TipRatePercent float64 `json:"tip_rate_percent"`
	AvgPerMile     float64 `json:"avg_per_mile"`
	AvgTripsPerDay float64 `json:"avg_trips_per_day"`
}

// GetWeekdayEfficiency handles GET /v1/stats/weekdays/efficiency
func (h *StatsHandler) GetWeekdayEfficiency(c *gin.Context) {
	rollup, best, err := h.statsService.WeekdayEfficiency()
	if err != nil {
		respondError(c, err)
		return
	}

	response := WeekdayEfficiencyResponse{BestWeekday: best.Weekday}
	for _, m := range rollup {
		response.Weekdays = append(response.Weekdays, WeekdayEfficiencyEntry{
			Weekday:        m.Weekday,
			Trips:          m.Trips,
			DaysWorked:     m.DaysWorked,
			AvgPerTrip:     m.AvgPerTrip,
			AvgTipPerTrip:  m.AvgTipPerTrip,
			TipRatePercent: m.TipRatePercent,
			AvgPerMile:     m.AvgPerMile,
			AvgTripsPerDay: m.AvgTripsPerDay,
		})
	}
	respondJSON(c, http.StatusOK, response)
}

// PeakHoursResponse is the HTTP response for hourly peak detection.
type PeakHoursResponse struct {
	Label     string           `json:"label"`
	AvgPay    float64          `json:"avg_pay"`
	Ranges    []HourRangeInfo  `json:"ranges"`
	HourStats []HourBucketInfo `json:"hour_stats"`
}

// HourRangeInfo is one contiguous peak range.
type HourRangeInfo struct {
	Start int `json:"start"`
	End   int `json:"end"`
}

// HourBucketInfo is one hour bucket's stats.
type HourBucketInfo struct {
	Hour   int     `json:"hour"`
	Trips  int     `json:"trips"`
	AvgPay float64 `json:"avg_pay"`
	Score  float64 `json:"score"`
}

// GetHourlyPeaks handles GET /v1/stats/hours/peaks
func (h *StatsHandler) GetHourlyPeaks(c *gin.Context) {
	peaks, err := h.statsService.HourlyPeaks(c.Request.Context())
	if err != nil {
		respondError(c, err)
		return
	}

	response := PeakHoursResponse{Label: peaks.Label, AvgPay: peaks.TopAvgPay}
	for _, r := range peaks.Ranges {
		response.Ranges = append(response.Ranges, HourRangeInfo{Start: r.Start, End: r.End})
	}
	for _, b := range peaks.Buckets {
		response.HourStats = append(response.HourStats, HourBucketInfo{
			Hour:   b.Hour,
			Trips:  b.Trips,
			AvgPay: b.AvgPay,
			Score:  b.Score,
		})
	}
	respondJSON(c, http.StatusOK, response)
}

// TopDaysResponse is one ranked day in the top-days list.
type TopDaysResponse struct {
	Rank     int     `json:"rank"`
	Date     string  `json:"date"`
	Trips    int     `json:"trips"`
	Earnings float64 `json:"earnings"`
}

// GetTopDays handles GET /v1/stats/days/top?limit=10
func (h *StatsHandler) GetTopDays(c *gin.Context) {
	limit := 10
	if raw := c.Query("limit"); raw != "" {
		if n, err := strconv.Atoi(raw); err == nil && n > 0 {
			limit = n
		}
	}

	days, err := h.statsService.TopDays(limit)
	if err != nil {
		respondError(c, err)
		return
	}

	response := make([]TopDaysResponse, 0, len(days))
	for _, d := range days {
		response = append(response, TopDaysResponse{
			Rank:     d.Rank,
			Date:     d.Date,
			Trips:    d.Stats.TripCount,
			Earnings: d.Stats.TotalEarnings,
		})
	}
	c.JSON(http.StatusOK, response)
}
