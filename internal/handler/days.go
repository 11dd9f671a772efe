package handler

import (
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"

	"lastmile/internal/ingest"
	"lastmile/internal/service"
)

// DayHandler handles HTTP requests for day buckets.
type DayHandler struct {
	ledgerService *service.LedgerService
	statsService  *service.StatsService
}

// NewDayHandler creates a new DayHandler.
func NewDayHandler(ledgerService *service.LedgerService, statsService *service.StatsService) *DayHandler {
	return &DayHandler{ledgerService: ledgerService, statsService: statsService}
}

// DaySummaryResponse is one day's totals in the day list.
type DaySummaryResponse struct {
	Date          string  `json:"date"`
	TripCount     int     `json:"trip_count"`
	TotalEarnings float64 `json:"total_earnings"`
	TotalTips     float64 `json:"total_tips"`
	TotalDistance float64 `json:"total_distance"`
}

// ListDays handles GET /v1/days?month=YYYY-MM
// Without a month parameter every day is returned, oldest first.
func (h *DayHandler) ListDays(c *gin.Context) {
	days, err := h.statsService.Days()
	if err != nil {
		respondError(c, err)
		return
	}

	month := c.Query("month")
	response := make([]DaySummaryResponse, 0, len(days))
	for _, d := range days {
		if month != "" && !strings.HasPrefix(d.Date, month) {
			continue
		}
		response = append(response, DaySummaryResponse{
			Date:          d.Date,
			TripCount:     d.Stats.TripCount,
			TotalEarnings: d.Stats.TotalEarnings,
			TotalTips:     d.Stats.TotalTips,
			TotalDistance: d.Stats.TotalDistance,
		})
	}
	c.JSON(http.StatusOK, response)
}

// DayDetailResponse is one day's totals plus its trips.
type DayDetailResponse struct {
	Date          string         `json:"date"`
	TripCount     int            `json:"trip_count"`
	TotalEarnings float64        `json:"total_earnings"`
	TotalTips     float64        `json:"total_tips"`
	TotalDistance float64        `json:"total_distance"`
	Trips         []TripResponse `json:"trips"`
}

// TripResponse is one trip in a day detail. Dropoff addresses are masked
// and pickup addresses sanitized before leaving the service.
type TripResponse struct {
	ID              string  `json:"id"`
	Restaurant      string  `json:"restaurant"`
	PickupAddress   string  `json:"pickup_address"`
	DropoffAddress  string  `json:"dropoff_address"`
	RequestTime     string  `json:"request_time"`
	DropoffTime     string  `json:"dropoff_time,omitempty"`
	DurationMinutes int     `json:"duration_minutes"`
	DistanceMiles   float64 `json:"distance_miles"`
	TotalPay        float64 `json:"total_pay"`
	BaseFare        float64 `json:"base_fare"`
	Tip             float64 `json:"tip"`
	Incentive       float64 `json:"incentive"`
	PerHour         float64 `json:"per_hour"`
	PerMile         float64 `json:"per_mile"`
	ServiceType     string  `json:"service_type,omitempty"`
	ManualEntry     bool    `json:"manual_entry"`
}

// GetDay handles GET /v1/days/:date
func (h *DayHandler) GetDay(c *gin.Context) {
	day, err := h.ledgerService.DayDetail(c.Param("date"))
	if err != nil {
		respondError(c, err)
		return
	}

	response := DayDetailResponse{
		Date:          day.Date,
		TripCount:     day.Stats.TripCount,
		TotalEarnings: day.Stats.TotalEarnings,
		TotalTips:     day.Stats.TotalTips,
		TotalDistance: day.Stats.TotalDistance,
		Trips:         make([]TripResponse, 0, len(day.Trips)),
	}
	for _, t := range day.Trips {
		response.Trips = append(response.Trips, TripResponse{
			ID:              t.ID,
			Restaurant:      t.Restaurant,
			PickupAddress:   ingest.SanitizePickupAddress(t.PickupAddress, t.Restaurant),
			DropoffAddress:  ingest.MaskDropoffAddress(t.DropoffAddress),
			RequestTime:     t.RequestTime,
			DropoffTime:     t.DropoffTime,
			DurationMinutes: t.DurationMinutes,
			DistanceMiles:   t.DistanceMiles,
			TotalPay:        t.TotalPay,
			BaseFare:        t.BaseFare,
			Tip:             t.Tip,
			Incentive:       t.Incentive,
			PerHour:         t.PerHour(),
			PerMile:         t.PerMile(),
			ServiceType:     t.ServiceType,
			ManualEntry:     t.ManualEntry,
		})
	}
	respondJSON(c, http.StatusOK, response)
}
