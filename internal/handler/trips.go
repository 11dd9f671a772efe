package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"lastmile/internal/service"
)

// TripHandler handles HTTP requests for trip mutations.
type TripHandler struct {
	ledgerService *service.LedgerService
}

// NewTripHandler creates a new TripHandler.
func NewTripHandler(ledgerService *service.LedgerService) *TripHandler {
	return &TripHandler{ledgerService: ledgerService}
}

// CreateManualTripRequest is the HTTP request body for recording a trip by
// hand.
type CreateManualTripRequest struct {
	Date            string  `json:"date"` // YYYY-MM-DD
	Restaurant      string  `json:"restaurant"`
	PickupAddress   string  `json:"pickup_address,omitempty"`
	DropoffAddress  string  `json:"dropoff_address,omitempty"`
	RequestTime     string  `json:"request_time,omitempty"` // HH:mm
	DurationMinutes int     `json:"duration_minutes,omitempty"`
	DistanceMiles   float64 `json:"distance_miles,omitempty"`
	BaseFare        float64 `json:"base_fare"`
	Tip             float64 `json:"tip,omitempty"`
	Incentive       float64 `json:"incentive,omitempty"`
}

// CreateManualTripResponse is the HTTP response for recording a trip.
type CreateManualTripResponse struct {
	ID         string  `json:"id"`
	Date       string  `json:"date"`
	Restaurant string  `json:"restaurant"`
	TotalPay   float64 `json:"total_pay"`
}

// CreateManualTrip handles POST /v1/trips/manual
func (h *TripHandler) CreateManualTrip(c *gin.Context) {
	var req CreateManualTripRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: "invalid request body"})
		return
	}

	manual, err := h.ledgerService.InsertManualTrip(c.Request.Context(), service.InsertManualTripRequest{
		Date:            req.Date,
		Restaurant:      req.Restaurant,
		PickupAddress:   req.PickupAddress,
		DropoffAddress:  req.DropoffAddress,
		RequestTime:     req.RequestTime,
		DurationMinutes: req.DurationMinutes,
		DistanceMiles:   req.DistanceMiles,
		BaseFare:        req.BaseFare,
		Tip:             req.Tip,
		Incentive:       req.Incentive,
	})
	if err != nil {
		respondError(c, err)
		return
	}

	respondJSON(c, http.StatusCreated, CreateManualTripResponse{
		ID:         manual.ID,
		Date:       manual.Date,
		Restaurant: manual.Trip.Restaurant,
		TotalPay:   manual.Trip.TotalPay,
	})
}

// ReloadTripsResponse is the HTTP response for merging persisted manual
// trips.
type ReloadTripsResponse struct {
	Added int `json:"added"`
}

// ReloadPersistedTrips handles POST /v1/trips/reload
func (h *TripHandler) ReloadPersistedTrips(c *gin.Context) {
	added, err := h.ledgerService.LoadPersistedTrips(c.Request.Context())
	if err != nil {
		respondError(c, err)
		return
	}
	respondJSON(c, http.StatusOK, ReloadTripsResponse{Added: added})
}
