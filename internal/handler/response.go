package handler

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"lastmile/internal/service"
)

// ErrorResponse represents an error response.
type ErrorResponse struct {
	Error string `json:"error"`
}

// respondError sends an error response with the appropriate HTTP status code.
func respondError(c *gin.Context, err error) {
	code := mapErrorToHTTPStatus(err)
	c.JSON(code, ErrorResponse{Error: err.Error()})
}

// respondJSON sends a JSON response with the given status code.
func respondJSON(c *gin.Context, code int, data any) {
	c.JSON(code, data)
}

// mapErrorToHTTPStatus maps service errors to HTTP status codes.
func mapErrorToHTTPStatus(err error) int {
	switch {
	// Not found errors
	case errors.Is(err, service.ErrDayNotFound):
		return http.StatusNotFound

	// Validation errors - Bad Request
	case errors.Is(err, service.ErrInvalidTripDate),
		errors.Is(err, service.ErrInvalidRestaurant),
		errors.Is(err, service.ErrInvalidAmount),
		errors.Is(err, service.ErrInvalidWeekStart):
		return http.StatusBadRequest

	// Ledger not built yet - the one retryable startup state
	case errors.Is(err, service.ErrNotLoaded):
		return http.StatusServiceUnavailable

	// Upstream fetch failure
	case errors.Is(err, service.ErrLoadFailed):
		return http.StatusBadGateway

	// Default to internal server error
	default:
		return http.StatusInternalServerError
	}
}
