package handler

import (
	"math"
	"net/http"

	"github.com/gin-gonic/gin"

	"lastmile/internal/service"
)

// SearchHandler handles HTTP requests for free-text day search.
type SearchHandler struct {
	searchService *service.SearchService
}

// NewSearchHandler creates a new SearchHandler.
func NewSearchHandler(searchService *service.SearchService) *SearchHandler {
	return &SearchHandler{searchService: searchService}
}

// SearchResponse is the HTTP response for a search query.
type SearchResponse struct {
	Query         SearchQueryInfo      `json:"query"`
	Count         int                  `json:"count"`
	TotalEarnings float64              `json:"total_earnings"`
	Days          []DaySummaryResponse `json:"days"`
}

// SearchQueryInfo echoes how the free-text query was interpreted.
type SearchQueryInfo struct {
	MinEarnings float64  `json:"min_earnings"`
	MaxEarnings *float64 `json:"max_earnings,omitempty"`
	MinTrips    int      `json:"min_trips"`
	TextTokens  []string `json:"text_tokens"`
}

// Search handles GET /v1/search?q=
func (h *SearchHandler) Search(c *gin.Context) {
	predicate, result, err := h.searchService.Search(c.Query("q"))
	if err != nil {
		respondError(c, err)
		return
	}

	info := SearchQueryInfo{
		MinEarnings: predicate.MinEarnings,
		MinTrips:    predicate.MinTrips,
		TextTokens:  predicate.TextTokens,
	}
	if !math.IsInf(predicate.MaxEarnings, 1) {
		max := predicate.MaxEarnings
		info.MaxEarnings = &max
	}

	response := SearchResponse{
		Query:         info,
		Count:         result.Count,
		TotalEarnings: result.TotalEarnings,
		Days:          make([]DaySummaryResponse, 0, len(result.Days)),
	}
	for _, idx := range result.Days {
		response.Days = append(response.Days, DaySummaryResponse{
			Date:          idx.Date,
			TripCount:     idx.Stats.TripCount,
			TotalEarnings: idx.Stats.TotalEarnings,
			TotalTips:     idx.Stats.TotalTips,
			TotalDistance: idx.Stats.TotalDistance,
		})
	}
	respondJSON(c, http.StatusOK, response)
}
