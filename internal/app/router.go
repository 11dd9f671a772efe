package app

import (
	"github.com/gin-gonic/gin"
	"github.com/newrelic/go-agent/v3/integrations/nrgin"
	"github.com/newrelic/go-agent/v3/newrelic"
	"github.com/redis/go-redis/v9"

	"lastmile/internal/handler"
	"lastmile/internal/middleware"
)

// RouterDeps contains all dependencies needed for the router.
type RouterDeps struct {
	StatsHandler  *handler.StatsHandler
	DayHandler    *handler.DayHandler
	SearchHandler *handler.SearchHandler
	TripHandler   *handler.TripHandler
	RedisClient   *redis.Client
	NewRelicApp   *newrelic.Application
}

// NewRouter creates a new Gin router with all routes registered.
func NewRouter(deps RouterDeps) *gin.Engine {
	router := gin.New()

	// Global middleware.
	router.Use(gin.Recovery())
	router.Use(gin.Logger())
	router.Use(middleware.CORSMiddleware())

	// Add New Relic middleware if enabled.
	if deps.NewRelicApp != nil {
		router.Use(nrgin.Middleware(deps.NewRelicApp))
	}

	router.Use(middleware.IdempotencyMiddleware(deps.RedisClient))

	// Health check.
	router.GET("/health", func(c *gin.Context) {
		c.JSON(200, gin.H{"status": "ok"})
	})

	// API v1 routes.
	v1 := router.Group("/v1")
	{
		// Statistics and rollup routes.
		stats := v1.Group("/stats")
		{
			stats.GET("/summary", deps.StatsHandler.GetSummary)
			stats.GET("/insights", deps.StatsHandler.GetInsights)
			stats.GET("/week", deps.StatsHandler.GetWeek)
			stats.GET("/monthly", deps.StatsHandler.GetMonthly)
			stats.GET("/weekdays/totals", deps.StatsHandler.GetWeekdayTotals)
			stats.GET("/weekdays/efficiency", deps.StatsHandler.GetWeekdayEfficiency)
			stats.GET("/hours/peaks", deps.StatsHandler.GetHourlyPeaks)
			stats.GET("/efficiency", deps.StatsHandler.GetEfficiency)
			stats.GET("/restaurants", deps.StatsHandler.GetRestaurants)
			stats.GET("/days/top", deps.StatsHandler.GetTopDays)
		}

		// Day routes.
		days := v1.Group("/days")
		{
			days.GET("", deps.DayHandler.ListDays)
			days.GET("/:date", deps.DayHandler.GetDay)
		}

		// Search.
		v1.GET("/search", deps.SearchHandler.Search)

		// Trip mutation routes.
		trips := v1.Group("/trips")
		{
			trips.POST("/manual", deps.TripHandler.CreateManualTrip)
			trips.POST("/reload", deps.TripHandler.ReloadPersistedTrips)
		}
	}

	return router
}
