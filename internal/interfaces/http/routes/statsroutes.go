package routes

import (
	"github.com/gin-gonic/gin"

	"recallhub/internal/interfaces/http/handlers"
)

// StatsRouteConfig holds dependencies for reporting routes.
type StatsRouteConfig struct {
	StatsHandler *handlers.StatsHandler
}

// SetupStatsRoutes configures the read-only reporting routes.
func SetupStatsRoutes(engine *gin.Engine, cfg *StatsRouteConfig) {
	stats := engine.Group("/stats")
	{
		stats.GET("/recalls", cfg.StatsHandler.SearchRecalls)
		stats.GET("/overview", cfg.StatsHandler.GetOverview)
		stats.GET("/rankings/makers", cfg.StatsHandler.GetMakerRanking)
		stats.GET("/rankings/models", cfg.StatsHandler.GetModelRanking)
		stats.GET("/trend", cfg.StatsHandler.GetYearTrend)
		stats.GET("/filters", cfg.StatsHandler.GetFilterOptions)
	}
}
