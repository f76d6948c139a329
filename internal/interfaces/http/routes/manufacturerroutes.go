package routes

import (
	"github.com/gin-gonic/gin"

	"recallhub/internal/interfaces/http/handlers"
)

// ManufacturerRouteConfig holds dependencies for manufacturer routes.
type ManufacturerRouteConfig struct {
	ManufacturerHandler *handlers.ManufacturerHandler
}

// SetupManufacturerRoutes configures manufacturer routes.
func SetupManufacturerRoutes(engine *gin.Engine, cfg *ManufacturerRouteConfig) {
	manufacturers := engine.Group("/manufacturers")
	{
		manufacturers.POST("", cfg.ManufacturerHandler.CreateManufacturer)
		manufacturers.GET("", cfg.ManufacturerHandler.ListManufacturers)
		manufacturers.GET("/:id", cfg.ManufacturerHandler.GetManufacturer)
		manufacturers.PATCH("/:id", cfg.ManufacturerHandler.UpdateManufacturer)
		manufacturers.DELETE("/:id", cfg.ManufacturerHandler.DeleteManufacturer)
	}
}
