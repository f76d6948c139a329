package routes

import (
	"github.com/gin-gonic/gin"

	"recallhub/internal/interfaces/http/handlers"
)

// CarModelRouteConfig holds dependencies for car model routes, including the
// recall endpoints nested under a model.
type CarModelRouteConfig struct {
	CarModelHandler *handlers.CarModelHandler
	RecallHandler   *handlers.RecallHandler
}

// SetupCarModelRoutes configures car model and nested recall routes.
func SetupCarModelRoutes(engine *gin.Engine, cfg *CarModelRouteConfig) {
	// Gin rejects two wildcard names in the same position, so every route
	// under /models uses :model_id.
	models := engine.Group("/models")
	{
		models.POST("", cfg.CarModelHandler.CreateCarModel)
		models.GET("", cfg.CarModelHandler.ListCarModels)
		models.GET("/:model_id", cfg.CarModelHandler.GetCarModel)
		models.PATCH("/:model_id", cfg.CarModelHandler.UpdateCarModel)
		models.PATCH("/:model_id/model-id", cfg.CarModelHandler.ChangeCarModelID)
		models.DELETE("/:model_id", cfg.CarModelHandler.DeleteCarModel)
	}

	recalls := engine.Group("/models/:model_id/recalls")
	{
		recalls.POST("", cfg.RecallHandler.CreateRecall)
		recalls.GET("", cfg.RecallHandler.ListRecalls)
		recalls.GET("/:recall_id", cfg.RecallHandler.GetRecall)
		recalls.PATCH("/:recall_id", cfg.RecallHandler.UpdateRecall)
		recalls.DELETE("/:recall_id", cfg.RecallHandler.DeleteRecall)
	}
}
