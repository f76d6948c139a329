package handlers

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"recallhub/internal/shared/logger"
)

type HealthHandler struct {
	db     *gorm.DB
	logger logger.Interface
}

func NewHealthHandler(db *gorm.DB) *HealthHandler {
	return &HealthHandler{
		db:     db,
		logger: logger.NewLogger(),
	}
}

func (h *HealthHandler) HealthCheck(c *gin.Context) {
	status := "healthy"
	statusCode := http.StatusOK

	sqlDB, err := h.db.DB()
	if err == nil {
		err = sqlDB.PingContext(c.Request.Context())
	}
	if err != nil {
		h.logger.Errorw("database health check failed", "error", err)
		status = "unhealthy"
		statusCode = http.StatusServiceUnavailable
	}

	c.JSON(statusCode, gin.H{
		"status":    status,
		"timestamp": time.Now().UTC().Format(time.RFC3339),
	})
}
