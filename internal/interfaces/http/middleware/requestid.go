package middleware

import (
	"github.com/gin-gonic/gin"

	"recallhub/internal/shared/constants"
	"recallhub/internal/shared/id"
)

// RequestID attaches a correlation ID to every request. An inbound
// X-Request-ID header is honored so callers can trace a request across
// services; otherwise a fresh ID is generated.
func RequestID() gin.HandlerFunc {
	return func(c *gin.Context) {
		requestID := c.GetHeader(constants.HeaderXRequestID)
		if requestID == "" {
			requestID = id.NewRequestID()
		}

		c.Set(constants.ContextKeyRequestID, requestID)
		c.Header(constants.HeaderXRequestID, requestID)

		c.Next()
	}
}
