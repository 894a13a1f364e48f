package middleware

import (
	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"library-circulation/pkg/log"
)

const requestIDHeader = "X-Request-ID"

// RequestID tags every request with an identifier that the logger picks up
// from the context. An inbound X-Request-ID is honored so callers can
// correlate across services.
func (m Middleware) RequestID() gin.HandlerFunc {
	return func(c *gin.Context) {
		requestID := c.GetHeader(requestIDHeader)
		if requestID == "" {
			requestID = uuid.NewString()
		}

		ctx := log.ContextWithRequestID(c.Request.Context(), requestID)
		c.Request = c.Request.WithContext(ctx)
		c.Header(requestIDHeader, requestID)

		c.Next()
	}
}
