// Package middleware holds the Gin middleware of the analyzer's REST API:
// request correlation, body size limits, and per-route HTTP metrics.
package middleware

import (
	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/sirupsen/logrus"
)

const (
	// RequestIDKey is the gin context key carrying the request ID; error
	// responses echo it so a visualizer bug report can be matched to logs.
	RequestIDKey = "request_id"

	// RequestIDHeader propagates the request ID to the client.
	RequestIDHeader = "X-Request-ID"
)

// RequestID tags every request with a fresh server-side UUID. A client-sent
// X-Request-ID is remembered under "client_request_id" for correlation but
// never trusted as the canonical ID.
func RequestID(log *logrus.Logger) gin.HandlerFunc {
	return func(c *gin.Context) {
		id := uuid.New().String()

		if clientID := c.GetHeader(RequestIDHeader); clientID != "" {
			log.WithFields(logrus.Fields{
				"request_id":        id,
				"client_request_id": clientID,
			}).Debug("mapped client request id")
			c.Set("client_request_id", clientID)
		}

		c.Set(RequestIDKey, id)
		c.Header(RequestIDHeader, id)
		c.Next()
	}
}
