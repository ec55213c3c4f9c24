package middleware

import (
	"strconv"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/EmircanDemirTR/social-network-analyzer/internal/metrics"
)

// PrometheusMiddleware feeds the sna_http_* duration and count collectors.
func PrometheusMiddleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		start := time.Now()
		c.Next()

		duration := time.Since(start).Seconds()
		status := strconv.Itoa(c.Writer.Status())

		// Label by route pattern, not the concrete path: node and edge ids
		// would otherwise blow up metric cardinality.
		path := c.FullPath()
		if path == "" {
			path = "unknown"
		}

		metrics.RequestDuration.WithLabelValues(c.Request.Method, path, status).Observe(duration)
		metrics.RequestsTotal.WithLabelValues(c.Request.Method, path, status).Inc()
	}
}
