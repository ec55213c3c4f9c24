// Package httputil holds response helpers shared by the API handlers.
package httputil

import "github.com/gin-gonic/gin"

// RespondError aborts the request with the analyzer's uniform JSON error
// shape: a machine-readable code, a human message, and the request id when
// one was assigned.
func RespondError(c *gin.Context, status int, code, message string) {
	resp := map[string]string{
		"code":    code,
		"message": message,
	}

	if rid, exists := c.Get("request_id"); exists {
		if s, ok := rid.(string); ok && s != "" {
			resp["request_id"] = s
		}
	}

	c.AbortWithStatusJSON(status, resp)
}
