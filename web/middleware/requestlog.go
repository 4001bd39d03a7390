package middleware

import (
	"time"

	"blog/logger"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

// RequestLog tags each request with an id and logs method, path, status and
// duration after the handler chain completes.
func RequestLog() gin.HandlerFunc {
	return func(c *gin.Context) {
		if shouldSkipLog(c.Request.URL.Path) {
			c.Next()
			return
		}

		requestId := uuid.NewString()
		c.Set("request_id", requestId)
		start := time.Now()

		c.Next()

		logger.Debugf("%s %s %s -> %d (%s)",
			requestId[:8], c.Request.Method, c.Request.URL.Path,
			c.Writer.Status(), time.Since(start).Round(time.Microsecond))
	}
}

func shouldSkipLog(path string) bool {
	skipPaths := []string{
		"/assets/",
		"/favicon.ico",
	}
	for _, skipPath := range skipPaths {
		if len(path) >= len(skipPath) && path[:len(skipPath)] == skipPath {
			return true
		}
	}
	return false
}
