package api

import (
	"time"

	"github.com/gin-gonic/gin"
)

// requestMetrics records every served request into the monitor and the
// prometheus collector.
func (s *Server) requestMetrics() gin.HandlerFunc {
	return func(c *gin.Context) {
		start := time.Now()
		c.Next()

		duration := time.Since(start)
		path := c.FullPath()
		if path == "" {
			path = "unmatched"
		}

		s.monitor.RecordRequest(c.Request.Method, path, c.Writer.Status(), duration)
		s.metrics.ObserveRequest(c.Request.Method, path, c.Writer.Status(), duration)
	}
}
