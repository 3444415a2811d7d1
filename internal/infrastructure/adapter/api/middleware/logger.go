package middleware

import (
	"time"

	coreport "github.com/velabs/govlock/internal/domain/port/core"
	"github.com/gin-gonic/gin"
)

// InstructionIDKey is the gin context key under which handlers record the
// client instruction ID after binding, so middleware can correlate log lines
// with the idempotency journal.
const InstructionIDKey = "instruction_id"

// Logger middleware logs every request after it completes. Failed requests
// are raised to warn (4xx) or error (5xx) so ledger rejections stand out.
func Logger(logger coreport.Logger) gin.HandlerFunc {
	return func(c *gin.Context) {
		start := time.Now()
		path := c.Request.URL.Path
		method := c.Request.Method
		ip := c.ClientIP()

		c.Next()

		latency := time.Since(start)
		statusCode := c.Writer.Status()

		fields := map[string]any{
			"method":     method,
			"path":       path,
			"status":     statusCode,
			"latency_ms": latency.Milliseconds(),
			"bytes":      c.Writer.Size(),
			"ip":         ip,
			"request_id": c.GetHeader("X-Request-ID"),
			"errors":     c.Errors.Errors(),
		}
		if instructionID := c.GetString(InstructionIDKey); instructionID != "" {
			fields[InstructionIDKey] = instructionID
		}

		switch {
		case statusCode >= 500:
			logger.Error("Request failed", fields)
		case statusCode >= 400:
			logger.Warn("Request rejected", fields)
		default:
			logger.Info("Request processed", fields)
		}
	}
}
