package middleware

import (
	"time"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

// RequestLogger logs every request on completion with method, path, status
// and duration.
func RequestLogger() gin.HandlerFunc {
	return func(c *gin.Context) {
		start := time.Now()

		c.Next()

		duration := time.Since(start)

		fields := []zap.Field{
			zap.String("method", c.Request.Method),
			zap.String("path", c.Request.URL.Path),
			zap.Int("status", c.Writer.Status()),
			zap.Duration("duration", duration),
			zap.String("ip", c.ClientIP()),
		}
		if c.Errors.String() != "" {
			fields = append(fields, zap.String("errors", c.Errors.String()))
		}

		zap.L().Info("Request completed", fields...)

		if duration > 5*time.Second {
			zap.L().Warn("Slow request detected",
				zap.Duration("duration", duration),
				zap.String("path", c.Request.URL.Path))
		}
	}
}
