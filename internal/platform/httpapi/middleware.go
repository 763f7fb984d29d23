package httpapi

import (
	"time"

	"github.com/charmbracelet/log"
	"github.com/gin-gonic/gin"
)

// requestLogger logs one line per request. Server errors log at error level.
func requestLogger(logger *log.Logger) gin.HandlerFunc {
	return func(ctx *gin.Context) {
		start := time.Now()
		ctx.Next()

		status := ctx.Writer.Status()
		fields := []any{
			"method", ctx.Request.Method,
			"path", ctx.Request.URL.Path,
			"status", status,
			"latency", time.Since(start),
			"client", ctx.ClientIP(),
		}
		if status >= 500 {
			logger.Error("request", fields...)
			return
		}
		logger.Info("request", fields...)
	}
}
