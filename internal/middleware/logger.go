package middleware

import (
	"time"

	"github.com/wb-go/wbf/ginext"
	"github.com/wb-go/wbf/logger"
)

func RequestLogger(log logger.Logger) ginext.HandlerFunc {
	return func(c *ginext.Context) {
		start := time.Now()

		c.Next()

		status := c.Writer.Status()
		level := logger.InfoLevel
		switch {
		case status >= 500:
			level = logger.ErrorLevel
		case status >= 400:
			level = logger.WarnLevel
		}

		log.LogAttrs(c.Request.Context(), level, "http request",
			logger.String("method", c.Request.Method),
			logger.String("path", c.FullPath()),
			logger.Int("status", status),
			logger.Duration("latency", time.Since(start)),
			logger.String("request_id", c.GetString(ctxRequestID)),
			logger.String("error", c.GetString("error")),
		)
	}
}
