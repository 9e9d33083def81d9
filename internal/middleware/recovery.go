package middleware

import (
	"fmt"
	"net/http"
	"runtime/debug"

	"github.com/stpnv0/SitterMatch/internal/handler/dto"
	"github.com/wb-go/wbf/ginext"
	"github.com/wb-go/wbf/logger"
)

// Recovery turns a handler panic into a 500 carrying the request id, so the
// caller can quote it when reporting.
func Recovery(log logger.Logger) ginext.HandlerFunc {
	return func(c *ginext.Context) {
		defer func() {
			rec := recover()
			if rec == nil {
				return
			}

			requestID := c.GetString(ctxRequestID)
			log.LogAttrs(c.Request.Context(), logger.ErrorLevel, "panic recovered",
				logger.String("request_id", requestID),
				logger.String("method", c.Request.Method),
				logger.String("path", c.FullPath()),
				logger.Any("panic", rec),
				logger.String("stack", string(debug.Stack())),
			)

			c.Set("error", fmt.Sprint(rec))
			msg := "internal server error"
			if requestID != "" {
				msg += " (request " + requestID + ")"
			}
			c.AbortWithStatusJSON(http.StatusInternalServerError, dto.ErrorResponse{Error: msg})
		}()

		c.Next()
	}
}
