// Package middleware assembles the gin chain: panic recovery, tracing,
// request logging, error rendering, authentication.
package middleware

import (
	"fmt"
	"runtime/debug"

	"github.com/gin-gonic/gin"

	"solkit/internal/core/apperror"
	"solkit/pkg/logger"
)

// Recovery converts a handler panic into a 500 rendered by ErrorHandler.
// The stack trace goes to the log, never to the client.
func Recovery() gin.HandlerFunc {
	return func(c *gin.Context) {
		defer func() {
			r := recover()
			if r == nil {
				return
			}

			logger.Error(c.Request.Context(), "panic recovered",
				"error", r,
				"stack", string(debug.Stack()),
			)

			appErr := apperror.NewInternal(fmt.Errorf("panic: %v", r)).
				WithDetail("request_id", c.GetString("request_id"))
			_ = c.Error(appErr)
			c.Abort()
		}()

		c.Next()
	}
}
