package middleware

import (
	"net/http"
	"runtime/debug"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"github.com/festy23/veterans_league/internal/response"
	"github.com/festy23/veterans_league/internal/session"
)

// Recovery turns a handler panic into a 500 error envelope. The log entry
// carries the matched route and the caller, when one was resolved.
func Recovery(logger *zap.SugaredLogger) gin.HandlerFunc {
	return func(c *gin.Context) {
		defer func() {
			rec := recover()
			if rec == nil {
				return
			}
			logger.Errorw("panic recovered",
				"panic", rec,
				"request_id", c.GetString(requestIDKey),
				"route", c.FullPath(),
				"method", c.Request.Method,
				"caller", session.FromContext(c).Email,
				"stack", string(debug.Stack()),
			)
			if !c.Writer.Written() {
				response.AbortWithError(c, response.CodeInternal, "internal server error", http.StatusInternalServerError)
				return
			}
			c.Abort()
		}()

		c.Next()
	}
}
