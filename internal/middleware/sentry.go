package middleware

import (
	"time"

	"github.com/getsentry/sentry-go"
	"github.com/gin-gonic/gin"
)

// SentryReporter sends panics and 5xx responses to Sentry. It must run inside gin.Recovery.
func SentryReporter() gin.HandlerFunc {
	return func(c *gin.Context) {
		hub := sentry.CurrentHub().Clone()
		hub.Scope().SetTag("request_id", c.GetString(CtxRequestID))
		hub.Scope().SetRequest(c.Request)

		defer func() {
			if err := recover(); err != nil {
				hub.RecoverWithContext(c.Request.Context(), err)
				hub.Flush(2 * time.Second)
				panic(err)
			}
		}()

		c.Next()

		if c.Writer.Status() >= 500 && len(c.Errors) > 0 {
			hub.CaptureException(c.Errors.Last().Err)
		}
	}
}
