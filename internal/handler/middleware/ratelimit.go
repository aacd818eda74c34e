package middleware

import (
	"log/slog"
	"net/http"

	"appointment-agent/internal/handler/httperr"
	"appointment-agent/internal/infra/ratelimit"
	"appointment-agent/internal/pkg/errs"

	"github.com/gin-gonic/gin"
)

// RateLimit counts requests per client IP. A nil limiter disables the
// check, and limiter failures let the request through.
func RateLimit(limiter ratelimit.Limiter) gin.HandlerFunc {
	return func(c *gin.Context) {
		if limiter == nil {
			c.Next()
			return
		}

		allowed, err := limiter.Allow(c.Request.Context(), c.ClientIP())
		if err != nil {
			slog.WarnContext(c.Request.Context(), "rate limiter error", "error", err, "client_ip", c.ClientIP())
			c.Next()
			return
		}
		if !allowed {
			httperr.AbortWithError(c, http.StatusTooManyRequests, errs.New("rate limit exceeded"), httperr.MsgRateLimited, nil)
			return
		}
		c.Next()
	}
}
