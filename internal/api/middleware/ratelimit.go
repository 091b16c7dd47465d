package middleware

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	apierrors "github.com/offline-pay/token-ledger/internal/api/shared/errors"
	"github.com/offline-pay/token-ledger/internal/logger"
	"github.com/offline-pay/token-ledger/internal/ratelimit"
)

// RateLimit returns a gin middleware throttling requests per tenant.
// Requests outside a tenant route are keyed by client IP.
func RateLimit(limiter ratelimit.Limiter) gin.HandlerFunc {
	return func(c *gin.Context) {
		key := c.Param(TENANT_PARAM)
		if key == "" {
			key = "ip:" + c.ClientIP()
		}

		if !limiter.Allow(key) {
			logger.WarnCtx(c.Request.Context(), "Rate limit exceeded",
				zap.String("key", key),
				zap.String("path", c.Request.URL.Path),
			)
			c.AbortWithStatusJSON(http.StatusTooManyRequests, apierrors.NewRateLimitedError("Too many requests"))
			return
		}

		c.Next()
	}
}
