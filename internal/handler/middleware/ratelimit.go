package middleware

import (
	"context"
	"log/slog"
	"math"
	"net/http"
	"strconv"
	"strings"
	"time"

	"cowork-booking/internal/handler/httperr"
	"cowork-booking/internal/infra/cache"
	"cowork-booking/internal/pkg/config"
	"cowork-booking/internal/pkg/errs"

	"github.com/gin-gonic/gin"
)

var errRateLimited = errs.New("rate limit exceeded")

type RateLimiter interface {
	Take(ctx context.Context, key string, now time.Time) (cache.Decision, error)
}

// NewRateLimiter fails open: a store error lets the request through.
// A nil limiter or a disabled config yields a pass-through handler.
func NewRateLimiter(cfg config.RateLimitConfig, limiter RateLimiter) gin.HandlerFunc {
	if !cfg.Enabled || limiter == nil {
		return func(c *gin.Context) { c.Next() }
	}

	return func(c *gin.Context) {
		key := buildRateKey(cfg, c)

		decision, err := limiter.Take(c.Request.Context(), key, time.Now())
		if err != nil {
			slog.WarnContext(c.Request.Context(), "rate limiter unavailable", "key", key, "error", err.Error())
			c.Next()
			return
		}

		c.Header("X-RateLimit-Limit", strconv.Itoa(decision.Limit))
		c.Header("X-RateLimit-Remaining", strconv.FormatInt(decision.Remaining, 10))

		if !decision.Allowed {
			secs := int(math.Ceil(decision.RetryAfter.Seconds()))
			c.Header("Retry-After", strconv.Itoa(secs))
			httperr.AbortWithError(c, http.StatusTooManyRequests, errRateLimited, "rate limit exceeded",
				gin.H{"retry_after": secs})
			return
		}
		c.Next()
	}
}

func buildRateKey(cfg config.RateLimitConfig, c *gin.Context) string {
	ip := c.ClientIP()
	if ip == "" {
		ip = "unknown"
	}
	uid := "anon"
	if id, ok := GetUserID(c); ok {
		uid = id.String()
	}
	route := c.Request.Method + " " + c.FullPath()

	parts := []string{cfg.Prefix}
	switch strings.ToLower(cfg.KeyStrategy) {
	case "ip":
		parts = append(parts, "ip", ip)
	case "user":
		parts = append(parts, "user", uid)
	case "route":
		parts = append(parts, "route", route)
	case "ip_user":
		parts = append(parts, "ip", ip, "user", uid)
	case "ip_route":
		parts = append(parts, "ip", ip, "route", route)
	case "user_route":
		parts = append(parts, "user", uid, "route", route)
	default:
		parts = append(parts, "ip", ip, "user", uid, "route", route)
	}
	return strings.Join(parts, ":")
}
