package middleware

import (
	"log/slog"
	"net/http"

	"github.com/gin-gonic/gin"
	libredis "github.com/redis/go-redis/v9"
	"github.com/ulule/limiter/v3"
	"github.com/ulule/limiter/v3/drivers/store/memory"
	sredis "github.com/ulule/limiter/v3/drivers/store/redis"
)

// NewRateLimiter builds a limiter with the given rate (e.g. "5-M" for five
// requests per minute). When redisURL is set, rate limit counters are kept in
// Redis so they survive restarts and are shared between instances; otherwise
// an in-memory store is used.
func NewRateLimiter(rateFormat string, redisURL string, logger *slog.Logger) (*limiter.Limiter, error) {
	rate, err := limiter.NewRateFromFormatted(rateFormat)
	if err != nil {
		return nil, err
	}

	if redisURL != "" {
		opts, err := libredis.ParseURL(redisURL)
		if err != nil {
			return nil, err
		}
		client := libredis.NewClient(opts)
		store, err := sredis.NewStoreWithOptions(client, limiter.StoreOptions{
			Prefix: "daytrack_ratelimit",
		})
		if err != nil {
			return nil, err
		}
		logger.Info("Rate limiter using redis store")
		return limiter.New(store, rate), nil
	}

	logger.Info("Rate limiter using in-memory store")
	return limiter.New(memory.NewStore(), rate), nil
}

// RateLimit creates a Gin middleware for rate limiting requests by client IP.
func RateLimit(limiterInstance *limiter.Limiter) gin.HandlerFunc {
	return func(c *gin.Context) {
		ip := c.ClientIP()

		context, err := limiterInstance.Get(c.Request.Context(), ip)
		if err != nil {
			GetLoggerFromCtx(c.Request.Context()).Error("Failed to get rate limit context", slog.String("ip", ip), slog.String("error", err.Error()))
			c.AbortWithStatusJSON(http.StatusInternalServerError, gin.H{"error": "Internal server error during rate limit check"})
			return
		}

		if context.Reached {
			GetLoggerFromCtx(c.Request.Context()).Warn("Rate limit exceeded", slog.String("ip", ip), slog.Int64("limit", context.Limit), slog.Int64("remaining_requests", context.Remaining))
			c.AbortWithStatusJSON(http.StatusTooManyRequests, gin.H{"error": "Too many requests. Please try again later."})
			return
		}

		c.Next()
	}
}
