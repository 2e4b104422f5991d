package middleware

import (
	"fmt"
	"log/slog"
	"net/http"
	"time"

	"github.com/labstack/echo/v4"
	"github.com/redis/go-redis/v9"
)

// RateLimit returns middleware that limits requests per client IP using a
// fixed window counter in Redis. Apply to credential endpoints (login,
// register) to slow down brute-force attempts. Counters are shared across
// server instances because they live in Redis, not process memory.
//
// The first request in a window creates the counter with an expiry; later
// requests only increment it. When Redis is unreachable the request is
// allowed through, availability wins over throttling here.
func RateLimit(rdb *redis.Client, limit int, window time.Duration) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			ctx := c.Request().Context()
			key := fmt.Sprintf("ratelimit:%s:%s", c.Path(), c.RealIP())

			count, err := rdb.Incr(ctx, key).Result()
			if err != nil {
				slog.Warn("rate limit check failed, allowing request",
					slog.String("key", key),
					slog.Any("error", err),
				)
				return next(c)
			}

			if count == 1 {
				// New window. If EXPIRE fails the key lives forever, so
				// verify and delete on failure rather than lock the IP out.
				if err := rdb.Expire(ctx, key, window).Err(); err != nil {
					slog.Warn("rate limit expire failed",
						slog.String("key", key),
						slog.Any("error", err),
					)
					rdb.Del(ctx, key)
					return next(c)
				}
			}

			if count > int64(limit) {
				slog.Warn("rate limit exceeded",
					slog.String("ip", c.RealIP()),
					slog.String("path", c.Path()),
					slog.Int64("count", count),
				)
				return c.JSON(http.StatusTooManyRequests, map[string]string{
					"error":   "Too Many Requests",
					"message": "Rate limit exceeded. Please try again later.",
				})
			}

			return next(c)
		}
	}
}
