package auth

import (
	"time"

	"github.com/labstack/echo/v4"
	"github.com/redis/go-redis/v9"

	"github.com/Austionian/fishy-edge/internal/middleware"
)

// RegisterRoutes sets up the credential endpoints on the /v1 group.
// These sit behind the bearer key gate like everything else under /v1,
// but need no cookie identity.
//
// Credential endpoints are rate-limited per IP: 10 login attempts and 5
// registrations per minute. Password changes go through the same login
// limiter budget since both verify a current password, and read the
// caller's identity cookie when one is sent.
func RegisterRoutes(g *echo.Group, h *Handler, rdb *redis.Client) {
	g.POST("/login", h.Login, middleware.RateLimit(rdb, 10, time.Minute))
	g.POST("/register", h.Register, middleware.RateLimit(rdb, 5, time.Minute))
	g.POST("/user/change_password", h.ChangePassword, OptionalUser(), middleware.RateLimit(rdb, 10, time.Minute))
}
