package auth

import (
	"context"
	"crypto/subtle"
	"log/slog"
	"strings"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"

	"github.com/Austionian/fishy-edge/internal/apperror"
)

// userIDCookieName is the HTTP cookie carrying the caller's identity.
// The cookie value is a plain UUID; an upstream proxy is trusted to have
// set it for authenticated sessions.
const userIDCookieName = "user_id"

// contextKeyUserID is the Echo context key holding the extracted user id.
// Other packages read it via the exported UserID getter.
const contextKeyUserID = "auth_user_id"

// AdminChecker is the narrow dependency the admin gate needs. AuthService
// satisfies it; tests substitute a stub.
type AdminChecker interface {
	IsAdmin(ctx context.Context, userID uuid.UUID) (bool, error)
}

// RequireAPIKey returns middleware that gates every request on a bearer
// token in the Authorization header. The token must exactly equal one of
// the configured keys; comparison is constant-time and every configured
// key is checked even after a match, so timing reveals neither which key
// matched nor where a mismatch occurred.
func RequireAPIKey(keys ...string) echo.MiddlewareFunc {
	keyBytes := make([][]byte, len(keys))
	for i, k := range keys {
		keyBytes[i] = []byte(k)
	}

	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			token, ok := bearerToken(c)
			if !ok {
				return apperror.NewUnauthorized("invalid or missing API key")
			}

			tokenBytes := []byte(token)
			matched := 0
			for _, key := range keyBytes {
				matched |= subtle.ConstantTimeCompare(tokenBytes, key)
			}

			if matched != 1 {
				return apperror.NewUnauthorized("invalid or missing API key")
			}

			return next(c)
		}
	}
}

// RequireUser returns middleware that extracts the caller's identity from
// the user_id cookie and stores it in the request context. A missing
// cookie is 401, a cookie that doesn't parse as a UUID is 400.
func RequireUser() echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			cookie, err := c.Cookie(userIDCookieName)
			if err != nil {
				return apperror.NewUnauthorized("authentication required")
			}

			userID, err := uuid.Parse(cookie.Value)
			if err != nil {
				return apperror.NewBadRequest("malformed user id")
			}

			c.Set(contextKeyUserID, userID)
			return next(c)
		}
	}
}

// OptionalUser returns middleware that extracts the identity when the
// cookie is present and lets the request through anonymously when it is
// absent. A cookie that is present but does not parse as a UUID is
// still 400: optional means the identity may be missing, not that
// garbage values pass.
func OptionalUser() echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			cookie, err := c.Cookie(userIDCookieName)
			if err != nil {
				return next(c)
			}

			userID, err := uuid.Parse(cookie.Value)
			if err != nil {
				return apperror.NewBadRequest("malformed user id")
			}

			c.Set(contextKeyUserID, userID)
			return next(c)
		}
	}
}

// RequireAdmin returns middleware that re-checks the caller's admin flag
// in the database on every request. Apply after RequireUser. Every
// failure mode, including database errors, produces the same 401 so a
// probing client learns nothing about why it was refused.
func RequireAdmin(checker AdminChecker) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			userID, ok := UserID(c)
			if !ok {
				return apperror.NewUnauthorized("authentication required")
			}

			isAdmin, err := checker.IsAdmin(c.Request().Context(), userID)
			if err != nil {
				slog.Error("admin check failed",
					slog.String("user_id", userID.String()),
					slog.Any("error", err),
				)
				return apperror.NewUnauthorized("authentication required")
			}
			if !isAdmin {
				return apperror.NewUnauthorized("authentication required")
			}

			return next(c)
		}
	}
}

// UserID retrieves the authenticated user's id from the Echo context.
// The second return is false when no identity middleware ran or the
// request was anonymous.
func UserID(c echo.Context) (uuid.UUID, bool) {
	id, ok := c.Get(contextKeyUserID).(uuid.UUID)
	return id, ok
}

// bearerToken extracts the token from an "Authorization: Bearer <token>"
// header.
func bearerToken(c echo.Context) (string, bool) {
	header := c.Request().Header.Get(echo.HeaderAuthorization)
	const prefix = "Bearer "
	if len(header) <= len(prefix) || !strings.EqualFold(header[:len(prefix)], prefix) {
		return "", false
	}
	return header[len(prefix):], true
}
