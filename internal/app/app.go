// Package app assembles the HTTP server: the Echo instance, the
// middleware chain, the centralized error handler and every feature
// package's routes.
package app

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"log/slog"
	"net/http"

	"github.com/labstack/echo/v4"
	"github.com/redis/go-redis/v9"

	"github.com/Austionian/fishy-edge/internal/apperror"
	"github.com/Austionian/fishy-edge/internal/config"
	"github.com/Austionian/fishy-edge/internal/middleware"
	"github.com/Austionian/fishy-edge/internal/storage"
)

// App holds the configured server and its dependencies.
type App struct {
	Echo *echo.Echo
	cfg  *config.Config
}

// New builds the server: middleware, error handler and routes. The
// returned App is ready to Start.
func New(cfg *config.Config, db *sql.DB, rdb *redis.Client, presigner storage.Presigner) *App {
	e := echo.New()
	e.HideBanner = true
	e.HidePort = true
	e.HTTPErrorHandler = errorHandler

	// Recovery runs outermost so a panic anywhere below still returns a
	// well-formed 500 and the request is logged on the way out.
	e.Use(middleware.Recovery())
	e.Use(middleware.RequestLogger())
	e.Use(middleware.CORS())

	registerRoutes(e, cfg, db, rdb, presigner)

	return &App{Echo: e, cfg: cfg}
}

// Start begins serving. Blocks until the listener fails or Shutdown is
// called.
func (a *App) Start() error {
	addr := fmt.Sprintf(":%d", a.cfg.Port)
	slog.Info("starting server", "addr", addr, "env", a.cfg.Env)
	if err := a.Echo.Start(addr); err != nil && !errors.Is(err, http.ErrServerClosed) {
		return fmt.Errorf("starting server: %w", err)
	}
	return nil
}

// Shutdown drains in-flight requests until the context expires.
func (a *App) Shutdown(ctx context.Context) error {
	return a.Echo.Shutdown(ctx)
}

// errorHandler maps every error escaping a handler to a JSON response.
// AppErrors carry their own status and client-safe message; their
// internal cause is logged here and never leaves the process. Anything
// unrecognized becomes a generic 500.
func errorHandler(err error, c echo.Context) {
	if c.Response().Committed {
		return
	}

	var appErr *apperror.AppError
	if errors.As(err, &appErr) {
		if appErr.Internal != nil {
			slog.Error("request failed",
				"type", appErr.Type,
				"path", c.Request().URL.Path,
				"error", appErr.Internal,
			)
		}
		writeJSON(c, appErr.Code, appErr)
		return
	}

	var httpErr *echo.HTTPError
	if errors.As(err, &httpErr) {
		writeJSON(c, httpErr.Code, map[string]any{
			"type":    "error",
			"message": fmt.Sprintf("%v", httpErr.Message),
		})
		return
	}

	slog.Error("unhandled error", "path", c.Request().URL.Path, "error", err)
	writeJSON(c, http.StatusInternalServerError, map[string]any{
		"type":    "internal_error",
		"message": "An unexpected error occurred. Please try again.",
	})
}

func writeJSON(c echo.Context, code int, body any) {
	var err error
	if c.Request().Method == http.MethodHead {
		err = c.NoContent(code)
	} else {
		err = c.JSON(code, body)
	}
	if err != nil {
		slog.Error("writing error response", "error", err)
	}
}
