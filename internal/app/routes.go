package app

import (
	"database/sql"
	"net/http"

	"github.com/labstack/echo/v4"
	"github.com/redis/go-redis/v9"

	"github.com/Austionian/fishy-edge/internal/admin"
	"github.com/Austionian/fishy-edge/internal/analytics"
	"github.com/Austionian/fishy-edge/internal/auth"
	"github.com/Austionian/fishy-edge/internal/catalog"
	"github.com/Austionian/fishy-edge/internal/config"
	"github.com/Austionian/fishy-edge/internal/favorites"
	"github.com/Austionian/fishy-edge/internal/fish"
	"github.com/Austionian/fishy-edge/internal/recipe"
	"github.com/Austionian/fishy-edge/internal/storage"
	"github.com/Austionian/fishy-edge/internal/users"
)

// registerRoutes wires every feature package into the route tree.
//
// The health check is the only unauthenticated route. Everything under
// /v1 requires a bearer API key; user-scoped routes additionally
// require the identity cookie, and /v1/admin re-checks the admin flag
// against the database on every request.
func registerRoutes(e *echo.Echo, cfg *config.Config, db *sql.DB, rdb *redis.Client, presigner storage.Presigner) {
	e.GET("/health_check", func(c echo.Context) error {
		return c.NoContent(http.StatusOK)
	})

	authService := auth.NewAuthService(
		auth.NewUserRepository(db),
		auth.NewVerifier(cfg.Auth.VerifyWorkers),
	)

	v1 := e.Group("/v1", auth.RequireAPIKey(cfg.Auth.APIKey, cfg.Auth.PublicAPIKey))

	auth.RegisterRoutes(v1, auth.NewHandler(authService), rdb)
	fish.RegisterRoutes(v1, fish.NewHandler(fish.NewFishService(fish.NewFishRepository(db))))
	recipe.RegisterRoutes(v1, recipe.NewHandler(recipe.NewRecipeService(recipe.NewRecipeRepository(db))))
	catalog.RegisterRoutes(v1, catalog.NewHandler(catalog.NewCatalogService(catalog.NewCatalogRepository(db))))
	favorites.RegisterRoutes(v1, favorites.NewHandler(favorites.NewFavoritesService(favorites.NewFavoritesRepository(db))))
	users.RegisterRoutes(v1, users.NewHandler(users.NewUserService(users.NewUserRepository(db))))
	storage.RegisterRoutes(v1, storage.NewHandler(storage.NewStorageService(presigner)))

	adminGroup := v1.Group("/admin", auth.RequireUser(), auth.RequireAdmin(authService))
	admin.RegisterRoutes(adminGroup, admin.NewHandler(admin.NewAdminService(admin.NewAdminRepository(db))))
	analytics.RegisterRoutes(adminGroup, analytics.NewHandler(analytics.NewAnalyticsService(analytics.NewAnalyticsRepository(db))))
}
