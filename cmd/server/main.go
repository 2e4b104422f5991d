// Command server runs the fishy-edge API.
package main

import (
	"context"
	"log/slog"
	"os"
	"os/signal"
	"strings"
	"syscall"
	"time"

	"github.com/joho/godotenv"

	"github.com/Austionian/fishy-edge/internal/app"
	"github.com/Austionian/fishy-edge/internal/config"
	"github.com/Austionian/fishy-edge/internal/database"
	"github.com/Austionian/fishy-edge/internal/storage"
)

func main() {
	// .env is a local development convenience; in production all config
	// comes from real environment variables.
	_ = godotenv.Load()

	cfg, err := config.Load()
	if err != nil {
		slog.Error("loading config", "error", err)
		os.Exit(1)
	}

	setupLogger(cfg)

	db, err := database.NewMariaDB(cfg.Database)
	if err != nil {
		slog.Error("connecting to mariadb", "error", err)
		os.Exit(1)
	}
	defer db.Close()

	if err := database.RunMigrations(db, "db/migrations"); err != nil {
		slog.Error("running migrations", "error", err)
		os.Exit(1)
	}

	rdb, err := database.NewRedis(cfg.Redis)
	if err != nil {
		slog.Error("connecting to redis", "error", err)
		os.Exit(1)
	}
	defer rdb.Close()

	presigner, err := storage.NewS3Presigner(context.Background(), cfg.S3)
	if err != nil {
		slog.Error("configuring s3 presigner", "error", err)
		os.Exit(1)
	}

	a := app.New(cfg, db, rdb, presigner)

	go func() {
		if err := a.Start(); err != nil {
			slog.Error("server stopped", "error", err)
			os.Exit(1)
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	slog.Info("shutting down")
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	if err := a.Shutdown(ctx); err != nil {
		slog.Error("shutdown failed", "error", err)
		os.Exit(1)
	}
}

// setupLogger installs the process-wide slog handler: human-readable
// text in development, JSON everywhere else.
func setupLogger(cfg *config.Config) {
	level := slog.LevelInfo
	switch strings.ToLower(cfg.LogLevel) {
	case "debug":
		level = slog.LevelDebug
	case "warn":
		level = slog.LevelWarn
	case "error":
		level = slog.LevelError
	}

	var handler slog.Handler
	if cfg.IsDevelopment() {
		handler = slog.NewTextHandler(os.Stdout, &slog.HandlerOptions{Level: level})
	} else {
		handler = slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{Level: level})
	}
	slog.SetDefault(slog.New(handler))
}
