package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/pageza/recipe-catalog/config"
	"github.com/pageza/recipe-catalog/internal/database"
	"github.com/pageza/recipe-catalog/internal/metrics"
	"github.com/pageza/recipe-catalog/internal/router"
	"github.com/pageza/recipe-catalog/internal/server"
	"github.com/pageza/recipe-catalog/internal/service"
)

const shutdownTimeout = 5 * time.Second

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Seed the catalog if empty and start the HTTP server",
	RunE:  runServe,
}

func runServe(cmd *cobra.Command, args []string) error {
	ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	if config.IsProduction() {
		gin.SetMode(gin.ReleaseMode)
	}

	db, err := openDatabase()
	if err != nil {
		return err
	}
	defer func() {
		if err := database.Close(db); err != nil {
			logger.Warn("Failed to close database", zap.Error(err))
		}
	}()

	var m *metrics.Metrics
	if cfg.MetricsEnabled {
		m = metrics.New()
	}

	// Seed before accepting traffic
	inserted, err := service.NewSeeder(db, logger).SeedRecipes(ctx)
	if err != nil {
		return fmt.Errorf("seed recipes: %w", err)
	}
	m.RecipesSeeded(inserted)

	redisClient, err := database.NewRedisClient(ctx, cfg, logger)
	if err != nil {
		// Continue without rate limiting if Redis is not available
		logger.Warn("Failed to connect to Redis, rate limiting disabled", zap.Error(err))
		redisClient = nil
	}
	if redisClient != nil {
		defer redisClient.Close()
	}

	r, err := router.SetupRouter(router.Deps{
		Config:  cfg,
		DB:      db,
		Recipes: service.NewRecipeService(db),
		Metrics: m,
		Redis:   redisClient,
		Logger:  logger,
	})
	if err != nil {
		return err
	}

	srv := server.New(cfg, r, logger)

	errCh := make(chan error, 1)
	go func() {
		errCh <- srv.Start()
	}()

	select {
	case err := <-errCh:
		return err
	case <-ctx.Done():
		logger.Info("Received shutdown signal")
	}

	shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		return fmt.Errorf("server shutdown: %w", err)
	}
	if err := <-errCh; err != nil {
		return err
	}

	logger.Info("Server stopped")
	return nil
}
