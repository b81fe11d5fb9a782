package main

import (
	"context"
	"net/http"
	"os"
	"os/signal"
	"syscall"

	"github.com/journalist-portfolio-api/internal/api"
	"github.com/journalist-portfolio-api/internal/config"
	"github.com/journalist-portfolio-api/internal/database"
	"github.com/journalist-portfolio-api/internal/repository"
	"github.com/journalist-portfolio-api/internal/service"
	"github.com/journalist-portfolio-api/pkg/logger"
)

func main() {
	// Initialize logger
	log := logger.New()
	log.Info().Msg("Starting Journalist Portfolio API server...")

	// Load configuration
	cfg, err := config.Load()
	if err != nil {
		log.Fatal().Err(err).Msg("Failed to load configuration")
	}

	// Select the storage strategy: a real database when configured,
	// otherwise the degraded null-object repositories. An unconfigured
	// backend is a supported demo state, never a startup failure.
	var repos *repository.Repositories
	if cfg.Database.Configured() {
		db, err := database.New(&cfg.Database, log)
		if err != nil {
			log.Fatal().Err(err).Msg("Failed to connect to database")
		}
		defer db.Close()

		// Run migrations
		migrationsPath := os.Getenv("MIGRATIONS_PATH")
		if migrationsPath == "" {
			migrationsPath = "./migrations"
		}
		if err := db.RunMigrations(migrationsPath); err != nil {
			log.Fatal().Err(err).Msg("Failed to run database migrations")
		}

		repos = repository.New(db)
	} else {
		log.Warn().Msg("Database not configured, serving empty demo state")
		repos = repository.NewNotConfigured()
	}

	// Initialize services
	services := service.NewServices(repos, cfg, log)

	// Provision the bootstrap admin account when configured
	if cfg.Database.Configured() {
		if err := services.Auth.EnsureAdmin(context.Background()); err != nil {
			log.Fatal().Err(err).Msg("Failed to provision admin account")
		}
	}

	// Initialize router
	router := api.NewRouter(services, cfg, log)

	// Create HTTP server
	srv := &http.Server{
		Addr:         ":" + cfg.Server.Port,
		Handler:      router,
		ReadTimeout:  cfg.Server.ReadTimeout,
		WriteTimeout: cfg.Server.WriteTimeout,
		IdleTimeout:  cfg.Server.ReadTimeout,
	}

	// Start server in goroutine
	go func() {
		log.Info().Str("port", cfg.Server.Port).Msg("Server listening")
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Fatal().Err(err).Msg("Server failed")
		}
	}()

	// Graceful shutdown
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit
	log.Info().Msg("Shutting down server...")

	ctx, cancel := context.WithTimeout(context.Background(), cfg.Server.ShutdownTimeout)
	defer cancel()

	if err := srv.Shutdown(ctx); err != nil {
		log.Fatal().Err(err).Msg("Server forced to shutdown")
	}

	log.Info().Msg("Server exited gracefully")
}
