package main

import (
	"context"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"

	"github.com/lensline/eyewear-api/internal/config"
	"github.com/lensline/eyewear-api/internal/database"
	"github.com/lensline/eyewear-api/internal/handler"
	"github.com/lensline/eyewear-api/internal/middleware"
	"github.com/lensline/eyewear-api/internal/repository"
	"github.com/lensline/eyewear-api/internal/schema"
)

// main is the entrypoint for the eyewear catalog API server.
func main() {
	// 1. Load config
	cfg, err := config.Load()
	if err != nil {
		fmt.Fprintf(os.Stderr, "failed to load configuration: %v\n", err)
		os.Exit(1)
	}

	// 2. Setup logger
	setupLogger(cfg.Env)
	log.Info().Str("env", cfg.Env).Msg("starting eyewear catalog api")

	// 3. Connect database
	db, err := database.Connect(&cfg.DB)
	if err != nil {
		log.Error().Err(err).Msg("database connection failed")
		fmt.Fprintf(os.Stderr, "database connection failed: %v\n", err)
		os.Exit(1)
	}
	defer db.Close()

	// 4. Ensure schema once up front; the middleware re-ensures per request
	// so a store wiped underneath a running server is re-provisioned lazily.
	migrator := schema.NewMigrator(db)
	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	err = migrator.Ensure(ctx)
	cancel()
	if err != nil {
		log.Error().Err(err).Msg("schema ensure failed")
		fmt.Fprintf(os.Stderr, "schema ensure failed: %v\n", err)
		os.Exit(1)
	}
	log.Info().Msg("schema ensured")

	// 5. Initialize repositories and handlers
	productRepo := repository.NewProductRepository(db)
	commentRepo := repository.NewCommentRepository(db)

	productHandler := handler.NewProductHandler(productRepo)
	commentHandler := handler.NewCommentHandler(commentRepo)
	healthHandler := handler.NewHealthHandler(db)

	// 6. Setup router
	if cfg.Env == "production" {
		gin.SetMode(gin.ReleaseMode)
	}
	router := gin.New()
	router.Use(gin.Recovery())
	router.Use(middleware.CORSMiddleware())
	router.Use(middleware.LoggingMiddleware())

	router.GET("/health", healthHandler.GetHealth)

	api := router.Group("/api")
	api.Use(migrator.Middleware())
	{
		api.Any("/products", productHandler.Handle)
		api.GET("/comments", commentHandler.List)
		api.POST("/comments", commentHandler.Create)
	}

	// 7. Start HTTP server
	srv := &http.Server{
		Addr:    ":" + cfg.Port,
		Handler: router,
	}

	go func() {
		log.Info().Str("port", cfg.Port).Msg("Starting server")
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Fatal().Err(err).Msg("Server failed")
		}
	}()

	// 8. Wait for interrupt signal
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	log.Info().Msg("Shutting down server...")

	// 9. Shutdown HTTP server with timeout
	shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer shutdownCancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		log.Error().Err(err).Msg("Server forced to shutdown")
	}
	log.Info().Msg("Server exited")
}

func setupLogger(env string) {
	if env == "production" {
		zerolog.SetGlobalLevel(zerolog.InfoLevel)
	} else {
		zerolog.SetGlobalLevel(zerolog.DebugLevel)
	}
	log.Logger = zerolog.New(os.Stdout).With().Timestamp().Logger()
}
