package main

import (
	"alcyxob/fitness-coach/internal/api"
	"alcyxob/fitness-coach/internal/config"
	"alcyxob/fitness-coach/internal/repository/static"
	"alcyxob/fitness-coach/internal/service"
	"alcyxob/fitness-coach/internal/storage"
	"context"
	"errors"
	"net/http"
	"os"
	"os/signal"
	"syscall"

	"github.com/gin-gonic/gin"
	"github.com/rs/cors"
	"github.com/rs/zerolog"
	"golang.org/x/sync/errgroup"
	"golang.org/x/time/rate"
)

// @title Fitness Coach API
// @version 1.0
// @description Generates workout and nutrition plans from a short profile and picks a matching image.
// @host localhost:8080
// @BasePath /api/v1
func main() {
	cfg, err := config.LoadConfig(".")
	if err != nil {
		bootLogger := zerolog.New(os.Stderr)
		bootLogger.Fatal().Err(err).Msg("could not load config")
	}

	logger := newLogger(cfg.Log)
	logger.Info().Msg("starting fitness coach server")

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	// --- Asset mirror (optional) ---
	var mirror *service.MirrorOptions
	if cfg.Assets.Mirror {
		assetStorage, err := storage.NewS3Storage(ctx, cfg.S3, logger)
		if err != nil {
			logger.Fatal().Err(err).Msg("failed to initialize S3 storage")
		}
		mirror = &service.MirrorOptions{
			Storage:   assetStorage,
			KeyPrefix: cfg.Assets.KeyPrefix,
			Expiry:    cfg.Assets.PresignExpiry,
		}
		logger.Info().Str("bucket", cfg.S3.BucketName).Msg("serving images from asset mirror")
	}

	// --- Services ---
	planService := service.NewPlanService(static.NewPlanCatalog())
	assetService := service.NewAssetService(static.NewAssetCatalog(), mirror, logger)

	var limiter *rate.Limiter
	if cfg.Server.RateLimit > 0 {
		limiter = rate.NewLimiter(rate.Limit(cfg.Server.RateLimit), cfg.Server.RateBurst)
	}

	// --- Router ---
	if cfg.Log.Level != "debug" {
		gin.SetMode(gin.ReleaseMode)
	}
	router := gin.New()
	api.SetupRoutes(router, api.RouteOptions{
		Logger:       logger,
		Limiter:      limiter,
		Pacing:       cfg.Pacing,
		PlanService:  planService,
		AssetService: assetService,
	})

	handler := cors.New(cors.Options{
		AllowedOrigins: cfg.CORS.AllowedOrigins,
		AllowedMethods: []string{http.MethodGet, http.MethodPost, http.MethodOptions},
		AllowedHeaders: []string{"Content-Type", api.RequestIDHeader},
		ExposedHeaders: []string{api.RequestIDHeader},
	}).Handler(router)

	server := &http.Server{
		Addr:         cfg.Server.Address,
		Handler:      handler,
		ReadTimeout:  cfg.Server.ReadTimeout,
		WriteTimeout: cfg.Server.WriteTimeout,
		IdleTimeout:  cfg.Server.IdleTimeout,
	}

	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		logger.Info().Str("addr", cfg.Server.Address).Msg("server listening")
		if err := server.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			return err
		}
		return nil
	})
	g.Go(func() error {
		<-gctx.Done()
		logger.Info().Msg("shutting down server")
		shutdownCtx, cancel := context.WithTimeout(context.Background(), cfg.Server.ShutdownTimeout)
		defer cancel()
		return server.Shutdown(shutdownCtx)
	})

	if err := g.Wait(); err != nil {
		logger.Fatal().Err(err).Msg("server stopped with error")
	}
	logger.Info().Msg("server exiting")
}

func newLogger(cfg config.LogConfig) zerolog.Logger {
	level, err := zerolog.ParseLevel(cfg.Level)
	if err != nil || level == zerolog.NoLevel {
		level = zerolog.InfoLevel
	}

	var logger zerolog.Logger
	if cfg.Format == "console" {
		logger = zerolog.New(zerolog.ConsoleWriter{Out: os.Stdout})
	} else {
		logger = zerolog.New(os.Stdout)
	}
	return logger.Level(level).With().Timestamp().Logger()
}
