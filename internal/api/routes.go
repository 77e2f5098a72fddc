package api

import (
	"alcyxob/fitness-coach/internal/config"
	"alcyxob/fitness-coach/internal/service"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog"
	"golang.org/x/time/rate"
)

// RouteOptions carries everything SetupRoutes wires into the router.
type RouteOptions struct {
	Logger       zerolog.Logger
	Limiter      *rate.Limiter // nil disables rate limiting
	Pacing       config.PacingConfig
	PlanService  service.PlanService
	AssetService service.AssetService
}

func SetupRoutes(router *gin.Engine, opts RouteOptions) {
	planHandler := NewPlanHandler(opts.PlanService, opts.Pacing.PlanDelay, opts.Logger)
	assetHandler := NewAssetHandler(opts.AssetService, opts.Pacing.AssetDelay, opts.Logger)

	router.Use(
		RequestIDMiddleware(),
		LoggerMiddleware(opts.Logger),
		RecoveryMiddleware(opts.Logger, "Internal server error"),
	)

	router.GET("/ping", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"message": "pong"})
	})

	limited := []gin.HandlerFunc{}
	if opts.Limiter != nil {
		limited = append(limited, RateLimitMiddleware(opts.Limiter))
	}
	planRecovery := RecoveryMiddleware(opts.Logger, msgPlanFailed)

	apiV1 := router.Group("/api/v1", limited...)
	{
		// POST /api/v1/plan
		apiV1.POST("/plan", planRecovery, planHandler.GeneratePlan)
		// POST /api/v1/plan/narration
		apiV1.POST("/plan/narration", planRecovery, planHandler.NarratePlan)
		// POST /api/v1/asset
		apiV1.POST("/asset", assetHandler.ResolveAsset)
		// GET /api/v1/catalog
		apiV1.GET("/catalog", GetCatalog)
	}

	// Unversioned paths used by existing front ends.
	root := router.Group("", limited...)
	{
		root.POST("/plan", planRecovery, planHandler.GeneratePlan)
		root.POST("/asset", assetHandler.ResolveAsset)
	}
}
