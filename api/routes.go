package api

import (
	"sync"

	"github.com/gin-gonic/gin"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"

	"github.com/annolab/annotator-api/api/assets"
	"github.com/annolab/annotator-api/api/export"
	"github.com/annolab/annotator-api/api/health"
	"github.com/annolab/annotator-api/api/labels"
	"github.com/annolab/annotator-api/api/regions"
	"github.com/annolab/annotator-api/api/types"
	"github.com/annolab/annotator-api/api/version"
	_ "github.com/annolab/annotator-api/docs/swagger"
	assetsService "github.com/annolab/annotator-api/internal/services/assets"
	exportService "github.com/annolab/annotator-api/internal/services/export"
	labelsService "github.com/annolab/annotator-api/internal/services/labels"
	regionsService "github.com/annolab/annotator-api/internal/services/regions"
	"github.com/annolab/annotator-api/pkg/config"
)

// RegisterRoutes registers all API routes
func RegisterRoutes(engine *gin.Engine, deps *types.Dependencies, rateLimiters *sync.Map, cleanupStop chan struct{}, cleanupInitialized *sync.Once) error {
	// Register public routes (no rate limiting)
	health.RegisterRoutes(engine, deps)
	version.RegisterRoutes(engine, deps)

	// Register Swagger documentation route
	engine.GET("/docs", func(c *gin.Context) {
		c.Redirect(301, "/docs/index.html")
	})
	docsGroup := engine.Group("/docs")
	docsGroup.GET("/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))

	// Setup 404 handler
	engine.NoRoute(NotFoundHandler())

	// API v1 routes
	v1 := engine.Group("/api/v1")

	// Gesture thresholds for clients embedding the annotation editor
	v1.GET("/editor/config", func(c *gin.Context) {
		c.JSON(200, gin.H{
			"min_drag_px":      config.GetFloat64("editor.min_drag_px"),
			"min_interval_gap": config.GetFloat64("editor.min_interval_gap"),
			"min_box_dim":      config.GetFloat64("editor.min_box_dim"),
		})
	})

	// Initialize services if not already set
	if deps == nil {
		deps = &types.Dependencies{}
	}

	if deps.DB != nil && deps.DB.DB != nil {
		initializeServices(deps)

		// Label taxonomy routes with general rate limiting (10 req/s, burst of 20)
		labelGroup := v1.Group("/labels")
		labelGroup.Use(PerClientRateLimit(rateLimiters, cleanupStop, cleanupInitialized, 10, 20))
		labels.RegisterRoutes(labelGroup, deps)

		// Asset routes carry the nested region and export endpoints.
		// Replace-all saves rewrite the whole region set, so keep their
		// rate lower than reads (5 req/s, burst of 10).
		assetGroup := v1.Group("/assets")
		assetGroup.Use(PerClientRateLimit(rateLimiters, cleanupStop, cleanupInitialized, 10, 20))
		assets.RegisterRoutes(assetGroup, deps)

		saveMiddleware := PerClientRateLimit(rateLimiters, cleanupStop, cleanupInitialized, 5, 10)
		regions.RegisterRoutes(assetGroup, deps, saveMiddleware)

		// Export is read-only but builds the full document (5 req/s, burst of 10)
		exportGroup := v1.Group("/assets")
		exportGroup.Use(PerClientRateLimit(rateLimiters, cleanupStop, cleanupInitialized, 5, 10))
		export.RegisterRoutes(exportGroup, deps)
	}

	return nil
}

// initializeServices wires the service layer from the database when the
// caller did not inject its own implementations
func initializeServices(deps *types.Dependencies) {
	assetRepo := assetsService.NewRepository(deps.DB.DB)
	labelRepo := labelsService.NewRepository(deps.DB.DB)

	if deps.AssetService == nil {
		deps.AssetService = assetsService.NewService(assetRepo)
	}
	if deps.LabelService == nil {
		deps.LabelService = labelsService.NewService(labelRepo)
	}
	if deps.RegionService == nil {
		deps.RegionService = regionsService.NewService(
			regionsService.NewRepository(deps.DB.DB),
			assetRepo,
			labelRepo,
		)
	}
	if deps.ExportService == nil {
		deps.ExportService = exportService.NewService(deps.AssetService, deps.RegionService)
	}
}

// NotFoundHandler handles 404 errors
func NotFoundHandler() gin.HandlerFunc {
	return func(c *gin.Context) {
		c.JSON(404, gin.H{
			"status":  "error",
			"message": "The requested endpoint was not found",
			"path":    c.Request.URL.Path,
		})
	}
}
