package api

import (
	"sync"

	"github.com/gin-gonic/gin"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"

	"github.com/voicenotes/voicenote-api/api/health"
	"github.com/voicenotes/voicenote-api/api/queue"
	"github.com/voicenotes/voicenote-api/api/recordings"
	"github.com/voicenotes/voicenote-api/api/types"
	"github.com/voicenotes/voicenote-api/api/version"
	"github.com/voicenotes/voicenote-api/pkg/config"
)

// RegisterRoutes registers all API routes
func RegisterRoutes(engine *gin.Engine, deps *types.Dependencies, rateLimiters *sync.Map, cleanupStop chan struct{}, cleanupInitialized *sync.Once, cfg *config.Config) error {
	// Public routes, no rate limiting
	health.RegisterRoutes(engine, deps)
	version.RegisterRoutes(engine)

	engine.GET("/docs", func(c *gin.Context) {
		c.Redirect(301, "/docs/index.html")
	})
	docsGroup := engine.Group("/docs")
	docsGroup.GET("/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))

	engine.NoRoute(NotFoundHandler())

	v1 := engine.Group("/api/v1")
	v1.Use(PremiumFlag())

	if cfg.RateLimiting.Enabled {
		tiers := RateLimitTiers{
			DefaultRPS:   cfg.RateLimiting.DefaultRPS,
			DefaultBurst: cfg.RateLimiting.DefaultBurst,
			PremiumRPS:   cfg.RateLimiting.PremiumRPS,
			PremiumBurst: cfg.RateLimiting.PremiumBurst,
		}
		v1.Use(PerClientRateLimit(rateLimiters, cleanupStop, cleanupInitialized, tiers))
	}

	recordings.RegisterRoutes(v1.Group("/recordings"), deps)
	queue.RegisterRoutes(v1.Group("/queue"), deps)

	return nil
}
