package router

import (
	"time"

	"github.com/onegreenvn/campaign-generator-backend/internal/config"
	"github.com/onegreenvn/campaign-generator-backend/internal/handlers"
	"github.com/onegreenvn/campaign-generator-backend/internal/middleware"
	"github.com/onegreenvn/campaign-generator-backend/internal/services"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/redis/go-redis/v9"
	"github.com/sirupsen/logrus"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
	"gorm.io/gorm"
)

// Dependencies are the shared services the routes are built from.
// Redis and Uploader may be nil; the rate limiter and export uploads are then disabled.
type Dependencies struct {
	DB             *gorm.DB
	Redis          *redis.Client
	SSEHub         *services.SSEHub
	LogService     *services.GenerationLogService
	SessionService *services.SessionService
	Generation     handlers.CampaignGenerator
	Uploader       handlers.Uploader
	SentryEnabled  bool
}

// SetupRouter configures the Gin router with every campaign route
func SetupRouter(cfg *config.Config, deps *Dependencies) *gin.Engine {
	gin.SetMode(cfg.GinMode)

	r := gin.New()

	r.Use(gin.Recovery())
	if deps.SentryEnabled {
		r.Use(middleware.SentryReporter())
	}
	r.Use(middleware.RequestID())
	r.Use(middleware.Logger())

	r.Use(cors.New(cors.Config{
		AllowOrigins:     []string{"*"},
		AllowMethods:     []string{"GET", "POST", "PUT", "PATCH", "DELETE", "OPTIONS"},
		AllowHeaders:     []string{"Origin", "Content-Type", "Accept", "Authorization", "X-Request-ID", "apikey", "Prefer"},
		ExposeHeaders:    []string{"Content-Length", "Content-Disposition", "X-Request-ID", "X-Total-Count", "X-Generation-ID"},
		AllowCredentials: false,
		MaxAge:           12 * time.Hour,
	}))

	catalogHandler := handlers.NewCatalogHandler(deps.DB)
	campaignHandler := handlers.NewCampaignHandler(deps.DB)
	restHandler := handlers.NewRestHandler(deps.DB)
	generationHandler := handlers.NewGenerationHandler(deps.Generation)
	calendarHandler := handlers.NewCalendarHandler()
	sessionHandler := handlers.NewSessionHandler(deps.SessionService)
	exportHandler := handlers.NewExportHandler(deps.Uploader)
	logHandler := handlers.NewGenerationLogHandler(deps.LogService, deps.SSEHub)

	apiKeyMiddleware := middleware.NewAPIKeyMiddleware(cfg.APIKeys)
	if apiKeyMiddleware.Enabled() {
		logrus.Infof("API key authentication enabled (%d keys)", len(cfg.APIKeys))
	}
	rateLimit := middleware.RateLimit(deps.Redis, cfg.RateLimitCount, cfg.RateLimitWindow)

	root := r.Group(cfg.BasePath)

	root.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))
	logrus.Info("Swagger UI endpoint registered at /swagger/index.html")

	// API v1 routes
	api := root.Group("/api/v1")
	{
		api.GET("/health", func(c *gin.Context) {
			c.JSON(200, gin.H{
				"status": "ok",
				"time":   time.Now().Format(time.RFC3339),
			})
		})

		api.POST("/generate-campaign", apiKeyMiddleware.APIKeyAuthMiddleware(), rateLimit, generationHandler.GenerateCampaign)

		api.POST("/calendar", calendarHandler.GetCalendar)
		api.PUT("/calendar/posts", calendarHandler.UpdatePost)
		api.POST("/ad-schedule", calendarHandler.GetAdSchedule)

		sessions := api.Group("/sessions")
		sessions.Use(apiKeyMiddleware.APIKeyAuthMiddleware())
		{
			sessions.POST("", sessionHandler.CreateSession)
			sessions.GET("/:id", sessionHandler.GetSession)
			sessions.DELETE("/:id", sessionHandler.DeleteSession)
			sessions.PUT("/:id/form", sessionHandler.SetFormData)
			sessions.PUT("/:id/preview", sessionHandler.SetPreview)
			sessions.PUT("/:id/campaign", sessionHandler.SetFullCampaign)
			sessions.POST("/:id/versions", sessionHandler.SaveVersion)
			sessions.POST("/:id/versions/:versionId/switch", sessionHandler.SwitchVersion)
			sessions.POST("/:id/duplicate", sessionHandler.Duplicate)
			sessions.POST("/:id/undo", sessionHandler.Undo)
			sessions.POST("/:id/reset", sessionHandler.Reset)
		}

		exports := api.Group("/exports")
		{
			exports.POST("/json", exportHandler.ExportJSON)
			exports.POST("/text", exportHandler.ExportText)
			exports.POST("/xlsx", exportHandler.ExportXLSX)
		}

		logs := api.Group("/generation-logs")
		{
			logs.POST("", apiKeyMiddleware.APIKeyAuthMiddleware(), logHandler.CreateLog)
			logs.GET("/:entity_type/:entity_id", logHandler.GetLogsByEntity)
			logs.GET("/:entity_type/:entity_id/stream", logHandler.StreamLogsSSE)
		}
	}

	// Catalog and campaign CRUD
	crud := root.Group("/api")
	crud.Use(apiKeyMiddleware.APIKeyAuthMiddleware())
	{
		orgs := crud.Group("/organizations")
		{
			orgs.GET("", catalogHandler.ListOrganizations)
			orgs.POST("", catalogHandler.CreateOrganization)
			orgs.GET("/:id", catalogHandler.GetOrganization)
			orgs.PATCH("/:id", catalogHandler.UpdateOrganization)
			orgs.DELETE("/:id", catalogHandler.DeleteOrganization)
		}

		products := crud.Group("/products")
		{
			products.GET("", catalogHandler.ListProducts)
			products.POST("", catalogHandler.CreateProduct)
			products.GET("/:id", catalogHandler.GetProduct)
			products.PATCH("/:id", catalogHandler.UpdateProduct)
			products.DELETE("/:id", catalogHandler.DeleteProduct)
		}

		svcs := crud.Group("/services")
		{
			svcs.GET("", catalogHandler.ListServices)
			svcs.POST("", catalogHandler.CreateService)
			svcs.GET("/:id", catalogHandler.GetService)
			svcs.PATCH("/:id", catalogHandler.UpdateService)
			svcs.DELETE("/:id", catalogHandler.DeleteService)
		}

		campaigns := crud.Group("/campaigns")
		{
			campaigns.GET("", campaignHandler.ListCampaigns)
			campaigns.POST("", campaignHandler.CreateCampaign)
			campaigns.GET("/:id", campaignHandler.GetCampaign)
			campaigns.PATCH("/:id", campaignHandler.UpdateCampaign)
			campaigns.PUT("/:id/result", campaignHandler.SaveCampaignResult)
			campaigns.DELETE("/:id", campaignHandler.DeleteCampaign)
		}
	}

	// Supabase-compatible table access
	rest := root.Group("/rest/v1")
	rest.Use(apiKeyMiddleware.APIKeyAuthMiddleware())
	{
		rest.GET("/:table", restHandler.Select)
		rest.POST("/:table", restHandler.Insert)
		rest.PATCH("/:table", restHandler.Update)
		rest.DELETE("/:table", restHandler.Delete)
	}

	return r
}
