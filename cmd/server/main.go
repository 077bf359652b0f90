package main

import (
	"context"
	"fmt"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/onegreenvn/campaign-generator-backend/docs"
	"github.com/onegreenvn/campaign-generator-backend/internal/config"
	"github.com/onegreenvn/campaign-generator-backend/internal/database"
	"github.com/onegreenvn/campaign-generator-backend/internal/database/repository"
	"github.com/onegreenvn/campaign-generator-backend/internal/handlers"
	"github.com/onegreenvn/campaign-generator-backend/internal/router"
	"github.com/onegreenvn/campaign-generator-backend/internal/services"
	"github.com/onegreenvn/campaign-generator-backend/internal/services/llm"
	"github.com/onegreenvn/campaign-generator-backend/internal/services/storage"
	"github.com/onegreenvn/campaign-generator-backend/internal/utils"

	"github.com/getsentry/sentry-go"
	"github.com/joho/godotenv"
	"github.com/redis/go-redis/v9"
	"github.com/sirupsen/logrus"
)

// @title Campaign Generator API
// @version 1.0
// @description Thai marketing campaign generation backend
// @BasePath /
// @securityDefinitions.apikey ApiKeyAuth
// @in header
// @name Authorization
// @description Enter `ApiKey ` followed by your API key (e.g. "ApiKey <key>")

func main() {
	if err := godotenv.Load(); err != nil {
		log.Println("No .env file found, using environment variables")
	}

	cfg := config.Load()
	configureLogging(cfg.LogLevel)

	if err := cfg.Validate(); err != nil {
		logrus.Fatalf("Invalid configuration: %v", err)
	}

	if cfg.BasePath != "" {
		docs.SwaggerInfo.BasePath = cfg.BasePath
	}

	sentryEnabled := utils.InitSentry(cfg.SentryDSN, cfg.GinMode)
	if sentryEnabled {
		defer sentry.Flush(2 * time.Second)
	}

	db, err := database.InitDB(cfg)
	if err != nil {
		logrus.Fatalf("Failed to initialize database: %v", err)
	}
	defer database.Close(db)

	if cfg.SeedData {
		if err := database.SeedDemoData(db); err != nil {
			logrus.Warnf("Failed to seed demo data: %v", err)
		}
	}

	startCtx, cancelStart := context.WithTimeout(context.Background(), 15*time.Second)
	defer cancelStart()

	// Redis backs the rate limiter and sessions; without it both fall back
	var rdb *redis.Client
	if cfg.RedisURL != "" {
		rdb, err = database.NewRedisClient(startCtx, cfg.RedisURL)
		if err != nil {
			logrus.Warnf("Failed to connect to Redis, rate limiting disabled and sessions kept in memory: %v", err)
		} else {
			defer rdb.Close()
		}
	}

	var sessionStore services.SessionStore = services.NewMemorySessionStore(cfg.SessionTTL)
	if rdb != nil {
		sessionStore = services.NewRedisSessionStore(rdb, cfg.SessionTTL)
	}

	sseHub := services.NewSSEHub()

	rabbitMQService, err := services.NewRabbitMQService(cfg.RabbitMQURL())
	if err != nil {
		logrus.Warnf("Failed to initialize RabbitMQ: %v", err)
	} else {
		defer rabbitMQService.Close()
	}

	logService := services.NewGenerationLogService(repository.NewGenerationLogRepository(db), sseHub, rabbitMQService)
	if rabbitMQService != nil {
		if err := logService.StartRabbitMQConsumer(); err != nil {
			logrus.Warnf("Failed to start RabbitMQ log consumer: %v", err)
		} else {
			logrus.Info("RabbitMQ log consumer started")
			defer logService.StopRabbitMQConsumer()
		}
	}
	logService.StartLogCleanup(6*time.Hour, cfg.LogRetentionDays)
	defer logService.StopLogCleanup()

	generator, err := llm.New(startCtx, cfg)
	if err != nil {
		logrus.Fatalf("Failed to initialize LLM provider: %v", err)
	}
	logrus.Infof("LLM provider: %s", generator.Name())

	catalog := handlers.NewCatalogHandler(db).CatalogService()
	generationService := services.NewGenerationService(generator, catalog, logService, cfg.LLMTimeout)

	var uploader handlers.Uploader
	if cfg.MinIOEnabled() {
		store, err := storage.NewExportStore(startCtx, cfg)
		if err != nil {
			logrus.Warnf("Failed to initialize MinIO, export uploads disabled: %v", err)
		} else {
			uploader = store
		}
	}

	r := router.SetupRouter(cfg, &router.Dependencies{
		DB:             db,
		Redis:          rdb,
		SSEHub:         sseHub,
		LogService:     logService,
		SessionService: services.NewSessionService(sessionStore),
		Generation:     generationService,
		Uploader:       uploader,
		SentryEnabled:  sentryEnabled,
	})

	srv := &http.Server{
		Addr:              fmt.Sprintf(":%s", cfg.Port),
		Handler:           r,
		ReadHeaderTimeout: 10 * time.Second,
	}

	go func() {
		logrus.Infof("Server starting on port %s", cfg.Port)
		logrus.Infof("API Health Check: http://localhost:%s%s/api/v1/health", cfg.Port, cfg.BasePath)
		logrus.Infof("Swagger UI: http://localhost:%s%s/swagger/index.html", cfg.Port, cfg.BasePath)
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			logrus.Fatalf("Failed to start server: %v", err)
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit
	logrus.Info("Shutting down server...")

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	if err := srv.Shutdown(ctx); err != nil {
		logrus.Errorf("Server forced to shutdown: %v", err)
	}

	logrus.Info("Server exited properly")
}

func configureLogging(logLevel string) {
	level, err := logrus.ParseLevel(logLevel)
	if err != nil {
		level = logrus.InfoLevel
	}
	logrus.SetLevel(level)
	logrus.SetFormatter(&logrus.TextFormatter{
		FullTimestamp: true,
	})
}
