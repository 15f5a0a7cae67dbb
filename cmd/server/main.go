package main

import (
	"context"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"github.com/1234-ad/intelligent-content-orchestrator/internal/access"
	"github.com/1234-ad/intelligent-content-orchestrator/internal/config"
	"github.com/1234-ad/intelligent-content-orchestrator/internal/handler"
	"github.com/1234-ad/intelligent-content-orchestrator/internal/infrastructure/analysis"
	"github.com/1234-ad/intelligent-content-orchestrator/internal/infrastructure/cache"
	"github.com/1234-ad/intelligent-content-orchestrator/internal/infrastructure/database"
	"github.com/1234-ad/intelligent-content-orchestrator/internal/infrastructure/notify"
	"github.com/1234-ad/intelligent-content-orchestrator/internal/infrastructure/search"
	"github.com/1234-ad/intelligent-content-orchestrator/internal/logger"
	"github.com/1234-ad/intelligent-content-orchestrator/internal/metrics"
	"github.com/1234-ad/intelligent-content-orchestrator/internal/middleware"
	"github.com/1234-ad/intelligent-content-orchestrator/internal/repository"
	"github.com/1234-ad/intelligent-content-orchestrator/internal/service"
	"github.com/1234-ad/intelligent-content-orchestrator/internal/validator"
)

func main() {
	// Load configuration
	cfg, err := config.Load()
	if err != nil {
		logger.Fatal("Failed to load configuration",
			slog.String("error", err.Error()))
	}

	logger.Configure(cfg.LogLevel)

	// Connect to database
	pool, err := database.NewPostgres(context.Background(), database.PoolConfig{
		Host:              cfg.DBHost,
		Port:              cfg.DBPort,
		User:              cfg.DBUser,
		Password:          cfg.DBPassword,
		Database:          cfg.DBName,
		SSLMode:           cfg.DBSSLMode,
		MaxConns:          cfg.DBMaxConns,
		MinConns:          cfg.DBMinConns,
		MaxConnLifetime:   cfg.DBMaxConnLifetime,
		MaxConnIdleTime:   cfg.DBMaxConnIdleTime,
		HealthCheckPeriod: cfg.DBHealthCheckPeriod,
	})
	if err != nil {
		logger.Fatal("Failed to connect to database",
			slog.String("error", err.Error()))
	}
	defer pool.Close()

	// Start database pool metrics collector
	poolStatsCollector := metrics.NewPoolStatsCollector(pool)
	poolStatsCollector.Start(15 * time.Second)
	defer poolStatsCollector.Stop()

	// Connect to cache
	redisCache, err := cache.NewRedisCache(context.Background(), cache.Config{
		Addr:     cfg.RedisAddr,
		Password: cfg.RedisPassword,
		DB:       cfg.RedisDB,
	})
	if err != nil {
		logger.Fatal("Failed to connect to cache",
			slog.String("error", err.Error()))
	}
	defer redisCache.Close()

	// Connect to search
	searchIndex, err := search.NewElasticIndex(search.Config{
		Addresses: cfg.ElasticAddresses,
		Index:     cfg.ElasticIndex,
	})
	if err != nil {
		logger.Fatal("Failed to create search client",
			slog.String("error", err.Error()))
	}

	// Initialize analysis and notification clients
	analyzer := analysis.NewClient(analysis.Config{
		BaseURL: cfg.AnalyzeURL,
		Timeout: cfg.AnalyzeTimeout,
	})
	notifier := notify.NewWebhookNotifier(notify.Config{
		WebhookURL: cfg.NotifyURL,
		Timeout:    cfg.NotifyTimeout,
	})

	// Initialize repositories
	contentRepo := repository.NewPostgresContentRepository(pool)
	analysisRepo := repository.NewPostgresAnalysisRepository(pool)

	// Initialize validator
	v := validator.NewValidator()

	// Initialize side-effect dispatcher and service
	effects := service.NewDispatcher(service.DispatcherConfig{
		Workers:     cfg.EffectWorkers,
		QueueSize:   cfg.EffectQueueSize,
		Timeout:     cfg.EffectTimeout,
		RetryBudget: cfg.EffectRetryBudget,
	})

	contentService := service.NewContentService(
		contentRepo,
		analysisRepo,
		redisCache,
		searchIndex,
		analyzer,
		notifier,
		effects,
		v,
		access.NewRolePolicy(),
		cfg.CacheTTL,
		cfg.DBQueryTimeout,
	)

	// Initialize handlers
	contentHandler := handler.NewContentHandler(contentService)
	healthHandler := handler.NewHealthHandler(pool, redisCache, searchIndex)

	// Setup Gin router
	gin.SetMode(gin.ReleaseMode)
	router := gin.New()
	router.Use(gin.Recovery())
	router.Use(middleware.RequestID())
	router.Use(middleware.Metrics())
	router.Use(gin.Logger())

	// Health and metrics endpoints
	router.GET("/health", healthHandler.Health)
	router.GET("/ready", healthHandler.Ready)
	router.GET("/live", healthHandler.Live)
	router.GET("/metrics", gin.WrapH(promhttp.Handler()))

	// API v1 routes
	v1 := router.Group("/api/v1")
	{
		content := v1.Group("/content")
		{
			content.POST("", contentHandler.CreateContent)
			content.GET("", contentHandler.ListContent)
			content.GET("/search", contentHandler.SearchContent)
			content.GET("/:id", contentHandler.GetContent)
			content.PUT("/:id", contentHandler.UpdateContent)
			content.DELETE("/:id", contentHandler.DeleteContent)
			content.POST("/:id/publish", contentHandler.PublishContent)
			content.GET("/:id/versions", contentHandler.GetVersions)
			content.GET("/:id/analytics", contentHandler.GetAnalytics)
		}
	}

	// Create HTTP server
	srv := &http.Server{
		Addr:         ":" + cfg.ServerPort,
		Handler:      router,
		ReadTimeout:  cfg.ReadTimeout,
		WriteTimeout: cfg.WriteTimeout,
		IdleTimeout:  cfg.IdleTimeout,
	}

	// Start server in goroutine
	go func() {
		logger.Info("Starting server",
			slog.String("port", cfg.ServerPort))
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			logger.Fatal("Failed to start server",
				slog.String("error", err.Error()))
		}
	}()

	// Wait for interrupt signal
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit
	logger.Info("Shutting down server")

	// Drain in-flight side effects before closing the listener
	logger.Info("Closing content service")
	contentService.Close()

	// Shutdown HTTP server
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	if err := srv.Shutdown(ctx); err != nil {
		logger.Error("Server shutdown error",
			slog.String("error", err.Error()))
	}

	logger.Info("Server exited")
}
