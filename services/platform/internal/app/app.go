package app

import (
	"context"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"vidtube/pkg/cache"
	"vidtube/pkg/config"
	"vidtube/pkg/jwt"
	"vidtube/pkg/logger"
	"vidtube/pkg/metrics"
	"vidtube/pkg/middleware"
	"vidtube/pkg/queue"
	"vidtube/pkg/s3"
	platformHTTP "vidtube/services/platform/internal/controller/http"
	"vidtube/services/platform/internal/repo/persistent"
	"vidtube/services/platform/internal/usecase"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/redis/go-redis/v9"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
	"gorm.io/gorm"

	_ "vidtube/services/platform/docs" // Swagger docs
)

// Router builds the HTTP engine. s3Client, queueClient and redisClient may
// be nil; the matching features then degrade instead of failing startup.
func Router(cfg *config.Config, log *logger.Logger, db *gorm.DB, s3Client *s3.Client, queueClient *queue.Client, redisClient *redis.Client) *gin.Engine {
	jwtService := jwt.NewService(cfg.JWTSecret)

	// Optional collaborators stay untyped nil when unavailable
	var uploader usecase.MediaUploader
	if s3Client != nil {
		uploader = s3Client
	}
	var viewMarker usecase.ViewMarker
	if redisClient != nil {
		viewMarker = cache.NewViewMarker(redisClient)
	}
	var publisher usecase.EventPublisher
	if queueClient != nil {
		publisher = queueClient
	}

	// Initialize repositories
	contentRepo := persistent.NewContentRepository(db)
	engagementRepo := persistent.NewEngagementRepository(db)
	aggregationRepo := persistent.NewAggregationRepository(db)
	profileRepo := persistent.NewProfileRepository(db)
	historyRepo := persistent.NewWatchHistoryRepository(db)

	// Initialize use cases
	videoUseCase := usecase.NewVideoUseCase(contentRepo, aggregationRepo, profileRepo, historyRepo, engagementRepo, uploader, viewMarker, log)
	tweetUseCase := usecase.NewTweetUseCase(contentRepo, aggregationRepo, profileRepo, log)
	commentUseCase := usecase.NewCommentUseCase(contentRepo, aggregationRepo, log)
	likeUseCase := usecase.NewLikeUseCase(contentRepo, engagementRepo, aggregationRepo, publisher, log)
	subscriptionUseCase := usecase.NewSubscriptionUseCase(engagementRepo, aggregationRepo, profileRepo, publisher, log)
	dashboardUseCase := usecase.NewDashboardUseCase(aggregationRepo, log)

	r := gin.New()
	r.Use(gin.Recovery())
	r.Use(gin.LoggerWithWriter(log.Writer()))
	r.Use(middleware.MetricsMiddleware())

	r.Use(cors.New(cors.Config{
		AllowOrigins:     cfg.CORSAllowedOrigins,
		AllowMethods:     []string{"GET", "POST", "PUT", "DELETE", "OPTIONS", "PATCH"},
		AllowHeaders:     []string{"Origin", "Content-Type", "Authorization", "Accept"},
		ExposeHeaders:    []string{"Content-Length"},
		AllowCredentials: true,
		MaxAge:           12 * time.Hour,
	}))

	r.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok"})
	})
	r.GET("/metrics", metrics.Handler())
	r.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))

	api := r.Group("/api/v1")
	api.Use(middleware.AuthMiddleware(jwtService))
	api.Use(middleware.RateLimitMiddleware(redisClient, cfg.RateLimitPerMinute, time.Minute))

	platformHTTP.RegisterRoutes(api, platformHTTP.Handlers{
		Video:        platformHTTP.NewVideoHandler(videoUseCase, log),
		Tweet:        platformHTTP.NewTweetHandler(tweetUseCase, log),
		Comment:      platformHTTP.NewCommentHandler(commentUseCase, log),
		Like:         platformHTTP.NewLikeHandler(likeUseCase, log),
		Subscription: platformHTTP.NewSubscriptionHandler(subscriptionUseCase, log),
		Dashboard:    platformHTTP.NewDashboardHandler(dashboardUseCase, log),
	})

	return r
}

func Run(cfg *config.Config, log *logger.Logger, db *gorm.DB, s3Client *s3.Client, queueClient *queue.Client, redisClient *redis.Client) {
	srv := &http.Server{
		Addr:              ":" + cfg.ServerPort,
		Handler:           Router(cfg, log, db, s3Client, queueClient, redisClient),
		ReadHeaderTimeout: 10 * time.Second,
	}

	go func() {
		log.Info("Platform service starting on port %s", cfg.ServerPort)
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Error("Failed to start server: %v", err)
			panic(err)
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit
	log.Info("Shutting down platform service...")

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	// Stop accepting requests before closing the backing stores
	if err := srv.Shutdown(ctx); err != nil {
		log.Error("Server forced to shutdown: %v", err)
	}

	sqlDB, err := db.DB()
	if err == nil {
		if err := sqlDB.Close(); err != nil {
			log.Error("Error closing database: %v", err)
		}
	}

	if redisClient != nil {
		if err := redisClient.Close(); err != nil {
			log.Error("Error closing Redis: %v", err)
		}
	}

	if queueClient != nil {
		queueClient.Close()
	}

	log.Info("Platform service exited")
}
