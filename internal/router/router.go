package router

import (
	"net/http"
	"time"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog"

	"github.com/classumlab/classroom-backend/internal/config"
	"github.com/classumlab/classroom-backend/internal/handler"
	"github.com/classumlab/classroom-backend/internal/middleware"
	"github.com/classumlab/classroom-backend/internal/response"
)

// Handlers groups all handler instances for route setup.
type Handlers struct {
	Class    *handler.ClassHandler
	Category *handler.CategoryHandler
	Notice   *handler.NoticeHandler
	Video    *handler.VideoHandler
}

// SetupRouter configures all Gin route groups with appropriate middlewares.
func SetupRouter(handlers *Handlers, cfg *config.Config, log zerolog.Logger) *gin.Engine {
	gin.SetMode(cfg.GinMode)
	router := gin.Default()

	// If AllowedOrigins is set in config, restrict to that list;
	// otherwise allow all (*) so dev works without extra config.
	corsConfig := cors.DefaultConfig()
	if len(cfg.AllowedOrigins) > 0 {
		corsConfig.AllowOrigins = cfg.AllowedOrigins
	} else {
		corsConfig.AllowAllOrigins = true
	}
	corsConfig.AllowMethods = []string{"GET", "POST", "PUT", "PATCH", "DELETE", "OPTIONS"}
	corsConfig.AllowHeaders = []string{"Origin", "Content-Type", "X-Request-ID"}
	corsConfig.ExposeHeaders = []string{"X-Request-ID"}
	corsConfig.MaxAge = 12 * time.Hour
	router.Use(cors.New(corsConfig))

	// Request ID for log correlation, compression for listing payloads.
	router.Use(middleware.RequestID(log))
	router.Use(middleware.Compress())

	// Health check.
	router.GET("/health", func(c *gin.Context) {
		response.Success(c, http.StatusOK, gin.H{"status": "ok"})
	})

	// Write endpoints share a generous per-IP limiter; listings are
	// unlimited (the dashboard polls them).
	writeLimiter := middleware.NewRateLimiter(120, time.Minute)

	api := router.Group("/api")
	{
		api.GET("/classes", handlers.Class.ListClasses)
		api.GET("/classes/:id", handlers.Class.GetClass)
		api.POST("/classes", writeLimiter.Middleware(), handlers.Class.CreateClass)
		api.PUT("/classes/:id", writeLimiter.Middleware(), handlers.Class.UpdateClass)
		api.DELETE("/classes/:id", writeLimiter.Middleware(), handlers.Class.DeleteClass)

		api.GET("/categories", handlers.Category.ListCategories)
		api.POST("/categories", writeLimiter.Middleware(), handlers.Category.CreateCategory)
		api.DELETE("/categories/:id", writeLimiter.Middleware(), handlers.Category.DeleteCategory)

		api.GET("/notices", handlers.Notice.ListNotices)
		api.POST("/notices", writeLimiter.Middleware(), handlers.Notice.CreateNotice)
		api.PUT("/notices/:id", writeLimiter.Middleware(), handlers.Notice.UpdateNotice)
		api.DELETE("/notices/:id", writeLimiter.Middleware(), handlers.Notice.DeleteNotice)

		api.GET("/videos", handlers.Video.ListVideos)
		api.POST("/videos", writeLimiter.Middleware(), handlers.Video.CreateVideo)
		api.PUT("/videos/:id", writeLimiter.Middleware(), handlers.Video.UpdateVideo)
		api.DELETE("/videos/:id", writeLimiter.Middleware(), handlers.Video.DeleteVideo)
	}

	return router
}
