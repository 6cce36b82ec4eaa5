// internal/router/router.go
package router

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"github.com/Ayupanchal18/Renters-sub005/internal/config"
	"github.com/Ayupanchal18/Renters-sub005/internal/handlers"
	"github.com/Ayupanchal18/Renters-sub005/internal/metrics"
	"github.com/Ayupanchal18/Renters-sub005/internal/middleware"
	"github.com/Ayupanchal18/Renters-sub005/internal/scheduler"
	"github.com/Ayupanchal18/Renters-sub005/internal/services"
	"github.com/Ayupanchal18/Renters-sub005/internal/utils"
)

// Initialize wires services, handlers and routes. The returned scheduler is
// started and stopped by the caller alongside the HTTP server.
func Initialize(db *gorm.DB, cfg *config.Config) (*gin.Engine, *scheduler.Scheduler) {
	// Initialize services
	registry := metrics.NewRegistry()
	propertyService := services.NewPropertyService(db, registry)
	favoriteService := services.NewFavoriteService(db)
	adminService := services.NewAdminService(db, registry)
	sitemapService := services.NewSitemapService(db, cfg.Frontend.BaseURL)
	sched := scheduler.New(adminService, sitemapService, cfg.Scheduler)

	// Initialize handlers
	propertyHandler := handlers.NewPropertyHandler(propertyService)
	userHandler := handlers.NewUserHandler(propertyService, favoriteService)
	adminHandler := handlers.NewAdminHandler(adminService, sched)
	sitemapHandler := handlers.NewSitemapHandler(sitemapService)

	// Set JWT secret
	utils.SetJWTSecret(cfg.JWT.SecretKey)

	// Initialize Gin router
	r := gin.New()

	// Global middleware
	r.Use(gin.Recovery())
	r.Use(middleware.RequestLogger())
	r.Use(middleware.CORS(cfg.CORS.AllowedOrigins))
	r.Use(middleware.GeneralRateLimit())
	r.Use(middleware.AuditLogMiddleware(db))

	// Health check
	r.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{
			"status":  "healthy",
			"version": "1.0.0",
		})
	})

	// Served at the host root, where crawlers expect it
	r.GET("/sitemap.xml", sitemapHandler.GetSitemap)

	// API v1 routes
	v1 := r.Group("/api/v1")
	{
		// Property routes
		properties := v1.Group("/properties")
		{
			properties.GET("", propertyHandler.ListProperties)
			properties.GET("/featured", propertyHandler.GetFeaturedProperties)
			properties.GET("/popular", propertyHandler.GetPopularProperties)
			properties.POST("/search", middleware.SearchRateLimit(), propertyHandler.SearchProperties)
			properties.POST("/rent/search", middleware.SearchRateLimit(), propertyHandler.SearchRentProperties)
			properties.POST("/buy/search", middleware.SearchRateLimit(), propertyHandler.SearchBuyProperties)
			properties.GET("/rent/:identifier", middleware.OptionalAuth(), propertyHandler.GetRentProperty)
			properties.GET("/buy/:identifier", middleware.OptionalAuth(), propertyHandler.GetBuyProperty)
			properties.GET("/:identifier", middleware.OptionalAuth(), propertyHandler.GetProperty)
			properties.GET("/:identifier/similar", propertyHandler.GetSimilarProperties)

			// Authenticated routes
			protected := properties.Group("")
			protected.Use(middleware.AuthRequired(), middleware.WriteRateLimit())
			{
				protected.POST("", propertyHandler.CreateProperty)
				protected.PUT("/:identifier", propertyHandler.UpdateProperty)
				protected.PATCH("/:identifier/status", propertyHandler.UpdatePropertyStatus)
				protected.DELETE("/:identifier", propertyHandler.DeleteProperty)
				protected.POST("/:identifier/favorite", userHandler.AddFavorite)
				protected.DELETE("/:identifier/favorite", userHandler.RemoveFavorite)
			}
		}

		// User routes
		users := v1.Group("/users")
		users.Use(middleware.AuthRequired())
		{
			users.GET("/me/properties", userHandler.GetMyProperties)
			users.GET("/me/favorites", userHandler.GetMyFavorites)
		}

		// Admin routes
		admin := v1.Group("/admin")
		admin.Use(middleware.AuthRequired(), middleware.AdminRequired())
		{
			admin.GET("/stats", adminHandler.GetDashboardStats)
			admin.GET("/properties", adminHandler.GetProperties)
			admin.PUT("/properties/:id/status", adminHandler.UpdatePropertyStatus)
			admin.PATCH("/properties/:id/featured", adminHandler.SetFeatured)
			admin.DELETE("/properties/:id", adminHandler.HardDeleteProperty)
			admin.GET("/audit-logs", adminHandler.GetAuditLogs)
			admin.GET("/reports/price-trends", adminHandler.GetPriceTrends)
			admin.GET("/export/properties", adminHandler.ExportProperties)
			admin.POST("/market-snapshots/run", adminHandler.RunMarketSnapshot)
		}
	}

	return r, sched
}
