// internal/router/router.go
package router

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"github.com/sirupsen/logrus"
	"gorm.io/gorm"

	"github.com/atelier-lumen/jewelry-backend/internal/config"
	"github.com/atelier-lumen/jewelry-backend/internal/handlers"
	"github.com/atelier-lumen/jewelry-backend/internal/middleware"
	"github.com/atelier-lumen/jewelry-backend/internal/services"
)

func SetupRouter(cfg *config.Config, db *gorm.DB) *gin.Engine {
	r := gin.New()

	// Global middleware
	r.Use(gin.Recovery())
	r.Use(middleware.RequestLogger())
	r.Use(middleware.CORS(cfg.Frontend.AllowedOrigins))
	r.Use(middleware.PrometheusMiddleware())
	r.Use(middleware.GeneralRateLimit())

	// Services
	storageService, err := services.NewStorageService(cfg)
	if err != nil {
		logrus.WithError(err).Warn("Image storage unavailable, uploads disabled")
	}
	paymentService := services.NewPaymentService(cfg)
	notificationService := services.NewNotificationService(cfg)

	authService := services.NewAuthService(db, cfg)
	catalogService := services.NewCatalogService(db, storageService)
	cartService := services.NewCartService(db)
	orderService := services.NewOrderService(db, paymentService, notificationService)
	reviewService := services.NewReviewService(db)
	wishlistService := services.NewWishlistService(db)
	contactService := services.NewContactService(db)

	// Handlers
	authHandler := handlers.NewAuthHandler(authService)
	catalogHandler := handlers.NewCatalogHandler(catalogService)
	cartHandler := handlers.NewCartHandler(cartService)
	orderHandler := handlers.NewOrderHandler(orderService)
	reviewHandler := handlers.NewReviewHandler(reviewService)
	wishlistHandler := handlers.NewWishlistHandler(wishlistService)
	contactHandler := handlers.NewContactHandler(contactService)
	adminHandler := handlers.NewAdminHandler(catalogService, storageService)

	// Health and metrics
	r.GET("/health", func(c *gin.Context) {
		sqlDB, err := db.DB()
		if err != nil || sqlDB.Ping() != nil {
			c.JSON(http.StatusServiceUnavailable, gin.H{
				"status": "unhealthy",
			})
			return
		}
		c.JSON(http.StatusOK, gin.H{
			"status":    "healthy",
			"timestamp": time.Now().UTC().Format(time.RFC3339),
		})
	})
	r.GET("/metrics", gin.WrapH(promhttp.Handler()))

	// Locally stored catalog images
	r.Static("/images", cfg.Storage.LocalDir)

	// Auth
	auth := r.Group("/auth")
	auth.Use(middleware.AuthRateLimit())
	{
		auth.POST("/signup", authHandler.Signup)
		auth.POST("/login", authHandler.Login)
	}

	// Public catalog
	r.GET("/jewelry", middleware.OptionalAuth(), catalogHandler.ListItems)
	r.GET("/jewelry/:id", middleware.OptionalAuth(), catalogHandler.GetItem)
	r.GET("/categories", catalogHandler.ListCategories)
	r.GET("/reviews/:item_id", middleware.OptionalAuth(), reviewHandler.ListItemReviews)

	// Contact and newsletter
	r.POST("/contact", contactHandler.SubmitMessage)
	r.POST("/newsletter/subscribe", contactHandler.Subscribe)

	// Authenticated storefront
	authenticated := r.Group("")
	authenticated.Use(middleware.AuthRequired())
	{
		authenticated.GET("/cart", cartHandler.GetCart)
		authenticated.POST("/cart/add", cartHandler.AddToCart)
		authenticated.DELETE("/cart/:item_id", cartHandler.RemoveFromCart)
		authenticated.DELETE("/cart", cartHandler.ClearCart)

		authenticated.POST("/orders", orderHandler.PlaceOrder)
		authenticated.GET("/orders", orderHandler.ListOrders)
		authenticated.PUT("/orders/:id/status", orderHandler.UpdateStatus)

		authenticated.POST("/reviews", reviewHandler.CreateReview)

		authenticated.GET("/wishlist", wishlistHandler.List)
		authenticated.POST("/wishlist", wishlistHandler.Add)
		authenticated.DELETE("/wishlist/:item_id", wishlistHandler.Remove)
		authenticated.GET("/wishlist/check/:item_id", wishlistHandler.Check)
	}

	// Admin catalog management
	admin := r.Group("/admin")
	admin.Use(middleware.AuthRequired(), middleware.AdminRequired(db))
	{
		admin.GET("/jewelry", catalogHandler.ListItems)
		admin.POST("/jewelry", adminHandler.CreateItem)
		admin.PUT("/jewelry/:id", adminHandler.UpdateItem)
		admin.DELETE("/jewelry/:id", adminHandler.DeleteItem)
	}

	return r
}
