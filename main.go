package main

import (
	"time"

	"wishlist-be/internal/allowlist"
	"wishlist-be/internal/cache"
	"wishlist-be/internal/config"
	"wishlist-be/internal/controllers"
	"wishlist-be/internal/database"
	"wishlist-be/internal/jwt"
	"wishlist-be/internal/logger"
	"wishlist-be/internal/middleware"
	"wishlist-be/internal/oauth"
	"wishlist-be/internal/repository"
	"wishlist-be/internal/service"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
	"golang.org/x/time/rate"
)

func main() {
	logger.Init()
	defer logger.Sync()

	// Load configuration
	cfg := config.Load()

	// Connect to database
	db, err := database.NewConnection(cfg.DatabaseURL)
	if err != nil {
		logger.Error("Failed to connect to database", zap.Error(err))
		return
	}
	defer db.Close()
	logger.Info("Connected to database")

	// Run database migrations
	if err := database.RunMigrations(db); err != nil {
		logger.Error("Failed to run migrations", zap.Error(err))
		return
	}

	// Initialize Redis cache (optional - continue if Redis is unavailable)
	var cacheClient cache.Cache
	cacheClient, err = cache.NewRedisCache(cfg.RedisURL)
	if err != nil {
		logger.Warn("Redis unavailable, continuing without cache", zap.Error(err))
		cacheClient = nil
	} else {
		logger.Info("Connected to Redis cache")
	}

	// Initialize repositories
	userRepo := repository.NewUserRepository(db)
	giftRepo := repository.NewGiftRepository(db)

	// Initialize JWT service
	jwtService := jwt.NewJWTService(
		cfg.JWTSecret,
		time.Duration(cfg.JWTTTL)*time.Hour,
	)

	// Email allow-list and Google login provider
	allowed := allowlist.Parse(cfg.AllowedEmails)
	googleProvider := oauth.NewGoogleProvider(
		cfg.GoogleClientID,
		cfg.GoogleClientSecret,
		cfg.GoogleRedirectURL,
	)

	// Initialize services
	authService := service.NewAuthService(userRepo, jwtService, allowed, googleProvider)
	userService := service.NewUserService(userRepo, cacheClient)
	giftService := service.NewGiftService(giftRepo, cacheClient)

	// Initialize controllers
	authController := controllers.NewAuthController(authService, googleProvider, cfg.FrontendURL)
	userController := controllers.NewUserController(userService)
	giftController := controllers.NewGiftController(giftService)
	qrcodeController := controllers.NewQRCodeController(cfg.FrontendURL)

	// Initialize rate limiters
	generalRateLimiter := middleware.NewRateLimiter(rate.Limit(cfg.RateLimitRPS), cfg.RateLimitBurst)
	authRateLimiter := middleware.NewRateLimiter(rate.Limit(cfg.RateLimitAuthRPS), cfg.RateLimitAuthBurst)

	// Create a Gin router
	router := gin.Default()

	// Health check endpoint (no rate limiting)
	router.GET("/health", func(c *gin.Context) {
		c.JSON(200, gin.H{
			"status": "ok",
		})
	})

	// Auth routes with stricter rate limiting
	auth := router.Group("/auth")
	auth.Use(authRateLimiter.LimitMiddleware())
	{
		auth.POST("/register", authController.Register)
		auth.POST("/login", authController.Login)
		auth.GET("/google", authController.GoogleLogin)
		auth.GET("/google/callback", authController.GoogleCallback)
	}

	// Everything else shares the general rate limit
	api := router.Group("")
	api.Use(generalRateLimiter.LimitMiddleware())
	{
		// Legacy user routes: unauthenticated, kept for the bootstrap name picker
		api.GET("/users", userController.List)
		api.POST("/users", userController.Create)

		// Share QR code for the wishlist frontend
		api.GET("/qrcode", qrcodeController.ShareQRCode)

		// Protected gift routes - require a session token
		protected := api.Group("")
		protected.Use(middleware.AuthMiddleware(jwtService))
		{
			protected.GET("/gifts", giftController.List)
			protected.POST("/gifts", giftController.Create)
			protected.PATCH("/gifts/:id", giftController.Update)
			protected.DELETE("/gifts/:id", giftController.Delete)
		}
	}

	logger.Info("Server starting", zap.String("port", cfg.Port))
	if err := router.Run(":" + cfg.Port); err != nil {
		logger.Error("Server exited", zap.Error(err))
	}
}
