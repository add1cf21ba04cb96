package routes

import (
	"net/http"

	"trip-expense-tracker/internal/config"
	"trip-expense-tracker/internal/delivery/http/handler"
	"trip-expense-tracker/internal/infrastructure/database/postgres"
	"trip-expense-tracker/internal/logger"
	"trip-expense-tracker/internal/middleware"
	"trip-expense-tracker/internal/usecase/analytics"
	"trip-expense-tracker/internal/usecase/route"
	"trip-expense-tracker/internal/usecase/trip"
	"trip-expense-tracker/internal/usecase/user"

	"github.com/gin-gonic/gin"
)

func SetupRoutes(cfg *config.Config, db *postgres.DB) *gin.Engine {
	if cfg.Server.Environment == "production" {
		gin.SetMode(gin.ReleaseMode)
	}

	router := gin.New()

	router.Use(gin.Recovery())
	router.Use(middleware.RequestIDMiddleware())
	router.Use(middleware.LoggingMiddleware())
	router.Use(middleware.SecurityHeadersMiddleware())
	router.Use(middleware.CORSMiddleware(&cfg.CORS))
	router.Use(middleware.RequestSizeLimitMiddleware(1 << 20))
	router.Use(middleware.RateLimitMiddleware(cfg.RateLimit.GeneralRPS, cfg.RateLimit.GeneralBurst))

	router.GET("/health", func(c *gin.Context) {
		if err := db.Health(); err != nil {
			c.JSON(http.StatusServiceUnavailable, gin.H{
				"status":  "unhealthy",
				"message": "Database connection failed",
			})
			return
		}

		c.JSON(http.StatusOK, gin.H{
			"status":  "healthy",
			"message": "Service is running",
		})
	})

	userRepository := postgres.NewUserRepository(db)
	routeRepository := postgres.NewRouteRepository(db)
	tripRepository := postgres.NewTripRepository(db)

	userService := user.NewService(userRepository, cfg)
	routeService := route.NewService(routeRepository)
	tripService := trip.NewService(tripRepository, routeRepository)
	analyticsService := analytics.NewService(tripRepository)

	userHandler := handler.NewUserHandler(userService)
	routeHandler := handler.NewRouteHandler(routeService)
	tripHandler := handler.NewTripHandler(tripService)
	analyticsHandler := handler.NewAnalyticsHandler(analyticsService)

	root := router.Group("")
	{
		userHandler.RegisterRoutes(root)

		protected := root.Group("")
		protected.Use(middleware.AuthMiddleware(cfg))
		{
			userHandler.RegisterProtectedRoutes(protected)
			routeHandler.RegisterRoutes(protected)
			tripHandler.RegisterRoutes(protected)
			analyticsHandler.RegisterRoutes(protected)
		}
	}

	logger.Info("All routes initialized")
	return router
}
