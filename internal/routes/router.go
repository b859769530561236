package routes

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"reservation-api/internal/config"
	"reservation-api/internal/delivery/http/handler"
	domainUser "reservation-api/internal/domain/user"
	"reservation-api/internal/infrastructure/database/postgres"
	"reservation-api/internal/logger"
	"reservation-api/internal/middleware"
	authUsecase "reservation-api/internal/usecase/auth"
	reservationUsecase "reservation-api/internal/usecase/reservation"
	timeblockUsecase "reservation-api/internal/usecase/timeblock"
	userUsecase "reservation-api/internal/usecase/user"
)

func SetupRoutes(cfg *config.Config, db *postgres.DB, fileStore domainUser.FileRepository) *gin.Engine {
	if cfg.Server.Environment == "production" {
		gin.SetMode(gin.ReleaseMode)
	}

	router := gin.New()

	// Middleware order: recovery, request ID, logging, security headers,
	// CORS, request size limit, general rate limit.
	router.Use(middleware.RecoveryMiddleware(cfg.Server.Environment))
	router.Use(middleware.RequestIDMiddleware())
	router.Use(middleware.LoggingMiddleware())
	router.Use(middleware.SecurityHeadersMiddleware())
	router.Use(middleware.CORSMiddleware(&cfg.CORS))
	router.Use(middleware.RequestSizeLimitMiddleware(middleware.DefaultMaxRequestSize))
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
	timeblockRepository := postgres.NewTimeBlockRepository(db)
	reservationRepository := postgres.NewReservationRepository(db)

	authService := authUsecase.NewService(userRepository, cfg)
	authHandler := handler.NewAuthHandler(authService)

	userService := userUsecase.NewService(userRepository, fileStore)
	userHandler := handler.NewUserHandler(userService)

	reservationService := reservationUsecase.NewService(reservationRepository)
	reservationHandler := handler.NewReservationHandler(reservationService)

	timeblockService := timeblockUsecase.NewService(timeblockRepository)
	adminHandler := handler.NewAdminHandler(timeblockService, reservationService)

	// Legacy file-backed user CRUD stays at the root, unversioned, exactly
	// where the historical surface had it.
	userHandler.RegisterLegacyRoutes(&router.RouterGroup)

	v1 := router.Group("/api/v1")
	{
		authHandler.RegisterRoutes(v1)

		protected := v1.Group("")
		protected.Use(middleware.AuthMiddleware(cfg))
		{
			authHandler.RegisterProtectedRoutes(protected)
			userHandler.RegisterProtectedRoutes(protected)
			reservationHandler.RegisterRoutes(protected)

			admin := protected.Group("/admin")
			admin.Use(middleware.AdminOnly())
			{
				adminHandler.RegisterRoutes(admin)
			}
		}
	}

	logger.Info("All routes initialized")
	return router
}
