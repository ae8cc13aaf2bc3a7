// internal/router/router.go
package router

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/kserge2001/AfricanEstates/internal/config"
	"github.com/kserge2001/AfricanEstates/internal/handlers"
	"github.com/kserge2001/AfricanEstates/internal/middleware"
	"github.com/kserge2001/AfricanEstates/internal/services"
	"github.com/kserge2001/AfricanEstates/internal/store"
	"github.com/kserge2001/AfricanEstates/internal/utils"
)

func Initialize(st store.Store, cfg *config.Config) *gin.Engine {
	// Initialize services
	authService := services.NewAuthService(st, cfg)
	propertyService := services.NewPropertyService(st)
	financingService := services.NewFinancingService(st)

	// Initialize handlers
	authHandler := handlers.NewAuthHandler(authService)
	propertyHandler := handlers.NewPropertyHandler(propertyService)
	financingHandler := handlers.NewFinancingHandler(financingService)

	// Set JWT secret
	utils.SetJWTSecret(cfg.JWT.SecretKey)

	// Initialize Gin router
	r := gin.New()

	// Global middleware
	r.Use(gin.Recovery())
	r.Use(middleware.RequestLogger())
	r.Use(middleware.CORS(cfg.CORS.AllowedOrigins))
	r.Use(middleware.GeneralRateLimit())

	// Health check
	r.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{
			"status":  "healthy",
			"version": "1.0.0",
		})
	})

	// API routes
	api := r.Group("/api")
	{
		// Authentication routes
		auth := api.Group("")
		auth.Use(middleware.AuthRateLimit())
		{
			auth.POST("/register", authHandler.Register)
			auth.POST("/login", authHandler.Login)
			auth.POST("/logout", authHandler.Logout)
		}
		api.GET("/user", middleware.AuthRequired(), authHandler.GetCurrentUser)

		// Property catalog routes
		properties := api.Group("/properties")
		{
			properties.GET("", propertyHandler.GetProperties)
			properties.GET("/featured", propertyHandler.GetFeaturedProperties)
			properties.GET("/search", propertyHandler.SearchPropertiesByQuery)
			properties.POST("/search", propertyHandler.SearchProperties)
			properties.GET("/:id", propertyHandler.GetProperty)
			properties.POST("", middleware.AuthRequired(), propertyHandler.CreateProperty)
		}

		// Owner dashboard
		api.GET("/user/:id/properties", propertyHandler.GetUserProperties)

		// Financing
		api.POST("/financing", financingHandler.SubmitRequest)

		// Reference data
		api.GET("/countries", handlers.GetCountries)
		api.GET("/currencies", handlers.GetCurrencies)
	}

	return r
}
