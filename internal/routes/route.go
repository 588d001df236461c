package routes

import (
	"net/http"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/joshua-takyi/eventbook/internal/container"
	"github.com/joshua-takyi/eventbook/internal/handlers"
	"github.com/joshua-takyi/eventbook/internal/middleware"
)

// SetupRoutes configures all routes with the dependency container
func SetupRoutes(container *container.Container) *gin.Engine {
	gin.SetMode(gin.ReleaseMode)

	corsConfig := cors.Config{
		AllowOrigins:  container.CORSOrigins,
		AllowMethods:  []string{"GET", "POST", "OPTIONS"},
		AllowHeaders:  []string{"Origin", "Content-Type", "X-Request-ID"},
		ExposeHeaders: []string{"Content-Length", "X-Request-ID"},
	}
	// cors.New panics on an empty origin list.
	if len(corsConfig.AllowOrigins) == 0 {
		corsConfig.AllowAllOrigins = true
	}

	r := gin.New()
	r.Use(cors.New(corsConfig))

	r.Use(middleware.RequestID())
	r.Use(middleware.StructuredLogger(container.Logger))
	r.Use(middleware.ErrorHandler(container.Logger))
	r.Use(gin.Recovery())

	v1 := r.Group("/api/v1")
	{
		v1.GET("/health", func(c *gin.Context) {
			c.JSON(http.StatusOK, gin.H{
				"status":  "OK",
				"service": "eventbook-api",
			})
		})
		v1.GET("/options", handlers.ListOptions())
	}

	venueRoutes := v1.Group("/venues")
	{
		venueRoutes.GET("", handlers.ListVenues(container.CatalogService))
		venueRoutes.GET("/:id", handlers.GetVenue(container.CatalogService))
	}

	serviceRoutes := v1.Group("/services")
	{
		serviceRoutes.GET("", handlers.ListServices(container.CatalogService))
		serviceRoutes.GET("/:id", handlers.GetService(container.CatalogService))
	}

	bookingRoutes := v1.Group("/bookings")
	{
		bookingRoutes.POST("/validate/personal", handlers.ValidatePersonalDetails(container.BookingService))
		bookingRoutes.POST("/validate/event", handlers.ValidateEventDetails(container.BookingService))
		bookingRoutes.POST("/quote", handlers.QuoteBooking(container.BookingService))
		bookingRoutes.POST("", handlers.CreateBooking(container.BookingService))
		bookingRoutes.GET("", handlers.ListBookings(container.BookingService))
		bookingRoutes.GET("/stats", handlers.BookingStats(container.BookingService))
		bookingRoutes.GET("/:id", handlers.GetBooking(container.BookingService))
	}

	return r
}
