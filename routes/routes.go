package routes

import (
	"net/http"
	"time"

	"decorly/handlers"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
)

// RegisterUserRoutes registers account endpoints.
func RegisterUserRoutes(r *gin.Engine, hb *handlers.HandlerBundle) {
	api := r.Group("/api/users")
	{
		api.POST("", hb.RegisterUserHandler)
		api.GET("", hb.ListUsersHandler)
		api.GET("/:email/role", hb.GetUserRoleHandler)
		api.PATCH("/:id/role", hb.SetUserRoleHandler)
	}
}

// RegisterBookingRoutes registers customer booking endpoints.
func RegisterBookingRoutes(r *gin.Engine, hb *handlers.HandlerBundle) {
	api := r.Group("/api/bookings")
	{
		api.POST("", hb.CreateBookingHandler)
		api.GET("", hb.ListBookingsHandler)
		api.GET("/:id", hb.GetBookingHandler)
		api.PATCH("/:id", hb.UpdateBookingHandler)
		api.DELETE("/:id", hb.DeleteBookingHandler)
	}
}

// RegisterPaymentRoutes registers the checkout and ledger endpoints.
func RegisterPaymentRoutes(r *gin.Engine, hb *handlers.HandlerBundle) {
	api := r.Group("/api/payments")
	{
		api.POST("/checkout-session", hb.CreateCheckoutSessionHandler)
		api.PATCH("/success", hb.PaymentSuccessHandler)
		api.GET("", hb.ListPaymentsHandler)
	}
}

// RegisterCatalogRoutes registers the public catalog endpoints.
func RegisterCatalogRoutes(r *gin.Engine, hb *handlers.HandlerBundle) {
	api := r.Group("/api/services")
	{
		api.GET("", hb.ListHomeServicesHandler)
		api.GET("/:id", hb.GetHomeServiceHandler)
	}
}

// RegisterReviewRoutes registers the review endpoints.
func RegisterReviewRoutes(r *gin.Engine, hb *handlers.HandlerBundle) {
	api := r.Group("/api/reviews")
	{
		api.POST("", hb.AddReviewHandler)
		api.GET("", hb.ListReviewsHandler)
		api.GET("/service/:serviceId", hb.ListServiceReviewsHandler)
		api.DELETE("/:id", hb.DeleteReviewHandler)
	}
}

// RegisterAdminRoutes sets up endpoints for admin operations.
func RegisterAdminRoutes(r *gin.Engine, hb *handlers.HandlerBundle) {
	adminGroup := r.Group("/api/admin")
	{
		adminGroup.GET("/bookings", hb.ListAdminBookingsHandler)
		adminGroup.PATCH("/bookings/:id", hb.AdminUpdateBookingHandler)
		adminGroup.PATCH("/bookings/:id/paid", hb.MarkBookingPaidHandler)

		adminGroup.GET("/services", hb.ListServicesHandler)
		adminGroup.POST("/services", hb.CreateServiceHandler)
		adminGroup.PATCH("/services/:id", hb.UpdateServiceHandler)
		adminGroup.DELETE("/services/:id", hb.DeleteServiceHandler)

		adminGroup.GET("/decorators", hb.ListDecoratorsHandler)
		adminGroup.POST("/decorators", hb.CreateDecoratorHandler)
		adminGroup.PATCH("/decorators/:id", hb.SetDecoratorStatusHandler)
		adminGroup.DELETE("/decorators/:id", hb.DeleteDecoratorHandler)
	}
}

// RegisterHealthRoute registers a health-check endpoint.
func RegisterHealthRoute(r *gin.Engine) {
	r.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok", "message": "Hi, I'm Decorly"})
	})
}

// RegisterRoutes centralizes registration of all endpoints and middleware.
func RegisterRoutes(r *gin.Engine, hb *handlers.HandlerBundle) {
	// Setup global middleware (e.g., CORS) here.
	r.Use(cors.New(cors.Config{
		AllowOrigins:     []string{"*"},
		AllowMethods:     []string{"GET", "POST", "PUT", "PATCH", "DELETE", "OPTIONS"},
		AllowHeaders:     []string{"Origin", "Authorization", "Content-Type"},
		ExposeHeaders:    []string{"Content-Length"},
		AllowCredentials: true,
		MaxAge:           12 * time.Hour,
	}))

	RegisterUserRoutes(r, hb)
	RegisterBookingRoutes(r, hb)
	RegisterPaymentRoutes(r, hb)
	RegisterCatalogRoutes(r, hb)
	RegisterReviewRoutes(r, hb)
	RegisterAdminRoutes(r, hb)
	RegisterHealthRoute(r)
}
