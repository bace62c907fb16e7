// File: decorly/main.go
package main

import (
	"context"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"decorly/config"
	"decorly/database"
	bookingRepoPkg "decorly/database/repository/booking"
	catalogRepoPkg "decorly/database/repository/catalog"
	paymentRepoPkg "decorly/database/repository/payment"
	reviewRepoPkg "decorly/database/repository/review"
	userRepoPkg "decorly/database/repository/user"
	"decorly/handlers"
	"decorly/middleware"
	"decorly/routes"
	"decorly/services/booking"
	"decorly/services/catalog"
	"decorly/services/payment"
	"decorly/services/review"
	"decorly/services/user"
	"decorly/utils"

	"github.com/gin-gonic/gin"
	"github.com/stripe/stripe-go/v76"
)

func main() {
	config.LoadConfig()
	logger := utils.GetLogger()

	database.InitDB()
	utils.InitCache()

	// Create the Gin router.
	router := gin.New()
	router.Use(utils.ErrorHandler())
	router.Use(gin.Logger())
	router.Use(middleware.RateLimitMiddleware())
	stripe.Key = config.AppConfig.StripeSecretKey

	// repositories.
	bookingRepo := bookingRepoPkg.NewMongoBookingRepo()
	paymentRepo := paymentRepoPkg.NewMongoPaymentRepo()
	userRepo := userRepoPkg.NewMongoUserRepo()
	catalogRepo := catalogRepoPkg.NewMongoCatalogRepo()
	reviewRepo := reviewRepoPkg.NewMongoReviewRepo()

	// services.
	userService := &user.DefaultUserService{
		Repo: userRepo,
	}
	bookingService := &booking.DefaultBookingService{
		Repo:  bookingRepo,
		Users: userRepo,
	}
	catalogService := &catalog.DefaultCatalogService{
		Repo:  catalogRepo,
		Cache: utils.GetCacheClient(),
	}
	reviewService := &review.DefaultReviewService{
		Repo: reviewRepo,
	}
	paymentService := payment.NewDefaultPaymentService(
		payment.NewStripeGateway("usd"),
		bookingRepo,
		paymentRepo,
		config.AppConfig.SiteDomain,
		logger,
	)

	// handlers.
	userHandler := handlers.NewUserHandler(userService, logger)
	bookingHandler := handlers.NewBookingHandler(bookingService, logger)
	paymentHandler := handlers.NewPaymentHandler(paymentService, logger)
	catalogHandler := handlers.NewCatalogHandler(catalogService, logger)
	reviewHandler := handlers.NewReviewHandler(reviewService, logger)

	// Assemble the handler bundle.
	handlerBundle := &handlers.HandlerBundle{
		// User endpoints.
		RegisterUserHandler: userHandler.RegisterUser,
		ListUsersHandler:    userHandler.ListUsers,
		GetUserRoleHandler:  userHandler.GetUserRole,
		SetUserRoleHandler:  userHandler.SetUserRole,

		// Booking endpoints.
		CreateBookingHandler: bookingHandler.CreateBooking,
		ListBookingsHandler:  bookingHandler.ListBookings,
		GetBookingHandler:    bookingHandler.GetBooking,
		UpdateBookingHandler: bookingHandler.UpdateBooking,
		DeleteBookingHandler: bookingHandler.DeleteBooking,

		// Admin booking endpoints.
		ListAdminBookingsHandler:  bookingHandler.ListAdminBookings,
		AdminUpdateBookingHandler: bookingHandler.AdminUpdateBooking,
		MarkBookingPaidHandler:    bookingHandler.MarkBookingPaid,

		// Payment endpoints.
		CreateCheckoutSessionHandler: paymentHandler.CreateCheckoutSession,
		PaymentSuccessHandler:        paymentHandler.PaymentSuccess,
		ListPaymentsHandler:          paymentHandler.ListPayments,

		// Catalog endpoints.
		ListHomeServicesHandler: catalogHandler.ListHomeServices,
		GetHomeServiceHandler:   catalogHandler.GetHomeService,
		ListServicesHandler:     catalogHandler.ListServices,
		CreateServiceHandler:    catalogHandler.CreateService,
		UpdateServiceHandler:    catalogHandler.UpdateService,
		DeleteServiceHandler:    catalogHandler.DeleteService,

		// Decorator endpoints.
		ListDecoratorsHandler:     userHandler.ListDecorators,
		CreateDecoratorHandler:    userHandler.CreateDecorator,
		SetDecoratorStatusHandler: userHandler.SetDecoratorStatus,
		DeleteDecoratorHandler:    userHandler.DeleteDecorator,

		// Review endpoints.
		AddReviewHandler:          reviewHandler.AddReview,
		ListReviewsHandler:        reviewHandler.ListReviews,
		ListServiceReviewsHandler: reviewHandler.ListServiceReviews,
		DeleteReviewHandler:       reviewHandler.DeleteReview,
	}

	// Register routes with the assembled handler bundle.
	routes.RegisterRoutes(router, handlerBundle)

	// Start the HTTP server.
	port := config.AppConfig.AppPort
	if port == "" {
		port = "8080"
	}
	srv := &http.Server{
		Addr:    "0.0.0.0:" + port,
		Handler: router,
	}

	logger.Sugar().Infof("Starting server on %s...", srv.Addr)
	go func() {
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			logger.Sugar().Fatalf("main: server failed to start: %v", err)
		}
	}()

	// Wait for an OS signal to gracefully shutdown.
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit
	logger.Sugar().Info("main: server is shutting down...")

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	if err := srv.Shutdown(ctx); err != nil {
		logger.Sugar().Fatalf("main: server forced to shutdown: %v", err)
	}

	logger.Sugar().Info("main: server stopped gracefully")
}
