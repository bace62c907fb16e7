package handlers

import "github.com/gin-gonic/gin"

// HandlerBundle aggregates every endpoint handler for route registration.
type HandlerBundle struct {
	// User endpoints.
	RegisterUserHandler gin.HandlerFunc
	ListUsersHandler    gin.HandlerFunc
	GetUserRoleHandler  gin.HandlerFunc
	SetUserRoleHandler  gin.HandlerFunc

	// Booking endpoints.
	CreateBookingHandler gin.HandlerFunc
	ListBookingsHandler  gin.HandlerFunc
	GetBookingHandler    gin.HandlerFunc
	UpdateBookingHandler gin.HandlerFunc
	DeleteBookingHandler gin.HandlerFunc

	// Admin booking endpoints.
	ListAdminBookingsHandler  gin.HandlerFunc
	AdminUpdateBookingHandler gin.HandlerFunc
	MarkBookingPaidHandler    gin.HandlerFunc

	// Payment endpoints.
	CreateCheckoutSessionHandler gin.HandlerFunc
	PaymentSuccessHandler        gin.HandlerFunc
	ListPaymentsHandler          gin.HandlerFunc

	// Catalog endpoints.
	ListHomeServicesHandler gin.HandlerFunc
	GetHomeServiceHandler   gin.HandlerFunc
	ListServicesHandler     gin.HandlerFunc
	CreateServiceHandler    gin.HandlerFunc
	UpdateServiceHandler    gin.HandlerFunc
	DeleteServiceHandler    gin.HandlerFunc

	// Decorator endpoints.
	ListDecoratorsHandler     gin.HandlerFunc
	CreateDecoratorHandler    gin.HandlerFunc
	SetDecoratorStatusHandler gin.HandlerFunc
	DeleteDecoratorHandler    gin.HandlerFunc

	// Review endpoints.
	AddReviewHandler          gin.HandlerFunc
	ListReviewsHandler        gin.HandlerFunc
	ListServiceReviewsHandler gin.HandlerFunc
	DeleteReviewHandler       gin.HandlerFunc
}
