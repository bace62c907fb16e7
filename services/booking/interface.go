package booking

import (
	"context"

	"decorly/models"
)

// BookingService manages the booking lifecycle outside of payment.
type BookingService interface {
	CreateBooking(ctx context.Context, input models.Booking) (*models.Booking, error)
	GetBooking(ctx context.Context, id string) (*models.Booking, error)
	ListBookings(ctx context.Context, email string) ([]models.Booking, error)
	UpdateBooking(ctx context.Context, id string, upd models.BookingUpdate) error
	DeleteBooking(ctx context.Context, id string) error

	ListAdminBookings(ctx context.Context) ([]models.AdminBooking, error)
	AdminUpdateBooking(ctx context.Context, id string, upd models.AdminBookingUpdate) error
	MarkBookingPaid(ctx context.Context, id string) error
}
