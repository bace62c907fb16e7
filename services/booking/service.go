package booking

import (
	"context"
	"fmt"
	"time"

	bookingRepo "decorly/database/repository/booking"
	userRepo "decorly/database/repository/user"
	"decorly/models"
	"decorly/utils"

	"go.mongodb.org/mongo-driver/bson"
	"go.uber.org/zap"
)

// DefaultBookingService implements BookingService over the booking and user
// repositories. The user repository is only consulted for admin enrichment.
type DefaultBookingService struct {
	Repo  bookingRepo.BookingRepository
	Users userRepo.UserRepository
}

// CreateBooking inserts a new booking in the pending state.
func (s *DefaultBookingService) CreateBooking(ctx context.Context, input models.Booking) (*models.Booking, error) {
	if input.Email == "" {
		return nil, fmt.Errorf("email is required")
	}

	input.Status = models.BookingStatusPending
	input.TrackingID = ""
	input.PaidAt = nil

	if _, err := s.Repo.Create(ctx, &input); err != nil {
		return nil, fmt.Errorf("failed to create booking: %w", err)
	}
	return &input, nil
}

// GetBooking returns a booking by ID.
func (s *DefaultBookingService) GetBooking(ctx context.Context, id string) (*models.Booking, error) {
	booking, err := s.Repo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if booking == nil {
		return nil, fmt.Errorf("booking with id %s not found", id)
	}
	return booking, nil
}

// ListBookings returns all bookings, or those for a customer email.
func (s *DefaultBookingService) ListBookings(ctx context.Context, email string) ([]models.Booking, error) {
	if email != "" {
		return s.Repo.GetByEmail(ctx, email)
	}
	return s.Repo.GetAll(ctx)
}

// UpdateBooking applies the customer-editable fields that were supplied.
func (s *DefaultBookingService) UpdateBooking(ctx context.Context, id string, upd models.BookingUpdate) error {
	updateFields := bson.M{}
	if upd.BookingDate != "" {
		updateFields["bookingDate"] = upd.BookingDate
	}
	if upd.Location != "" {
		updateFields["location"] = upd.Location
	}
	if upd.AssignedDecorator != "" {
		updateFields["assignedDecorator"] = upd.AssignedDecorator
	}
	return s.Repo.UpdateSetDocument(ctx, id, updateFields)
}

// DeleteBooking removes a booking.
func (s *DefaultBookingService) DeleteBooking(ctx context.Context, id string) error {
	return s.Repo.Delete(ctx, id)
}

// ListAdminBookings returns every booking enriched with the customer's name
// and the assigned decorator's name for the dashboard.
func (s *DefaultBookingService) ListAdminBookings(ctx context.Context) ([]models.AdminBooking, error) {
	logger := utils.GetLogger()

	bookings, err := s.Repo.GetAll(ctx)
	if err != nil {
		return nil, err
	}

	enriched := make([]models.AdminBooking, 0, len(bookings))
	for _, b := range bookings {
		item := models.AdminBooking{Booking: b, UserEmail: b.Email}

		user, err := s.Users.GetByEmail(ctx, b.Email)
		if err != nil {
			logger.Warn("admin bookings: user lookup failed", zap.String("email", b.Email), zap.Error(err))
		} else if user != nil {
			item.UserName = user.Name
			item.UserEmail = user.Email
		}

		if b.AssignedDecorator != "" {
			decorator, err := s.Users.GetByEmail(ctx, b.AssignedDecorator)
			if err != nil {
				logger.Warn("admin bookings: decorator lookup failed", zap.String("email", b.AssignedDecorator), zap.Error(err))
			} else if decorator != nil {
				item.DecoratorName = decorator.Name
			}
		}

		enriched = append(enriched, item)
	}
	return enriched, nil
}

// AdminUpdateBooking applies the admin-editable fields that were supplied.
func (s *DefaultBookingService) AdminUpdateBooking(ctx context.Context, id string, upd models.AdminBookingUpdate) error {
	updateFields := bson.M{}
	if upd.Status != "" {
		updateFields["status"] = upd.Status
	}
	if upd.AssignedDecorator != "" {
		updateFields["assignedDecorator"] = upd.AssignedDecorator
	}
	return s.Repo.UpdateSetDocument(ctx, id, updateFields)
}

// MarkBookingPaid stamps a booking as paid without a ledger entry. This is
// the manual admin override for out-of-band settlements.
func (s *DefaultBookingService) MarkBookingPaid(ctx context.Context, id string) error {
	return s.Repo.UpdateSetDocument(ctx, id, bson.M{
		"status": models.BookingStatusPaid,
		"paidAt": time.Now(),
	})
}
