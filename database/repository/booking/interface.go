package bookingRepo

import (
	"context"
	"time"

	"decorly/database"
	"decorly/models"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
)

// BookingRepository provides access to the bookings collection.
type BookingRepository interface {
	Create(ctx context.Context, booking *models.Booking) (string, error)
	GetByID(ctx context.Context, id string) (*models.Booking, error)
	GetAll(ctx context.Context) ([]models.Booking, error)
	GetByEmail(ctx context.Context, email string) ([]models.Booking, error)
	UpdateSetDocument(ctx context.Context, id string, updateDoc bson.M) error
	MarkPaid(ctx context.Context, id, trackingID string, paidAt time.Time) error
	Delete(ctx context.Context, id string) error
}

type mongoBookingRepo struct {
	coll *mongo.Collection
}

// NewMongoBookingRepo returns a new BookingRepository instance using MongoDB.
func NewMongoBookingRepo() BookingRepository {
	db := database.MongoClient.Database(database.DBName())
	return &mongoBookingRepo{
		coll: db.Collection("bookings"),
	}
}

// newContext creates a context with the given timeout.
func newContext(parent context.Context, timeout time.Duration) (context.Context, context.CancelFunc) {
	return context.WithTimeout(parent, timeout)
}
