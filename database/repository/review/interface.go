package reviewRepo

import (
	"context"
	"time"

	"decorly/database"
	"decorly/models"

	"go.mongodb.org/mongo-driver/mongo"
)

// ReviewRepository provides access to the reviews collection.
type ReviewRepository interface {
	Create(ctx context.Context, review *models.Review) (string, error)
	GetAll(ctx context.Context) ([]models.Review, error)
	GetByService(ctx context.Context, serviceID string) ([]models.Review, error)
	Delete(ctx context.Context, id string) error
}

type mongoReviewRepo struct {
	coll *mongo.Collection
}

// NewMongoReviewRepo returns a new ReviewRepository instance using MongoDB.
func NewMongoReviewRepo() ReviewRepository {
	db := database.MongoClient.Database(database.DBName())
	return &mongoReviewRepo{
		coll: db.Collection("reviews"),
	}
}

// newContext creates a context with the given timeout.
func newContext(parent context.Context, timeout time.Duration) (context.Context, context.CancelFunc) {
	return context.WithTimeout(parent, timeout)
}
