package catalogRepo

import (
	"context"
	"time"

	"decorly/database"
	"decorly/models"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
)

// CatalogRepository provides access to service listings. The admin-managed
// catalog ("services") and the curated home-page catalog ("homeservices") are
// separate collections with the same document shape.
type CatalogRepository interface {
	GetHomeServices(ctx context.Context) ([]models.Service, error)
	GetHomeServiceByID(ctx context.Context, id string) (*models.Service, error)

	GetServices(ctx context.Context) ([]models.Service, error)
	CreateService(ctx context.Context, service *models.Service) (string, error)
	UpdateService(ctx context.Context, id string, updateDoc bson.M) error
	DeleteService(ctx context.Context, id string) error
}

type mongoCatalogRepo struct {
	services *mongo.Collection
	home     *mongo.Collection
}

// NewMongoCatalogRepo returns a new CatalogRepository instance using MongoDB.
func NewMongoCatalogRepo() CatalogRepository {
	db := database.MongoClient.Database(database.DBName())
	return &mongoCatalogRepo{
		services: db.Collection("services"),
		home:     db.Collection("homeservices"),
	}
}

// newContext creates a context with the given timeout.
func newContext(parent context.Context, timeout time.Duration) (context.Context, context.CancelFunc) {
	return context.WithTimeout(parent, timeout)
}
