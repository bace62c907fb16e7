package catalogRepo

import (
	"context"
	"fmt"
	"time"

	"decorly/models"

	"github.com/google/uuid"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
)

// GetHomeServices returns the curated home-page catalog.
func (r *mongoCatalogRepo) GetHomeServices(ctx context.Context) ([]models.Service, error) {
	return findServices(ctx, r.home, bson.M{})
}

// GetHomeServiceByID returns a single curated catalog entry.
func (r *mongoCatalogRepo) GetHomeServiceByID(ctx context.Context, id string) (*models.Service, error) {
	ctx, cancel := newContext(ctx, 5*time.Second)
	defer cancel()

	var service models.Service
	if err := r.home.FindOne(ctx, bson.M{"id": id}).Decode(&service); err != nil {
		if err == mongo.ErrNoDocuments {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to fetch service with id %s: %w", id, err)
	}
	return &service, nil
}

// GetServices returns every admin-managed listing.
func (r *mongoCatalogRepo) GetServices(ctx context.Context) ([]models.Service, error) {
	return findServices(ctx, r.services, bson.M{})
}

// CreateService inserts a new admin-managed listing and returns its ID.
func (r *mongoCatalogRepo) CreateService(ctx context.Context, service *models.Service) (string, error) {
	ctx, cancel := newContext(ctx, 5*time.Second)
	defer cancel()

	if service.ID == "" {
		service.ID = uuid.New().String()
	}
	now := time.Now()
	service.CreatedAt = now
	service.UpdatedAt = now

	if _, err := r.services.InsertOne(ctx, service); err != nil {
		return "", fmt.Errorf("failed to create service: %w", err)
	}
	return service.ID, nil
}

// UpdateService applies a partial $set update to a listing.
func (r *mongoCatalogRepo) UpdateService(ctx context.Context, id string, updateDoc bson.M) error {
	ctx, cancel := newContext(ctx, 5*time.Second)
	defer cancel()

	updateDoc["updatedAt"] = time.Now()
	result, err := r.services.UpdateOne(ctx, bson.M{"id": id}, bson.M{"$set": updateDoc})
	if err != nil {
		return fmt.Errorf("failed to update service with id %s: %w", id, err)
	}
	if result.MatchedCount == 0 {
		return fmt.Errorf("service with id %s not found", id)
	}
	return nil
}

// DeleteService removes a listing by its ID.
func (r *mongoCatalogRepo) DeleteService(ctx context.Context, id string) error {
	ctx, cancel := newContext(ctx, 5*time.Second)
	defer cancel()

	result, err := r.services.DeleteOne(ctx, bson.M{"id": id})
	if err != nil {
		return fmt.Errorf("failed to delete service with id %s: %w", id, err)
	}
	if result.DeletedCount == 0 {
		return fmt.Errorf("service with id %s not found", id)
	}
	return nil
}

func findServices(ctx context.Context, coll *mongo.Collection, filter bson.M) ([]models.Service, error) {
	ctx, cancel := newContext(ctx, 10*time.Second)
	defer cancel()

	cursor, err := coll.Find(ctx, filter)
	if err != nil {
		return nil, fmt.Errorf("failed to retrieve services: %w", err)
	}
	defer cursor.Close(ctx)

	var services []models.Service
	if err := cursor.All(ctx, &services); err != nil {
		return nil, fmt.Errorf("failed to decode services: %w", err)
	}
	return services, nil
}
