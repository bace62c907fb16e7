package catalog

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	catalogRepo "decorly/database/repository/catalog"
	"decorly/models"
	"decorly/utils"

	"github.com/go-redis/redis/v8"
	"go.mongodb.org/mongo-driver/bson"
	"go.uber.org/zap"
)

const (
	homeServicesCacheKey = "catalog:homeservices"
	homeServicesCacheTTL = 10 * time.Minute
)

// CatalogCache is the subset of redis commands the read-through cache uses.
// *redis.Client satisfies it.
type CatalogCache interface {
	Get(ctx context.Context, key string) *redis.StringCmd
	Set(ctx context.Context, key string, value interface{}, expiration time.Duration) *redis.StatusCmd
}

// DefaultCatalogService implements CatalogService with a read-through redis
// cache on the public catalog. A nil cache disables caching.
type DefaultCatalogService struct {
	Repo  catalogRepo.CatalogRepository
	Cache CatalogCache
}

// ListHomeServices returns the curated catalog, served from cache when warm.
func (s *DefaultCatalogService) ListHomeServices(ctx context.Context) ([]models.Service, error) {
	logger := utils.GetLogger()

	if s.Cache != nil {
		cached, err := s.Cache.Get(ctx, homeServicesCacheKey).Result()
		if err == nil {
			var services []models.Service
			decodeErr := json.Unmarshal([]byte(cached), &services)
			if decodeErr == nil {
				return services, nil
			}
			logger.Warn("catalog cache entry is corrupt, refetching", zap.Error(decodeErr))
		}
	}

	services, err := s.Repo.GetHomeServices(ctx)
	if err != nil {
		return nil, err
	}

	if s.Cache != nil {
		if data, err := json.Marshal(services); err == nil {
			if err := s.Cache.Set(ctx, homeServicesCacheKey, data, homeServicesCacheTTL).Err(); err != nil {
				logger.Warn("failed to cache catalog", zap.Error(err))
			}
		}
	}
	return services, nil
}

// GetHomeService returns a single curated catalog entry.
func (s *DefaultCatalogService) GetHomeService(ctx context.Context, id string) (*models.Service, error) {
	service, err := s.Repo.GetHomeServiceByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if service == nil {
		return nil, fmt.Errorf("service with id %s not found", id)
	}
	return service, nil
}

// ListServices returns the admin-managed listings.
func (s *DefaultCatalogService) ListServices(ctx context.Context) ([]models.Service, error) {
	return s.Repo.GetServices(ctx)
}

// CreateService inserts a new listing.
func (s *DefaultCatalogService) CreateService(ctx context.Context, input models.Service) (*models.Service, error) {
	if input.Name == "" {
		return nil, fmt.Errorf("name is required")
	}
	if _, err := s.Repo.CreateService(ctx, &input); err != nil {
		return nil, err
	}
	return &input, nil
}

// UpdateService applies the listing fields that were supplied.
func (s *DefaultCatalogService) UpdateService(ctx context.Context, id string, upd models.ServiceUpdate) error {
	updateFields := bson.M{}
	if upd.Name != "" {
		updateFields["name"] = upd.Name
	}
	if upd.Description != "" {
		updateFields["description"] = upd.Description
	}
	if upd.Category != "" {
		updateFields["category"] = upd.Category
	}
	if upd.Price != nil {
		updateFields["price"] = *upd.Price
	}
	if upd.Image != "" {
		updateFields["image"] = upd.Image
	}
	if len(updateFields) == 0 {
		return fmt.Errorf("no updatable fields provided")
	}
	return s.Repo.UpdateService(ctx, id, updateFields)
}

// DeleteService removes a listing.
func (s *DefaultCatalogService) DeleteService(ctx context.Context, id string) error {
	return s.Repo.DeleteService(ctx, id)
}
