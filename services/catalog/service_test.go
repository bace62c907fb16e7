package catalog

import (
	"context"
	"fmt"
	"testing"
	"time"

	"decorly/models"

	"github.com/go-redis/redis/v8"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.mongodb.org/mongo-driver/bson"
)

type fakeCatalogRepo struct {
	home     []models.Service
	services map[string]*models.Service
	updates  map[string]bson.M

	homeCalls int
}

func newFakeCatalogRepo() *fakeCatalogRepo {
	return &fakeCatalogRepo{
		services: map[string]*models.Service{},
		updates:  map[string]bson.M{},
	}
}

func (r *fakeCatalogRepo) GetHomeServices(_ context.Context) ([]models.Service, error) {
	r.homeCalls++
	return r.home, nil
}

func (r *fakeCatalogRepo) GetHomeServiceByID(_ context.Context, id string) (*models.Service, error) {
	for i := range r.home {
		if r.home[i].ID == id {
			copyItem := r.home[i]
			return &copyItem, nil
		}
	}
	return nil, nil
}

func (r *fakeCatalogRepo) GetServices(_ context.Context) ([]models.Service, error) {
	out := make([]models.Service, 0, len(r.services))
	for _, s := range r.services {
		out = append(out, *s)
	}
	return out, nil
}

func (r *fakeCatalogRepo) CreateService(_ context.Context, service *models.Service) (string, error) {
	if service.ID == "" {
		service.ID = fmt.Sprintf("svc_%d", len(r.services)+1)
	}
	copyItem := *service
	r.services[service.ID] = &copyItem
	return service.ID, nil
}

func (r *fakeCatalogRepo) UpdateService(_ context.Context, id string, updateDoc bson.M) error {
	if _, ok := r.services[id]; !ok {
		return fmt.Errorf("service with id %s not found", id)
	}
	r.updates[id] = updateDoc
	return nil
}

func (r *fakeCatalogRepo) DeleteService(_ context.Context, id string) error {
	delete(r.services, id)
	return nil
}

type fakeCache struct {
	store map[string]string
}

func newFakeCache() *fakeCache {
	return &fakeCache{store: map[string]string{}}
}

func (c *fakeCache) Get(_ context.Context, key string) *redis.StringCmd {
	if val, ok := c.store[key]; ok {
		return redis.NewStringResult(val, nil)
	}
	return redis.NewStringResult("", redis.Nil)
}

func (c *fakeCache) Set(_ context.Context, key string, value interface{}, _ time.Duration) *redis.StatusCmd {
	switch v := value.(type) {
	case []byte:
		c.store[key] = string(v)
	case string:
		c.store[key] = v
	}
	return redis.NewStatusResult("OK", nil)
}

func TestListHomeServicesWithoutCache(t *testing.T) {
	repo := newFakeCatalogRepo()
	repo.home = []models.Service{{ID: "hs_1", Name: "Balloon Arch"}}
	svc := &DefaultCatalogService{Repo: repo}

	services, err := svc.ListHomeServices(context.Background())
	require.NoError(t, err)
	require.Len(t, services, 1)
	assert.Equal(t, "Balloon Arch", services[0].Name)

	// With no cache configured every call hits the repository.
	_, err = svc.ListHomeServices(context.Background())
	require.NoError(t, err)
	assert.Equal(t, 2, repo.homeCalls)
}

func TestListHomeServicesServedFromWarmCache(t *testing.T) {
	repo := newFakeCatalogRepo()
	repo.home = []models.Service{{ID: "hs_1", Name: "Balloon Arch"}}
	svc := &DefaultCatalogService{Repo: repo, Cache: newFakeCache()}

	first, err := svc.ListHomeServices(context.Background())
	require.NoError(t, err)
	require.Len(t, first, 1)
	require.Equal(t, 1, repo.homeCalls)

	second, err := svc.ListHomeServices(context.Background())
	require.NoError(t, err)
	assert.Equal(t, first, second)
	assert.Equal(t, 1, repo.homeCalls, "warm cache must not hit the repository")
}

func TestListHomeServicesCorruptCacheEntryRefetches(t *testing.T) {
	repo := newFakeCatalogRepo()
	repo.home = []models.Service{{ID: "hs_1", Name: "Balloon Arch"}}
	cache := newFakeCache()
	cache.store["catalog:homeservices"] = "{not json"
	svc := &DefaultCatalogService{Repo: repo, Cache: cache}

	services, err := svc.ListHomeServices(context.Background())
	require.NoError(t, err)
	require.Len(t, services, 1)
	assert.Equal(t, 1, repo.homeCalls)
}

func TestGetHomeServiceNotFound(t *testing.T) {
	svc := &DefaultCatalogService{Repo: newFakeCatalogRepo()}

	_, err := svc.GetHomeService(context.Background(), "missing")
	assert.Error(t, err)
}

func TestCreateServiceRequiresName(t *testing.T) {
	svc := &DefaultCatalogService{Repo: newFakeCatalogRepo()}

	_, err := svc.CreateService(context.Background(), models.Service{Price: 100})
	assert.Error(t, err)
}

func TestUpdateServiceBuildsPartialDocument(t *testing.T) {
	repo := newFakeCatalogRepo()
	svc := &DefaultCatalogService{Repo: repo}

	created, err := svc.CreateService(context.Background(), models.Service{Name: "Balloon Arch", Price: 100})
	require.NoError(t, err)

	price := 120.0
	err = svc.UpdateService(context.Background(), created.ID, models.ServiceUpdate{Price: &price})
	require.NoError(t, err)
	assert.Equal(t, bson.M{"price": 120.0}, repo.updates[created.ID])

	err = svc.UpdateService(context.Background(), created.ID, models.ServiceUpdate{})
	assert.Error(t, err)
}
