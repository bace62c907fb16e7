package catalog

import (
	"context"

	"decorly/models"
)

// CatalogService serves the public catalog and the admin listing CRUD.
type CatalogService interface {
	ListHomeServices(ctx context.Context) ([]models.Service, error)
	GetHomeService(ctx context.Context, id string) (*models.Service, error)

	ListServices(ctx context.Context) ([]models.Service, error)
	CreateService(ctx context.Context, input models.Service) (*models.Service, error)
	UpdateService(ctx context.Context, id string, upd models.ServiceUpdate) error
	DeleteService(ctx context.Context, id string) error
}
