package user

import (
	"context"

	"decorly/models"
)

// UserService manages marketplace accounts and decorator vendors.
type UserService interface {
	RegisterUser(ctx context.Context, input models.User) (*models.User, bool, error)
	ListUsers(ctx context.Context) ([]models.User, error)
	GetRole(ctx context.Context, email string) (string, error)
	SetRole(ctx context.Context, id, role string) error

	ListDecorators(ctx context.Context) ([]models.User, error)
	CreateDecorator(ctx context.Context, name, email string) (*models.User, error)
	SetDecoratorStatus(ctx context.Context, id, status string) error
	DeleteDecorator(ctx context.Context, id string) error
}
