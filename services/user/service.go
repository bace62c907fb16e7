package user

import (
	"context"
	"fmt"

	userRepo "decorly/database/repository/user"
	"decorly/models"
)

// ErrEmailTaken is returned when an account already exists for an email.
var ErrEmailTaken = fmt.Errorf("user already exists")

// DefaultUserService implements UserService over the user repository.
type DefaultUserService struct {
	Repo userRepo.UserRepository
}

// RegisterUser creates an account for the email unless one already exists.
// The boolean reports whether a new account was created.
func (s *DefaultUserService) RegisterUser(ctx context.Context, input models.User) (*models.User, bool, error) {
	if input.Email == "" {
		return nil, false, fmt.Errorf("email is required")
	}

	existing, err := s.Repo.GetByEmail(ctx, input.Email)
	if err != nil {
		return nil, false, err
	}
	if existing != nil {
		return existing, false, nil
	}

	user := models.User{
		Name:     input.Name,
		Email:    input.Email,
		PhotoURL: input.PhotoURL,
		Role:     models.RoleUser,
	}
	if err := s.Repo.Create(ctx, &user); err != nil {
		return nil, false, err
	}
	return &user, true, nil
}

// ListUsers returns every account.
func (s *DefaultUserService) ListUsers(ctx context.Context) ([]models.User, error) {
	return s.Repo.GetAll(ctx)
}

// GetRole returns the role for an email, defaulting to "user" for unknown
// accounts so the dashboard never sees an empty role.
func (s *DefaultUserService) GetRole(ctx context.Context, email string) (string, error) {
	user, err := s.Repo.GetByEmail(ctx, email)
	if err != nil {
		return "", err
	}
	if user == nil || user.Role == "" {
		return models.RoleUser, nil
	}
	return user.Role, nil
}

// SetRole switches an account between the user and admin roles.
func (s *DefaultUserService) SetRole(ctx context.Context, id, role string) error {
	if role != models.RoleUser && role != models.RoleAdmin {
		return fmt.Errorf("unsupported role: %s", role)
	}
	return s.Repo.UpdateRole(ctx, id, role)
}

// ListDecorators returns every decorator account.
func (s *DefaultUserService) ListDecorators(ctx context.Context) ([]models.User, error) {
	return s.Repo.GetDecorators(ctx)
}

// CreateDecorator registers a vendor account. The email must be unused.
func (s *DefaultUserService) CreateDecorator(ctx context.Context, name, email string) (*models.User, error) {
	if name == "" || email == "" {
		return nil, fmt.Errorf("name and email are required")
	}

	existing, err := s.Repo.GetByEmail(ctx, email)
	if err != nil {
		return nil, err
	}
	if existing != nil {
		return nil, ErrEmailTaken
	}

	decorator := models.User{
		Name:   name,
		Email:  email,
		Role:   models.RoleDecorator,
		Status: models.DecoratorActive,
	}
	if err := s.Repo.Create(ctx, &decorator); err != nil {
		return nil, err
	}
	return &decorator, nil
}

// SetDecoratorStatus activates or deactivates a decorator account.
func (s *DefaultUserService) SetDecoratorStatus(ctx context.Context, id, status string) error {
	if status != models.DecoratorActive && status != models.DecoratorInactive {
		return fmt.Errorf("unsupported status: %s", status)
	}
	return s.Repo.UpdateDecoratorStatus(ctx, id, status)
}

// DeleteDecorator removes a decorator account.
func (s *DefaultUserService) DeleteDecorator(ctx context.Context, id string) error {
	return s.Repo.DeleteDecorator(ctx, id)
}
