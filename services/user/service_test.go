package user

import (
	"context"
	"fmt"
	"testing"

	"decorly/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeUserRepo struct {
	users map[string]*models.User // keyed by email
}

func newFakeUserRepo() *fakeUserRepo {
	return &fakeUserRepo{users: map[string]*models.User{}}
}

func (r *fakeUserRepo) Create(_ context.Context, user *models.User) error {
	if _, exists := r.users[user.Email]; exists {
		return fmt.Errorf("duplicate email: %s", user.Email)
	}
	if user.ID == "" {
		user.ID = fmt.Sprintf("u_%d", len(r.users)+1)
	}
	copyItem := *user
	r.users[user.Email] = &copyItem
	return nil
}

func (r *fakeUserRepo) GetByEmail(_ context.Context, email string) (*models.User, error) {
	u, ok := r.users[email]
	if !ok {
		return nil, nil
	}
	copyItem := *u
	return &copyItem, nil
}

func (r *fakeUserRepo) GetAll(_ context.Context) ([]models.User, error) {
	out := make([]models.User, 0, len(r.users))
	for _, u := range r.users {
		out = append(out, *u)
	}
	return out, nil
}

func (r *fakeUserRepo) UpdateRole(_ context.Context, id, role string) error {
	for _, u := range r.users {
		if u.ID == id {
			u.Role = role
			return nil
		}
	}
	return fmt.Errorf("user with id %s not found", id)
}

func (r *fakeUserRepo) GetDecorators(_ context.Context) ([]models.User, error) {
	var out []models.User
	for _, u := range r.users {
		if u.Role == models.RoleDecorator {
			out = append(out, *u)
		}
	}
	return out, nil
}

func (r *fakeUserRepo) UpdateDecoratorStatus(_ context.Context, id, status string) error {
	for _, u := range r.users {
		if u.ID == id && u.Role == models.RoleDecorator {
			u.Status = status
			return nil
		}
	}
	return fmt.Errorf("decorator with id %s not found", id)
}

func (r *fakeUserRepo) DeleteDecorator(_ context.Context, id string) error {
	for email, u := range r.users {
		if u.ID == id && u.Role == models.RoleDecorator {
			delete(r.users, email)
			return nil
		}
	}
	return fmt.Errorf("decorator with id %s not found", id)
}

func TestRegisterUser(t *testing.T) {
	repo := newFakeUserRepo()
	svc := &DefaultUserService{Repo: repo}

	created, isNew, err := svc.RegisterUser(context.Background(), models.User{
		Name:  "Alice",
		Email: "alice@x.com",
	})
	require.NoError(t, err)
	assert.True(t, isNew)
	assert.Equal(t, models.RoleUser, created.Role)
	assert.NotEmpty(t, created.ID)
}

func TestRegisterUserExistingEmailIsIdempotent(t *testing.T) {
	repo := newFakeUserRepo()
	svc := &DefaultUserService{Repo: repo}

	first, _, err := svc.RegisterUser(context.Background(), models.User{Name: "Alice", Email: "alice@x.com"})
	require.NoError(t, err)

	again, isNew, err := svc.RegisterUser(context.Background(), models.User{Name: "Someone Else", Email: "alice@x.com"})
	require.NoError(t, err)
	assert.False(t, isNew)
	assert.Equal(t, first.ID, again.ID)
	assert.Equal(t, "Alice", again.Name)
	assert.Len(t, repo.users, 1)
}

func TestGetRoleDefaultsToUser(t *testing.T) {
	svc := &DefaultUserService{Repo: newFakeUserRepo()}

	role, err := svc.GetRole(context.Background(), "nobody@x.com")
	require.NoError(t, err)
	assert.Equal(t, models.RoleUser, role)
}

func TestSetRoleValidatesRole(t *testing.T) {
	repo := newFakeUserRepo()
	svc := &DefaultUserService{Repo: repo}

	_, _, err := svc.RegisterUser(context.Background(), models.User{Name: "Alice", Email: "alice@x.com"})
	require.NoError(t, err)
	id := repo.users["alice@x.com"].ID

	require.NoError(t, svc.SetRole(context.Background(), id, models.RoleAdmin))
	role, err := svc.GetRole(context.Background(), "alice@x.com")
	require.NoError(t, err)
	assert.Equal(t, models.RoleAdmin, role)

	assert.Error(t, svc.SetRole(context.Background(), id, "superuser"))
}

func TestCreateDecorator(t *testing.T) {
	repo := newFakeUserRepo()
	svc := &DefaultUserService{Repo: repo}

	decorator, err := svc.CreateDecorator(context.Background(), "Bob", "bob@x.com")
	require.NoError(t, err)
	assert.Equal(t, models.RoleDecorator, decorator.Role)
	assert.Equal(t, models.DecoratorActive, decorator.Status)

	_, err = svc.CreateDecorator(context.Background(), "Impostor", "bob@x.com")
	assert.ErrorIs(t, err, ErrEmailTaken)
}

func TestSetDecoratorStatusValidatesStatus(t *testing.T) {
	repo := newFakeUserRepo()
	svc := &DefaultUserService{Repo: repo}

	decorator, err := svc.CreateDecorator(context.Background(), "Bob", "bob@x.com")
	require.NoError(t, err)

	require.NoError(t, svc.SetDecoratorStatus(context.Background(), decorator.ID, models.DecoratorInactive))
	assert.Equal(t, models.DecoratorInactive, repo.users["bob@x.com"].Status)

	assert.Error(t, svc.SetDecoratorStatus(context.Background(), decorator.ID, "paused"))
}
