package userRepo

import (
	"context"
	"fmt"
	"time"

	"decorly/models"

	"github.com/google/uuid"
	"go.mongodb.org/mongo-driver/bson"
)

// Create inserts a new user document.
func (r *mongoUserRepo) Create(ctx context.Context, user *models.User) error {
	ctx, cancel := newContext(ctx, 5*time.Second)
	defer cancel()

	if user.ID == "" {
		user.ID = uuid.New().String()
	}
	now := time.Now()
	user.CreatedAt = now
	user.UpdatedAt = now

	if _, err := r.coll.InsertOne(ctx, user); err != nil {
		return fmt.Errorf("failed to create user: %w", err)
	}
	return nil
}

// UpdateRole changes a user's role.
func (r *mongoUserRepo) UpdateRole(ctx context.Context, id, role string) error {
	ctx, cancel := newContext(ctx, 5*time.Second)
	defer cancel()

	update := bson.M{"$set": bson.M{"role": role, "updatedAt": time.Now()}}
	result, err := r.coll.UpdateOne(ctx, bson.M{"id": id}, update)
	if err != nil {
		return fmt.Errorf("failed to update role for user %s: %w", id, err)
	}
	if result.MatchedCount == 0 {
		return fmt.Errorf("user with id %s not found", id)
	}
	return nil
}

// UpdateDecoratorStatus changes the account status of a decorator. The role
// guard keeps the endpoint from touching ordinary users.
func (r *mongoUserRepo) UpdateDecoratorStatus(ctx context.Context, id, status string) error {
	ctx, cancel := newContext(ctx, 5*time.Second)
	defer cancel()

	filter := bson.M{"id": id, "role": models.RoleDecorator}
	update := bson.M{"$set": bson.M{"status": status, "updatedAt": time.Now()}}

	result, err := r.coll.UpdateOne(ctx, filter, update)
	if err != nil {
		return fmt.Errorf("failed to update decorator %s: %w", id, err)
	}
	if result.MatchedCount == 0 {
		return fmt.Errorf("decorator with id %s not found", id)
	}
	return nil
}

// DeleteDecorator removes a decorator account.
func (r *mongoUserRepo) DeleteDecorator(ctx context.Context, id string) error {
	ctx, cancel := newContext(ctx, 5*time.Second)
	defer cancel()

	result, err := r.coll.DeleteOne(ctx, bson.M{"id": id, "role": models.RoleDecorator})
	if err != nil {
		return fmt.Errorf("failed to delete decorator %s: %w", id, err)
	}
	if result.DeletedCount == 0 {
		return fmt.Errorf("decorator with id %s not found", id)
	}
	return nil
}
