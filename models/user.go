package models

import "time"

// User roles. The role field is supplied by trusted admin endpoints; there is
// no authentication layer in front of it.
const (
	RoleUser      = "user"
	RoleAdmin     = "admin"
	RoleDecorator = "decorator"
)

// Decorator account statuses.
const (
	DecoratorActive   = "active"
	DecoratorInactive = "inactive"
)

// User represents a marketplace account. Decorators are users carrying the
// "decorator" role plus an account status.
type User struct {
	ID        string    `bson:"id" json:"id"`
	Name      string    `bson:"name" json:"name"`
	Email     string    `bson:"email" json:"email"`
	PhotoURL  string    `bson:"photoURL,omitempty" json:"photoURL,omitempty"`
	Role      string    `bson:"role" json:"role"`
	Status    string    `bson:"status,omitempty" json:"status,omitempty"`
	CreatedAt time.Time `bson:"createdAt" json:"createdAt"`
	UpdatedAt time.Time `bson:"updatedAt,omitempty" json:"updatedAt,omitempty"`
}
