package models

import "time"

// Review is a customer rating for a service listing.
type Review struct {
	ID        string    `bson:"id" json:"id"`
	ServiceID string    `bson:"serviceId" json:"serviceId"`
	UserEmail string    `bson:"userEmail" json:"userEmail"`
	UserName  string    `bson:"userName,omitempty" json:"userName,omitempty"`
	Rating    int       `bson:"rating" json:"rating"`
	Comment   string    `bson:"comment" json:"comment"`
	CreatedAt time.Time `bson:"createdAt" json:"createdAt"`
}
