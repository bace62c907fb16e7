package models

import "time"

// Booking statuses. "Paid" keeps its historical capitalization because the
// dashboard filters on the literal value.
const (
	BookingStatusPending = "pending"
	BookingStatusPaid    = "Paid"
)

// Booking is a customer's request for a decoration service, tracked through a
// status lifecycle ending in "Paid". Cost is kept as the submitted string; the
// checkout flow parses it when building the charge.
type Booking struct {
	ID                string     `bson:"id" json:"id"`
	Email             string     `bson:"email" json:"email"`
	ServiceID         string     `bson:"serviceId,omitempty" json:"serviceId,omitempty"`
	ServiceName       string     `bson:"serviceName,omitempty" json:"serviceName,omitempty"`
	Cost              string     `bson:"cost" json:"cost"`
	Status            string     `bson:"status" json:"status"`
	TrackingID        string     `bson:"trackingId,omitempty" json:"trackingId,omitempty"`
	AssignedDecorator string     `bson:"assignedDecorator,omitempty" json:"assignedDecorator,omitempty"`
	BookingDate       string     `bson:"bookingDate,omitempty" json:"bookingDate,omitempty"`
	Location          string     `bson:"location,omitempty" json:"location,omitempty"`
	PaidAt            *time.Time `bson:"paidAt,omitempty" json:"paidAt,omitempty"`
	CreatedAt         time.Time  `bson:"createdAt" json:"createdAt"`
	UpdatedAt         time.Time  `bson:"updatedAt,omitempty" json:"updatedAt,omitempty"`
}

// BookingUpdate carries the customer-editable fields of a booking patch.
type BookingUpdate struct {
	BookingDate       string `json:"bookingDate,omitempty"`
	Location          string `json:"location,omitempty"`
	AssignedDecorator string `json:"assignedDecorator,omitempty"`
}

// AdminBookingUpdate carries the admin-editable fields of a booking patch.
type AdminBookingUpdate struct {
	Status            string `json:"status,omitempty"`
	AssignedDecorator string `json:"assignedDecorator,omitempty"`
}

// AdminBooking is a booking enriched with the names behind the customer and
// assigned decorator emails, for the admin dashboard listing.
type AdminBooking struct {
	Booking       `bson:",inline"`
	UserName      string `json:"userName"`
	UserEmail     string `json:"userEmail"`
	DecoratorName string `json:"decoratorName"`
}
