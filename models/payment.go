package models

import "time"

// Payment is a ledger entry recorded exactly once per external transaction.
// TransactionID is the Stripe payment-intent reference and acts as the
// idempotency key; a row is never updated after insertion.
type Payment struct {
	TransactionID string    `bson:"transactionId" json:"transactionId"`
	Price         float64   `bson:"price" json:"price"`
	Currency      string    `bson:"currency" json:"currency"`
	CustomerEmail string    `bson:"customerEmail" json:"customerEmail"`
	BookingID     string    `bson:"bookingId" json:"bookingId"`
	ServiceName   string    `bson:"serviceName" json:"serviceName"`
	PaymentStatus string    `bson:"paymentStatus" json:"paymentStatus"`
	TrackingID    string    `bson:"trackingId" json:"trackingId"`
	PaidAt        time.Time `bson:"paidAt" json:"paidAt"`
}
