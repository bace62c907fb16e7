package models

import "time"

// CheckoutRequest is the inbound payload for starting a hosted checkout.
// Cost arrives as a string (the dashboard submits it verbatim) and is parsed
// into minor units by the payment service.
type CheckoutRequest struct {
	BookingID    string `json:"bookingId" binding:"required"`
	BookingEmail string `json:"bookingEmail" binding:"required"`
	BookingName  string `json:"bookingName" binding:"required"`
	Cost         string `json:"cost" binding:"required"`
}

// CheckoutResponse carries the provider-hosted payment page URL.
type CheckoutResponse struct {
	URL string `json:"url"`
}

// PaymentConfirmation is the outcome of reconciling a completed checkout
// session, served from the payment ledger row.
type PaymentConfirmation struct {
	Success       bool      `json:"success"`
	TransactionID string    `json:"transactionId"`
	TrackingID    string    `json:"trackingId"`
	Price         float64   `json:"price"`
	Date          time.Time `json:"date"`
	Services      string    `json:"services"`
}
