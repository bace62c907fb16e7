package payment

import "context"

// CheckoutSession is the provider-neutral view of a hosted checkout session.
type CheckoutSession struct {
	ID            string
	URL           string
	PaymentStatus string
	TransactionID string // the provider's payment-intent reference
	AmountTotal   int64  // minor units
	Currency      string
	CustomerEmail string
	Metadata      map[string]string
}

// CreateSessionInput describes a single line-item purchase.
type CreateSessionInput struct {
	BookingID     string
	BookingName   string
	CustomerEmail string
	UnitAmount    int64 // minor units
	SuccessURL    string
	CancelURL     string
}

// CheckoutGateway abstracts the hosted-checkout provider so the payment flow
// can be exercised without network calls.
type CheckoutGateway interface {
	CreateSession(ctx context.Context, in CreateSessionInput) (*CheckoutSession, error)
	RetrieveSession(ctx context.Context, sessionID string) (*CheckoutSession, error)
}
