package payment

import (
	"context"

	"decorly/models"
)

// PaymentService drives the checkout-and-reconciliation flow.
type PaymentService interface {
	CreateCheckoutSession(ctx context.Context, req models.CheckoutRequest) (string, error)
	ConfirmPayment(ctx context.Context, sessionID string) (*models.PaymentConfirmation, error)
	ListPayments(ctx context.Context, email string) ([]models.Payment, error)
}
