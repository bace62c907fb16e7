package payment

import (
	"context"

	"github.com/stripe/stripe-go/v76"
	checkoutsession "github.com/stripe/stripe-go/v76/checkout/session"
)

// PaymentStatusPaid is Stripe's terminal status for a settled session.
const PaymentStatusPaid = string(stripe.CheckoutSessionPaymentStatusPaid)

// StripeGateway implements CheckoutGateway against the Stripe checkout API.
// The API key is assigned globally at startup (stripe.Key).
type StripeGateway struct {
	Currency string
}

// NewStripeGateway returns a gateway charging in the given currency.
func NewStripeGateway(currency string) *StripeGateway {
	if currency == "" {
		currency = "usd"
	}
	return &StripeGateway{Currency: currency}
}

// CreateSession creates a hosted checkout session for a single line item.
func (g *StripeGateway) CreateSession(ctx context.Context, in CreateSessionInput) (*CheckoutSession, error) {
	params := &stripe.CheckoutSessionParams{
		Mode:               stripe.String(string(stripe.CheckoutSessionModePayment)),
		PaymentMethodTypes: stripe.StringSlice([]string{"card"}),
		CustomerEmail:      stripe.String(in.CustomerEmail),
		LineItems: []*stripe.CheckoutSessionLineItemParams{
			{
				PriceData: &stripe.CheckoutSessionLineItemPriceDataParams{
					Currency:   stripe.String(g.Currency),
					UnitAmount: stripe.Int64(in.UnitAmount),
					ProductData: &stripe.CheckoutSessionLineItemPriceDataProductDataParams{
						Name: stripe.String(in.BookingName),
					},
				},
				Quantity: stripe.Int64(1),
			},
		},
		SuccessURL: stripe.String(in.SuccessURL),
		CancelURL:  stripe.String(in.CancelURL),
	}
	params.Context = ctx
	params.AddMetadata("bookingId", in.BookingID)
	params.AddMetadata("bookingName", in.BookingName)

	sess, err := checkoutsession.New(params)
	if err != nil {
		return nil, err
	}
	return fromStripeSession(sess), nil
}

// RetrieveSession fetches a checkout session by its ID.
func (g *StripeGateway) RetrieveSession(ctx context.Context, sessionID string) (*CheckoutSession, error) {
	params := &stripe.CheckoutSessionParams{}
	params.Context = ctx

	sess, err := checkoutsession.Get(sessionID, params)
	if err != nil {
		return nil, err
	}
	return fromStripeSession(sess), nil
}

func fromStripeSession(sess *stripe.CheckoutSession) *CheckoutSession {
	out := &CheckoutSession{
		ID:            sess.ID,
		URL:           sess.URL,
		PaymentStatus: string(sess.PaymentStatus),
		AmountTotal:   sess.AmountTotal,
		Currency:      string(sess.Currency),
		CustomerEmail: sess.CustomerEmail,
		Metadata:      sess.Metadata,
	}
	if sess.PaymentIntent != nil {
		out.TransactionID = sess.PaymentIntent.ID
	}
	return out
}
