package payment

import (
	"context"
	"strconv"
	"strings"
	"time"

	bookingRepo "decorly/database/repository/booking"
	paymentRepo "decorly/database/repository/payment"
	"decorly/models"

	"go.uber.org/zap"
)

// DefaultPaymentService implements PaymentService over a checkout gateway
// and the booking/payment repositories.
type DefaultPaymentService struct {
	Gateway    CheckoutGateway
	Bookings   bookingRepo.BookingRepository
	Payments   paymentRepo.PaymentRepository
	SiteDomain string
	Logger     *zap.Logger
}

// NewDefaultPaymentService wires up the payment flow.
func NewDefaultPaymentService(gateway CheckoutGateway, bookings bookingRepo.BookingRepository, payments paymentRepo.PaymentRepository, siteDomain string, logger *zap.Logger) *DefaultPaymentService {
	return &DefaultPaymentService{
		Gateway:    gateway,
		Bookings:   bookings,
		Payments:   payments,
		SiteDomain: strings.TrimRight(siteDomain, "/"),
		Logger:     logger,
	}
}

// CreateCheckoutSession builds a single line-item purchase for a booking and
// returns the provider-hosted redirect URL. The {CHECKOUT_SESSION_ID}
// placeholder in the success URL is substituted by the provider.
func (s *DefaultPaymentService) CreateCheckoutSession(ctx context.Context, req models.CheckoutRequest) (string, error) {
	cost, err := strconv.Atoi(strings.TrimSpace(req.Cost))
	if err != nil || cost <= 0 {
		return "", newBadRequest("cost must be a positive whole amount")
	}

	in := CreateSessionInput{
		BookingID:     req.BookingID,
		BookingName:   req.BookingName,
		CustomerEmail: req.BookingEmail,
		UnitAmount:    int64(cost) * 100,
		SuccessURL:    s.SiteDomain + "/dashboard/payment-success?session_id={CHECKOUT_SESSION_ID}",
		CancelURL:     s.SiteDomain + "/dashboard/payment-cancel",
	}

	sess, err := s.Gateway.CreateSession(ctx, in)
	if err != nil {
		s.Logger.Error("checkout session creation failed",
			zap.String("bookingId", req.BookingID), zap.Error(err))
		return "", newProviderError("checkout session creation failed", err)
	}

	s.Logger.Info("checkout session created",
		zap.String("bookingId", req.BookingID),
		zap.String("sessionId", sess.ID),
		zap.Int64("unitAmount", in.UnitAmount))
	return sess.URL, nil
}

// ConfirmPayment reconciles a checkout session after the customer returns
// from the provider. The ledger row is upserted first ($setOnInsert keyed by
// transaction id) and re-read, and the booking is stamped with the canonical
// row's tracking code, so replayed or racing confirmations converge on one
// ledger row and one tracking code.
//
// The two mutations are not transactional. A crash after the ledger upsert
// leaves the booking pending until a retry, which repeats the upsert as a
// no-op and completes the booking update with identical values.
func (s *DefaultPaymentService) ConfirmPayment(ctx context.Context, sessionID string) (*models.PaymentConfirmation, error) {
	if strings.TrimSpace(sessionID) == "" {
		return nil, newBadRequest("session_id is required")
	}

	sess, err := s.Gateway.RetrieveSession(ctx, sessionID)
	if err != nil {
		s.Logger.Error("session lookup failed", zap.String("sessionId", sessionID), zap.Error(err))
		return nil, newProviderError("session lookup failed", err)
	}
	if sess.PaymentStatus != PaymentStatusPaid {
		return nil, newNotCompleted("payment not completed")
	}
	if sess.TransactionID == "" {
		return nil, newProcessingFailed("session has no payment intent", nil)
	}

	record := &models.Payment{
		TransactionID: sess.TransactionID,
		Price:         float64(sess.AmountTotal) / 100,
		Currency:      sess.Currency,
		CustomerEmail: sess.CustomerEmail,
		BookingID:     sess.Metadata["bookingId"],
		ServiceName:   sess.Metadata["bookingName"],
		PaymentStatus: sess.PaymentStatus,
		TrackingID:    NewTrackingID(),
		PaidAt:        time.Now(),
	}
	if err := s.Payments.RecordOnce(ctx, record); err != nil {
		s.Logger.Error("payment record failed", zap.String("transactionId", sess.TransactionID), zap.Error(err))
		return nil, newProcessingFailed("payment processing failed", err)
	}

	canonical, err := s.Payments.GetByTransactionID(ctx, sess.TransactionID)
	if err != nil || canonical == nil {
		s.Logger.Error("payment read-back failed", zap.String("transactionId", sess.TransactionID), zap.Error(err))
		return nil, newProcessingFailed("payment processing failed", err)
	}

	if err := s.Bookings.MarkPaid(ctx, canonical.BookingID, canonical.TrackingID, canonical.PaidAt); err != nil {
		s.Logger.Error("booking update failed",
			zap.String("bookingId", canonical.BookingID),
			zap.String("transactionId", canonical.TransactionID),
			zap.Error(err))
		return nil, newProcessingFailed("payment processing failed", err)
	}

	s.Logger.Info("payment reconciled",
		zap.String("bookingId", canonical.BookingID),
		zap.String("transactionId", canonical.TransactionID),
		zap.String("trackingId", canonical.TrackingID))

	return &models.PaymentConfirmation{
		Success:       true,
		TransactionID: canonical.TransactionID,
		TrackingID:    canonical.TrackingID,
		Price:         canonical.Price,
		Date:          canonical.PaidAt,
		Services:      canonical.ServiceName,
	}, nil
}

// ListPayments returns ledger rows, optionally filtered by customer email.
func (s *DefaultPaymentService) ListPayments(ctx context.Context, email string) ([]models.Payment, error) {
	return s.Payments.GetByEmail(ctx, email)
}
