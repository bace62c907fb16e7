package handlers

import (
	"context"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"decorly/models"
	"decorly/services/payment"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

type fakePaymentService struct {
	checkoutURL  string
	checkoutErr  error
	confirmation *models.PaymentConfirmation
	confirmErr   error
	payments     []models.Payment
	listErr      error

	lastSessionID string
}

func (s *fakePaymentService) CreateCheckoutSession(_ context.Context, req models.CheckoutRequest) (string, error) {
	if s.checkoutErr != nil {
		return "", s.checkoutErr
	}
	return s.checkoutURL, nil
}

func (s *fakePaymentService) ConfirmPayment(_ context.Context, sessionID string) (*models.PaymentConfirmation, error) {
	s.lastSessionID = sessionID
	if s.confirmErr != nil {
		return nil, s.confirmErr
	}
	return s.confirmation, nil
}

func (s *fakePaymentService) ListPayments(_ context.Context, email string) ([]models.Payment, error) {
	if s.listErr != nil {
		return nil, s.listErr
	}
	return s.payments, nil
}

func newPaymentRouter(svc payment.PaymentService) *gin.Engine {
	gin.SetMode(gin.TestMode)
	r := gin.New()
	h := NewPaymentHandler(svc, zap.NewNop())
	r.POST("/api/payments/checkout-session", h.CreateCheckoutSession)
	r.PATCH("/api/payments/success", h.PaymentSuccess)
	r.GET("/api/payments", h.ListPayments)
	return r
}

func TestCreateCheckoutSessionHandler(t *testing.T) {
	svc := &fakePaymentService{checkoutURL: "https://checkout.stripe.com/c/pay/cs_test"}
	r := newPaymentRouter(svc)

	body := `{"bookingId":"B1","bookingEmail":"a@x.com","bookingName":"Wedding Decor","cost":"150"}`
	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, "/api/payments/checkout-session", strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	r.ServeHTTP(w, req)

	require.Equal(t, http.StatusOK, w.Code)
	assert.JSONEq(t, `{"url":"https://checkout.stripe.com/c/pay/cs_test"}`, w.Body.String())
}

func TestCreateCheckoutSessionHandlerRejectsMissingFields(t *testing.T) {
	r := newPaymentRouter(&fakePaymentService{})

	body := `{"bookingId":"B1"}`
	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, "/api/payments/checkout-session", strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.Contains(t, w.Body.String(), "invalid request body")
}

func TestCreateCheckoutSessionHandlerMapsProviderError(t *testing.T) {
	svc := &fakePaymentService{
		checkoutErr: &payment.PaymentError{Code: payment.CodeProviderError, Message: "stripe rejected the session"},
	}
	r := newPaymentRouter(svc)

	body := `{"bookingId":"B1","bookingEmail":"a@x.com","bookingName":"Wedding Decor","cost":"150"}`
	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, "/api/payments/checkout-session", strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusBadGateway, w.Code)
	assert.Contains(t, w.Body.String(), "checkout session creation failed")
}

func TestPaymentSuccessHandler(t *testing.T) {
	svc := &fakePaymentService{
		confirmation: &models.PaymentConfirmation{
			Success:       true,
			TransactionID: "pi_123",
			TrackingID:    "TRK-AB12CD34",
			Price:         150,
			Services:      "Wedding Decor",
		},
	}
	r := newPaymentRouter(svc)

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPatch, "/api/payments/success?session_id=cs_test", nil)
	r.ServeHTTP(w, req)

	require.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, "cs_test", svc.lastSessionID)
	assert.Contains(t, w.Body.String(), `"success":true`)
	assert.Contains(t, w.Body.String(), `"trackingId":"TRK-AB12CD34"`)
}

func TestPaymentSuccessHandlerMissingSessionID(t *testing.T) {
	svc := &fakePaymentService{
		confirmErr: &payment.PaymentError{Code: payment.CodeBadRequest, Message: "session id is required"},
	}
	r := newPaymentRouter(svc)

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPatch, "/api/payments/success", nil)
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.JSONEq(t, `{"success":false,"message":"session ID is required"}`, w.Body.String())
}

func TestPaymentSuccessHandlerUnpaidSession(t *testing.T) {
	svc := &fakePaymentService{
		confirmErr: &payment.PaymentError{Code: payment.CodePaymentNotCompleted, Message: "payment not completed"},
	}
	r := newPaymentRouter(svc)

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPatch, "/api/payments/success?session_id=cs_unpaid", nil)
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.JSONEq(t, `{"success":false,"message":"payment not completed"}`, w.Body.String())
}

func TestListPaymentsHandler(t *testing.T) {
	svc := &fakePaymentService{
		payments: []models.Payment{{TransactionID: "pi_1", CustomerEmail: "a@x.com"}},
	}
	r := newPaymentRouter(svc)

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/api/payments?email=a@x.com", nil)
	r.ServeHTTP(w, req)

	require.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), `"transactionId":"pi_1"`)
}
