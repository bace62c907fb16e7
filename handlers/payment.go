package handlers

import (
	"net/http"

	"decorly/models"
	"decorly/services/payment"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

// PaymentHandler exposes the checkout-and-reconciliation endpoints.
type PaymentHandler struct {
	PaymentSvc payment.PaymentService
	Logger     *zap.Logger
}

// NewPaymentHandler constructs a PaymentHandler.
func NewPaymentHandler(paymentSvc payment.PaymentService, logger *zap.Logger) *PaymentHandler {
	return &PaymentHandler{PaymentSvc: paymentSvc, Logger: logger}
}

// CreateCheckoutSession handles POST /api/payments/checkout-session.
func (h *PaymentHandler) CreateCheckoutSession(c *gin.Context) {
	var req models.CheckoutRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error":   "invalid request body",
			"message": err.Error(),
		})
		return
	}

	url, err := h.PaymentSvc.CreateCheckoutSession(c.Request.Context(), req)
	if err != nil {
		h.Logger.Error("CreateCheckoutSession failed", zap.String("bookingId", req.BookingID), zap.Error(err))
		c.JSON(paymentErrorStatus(err), gin.H{"message": "checkout session creation failed"})
		return
	}

	c.JSON(http.StatusOK, models.CheckoutResponse{URL: url})
}

// PaymentSuccess handles PATCH /api/payments/success?session_id=...
func (h *PaymentHandler) PaymentSuccess(c *gin.Context) {
	sessionID := c.Query("session_id")

	confirmation, err := h.PaymentSvc.ConfirmPayment(c.Request.Context(), sessionID)
	if err != nil {
		h.Logger.Warn("PaymentSuccess failed", zap.String("sessionId", sessionID), zap.Error(err))
		c.JSON(paymentErrorStatus(err), gin.H{
			"success": false,
			"message": paymentErrorMessage(err),
		})
		return
	}

	c.JSON(http.StatusOK, confirmation)
}

// ListPayments handles GET /api/payments?email=...
func (h *PaymentHandler) ListPayments(c *gin.Context) {
	email := c.Query("email")

	payments, err := h.PaymentSvc.ListPayments(c.Request.Context(), email)
	if err != nil {
		h.Logger.Error("ListPayments failed", zap.String("email", email), zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to fetch payments"})
		return
	}

	c.JSON(http.StatusOK, payments)
}

func paymentErrorStatus(err error) int {
	switch payment.ErrorCode(err) {
	case payment.CodeBadRequest, payment.CodePaymentNotCompleted:
		return http.StatusBadRequest
	case payment.CodeProviderError:
		return http.StatusBadGateway
	default:
		return http.StatusInternalServerError
	}
}

func paymentErrorMessage(err error) string {
	switch payment.ErrorCode(err) {
	case payment.CodeBadRequest:
		return "session ID is required"
	case payment.CodePaymentNotCompleted:
		return "payment not completed"
	case payment.CodeProviderError:
		return "payment provider error"
	default:
		return "payment processing failed"
	}
}
