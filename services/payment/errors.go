package payment

import "fmt"

// Error codes surfaced to the HTTP layer.
const (
	CodeBadRequest          = "badRequest"
	CodePaymentNotCompleted = "paymentNotCompleted"
	CodeProviderError       = "paymentProviderError"
	CodeProcessingFailed    = "processingFailed"
)

// PaymentError carries a stable code alongside the message so handlers can
// map failures to HTTP statuses without string matching.
type PaymentError struct {
	Code    string
	Message string
	Err     error
}

func (e *PaymentError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("%s: %s: %v", e.Code, e.Message, e.Err)
	}
	return fmt.Sprintf("%s: %s", e.Code, e.Message)
}

func (e *PaymentError) Unwrap() error {
	return e.Err
}

func newBadRequest(msg string) error {
	return &PaymentError{Code: CodeBadRequest, Message: msg}
}

func newNotCompleted(msg string) error {
	return &PaymentError{Code: CodePaymentNotCompleted, Message: msg}
}

func newProviderError(msg string, err error) error {
	return &PaymentError{Code: CodeProviderError, Message: msg, Err: err}
}

func newProcessingFailed(msg string, err error) error {
	return &PaymentError{Code: CodeProcessingFailed, Message: msg, Err: err}
}

// ErrorCode extracts the payment error code, defaulting to processingFailed
// for anything untyped.
func ErrorCode(err error) string {
	if pe, ok := err.(*PaymentError); ok {
		return pe.Code
	}
	return CodeProcessingFailed
}
