package smsgateway

import "errors"

const (
	ErrorCodeServerError   = "SERVER_ERROR"   // 5xx from the provider
	ErrorCodeTimeout       = "TIMEOUT"        // context deadline hit
	ErrorCodeInvalidNumber = "INVALID_NUMBER" // provider rejected the recipient
	ErrorCodeNetworkError  = "NETWORK_ERROR"  // connection failure
)

// DeliveryError is any transport or provider failure from Send. Code is one of
// the ErrorCode constants so callers can branch without string-matching the
// message.
type DeliveryError struct {
	Code  string
	Cause error
}

func NewDeliveryError(code string, cause error) *DeliveryError {
	return &DeliveryError{Code: code, Cause: cause}
}

func (e *DeliveryError) Error() string {
	if e.Cause == nil {
		return e.Code
	}
	return e.Code + ": " + e.Cause.Error()
}

func (e *DeliveryError) Unwrap() error {
	return e.Cause
}

// CodeOf returns the delivery error code, or empty when err is not a
// DeliveryError.
func CodeOf(err error) string {
	var de *DeliveryError
	if errors.As(err, &de) {
		return de.Code
	}
	return ""
}
