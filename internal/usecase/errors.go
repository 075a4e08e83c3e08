package usecase

import (
	"errors"
	"fmt"
	"strings"
)

var (
	ErrGatewayRequestFailed       = errors.New("payment gateway request failed")
	ErrPaymentGatewayBadRequest   = errors.New("payment gateway bad request")
	ErrPaymentGatewayUnauthorized = errors.New("payment gateway unauthorized")
	ErrPaymentGatewayNotFound     = errors.New("payment gateway resource not found")

	ErrNotImplemented      = errors.New("method not implemented")
	ErrMissingPaymentID    = errors.New("missing gateway payment id")
	ErrMissingPreferenceID = errors.New("missing gateway preference id")
	ErrUnknownCurrency     = errors.New("unknown currency code")

	ErrRegionNotFound            = errors.New("region not found")
	ErrCartNotFound              = errors.New("cart not found")
	ErrInvalidCartID             = errors.New("invalid cart_id")
	ErrPaymentSessionNotSet      = errors.New("cart has no payment session")
	ErrUnknownPaymentProvider    = errors.New("unknown payment provider")
	ErrCartNotAuthorized         = errors.New("cart payment is not authorized")
	ErrCartAlreadyCompleted      = errors.New("cart already completed")
	ErrOrderNotFound             = errors.New("order not found")
	ErrOrderWithoutPayment       = errors.New("order has no payment")
	ErrInvalidRefundAmount       = errors.New("invalid refund amount")
	ErrInvalidCheckoutTransition = errors.New("invalid checkout state transition")

	ErrPaymentDetailUnavailable = errors.New("payment detail unavailable")
)

// gatewayError wraps an SDK error so callers can match both the generic
// ErrGatewayRequestFailed and, when recognisable, the specific failure.
func gatewayError(err error) error {
	if err == nil {
		return nil
	}
	if kind := classifyGatewayError(err); kind != nil {
		return fmt.Errorf("%w: %w: %w", ErrGatewayRequestFailed, kind, err)
	}
	return fmt.Errorf("%w: %w", ErrGatewayRequestFailed, err)
}

func classifyGatewayError(err error) error {
	switch {
	case isGatewayUnauthorized(err):
		return ErrPaymentGatewayUnauthorized
	case isGatewayNotFound(err):
		return ErrPaymentGatewayNotFound
	case isGatewayBadRequest(err):
		return ErrPaymentGatewayBadRequest
	default:
		return nil
	}
}

func isGatewayBadRequest(err error) bool {
	if err == nil {
		return false
	}
	msg := strings.ToLower(err.Error())
	return strings.Contains(msg, "\"error\":\"bad_request\"") || strings.Contains(msg, "\"status\":400")
}

func isGatewayUnauthorized(err error) bool {
	if err == nil {
		return false
	}
	msg := strings.ToLower(err.Error())
	return strings.Contains(msg, "\"error\":\"unauthorized\"") || strings.Contains(msg, "\"status\":401")
}

func isGatewayNotFound(err error) bool {
	if err == nil {
		return false
	}
	msg := strings.ToLower(err.Error())
	return strings.Contains(msg, "\"error\":\"not_found\"") || strings.Contains(msg, "\"status\":404")
}
