package handlers

import (
	"errors"
	"net/http"

	"mercadopago_provider/internal/infrastructure/logger"
	"mercadopago_provider/internal/usecase"
	"mercadopago_provider/internal/usecase/interfaces"
	"mercadopago_provider/pkg"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

var errInvalidRequest = pkg.NewDomainErrorSimple("INVALID_REQUEST", "Invalid request", http.StatusBadRequest)

func mapCheckoutError(err error) *pkg.AppError {
	switch {
	case errors.Is(err, usecase.ErrInvalidCartID), errors.Is(err, usecase.ErrMissingPaymentID),
		errors.Is(err, usecase.ErrMissingPreferenceID), errors.Is(err, usecase.ErrPaymentGatewayBadRequest):
		return errInvalidRequest
	case errors.Is(err, usecase.ErrInvalidRefundAmount):
		return pkg.NewDomainErrorSimple("INVALID_REFUND_AMOUNT", "Refund amount must be positive and not exceed the payment", http.StatusBadRequest)
	case errors.Is(err, usecase.ErrUnknownPaymentProvider):
		return pkg.NewDomainErrorSimple("UNKNOWN_PAYMENT_PROVIDER", "Payment provider not registered", http.StatusBadRequest)
	case errors.Is(err, usecase.ErrCartNotFound):
		return pkg.NewDomainErrorSimple("CART_NOT_FOUND", "Cart not found", http.StatusNotFound)
	case errors.Is(err, usecase.ErrOrderNotFound):
		return pkg.NewDomainErrorSimple("ORDER_NOT_FOUND", "Order not found", http.StatusNotFound)
	case errors.Is(err, usecase.ErrRegionNotFound):
		return pkg.NewDomainErrorSimple("REGION_NOT_FOUND", "Region not found", http.StatusNotFound)
	case errors.Is(err, usecase.ErrPaymentGatewayNotFound):
		return pkg.NewDomainErrorSimple("PAYMENT_NOT_FOUND", "Payment not found at Mercado Pago", http.StatusNotFound)
	case errors.Is(err, usecase.ErrPaymentSessionNotSet):
		return pkg.NewDomainErrorSimple("PAYMENT_SESSION_NOT_SET", "Cart has no payment session", http.StatusConflict)
	case errors.Is(err, usecase.ErrCartAlreadyCompleted), errors.Is(err, interfaces.ErrOrderAlreadyExists):
		return pkg.NewDomainErrorSimple("CART_ALREADY_COMPLETED", "Cart already has an order", http.StatusConflict)
	case errors.Is(err, usecase.ErrCartNotAuthorized):
		return pkg.NewDomainErrorSimple("CART_NOT_AUTHORIZED", "Cart payment is not authorized", http.StatusConflict)
	case errors.Is(err, usecase.ErrOrderWithoutPayment):
		return pkg.NewDomainErrorSimple("ORDER_WITHOUT_PAYMENT", "Order has no payment", http.StatusConflict)
	case errors.Is(err, usecase.ErrInvalidCheckoutTransition):
		return pkg.NewDomainErrorSimple("INVALID_CHECKOUT_TRANSITION", "Checkout cannot move to the requested state", http.StatusConflict)
	case errors.Is(err, usecase.ErrUnknownCurrency):
		return pkg.NewDomainErrorSimple("UNKNOWN_CURRENCY", "Region currency is not supported", http.StatusUnprocessableEntity)
	case errors.Is(err, usecase.ErrPaymentGatewayUnauthorized):
		return pkg.NewDomainErrorSimple("PAYMENT_PROVIDER_UNAUTHORIZED", "Payment provider unauthorized", http.StatusUnauthorized)
	case errors.Is(err, usecase.ErrGatewayRequestFailed):
		return pkg.NewDomainError("PAYMENT_PROVIDER_UNAVAILABLE", "Payment provider request failed", err, http.StatusBadGateway)
	case errors.Is(err, usecase.ErrNotImplemented):
		return pkg.NewDomainErrorSimple("NOT_IMPLEMENTED", "Operation not supported by the payment provider", http.StatusNotImplemented)
	default:
		return pkg.NewDomainError("INTERNAL_ERROR", "An internal error occurred", err, http.StatusInternalServerError)
	}
}

func writeError(c *gin.Context, op string, err error) {
	appErr := mapCheckoutError(err)
	log := logger.FromCtx(c.Request.Context()).With(zap.String("op", op), zap.String("code", appErr.Code))
	if appErr.HTTPStatus >= http.StatusInternalServerError {
		log.Error("[http][handler] request failed", zap.Error(err))
	} else {
		log.Warn("[http][handler] request rejected", zap.Error(err))
	}
	c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
}
