package interfaces

import (
	"context"

	"mercadopago_provider/internal/domain/entities"
)

// IPaymentGateway abstracts the Mercado Pago REST API.
//
// Every call is a single request/response; retries, signing and rate limiting
// belong to the SDK behind the implementation.
type IPaymentGateway interface {
	CreatePreference(ctx context.Context, pref entities.Preference) (entities.PreferenceResult, error)
	UpdatePreference(ctx context.Context, preferenceID string, pref entities.Preference) (entities.PreferenceResult, error)
	GetPayment(ctx context.Context, paymentID string) (entities.GatewayPayment, error)
	CancelPayment(ctx context.Context, paymentID string) error
	// RefundPayment refunds the whole payment when amount is nil.
	RefundPayment(ctx context.Context, paymentID string, amount *float64) error
}
