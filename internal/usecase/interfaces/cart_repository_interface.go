package interfaces

import (
	"context"

	"mercadopago_provider/internal/domain/entities"
)

// ICartRepository persists carts together with their payment session and payment.
// A missing cart is returned as a zero value.
type ICartRepository interface {
	GetByID(ctx context.Context, id string) (entities.Cart, error)
	Save(ctx context.Context, c entities.Cart) (entities.Cart, error)
}
