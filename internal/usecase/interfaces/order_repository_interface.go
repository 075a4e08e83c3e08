package interfaces

import (
	"context"
	"errors"

	"mercadopago_provider/internal/domain/entities"
)

// ErrOrderAlreadyExists is returned by Create when the cart already has an order.
var ErrOrderAlreadyExists = errors.New("order already exists for cart")

// IOrderRepository persists orders keyed by the cart they were created from.
//
// Storage must reject a second order for the same cart; that constraint is the
// backstop behind the existence check done before creating an order.
type IOrderRepository interface {
	GetByCartID(ctx context.Context, cartID string) (entities.Order, error)
	Create(ctx context.Context, o entities.Order) (entities.Order, error)
	Save(ctx context.Context, o entities.Order) (entities.Order, error)
}
