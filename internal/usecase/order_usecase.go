package usecase

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"mercadopago_provider/internal/domain/entities"
	"mercadopago_provider/internal/infrastructure/logger"
	"mercadopago_provider/internal/usecase/interfaces"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

// IOrderUseCase is the slice of the platform order service used by the provider
// flows: order creation from a paid cart and payment management afterwards.
type IOrderUseCase interface {
	RetrieveByCartID(ctx context.Context, cartID string) (entities.Order, error)
	CreateFromCart(ctx context.Context, cartID string) (entities.Order, error)
	CapturePayment(ctx context.Context, cartID string) (entities.Order, error)
	RefundPayment(ctx context.Context, cartID string, amount int64) (entities.Order, error)
	CancelPayment(ctx context.Context, cartID string) (entities.Order, error)
}

type OrderUseCase struct {
	orders    interfaces.IOrderRepository
	carts     interfaces.ICartRepository
	regions   interfaces.IRegionRepository
	tx        interfaces.ITransactionManager
	providers map[string]IPaymentProvider
	now       func() time.Time
}

var _ IOrderUseCase = (*OrderUseCase)(nil)

func NewOrderUseCase(orders interfaces.IOrderRepository, carts interfaces.ICartRepository, regions interfaces.IRegionRepository, tx interfaces.ITransactionManager, providers ...IPaymentProvider) *OrderUseCase {
	byID := make(map[string]IPaymentProvider, len(providers))
	for _, p := range providers {
		byID[p.Identifier()] = p
	}
	return &OrderUseCase{
		orders:    orders,
		carts:     carts,
		regions:   regions,
		tx:        tx,
		providers: byID,
		now:       func() time.Time { return time.Now().UTC() },
	}
}

func (u *OrderUseCase) RetrieveByCartID(ctx context.Context, cartID string) (entities.Order, error) {
	cartID = strings.TrimSpace(cartID)
	if cartID == "" {
		return entities.Order{}, ErrInvalidCartID
	}
	o, err := u.orders.GetByCartID(ctx, cartID)
	if err != nil {
		return entities.Order{}, err
	}
	if o.ID == "" {
		return entities.Order{}, ErrOrderNotFound
	}
	return o, nil
}

// CreateFromCart turns a cart with an authorized payment into an order and
// completes the cart, in one transaction. Carts with a zero total need no payment.
func (u *OrderUseCase) CreateFromCart(ctx context.Context, cartID string) (entities.Order, error) {
	cartID = strings.TrimSpace(cartID)
	if cartID == "" {
		return entities.Order{}, ErrInvalidCartID
	}
	log := logger.FromCtx(ctx).With(zap.String("cart_id", cartID))
	log.Info("[order][usecase] create from cart start")

	var created entities.Order
	err := u.tx.WithinTransaction(ctx, func(ctx context.Context) error {
		c, err := u.carts.GetByID(ctx, cartID)
		if err != nil {
			return err
		}
		if c.ID == "" {
			return ErrCartNotFound
		}
		if c.CompletedAt != nil {
			return ErrCartAlreadyCompleted
		}

		existing, err := u.orders.GetByCartID(ctx, cartID)
		if err != nil {
			return err
		}
		if existing.ID != "" {
			return interfaces.ErrOrderAlreadyExists
		}

		total := c.Total()
		if total > 0 && (c.Payment == nil || c.PaymentAuthorizedAt == nil) {
			return ErrCartNotAuthorized
		}

		currencyCode, err := u.currencyOf(ctx, c)
		if err != nil {
			return err
		}

		now := u.now()
		o, err := u.orders.Create(ctx, entities.Order{
			ID:           uuid.NewString(),
			CartID:       c.ID,
			Email:        c.Email,
			RegionID:     c.RegionID,
			CurrencyCode: currencyCode,
			Total:        total,
			Payment:      c.Payment,
			CreatedAt:    now,
		})
		if err != nil {
			return err
		}

		c.CompletedAt = &now
		if _, err := u.carts.Save(ctx, c); err != nil {
			return err
		}
		created = o
		return nil
	})
	if err != nil {
		log.Warn("[order][usecase] create from cart failed", zap.Error(err))
		return entities.Order{}, err
	}
	log.Info("[order][usecase] order created", zap.String("order_id", created.ID), zap.Int64("total", created.Total))
	return created, nil
}

// CapturePayment asks the provider to capture the order payment and stores the
// data it returns.
func (u *OrderUseCase) CapturePayment(ctx context.Context, cartID string) (entities.Order, error) {
	return u.withPayment(ctx, cartID, "capture", func(p IPaymentProvider, payment *entities.Payment) error {
		data, err := p.CapturePayment(ctx, *payment)
		if err != nil {
			return err
		}
		payment.Data = data
		if payment.CapturedAt == nil {
			now := u.now()
			payment.CapturedAt = &now
		}
		return nil
	})
}

// RefundPayment refunds amount, in minor units, of the order payment.
func (u *OrderUseCase) RefundPayment(ctx context.Context, cartID string, amount int64) (entities.Order, error) {
	return u.withPayment(ctx, cartID, "refund", func(p IPaymentProvider, payment *entities.Payment) error {
		if amount <= 0 || amount > payment.Amount {
			return fmt.Errorf("%w: %d", ErrInvalidRefundAmount, amount)
		}
		data, err := p.RefundPayment(ctx, *payment, amount)
		if err != nil {
			return err
		}
		payment.Data = payment.Data.Merge(data)
		return nil
	})
}

// CancelPayment cancels or fully refunds the order payment.
func (u *OrderUseCase) CancelPayment(ctx context.Context, cartID string) (entities.Order, error) {
	return u.withPayment(ctx, cartID, "cancel", func(p IPaymentProvider, payment *entities.Payment) error {
		data, err := p.CancelPayment(ctx, *payment)
		if err != nil {
			return err
		}
		payment.Data = payment.Data.Merge(data)
		if payment.CanceledAt == nil {
			now := u.now()
			payment.CanceledAt = &now
		}
		return nil
	})
}

func (u *OrderUseCase) withPayment(ctx context.Context, cartID, op string, fn func(IPaymentProvider, *entities.Payment) error) (entities.Order, error) {
	log := logger.FromCtx(ctx).With(zap.String("cart_id", cartID), zap.String("op", op))

	o, err := u.RetrieveByCartID(ctx, cartID)
	if err != nil {
		return entities.Order{}, err
	}
	if o.Payment == nil {
		return entities.Order{}, ErrOrderWithoutPayment
	}
	provider, ok := u.providers[o.Payment.ProviderID]
	if !ok {
		return entities.Order{}, fmt.Errorf("%w: %q", ErrUnknownPaymentProvider, o.Payment.ProviderID)
	}

	payment := *o.Payment
	if err := fn(provider, &payment); err != nil {
		log.Warn("[order][usecase] payment operation failed", zap.Error(err))
		return entities.Order{}, err
	}
	o.Payment = &payment

	saved, err := u.orders.Save(ctx, o)
	if err != nil {
		log.Error("[order][usecase] saving order failed", zap.Error(err))
		return entities.Order{}, err
	}
	log.Info("[order][usecase] payment operation done", zap.String("order_id", saved.ID))
	return saved, nil
}

func (u *OrderUseCase) currencyOf(ctx context.Context, c entities.Cart) (string, error) {
	if c.Payment != nil && c.Payment.CurrencyCode != "" {
		return c.Payment.CurrencyCode, nil
	}
	region, err := u.regions.GetByID(ctx, c.RegionID)
	if err != nil {
		return "", err
	}
	if region.ID == "" {
		return "", fmt.Errorf("%w: %s", ErrRegionNotFound, c.RegionID)
	}
	return region.CurrencyCode, nil
}

// IsOrderConflict reports errors caused by an order already existing for the cart.
func IsOrderConflict(err error) bool {
	return errors.Is(err, interfaces.ErrOrderAlreadyExists) || errors.Is(err, ErrCartAlreadyCompleted)
}
