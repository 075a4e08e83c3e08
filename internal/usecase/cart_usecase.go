package usecase

import (
	"context"
	"fmt"
	"strings"
	"time"

	"mercadopago_provider/internal/domain/entities"
	"mercadopago_provider/internal/infrastructure/logger"
	"mercadopago_provider/internal/usecase/interfaces"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

// ICartUseCase is the slice of the platform cart service used during checkout.
type ICartUseCase interface {
	Retrieve(ctx context.Context, cartID string) (entities.Cart, error)
	SetPaymentSession(ctx context.Context, cartID, providerID string) (entities.Cart, error)
	UpdatePaymentSession(ctx context.Context, cartID string) (entities.Cart, error)
	RefreshPaymentSession(ctx context.Context, cartID string) (entities.Cart, error)
	AuthorizePayment(ctx context.Context, cartID string, paymentContext entities.Data) (entities.Cart, error)
}

type CartUseCase struct {
	carts     interfaces.ICartRepository
	regions   interfaces.IRegionRepository
	providers map[string]IPaymentProvider
	now       func() time.Time
}

var _ ICartUseCase = (*CartUseCase)(nil)

func NewCartUseCase(carts interfaces.ICartRepository, regions interfaces.IRegionRepository, providers ...IPaymentProvider) *CartUseCase {
	byID := make(map[string]IPaymentProvider, len(providers))
	for _, p := range providers {
		byID[p.Identifier()] = p
	}
	return &CartUseCase{
		carts:     carts,
		regions:   regions,
		providers: byID,
		now:       func() time.Time { return time.Now().UTC() },
	}
}

func (u *CartUseCase) Retrieve(ctx context.Context, cartID string) (entities.Cart, error) {
	cartID = strings.TrimSpace(cartID)
	if cartID == "" {
		return entities.Cart{}, ErrInvalidCartID
	}
	c, err := u.carts.GetByID(ctx, cartID)
	if err != nil {
		logger.FromCtx(ctx).Error("[cart][usecase] load failed", zap.String("cart_id", cartID), zap.Error(err))
		return entities.Cart{}, err
	}
	if c.ID == "" {
		return entities.Cart{}, ErrCartNotFound
	}
	return c, nil
}

// SetPaymentSession selects providerID for the cart. A session already held by
// that provider is kept; otherwise a new one is initialised through the provider.
func (u *CartUseCase) SetPaymentSession(ctx context.Context, cartID, providerID string) (entities.Cart, error) {
	c, err := u.retrieveOpen(ctx, cartID)
	if err != nil {
		return entities.Cart{}, err
	}
	provider, err := u.provider(providerID)
	if err != nil {
		return entities.Cart{}, err
	}
	log := logger.FromCtx(ctx).With(zap.String("cart_id", c.ID), zap.String("provider_id", providerID))

	if c.PaymentSession != nil && c.PaymentSession.ProviderID == providerID {
		log.Info("[cart][usecase] payment session already set")
		return c, nil
	}

	data, err := provider.CreatePayment(ctx, c)
	if err != nil {
		log.Warn("[cart][usecase] payment session init failed", zap.Error(err))
		return entities.Cart{}, err
	}
	c.PaymentSession = &entities.PaymentSession{
		ProviderID: providerID,
		Data:       data,
		Status:     entities.PaymentSessionStatusPending,
	}
	log.Info("[cart][usecase] payment session set")
	return u.carts.Save(ctx, c)
}

// UpdatePaymentSession pushes the current cart contents to the provider.
func (u *CartUseCase) UpdatePaymentSession(ctx context.Context, cartID string) (entities.Cart, error) {
	c, provider, err := u.sessionCart(ctx, cartID)
	if err != nil {
		return entities.Cart{}, err
	}
	updated, err := provider.UpdatePayment(ctx, c.PaymentSession.Data, c)
	if err != nil {
		return entities.Cart{}, err
	}
	merged, err := provider.UpdatePaymentData(ctx, c.PaymentSession.Data, updated)
	if err != nil {
		return entities.Cart{}, err
	}
	c.PaymentSession.Data = merged
	return u.carts.Save(ctx, c)
}

// RefreshPaymentSession re-reads the session status from the provider. Until the
// shopper pays there is no gateway payment id and the cart is returned as is.
func (u *CartUseCase) RefreshPaymentSession(ctx context.Context, cartID string) (entities.Cart, error) {
	c, provider, err := u.sessionCart(ctx, cartID)
	if err != nil {
		return entities.Cart{}, err
	}
	if c.PaymentSession.Data.Identifier("id") == "" {
		return c, nil
	}
	status, err := provider.GetStatus(ctx, c.PaymentSession.Data)
	if err != nil {
		return entities.Cart{}, err
	}
	if status == c.PaymentSession.Status {
		return c, nil
	}
	c.PaymentSession.Status = status
	return u.carts.Save(ctx, c)
}

// AuthorizePayment authorizes the cart's session. Once the provider reports it
// authorized a Payment for the cart total is attached to the cart.
func (u *CartUseCase) AuthorizePayment(ctx context.Context, cartID string, paymentContext entities.Data) (entities.Cart, error) {
	c, provider, err := u.sessionCart(ctx, cartID)
	if err != nil {
		return entities.Cart{}, err
	}
	log := logger.FromCtx(ctx).With(zap.String("cart_id", c.ID))

	res, err := provider.AuthorizePayment(ctx, *c.PaymentSession, paymentContext)
	if err != nil {
		log.Warn("[cart][usecase] authorize failed", zap.Error(err))
		return entities.Cart{}, err
	}
	c.PaymentSession.Data = res.Data
	c.PaymentSession.Status = res.Status

	if res.Status == entities.PaymentSessionStatusAuthorized && c.Payment == nil {
		region, err := u.regions.GetByID(ctx, c.RegionID)
		if err != nil {
			return entities.Cart{}, err
		}
		if region.ID == "" {
			return entities.Cart{}, fmt.Errorf("%w: %s", ErrRegionNotFound, c.RegionID)
		}
		now := u.now()
		c.Payment = &entities.Payment{
			ID:           uuid.NewString(),
			CartID:       c.ID,
			ProviderID:   c.PaymentSession.ProviderID,
			Amount:       c.Total(),
			CurrencyCode: region.CurrencyCode,
			Data:         res.Data,
		}
		c.PaymentAuthorizedAt = &now
	}
	log.Info("[cart][usecase] authorize done", zap.String("status", string(res.Status)), zap.Bool("payment_attached", c.Payment != nil))
	return u.carts.Save(ctx, c)
}

func (u *CartUseCase) retrieveOpen(ctx context.Context, cartID string) (entities.Cart, error) {
	c, err := u.Retrieve(ctx, cartID)
	if err != nil {
		return entities.Cart{}, err
	}
	if c.CompletedAt != nil {
		return entities.Cart{}, ErrCartAlreadyCompleted
	}
	return c, nil
}

func (u *CartUseCase) sessionCart(ctx context.Context, cartID string) (entities.Cart, IPaymentProvider, error) {
	c, err := u.retrieveOpen(ctx, cartID)
	if err != nil {
		return entities.Cart{}, nil, err
	}
	if c.PaymentSession == nil {
		return entities.Cart{}, nil, ErrPaymentSessionNotSet
	}
	provider, err := u.provider(c.PaymentSession.ProviderID)
	if err != nil {
		return entities.Cart{}, nil, err
	}
	return c, provider, nil
}

func (u *CartUseCase) provider(id string) (IPaymentProvider, error) {
	p, ok := u.providers[id]
	if !ok {
		return nil, fmt.Errorf("%w: %q", ErrUnknownPaymentProvider, id)
	}
	return p, nil
}
