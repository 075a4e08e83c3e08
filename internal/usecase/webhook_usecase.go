package usecase

import (
	"context"
	"fmt"

	"mercadopago_provider/internal/domain/entities"
	"mercadopago_provider/internal/infrastructure/logger"
	"mercadopago_provider/internal/usecase/interfaces"

	"go.uber.org/zap"
)

const actionPaymentCreated = "payment.created"

// WebhookOutcome tells the endpoint how a notification was handled.
type WebhookOutcome int

const (
	// WebhookProcessed covers handled notifications and those that had nothing
	// to correlate or nothing left to do.
	WebhookProcessed WebhookOutcome = iota
	// WebhookIgnored is a payment notification whose action this provider does
	// not act on.
	WebhookIgnored
)

// IWebhookUseCase handles Mercado Pago notifications.
type IWebhookUseCase interface {
	HandleNotification(ctx context.Context, body entities.Data) (WebhookOutcome, error)
}

type WebhookUseCase struct {
	provider IPaymentProvider
	carts    ICartUseCase
	orders   IOrderUseCase
	tx       interfaces.ITransactionManager
}

var _ IWebhookUseCase = (*WebhookUseCase)(nil)

func NewWebhookUseCase(provider IPaymentProvider, carts ICartUseCase, orders IOrderUseCase, tx interfaces.ITransactionManager) *WebhookUseCase {
	return &WebhookUseCase{provider: provider, carts: carts, orders: orders, tx: tx}
}

// HandleNotification drives the cart to an order from a payment notification.
//
// A failure to load the payment detail is reported as ErrPaymentDetailUnavailable.
// Any other error comes from correlating or mutating the cart and order.
func (u *WebhookUseCase) HandleNotification(ctx context.Context, body entities.Data) (WebhookOutcome, error) {
	log := logger.FromCtx(ctx).With(
		zap.String("type", body.String("type")),
		zap.String("action", body.String("action")),
	)

	if body.String("type") != notificationTypePayment {
		log.Info("[webhook][usecase] notification type not handled")
		return WebhookProcessed, nil
	}

	detail, err := u.provider.NotificationPayment(ctx, body)
	if err != nil {
		log.Warn("[webhook][usecase] payment detail unavailable", zap.Error(err))
		return WebhookProcessed, fmt.Errorf("%w: %w", ErrPaymentDetailUnavailable, err)
	}

	action := detail.String("action")
	payment := entities.AsData(detail["payment"])
	cartID := payment.Identifier("external_reference")
	paymentID := payment.Identifier("id")
	log = log.With(zap.String("cart_id", cartID), zap.String("payment_id", paymentID))
	if cartID == "" {
		log.Info("[webhook][usecase] payment without external reference")
		return WebhookProcessed, nil
	}

	order, err := u.orders.RetrieveByCartID(ctx, cartID)
	hasOrder := err == nil && order.ID != ""
	if err != nil {
		log.Debug("[webhook][usecase] no order for cart", zap.Error(err))
	}

	if action != actionPaymentCreated {
		log.Info("[webhook][usecase] action ignored", zap.Bool("order_exists", hasOrder))
		return WebhookIgnored, nil
	}
	if hasOrder {
		log.Info("[webhook][usecase] order already created", zap.String("order_id", order.ID))
		return WebhookProcessed, nil
	}

	err = u.tx.WithinTransaction(ctx, func(ctx context.Context) error {
		cart, err := u.carts.Retrieve(ctx, cartID)
		if err != nil {
			return err
		}
		state := entities.CheckoutStateOf(cart, nil)
		if !entities.CanTransition(state, entities.CheckoutStateOrderCreated) {
			return fmt.Errorf("%w: %s -> %s", ErrInvalidCheckoutTransition, state, entities.CheckoutStateOrderCreated)
		}

		if _, err := u.carts.SetPaymentSession(ctx, cartID, MercadoPagoProviderID); err != nil {
			return err
		}
		if _, err := u.carts.AuthorizePayment(ctx, cartID, entities.Data{"id": paymentID}); err != nil {
			return err
		}
		_, err = u.orders.CreateFromCart(ctx, cartID)
		return err
	})
	if err != nil {
		log.Warn("[webhook][usecase] cart to order transition failed", zap.Error(err))
		return WebhookProcessed, err
	}

	log.Info("[webhook][usecase] cart to order transition done")
	return WebhookProcessed, nil
}
