package usecase

import (
	"context"
	"fmt"
	"strings"

	"mercadopago_provider/internal/domain/entities"
	"mercadopago_provider/internal/infrastructure/logger"
	"mercadopago_provider/internal/usecase/interfaces"

	"go.uber.org/zap"
)

const (
	MercadoPagoProviderID = "mercadopago"

	notificationTypePayment = "payment"
	webhookPath             = "/mercadopago"
)

// AuthorizeResult is what the provider hands back to the platform after
// authorizing a payment session.
type AuthorizeResult struct {
	Data   entities.Data
	Status entities.PaymentSessionStatus
}

// PaymentProviderDataInput is the input of the payment-collection flavoured
// provider methods. They are not supported by this provider.
type PaymentProviderDataInput struct {
	ResourceID   string
	CurrencyCode string
	Amount       int64
	Email        string
}

// IPaymentProvider is the payment-provider contract the storefront platform
// calls during checkout and order management.
type IPaymentProvider interface {
	Identifier() string
	CreatePayment(ctx context.Context, cart entities.Cart) (entities.Data, error)
	UpdatePayment(ctx context.Context, sessionData entities.Data, cart entities.Cart) (entities.Data, error)
	RetrievePayment(ctx context.Context, data entities.Data) (entities.Data, error)
	GetStatus(ctx context.Context, data entities.Data) (entities.PaymentSessionStatus, error)
	GetPaymentData(ctx context.Context, session entities.PaymentSession) (entities.Data, error)
	UpdatePaymentData(ctx context.Context, sessionData, data entities.Data) (entities.Data, error)
	AuthorizePayment(ctx context.Context, session entities.PaymentSession, paymentContext entities.Data) (AuthorizeResult, error)
	CapturePayment(ctx context.Context, payment entities.Payment) (entities.Data, error)
	RefundPayment(ctx context.Context, payment entities.Payment, amount int64) (entities.Data, error)
	CancelPayment(ctx context.Context, payment entities.Payment) (entities.Data, error)
	DeletePayment(ctx context.Context, session entities.PaymentSession) error
	CreatePaymentNew(ctx context.Context, input PaymentProviderDataInput) (entities.Data, error)
	UpdatePaymentNew(ctx context.Context, sessionData entities.Data, input PaymentProviderDataInput) (entities.Data, error)
	NotificationPayment(ctx context.Context, body entities.Data) (entities.Data, error)
}

// ProviderOptions are the URLs the provider writes into every preference.
type ProviderOptions struct {
	WebhookURL     string
	SuccessBackURL string
}

// MercadoPagoProviderUseCase translates platform payment calls into Mercado
// Pago preferences, payments and refunds.
type MercadoPagoProviderUseCase struct {
	gateway interfaces.IPaymentGateway
	regions interfaces.IRegionRepository
	opts    ProviderOptions
}

var _ IPaymentProvider = (*MercadoPagoProviderUseCase)(nil)

func NewMercadoPagoProviderUseCase(gateway interfaces.IPaymentGateway, regions interfaces.IRegionRepository, opts ProviderOptions) *MercadoPagoProviderUseCase {
	opts.WebhookURL = strings.TrimRight(opts.WebhookURL, "/")
	opts.SuccessBackURL = strings.TrimRight(opts.SuccessBackURL, "/")
	return &MercadoPagoProviderUseCase{gateway: gateway, regions: regions, opts: opts}
}

func (u *MercadoPagoProviderUseCase) Identifier() string {
	return MercadoPagoProviderID
}

// CreatePayment creates a checkout preference for the cart and returns the
// data stored on the new payment session.
func (u *MercadoPagoProviderUseCase) CreatePayment(ctx context.Context, cart entities.Cart) (entities.Data, error) {
	log := logger.FromCtx(ctx).With(zap.String("cart_id", cart.ID))
	log.Info("[payment][provider] create preference start", zap.Int("items", len(cart.Items)))

	pref, err := u.buildPreference(ctx, cart)
	if err != nil {
		log.Warn("[payment][provider] building preference failed", zap.Error(err))
		return nil, err
	}
	pref.NotificationURL = u.opts.WebhookURL + webhookPath

	res, err := u.gateway.CreatePreference(ctx, pref)
	if err != nil {
		log.Error("[payment][provider] create preference failed", zap.Error(err))
		return nil, gatewayError(err)
	}
	log.Info("[payment][provider] create preference success", zap.String("preference_id", res.ID))

	return entities.Data{
		"preferenceId": res.ID,
		"url":          res.InitPoint,
		"urlSandbox":   res.SandboxInitPoint,
	}, nil
}

// UpdatePayment rebuilds the preference from a possibly changed cart and
// submits it as an update of the stored preference.
func (u *MercadoPagoProviderUseCase) UpdatePayment(ctx context.Context, sessionData entities.Data, cart entities.Cart) (entities.Data, error) {
	preferenceID := sessionData.Identifier("preferenceId")
	log := logger.FromCtx(ctx).With(zap.String("cart_id", cart.ID), zap.String("preference_id", preferenceID))
	if preferenceID == "" {
		log.Warn("[payment][provider] update preference without preference id")
		return nil, ErrMissingPreferenceID
	}

	pref, err := u.buildPreference(ctx, cart)
	if err != nil {
		log.Warn("[payment][provider] building preference failed", zap.Error(err))
		return nil, err
	}

	res, err := u.gateway.UpdatePreference(ctx, preferenceID, pref)
	if err != nil {
		log.Error("[payment][provider] update preference failed", zap.Error(err))
		return nil, gatewayError(err)
	}
	log.Info("[payment][provider] update preference success")

	return entities.Data{
		"preferenceId": res.ID,
		"url":          res.InitPoint,
	}, nil
}

// RetrievePayment fetches the gateway payment identified by data["id"].
// Every read of payment state goes through here.
func (u *MercadoPagoProviderUseCase) RetrievePayment(ctx context.Context, data entities.Data) (entities.Data, error) {
	p, err := u.fetchPayment(ctx, data)
	if err != nil {
		return nil, err
	}
	return p.Data(), nil
}

func (u *MercadoPagoProviderUseCase) fetchPayment(ctx context.Context, data entities.Data) (entities.GatewayPayment, error) {
	paymentID := data.Identifier("id")
	if paymentID == "" {
		return entities.GatewayPayment{}, ErrMissingPaymentID
	}
	p, err := u.gateway.GetPayment(ctx, paymentID)
	if err != nil {
		logger.FromCtx(ctx).Error("[payment][provider] retrieve payment failed", zap.String("payment_id", paymentID), zap.Error(err))
		return entities.GatewayPayment{}, gatewayError(err)
	}
	return p, nil
}

// GetStatus maps the gateway payment status onto the platform status.
func (u *MercadoPagoProviderUseCase) GetStatus(ctx context.Context, data entities.Data) (entities.PaymentSessionStatus, error) {
	p, err := u.fetchPayment(ctx, data)
	if err != nil {
		return "", err
	}
	return MapGatewayStatus(p.Status), nil
}

// MapGatewayStatus translates a Mercado Pago payment status. Anything not
// listed stays pending so an unexpected status never completes or fails a cart.
func MapGatewayStatus(status string) entities.PaymentSessionStatus {
	switch status {
	case entities.GatewayStatusApproved, entities.GatewayStatusAuthorized:
		return entities.PaymentSessionStatusAuthorized
	case entities.GatewayStatusRefunded, entities.GatewayStatusChargedBack, entities.GatewayStatusCancelled:
		return entities.PaymentSessionStatusCanceled
	case entities.GatewayStatusRejected:
		return entities.PaymentSessionStatusError
	case entities.GatewayStatusPending, entities.GatewayStatusInProcess, entities.GatewayStatusInMediation:
		return entities.PaymentSessionStatusPending
	default:
		return entities.PaymentSessionStatusPending
	}
}

func (u *MercadoPagoProviderUseCase) GetPaymentData(ctx context.Context, session entities.PaymentSession) (entities.Data, error) {
	return u.RetrievePayment(ctx, session.Data)
}

func (u *MercadoPagoProviderUseCase) UpdatePaymentData(_ context.Context, sessionData, data entities.Data) (entities.Data, error) {
	return sessionData.Merge(data), nil
}

// AuthorizePayment records the gateway payment id on the session and derives
// the session status from the gateway. Nothing is mutated on the gateway.
func (u *MercadoPagoProviderUseCase) AuthorizePayment(ctx context.Context, session entities.PaymentSession, paymentContext entities.Data) (AuthorizeResult, error) {
	status, err := u.GetStatus(ctx, paymentContext)
	if err != nil {
		return AuthorizeResult{}, err
	}
	logger.FromCtx(ctx).Info("[payment][provider] authorize",
		zap.String("payment_id", paymentContext.Identifier("id")),
		zap.String("status", string(status)),
	)
	return AuthorizeResult{
		Data:   session.Data.Merge(entities.Data{"id": paymentContext.Identifier("id")}),
		Status: status,
	}, nil
}

// CapturePayment never asks the gateway to capture: preferences are captured
// automatically. The payment data comes back unchanged whether or not the
// gateway reports the payment captured yet.
func (u *MercadoPagoProviderUseCase) CapturePayment(ctx context.Context, payment entities.Payment) (entities.Data, error) {
	p, err := u.fetchPayment(ctx, payment.Data)
	if err != nil {
		return nil, err
	}
	if p.Captured {
		return payment.Data, nil
	}

	logger.FromCtx(ctx).Info("[payment][provider] capture skipped, payment not captured yet",
		zap.String("payment_id", p.ID),
		zap.String("status", p.Status),
	)
	return payment.Data, nil
}

// RefundPayment refunds amount (minor units) and returns the refreshed payment.
func (u *MercadoPagoProviderUseCase) RefundPayment(ctx context.Context, payment entities.Payment, amount int64) (entities.Data, error) {
	paymentID := payment.Data.Identifier("id")
	if paymentID == "" {
		return nil, ErrMissingPaymentID
	}
	value, err := HumanizeAmount(amount, payment.CurrencyCode)
	if err != nil {
		return nil, err
	}

	log := logger.FromCtx(ctx).With(zap.String("payment_id", paymentID))
	log.Info("[payment][provider] refund start", zap.Float64("amount", value))
	if err := u.gateway.RefundPayment(ctx, paymentID, &value); err != nil {
		log.Error("[payment][provider] refund failed", zap.Error(err))
		return nil, gatewayError(err)
	}
	return u.RetrievePayment(ctx, payment.Data)
}

// CancelPayment brings the payment to a terminal state:
//   - cancelled or fully refunded payments are returned untouched;
//   - captured payments are refunded in full;
//   - pending or in_process payments are cancelled;
//   - anything else is left as is.
//
// The refreshed gateway payment is returned in every non-terminal case.
func (u *MercadoPagoProviderUseCase) CancelPayment(ctx context.Context, payment entities.Payment) (entities.Data, error) {
	current, err := u.fetchPayment(ctx, payment.Data)
	if err != nil {
		return nil, err
	}
	if current.Status == entities.GatewayStatusCancelled || current.FullyRefunded() {
		return current.Data(), nil
	}

	paymentID := payment.Data.Identifier("id")
	log := logger.FromCtx(ctx).With(zap.String("payment_id", paymentID), zap.String("status", current.Status))

	switch {
	case current.Captured || payment.Data.Bool("captured"):
		log.Info("[payment][provider] cancel via full refund")
		if err := u.gateway.RefundPayment(ctx, paymentID, nil); err != nil {
			log.Error("[payment][provider] full refund failed", zap.Error(err))
			return nil, gatewayError(err)
		}
	case current.Status == entities.GatewayStatusPending || current.Status == entities.GatewayStatusInProcess:
		log.Info("[payment][provider] cancel pending payment")
		if err := u.gateway.CancelPayment(ctx, paymentID); err != nil {
			log.Error("[payment][provider] cancel failed", zap.Error(err))
			return nil, gatewayError(err)
		}
	default:
		log.Info("[payment][provider] cancel found nothing to do")
	}

	return u.RetrievePayment(ctx, payment.Data)
}

func (u *MercadoPagoProviderUseCase) DeletePayment(context.Context, entities.PaymentSession) error {
	return fmt.Errorf("DeletePayment: %w", ErrNotImplemented)
}

func (u *MercadoPagoProviderUseCase) CreatePaymentNew(context.Context, PaymentProviderDataInput) (entities.Data, error) {
	return nil, fmt.Errorf("CreatePaymentNew: %w", ErrNotImplemented)
}

func (u *MercadoPagoProviderUseCase) UpdatePaymentNew(context.Context, entities.Data, PaymentProviderDataInput) (entities.Data, error) {
	return nil, fmt.Errorf("UpdatePaymentNew: %w", ErrNotImplemented)
}

// NotificationPayment loads the payment referenced by a webhook body
// (body.data.id) and returns the body with the payment under "payment".
func (u *MercadoPagoProviderUseCase) NotificationPayment(ctx context.Context, body entities.Data) (entities.Data, error) {
	payload := entities.AsData(body["data"])
	payment, err := u.RetrievePayment(ctx, entities.Data{"id": payload.Identifier("id")})
	if err != nil {
		return nil, err
	}
	return body.Merge(entities.Data{"payment": payment}), nil
}

func (u *MercadoPagoProviderUseCase) buildPreference(ctx context.Context, cart entities.Cart) (entities.Preference, error) {
	region, err := u.regions.GetByID(ctx, cart.RegionID)
	if err != nil {
		return entities.Preference{}, err
	}
	if region.ID == "" {
		return entities.Preference{}, fmt.Errorf("%w: %s", ErrRegionNotFound, cart.RegionID)
	}

	items := make([]entities.PreferenceItem, 0, len(cart.Items))
	for _, it := range cart.Items {
		price, err := HumanizeAmount(it.UnitPrice, region.CurrencyCode)
		if err != nil {
			return entities.Preference{}, err
		}
		items = append(items, entities.PreferenceItem{
			ID:          it.ID,
			Title:       it.Title,
			Description: it.Description,
			Quantity:    it.Quantity,
			UnitPrice:   price,
			CurrencyID:  strings.ToUpper(region.CurrencyCode),
		})
	}

	payer := entities.PreferencePayer{Email: cart.Email}
	if cart.BillingAddress != nil {
		payer.Name = cart.BillingAddress.FirstName
		payer.Surname = cart.BillingAddress.LastName
	}

	return entities.Preference{
		Items:             items,
		Payer:             payer,
		ExternalReference: cart.ID,
		BackURLs: entities.PreferenceBackURLs{
			Success: fmt.Sprintf("%s/%s/", u.opts.SuccessBackURL, cart.ID),
		},
	}, nil
}
