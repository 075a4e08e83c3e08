package payments

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"strconv"
	"sync"
	"time"

	"mercadopago_provider/internal/domain/entities"
	"mercadopago_provider/internal/infrastructure/logger"
	"mercadopago_provider/internal/usecase/interfaces"

	"github.com/mercadopago/sdk-go/pkg/config"
	"github.com/mercadopago/sdk-go/pkg/payment"
	"github.com/mercadopago/sdk-go/pkg/preference"
	"github.com/mercadopago/sdk-go/pkg/refund"
	"go.uber.org/zap"
)

var (
	ErrMissingMercadoPagoAccessToken   = errors.New("missing MERCADOPAGO_ACCESS_TOKEN")
	ErrMercadoPagoGatewayNotConfigured = errors.New("mercado pago gateway not configured")
	ErrInvalidGatewayPaymentID         = errors.New("invalid mercado pago payment id")
)

const defaultTimeout = 15 * time.Second

// The SDK clients expose more than this; only the calls used here are listed so
// tests can substitute them.
type preferenceAPI interface {
	Create(ctx context.Context, request preference.Request) (*preference.Response, error)
	Update(ctx context.Context, id string, request preference.Request) (*preference.Response, error)
}

type paymentAPI interface {
	Get(ctx context.Context, id int) (*payment.Response, error)
	Cancel(ctx context.Context, id int) (*payment.Response, error)
}

type refundAPI interface {
	Create(ctx context.Context, paymentID int) (*refund.Response, error)
	CreatePartialRefund(ctx context.Context, paymentID int, amount float64) (*refund.Response, error)
}

// MercadoPagoGateway talks to the Mercado Pago REST API through the official SDK.
// In mock mode no request leaves the process.
type MercadoPagoGateway struct {
	preferences preferenceAPI
	payments    paymentAPI
	refunds     refundAPI
	timeout     time.Duration

	mock *mockBackend
}

var _ interfaces.IPaymentGateway = (*MercadoPagoGateway)(nil)

func NewMercadoPagoGateway(accessToken string, timeout time.Duration, mockMode bool) (*MercadoPagoGateway, error) {
	if timeout <= 0 {
		timeout = defaultTimeout
	}
	if mockMode {
		logger.L().Info("[payment][gateway] mock mode enabled")
		return &MercadoPagoGateway{timeout: timeout, mock: newMockBackend()}, nil
	}

	if accessToken == "" {
		logger.L().Error("[payment][gateway] missing MERCADOPAGO_ACCESS_TOKEN")
		return nil, ErrMissingMercadoPagoAccessToken
	}

	cfg, err := config.New(accessToken)
	if err != nil {
		logger.L().Error("[payment][gateway] failed creating sdk config", zap.Error(err))
		return nil, err
	}
	logger.L().Info("[payment][gateway] Mercado Pago client initialized", zap.Duration("timeout", timeout))

	return &MercadoPagoGateway{
		preferences: preference.NewClient(cfg),
		payments:    payment.NewClient(cfg),
		refunds:     refund.NewClient(cfg),
		timeout:     timeout,
	}, nil
}

func (g *MercadoPagoGateway) CreatePreference(ctx context.Context, pref entities.Preference) (entities.PreferenceResult, error) {
	log := logger.FromCtx(ctx).With(zap.String("external_reference", pref.ExternalReference))
	if g.mock != nil {
		res := g.mock.createPreference(pref)
		log.Info("[payment][gateway] mock preference created", zap.String("preference_id", res.ID))
		return res, nil
	}
	if g.preferences == nil {
		return entities.PreferenceResult{}, ErrMercadoPagoGatewayNotConfigured
	}

	ctx, cancel := context.WithTimeout(ctx, g.timeout)
	defer cancel()

	log.Info("[payment][gateway] create preference start", zap.Int("items", len(pref.Items)))
	resp, err := g.preferences.Create(ctx, toPreferenceRequest(pref))
	if err != nil {
		log.Error("[payment][gateway] sdk create preference failed", zap.Error(err))
		return entities.PreferenceResult{}, err
	}
	log.Info("[payment][gateway] create preference success", zap.String("preference_id", resp.ID))
	return fromPreferenceResponse(resp), nil
}

func (g *MercadoPagoGateway) UpdatePreference(ctx context.Context, preferenceID string, pref entities.Preference) (entities.PreferenceResult, error) {
	log := logger.FromCtx(ctx).With(zap.String("preference_id", preferenceID))
	if g.mock != nil {
		res, err := g.mock.updatePreference(preferenceID, pref)
		if err != nil {
			log.Warn("[payment][gateway] mock preference update failed", zap.Error(err))
			return entities.PreferenceResult{}, err
		}
		return res, nil
	}
	if g.preferences == nil {
		return entities.PreferenceResult{}, ErrMercadoPagoGatewayNotConfigured
	}

	ctx, cancel := context.WithTimeout(ctx, g.timeout)
	defer cancel()

	resp, err := g.preferences.Update(ctx, preferenceID, toPreferenceRequest(pref))
	if err != nil {
		log.Error("[payment][gateway] sdk update preference failed", zap.Error(err))
		return entities.PreferenceResult{}, err
	}
	log.Info("[payment][gateway] update preference success")
	return fromPreferenceResponse(resp), nil
}

func (g *MercadoPagoGateway) GetPayment(ctx context.Context, paymentID string) (entities.GatewayPayment, error) {
	log := logger.FromCtx(ctx).With(zap.String("payment_id", paymentID))
	if g.mock != nil {
		return g.mock.getPayment(paymentID), nil
	}
	id, err := parsePaymentID(paymentID)
	if err != nil {
		return entities.GatewayPayment{}, err
	}
	if g.payments == nil {
		return entities.GatewayPayment{}, ErrMercadoPagoGatewayNotConfigured
	}

	ctx, cancel := context.WithTimeout(ctx, g.timeout)
	defer cancel()

	resp, err := g.payments.Get(ctx, id)
	if err != nil {
		log.Error("[payment][gateway] sdk get payment failed", zap.Error(err))
		return entities.GatewayPayment{}, err
	}
	log.Debug("[payment][gateway] get payment success", zap.String("status", resp.Status))
	return fromPaymentResponse(resp), nil
}

func (g *MercadoPagoGateway) CancelPayment(ctx context.Context, paymentID string) error {
	log := logger.FromCtx(ctx).With(zap.String("payment_id", paymentID))
	if g.mock != nil {
		g.mock.cancelPayment(paymentID)
		log.Info("[payment][gateway] mock payment cancelled")
		return nil
	}
	id, err := parsePaymentID(paymentID)
	if err != nil {
		return err
	}
	if g.payments == nil {
		return ErrMercadoPagoGatewayNotConfigured
	}

	ctx, cancel := context.WithTimeout(ctx, g.timeout)
	defer cancel()

	if _, err := g.payments.Cancel(ctx, id); err != nil {
		log.Error("[payment][gateway] sdk cancel payment failed", zap.Error(err))
		return err
	}
	log.Info("[payment][gateway] cancel payment success")
	return nil
}

func (g *MercadoPagoGateway) RefundPayment(ctx context.Context, paymentID string, amount *float64) error {
	log := logger.FromCtx(ctx).With(zap.String("payment_id", paymentID), zap.Bool("partial", amount != nil))
	if g.mock != nil {
		g.mock.refundPayment(paymentID, amount)
		log.Info("[payment][gateway] mock payment refunded")
		return nil
	}
	id, err := parsePaymentID(paymentID)
	if err != nil {
		return err
	}
	if g.refunds == nil {
		return ErrMercadoPagoGatewayNotConfigured
	}

	ctx, cancel := context.WithTimeout(ctx, g.timeout)
	defer cancel()

	if amount == nil {
		_, err = g.refunds.Create(ctx, id)
	} else {
		_, err = g.refunds.CreatePartialRefund(ctx, id, *amount)
	}
	if err != nil {
		log.Error("[payment][gateway] sdk refund failed", zap.Error(err))
		return err
	}
	log.Info("[payment][gateway] refund success")
	return nil
}

func parsePaymentID(paymentID string) (int, error) {
	id, err := strconv.Atoi(paymentID)
	if err != nil || id <= 0 {
		return 0, fmt.Errorf("%w: %q", ErrInvalidGatewayPaymentID, paymentID)
	}
	return id, nil
}

func toPreferenceRequest(pref entities.Preference) preference.Request {
	items := make([]preference.ItemRequest, 0, len(pref.Items))
	for _, it := range pref.Items {
		items = append(items, preference.ItemRequest{
			ID:          it.ID,
			Title:       it.Title,
			Description: it.Description,
			Quantity:    it.Quantity,
			UnitPrice:   it.UnitPrice,
			CurrencyID:  it.CurrencyID,
		})
	}

	req := preference.Request{
		Items: items,
		Payer: &preference.PayerRequest{
			Name:    pref.Payer.Name,
			Surname: pref.Payer.Surname,
			Email:   pref.Payer.Email,
		},
		NotificationURL:   pref.NotificationURL,
		ExternalReference: pref.ExternalReference,
	}
	if b := pref.BackURLs; b.Success != "" || b.Pending != "" || b.Failure != "" {
		req.BackURLs = &preference.BackURLsRequest{Success: b.Success, Pending: b.Pending, Failure: b.Failure}
	}
	return req
}

func fromPreferenceResponse(resp *preference.Response) entities.PreferenceResult {
	if resp == nil {
		return entities.PreferenceResult{}
	}
	return entities.PreferenceResult{ID: resp.ID, InitPoint: resp.InitPoint, SandboxInitPoint: resp.SandboxInitPoint}
}

func fromPaymentResponse(resp *payment.Response) entities.GatewayPayment {
	if resp == nil {
		return entities.GatewayPayment{}
	}
	p := entities.GatewayPayment{
		ID:                        strconv.Itoa(resp.ID),
		Status:                    resp.Status,
		StatusDetail:              resp.StatusDetail,
		ExternalReference:         resp.ExternalReference,
		TransactionAmount:         resp.TransactionAmount,
		TransactionAmountRefunded: resp.TransactionAmountRefunded,
		Captured:                  resp.Captured,
		CurrencyID:                resp.CurrencyID,
	}
	if b, err := json.Marshal(resp); err == nil {
		var raw entities.Data
		if err := json.Unmarshal(b, &raw); err == nil {
			p.Raw = raw
		}
	}
	return p
}

// mockBackend keeps preferences and payments in memory for local runs.
// A payment id the backend has not seen yet is treated as an approved payment
// for the last preference created, so a webhook can be replayed by hand.
type mockBackend struct {
	mu          sync.Mutex
	preferences map[string]entities.Preference
	payments    map[string]entities.GatewayPayment
	lastRef     string
	seq         int64
}

func newMockBackend() *mockBackend {
	return &mockBackend{
		preferences: map[string]entities.Preference{},
		payments:    map[string]entities.GatewayPayment{},
	}
}

func (m *mockBackend) createPreference(pref entities.Preference) entities.PreferenceResult {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.seq++
	id := fmt.Sprintf("mock-pref-%d-%d", time.Now().UTC().UnixNano(), m.seq)
	m.preferences[id] = pref
	m.lastRef = pref.ExternalReference
	return mockPreferenceResult(id)
}

func (m *mockBackend) updatePreference(id string, pref entities.Preference) (entities.PreferenceResult, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	if _, ok := m.preferences[id]; !ok {
		return entities.PreferenceResult{}, fmt.Errorf(`{"status":404,"error":"not_found","message":"preference %s not found"}`, id)
	}
	m.preferences[id] = pref
	m.lastRef = pref.ExternalReference
	return mockPreferenceResult(id), nil
}

func mockPreferenceResult(id string) entities.PreferenceResult {
	return entities.PreferenceResult{
		ID:               id,
		InitPoint:        "https://www.mercadopago.com/checkout/v1/redirect?pref_id=" + id,
		SandboxInitPoint: "https://sandbox.mercadopago.com/checkout/v1/redirect?pref_id=" + id,
	}
}

func (m *mockBackend) getPayment(id string) entities.GatewayPayment {
	m.mu.Lock()
	defer m.mu.Unlock()
	if p, ok := m.payments[id]; ok {
		return p
	}
	p := entities.GatewayPayment{
		ID:                id,
		Status:            entities.GatewayStatusApproved,
		StatusDetail:      "accredited",
		ExternalReference: m.lastRef,
		Captured:          true,
		CurrencyID:        "BRL",
	}
	for _, pref := range m.preferences {
		if pref.ExternalReference != m.lastRef {
			continue
		}
		for _, it := range pref.Items {
			p.TransactionAmount += it.UnitPrice * float64(it.Quantity)
			p.CurrencyID = it.CurrencyID
		}
		break
	}
	m.payments[id] = p
	return p
}

func (m *mockBackend) cancelPayment(id string) {
	p := m.getPayment(id)
	m.mu.Lock()
	defer m.mu.Unlock()
	p.Status = entities.GatewayStatusCancelled
	p.StatusDetail = "by_collector"
	m.payments[id] = p
}

func (m *mockBackend) refundPayment(id string, amount *float64) {
	p := m.getPayment(id)
	m.mu.Lock()
	defer m.mu.Unlock()
	if amount == nil {
		p.TransactionAmountRefunded = p.TransactionAmount
	} else {
		p.TransactionAmountRefunded += *amount
	}
	if p.TransactionAmountRefunded >= p.TransactionAmount {
		p.Status = entities.GatewayStatusRefunded
	}
	m.payments[id] = p
}
