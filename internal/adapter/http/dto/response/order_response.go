package response

import (
	"time"

	"mercadopago_provider/internal/domain/entities"
)

type PaymentResponse struct {
	ID           string         `json:"id"`
	ProviderID   string         `json:"provider_id"`
	Amount       int64          `json:"amount"`
	CurrencyCode string         `json:"currency_code"`
	Data         map[string]any `json:"data"`
	CapturedAt   *time.Time     `json:"captured_at,omitempty"`
	CanceledAt   *time.Time     `json:"canceled_at,omitempty"`
}

type OrderResponse struct {
	ID           string           `json:"id"`
	CartID       string           `json:"cart_id"`
	Email        string           `json:"email"`
	RegionID     string           `json:"region_id"`
	CurrencyCode string           `json:"currency_code"`
	Total        int64            `json:"total"`
	Payment      *PaymentResponse `json:"payment,omitempty"`
	CreatedAt    time.Time        `json:"created_at"`
}

func FromOrder(o entities.Order) OrderResponse {
	return OrderResponse{
		ID:           o.ID,
		CartID:       o.CartID,
		Email:        o.Email,
		RegionID:     o.RegionID,
		CurrencyCode: o.CurrencyCode,
		Total:        o.Total,
		Payment:      fromPayment(o.Payment),
		CreatedAt:    o.CreatedAt,
	}
}

func fromPayment(p *entities.Payment) *PaymentResponse {
	if p == nil {
		return nil
	}
	return &PaymentResponse{
		ID:           p.ID,
		ProviderID:   p.ProviderID,
		Amount:       p.Amount,
		CurrencyCode: p.CurrencyCode,
		Data:         p.Data,
		CapturedAt:   p.CapturedAt,
		CanceledAt:   p.CanceledAt,
	}
}
