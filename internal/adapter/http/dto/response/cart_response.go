package response

import (
	"time"

	"mercadopago_provider/internal/domain/entities"
)

type PaymentSessionResponse struct {
	ProviderID string         `json:"provider_id"`
	Status     string         `json:"status"`
	Data       map[string]any `json:"data"`
}

type CartResponse struct {
	ID                  string                  `json:"id"`
	RegionID            string                  `json:"region_id"`
	Email               string                  `json:"email"`
	Total               int64                   `json:"total"`
	PaymentSession      *PaymentSessionResponse `json:"payment_session,omitempty"`
	Payment             *PaymentResponse        `json:"payment,omitempty"`
	PaymentAuthorizedAt *time.Time              `json:"payment_authorized_at,omitempty"`
	CompletedAt         *time.Time              `json:"completed_at,omitempty"`
}

// PaymentSessionStatusResponse is returned by the status route after the
// session has been refreshed against the gateway.
type PaymentSessionStatusResponse struct {
	CartID     string `json:"cart_id"`
	ProviderID string `json:"provider_id"`
	Status     string `json:"status"`
}

func FromCart(c entities.Cart) CartResponse {
	res := CartResponse{
		ID:                  c.ID,
		RegionID:            c.RegionID,
		Email:               c.Email,
		Total:               c.Total(),
		Payment:             fromPayment(c.Payment),
		PaymentAuthorizedAt: c.PaymentAuthorizedAt,
		CompletedAt:         c.CompletedAt,
	}
	if s := c.PaymentSession; s != nil {
		res.PaymentSession = &PaymentSessionResponse{ProviderID: s.ProviderID, Status: string(s.Status), Data: s.Data}
	}
	return res
}

func FromPaymentSessionStatus(c entities.Cart) PaymentSessionStatusResponse {
	res := PaymentSessionStatusResponse{CartID: c.ID}
	if s := c.PaymentSession; s != nil {
		res.ProviderID = s.ProviderID
		res.Status = string(s.Status)
	}
	return res
}
