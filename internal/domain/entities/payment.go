package entities

import "time"

// Payment is created from an authorized payment session. Data carries the
// session data plus the gateway payment id.
type Payment struct {
	ID           string     `json:"id"`
	CartID       string     `json:"cart_id"`
	ProviderID   string     `json:"provider_id"`
	Amount       int64      `json:"amount"`
	CurrencyCode string     `json:"currency_code"`
	Data         Data       `json:"data"`
	CapturedAt   *time.Time `json:"captured_at,omitempty"`
	CanceledAt   *time.Time `json:"canceled_at,omitempty"`
}
