package entities

import "time"

// Order is created from a cart once its payment is authorized.
// Storage keeps at most one order per cart.
type Order struct {
	ID           string    `json:"id"`
	CartID       string    `json:"cart_id"`
	Email        string    `json:"email"`
	RegionID     string    `json:"region_id"`
	CurrencyCode string    `json:"currency_code"`
	Total        int64     `json:"total"`
	Payment      *Payment  `json:"payment,omitempty"`
	CreatedAt    time.Time `json:"created_at"`
}
