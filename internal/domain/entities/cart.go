package entities

import "time"

// LineItem is a cart line. UnitPrice is stored in the currency's minor unit.
type LineItem struct {
	ID          string `json:"id"`
	Title       string `json:"title"`
	Description string `json:"description,omitempty"`
	Quantity    int    `json:"quantity"`
	UnitPrice   int64  `json:"unit_price"`
}

type Address struct {
	FirstName string `json:"first_name"`
	LastName  string `json:"last_name"`
}

// Cart is owned by the storefront platform. The payment provider only reads it,
// apart from the payment session and payment attached during checkout.
type Cart struct {
	ID             string          `json:"id"`
	RegionID       string          `json:"region_id"`
	Email          string          `json:"email"`
	Items          []LineItem      `json:"items"`
	BillingAddress *Address        `json:"billing_address,omitempty"`
	PaymentSession *PaymentSession `json:"payment_session,omitempty"`
	Payment        *Payment        `json:"payment,omitempty"`

	PaymentAuthorizedAt *time.Time `json:"payment_authorized_at,omitempty"`
	CompletedAt         *time.Time `json:"completed_at,omitempty"`
}

// Total is the sum of every line in minor units.
func (c Cart) Total() int64 {
	var total int64
	for _, it := range c.Items {
		total += it.UnitPrice * int64(it.Quantity)
	}
	return total
}
