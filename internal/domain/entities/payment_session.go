package entities

// PaymentSessionStatus is the normalized status the platform understands.
type PaymentSessionStatus string

const (
	PaymentSessionStatusPending    PaymentSessionStatus = "pending"
	PaymentSessionStatusAuthorized PaymentSessionStatus = "authorized"
	PaymentSessionStatusCanceled   PaymentSessionStatus = "canceled"
	PaymentSessionStatusError      PaymentSessionStatus = "error"
)

// PaymentSession is the in-progress payment attempt attached to a cart.
// Data is written exclusively by the payment provider.
type PaymentSession struct {
	ProviderID string               `json:"provider_id"`
	Data       Data                 `json:"data"`
	Status     PaymentSessionStatus `json:"status"`
}
