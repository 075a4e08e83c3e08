package entities

// Gateway payment statuses as reported by Mercado Pago.
const (
	GatewayStatusApproved    = "approved"
	GatewayStatusAuthorized  = "authorized"
	GatewayStatusPending     = "pending"
	GatewayStatusInProcess   = "in_process"
	GatewayStatusInMediation = "in_mediation"
	GatewayStatusRejected    = "rejected"
	GatewayStatusCancelled   = "cancelled"
	GatewayStatusRefunded    = "refunded"
	GatewayStatusChargedBack = "charged_back"
)

// GatewayPayment is the authoritative payment record read from the gateway.
// Raw keeps the whole payload as returned, which is what callers receive as Data.
type GatewayPayment struct {
	ID                        string
	Status                    string
	StatusDetail              string
	ExternalReference         string
	TransactionAmount         float64
	TransactionAmountRefunded float64
	Captured                  bool
	CurrencyID                string
	Raw                       Data
}

// FullyRefunded reports a refunded payment whose whole amount went back.
func (p GatewayPayment) FullyRefunded() bool {
	return p.Status == GatewayStatusRefunded && p.TransactionAmount == p.TransactionAmountRefunded
}

// Data returns the raw payload, falling back to the typed fields when the
// gateway adapter did not keep one.
func (p GatewayPayment) Data() Data {
	if p.Raw != nil {
		return p.Raw
	}
	return Data{
		"id":                          p.ID,
		"status":                      p.Status,
		"status_detail":               p.StatusDetail,
		"external_reference":          p.ExternalReference,
		"transaction_amount":          p.TransactionAmount,
		"transaction_amount_refunded": p.TransactionAmountRefunded,
		"captured":                    p.Captured,
		"currency_id":                 p.CurrencyID,
	}
}
