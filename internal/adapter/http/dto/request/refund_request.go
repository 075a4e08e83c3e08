package request

// RefundRequest is the body of the refund route. Amount is in the currency's
// minor unit and cannot exceed the captured payment.
type RefundRequest struct {
	Amount int64 `json:"amount" binding:"required,gt=0"`
}
