package interfaces

// IWebhookSignatureVerifier validates the x-signature header sent with
// Mercado Pago notifications.
type IWebhookSignatureVerifier interface {
	Verify(signature, requestID, dataID string) error
}
