package request

import "strings"

// PaymentSessionRequest selects the provider a cart pays with. An empty body
// falls back to the configured provider.
type PaymentSessionRequest struct {
	ProviderID string `json:"provider_id"`
}

func (r PaymentSessionRequest) ResolveProviderID(fallback string) string {
	if v := strings.TrimSpace(r.ProviderID); v != "" {
		return v
	}
	return fallback
}
