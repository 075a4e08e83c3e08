package payments

import (
	"crypto/hmac"
	"crypto/sha256"
	"encoding/hex"
	"errors"
	"strings"

	"mercadopago_provider/internal/usecase/interfaces"
)

var (
	ErrMissingSignature = errors.New("missing x-signature header")
	ErrInvalidSignature = errors.New("invalid webhook signature")
)

// SignatureVerifier checks the x-signature header Mercado Pago sends with each
// notification: "ts=<unix ts>,v1=<hex hmac-sha256>" signed over the manifest
// "id:<data.id>;request-id:<x-request-id>;ts:<ts>;" with the webhook secret.
// Parts whose value is missing are left out of the manifest.
type SignatureVerifier struct {
	secret []byte
}

var _ interfaces.IWebhookSignatureVerifier = (*SignatureVerifier)(nil)

func NewSignatureVerifier(secret string) *SignatureVerifier {
	return &SignatureVerifier{secret: []byte(secret)}
}

func (v *SignatureVerifier) Verify(signature, requestID, dataID string) error {
	if strings.TrimSpace(signature) == "" {
		return ErrMissingSignature
	}
	ts, v1 := parseSignature(signature)
	if ts == "" || v1 == "" {
		return ErrInvalidSignature
	}

	expected, err := hex.DecodeString(v1)
	if err != nil {
		return ErrInvalidSignature
	}
	mac := hmac.New(sha256.New, v.secret)
	mac.Write([]byte(SignatureManifest(dataID, requestID, ts)))
	if !hmac.Equal(mac.Sum(nil), expected) {
		return ErrInvalidSignature
	}
	return nil
}

// SignatureManifest builds the string the signature is computed over.
// Alphanumeric data ids are signed lower-cased.
func SignatureManifest(dataID, requestID, ts string) string {
	var b strings.Builder
	if dataID != "" {
		b.WriteString("id:" + strings.ToLower(dataID) + ";")
	}
	if requestID != "" {
		b.WriteString("request-id:" + requestID + ";")
	}
	if ts != "" {
		b.WriteString("ts:" + ts + ";")
	}
	return b.String()
}

func parseSignature(signature string) (ts, v1 string) {
	for _, part := range strings.Split(signature, ",") {
		key, value, ok := strings.Cut(strings.TrimSpace(part), "=")
		if !ok {
			continue
		}
		switch strings.TrimSpace(key) {
		case "ts":
			ts = strings.TrimSpace(value)
		case "v1":
			v1 = strings.TrimSpace(value)
		}
	}
	return ts, v1
}
