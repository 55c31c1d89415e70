package usecase

import (
	"crypto/sha512"
	"crypto/subtle"
	"encoding/hex"
	"strings"

	domainErrors "github.com/polkiloo/panganku/internal/domain/errors"
	"github.com/polkiloo/panganku/internal/domain/model"
)

// SignatureVerifier checks the gateway signature_key of a payment notification.
// An empty server key disables verification.
type SignatureVerifier struct {
	serverKey string
}

// NewSignatureVerifier constructs SignatureVerifier.
func NewSignatureVerifier(serverKey string) *SignatureVerifier {
	return &SignatureVerifier{serverKey: serverKey}
}

// Enabled reports whether notifications are verified.
func (v *SignatureVerifier) Enabled() bool {
	return v != nil && v.serverKey != ""
}

// Sign computes hex(sha512(order_id + status_code + gross_amount + server_key)).
func (v *SignatureVerifier) Sign(orderID, statusCode, grossAmount string) string {
	sum := sha512.Sum512([]byte(orderID + statusCode + grossAmount + v.serverKey))
	return hex.EncodeToString(sum[:])
}

// Verify returns ErrInvalidSignature when the notification was not signed with the server key.
func (v *SignatureVerifier) Verify(n model.PaymentNotification) error {
	if !v.Enabled() {
		return nil
	}
	if n.SignatureKey == "" {
		return domainErrors.ErrInvalidSignature
	}
	expected := v.Sign(n.OrderID, n.StatusCode, n.GrossAmount)
	if subtle.ConstantTimeCompare([]byte(expected), []byte(strings.ToLower(n.SignatureKey))) != 1 {
		return domainErrors.ErrInvalidSignature
	}
	return nil
}
