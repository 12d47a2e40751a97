package payment

import (
	"crypto/hmac"
	"crypto/sha256"
	"encoding/hex"
	"strings"
)

const signaturePrefix = "sha256="

// Sign returns the x-hub-signature value of payload: "sha256=" followed by
// the hex HMAC-SHA256 of the raw body.
func Sign(payload []byte, secret string) string {
	mac := hmac.New(sha256.New, []byte(secret))
	mac.Write(payload)
	return signaturePrefix + hex.EncodeToString(mac.Sum(nil))
}

// VerifySignature checks a Pagar.me x-hub-signature header against the raw
// request body in constant time.
func VerifySignature(payload []byte, header, secret string) bool {
	if secret == "" || !strings.HasPrefix(header, signaturePrefix) {
		return false
	}
	return hmac.Equal([]byte(strings.ToLower(header)), []byte(Sign(payload, secret)))
}
