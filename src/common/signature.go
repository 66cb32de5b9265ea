package common

import (
	"crypto/hmac"
	"crypto/sha256"
	"encoding/hex"
)

// ExpectedSignature is the hex HMAC-SHA256 of "orderId|paymentId" keyed by the gateway secret.
func ExpectedSignature(orderID, paymentID, secret string) string {
	mac := hmac.New(sha256.New, []byte(secret))
	mac.Write([]byte(orderID + "|" + paymentID))
	return hex.EncodeToString(mac.Sum(nil))
}

func VerifySignature(orderID, paymentID, signature, secret string) bool {
	if secret == "" || signature == "" {
		return false
	}
	expected := ExpectedSignature(orderID, paymentID, secret)
	return hmac.Equal([]byte(expected), []byte(signature))
}
