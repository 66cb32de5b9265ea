package common

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

const (
	testSecret    = "rzp_test_secret"
	testOrderID   = "order_9A33XWu170gUtm"
	testPaymentID = "pay_29QQoUBi66xm2f"
	testSignature = "3260a4f62b64907cfd92766c15dea1480ad753cedc90248b8346f48f243993c1"
)

func TestExpectedSignature(t *testing.T) {
	assert.Equal(t, testSignature, ExpectedSignature(testOrderID, testPaymentID, testSecret))
	assert.Equal(t,
		ExpectedSignature(testOrderID, testPaymentID, testSecret),
		ExpectedSignature(testOrderID, testPaymentID, testSecret),
	)
}

func TestVerifySignature(t *testing.T) {
	assert.True(t, VerifySignature(testOrderID, testPaymentID, testSignature, testSecret))

	assert.False(t, VerifySignature(testOrderID, testPaymentID, testSignature, "other_secret"))
	assert.False(t, VerifySignature(testOrderID, "pay_29QQoUBi66xm2g", testSignature, testSecret))
	assert.False(t, VerifySignature(testOrderID, testPaymentID, "", testSecret))
	assert.False(t, VerifySignature(testOrderID, testPaymentID, testSignature, ""))
}

func TestVerifySignatureRejectsSingleBitFlips(t *testing.T) {
	input := []byte(testOrderID)
	for i := range input {
		for bit := 0; bit < 8; bit++ {
			flipped := make([]byte, len(input))
			copy(flipped, input)
			flipped[i] ^= 1 << bit
			assert.False(t, VerifySignature(string(flipped), testPaymentID, testSignature, testSecret))
		}
	}
	sig := []byte(testSignature)
	for i := range sig {
		flipped := make([]byte, len(sig))
		copy(flipped, sig)
		flipped[i] ^= 1
		assert.False(t, VerifySignature(testOrderID, testPaymentID, string(flipped), testSecret))
	}
}
