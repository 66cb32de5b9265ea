package lib

import (
	"os"

	razorpay "github.com/razorpay/razorpay-go"
)

var razorpayClient *razorpay.Client

func GetRazorpayClient() *razorpay.Client {
	if razorpayClient != nil {
		return razorpayClient
	}
	keyID := os.Getenv("RAZORPAY_KEY_ID")
	keySecret := os.Getenv("RAZORPAY_KEY_SECRET")
	if keyID == "" || keySecret == "" {
		return nil
	}
	razorpayClient = razorpay.NewClient(keyID, keySecret)
	return razorpayClient
}

func NewRazorpayClient(c *razorpay.Client) {
	razorpayClient = c
}
