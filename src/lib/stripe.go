package lib

import (
	"context"
	"os"

	"github.com/stripe/stripe-go/v82"
)

var stripeClient *stripe.Client

func GetStripeClient() *stripe.Client {
	if stripeClient != nil {
		return stripeClient
	}
	apiKey := os.Getenv("STRIPE_SECRET_KEY")
	if apiKey == "" {
		return nil
	}
	sc := stripe.NewClient(apiKey)
	stripeClient = sc

	return sc
}

func NewStripeClient(c *stripe.Client) {
	stripeClient = c
}

type StripeCheckoutInput struct {
	ProductName string
	UnitAmount  int64
	Currency    string
	SuccessURL  string
	CancelURL   string
	Metadata    map[string]string
}

// StripeCreateCheckoutSession opens a hosted checkout session for a single line item.
func StripeCreateCheckoutSession(ctx context.Context, sc *stripe.Client, in *StripeCheckoutInput) (*stripe.CheckoutSession, error) {
	params := &stripe.CheckoutSessionCreateParams{
		Mode:       stripe.String(string(stripe.CheckoutSessionModePayment)),
		SuccessURL: stripe.String(in.SuccessURL),
		CancelURL:  stripe.String(in.CancelURL),
		LineItems: []*stripe.CheckoutSessionCreateLineItemParams{
			{
				PriceData: &stripe.CheckoutSessionCreateLineItemPriceDataParams{
					Currency: stripe.String(in.Currency),
					ProductData: &stripe.CheckoutSessionCreateLineItemPriceDataProductDataParams{
						Name: stripe.String(in.ProductName),
					},
					UnitAmount: stripe.Int64(in.UnitAmount),
				},
				Quantity: stripe.Int64(1),
			},
		},
		Metadata: in.Metadata,
	}
	return sc.V1CheckoutSessions.Create(ctx, params)
}
