package common

import (
	"context"
	"encoding/json"
	"fmt"
	"hbs/src/config"
	"hbs/src/lib"
	"hbs/src/models"
	"log"

	"github.com/stripe/stripe-go/v82"
	"github.com/stripe/stripe-go/v82/webhook"
)

// Order is a gateway-side intent to collect payment for a booking.
type Order struct {
	Gateway     string
	OrderID     string
	Amount      int64
	Currency    string
	RedirectURL string
}

type OrderOptions struct {
	Receipt string
	Origin  string
}

// PaymentGateway creates orders. Verification differs per gateway and is
// exposed by the concrete types.
type PaymentGateway interface {
	Name() string
	CreateOrder(ctx context.Context, b *models.Booking, opts OrderOptions) (*Order, error)
}

type CheckoutSessions interface {
	CreateCheckoutSession(ctx context.Context, in *lib.StripeCheckoutInput) (*stripe.CheckoutSession, error)
}

type stripeSessions struct {
	sc *stripe.Client
}

func (s stripeSessions) CreateCheckoutSession(ctx context.Context, in *lib.StripeCheckoutInput) (*stripe.CheckoutSession, error) {
	return lib.StripeCreateCheckoutSession(ctx, s.sc, in)
}

// StripeGateway redirects to a hosted checkout page and learns the outcome
// from the signed checkout.session.completed webhook.
type StripeGateway struct {
	sessions      CheckoutSessions
	webhookSecret string
}

func NewStripeGateway(sc *stripe.Client, webhookSecret string) *StripeGateway {
	return NewStripeGatewayWithSessions(stripeSessions{sc: sc}, webhookSecret)
}

func NewStripeGatewayWithSessions(sessions CheckoutSessions, webhookSecret string) *StripeGateway {
	return &StripeGateway{sessions: sessions, webhookSecret: webhookSecret}
}

func (g *StripeGateway) Name() string {
	return config.PAYMENT_METHOD_STRIPE
}

func (g *StripeGateway) CreateOrder(ctx context.Context, b *models.Booking, opts OrderOptions) (*Order, error) {
	name := "Hotel booking"
	if b.Hotel != nil {
		name = b.Hotel.Name
	}
	amount := MinorUnits(b.TotalPrice)
	cs, err := g.sessions.CreateCheckoutSession(ctx, &lib.StripeCheckoutInput{
		ProductName: name,
		UnitAmount:  amount,
		Currency:    config.STRIPE_CURRENCY,
		SuccessURL:  fmt.Sprintf("%s/loader/my-bookings", opts.Origin),
		CancelURL:   fmt.Sprintf("%s/my-bookings", opts.Origin),
		Metadata:    map[string]string{"bookingId": b.ID},
	})
	if err != nil {
		log.Printf("[Stripe] Checkout session for booking %s failed: %s\n", b.ID, err.Error())
		return nil, err
	}
	return &Order{
		Gateway:     g.Name(),
		OrderID:     cs.ID,
		Amount:      amount,
		Currency:    config.STRIPE_CURRENCY,
		RedirectURL: cs.URL,
	}, nil
}

type CheckoutCompleted struct {
	BookingID string
	SessionID string
	Paid      bool
}

// ParseCheckoutCompleted verifies the Stripe-Signature header and extracts the
// booking reference. ok is false for other event types.
func (g *StripeGateway) ParseCheckoutCompleted(payload []byte, signatureHeader string) (*CheckoutCompleted, bool, error) {
	event, err := webhook.ConstructEventWithOptions(payload, signatureHeader, g.webhookSecret, webhook.ConstructEventOptions{
		IgnoreAPIVersionMismatch: true,
	})
	if err != nil {
		return nil, false, err
	}
	log.Printf("[StripeEvent] %s\n", event.Type)
	if event.Type != stripe.EventTypeCheckoutSessionCompleted {
		return nil, false, nil
	}
	var cs stripe.CheckoutSession
	if err := json.Unmarshal(event.Data.Raw, &cs); err != nil {
		log.Printf("[Stripe] Error parsing CheckoutSession: %s\n", err.Error())
		return nil, false, err
	}
	return &CheckoutCompleted{
		BookingID: cs.Metadata["bookingId"],
		SessionID: cs.ID,
		Paid:      cs.PaymentStatus == stripe.CheckoutSessionPaymentStatusPaid,
	}, true, nil
}

// RazorpayOrders is the subset of the Razorpay order resource used here.
type RazorpayOrders interface {
	Create(data map[string]interface{}, extraHeaders map[string]string) (map[string]interface{}, error)
}

// RazorpayGateway opens orders server-side and verifies the client-returned
// signature with the shared key secret.
type RazorpayGateway struct {
	orders    RazorpayOrders
	keyID     string
	keySecret string
}

func NewRazorpayGateway(orders RazorpayOrders, keyID, keySecret string) *RazorpayGateway {
	return &RazorpayGateway{orders: orders, keyID: keyID, keySecret: keySecret}
}

func (g *RazorpayGateway) Name() string {
	return config.PAYMENT_METHOD_RAZORPAY
}

func (g *RazorpayGateway) KeyID() string {
	return g.keyID
}

func (g *RazorpayGateway) CreateOrder(ctx context.Context, b *models.Booking, opts OrderOptions) (*Order, error) {
	notes := map[string]interface{}{"bookingId": b.ID}
	if b.Hotel != nil {
		notes["hotelName"] = b.Hotel.Name
	}
	if b.Room != nil {
		notes["roomType"] = b.Room.RoomType
	}
	amount := MinorUnits(b.TotalPrice)
	res, err := g.orders.Create(map[string]interface{}{
		"amount":   amount,
		"currency": config.RAZORPAY_CURRENCY,
		"receipt":  opts.Receipt,
		"notes":    notes,
	}, nil)
	if err != nil {
		log.Printf("[Razorpay] Order for booking %s failed: %s\n", b.ID, err.Error())
		return nil, err
	}
	id, _ := res["id"].(string)
	if id == "" {
		return nil, fmt.Errorf("razorpay order for booking %s returned no id", b.ID)
	}
	order := &Order{
		Gateway:  g.Name(),
		OrderID:  id,
		Amount:   amount,
		Currency: config.RAZORPAY_CURRENCY,
	}
	switch v := res["amount"].(type) {
	case float64:
		order.Amount = int64(v)
	case int64:
		order.Amount = v
	case int:
		order.Amount = int64(v)
	}
	if c, ok := res["currency"].(string); ok && c != "" {
		order.Currency = c
	}
	return order, nil
}

func (g *RazorpayGateway) Verify(orderID, paymentID, signature string) bool {
	return VerifySignature(orderID, paymentID, signature, g.keySecret)
}
