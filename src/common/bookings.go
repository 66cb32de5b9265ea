package common

import (
	"context"
	"errors"
	"fmt"
	"hbs/src/config"
	"hbs/src/models"
	"hbs/src/types"
	"log"
	"time"
)

type Locker interface {
	Acquire(ctx context.Context, key, owner string) (bool, error)
	Release(ctx context.Context, key string) error
}

// Bookings orchestrates the ledger, the payment gateways and notifications.
// Stripe, Razorpay, Notifier and Locker may be nil when not configured.
type Bookings struct {
	Ledger   *Ledger
	Stripe   *StripeGateway
	Razorpay *RazorpayGateway
	Notifier *Notifier
	Locker   Locker
}

type StayInput struct {
	RoomID   string
	CheckIn  time.Time
	CheckOut time.Time
	Guests   int
}

type RazorpayOrderResult struct {
	OrderID   string `json:"orderId"`
	Amount    int64  `json:"amount"`
	Currency  string `json:"currency"`
	BookingID string `json:"bookingId"`
	HotelName string `json:"hotelName"`
	KeyID     string `json:"keyId"`
}

type VerifyPaymentInput struct {
	OrderID   string
	PaymentID string
	Signature string
	BookingID string
}

// Book creates a pay-at-hotel booking. The details email is best-effort.
func (s *Bookings) Book(ctx context.Context, userID string, in StayInput) (*models.Booking, error) {
	booking, err := s.Ledger.CreateBooking(ctx, NewBooking{
		UserID:        userID,
		RoomID:        in.RoomID,
		CheckIn:       in.CheckIn,
		CheckOut:      in.CheckOut,
		Guests:        in.Guests,
		PaymentMethod: config.DEFAULT_PAYMENT_METHOD,
	})
	if err != nil {
		return nil, err
	}
	s.Notifier.BookingCreated(ctx, booking)
	return booking, nil
}

// ownedBooking loads a booking the caller owns. Other users' bookings are reported as not found.
func (s *Bookings) ownedBooking(ctx context.Context, userID, bookingID string) (*models.Booking, error) {
	booking, err := s.Ledger.GetBooking(ctx, bookingID)
	if err != nil {
		return nil, err
	}
	if booking.UserID != userID {
		return nil, types.ErrBookingNotFound
	}
	return booking, nil
}

// StripeCheckout opens a hosted checkout session for an unpaid booking and returns its URL.
func (s *Bookings) StripeCheckout(ctx context.Context, userID, bookingID, origin string) (string, error) {
	if s.Stripe == nil {
		return "", types.ErrGatewayNotConfigured
	}
	booking, err := s.ownedBooking(ctx, userID, bookingID)
	if err != nil {
		return "", err
	}
	if booking.IsPaid {
		return "", types.ErrAlreadyPaid
	}
	order, err := s.Stripe.CreateOrder(ctx, booking, OrderOptions{Origin: origin})
	if err != nil {
		return "", err
	}
	if err := s.Ledger.AttachCheckoutSession(ctx, booking.ID, order.OrderID); err != nil {
		log.Printf("[Stripe] Could not record session %s on booking %s: %s\n", order.OrderID, booking.ID, err.Error())
	}
	return order.RedirectURL, nil
}

// CompleteStripeCheckout applies a verified checkout.session.completed event.
func (s *Bookings) CompleteStripeCheckout(ctx context.Context, ev *CheckoutCompleted) error {
	if ev.BookingID == "" {
		return types.ErrBookingNotFound
	}
	if !ev.Paid {
		log.Printf("[Stripe] Session %s completed without payment, booking %s left pending\n", ev.SessionID, ev.BookingID)
		return nil
	}
	sessionID := ev.SessionID
	booking, applied, err := s.Ledger.MarkPaid(ctx, ev.BookingID, types.PAYMENT_COMPLETED, GatewayFields{
		PaymentMethod:     config.PAYMENT_METHOD_STRIPE,
		CheckoutSessionID: &sessionID,
	})
	if err != nil {
		return err
	}
	if applied {
		s.Notifier.BookingConfirmed(ctx, booking)
	}
	return nil
}

// CreateRazorpayOrder creates a pending booking and a gateway order for it.
// If the order cannot be opened the provisional booking is removed.
func (s *Bookings) CreateRazorpayOrder(ctx context.Context, userID string, in StayInput) (*RazorpayOrderResult, error) {
	if s.Razorpay == nil {
		return nil, types.ErrGatewayNotConfigured
	}
	booking, err := s.Ledger.CreateBooking(ctx, NewBooking{
		UserID:        userID,
		RoomID:        in.RoomID,
		CheckIn:       in.CheckIn,
		CheckOut:      in.CheckOut,
		Guests:        in.Guests,
		PaymentMethod: config.PAYMENT_METHOD_RAZORPAY,
	})
	if err != nil {
		return nil, err
	}
	result, err := s.openRazorpayOrder(ctx, booking, "booking_"+booking.ID)
	if err != nil {
		if delErr := s.Ledger.DeleteBooking(ctx, booking.ID); delErr != nil {
			log.Printf("[Razorpay] Compensating delete of booking %s failed: %s\n", booking.ID, delErr.Error())
		}
		return nil, err
	}
	return result, nil
}

// CreateRazorpayOrderForBooking opens a new gateway order for an existing unpaid booking.
func (s *Bookings) CreateRazorpayOrderForBooking(ctx context.Context, userID, bookingID string) (*RazorpayOrderResult, error) {
	if s.Razorpay == nil {
		return nil, types.ErrGatewayNotConfigured
	}
	booking, err := s.ownedBooking(ctx, userID, bookingID)
	if err != nil {
		return nil, err
	}
	if booking.IsPaid {
		return nil, types.ErrAlreadyPaid
	}
	return s.openRazorpayOrder(ctx, booking, "payment_"+booking.ID)
}

func (s *Bookings) openRazorpayOrder(ctx context.Context, booking *models.Booking, receipt string) (*RazorpayOrderResult, error) {
	order, err := s.Razorpay.CreateOrder(ctx, booking, OrderOptions{Receipt: receipt})
	if err != nil {
		return nil, err
	}
	if err := s.Ledger.AttachRazorpayOrder(ctx, booking.ID, order.OrderID); err != nil {
		return nil, fmt.Errorf("record order %s on booking %s: %w", order.OrderID, booking.ID, err)
	}
	result := &RazorpayOrderResult{
		OrderID:   order.OrderID,
		Amount:    order.Amount,
		Currency:  order.Currency,
		BookingID: booking.ID,
		KeyID:     s.Razorpay.KeyID(),
	}
	if booking.Hotel != nil {
		result.HotelName = booking.Hotel.Name
	}
	return result, nil
}

// VerifyRazorpayPayment checks the client-returned signature. A bad signature
// deletes the unpaid booking. A good signature for any order issued to the
// booking marks it paid and sends the confirmation.
// Replaying a verified payment returns the confirmed booking unchanged.
func (s *Bookings) VerifyRazorpayPayment(ctx context.Context, userID string, in VerifyPaymentInput) (*models.Booking, error) {
	if s.Razorpay == nil {
		return nil, types.ErrGatewayNotConfigured
	}
	if s.Locker != nil {
		key := "payment:verify:" + in.OrderID
		ok, err := s.Locker.Acquire(ctx, key, in.BookingID)
		switch {
		case err != nil:
			log.Printf("[Razorpay] Lock unavailable for order %s, continuing: %s\n", in.OrderID, err.Error())
		case !ok:
			return nil, types.ErrVerificationInProgress
		default:
			defer func() {
				if err := s.Locker.Release(context.WithoutCancel(ctx), key); err != nil {
					log.Printf("[Razorpay] Lock release for order %s failed: %s\n", in.OrderID, err.Error())
				}
			}()
		}
	}

	booking, err := s.ownedBooking(ctx, userID, in.BookingID)
	if err != nil {
		return nil, err
	}
	if booking.IsPaid {
		if booking.RazorpayPaymentID != nil && *booking.RazorpayPaymentID == in.PaymentID {
			return booking, nil
		}
		return nil, types.ErrAlreadyPaid
	}

	if !s.Razorpay.Verify(in.OrderID, in.PaymentID, in.Signature) {
		log.Printf("[Razorpay] Verification failed for booking %s order %s\n", booking.ID, in.OrderID)
		if _, err := s.Ledger.DeleteUnpaidBooking(ctx, booking.ID, userID); err != nil {
			log.Printf("[Razorpay] Compensating delete of booking %s failed: %s\n", booking.ID, err.Error())
		}
		return nil, types.ErrInvalidSignature
	}
	// A genuine signature over an order never issued for this booking is
	// refused without touching the booking.
	issued, err := s.Ledger.OrderIssuedFor(ctx, booking, in.OrderID)
	if err != nil {
		return nil, err
	}
	if !issued {
		log.Printf("[Razorpay] Order %s was not issued for booking %s\n", in.OrderID, booking.ID)
		return nil, types.ErrUnknownOrder
	}

	confirmed, applied, err := s.Ledger.MarkPaid(ctx, booking.ID, types.PAYMENT_COMPLETED, GatewayFields{
		PaymentMethod:     config.PAYMENT_METHOD_RAZORPAY,
		RazorpayOrderID:   &in.OrderID,
		RazorpayPaymentID: &in.PaymentID,
		RazorpaySignature: &in.Signature,
	})
	if err != nil {
		return nil, err
	}
	if !applied {
		if confirmed.RazorpayPaymentID != nil && *confirmed.RazorpayPaymentID == in.PaymentID {
			return confirmed, nil
		}
		return nil, types.ErrAlreadyPaid
	}
	log.Printf("[Razorpay] Booking %s confirmed with order %s\n", confirmed.ID, in.OrderID)
	s.Notifier.BookingConfirmed(ctx, confirmed)
	return confirmed, nil
}

// IsUserError reports whether err is a caller-facing outcome rather than a fault.
func IsUserError(err error) bool {
	for _, target := range []error{
		types.ErrInvalidDateRange,
		types.ErrInvalidDate,
		types.ErrInvalidGuests,
		types.ErrRoomNotAvailable,
		types.ErrRoomNotFound,
		types.ErrHotelNotFound,
		types.ErrBookingNotFound,
		types.ErrAlreadyPaid,
		types.ErrInvalidSignature,
		types.ErrUnknownOrder,
		types.ErrVerificationInProgress,
		types.ErrNoHotel,
	} {
		if errors.Is(err, target) {
			return true
		}
	}
	return false
}
