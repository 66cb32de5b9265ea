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

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// Ledger is the system of record for bookings and their payment state.
type Ledger struct {
	db           *gorm.DB
	availability *AvailabilityChecker
}

func NewLedger(db *gorm.DB, availability *AvailabilityChecker) *Ledger {
	if availability == nil {
		availability = NewAvailabilityChecker()
	}
	return &Ledger{db: db, availability: availability}
}

type NewBooking struct {
	UserID        string
	RoomID        string
	CheckIn       time.Time
	CheckOut      time.Time
	Guests        int
	PaymentMethod string
}

type GatewayFields struct {
	PaymentMethod     string
	RazorpayOrderID   *string
	RazorpayPaymentID *string
	RazorpaySignature *string
	CheckoutSessionID *string
}

type Dashboard struct {
	TotalBookings int              `json:"totalBookings"`
	TotalRevenue  float64          `json:"totalRevenue"`
	Bookings      []models.Booking `json:"bookings"`
}

func (l *Ledger) DB() *gorm.DB {
	return l.db
}

func (l *Ledger) CheckAvailability(ctx context.Context, roomID string, checkIn, checkOut time.Time) (bool, error) {
	if !checkOut.After(checkIn) {
		return false, types.ErrInvalidDateRange
	}
	return l.availability.IsAvailable(ctx, l.db, roomID, checkIn, checkOut)
}

// CreateBooking locks the room row, re-checks availability and inserts the
// booking in one transaction so concurrent requests for the same room serialize.
func (l *Ledger) CreateBooking(ctx context.Context, in NewBooking) (*models.Booking, error) {
	if in.Guests < 1 {
		return nil, types.ErrInvalidGuests
	}
	if !in.CheckOut.After(in.CheckIn) {
		return nil, types.ErrInvalidDateRange
	}
	if in.PaymentMethod == "" {
		in.PaymentMethod = config.DEFAULT_PAYMENT_METHOD
	}

	var booking models.Booking
	err := l.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		var room models.Room
		if err := tx.
			Clauses(clause.Locking{Strength: "UPDATE"}).
			Where("id = ?", in.RoomID).
			First(&room).
			Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return types.ErrRoomNotFound
			}
			return err
		}
		var hotel models.Hotel
		if err := tx.Where("id = ?", room.HotelID).First(&hotel).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return types.ErrHotelNotFound
			}
			return err
		}
		var user models.User
		if err := tx.Where("id = ?", in.UserID).First(&user).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return types.ErrUserNotFound
			}
			return err
		}

		available, err := l.availability.IsAvailable(ctx, tx, room.ID, in.CheckIn, in.CheckOut)
		if err != nil {
			return err
		}
		if !available {
			return types.ErrRoomNotAvailable
		}
		total, err := ComputeTotal(room.PricePerNight, in.CheckIn, in.CheckOut)
		if err != nil {
			return err
		}

		booking = models.Booking{
			UserID:        user.ID,
			RoomID:        room.ID,
			HotelID:       hotel.ID,
			CheckInDate:   in.CheckIn,
			CheckOutDate:  in.CheckOut,
			TotalPrice:    total,
			Guests:        in.Guests,
			Status:        types.BOOKING_PENDING,
			PaymentMethod: in.PaymentMethod,
			IsPaid:        false,
			PaymentStatus: types.PAYMENT_PENDING,
		}
		if err := tx.Create(&booking).Error; err != nil {
			return err
		}
		booking.Room = &room
		booking.Hotel = &hotel
		booking.User = &user
		return nil
	})
	if err != nil {
		return nil, err
	}
	log.Printf("[Ledger] Booking %s created for room %s\n", booking.ID, booking.RoomID)
	return &booking, nil
}

func (l *Ledger) GetBooking(ctx context.Context, bookingID string) (*models.Booking, error) {
	var booking models.Booking
	err := l.db.WithContext(ctx).
		Preload("Room").
		Preload("Hotel").
		Preload("User").
		Where("id = ?", bookingID).
		First(&booking).
		Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, types.ErrBookingNotFound
		}
		return nil, err
	}
	return &booking, nil
}

// UserBookings lists a user's bookings newest first.
func (l *Ledger) UserBookings(ctx context.Context, userID string) ([]models.Booking, error) {
	bookings := make([]models.Booking, 0)
	err := l.db.WithContext(ctx).
		Preload("Room").
		Preload("Hotel").
		Where("user_id = ?", userID).
		Order("created_at DESC").
		Find(&bookings).
		Error
	return bookings, err
}

func (l *Ledger) OwnedHotelIDs(ctx context.Context, ownerID string) ([]string, error) {
	var ids []string
	err := l.db.WithContext(ctx).
		Model(&models.Hotel{}).
		Where("owner_id = ?", ownerID).
		Order("created_at ASC").
		Pluck("id", &ids).
		Error
	return ids, err
}

// HotelDashboard aggregates bookings across every hotel the owner has.
// Returns types.ErrNoHotel when the owner has none.
func (l *Ledger) HotelDashboard(ctx context.Context, ownerID string) (*Dashboard, error) {
	hotelIDs, err := l.OwnedHotelIDs(ctx, ownerID)
	if err != nil {
		return nil, err
	}
	if len(hotelIDs) == 0 {
		return nil, types.ErrNoHotel
	}
	bookings := make([]models.Booking, 0)
	err = l.db.WithContext(ctx).
		Preload("Room").
		Preload("Hotel").
		Preload("User").
		Where("hotel_id IN ?", hotelIDs).
		Order("created_at DESC").
		Find(&bookings).
		Error
	if err != nil {
		return nil, err
	}
	dashboard := &Dashboard{
		TotalBookings: len(bookings),
		Bookings:      bookings,
	}
	for _, b := range bookings {
		dashboard.TotalRevenue += b.TotalPrice
	}
	return dashboard, nil
}

// AttachRazorpayOrder makes orderID the booking's current order and adds it
// to the booking's order history. Paid bookings are left untouched.
func (l *Ledger) AttachRazorpayOrder(ctx context.Context, bookingID, orderID string) error {
	return l.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		res := tx.Model(&models.Booking{}).
			Where("id = ? AND is_paid = ?", bookingID, false).
			Updates(map[string]any{
				"razorpay_order_id": orderID,
				"payment_method":    config.PAYMENT_METHOD_RAZORPAY,
			})
		if res.Error != nil || res.RowsAffected == 0 {
			return res.Error
		}
		return tx.Create(&models.PaymentOrder{BookingID: bookingID, OrderID: orderID}).Error
	})
}

// OrderIssuedFor reports whether orderID was ever issued for the booking.
func (l *Ledger) OrderIssuedFor(ctx context.Context, booking *models.Booking, orderID string) (bool, error) {
	if booking.RazorpayOrderID != nil && *booking.RazorpayOrderID == orderID {
		return true, nil
	}
	var count int64
	err := l.db.WithContext(ctx).
		Model(&models.PaymentOrder{}).
		Where("booking_id = ? AND order_id = ?", booking.ID, orderID).
		Count(&count).
		Error
	return count > 0, err
}

func (l *Ledger) AttachCheckoutSession(ctx context.Context, bookingID, sessionID string) error {
	return l.db.WithContext(ctx).
		Model(&models.Booking{}).
		Where("id = ? AND is_paid = ?", bookingID, false).
		Update("checkout_session_id", sessionID).
		Error
}

// MarkPaid applies a payment outcome to an unpaid booking. The update is
// conditional on is_paid being false, so applied is true for exactly one caller.
func (l *Ledger) MarkPaid(ctx context.Context, bookingID string, status types.PaymentStatus, fields GatewayFields) (*models.Booking, bool, error) {
	updates := map[string]any{
		"payment_status": status,
	}
	if status == types.PAYMENT_COMPLETED {
		updates["is_paid"] = true
		updates["status"] = types.BOOKING_CONFIRMED
	}
	if fields.PaymentMethod != "" {
		updates["payment_method"] = fields.PaymentMethod
	}
	if fields.RazorpayOrderID != nil {
		updates["razorpay_order_id"] = *fields.RazorpayOrderID
	}
	if fields.RazorpayPaymentID != nil {
		updates["razorpay_payment_id"] = *fields.RazorpayPaymentID
	}
	if fields.RazorpaySignature != nil {
		updates["razorpay_signature"] = *fields.RazorpaySignature
	}
	if fields.CheckoutSessionID != nil {
		updates["checkout_session_id"] = *fields.CheckoutSessionID
	}

	res := l.db.WithContext(ctx).
		Model(&models.Booking{}).
		Where("id = ? AND is_paid = ?", bookingID, false).
		Updates(updates)
	if res.Error != nil {
		return nil, false, fmt.Errorf("mark booking %s paid: %w", bookingID, res.Error)
	}
	booking, err := l.GetBooking(ctx, bookingID)
	if err != nil {
		return nil, false, err
	}
	return booking, res.RowsAffected == 1, nil
}

func (l *Ledger) DeleteBooking(ctx context.Context, bookingID string) error {
	res := l.db.WithContext(ctx).
		Where("id = ?", bookingID).
		Delete(&models.Booking{})
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return types.ErrBookingNotFound
	}
	log.Printf("[Ledger] Booking %s deleted\n", bookingID)
	return nil
}

// DeleteUnpaidBooking removes the booking only while it is unpaid and owned by userID.
func (l *Ledger) DeleteUnpaidBooking(ctx context.Context, bookingID, userID string) (bool, error) {
	res := l.db.WithContext(ctx).
		Where("id = ? AND user_id = ? AND is_paid = ?", bookingID, userID, false).
		Delete(&models.Booking{})
	if res.Error != nil {
		return false, res.Error
	}
	if res.RowsAffected == 1 {
		log.Printf("[Ledger] Unpaid booking %s deleted\n", bookingID)
	}
	return res.RowsAffected == 1, nil
}

// ConfirmedCheckIns returns confirmed bookings whose check-in falls on the given UTC day.
func (l *Ledger) ConfirmedCheckIns(ctx context.Context, on time.Time) ([]models.Booking, error) {
	start := time.Date(on.Year(), on.Month(), on.Day(), 0, 0, 0, 0, time.UTC)
	bookings := make([]models.Booking, 0)
	err := l.db.WithContext(ctx).
		Preload("Room").
		Preload("Hotel").
		Preload("User").
		Where("status = ?", types.BOOKING_CONFIRMED).
		Where("check_in_date >= ? AND check_in_date < ?", start, start.Add(day)).
		Order("check_in_date ASC").
		Find(&bookings).
		Error
	return bookings, err
}

// GrantOwnerRole promotes a user to hotel owner. It is a no-op for users who
// already own, and fails with types.ErrUserNotFound for unknown users.
func GrantOwnerRole(tx *gorm.DB, userID string) (*models.User, error) {
	var user models.User
	if err := tx.Where("id = ?", userID).First(&user).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, types.ErrUserNotFound
		}
		return nil, err
	}
	if user.IsOwner() {
		return &user, nil
	}
	if err := tx.
		Model(&models.User{}).
		Where("id = ?", user.ID).
		Update("role", types.ROLE_ADMIN).
		Error; err != nil {
		return nil, err
	}
	user.Role = types.ROLE_ADMIN
	log.Printf("[Roles] User %s granted owner role\n", user.ID)
	return &user, nil
}
