package types

import (
	"time"

	"gorm.io/gorm"
)

type Timestamps struct {
	CreatedAt time.Time      `json:"createdAt,omitempty"`
	UpdatedAt time.Time      `json:"updatedAt,omitempty"`
	DeletedAt gorm.DeletedAt `gorm:"index" json:"-"`
}

type JSONB map[string]any

type CheckAvailabilityRequestBody struct {
	Room         string `json:"room" binding:"required"`
	CheckInDate  string `json:"checkInDate" binding:"required,bookingdate"`
	CheckOutDate string `json:"checkOutDate" binding:"required,bookingdate,afterdate=CheckInDate"`
}

type CreateBookingRequestBody struct {
	Room         string `json:"room" binding:"required"`
	CheckInDate  string `json:"checkInDate" binding:"required,bookingdate"`
	CheckOutDate string `json:"checkOutDate" binding:"required,bookingdate,afterdate=CheckInDate"`
	Guests       int    `json:"guests" binding:"required,min=1"`
}

type BookingIDRequestBody struct {
	BookingID string `json:"bookingId" binding:"required"`
}

type VerifyRazorpayPaymentRequestBody struct {
	OrderID   string `json:"razorpay_order_id" binding:"required"`
	PaymentID string `json:"razorpay_payment_id" binding:"required"`
	Signature string `json:"razorpay_signature" binding:"required"`
	BookingID string `json:"bookingId" binding:"required"`
}

type RegisterHotelRequestBody struct {
	Name    string `json:"name" binding:"required"`
	Address string `json:"address" binding:"required"`
	Contact string `json:"contact" binding:"required"`
	City    string `json:"city" binding:"required"`
}

type CreateRoomForm struct {
	RoomType      string  `form:"roomType" binding:"required"`
	PricePerNight float64 `form:"pricePerNight" binding:"required,gt=0"`
	Amenities     string  `form:"amenities"`
	HotelID       string  `form:"hotelId"`
}

type ToggleRoomRequestBody struct {
	RoomID string `json:"roomId" binding:"required"`
}

type RecentSearchRequestBody struct {
	RecentSearchedCity string `json:"recentSearchedCity" binding:"required"`
}

type SubmitFeedbackRequestBody struct {
	Rating   int    `json:"rating" binding:"required,min=1,max=5"`
	Review   string `json:"review" binding:"required,max=500"`
	Location string `json:"location,omitempty"`
}

type FeedbackRequestParams struct {
	FeedbackID string `uri:"feedbackId" binding:"required"`
}

type Role string

const (
	ROLE_USER  Role = "user"
	ROLE_ADMIN Role = "admin"
)

type BookingStatus string

const (
	BOOKING_PENDING   BookingStatus = "pending"
	BOOKING_CONFIRMED BookingStatus = "confirmed"
	BOOKING_CANCELLED BookingStatus = "cancelled"
)

type PaymentStatus string

const (
	PAYMENT_PENDING   PaymentStatus = "pending"
	PAYMENT_COMPLETED PaymentStatus = "completed"
	PAYMENT_FAILED    PaymentStatus = "failed"
)
