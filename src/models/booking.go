package models

import (
	"hbs/src/types"
	"time"

	"gorm.io/gorm"
)

type Booking struct {
	ID            string              `gorm:"primarykey;size:36" json:"id"`
	UserID        string              `gorm:"index;size:64" json:"userId"`
	RoomID        string              `gorm:"index:idx_booking_room_stay;size:36" json:"roomId"`
	HotelID       string              `gorm:"index;size:36" json:"hotelId"`
	CheckInDate   time.Time           `gorm:"index:idx_booking_room_stay" json:"checkInDate"`
	CheckOutDate  time.Time           `gorm:"index:idx_booking_room_stay" json:"checkOutDate"`
	TotalPrice    float64             `json:"totalPrice"`
	Guests        int                 `json:"guests"`
	Status        types.BookingStatus `gorm:"size:16;default:'pending'" json:"status"`
	PaymentMethod string              `gorm:"size:32" json:"paymentMethod"`
	IsPaid        bool                `json:"isPaid"`
	PaymentStatus types.PaymentStatus `gorm:"size:16;default:'pending'" json:"paymentStatus"`

	RazorpayOrderID   *string `gorm:"index" json:"razorpayOrderId,omitempty"`
	RazorpayPaymentID *string `json:"razorpayPaymentId,omitempty"`
	RazorpaySignature *string `json:"-"`
	CheckoutSessionID *string `gorm:"index" json:"-"`

	User  *User  `gorm:"foreignKey:UserID" json:"user,omitempty"`
	Room  *Room  `gorm:"foreignKey:RoomID" json:"room,omitempty"`
	Hotel *Hotel `gorm:"foreignKey:HotelID" json:"hotel,omitempty"`

	types.Timestamps
}

func (b *Booking) BeforeCreate(tx *gorm.DB) error {
	newID(&b.ID)
	return nil
}
