package models

import (
	"time"

	"gorm.io/gorm"
)

// PaymentOrder records every gateway order issued for a booking. A booking
// only stores its latest order id, so a payment against an earlier order is
// matched here.
type PaymentOrder struct {
	ID        string    `gorm:"primarykey;size:36" json:"id"`
	BookingID string    `gorm:"index;size:36" json:"bookingId"`
	OrderID   string    `gorm:"uniqueIndex;size:64" json:"orderId"`
	CreatedAt time.Time `json:"createdAt"`
}

func (o *PaymentOrder) BeforeCreate(tx *gorm.DB) error {
	newID(&o.ID)
	return nil
}
