package models

import (
	"hbs/src/types"

	"gorm.io/gorm"
)

type Room struct {
	ID            string   `gorm:"primarykey;size:36" json:"id"`
	HotelID       string   `gorm:"index;size:36" json:"hotelId"`
	RoomType      string   `json:"roomType"`
	PricePerNight float64  `json:"pricePerNight"`
	Amenities     []string `gorm:"serializer:json" json:"amenities"`
	Images        []string `gorm:"serializer:json" json:"images"`
	IsAvailable   bool     `json:"isAvailable"`

	Hotel *Hotel `gorm:"foreignKey:HotelID" json:"hotel,omitempty"`

	types.Timestamps
}

func (r *Room) BeforeCreate(tx *gorm.DB) error {
	newID(&r.ID)
	return nil
}
