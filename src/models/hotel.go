package models

import (
	"hbs/src/types"

	"github.com/gosimple/slug"
	"gorm.io/gorm"
)

type Hotel struct {
	ID      string `gorm:"primarykey;size:36" json:"id"`
	Name    string `json:"name"`
	Address string `json:"address"`
	Contact string `json:"contact"`
	City    string `gorm:"index" json:"city"`
	OwnerID string `gorm:"index;size:64" json:"ownerId"`
	Slug    string `gorm:"index" json:"slug"`

	Owner *User  `gorm:"foreignKey:OwnerID" json:"owner,omitempty"`
	Rooms []Room `gorm:"foreignKey:HotelID" json:"-"`

	types.Timestamps
}

func (h *Hotel) BeforeCreate(tx *gorm.DB) error {
	newID(&h.ID)
	if h.Slug == "" {
		h.Slug = slug.Make(h.Name + " " + h.City)
	}
	return nil
}
