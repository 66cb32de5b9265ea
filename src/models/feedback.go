package models

import (
	"hbs/src/types"

	"gorm.io/gorm"
)

type Feedback struct {
	ID         string `gorm:"primarykey;size:36" json:"id"`
	UserID     string `gorm:"index;size:64;not null" json:"user"`
	UserName   string `json:"userName"`
	UserEmail  string `json:"userEmail"`
	UserImage  string `json:"userImage,omitempty"`
	Rating     int    `gorm:"not null" json:"rating"`
	Review     string `gorm:"size:500;not null" json:"review"`
	Location   string `json:"location"`
	IsApproved bool   `gorm:"index" json:"isApproved"`

	types.Timestamps
}

func (f *Feedback) BeforeCreate(tx *gorm.DB) error {
	newID(&f.ID)
	return nil
}
