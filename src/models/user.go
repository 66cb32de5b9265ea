package models

import (
	"hbs/src/types"
)

type User struct {
	ID                   string     `gorm:"primarykey;size:64" json:"id"`
	Username             string     `json:"username,omitempty"`
	Email                string     `json:"email,omitempty"`
	Image                string     `json:"image,omitempty"`
	Role                 types.Role `gorm:"size:16;default:'user'" json:"role,omitempty"`
	RecentSearchedCities []string   `gorm:"serializer:json" json:"recentSearchedCities"`

	Bookings []Booking `gorm:"foreignKey:UserID" json:"-"`
	Hotels   []Hotel   `gorm:"foreignKey:OwnerID" json:"-"`

	types.Timestamps
}

func (u *User) IsOwner() bool {
	return u.Role == types.ROLE_ADMIN
}

// PushRecentCity appends city and drops the oldest entries beyond max.
func (u *User) PushRecentCity(city string, max int) {
	u.RecentSearchedCities = append(u.RecentSearchedCities, city)
	if over := len(u.RecentSearchedCities) - max; over > 0 {
		u.RecentSearchedCities = u.RecentSearchedCities[over:]
	}
}
