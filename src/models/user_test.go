package models

import (
	"hbs/src/types"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestPushRecentCityKeepsLatest(t *testing.T) {
	u := &User{}
	for _, city := range []string{"Goa", "Pune", "Delhi", "Jaipur"} {
		u.PushRecentCity(city, 3)
	}
	assert.Equal(t, []string{"Pune", "Delhi", "Jaipur"}, u.RecentSearchedCities)

	u.PushRecentCity("Agra", 3)
	assert.Equal(t, []string{"Delhi", "Jaipur", "Agra"}, u.RecentSearchedCities)
}

func TestIsOwner(t *testing.T) {
	assert.False(t, (&User{Role: types.ROLE_USER}).IsOwner())
	assert.True(t, (&User{Role: types.ROLE_ADMIN}).IsOwner())
}
