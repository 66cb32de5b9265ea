package common

import (
	"hbs/src/models"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestUpdateMissingHotelSlugs(t *testing.T) {
	gdb := newTestDB(t)
	f := seed(t, gdb, 100)
	require.NoError(t, gdb.Model(&models.Hotel{}).Where("id = ?", f.hotel.ID).Update("slug", "").Error)

	n, err := UpdateMissingHotelSlugs(gdb)
	require.NoError(t, err)
	assert.Equal(t, 1, n)

	var hotel models.Hotel
	require.NoError(t, gdb.First(&hotel, "id = ?", f.hotel.ID).Error)
	assert.Equal(t, "seaside-inn-goa", hotel.Slug)

	n, err = UpdateMissingHotelSlugs(gdb)
	require.NoError(t, err)
	assert.Equal(t, 0, n)
}
