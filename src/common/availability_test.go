package common

import (
	"context"
	"hbs/src/models"
	"hbs/src/types"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestIsAvailable(t *testing.T) {
	gdb := newTestDB(t)
	f := seed(t, gdb, 100)
	ctx := context.Background()
	require.NoError(t, gdb.Create(&models.Booking{
		UserID: f.guest.ID, RoomID: f.room.ID, HotelID: f.hotel.ID,
		CheckInDate: date("2024-01-10"), CheckOutDate: date("2024-01-13"),
		TotalPrice: 300, Guests: 2, Status: types.BOOKING_PENDING, PaymentStatus: types.PAYMENT_PENDING,
	}).Error)

	checker := &AvailabilityChecker{IncludeCancelled: true}
	cases := []struct {
		name      string
		in, out   string
		available bool
	}{
		{"before", "2024-01-05", "2024-01-09", true},
		{"after", "2024-01-14", "2024-01-16", true},
		{"overlapping tail", "2024-01-12", "2024-01-15", false},
		{"overlapping head", "2024-01-08", "2024-01-11", false},
		{"enclosing", "2024-01-01", "2024-01-31", false},
		{"checkout on existing check-in", "2024-01-08", "2024-01-10", false},
		{"check-in on existing checkout", "2024-01-13", "2024-01-15", false},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			ok, err := checker.IsAvailable(ctx, gdb, f.room.ID, date(tc.in), date(tc.out))
			require.NoError(t, err)
			assert.Equal(t, tc.available, ok)
		})
	}

	ok, err := checker.IsAvailable(ctx, gdb, "another-room", date("2024-01-10"), date("2024-01-13"))
	require.NoError(t, err)
	assert.True(t, ok)
}

func TestIsAvailableCancelledFlag(t *testing.T) {
	gdb := newTestDB(t)
	f := seed(t, gdb, 100)
	ctx := context.Background()
	require.NoError(t, gdb.Create(&models.Booking{
		UserID: f.guest.ID, RoomID: f.room.ID, HotelID: f.hotel.ID,
		CheckInDate: date("2024-02-01"), CheckOutDate: date("2024-02-03"),
		TotalPrice: 200, Guests: 1, Status: types.BOOKING_CANCELLED, PaymentStatus: types.PAYMENT_FAILED,
	}).Error)

	ok, err := (&AvailabilityChecker{IncludeCancelled: true}).IsAvailable(ctx, gdb, f.room.ID, date("2024-02-02"), date("2024-02-04"))
	require.NoError(t, err)
	assert.False(t, ok)

	ok, err = (&AvailabilityChecker{IncludeCancelled: false}).IsAvailable(ctx, gdb, f.room.ID, date("2024-02-02"), date("2024-02-04"))
	require.NoError(t, err)
	assert.True(t, ok)
}

func TestIsAvailableFailsClosed(t *testing.T) {
	gdb := newTestDB(t)
	sqlDB, err := gdb.DB()
	require.NoError(t, err)
	require.NoError(t, sqlDB.Close())

	ok, err := (&AvailabilityChecker{IncludeCancelled: true}).IsAvailable(context.Background(), gdb, "room", date("2024-01-01"), date("2024-01-02"))
	assert.Error(t, err)
	assert.False(t, ok)
}

func TestNewAvailabilityCheckerReadsFlag(t *testing.T) {
	t.Setenv("CANCELLED_BLOCKS_AVAILABILITY", "")
	assert.True(t, NewAvailabilityChecker().IncludeCancelled)
	t.Setenv("CANCELLED_BLOCKS_AVAILABILITY", "false")
	assert.False(t, NewAvailabilityChecker().IncludeCancelled)
}
