package common

import (
	"context"
	"fmt"
	"hbs/src/config"
	"hbs/src/models"
	"hbs/src/types"
	"time"

	"gorm.io/gorm"
)

// AvailabilityChecker reports whether a room has no booking overlapping a stay.
// Overlap is closed on both ends: a stay ending on the day another begins conflicts.
type AvailabilityChecker struct {
	// IncludeCancelled counts cancelled bookings as occupancy.
	IncludeCancelled bool
}

func NewAvailabilityChecker() *AvailabilityChecker {
	return &AvailabilityChecker{IncludeCancelled: config.CancelledBlocksAvailability()}
}

// IsAvailable fails closed: any query error is returned and never reported as available.
func (a *AvailabilityChecker) IsAvailable(ctx context.Context, tx *gorm.DB, roomID string, checkIn, checkOut time.Time) (bool, error) {
	q := tx.WithContext(ctx).
		Model(&models.Booking{}).
		Where("room_id = ?", roomID).
		Where("check_in_date <= ? AND check_out_date >= ?", checkOut, checkIn)
	if !a.IncludeCancelled {
		q = q.Where("status <> ?", types.BOOKING_CANCELLED)
	}
	var count int64
	if err := q.Count(&count).Error; err != nil {
		return false, fmt.Errorf("availability check for room %s: %w", roomID, err)
	}
	return count == 0, nil
}
