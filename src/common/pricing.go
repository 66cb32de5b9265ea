package common

import (
	"hbs/src/types"
	"math"
	"time"
)

const day = 24 * time.Hour

// Nights rounds a partial day up to a full night.
func Nights(checkIn, checkOut time.Time) int {
	return int(math.Ceil(float64(checkOut.Sub(checkIn)) / float64(day)))
}

func ComputeTotal(perNightRate float64, checkIn, checkOut time.Time) (float64, error) {
	if perNightRate <= 0 {
		return 0, types.ErrInvalidRate
	}
	nights := Nights(checkIn, checkOut)
	if nights < 1 {
		return 0, types.ErrInvalidDateRange
	}
	return perNightRate * float64(nights), nil
}

// MinorUnits converts a price to the gateway's smallest currency unit.
func MinorUnits(amount float64) int64 {
	return int64(math.Round(amount * 100))
}
