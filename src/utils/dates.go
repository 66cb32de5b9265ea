package utils

import (
	"fmt"
	"hbs/src/config"
	"hbs/src/types"
	"strings"
	"time"
)

// ParseDate accepts YYYY-MM-DD or RFC 3339 and returns the instant in UTC.
func ParseDate(value string) (time.Time, error) {
	value = strings.TrimSpace(value)
	if t, err := time.Parse(config.DATE_FORMAT, value); err == nil {
		return t.UTC(), nil
	}
	t, err := time.Parse(time.RFC3339, value)
	if err != nil {
		return time.Time{}, fmt.Errorf("%w: %q", types.ErrInvalidDate, value)
	}
	return t.UTC(), nil
}

// ParseStay parses a check-in/check-out pair and requires check-out to be strictly later.
func ParseStay(checkIn, checkOut string) (time.Time, time.Time, error) {
	in, err := ParseDate(checkIn)
	if err != nil {
		return time.Time{}, time.Time{}, err
	}
	out, err := ParseDate(checkOut)
	if err != nil {
		return time.Time{}, time.Time{}, err
	}
	if !out.After(in) {
		return time.Time{}, time.Time{}, types.ErrInvalidDateRange
	}
	return in, out, nil
}
