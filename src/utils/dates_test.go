package utils

import (
	"hbs/src/types"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseDate(t *testing.T) {
	d, err := ParseDate("2024-01-10")
	require.NoError(t, err)
	assert.Equal(t, time.Date(2024, 1, 10, 0, 0, 0, 0, time.UTC), d)

	d, err = ParseDate("2024-01-10T12:00:00+05:30")
	require.NoError(t, err)
	assert.Equal(t, time.Date(2024, 1, 10, 6, 30, 0, 0, time.UTC), d)

	_, err = ParseDate("10/01/2024")
	assert.ErrorIs(t, err, types.ErrInvalidDate)
}

func TestParseStay(t *testing.T) {
	in, out, err := ParseStay("2024-01-10", "2024-01-13")
	require.NoError(t, err)
	assert.Equal(t, 72*time.Hour, out.Sub(in))

	_, _, err = ParseStay("2024-01-13", "2024-01-13")
	assert.ErrorIs(t, err, types.ErrInvalidDateRange)

	_, _, err = ParseStay("2024-01-13", "2024-01-10")
	assert.ErrorIs(t, err, types.ErrInvalidDateRange)

	_, _, err = ParseStay("", "2024-01-10")
	assert.ErrorIs(t, err, types.ErrInvalidDate)
}
