package types

import "errors"

var (
	ErrInvalidDateRange       = errors.New("check-out date must be after check-in date")
	ErrInvalidDate            = errors.New("invalid date")
	ErrInvalidGuests          = errors.New("guests must be a positive number")
	ErrInvalidRate            = errors.New("price per night must be positive")
	ErrRoomNotAvailable       = errors.New("room is not available")
	ErrRoomNotFound           = errors.New("room not found")
	ErrHotelNotFound          = errors.New("hotel not found")
	ErrNoHotel                = errors.New("no hotel found")
	ErrBookingNotFound        = errors.New("booking not found")
	ErrAlreadyPaid            = errors.New("booking already paid")
	ErrInvalidSignature       = errors.New("invalid payment signature")
	ErrUnknownOrder           = errors.New("payment order does not belong to this booking")
	ErrVerificationInProgress = errors.New("payment verification already in progress")
	ErrNotOwner               = errors.New("admin privileges required")
	ErrFeedbackNotFound       = errors.New("feedback not found")
	ErrUserNotFound           = errors.New("user not found")
	ErrGatewayNotConfigured   = errors.New("payment gateway is not configured")
)
