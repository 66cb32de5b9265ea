package main

import (
	"errors"
	"hbs/src/common"
	"hbs/src/types"
	"hbs/src/utils"
	"log"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/go-playground/validator/v10"
)

const noHotelMessage = "No Hotel found"

func failure(ctx *gin.Context, status int, message string) {
	ctx.JSON(status, gin.H{"success": false, "message": message})
}

// errorResponse maps an operation error to the status and message returned to the caller.
func errorResponse(status int, err error) (int, string) {
	var verr validator.ValidationErrors
	switch {
	case errors.Is(err, types.ErrNoHotel):
		return http.StatusOK, noHotelMessage
	case errors.Is(err, types.ErrRoomNotAvailable):
		return http.StatusConflict, "Room is not available"
	case errors.Is(err, types.ErrBookingNotFound):
		return http.StatusNotFound, "Booking not found"
	case errors.Is(err, types.ErrAlreadyPaid):
		return http.StatusConflict, "Booking already paid"
	case errors.Is(err, types.ErrInvalidSignature):
		return http.StatusBadRequest, "Payment verification failed - Invalid signature"
	case errors.Is(err, types.ErrUnknownOrder):
		return http.StatusBadRequest, "Payment verification failed - Order does not match booking"
	case errors.Is(err, types.ErrVerificationInProgress):
		return http.StatusConflict, "Payment verification already in progress"
	case errors.Is(err, types.ErrGatewayNotConfigured):
		return http.StatusServiceUnavailable, err.Error()
	case errors.Is(err, types.ErrRoomNotFound),
		errors.Is(err, types.ErrHotelNotFound),
		errors.Is(err, types.ErrFeedbackNotFound),
		errors.Is(err, types.ErrUserNotFound):
		return http.StatusNotFound, err.Error()
	case errors.As(err, &verr),
		errors.Is(err, types.ErrInvalidDate),
		errors.Is(err, types.ErrInvalidDateRange),
		errors.Is(err, types.ErrInvalidGuests),
		errors.Is(err, types.ErrInvalidRate):
		return http.StatusBadRequest, err.Error()
	}
	if status == 0 || status < http.StatusBadRequest {
		status = http.StatusInternalServerError
	}
	if status >= http.StatusInternalServerError {
		return status, "Something went wrong. Please try again"
	}
	return status, err.Error()
}

// abortWithError logs faults and writes the uniform failure body.
func abortWithError(ctx *gin.Context, tag string, status int, err error) {
	status, message := errorResponse(status, err)
	if !common.IsUserError(err) {
		log.Printf("[%s] error: %s\n", tag, err.Error())
	}
	failure(ctx, status, message)
}

func stayInput(room, checkIn, checkOut string, guests int) (common.StayInput, error) {
	in, out, err := utils.ParseStay(checkIn, checkOut)
	if err != nil {
		return common.StayInput{}, err
	}
	return common.StayInput{RoomID: room, CheckIn: in, CheckOut: out, Guests: guests}, nil
}
