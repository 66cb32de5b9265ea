package main

import (
	"hbs/src/common"
	"hbs/src/middlewares"
	"hbs/src/types"
	"net/http"

	"github.com/gin-gonic/gin"
)

func publicBookingRoutes(g *gin.RouterGroup, svc *common.Bookings, limiter *middlewares.RateLimiter) *gin.RouterGroup {
	g.
		POST("/bookings/check-availability", limiter.Limit, func(ctx *gin.Context) {
			var body types.CheckAvailabilityRequestBody
			if err := ctx.ShouldBindJSON(&body); err != nil {
				abortWithError(ctx, "CheckAvailability", http.StatusBadRequest, err)
				return
			}
			stay, err := stayInput(body.Room, body.CheckInDate, body.CheckOutDate, 1)
			if err != nil {
				abortWithError(ctx, "CheckAvailability", http.StatusBadRequest, err)
				return
			}
			available, err := svc.Ledger.CheckAvailability(ctx.Request.Context(), stay.RoomID, stay.CheckIn, stay.CheckOut)
			if err != nil {
				abortWithError(ctx, "CheckAvailability", http.StatusInternalServerError, err)
				return
			}
			ctx.JSON(http.StatusOK, gin.H{"success": true, "isAvailable": available})
		})
	return g
}

func bookingHandlers(g *gin.RouterGroup, svc *common.Bookings) *gin.RouterGroup {
	g.
		POST("/bookings/book", func(ctx *gin.Context) {
			var body types.CreateBookingRequestBody
			if err := ctx.ShouldBindJSON(&body); err != nil {
				abortWithError(ctx, "Book", http.StatusBadRequest, err)
				return
			}
			stay, err := stayInput(body.Room, body.CheckInDate, body.CheckOutDate, body.Guests)
			if err != nil {
				abortWithError(ctx, "Book", http.StatusBadRequest, err)
				return
			}
			booking, err := svc.Book(ctx.Request.Context(), ctx.GetString("id"), stay)
			if err != nil {
				abortWithError(ctx, "Book", http.StatusInternalServerError, err)
				return
			}
			ctx.JSON(http.StatusCreated, gin.H{
				"success":   true,
				"message":   "Booking created successfully",
				"bookingId": booking.ID,
			})
		}).
		GET("/bookings/user", func(ctx *gin.Context) {
			bookings, err := svc.Ledger.UserBookings(ctx.Request.Context(), ctx.GetString("id"))
			if err != nil {
				abortWithError(ctx, "UserBookings", http.StatusInternalServerError, err)
				return
			}
			ctx.JSON(http.StatusOK, gin.H{"success": true, "bookings": bookings})
		}).
		GET("/bookings/hotel", middlewares.RequireOwner, func(ctx *gin.Context) {
			dashboard, err := svc.Ledger.HotelDashboard(ctx.Request.Context(), ctx.GetString("id"))
			if err != nil {
				abortWithError(ctx, "HotelBookings", http.StatusInternalServerError, err)
				return
			}
			ctx.JSON(http.StatusOK, gin.H{"success": true, "dashboardData": dashboard})
		})
	return g
}
