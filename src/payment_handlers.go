package main

import (
	"errors"
	"hbs/src/common"
	"hbs/src/config"
	"hbs/src/types"
	"io"
	"log"
	"net/http"

	"github.com/gin-gonic/gin"
)

func razorpayOrderResponse(r *common.RazorpayOrderResult) gin.H {
	return gin.H{
		"success":   true,
		"orderId":   r.OrderID,
		"amount":    r.Amount,
		"currency":  r.Currency,
		"bookingId": r.BookingID,
		"hotelName": r.HotelName,
		"keyId":     r.KeyID,
	}
}

func paymentHandlers(g *gin.RouterGroup, svc *common.Bookings) *gin.RouterGroup {
	g.
		POST("/bookings/stripe-payment", func(ctx *gin.Context) {
			var body types.BookingIDRequestBody
			if err := ctx.ShouldBindJSON(&body); err != nil {
				abortWithError(ctx, "StripePayment", http.StatusBadRequest, err)
				return
			}
			origin := ctx.GetHeader("Origin")
			if origin == "" {
				origin = config.GetEnv("APP_HOST", "http://localhost:5173")
			}
			url, err := svc.StripeCheckout(ctx.Request.Context(), ctx.GetString("id"), body.BookingID, origin)
			if err != nil {
				abortWithError(ctx, "StripePayment", http.StatusBadGateway, err)
				return
			}
			ctx.JSON(http.StatusOK, gin.H{"success": true, "url": url})
		}).
		POST("/bookings/razorpay-order", func(ctx *gin.Context) {
			var body types.CreateBookingRequestBody
			if err := ctx.ShouldBindJSON(&body); err != nil {
				abortWithError(ctx, "RazorpayOrder", http.StatusBadRequest, err)
				return
			}
			stay, err := stayInput(body.Room, body.CheckInDate, body.CheckOutDate, body.Guests)
			if err != nil {
				abortWithError(ctx, "RazorpayOrder", http.StatusBadRequest, err)
				return
			}
			result, err := svc.CreateRazorpayOrder(ctx.Request.Context(), ctx.GetString("id"), stay)
			if err != nil {
				abortWithError(ctx, "RazorpayOrder", http.StatusBadGateway, err)
				return
			}
			ctx.JSON(http.StatusOK, razorpayOrderResponse(result))
		}).
		POST("/bookings/razorpay-payment", func(ctx *gin.Context) {
			var body types.BookingIDRequestBody
			if err := ctx.ShouldBindJSON(&body); err != nil {
				abortWithError(ctx, "RazorpayPayment", http.StatusBadRequest, err)
				return
			}
			result, err := svc.CreateRazorpayOrderForBooking(ctx.Request.Context(), ctx.GetString("id"), body.BookingID)
			if err != nil {
				abortWithError(ctx, "RazorpayPayment", http.StatusBadGateway, err)
				return
			}
			ctx.JSON(http.StatusOK, razorpayOrderResponse(result))
		}).
		POST("/bookings/verify-razorpay-payment", func(ctx *gin.Context) {
			var body types.VerifyRazorpayPaymentRequestBody
			if err := ctx.ShouldBindJSON(&body); err != nil {
				abortWithError(ctx, "VerifyRazorpayPayment", http.StatusBadRequest, err)
				return
			}
			booking, err := svc.VerifyRazorpayPayment(ctx.Request.Context(), ctx.GetString("id"), common.VerifyPaymentInput{
				OrderID:   body.OrderID,
				PaymentID: body.PaymentID,
				Signature: body.Signature,
				BookingID: body.BookingID,
			})
			if err != nil {
				abortWithError(ctx, "VerifyRazorpayPayment", http.StatusInternalServerError, err)
				return
			}
			ctx.JSON(http.StatusOK, gin.H{
				"success":   true,
				"message":   "Payment verified and booking confirmed",
				"bookingId": booking.ID,
			})
		})
	return g
}

// stripeWebhookRoute is public; the Stripe-Signature header authenticates the caller.
func stripeWebhookRoute(g *gin.Engine, svc *common.Bookings) *gin.RouterGroup {
	apiv1 := apiv1Group(g)
	apiv1.POST("/webhook/stripe", func(ctx *gin.Context) {
		if svc.Stripe == nil {
			ctx.Status(http.StatusServiceUnavailable)
			return
		}
		payload, err := io.ReadAll(ctx.Request.Body)
		if err != nil {
			log.Printf("Error reading request body: %s\n", err.Error())
			ctx.Status(http.StatusServiceUnavailable)
			return
		}
		ev, ok, err := svc.Stripe.ParseCheckoutCompleted(payload, ctx.GetHeader("Stripe-Signature"))
		if err != nil {
			log.Printf("Error verifying webhook signature: %s\n", err.Error())
			ctx.Status(http.StatusBadRequest)
			return
		}
		if !ok {
			ctx.JSON(http.StatusOK, gin.H{"received": true})
			return
		}
		if err := svc.CompleteStripeCheckout(ctx.Request.Context(), ev); err != nil {
			if errors.Is(err, types.ErrBookingNotFound) {
				log.Printf("[Stripe] Session %s references unknown booking %q\n", ev.SessionID, ev.BookingID)
				ctx.JSON(http.StatusOK, gin.H{"received": true})
				return
			}
			log.Printf("[Stripe] Error completing session %s: %s\n", ev.SessionID, err.Error())
			ctx.Status(http.StatusInternalServerError)
			return
		}
		ctx.JSON(http.StatusOK, gin.H{"received": true})
	})
	return apiv1
}
