package main

import (
	"hbs/src/controllers"
	"hbs/src/middlewares"
	"net/http"

	"github.com/gin-gonic/gin"
)

func hotelHandlers(g *gin.RouterGroup) *gin.RouterGroup {
	g.
		POST("/hotels", func(ctx *gin.Context) {
			hotel, status, err := controllers.HotelRegister(ctx)
			if err != nil {
				abortWithError(ctx, "HotelRegister", status, err)
				return
			}
			ctx.JSON(status, gin.H{"success": true, "message": "Hotel Registered Successfully", "hotel": hotel})
		}).
		GET("/hotels/my-hotels", middlewares.RequireOwner, func(ctx *gin.Context) {
			hotels, status, err := controllers.HotelsMine(ctx)
			if err != nil {
				abortWithError(ctx, "HotelsMine", status, err)
				return
			}
			ctx.JSON(http.StatusOK, gin.H{"success": true, "hotels": hotels})
		})
	return g
}
