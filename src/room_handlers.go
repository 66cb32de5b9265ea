package main

import (
	"hbs/src/controllers"
	"hbs/src/middlewares"
	"net/http"

	"github.com/gin-gonic/gin"
)

func publicRoomRoutes(g *gin.RouterGroup) *gin.RouterGroup {
	g.GET("/rooms", func(ctx *gin.Context) {
		rooms, status, err := controllers.RoomsList(ctx)
		if err != nil {
			abortWithError(ctx, "RoomsList", status, err)
			return
		}
		ctx.JSON(http.StatusOK, gin.H{"success": true, "rooms": rooms})
	})
	return g
}

func roomHandlers(g *gin.RouterGroup) *gin.RouterGroup {
	owner := g.Group("/rooms")
	owner.Use(middlewares.RequireOwner)
	owner.
		POST("", func(ctx *gin.Context) {
			room, status, err := controllers.RoomCreate(ctx)
			if err != nil {
				abortWithError(ctx, "RoomCreate", status, err)
				return
			}
			ctx.JSON(status, gin.H{"success": true, "message": "Room created successfully", "room": room})
		}).
		GET("/owner", func(ctx *gin.Context) {
			rooms, status, err := controllers.RoomsOwner(ctx)
			if err != nil {
				abortWithError(ctx, "RoomsOwner", status, err)
				return
			}
			ctx.JSON(http.StatusOK, gin.H{"success": true, "rooms": rooms})
		}).
		POST("/toggle-availability", func(ctx *gin.Context) {
			room, status, err := controllers.RoomToggleAvailability(ctx)
			if err != nil {
				abortWithError(ctx, "RoomToggleAvailability", status, err)
				return
			}
			ctx.JSON(http.StatusOK, gin.H{
				"success":     true,
				"message":     "Room availability updated",
				"isAvailable": room.IsAvailable,
			})
		})
	return g
}
