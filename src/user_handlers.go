package main

import (
	"hbs/src/controllers"
	"net/http"

	"github.com/gin-gonic/gin"
)

func userHandlers(g *gin.RouterGroup) *gin.RouterGroup {
	g.
		GET("/user", func(ctx *gin.Context) {
			user, status, err := controllers.UserGet(ctx)
			if err != nil {
				abortWithError(ctx, "UserGet", status, err)
				return
			}
			ctx.JSON(http.StatusOK, gin.H{
				"success":              true,
				"role":                 user.Role,
				"recentSearchedCities": user.RecentSearchedCities,
			})
		}).
		POST("/user/store-recent-search", func(ctx *gin.Context) {
			status, err := controllers.UserStoreRecentSearch(ctx)
			if err != nil {
				abortWithError(ctx, "UserStoreRecentSearch", status, err)
				return
			}
			ctx.JSON(http.StatusOK, gin.H{"success": true, "message": "City added"})
		}).
		POST("/user/register-as-admin", func(ctx *gin.Context) {
			status, err := controllers.UserRegisterAsAdmin(ctx)
			if err != nil {
				abortWithError(ctx, "UserRegisterAsAdmin", status, err)
				return
			}
			ctx.JSON(http.StatusOK, gin.H{"success": true, "message": "Registered as hotel owner"})
		})
	return g
}
