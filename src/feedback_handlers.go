package main

import (
	"hbs/src/controllers"
	"hbs/src/middlewares"
	"net/http"

	"github.com/gin-gonic/gin"
)

func publicFeedbackRoutes(g *gin.RouterGroup) *gin.RouterGroup {
	g.GET("/feedback/approved", func(ctx *gin.Context) {
		feedbacks, status, err := controllers.FeedbackApproved(ctx)
		if err != nil {
			abortWithError(ctx, "FeedbackApproved", status, err)
			return
		}
		ctx.JSON(http.StatusOK, gin.H{"success": true, "feedbacks": feedbacks})
	})
	return g
}

func feedbackHandlers(g *gin.RouterGroup) *gin.RouterGroup {
	g.POST("/feedback/submit", func(ctx *gin.Context) {
		feedback, status, err := controllers.FeedbackSubmit(ctx)
		if err != nil {
			abortWithError(ctx, "FeedbackSubmit", status, err)
			return
		}
		ctx.JSON(status, gin.H{
			"success":  true,
			"message":  "Thank you for your feedback! It will be reviewed before publishing.",
			"feedback": feedback,
		})
	})

	owner := g.Group("/feedback")
	owner.Use(middlewares.RequireOwner)
	owner.
		GET("/all", func(ctx *gin.Context) {
			feedbacks, status, err := controllers.FeedbackAll(ctx)
			if err != nil {
				abortWithError(ctx, "FeedbackAll", status, err)
				return
			}
			ctx.JSON(http.StatusOK, gin.H{"success": true, "feedbacks": feedbacks})
		}).
		PUT("/approve/:feedbackId", func(ctx *gin.Context) {
			feedback, status, err := controllers.FeedbackApprove(ctx)
			if err != nil {
				abortWithError(ctx, "FeedbackApprove", status, err)
				return
			}
			ctx.JSON(http.StatusOK, gin.H{"success": true, "message": "Feedback approved", "feedback": feedback})
		}).
		DELETE("/:feedbackId", func(ctx *gin.Context) {
			status, err := controllers.FeedbackDelete(ctx)
			if err != nil {
				abortWithError(ctx, "FeedbackDelete", status, err)
				return
			}
			ctx.JSON(http.StatusOK, gin.H{"success": true, "message": "Feedback deleted"})
		})
	return g
}
