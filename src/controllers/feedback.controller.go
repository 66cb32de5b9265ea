package controllers

import (
	"errors"
	"hbs/src/config"
	"hbs/src/db"
	"hbs/src/middlewares"
	"hbs/src/models"
	"hbs/src/types"
	"log"
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

func FeedbackSubmit(ctx *gin.Context) (feedback *models.Feedback, status int, err error) {
	var body types.SubmitFeedbackRequestBody
	if err := ctx.ShouldBindJSON(&body); err != nil {
		return nil, http.StatusBadRequest, err
	}
	user := middlewares.CurrentUser(ctx)
	if user == nil {
		return nil, http.StatusNotFound, types.ErrUserNotFound
	}
	location := strings.TrimSpace(body.Location)
	if location == "" {
		location = "Unknown"
	}
	feedback = &models.Feedback{
		UserID:     user.ID,
		UserName:   user.Username,
		UserEmail:  user.Email,
		UserImage:  user.Image,
		Rating:     body.Rating,
		Review:     body.Review,
		Location:   location,
		IsApproved: false,
	}
	db := db.GetDb()
	if err := db.Create(feedback).Error; err != nil {
		log.Printf("[Feedback] Error submitting feedback: %s\n", err.Error())
		return nil, http.StatusInternalServerError, err
	}
	return feedback, http.StatusCreated, nil
}

func FeedbackApproved(ctx *gin.Context) (feedbacks []models.Feedback, status int, err error) {
	feedbacks = make([]models.Feedback, 0)
	db := db.GetDb()
	if err := db.
		Where("is_approved = ?", true).
		Order("created_at DESC").
		Limit(config.APPROVED_FEEDBACK_LIMIT).
		Find(&feedbacks).
		Error; err != nil {
		return nil, http.StatusInternalServerError, err
	}
	return feedbacks, http.StatusOK, nil
}

func FeedbackAll(ctx *gin.Context) (feedbacks []models.Feedback, status int, err error) {
	feedbacks = make([]models.Feedback, 0)
	db := db.GetDb()
	if err := db.Order("created_at DESC").Find(&feedbacks).Error; err != nil {
		return nil, http.StatusInternalServerError, err
	}
	return feedbacks, http.StatusOK, nil
}

func FeedbackApprove(ctx *gin.Context) (feedback *models.Feedback, status int, err error) {
	var params types.FeedbackRequestParams
	if err := ctx.ShouldBindUri(&params); err != nil {
		return nil, http.StatusBadRequest, err
	}
	feedback = &models.Feedback{}
	db := db.GetDb()
	err = db.Transaction(func(tx *gorm.DB) error {
		res := tx.Model(&models.Feedback{}).Where("id = ?", params.FeedbackID).Update("is_approved", true)
		if res.Error != nil {
			return res.Error
		}
		if res.RowsAffected == 0 {
			return types.ErrFeedbackNotFound
		}
		return tx.Where("id = ?", params.FeedbackID).First(feedback).Error
	})
	if err != nil {
		if errors.Is(err, types.ErrFeedbackNotFound) {
			return nil, http.StatusNotFound, err
		}
		return nil, http.StatusInternalServerError, err
	}
	return feedback, http.StatusOK, nil
}

func FeedbackDelete(ctx *gin.Context) (status int, err error) {
	var params types.FeedbackRequestParams
	if err := ctx.ShouldBindUri(&params); err != nil {
		return http.StatusBadRequest, err
	}
	db := db.GetDb()
	res := db.Where("id = ?", params.FeedbackID).Delete(&models.Feedback{})
	if res.Error != nil {
		return http.StatusInternalServerError, res.Error
	}
	if res.RowsAffected == 0 {
		return http.StatusNotFound, types.ErrFeedbackNotFound
	}
	return http.StatusOK, nil
}
