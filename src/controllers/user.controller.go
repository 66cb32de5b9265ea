package controllers

import (
	"errors"
	"hbs/src/common"
	"hbs/src/config"
	"hbs/src/db"
	"hbs/src/middlewares"
	"hbs/src/models"
	"hbs/src/types"
	"log"
	"net/http"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

func UserGet(ctx *gin.Context) (user *models.User, status int, err error) {
	user = middlewares.CurrentUser(ctx)
	if user == nil {
		return nil, http.StatusUnauthorized, types.ErrUserNotFound
	}
	if user.RecentSearchedCities == nil {
		user.RecentSearchedCities = []string{}
	}
	return user, http.StatusOK, nil
}

func UserStoreRecentSearch(ctx *gin.Context) (status int, err error) {
	var body types.RecentSearchRequestBody
	if err := ctx.ShouldBindJSON(&body); err != nil {
		return http.StatusBadRequest, err
	}
	userID := ctx.GetString("id")
	db := db.GetDb()
	err = db.Transaction(func(tx *gorm.DB) error {
		var user models.User
		if err := tx.Where("id = ?", userID).First(&user).Error; err != nil {
			return err
		}
		user.PushRecentCity(body.RecentSearchedCity, config.MAX_RECENT_CITIES)
		return tx.
			Model(&user).
			Select("recent_searched_cities").
			Updates(&user).
			Error
	})
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return http.StatusNotFound, types.ErrUserNotFound
		}
		log.Printf("[User] Error storing recent search: %s\n", err.Error())
		return http.StatusInternalServerError, err
	}
	return http.StatusOK, nil
}

func UserRegisterAsAdmin(ctx *gin.Context) (status int, err error) {
	userID := ctx.GetString("id")
	db := db.GetDb()
	err = db.Transaction(func(tx *gorm.DB) error {
		_, err := common.GrantOwnerRole(tx, userID)
		return err
	})
	if err != nil {
		if errors.Is(err, types.ErrUserNotFound) {
			return http.StatusNotFound, err
		}
		log.Printf("[User] Error granting owner role: %s\n", err.Error())
		return http.StatusInternalServerError, err
	}
	return http.StatusOK, nil
}
