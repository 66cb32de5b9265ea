package controllers

import (
	"hbs/src/common"
	"hbs/src/db"
	"hbs/src/models"
	"hbs/src/types"
	"log"
	"net/http"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

// HotelRegister creates a hotel for the caller and makes the caller its owner.
func HotelRegister(ctx *gin.Context) (hotel *models.Hotel, status int, err error) {
	var body types.RegisterHotelRequestBody
	if err := ctx.ShouldBindJSON(&body); err != nil {
		return nil, http.StatusBadRequest, err
	}
	userID := ctx.GetString("id")
	db := db.GetDb()
	err = db.Transaction(func(tx *gorm.DB) error {
		hotel = &models.Hotel{
			Name:    body.Name,
			Address: body.Address,
			Contact: body.Contact,
			City:    body.City,
			OwnerID: userID,
		}
		if err := tx.Create(hotel).Error; err != nil {
			return err
		}
		_, err := common.GrantOwnerRole(tx, userID)
		return err
	})
	if err != nil {
		log.Printf("[Hotel] Error registering hotel: %s\n", err.Error())
		return nil, http.StatusInternalServerError, err
	}
	return hotel, http.StatusCreated, nil
}

func HotelsMine(ctx *gin.Context) (hotels []models.Hotel, status int, err error) {
	userID := ctx.GetString("id")
	hotels = make([]models.Hotel, 0)
	db := db.GetDb()
	if err := db.
		Where("owner_id = ?", userID).
		Order("created_at DESC").
		Find(&hotels).
		Error; err != nil {
		return nil, http.StatusInternalServerError, err
	}
	return hotels, http.StatusOK, nil
}
