package controllers

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"hbs/src/config"
	"hbs/src/db"
	libaws "hbs/src/lib/aws"
	"hbs/src/models"
	"hbs/src/types"
	"io"
	"log"
	"mime/multipart"
	"net/http"
	"path/filepath"
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"gorm.io/gorm"
)

// UploadImage stores a room image and returns its URL.
var UploadImage = func(ctx context.Context, key, contentType string, r io.Reader) (*string, error) {
	return libaws.S3UploadAsset(ctx, key, contentType, r)
}

var errTooManyImages = fmt.Errorf("at most %d images are allowed", config.MAX_ROOM_IMAGES)

func RoomCreate(ctx *gin.Context) (room *models.Room, status int, err error) {
	var form types.CreateRoomForm
	if err := ctx.ShouldBind(&form); err != nil {
		return nil, http.StatusBadRequest, err
	}
	amenities := []string{}
	if strings.TrimSpace(form.Amenities) != "" {
		if err := json.Unmarshal([]byte(form.Amenities), &amenities); err != nil {
			return nil, http.StatusBadRequest, fmt.Errorf("amenities must be a JSON array of strings: %w", err)
		}
	}
	var files []*multipart.FileHeader
	if mf, err := ctx.MultipartForm(); err == nil && mf != nil {
		files = mf.File["images"]
	}
	if len(files) > config.MAX_ROOM_IMAGES {
		return nil, http.StatusBadRequest, errTooManyImages
	}

	userID := ctx.GetString("id")
	db := db.GetDb()
	var hotel models.Hotel
	q := db.Where("owner_id = ?", userID)
	if form.HotelID != "" {
		q = q.Where("id = ?", form.HotelID)
	}
	if err := q.Order("created_at ASC").First(&hotel).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			if form.HotelID != "" {
				return nil, http.StatusNotFound, types.ErrHotelNotFound
			}
			return nil, http.StatusOK, types.ErrNoHotel
		}
		return nil, http.StatusInternalServerError, err
	}

	images := make([]string, 0, len(files))
	for _, fh := range files {
		url, err := uploadRoomImage(ctx.Request.Context(), hotel.ID, fh)
		if err != nil {
			log.Printf("[Room] Error uploading %s: %s\n", fh.Filename, err.Error())
			return nil, http.StatusBadGateway, err
		}
		images = append(images, *url)
	}

	room = &models.Room{
		HotelID:       hotel.ID,
		RoomType:      form.RoomType,
		PricePerNight: form.PricePerNight,
		Amenities:     amenities,
		Images:        images,
		IsAvailable:   true,
	}
	if err := db.Create(room).Error; err != nil {
		log.Printf("[Room] Error creating room: %s\n", err.Error())
		return nil, http.StatusInternalServerError, err
	}
	return room, http.StatusCreated, nil
}

func uploadRoomImage(ctx context.Context, hotelID string, fh *multipart.FileHeader) (*string, error) {
	f, err := fh.Open()
	if err != nil {
		return nil, err
	}
	defer f.Close()
	contentType := fh.Header.Get("Content-Type")
	if contentType == "" {
		contentType = "application/octet-stream"
	}
	key := fmt.Sprintf("rooms/%s/%s%s", hotelID, uuid.NewString(), strings.ToLower(filepath.Ext(fh.Filename)))
	return UploadImage(ctx, key, contentType, f)
}

// RoomsList returns rooms open for booking, newest first.
func RoomsList(ctx *gin.Context) (rooms []models.Room, status int, err error) {
	rooms = make([]models.Room, 0)
	db := db.GetDb()
	if err := db.
		Preload("Hotel").
		Preload("Hotel.Owner", func(tx *gorm.DB) *gorm.DB {
			return tx.Select("id", "image")
		}).
		Where("is_available = ?", true).
		Order("created_at DESC").
		Find(&rooms).
		Error; err != nil {
		return nil, http.StatusInternalServerError, err
	}
	return rooms, http.StatusOK, nil
}

func RoomsOwner(ctx *gin.Context) (rooms []models.Room, status int, err error) {
	userID := ctx.GetString("id")
	db := db.GetDb()
	var hotelIDs []string
	if err := db.Model(&models.Hotel{}).Where("owner_id = ?", userID).Pluck("id", &hotelIDs).Error; err != nil {
		return nil, http.StatusInternalServerError, err
	}
	if len(hotelIDs) == 0 {
		return nil, http.StatusOK, types.ErrNoHotel
	}
	rooms = make([]models.Room, 0)
	if err := db.
		Preload("Hotel").
		Where("hotel_id IN ?", hotelIDs).
		Order("created_at DESC").
		Find(&rooms).
		Error; err != nil {
		return nil, http.StatusInternalServerError, err
	}
	return rooms, http.StatusOK, nil
}

// RoomToggleAvailability flips the listing flag of a room in one of the caller's hotels.
func RoomToggleAvailability(ctx *gin.Context) (room *models.Room, status int, err error) {
	var body types.ToggleRoomRequestBody
	if err := ctx.ShouldBindJSON(&body); err != nil {
		return nil, http.StatusBadRequest, err
	}
	userID := ctx.GetString("id")
	db := db.GetDb()
	room = &models.Room{}
	err = db.Transaction(func(tx *gorm.DB) error {
		owned := tx.Model(&models.Hotel{}).Select("id").Where("owner_id = ?", userID)
		if err := tx.
			Where("id = ? AND hotel_id IN (?)", body.RoomID, owned).
			First(room).
			Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return types.ErrRoomNotFound
			}
			return err
		}
		room.IsAvailable = !room.IsAvailable
		return tx.Model(&models.Room{}).Where("id = ?", room.ID).Update("is_available", room.IsAvailable).Error
	})
	if err != nil {
		if errors.Is(err, types.ErrRoomNotFound) {
			return nil, http.StatusNotFound, err
		}
		return nil, http.StatusInternalServerError, err
	}
	return room, http.StatusOK, nil
}
