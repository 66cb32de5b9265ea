package common

import (
	"hbs/src/models"
	"log"

	"github.com/gosimple/slug"
	"gorm.io/gorm"
)

// UpdateMissingHotelSlugs backfills slugs for hotels created before slugs existed.
func UpdateMissingHotelSlugs(gdb *gorm.DB) (int, error) {
	var hotels []models.Hotel
	if err := gdb.
		Select("id", "name", "city").
		Where("slug IS NULL OR slug = ''").
		Find(&hotels).
		Error; err != nil {
		log.Printf("Error querying Hotels: %s\n", err.Error())
		return 0, err
	}
	err := gdb.Transaction(func(tx *gorm.DB) error {
		for _, hotel := range hotels {
			newSlug := slug.Make(hotel.Name + " " + hotel.City)
			if err := tx.
				Model(&models.Hotel{}).
				Where("id = ?", hotel.ID).
				Update("slug", newSlug).
				Error; err != nil {
				return err
			}
		}
		return nil
	})
	if err != nil {
		log.Printf("Error on update operation: %s\n", err.Error())
		return 0, err
	}
	return len(hotels), nil
}
