package services

import (
	"errors"

	"github.com/International-Slackline-Association/SlackData/models"

	"gorm.io/gorm"
)

// ErrBrandNotFound is returned when an equipment create or update
// references a brand id that does not exist.
var ErrBrandNotFound = errors.New("brand not found")

// checkBrand verifies that the referenced brand exists. Every equipment
// record must carry a resolvable brand.
func checkBrand(db *gorm.DB, brandID uint) error {
	var brand models.Brand
	if err := db.First(&brand, brandID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return ErrBrandNotFound
		}
		return err
	}
	return nil
}
