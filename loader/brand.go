package loader

import (
	"errors"
	"fmt"
	"log"

	"github.com/International-Slackline-Association/SlackData/models"

	"gorm.io/gorm"
)

// BrandCache memoizes name-to-id lookups for the duration of one batch.
// It is not a source of truth; the store is. Each batch gets a fresh
// cache so concurrent batches never share one.
type BrandCache map[string]uint

// resolveBrand returns the id of the brand with the given name, creating
// the brand on first sight. A unique index on Brand.Name backs this: if
// a concurrent batch creates the same brand first, the duplicate-key
// error is treated as "already exists" and the row is re-fetched.
func resolveBrand(tx *gorm.DB, cache BrandCache, name string) (uint, error) {
	if id, ok := cache[name]; ok {
		return id, nil
	}

	var brand models.Brand
	err := tx.Where("name = ?", name).First(&brand).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		brand = models.Brand{Name: name, Active: true, SlacklineFocused: true}
		log.Printf("Adding brand: %s", name)
		if createErr := tx.Create(&brand).Error; createErr != nil {
			if !errors.Is(createErr, gorm.ErrDuplicatedKey) {
				return 0, createErr
			}
			if err := tx.Where("name = ?", name).First(&brand).Error; err != nil {
				return 0, err
			}
		}
	} else if err != nil {
		return 0, err
	}

	if brand.ID == 0 {
		// A created brand without an id would break the non-null brand
		// reference on every equipment record, so fail the batch.
		return 0, fmt.Errorf("brand id for %q could not be determined", name)
	}

	cache[name] = brand.ID
	return brand.ID, nil
}
