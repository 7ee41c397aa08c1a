package services

import (
	"errors"

	"github.com/International-Slackline-Association/SlackData/database"
	"github.com/International-Slackline-Association/SlackData/models"

	"gorm.io/gorm"
)

// ErrBrandInUse is returned when deleting a brand that equipment still
// references.
var ErrBrandInUse = errors.New("cannot delete brand with existing equipment")

// BrandService implements brand CRUD.
type BrandService struct {
	db *gorm.DB
}

func NewBrandService() *BrandService {
	return &BrandService{db: database.DB}
}

// GetBrands returns a page of brands.
func (s *BrandService) GetBrands(offset, limit int) ([]models.Brand, error) {
	var brands []models.Brand
	err := s.db.Offset(offset).Limit(limit).Find(&brands).Error
	return brands, err
}

// GetBrandByID returns one brand.
func (s *BrandService) GetBrandByID(id int) (*models.Brand, error) {
	var brand models.Brand
	if err := s.db.First(&brand, id).Error; err != nil {
		return nil, err
	}
	return &brand, nil
}

// CreateBrand creates a brand; the name must be unique.
func (s *BrandService) CreateBrand(create *models.BrandCreate) (*models.Brand, error) {
	brand := create.Model()
	if err := s.db.Create(brand).Error; err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return nil, errors.New("brand name already exists")
		}
		return nil, err
	}
	return brand, nil
}

// UpdateBrand applies a partial update.
func (s *BrandService) UpdateBrand(id int, update *models.BrandUpdate) (*models.Brand, error) {
	var brand models.Brand
	if err := s.db.First(&brand, id).Error; err != nil {
		return nil, err
	}

	update.Apply(&brand)

	if err := s.db.Save(&brand).Error; err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return nil, errors.New("brand name already exists")
		}
		return nil, err
	}
	return &brand, nil
}

// DeleteBrand removes a brand unless equipment still references it,
// which keeps every equipment record's brand reference resolvable.
func (s *BrandService) DeleteBrand(id int) error {
	equipment := []any{
		&models.Webbing{},
		&models.Weblock{},
		&models.Roller{},
		&models.LeashRing{},
		&models.Grip{},
		&models.TreePro{},
		&models.StarterKit{},
		&models.TricklineKit{},
	}
	for _, model := range equipment {
		var count int64
		if err := s.db.Model(model).Where("brand_id = ?", id).Count(&count).Error; err != nil {
			return err
		}
		if count > 0 {
			return ErrBrandInUse
		}
	}

	var brand models.Brand
	if err := s.db.First(&brand, id).Error; err != nil {
		return err
	}
	return s.db.Delete(&brand).Error
}
