package services

import (
	"github.com/International-Slackline-Association/SlackData/database"
	"github.com/International-Slackline-Association/SlackData/models"

	"gorm.io/gorm"
)

// StarterKitService implements starter kit CRUD.
type StarterKitService struct {
	db *gorm.DB
}

func NewStarterKitService() *StarterKitService {
	return &StarterKitService{db: database.DB}
}

func (s *StarterKitService) GetStarterKits(offset, limit int) ([]models.StarterKit, error) {
	var starterKits []models.StarterKit
	err := s.db.Preload("Brand").Offset(offset).Limit(limit).Find(&starterKits).Error
	return starterKits, err
}

func (s *StarterKitService) GetStarterKitByID(id int) (*models.StarterKit, error) {
	var starterKit models.StarterKit
	if err := s.db.Preload("Brand").First(&starterKit, id).Error; err != nil {
		return nil, err
	}
	return &starterKit, nil
}

func (s *StarterKitService) CreateStarterKit(create *models.StarterKitCreate) (*models.StarterKit, error) {
	if err := checkBrand(s.db, create.BrandID); err != nil {
		return nil, err
	}
	starterKit := create.Model()
	if err := s.db.Create(starterKit).Error; err != nil {
		return nil, err
	}
	return s.GetStarterKitByID(int(starterKit.ID))
}

func (s *StarterKitService) UpdateStarterKit(id int, update *models.StarterKitUpdate) (*models.StarterKit, error) {
	var starterKit models.StarterKit
	if err := s.db.First(&starterKit, id).Error; err != nil {
		return nil, err
	}
	if update.BrandID != nil {
		if err := checkBrand(s.db, *update.BrandID); err != nil {
			return nil, err
		}
	}

	update.Apply(&starterKit)

	if err := s.db.Save(&starterKit).Error; err != nil {
		return nil, err
	}
	return s.GetStarterKitByID(id)
}

func (s *StarterKitService) DeleteStarterKit(id int) error {
	var starterKit models.StarterKit
	if err := s.db.First(&starterKit, id).Error; err != nil {
		return err
	}
	return s.db.Delete(&starterKit).Error
}
