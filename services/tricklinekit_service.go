package services

import (
	"github.com/International-Slackline-Association/SlackData/database"
	"github.com/International-Slackline-Association/SlackData/models"

	"gorm.io/gorm"
)

// TricklineKitService implements trickline kit CRUD.
type TricklineKitService struct {
	db *gorm.DB
}

func NewTricklineKitService() *TricklineKitService {
	return &TricklineKitService{db: database.DB}
}

func (s *TricklineKitService) GetTricklineKits(offset, limit int) ([]models.TricklineKit, error) {
	var tricklineKits []models.TricklineKit
	err := s.db.Preload("Brand").Offset(offset).Limit(limit).Find(&tricklineKits).Error
	return tricklineKits, err
}

func (s *TricklineKitService) GetTricklineKitByID(id int) (*models.TricklineKit, error) {
	var tricklineKit models.TricklineKit
	if err := s.db.Preload("Brand").First(&tricklineKit, id).Error; err != nil {
		return nil, err
	}
	return &tricklineKit, nil
}

func (s *TricklineKitService) CreateTricklineKit(create *models.TricklineKitCreate) (*models.TricklineKit, error) {
	if err := checkBrand(s.db, create.BrandID); err != nil {
		return nil, err
	}
	tricklineKit := create.Model()
	if err := s.db.Create(tricklineKit).Error; err != nil {
		return nil, err
	}
	return s.GetTricklineKitByID(int(tricklineKit.ID))
}

func (s *TricklineKitService) UpdateTricklineKit(id int, update *models.TricklineKitUpdate) (*models.TricklineKit, error) {
	var tricklineKit models.TricklineKit
	if err := s.db.First(&tricklineKit, id).Error; err != nil {
		return nil, err
	}
	if update.BrandID != nil {
		if err := checkBrand(s.db, *update.BrandID); err != nil {
			return nil, err
		}
	}

	update.Apply(&tricklineKit)

	if err := s.db.Save(&tricklineKit).Error; err != nil {
		return nil, err
	}
	return s.GetTricklineKitByID(id)
}

func (s *TricklineKitService) DeleteTricklineKit(id int) error {
	var tricklineKit models.TricklineKit
	if err := s.db.First(&tricklineKit, id).Error; err != nil {
		return err
	}
	return s.db.Delete(&tricklineKit).Error
}
