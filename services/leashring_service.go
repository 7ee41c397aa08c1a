package services

import (
	"github.com/International-Slackline-Association/SlackData/database"
	"github.com/International-Slackline-Association/SlackData/models"

	"gorm.io/gorm"
)

// LeashRingService implements leash ring CRUD.
type LeashRingService struct {
	db *gorm.DB
}

func NewLeashRingService() *LeashRingService {
	return &LeashRingService{db: database.DB}
}

func (s *LeashRingService) GetLeashRings(offset, limit int) ([]models.LeashRing, error) {
	var leashRings []models.LeashRing
	err := s.db.Preload("Brand").Offset(offset).Limit(limit).Find(&leashRings).Error
	return leashRings, err
}

func (s *LeashRingService) GetLeashRingByID(id int) (*models.LeashRing, error) {
	var leashRing models.LeashRing
	if err := s.db.Preload("Brand").First(&leashRing, id).Error; err != nil {
		return nil, err
	}
	return &leashRing, nil
}

func (s *LeashRingService) CreateLeashRing(create *models.LeashRingCreate) (*models.LeashRing, error) {
	if err := checkBrand(s.db, create.BrandID); err != nil {
		return nil, err
	}
	leashRing := create.Model()
	if err := s.db.Create(leashRing).Error; err != nil {
		return nil, err
	}
	return s.GetLeashRingByID(int(leashRing.ID))
}

func (s *LeashRingService) UpdateLeashRing(id int, update *models.LeashRingUpdate) (*models.LeashRing, error) {
	var leashRing models.LeashRing
	if err := s.db.First(&leashRing, id).Error; err != nil {
		return nil, err
	}
	if update.BrandID != nil {
		if err := checkBrand(s.db, *update.BrandID); err != nil {
			return nil, err
		}
	}

	update.Apply(&leashRing)

	if err := s.db.Save(&leashRing).Error; err != nil {
		return nil, err
	}
	return s.GetLeashRingByID(id)
}

func (s *LeashRingService) DeleteLeashRing(id int) error {
	var leashRing models.LeashRing
	if err := s.db.First(&leashRing, id).Error; err != nil {
		return err
	}
	return s.db.Delete(&leashRing).Error
}
