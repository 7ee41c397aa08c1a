package services

import (
	"github.com/International-Slackline-Association/SlackData/database"
	"github.com/International-Slackline-Association/SlackData/models"

	"gorm.io/gorm"
)

// GripService implements grip CRUD.
type GripService struct {
	db *gorm.DB
}

func NewGripService() *GripService {
	return &GripService{db: database.DB}
}

func (s *GripService) GetGrips(offset, limit int) ([]models.Grip, error) {
	var grips []models.Grip
	err := s.db.Preload("Brand").Offset(offset).Limit(limit).Find(&grips).Error
	return grips, err
}

func (s *GripService) GetGripByID(id int) (*models.Grip, error) {
	var grip models.Grip
	if err := s.db.Preload("Brand").First(&grip, id).Error; err != nil {
		return nil, err
	}
	return &grip, nil
}

func (s *GripService) CreateGrip(create *models.GripCreate) (*models.Grip, error) {
	if err := checkBrand(s.db, create.BrandID); err != nil {
		return nil, err
	}
	grip := create.Model()
	if err := s.db.Create(grip).Error; err != nil {
		return nil, err
	}
	return s.GetGripByID(int(grip.ID))
}

func (s *GripService) UpdateGrip(id int, update *models.GripUpdate) (*models.Grip, error) {
	var grip models.Grip
	if err := s.db.First(&grip, id).Error; err != nil {
		return nil, err
	}
	if update.BrandID != nil {
		if err := checkBrand(s.db, *update.BrandID); err != nil {
			return nil, err
		}
	}

	update.Apply(&grip)

	if err := s.db.Save(&grip).Error; err != nil {
		return nil, err
	}
	return s.GetGripByID(id)
}

func (s *GripService) DeleteGrip(id int) error {
	var grip models.Grip
	if err := s.db.First(&grip, id).Error; err != nil {
		return err
	}
	return s.db.Delete(&grip).Error
}
