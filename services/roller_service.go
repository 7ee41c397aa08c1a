package services

import (
	"github.com/International-Slackline-Association/SlackData/database"
	"github.com/International-Slackline-Association/SlackData/models"

	"gorm.io/gorm"
)

// RollerService implements roller CRUD.
type RollerService struct {
	db *gorm.DB
}

func NewRollerService() *RollerService {
	return &RollerService{db: database.DB}
}

func (s *RollerService) GetRollers(offset, limit int) ([]models.Roller, error) {
	var rollers []models.Roller
	err := s.db.Preload("Brand").Offset(offset).Limit(limit).Find(&rollers).Error
	return rollers, err
}

func (s *RollerService) GetRollerByID(id int) (*models.Roller, error) {
	var roller models.Roller
	if err := s.db.Preload("Brand").First(&roller, id).Error; err != nil {
		return nil, err
	}
	return &roller, nil
}

func (s *RollerService) CreateRoller(create *models.RollerCreate) (*models.Roller, error) {
	if err := checkBrand(s.db, create.BrandID); err != nil {
		return nil, err
	}
	roller := create.Model()
	if err := s.db.Create(roller).Error; err != nil {
		return nil, err
	}
	return s.GetRollerByID(int(roller.ID))
}

func (s *RollerService) UpdateRoller(id int, update *models.RollerUpdate) (*models.Roller, error) {
	var roller models.Roller
	if err := s.db.First(&roller, id).Error; err != nil {
		return nil, err
	}
	if update.BrandID != nil {
		if err := checkBrand(s.db, *update.BrandID); err != nil {
			return nil, err
		}
	}

	update.Apply(&roller)

	if err := s.db.Save(&roller).Error; err != nil {
		return nil, err
	}
	return s.GetRollerByID(id)
}

func (s *RollerService) DeleteRoller(id int) error {
	var roller models.Roller
	if err := s.db.First(&roller, id).Error; err != nil {
		return err
	}
	return s.db.Delete(&roller).Error
}
