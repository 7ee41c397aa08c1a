package services

import (
	"github.com/International-Slackline-Association/SlackData/database"
	"github.com/International-Slackline-Association/SlackData/models"

	"gorm.io/gorm"
)

// WeblockService implements weblock CRUD.
type WeblockService struct {
	db *gorm.DB
}

func NewWeblockService() *WeblockService {
	return &WeblockService{db: database.DB}
}

func (s *WeblockService) GetWeblocks(offset, limit int) ([]models.Weblock, error) {
	var weblocks []models.Weblock
	err := s.db.Preload("Brand").Offset(offset).Limit(limit).Find(&weblocks).Error
	return weblocks, err
}

func (s *WeblockService) GetWeblockByID(id int) (*models.Weblock, error) {
	var weblock models.Weblock
	if err := s.db.Preload("Brand").First(&weblock, id).Error; err != nil {
		return nil, err
	}
	return &weblock, nil
}

func (s *WeblockService) CreateWeblock(create *models.WeblockCreate) (*models.Weblock, error) {
	if err := checkBrand(s.db, create.BrandID); err != nil {
		return nil, err
	}
	weblock := create.Model()
	if err := s.db.Create(weblock).Error; err != nil {
		return nil, err
	}
	return s.GetWeblockByID(int(weblock.ID))
}

func (s *WeblockService) UpdateWeblock(id int, update *models.WeblockUpdate) (*models.Weblock, error) {
	var weblock models.Weblock
	if err := s.db.First(&weblock, id).Error; err != nil {
		return nil, err
	}
	if update.BrandID != nil {
		if err := checkBrand(s.db, *update.BrandID); err != nil {
			return nil, err
		}
	}

	update.Apply(&weblock)

	if err := s.db.Save(&weblock).Error; err != nil {
		return nil, err
	}
	return s.GetWeblockByID(id)
}

func (s *WeblockService) DeleteWeblock(id int) error {
	var weblock models.Weblock
	if err := s.db.First(&weblock, id).Error; err != nil {
		return err
	}
	return s.db.Delete(&weblock).Error
}
