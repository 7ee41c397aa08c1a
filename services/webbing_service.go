package services

import (
	"github.com/International-Slackline-Association/SlackData/database"
	"github.com/International-Slackline-Association/SlackData/models"

	"gorm.io/gorm"
)

// WebbingService implements webbing CRUD.
type WebbingService struct {
	db *gorm.DB
}

func NewWebbingService() *WebbingService {
	return &WebbingService{db: database.DB}
}

func (s *WebbingService) GetWebbings(offset, limit int) ([]models.Webbing, error) {
	var webbings []models.Webbing
	err := s.db.Preload("Brand").Offset(offset).Limit(limit).Find(&webbings).Error
	return webbings, err
}

func (s *WebbingService) GetWebbingByID(id int) (*models.Webbing, error) {
	var webbing models.Webbing
	if err := s.db.Preload("Brand").First(&webbing, id).Error; err != nil {
		return nil, err
	}
	return &webbing, nil
}

func (s *WebbingService) CreateWebbing(create *models.WebbingCreate) (*models.Webbing, error) {
	if err := checkBrand(s.db, create.BrandID); err != nil {
		return nil, err
	}
	webbing := create.Model()
	if err := s.db.Create(webbing).Error; err != nil {
		return nil, err
	}
	return s.GetWebbingByID(int(webbing.ID))
}

func (s *WebbingService) UpdateWebbing(id int, update *models.WebbingUpdate) (*models.Webbing, error) {
	var webbing models.Webbing
	if err := s.db.First(&webbing, id).Error; err != nil {
		return nil, err
	}
	if update.BrandID != nil {
		if err := checkBrand(s.db, *update.BrandID); err != nil {
			return nil, err
		}
	}

	update.Apply(&webbing)

	if err := s.db.Save(&webbing).Error; err != nil {
		return nil, err
	}
	return s.GetWebbingByID(id)
}

func (s *WebbingService) DeleteWebbing(id int) error {
	var webbing models.Webbing
	if err := s.db.First(&webbing, id).Error; err != nil {
		return err
	}
	return s.db.Delete(&webbing).Error
}
