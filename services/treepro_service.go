package services

import (
	"github.com/International-Slackline-Association/SlackData/database"
	"github.com/International-Slackline-Association/SlackData/models"

	"gorm.io/gorm"
)

// TreeProService implements tree protector CRUD.
type TreeProService struct {
	db *gorm.DB
}

func NewTreeProService() *TreeProService {
	return &TreeProService{db: database.DB}
}

func (s *TreeProService) GetTreePros(offset, limit int) ([]models.TreePro, error) {
	var treePros []models.TreePro
	err := s.db.Preload("Brand").Offset(offset).Limit(limit).Find(&treePros).Error
	return treePros, err
}

func (s *TreeProService) GetTreeProByID(id int) (*models.TreePro, error) {
	var treePro models.TreePro
	if err := s.db.Preload("Brand").First(&treePro, id).Error; err != nil {
		return nil, err
	}
	return &treePro, nil
}

func (s *TreeProService) CreateTreePro(create *models.TreeProCreate) (*models.TreePro, error) {
	if err := checkBrand(s.db, create.BrandID); err != nil {
		return nil, err
	}
	treePro := create.Model()
	if err := s.db.Create(treePro).Error; err != nil {
		return nil, err
	}
	return s.GetTreeProByID(int(treePro.ID))
}

func (s *TreeProService) UpdateTreePro(id int, update *models.TreeProUpdate) (*models.TreePro, error) {
	var treePro models.TreePro
	if err := s.db.First(&treePro, id).Error; err != nil {
		return nil, err
	}
	if update.BrandID != nil {
		if err := checkBrand(s.db, *update.BrandID); err != nil {
			return nil, err
		}
	}

	update.Apply(&treePro)

	if err := s.db.Save(&treePro).Error; err != nil {
		return nil, err
	}
	return s.GetTreeProByID(id)
}

func (s *TreeProService) DeleteTreePro(id int) error {
	var treePro models.TreePro
	if err := s.db.First(&treePro, id).Error; err != nil {
		return err
	}
	return s.db.Delete(&treePro).Error
}
