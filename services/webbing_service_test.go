package services

import (
	"testing"

	"github.com/International-Slackline-Association/SlackData/database"
	"github.com/International-Slackline-Association/SlackData/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
)

func TestWebbingCRUD(t *testing.T) {
	setupTestDB(t)

	brand := models.Brand{Name: "Raed", Active: true, SlacklineFocused: true}
	require.NoError(t, database.DB.Create(&brand).Error)

	s := NewWebbingService()

	created, err := s.CreateWebbing(&models.WebbingCreate{
		Name:     "Feather Pro",
		BrandID:  brand.ID,
		Material: models.FiberDyneema,
		Width:    25,
		Weight:   28,
	})
	require.NoError(t, err)
	assert.NotZero(t, created.ID)
	assert.Equal(t, "Raed", created.Brand.Name, "brand preloaded on read-back")

	got, err := s.GetWebbingByID(int(created.ID))
	require.NoError(t, err)
	assert.Equal(t, models.FiberDyneema, got.Material)

	width := 26
	updated, err := s.UpdateWebbing(int(created.ID), &models.WebbingUpdate{Width: &width})
	require.NoError(t, err)
	assert.Equal(t, 26, updated.Width)
	assert.Equal(t, "Feather Pro", updated.Name)

	require.NoError(t, s.DeleteWebbing(int(created.ID)))
	_, err = s.GetWebbingByID(int(created.ID))
	assert.ErrorIs(t, err, gorm.ErrRecordNotFound)
}

func TestCreateWebbingUnknownBrand(t *testing.T) {
	setupTestDB(t)
	s := NewWebbingService()

	_, err := s.CreateWebbing(&models.WebbingCreate{
		Name:    "Orphan",
		BrandID: 999,
	})
	assert.ErrorIs(t, err, ErrBrandNotFound)

	var count int64
	require.NoError(t, database.DB.Model(&models.Webbing{}).Count(&count).Error)
	assert.EqualValues(t, 0, count, "no webbing without a resolvable brand")
}

func TestUpdateWebbingUnknownBrand(t *testing.T) {
	setupTestDB(t)

	brand := models.Brand{Name: "Raed", Active: true, SlacklineFocused: true}
	require.NoError(t, database.DB.Create(&brand).Error)

	s := NewWebbingService()
	created, err := s.CreateWebbing(&models.WebbingCreate{Name: "Feather", BrandID: brand.ID})
	require.NoError(t, err)

	missing := uint(42)
	_, err = s.UpdateWebbing(int(created.ID), &models.WebbingUpdate{BrandID: &missing})
	assert.ErrorIs(t, err, ErrBrandNotFound)

	got, err := s.GetWebbingByID(int(created.ID))
	require.NoError(t, err)
	assert.Equal(t, brand.ID, got.BrandID, "failed update leaves the brand reference intact")
}
