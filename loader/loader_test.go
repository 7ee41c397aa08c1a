package loader

import (
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/International-Slackline-Association/SlackData/config"
	"github.com/International-Slackline-Association/SlackData/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

func testDB(t *testing.T) *gorm.DB {
	t.Helper()
	db, err := gorm.Open(sqlite.Open(filepath.Join(t.TempDir(), "test.db")), &gorm.Config{
		Logger:         logger.Default.LogMode(logger.Silent),
		TranslateError: true,
	})
	require.NoError(t, err)
	require.NoError(t, db.AutoMigrate(
		&models.Brand{},
		&models.Webbing{},
		&models.Weblock{},
		&models.Roller{},
		&models.LeashRing{},
		&models.Grip{},
		&models.TreePro{},
		&models.StarterKit{},
		&models.TricklineKit{},
	))
	return db
}

func testConfig(t *testing.T) *config.Config {
	t.Helper()
	return &config.Config{
		Data: config.DataConfig{
			Dir:              t.TempDir(),
			FallbackCurrency: "EUR",
		},
	}
}

func writeDataset(t *testing.T, cfg *config.Config, filename, content string) {
	t.Helper()
	require.NoError(t, os.WriteFile(filepath.Join(cfg.Data.Dir, filename), []byte(content), 0o644))
}

func TestResolveBrandIdempotent(t *testing.T) {
	db := testDB(t)
	cache := BrandCache{}

	first, err := resolveBrand(db, cache, "Landcruising")
	require.NoError(t, err)
	second, err := resolveBrand(db, cache, "Landcruising")
	require.NoError(t, err)
	assert.Equal(t, first, second)

	var count int64
	require.NoError(t, db.Model(&models.Brand{}).Where("name = ?", "Landcruising").Count(&count).Error)
	assert.EqualValues(t, 1, count)
}

func TestResolveBrandReusesExistingRow(t *testing.T) {
	db := testDB(t)

	existing := models.Brand{Name: "Slacktivity", Active: true, SlacklineFocused: true}
	require.NoError(t, db.Create(&existing).Error)

	// fresh cache, as a second batch would have
	id, err := resolveBrand(db, BrandCache{}, "Slacktivity")
	require.NoError(t, err)
	assert.Equal(t, existing.ID, id)

	var count int64
	require.NoError(t, db.Model(&models.Brand{}).Count(&count).Error)
	assert.EqualValues(t, 1, count)
}

func TestLoadWebbingsPartialFailure(t *testing.T) {
	db := testDB(t)
	cfg := testConfig(t)

	// record 5 has no name and must be skipped without aborting the batch
	writeDataset(t, cfg, "webbings.json", `[
		{"name": "W1", "brand": "A", "materialType": "Nylon", "width": "25", "weight": "62"},
		{"name": "W2", "brand": "A", "materialType": "Polyester", "width": "25", "weight": "55"},
		{"name": "W3", "brand": "B", "materialType": "Dyneema", "width": "25", "weight": "30"},
		{"name": "W4", "brand": "B", "materialType": ["PES/Polyamid", "Nylon"], "width": "50", "weight": "110"},
		{"name": "", "brand": "B", "materialType": "Nylon", "width": "25", "weight": "60"},
		{"name": "W6", "brand": "C", "materialType": "Vectran", "width": "25", "weight": "48", "breakingStrength": "32kN"},
		{"name": "W7", "brand": "C", "materialType": "", "width": "", "weight": ""},
		{"name": "W8", "brand": "A", "materialType": "nylon", "width": "25", "weight": "60", "isa_certified": "yes"},
		{"name": "W9", "brand": "A", "materialType": "nylon", "width": "25", "weight": "60", "isa_certified": "no"},
		{"name": "W10", "brand": "D", "materialType": "polyester", "width": "25", "weight": "58", "stretch": "8%"}
	]`)

	report, err := LoadWebbings(db, cfg)
	require.NoError(t, err)
	assert.Equal(t, 9, report.Added)
	assert.Equal(t, 1, report.Skipped)
	require.Len(t, report.Errors, 1)
	assert.Equal(t, 4, report.Errors[0].Index)

	var webbings []models.Webbing
	require.NoError(t, db.Find(&webbings).Error)
	assert.Len(t, webbings, 9)

	// every committed record must reference an existing brand
	for _, w := range webbings {
		var brand models.Brand
		assert.NoError(t, db.First(&brand, w.BrandID).Error, "webbing %s has orphan brand id %d", w.Name, w.BrandID)
	}

	// four distinct brands, one row each
	var brandCount int64
	require.NoError(t, db.Model(&models.Brand{}).Count(&brandCount).Error)
	assert.EqualValues(t, 4, brandCount)

	// spot-check normalization
	var w4 models.Webbing
	require.NoError(t, db.Where("name = ?", "W4").First(&w4).Error)
	assert.Equal(t, models.FiberHybrid, w4.Material, "list input uses first element")

	var w6 models.Webbing
	require.NoError(t, db.Where("name = ?", "W6").First(&w6).Error)
	require.NotNil(t, w6.BreakingStrength)
	assert.Equal(t, 32.0, *w6.BreakingStrength)

	var w7 models.Webbing
	require.NoError(t, db.Where("name = ?", "W7").First(&w7).Error)
	assert.Equal(t, models.FiberOther, w7.Material)
	assert.Equal(t, 0, w7.Width)
	assert.Nil(t, w7.BreakingStrength)

	var w8, w9 models.Webbing
	require.NoError(t, db.Where("name = ?", "W8").First(&w8).Error)
	require.NoError(t, db.Where("name = ?", "W9").First(&w9).Error)
	assert.True(t, w8.ISACertified)
	assert.False(t, w9.ISACertified)
}

func TestLoadWebbingsSourceNotFound(t *testing.T) {
	db := testDB(t)
	cfg := testConfig(t)

	_, err := LoadWebbings(db, cfg)
	require.Error(t, err)
	assert.True(t, errors.Is(err, ErrSourceNotFound))

	// nothing touched the store
	var count int64
	require.NoError(t, db.Model(&models.Brand{}).Count(&count).Error)
	assert.EqualValues(t, 0, count)
}

func TestLoadWeblocksBothDatasetShapes(t *testing.T) {
	db := testDB(t)
	cfg := testConfig(t)

	writeDataset(t, cfg, "weblocks.json", `[
		{
			"name": "Quickslack",
			"brand": "Alpidex",
			"material": "Aluminum",
			"compatible_width": "24mm-26mm",
			"weight": "280gr",
			"breakingStrength": "40kN",
			"front_pin": "push pin",
			"attachment_point": "universal",
			"isa_certified": "approved"
		},
		{
			"name": "Lockoff",
			"brand": "Raed",
			"specifications": {
				"material": "Stainless Steel",
				"compatible_width": "26mm-24mm",
				"weight": "410gr",
				"price": "ask your dealer"
			},
			"pricing": [
				{"text": "no longer sold", "tooltip": "was 49.99 EUR before 2020"}
			]
		}
	]`)

	report, err := LoadWeblocks(db, cfg)
	require.NoError(t, err)
	assert.Equal(t, 2, report.Added)
	assert.Equal(t, 0, report.Skipped)

	var flat models.Weblock
	require.NoError(t, db.Where("name = ?", "Quickslack").First(&flat).Error)
	assert.Equal(t, models.MetalAluminum, flat.Material)
	assert.Equal(t, 24, flat.WidthMin)
	assert.Equal(t, 26, flat.WidthMax)
	assert.Equal(t, models.FrontPinPush, flat.FrontPin)
	assert.Equal(t, models.AttachmentUniversal, flat.AttachmentPoint)
	assert.True(t, flat.ISACertified)
	require.NotNil(t, flat.Weight)
	assert.Equal(t, 280.0, *flat.Weight)
	assert.Nil(t, flat.Price)
	assert.Equal(t, models.CurrencyEUR, flat.Currency, "fallback currency when nothing parses")

	var nested models.Weblock
	require.NoError(t, db.Where("name = ?", "Lockoff").First(&nested).Error)
	assert.Equal(t, models.MetalStainlessSteel, nested.Material)
	assert.Equal(t, 24, nested.WidthMin)
	assert.Equal(t, 26, nested.WidthMax, "reversed range is reordered")
	require.NotNil(t, nested.Price)
	assert.InDelta(t, 49.99, *nested.Price, 0.001)
	assert.Equal(t, models.CurrencyEUR, nested.Currency)
	assert.Equal(t, models.FrontPinOther, nested.FrontPin)
}

func TestLoadAllSeedsOnlyEmptyTables(t *testing.T) {
	db := testDB(t)
	cfg := testConfig(t)

	writeDataset(t, cfg, "webbings.json", `[{"name": "W", "brand": "A", "materialType": "Nylon", "width": "25", "weight": "60"}]`)
	writeDataset(t, cfg, "weblocks.json", `[{"name": "L", "brand": "A", "material": "steel", "compatible_width": "25mm"}]`)
	writeDataset(t, cfg, "rollers.json", `[{"name": "R", "brand": "B", "material": "plastic", "compatible_width": "25"}]`)
	writeDataset(t, cfg, "leashrings.json", `[{"name": "LR", "manufacturer": "B", "material": "stainless"}]`)
	writeDataset(t, cfg, "grips.json", `[{"name": "G", "manufacturer": "C", "material": "aluminum", "width_min": "25", "connection_type": "mounting hole"}]`)
	writeDataset(t, cfg, "treepros.json", `[{"name": "T", "manufacturer": "C", "has_sling_attachment": "yes", "price_unit": "pair"}]`)
	writeDataset(t, cfg, "starterkits.json", `[{"name": "S", "manufacturer": "D", "tensioning_type": "RAT1", "webbing_length": "15", "webbing_width": "50"}]`)
	writeDataset(t, cfg, "tricklinekits.json", `[{"name": "TK", "manufacturer": "D", "tensioning_type": "RAT2", "webbing_length": "25", "webbing_width": "50"}]`)

	require.NoError(t, LoadAll(db, cfg))

	counts := map[string]any{
		"webbings":      &models.Webbing{},
		"weblocks":      &models.Weblock{},
		"rollers":       &models.Roller{},
		"leashrings":    &models.LeashRing{},
		"grips":         &models.Grip{},
		"treepros":      &models.TreePro{},
		"starterkits":   &models.StarterKit{},
		"tricklinekits": &models.TricklineKit{},
	}
	for name, model := range counts {
		var count int64
		require.NoError(t, db.Model(model).Count(&count).Error)
		assert.EqualValues(t, 1, count, name)
	}

	// brands deduplicated across categories
	var brandCount int64
	require.NoError(t, db.Model(&models.Brand{}).Count(&brandCount).Error)
	assert.EqualValues(t, 4, brandCount)

	var kit models.StarterKit
	require.NoError(t, db.First(&kit).Error)
	assert.Equal(t, models.TensioningSingleRatchet, kit.TensioningType)
	assert.Equal(t, 15, kit.WebbingLength)

	var trickline models.TricklineKit
	require.NoError(t, db.First(&trickline).Error)
	assert.Equal(t, models.TensioningDoubleRatchet, trickline.TensioningType)

	// a second run must not duplicate anything: the emptiness guard skips
	// every already-seeded category
	require.NoError(t, LoadAll(db, cfg))
	for name, model := range counts {
		var count int64
		require.NoError(t, db.Model(model).Count(&count).Error)
		assert.EqualValues(t, 1, count, name)
	}
}

func TestLoadGripsRejectsMissingManufacturer(t *testing.T) {
	db := testDB(t)
	cfg := testConfig(t)

	writeDataset(t, cfg, "grips.json", `[
		{"name": "G1", "manufacturer": "C", "material": "aluminum", "width_min": "25"},
		{"name": "G2", "manufacturer": "", "material": "aluminum", "width_min": "25"}
	]`)

	report, err := LoadGrips(db, cfg)
	require.NoError(t, err)
	assert.Equal(t, 1, report.Added)
	assert.Equal(t, 1, report.Skipped)

	var count int64
	require.NoError(t, db.Model(&models.Grip{}).Count(&count).Error)
	assert.EqualValues(t, 1, count)
}
