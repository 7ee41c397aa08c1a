package loader

import (
	"github.com/International-Slackline-Association/SlackData/config"
	"github.com/International-Slackline-Association/SlackData/models"
	"github.com/International-Slackline-Association/SlackData/utils"

	"gorm.io/gorm"
)

// LoadWeblocks ingests the weblock dataset. Two generations of the
// dataset exist: a flat key-value shape and a newer one nesting most
// fields under "specifications" with a structured "pricing" block; the
// field and pricingSources helpers tolerate both.
func LoadWeblocks(db *gorm.DB, cfg *config.Config) (*Report, error) {
	records, err := readDataset(cfg.DatasetPath("weblocks.json"))
	if err != nil {
		return nil, err
	}
	fallback := fallbackCurrency(cfg)
	return loadBatch(db, "weblocks", records, func(tx *gorm.DB, cache BrandCache, raw RawRecord) (any, error) {
		return buildWeblock(tx, cache, raw, fallback)
	})
}

func buildWeblock(tx *gorm.DB, cache BrandCache, raw RawRecord, fallback models.Currency) (any, error) {
	name, brandName, err := identityFields(raw, "brand")
	if err != nil {
		return nil, err
	}
	brandID, err := resolveBrand(tx, cache, brandName)
	if err != nil {
		return nil, err
	}

	widthMin, widthMax := utils.ParseWidthRange(field(raw, "compatible_width"))
	price, currency := models.ExtractPrice(pricingSources(raw), fallback)

	return &models.Weblock{
		Name:             name,
		BrandID:          brandID,
		Material:         models.MetalMaterialFromString(utils.First(field(raw, "material"))),
		WidthMin:         widthMin,
		WidthMax:         widthMax,
		Weight:           utils.ParseMeasure(field(raw, "weight"), "gr"),
		BreakingStrength: utils.ParseMeasure(field(raw, "breakingStrength"), "kn"),
		FrontPin:         models.FrontPinFromString(utils.String(field(raw, "front_pin"))),
		AttachmentPoint:  models.AttachmentPointFromString(utils.String(field(raw, "attachment_point"))),
		ISACertified:     utils.ParseISAFlag(field(raw, "isa_certified")),
		Price:            price,
		Currency:         currency,
		Description:      utils.OptString(field(raw, "description")),
		Version:          utils.OptString(field(raw, "version")),
		Notes:            utils.OptString(field(raw, "notes")),
	}, nil
}

// fallbackCurrency resolves the configured fallback, defaulting to EUR
// if the configured code is itself unknown.
func fallbackCurrency(cfg *config.Config) models.Currency {
	if currency, ok := models.LookupCurrency(cfg.Data.FallbackCurrency); ok {
		return currency
	}
	return models.CurrencyEUR
}
