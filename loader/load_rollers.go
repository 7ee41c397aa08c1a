package loader

import (
	"github.com/International-Slackline-Association/SlackData/config"
	"github.com/International-Slackline-Association/SlackData/models"
	"github.com/International-Slackline-Association/SlackData/utils"

	"gorm.io/gorm"
)

// LoadRollers ingests the roller dataset.
func LoadRollers(db *gorm.DB, cfg *config.Config) (*Report, error) {
	records, err := readDataset(cfg.DatasetPath("rollers.json"))
	if err != nil {
		return nil, err
	}
	return loadBatch(db, "rollers", records, buildRoller)
}

func buildRoller(tx *gorm.DB, cache BrandCache, raw RawRecord) (any, error) {
	name, brandName, err := identityFields(raw, "brand")
	if err != nil {
		return nil, err
	}
	brandID, err := resolveBrand(tx, cache, brandName)
	if err != nil {
		return nil, err
	}

	widthMin, widthMax := utils.ParseWidthRange(raw["compatible_width"])

	var currency *models.Currency
	if c, ok := models.LookupCurrency(utils.String(raw["currency"])); ok {
		currency = &c
	}

	return &models.Roller{
		Name:             name,
		BrandID:          brandID,
		Material:         models.RollerMaterialFromString(utils.First(raw["material"])),
		WidthMin:         widthMin,
		WidthMax:         widthMax,
		Weight:           utils.ParseMeasure(raw["weight"], "gr"),
		BreakingStrength: utils.ParseMeasure(raw["breaking_strength"], "kn"),
		ISACertified:     utils.ParseISAFlag(raw["isa_certified"]),
		Price:            utils.OptFloat(raw["price"]),
		Currency:         currency,
		Description:      utils.OptString(raw["description"]),
		Version:          utils.OptString(raw["version"]),
		Notes:            utils.OptString(raw["notes"]),
	}, nil
}
