package loader

import (
	"github.com/International-Slackline-Association/SlackData/config"
	"github.com/International-Slackline-Association/SlackData/models"
	"github.com/International-Slackline-Association/SlackData/utils"

	"gorm.io/gorm"
)

// LoadWebbings ingests the webbing dataset.
func LoadWebbings(db *gorm.DB, cfg *config.Config) (*Report, error) {
	records, err := readDataset(cfg.DatasetPath("webbings.json"))
	if err != nil {
		return nil, err
	}
	return loadBatch(db, "webbings", records, buildWebbing)
}

func buildWebbing(tx *gorm.DB, cache BrandCache, raw RawRecord) (any, error) {
	name, brandName, err := identityFields(raw, "brand")
	if err != nil {
		return nil, err
	}
	brandID, err := resolveBrand(tx, cache, brandName)
	if err != nil {
		return nil, err
	}

	return &models.Webbing{
		Name:             name,
		BrandID:          brandID,
		Material:         models.FiberMaterialFromString(utils.First(raw["materialType"])),
		Width:            utils.Int(raw["width"]),
		Weight:           utils.Float(raw["weight"]),
		BreakingStrength: utils.ParseMeasure(raw["breakingStrength"], "kn"),
		Stretch:          utils.ParseMeasure(raw["stretch"], "%"),
		ISACertified:     utils.ParseISAFlag(raw["isa_certified"]),
		Description:      utils.OptString(raw["description"]),
		Version:          utils.OptString(raw["version"]),
		Notes:            utils.OptString(raw["notes"]),
	}, nil
}
