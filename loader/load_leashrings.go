package loader

import (
	"github.com/International-Slackline-Association/SlackData/config"
	"github.com/International-Slackline-Association/SlackData/models"
	"github.com/International-Slackline-Association/SlackData/utils"

	"gorm.io/gorm"
)

// LoadLeashRings ingests the leash ring dataset.
func LoadLeashRings(db *gorm.DB, cfg *config.Config) (*Report, error) {
	records, err := readDataset(cfg.DatasetPath("leashrings.json"))
	if err != nil {
		return nil, err
	}
	return loadBatch(db, "leashrings", records, buildLeashRing)
}

func buildLeashRing(tx *gorm.DB, cache BrandCache, raw RawRecord) (any, error) {
	name, brandName, err := identityFields(raw, "manufacturer")
	if err != nil {
		return nil, err
	}
	brandID, err := resolveBrand(tx, cache, brandName)
	if err != nil {
		return nil, err
	}

	var currency *models.Currency
	if c, ok := models.LookupCurrency(utils.String(raw["currency"])); ok {
		currency = &c
	}

	return &models.LeashRing{
		Name:             name,
		BrandID:          brandID,
		ReleaseDate:      utils.OptString(raw["release_date"]),
		Material:         models.MetalMaterialFromString(utils.First(raw["material"])),
		InnerDiameter:    utils.OptFloat(raw["inner_diameter"]),
		OuterDiameter:    utils.OptFloat(raw["outer_diameter"]),
		Weight:           utils.OptFloat(raw["weight"]),
		BreakingStrength: utils.OptFloat(raw["breaking_strength"]),
		ISACertified:     utils.ParseISAFlag(raw["isa_certified"]),
		Price:            utils.OptFloat(raw["price"]),
		Currency:         currency,
		Description:      utils.OptString(raw["description"]),
		Version:          utils.OptString(raw["version"]),
		Notes:            utils.OptString(raw["notes"]),
	}, nil
}
