package loader

import (
	"github.com/International-Slackline-Association/SlackData/config"
	"github.com/International-Slackline-Association/SlackData/models"
	"github.com/International-Slackline-Association/SlackData/utils"

	"gorm.io/gorm"
)

// LoadTricklineKits ingests the trickline kit dataset.
func LoadTricklineKits(db *gorm.DB, cfg *config.Config) (*Report, error) {
	records, err := readDataset(cfg.DatasetPath("tricklinekits.json"))
	if err != nil {
		return nil, err
	}
	return loadBatch(db, "tricklinekits", records, buildTricklineKit)
}

func buildTricklineKit(tx *gorm.DB, cache BrandCache, raw RawRecord) (any, error) {
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

	return &models.TricklineKit{
		Name:            name,
		BrandID:         brandID,
		ReleaseDate:     utils.OptInt64(raw["release_date"]),
		ProductURL:      utils.OptString(raw["product_url"]),
		WebbingLength:   utils.Int(raw["webbing_length"]),
		WebbingWidth:    utils.Int(raw["webbing_width"]),
		Weight:          utils.OptFloat(raw["weight"]),
		TensioningType:  models.TensioningTypeFromString(utils.String(raw["tensioning_type"])),
		IncludesTreePro: utils.ParseBool(raw["includes_treepro"]),
		ISACertified:    utils.ParseISAFlag(raw["isa_certified"]),
		Price:           utils.OptFloat(raw["price"]),
		Currency:        currency,
		Description:     utils.OptString(raw["description"]),
		Version:         utils.OptString(raw["version"]),
		Notes:           utils.OptString(raw["notes"]),
	}, nil
}
