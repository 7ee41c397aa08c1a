package loader

import (
	"github.com/International-Slackline-Association/SlackData/config"
	"github.com/International-Slackline-Association/SlackData/models"
	"github.com/International-Slackline-Association/SlackData/utils"

	"gorm.io/gorm"
)

// LoadGrips ingests the grip dataset.
func LoadGrips(db *gorm.DB, cfg *config.Config) (*Report, error) {
	records, err := readDataset(cfg.DatasetPath("grips.json"))
	if err != nil {
		return nil, err
	}
	return loadBatch(db, "grips", records, buildGrip)
}

func buildGrip(tx *gorm.DB, cache BrandCache, raw RawRecord) (any, error) {
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

	return &models.Grip{
		Name:                    name,
		BrandID:                 brandID,
		ReleaseDate:             utils.OptString(raw["date_introduced"]),
		ProductURL:              utils.OptString(raw["product_url"]),
		Material:                models.MetalMaterialFromString(utils.First(raw["material"])),
		WidthMin:                utils.Int(raw["width_min"]),
		WidthMax:                utils.OptInt(raw["width_max"]),
		Weight:                  utils.OptFloat(raw["weight"]),
		WLL:                     utils.OptFloat(raw["wll"]),
		MBS:                     utils.OptFloat(raw["mbs"]),
		CommonSlippingThreshold: utils.OptFloat(raw["common_slipping_threshold"]),
		ConnectionType:          models.ConnectionTypeFromString(utils.String(raw["connection_type"])),
		ISACertified:            utils.ParseISAFlag(raw["isa_certified"]),
		Price:                   utils.OptFloat(raw["price"]),
		Currency:                currency,
		Description:             utils.OptString(raw["description"]),
		Version:                 utils.OptString(raw["version"]),
		Notes:                   utils.OptString(raw["notes"]),
	}, nil
}
