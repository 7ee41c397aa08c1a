package loader

import (
	"github.com/International-Slackline-Association/SlackData/config"
	"github.com/International-Slackline-Association/SlackData/models"
	"github.com/International-Slackline-Association/SlackData/utils"

	"gorm.io/gorm"
)

// LoadTreePros ingests the tree protector dataset.
func LoadTreePros(db *gorm.DB, cfg *config.Config) (*Report, error) {
	records, err := readDataset(cfg.DatasetPath("treepros.json"))
	if err != nil {
		return nil, err
	}
	return loadBatch(db, "treepros", records, buildTreePro)
}

func buildTreePro(tx *gorm.DB, cache BrandCache, raw RawRecord) (any, error) {
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

	var priceUnit *models.PriceUnit
	if s := utils.OptString(raw["price_unit"]); s != nil {
		unit := models.PriceUnitFromString(*s)
		priceUnit = &unit
	}

	return &models.TreePro{
		Name:               name,
		BrandID:            brandID,
		ReleaseDate:        utils.OptInt64(raw["release_date"]),
		ProductURL:         utils.OptString(raw["product_url"]),
		Weight:             utils.OptFloat(raw["weight"]),
		Width:              utils.OptFloat(raw["width"]),
		Length:             utils.OptInt(raw["length"]),
		Thickness:          utils.OptInt(raw["thickness"]),
		HasSlingAttachment: utils.ParseBool(raw["has_sling_attachment"]),
		Price:              utils.OptFloat(raw["price"]),
		PriceUnit:          priceUnit,
		Currency:           currency,
		Description:        utils.OptString(raw["description"]),
		Version:            utils.OptString(raw["version"]),
		Notes:              utils.OptString(raw["notes"]),
	}, nil
}
