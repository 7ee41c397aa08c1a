// Package loader ingests the vendor JSON datasets into the catalog.
// Each category is loaded as one transactional batch: records that fail
// validation are skipped and reported, anything else rolls the batch
// back. Brand references are resolved through a per-batch cache backed
// by the brands table.
package loader

import (
	"fmt"
	"log"

	"github.com/International-Slackline-Association/SlackData/config"
	"github.com/International-Slackline-Association/SlackData/models"

	"gorm.io/gorm"
)

type categoryLoader struct {
	name  string
	model any
	load  func(db *gorm.DB, cfg *config.Config) (*Report, error)
}

// LoadAll seeds every category whose table is still empty, one category
// at a time. Sequential loads keep brand creation race-free; the
// emptiness guard makes a restart after a rolled-back batch retry that
// category from scratch.
func LoadAll(db *gorm.DB, cfg *config.Config) error {
	loaders := []categoryLoader{
		{"webbings", &models.Webbing{}, LoadWebbings},
		{"weblocks", &models.Weblock{}, LoadWeblocks},
		{"rollers", &models.Roller{}, LoadRollers},
		{"leashrings", &models.LeashRing{}, LoadLeashRings},
		{"grips", &models.Grip{}, LoadGrips},
		{"treepros", &models.TreePro{}, LoadTreePros},
		{"starterkits", &models.StarterKit{}, LoadStarterKits},
		{"tricklinekits", &models.TricklineKit{}, LoadTricklineKits},
	}

	for _, l := range loaders {
		var count int64
		if err := db.Model(l.model).Count(&count).Error; err != nil {
			return fmt.Errorf("checking %s table: %w", l.name, err)
		}
		if count > 0 {
			continue
		}

		log.Printf("Loading %s data into the database...", l.name)
		if _, err := l.load(db, cfg); err != nil {
			return fmt.Errorf("loading %s: %w", l.name, err)
		}
	}
	return nil
}
