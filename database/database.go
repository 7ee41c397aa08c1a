package database

import (
	"log"

	"github.com/International-Slackline-Association/SlackData/config"
	"github.com/International-Slackline-Association/SlackData/models"

	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

var DB *gorm.DB

// InitDB opens the database connection and migrates the schema.
func InitDB(cfg *config.Config) {
	db, err := gorm.Open(sqlite.Open(cfg.Database.Path), &gorm.Config{
		Logger:         logger.Default.LogMode(logger.Warn),
		TranslateError: true,
	})
	if err != nil {
		log.Fatal("Failed to connect to database:", err)
	}

	DB = db

	err = DB.AutoMigrate(
		&models.Brand{},
		&models.Webbing{},
		&models.Weblock{},
		&models.Roller{},
		&models.LeashRing{},
		&models.Grip{},
		&models.TreePro{},
		&models.StarterKit{},
		&models.TricklineKit{},
	)
	if err != nil {
		log.Fatal("Failed to migrate database:", err)
	}

	log.Println("Database connected and migrated successfully")
}
