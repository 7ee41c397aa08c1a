package main

import (
	"log"

	"github.com/International-Slackline-Association/SlackData/config"
	"github.com/International-Slackline-Association/SlackData/database"
	"github.com/International-Slackline-Association/SlackData/loader"
	"github.com/International-Slackline-Association/SlackData/routes"

	"github.com/gin-gonic/gin"
)

func main() {
	cfg := config.Load()

	gin.SetMode(cfg.Server.Mode)

	database.InitDB(cfg)

	// Seed categories whose tables are still empty, one batch per
	// category, before taking traffic.
	if err := loader.LoadAll(database.DB, cfg); err != nil {
		log.Fatal("Failed to seed catalog:", err)
	}

	r := routes.SetupRoutes()

	log.Printf("Server starting on port %s", cfg.Server.Port)
	if err := r.Run(":" + cfg.Server.Port); err != nil {
		log.Fatal("Failed to start server:", err)
	}
}
