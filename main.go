package main

import (
	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/recover"
	"github.com/rs/zerolog/log"

	"spotshare/auth"
	"spotshare/config"
	"spotshare/database"
	handler "spotshare/handlers"
	"spotshare/logger"
	"spotshare/models"
	"spotshare/router"
)

func main() {
	logger.Setup()

	db := database.GetDB()

	// Run migrations
	err := database.MigrateModels(
		&models.User{},
		&models.Spot{},
		&models.SpotImage{},
		&models.Review{},
		&models.ReviewImage{},
	)
	if err != nil {
		log.Fatal().Err(err).Msg("failed to migrate database")
	}

	auth.SetupAuthService(db)

	app := fiber.New()
	app.Use(recover.New())

	router.SetupRoutes(app, handler.NewHandlers(db))

	// close the database connection
	defer func() {
		if err := database.CloseDB(); err != nil {
			log.Error().Err(err).Msg("error closing the database connection")
		}
	}()

	port := config.ConfigDefault("PORT", "3000")
	log.Info().Str("port", port).Msg("server listening")
	if err := app.Listen(":" + port); err != nil {
		log.Fatal().Err(err).Msg("server stopped")
	}
}
