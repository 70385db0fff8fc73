package handler

import (
	"github.com/gofiber/fiber/v2"
	"github.com/rs/zerolog/log"
	"gorm.io/gorm"

	"spotshare/repository"
)

// Handlers groups the route handlers so the router gets one object to wire.
type Handlers struct {
	Spots      *SpotHandler
	SpotImages *SpotImageHandler
	Reviews    *ReviewHandler
	Auth       *AuthHandler
}

func NewHandlers(db *gorm.DB) *Handlers {
	spots := repository.NewSpotRepository(db)
	images := repository.NewSpotImageRepository(db)
	reviews := repository.NewReviewRepository(db)
	users := repository.NewUserRepository(db)

	return &Handlers{
		Spots:      NewSpotHandler(spots),
		SpotImages: NewSpotImageHandler(images, spots),
		Reviews:    NewReviewHandler(reviews, spots),
		Auth:       NewAuthHandler(users),
	}
}

// internalError answers an unexpected persistence failure with a generic 500
// so internals never leak to clients.
func internalError(c *fiber.Ctx, err error) error {
	log.Error().Err(err).Str("method", c.Method()).Str("path", c.Path()).Msg("request failed")

	return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
		"message": "Internal server error",
	})
}
