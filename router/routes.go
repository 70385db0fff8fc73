package router

import (
	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/logger"

	handler "spotshare/handlers"
	"spotshare/middleware"
	"spotshare/validation"
)

func SetupRoutes(app *fiber.App, h *handler.Handlers) {
	api := app.Group("/api", logger.New(), middleware.AuthMiddleware())

	// Users and session
	api.Post("/users", h.Auth.Signup)
	api.Post("/session", h.Auth.Login)
	api.Delete("/session", h.Auth.Logout)

	// Spots
	spots := api.Group("/spots")
	spots.Get("/", h.Spots.GetAllSpots)
	spots.Get("/current", h.Spots.GetCurrentUserSpots)
	spots.Post("/", validation.ValidateSpotBody(), h.Spots.CreateSpot)
	spots.Get("/:spotId", h.Spots.GetSpot)
	spots.Put("/:spotId", validation.ValidateSpotBody(), h.Spots.UpdateSpot)
	spots.Delete("/:spotId", h.Spots.DeleteSpot)
	spots.Post("/:spotId/images", h.SpotImages.AddSpotImage)
	spots.Post("/:spotId/reviews", validation.ValidateReviewBody(), h.Reviews.CreateReview)
	spots.Get("/:spotId/reviews", h.Reviews.GetSpotReviews)

	// Spot images
	api.Delete("/spot-images/:imageId", h.SpotImages.DeleteSpotImage)
}
