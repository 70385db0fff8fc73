package handler

import (
	"errors"

	"github.com/gofiber/fiber/v2"

	"spotshare/middleware"
	"spotshare/models"
	"spotshare/repository"
)

type SpotImageHandler struct {
	images *repository.SpotImageRepository
	spots  *repository.SpotRepository
}

func NewSpotImageHandler(images *repository.SpotImageRepository, spots *repository.SpotRepository) *SpotImageHandler {
	return &SpotImageHandler{images: images, spots: spots}
}

// AddSpotImage handles POST /api/spots/:spotId/images
func (h *SpotImageHandler) AddSpotImage(c *fiber.Ctx) error {
	userID, ok := middleware.CurrentUser(c)
	if !ok {
		return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{
			"message": "Authentication required",
		})
	}

	spotID, err := c.ParamsInt("spotId")
	if err != nil || spotID < 1 {
		return spotNotFound(c)
	}

	spot, err := h.spots.GetByID(uint(spotID))
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return spotNotFound(c)
		}
		return internalError(c, err)
	}

	if spot.OwnerID != userID {
		return forbidden(c)
	}

	type imageInput struct {
		URL     string `json:"url"`
		Preview bool   `json:"preview"`
	}

	var input imageInput
	if err := c.BodyParser(&input); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"message": "Invalid request body",
		})
	}

	image := models.SpotImage{
		SpotID:  spot.ID,
		URL:     input.URL,
		Preview: input.Preview,
	}

	if err := h.images.Create(&image); err != nil {
		return internalError(c, err)
	}

	return c.Status(fiber.StatusCreated).JSON(fiber.Map{
		"id":      image.ID,
		"url":     image.URL,
		"preview": image.Preview,
	})
}

// DeleteSpotImage handles DELETE /api/spot-images/:imageId. The image and its
// parent spot are both resolved before any branching; only the parent spot's
// owner may delete.
func (h *SpotImageHandler) DeleteSpotImage(c *fiber.Ctx) error {
	userID, ok := middleware.CurrentUser(c)
	if !ok {
		return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{
			"message": "Authentication required",
		})
	}

	imageID, err := c.ParamsInt("imageId")
	if err != nil || imageID < 1 {
		return imageNotFound(c)
	}

	image, err := h.images.GetByID(uint(imageID))
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return imageNotFound(c)
		}
		return internalError(c, err)
	}

	spot, err := h.spots.GetByID(image.SpotID)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return spotNotFound(c)
		}
		return internalError(c, err)
	}

	if spot.OwnerID != userID {
		return forbidden(c)
	}

	if err := h.images.Delete(image); err != nil {
		return internalError(c, err)
	}

	return c.JSON(fiber.Map{"message": "Successfully deleted"})
}

func imageNotFound(c *fiber.Ctx) error {
	return c.Status(fiber.StatusNotFound).JSON(fiber.Map{
		"message": "Spot Image couldn't be found",
	})
}
