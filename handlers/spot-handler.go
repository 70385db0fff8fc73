package handler

import (
	"errors"

	"github.com/gofiber/fiber/v2"

	"spotshare/middleware"
	"spotshare/models"
	"spotshare/repository"
)

type SpotHandler struct {
	spots *repository.SpotRepository
}

func NewSpotHandler(spots *repository.SpotRepository) *SpotHandler {
	return &SpotHandler{spots: spots}
}

// spotInput carries the writable listing fields. The validation middleware
// has already vetted the payload when this is parsed inside a handler.
type spotInput struct {
	Address     string  `json:"address"`
	City        string  `json:"city"`
	State       string  `json:"state"`
	Country     string  `json:"country"`
	Lat         float64 `json:"lat"`
	Lng         float64 `json:"lng"`
	Name        string  `json:"name"`
	Description string  `json:"description"`
	Price       float64 `json:"price"`
}

type spotListItem struct {
	models.Spot
	AvgRating    float64 `json:"avgRating"`
	PreviewImage string  `json:"previewImage"`
}

// buildSpotListing computes avgRating and previewImage per spot and strips
// the raw image/review collections from the output.
func buildSpotListing(spots []models.Spot) []spotListItem {
	items := make([]spotListItem, 0, len(spots))

	for _, spot := range spots {
		item := spotListItem{Spot: spot, PreviewImage: "no preview url"}

		if len(spot.Reviews) > 0 {
			count := 0
			for _, review := range spot.Reviews {
				count += review.Stars
			}
			item.AvgRating = float64(count) / float64(len(spot.Reviews))
		}

		// last image flagged preview wins
		for _, image := range spot.SpotImages {
			if image.Preview {
				item.PreviewImage = image.URL
			}
		}

		items = append(items, item)
	}

	return items
}

// GetAllSpots handles GET /api/spots
func (h *SpotHandler) GetAllSpots(c *fiber.Ctx) error {
	spots, err := h.spots.ListWithRelations()
	if err != nil {
		return internalError(c, err)
	}

	return c.JSON(fiber.Map{"Spots": buildSpotListing(spots)})
}

// GetCurrentUserSpots handles GET /api/spots/current
func (h *SpotHandler) GetCurrentUserSpots(c *fiber.Ctx) error {
	userID, ok := middleware.CurrentUser(c)
	if !ok {
		return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{
			"message": "Authentication required",
		})
	}

	spots, err := h.spots.ListByOwnerWithRelations(userID)
	if err != nil {
		return internalError(c, err)
	}

	return c.JSON(fiber.Map{"Spots": buildSpotListing(spots)})
}

// GetSpot handles GET /api/spots/:spotId
func (h *SpotHandler) GetSpot(c *fiber.Ctx) error {
	spotID, err := c.ParamsInt("spotId")
	if err != nil || spotID < 1 {
		return spotNotFound(c)
	}

	detail, err := h.spots.GetDetail(uint(spotID))
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return spotNotFound(c)
		}
		return internalError(c, err)
	}

	return c.JSON(detail)
}

// CreateSpot handles POST /api/spots. The validation middleware runs before
// the auth check, so validation errors take precedence over 401 here.
func (h *SpotHandler) CreateSpot(c *fiber.Ctx) error {
	userID, ok := middleware.CurrentUser(c)
	if !ok {
		return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{
			"message": "Authentication required",
		})
	}

	var input spotInput
	if err := c.BodyParser(&input); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"message": "Invalid request body",
		})
	}

	spot := models.Spot{
		OwnerID:     userID,
		Address:     input.Address,
		City:        input.City,
		State:       input.State,
		Country:     input.Country,
		Lat:         input.Lat,
		Lng:         input.Lng,
		Name:        input.Name,
		Description: input.Description,
		Price:       input.Price,
	}

	if err := h.spots.Create(&spot); err != nil {
		return internalError(c, err)
	}

	return c.Status(fiber.StatusCreated).JSON(spot)
}

// UpdateSpot handles PUT /api/spots/:spotId
func (h *SpotHandler) UpdateSpot(c *fiber.Ctx) error {
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

	var input spotInput
	if err := c.BodyParser(&input); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"message": "Invalid request body",
		})
	}

	spot.Address = input.Address
	spot.City = input.City
	spot.State = input.State
	spot.Country = input.Country
	spot.Lat = input.Lat
	spot.Lng = input.Lng
	spot.Name = input.Name
	spot.Description = input.Description
	spot.Price = input.Price

	if err := h.spots.Update(spot); err != nil {
		return internalError(c, err)
	}

	return c.JSON(spot)
}

// DeleteSpot handles DELETE /api/spots/:spotId
func (h *SpotHandler) DeleteSpot(c *fiber.Ctx) error {
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

	if err := h.spots.Delete(spot); err != nil {
		return internalError(c, err)
	}

	return c.JSON(fiber.Map{"message": "Successfully deleted"})
}

func spotNotFound(c *fiber.Ctx) error {
	return c.Status(fiber.StatusNotFound).JSON(fiber.Map{
		"message": "Spot couldn't be found",
	})
}

func forbidden(c *fiber.Ctx) error {
	return c.Status(fiber.StatusForbidden).JSON(fiber.Map{
		"message": "Forbidden",
	})
}
