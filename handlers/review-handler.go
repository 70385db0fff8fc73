package handler

import (
	"errors"

	"github.com/gofiber/fiber/v2"

	"spotshare/middleware"
	"spotshare/models"
	"spotshare/repository"
)

type ReviewHandler struct {
	reviews *repository.ReviewRepository
	spots   *repository.SpotRepository
}

func NewReviewHandler(reviews *repository.ReviewRepository, spots *repository.SpotRepository) *ReviewHandler {
	return &ReviewHandler{reviews: reviews, spots: spots}
}

// CreateReview handles POST /api/spots/:spotId/reviews. A user gets one
// review per spot; a second submission for the same spot is a 409.
func (h *ReviewHandler) CreateReview(c *fiber.Ctx) error {
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

	exists, err := h.reviews.ExistsForSpotAndUser(spot.ID, userID)
	if err != nil {
		return internalError(c, err)
	}
	if exists {
		return c.Status(fiber.StatusConflict).JSON(fiber.Map{
			"message": "User already has a review for this spot",
		})
	}

	type reviewInput struct {
		Review string `json:"review"`
		Stars  int    `json:"stars"`
	}

	var input reviewInput
	if err := c.BodyParser(&input); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"message": "Invalid request body",
		})
	}

	review := models.Review{
		SpotID: spot.ID,
		UserID: userID,
		Review: input.Review,
		Stars:  input.Stars,
	}

	if err := h.reviews.Create(&review); err != nil {
		return internalError(c, err)
	}

	return c.Status(fiber.StatusCreated).JSON(review)
}

// GetSpotReviews handles GET /api/spots/:spotId/reviews
func (h *ReviewHandler) GetSpotReviews(c *fiber.Ctx) error {
	spotID, err := c.ParamsInt("spotId")
	if err != nil || spotID < 1 {
		return spotNotFound(c)
	}

	if _, err := h.spots.GetByID(uint(spotID)); err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return spotNotFound(c)
		}
		return internalError(c, err)
	}

	reviews, err := h.reviews.ListForSpotWithRelations(uint(spotID))
	if err != nil {
		return internalError(c, err)
	}

	type reviewListItem struct {
		models.Review
		User         repository.OwnerSummary `json:"User"`
		ReviewImages []models.ReviewImage    `json:"ReviewImages"`
	}

	items := make([]reviewListItem, 0, len(reviews))
	for _, review := range reviews {
		item := reviewListItem{
			Review: review,
			User: repository.OwnerSummary{
				ID:        review.User.ID,
				FirstName: review.User.FirstName,
				LastName:  review.User.LastName,
			},
			ReviewImages: review.ReviewImages,
		}
		if item.ReviewImages == nil {
			item.ReviewImages = []models.ReviewImage{}
		}
		items = append(items, item)
	}

	return c.JSON(fiber.Map{"reviews": items})
}
