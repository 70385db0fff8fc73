package repository

import (
	"gorm.io/gorm"

	"spotshare/models"
)

type ReviewRepository struct {
	db *gorm.DB
}

func NewReviewRepository(db *gorm.DB) *ReviewRepository {
	return &ReviewRepository{db: db}
}

func (r *ReviewRepository) Create(review *models.Review) error {
	return r.db.Create(review).Error
}

// ListForSpotWithRelations loads a spot's reviews with each reviewer's
// identity and any attached review images.
func (r *ReviewRepository) ListForSpotWithRelations(spotID uint) ([]models.Review, error) {
	var reviews []models.Review
	err := r.db.Preload("User").Preload("ReviewImages").
		Where("spot_id = ?", spotID).
		Find(&reviews).Error
	return reviews, err
}

// ExistsForSpotAndUser reports whether the user already reviewed this spot.
// The check is scoped to both ids; one review per user per spot.
func (r *ReviewRepository) ExistsForSpotAndUser(spotID, userID uint) (bool, error) {
	var count int64
	err := r.db.Model(&models.Review{}).
		Where("spot_id = ? AND user_id = ?", spotID, userID).
		Count(&count).Error
	return count > 0, err
}
