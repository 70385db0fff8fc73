package repository

import (
	"errors"

	"gorm.io/gorm"

	"spotshare/models"
)

// ErrNotFound is returned by point lookups when the row does not exist.
var ErrNotFound = errors.New("record not found")

type SpotRepository struct {
	db *gorm.DB
}

func NewSpotRepository(db *gorm.DB) *SpotRepository {
	return &SpotRepository{db: db}
}

// ListWithRelations loads every spot together with its images and reviews,
// for the collection listing transformation.
func (r *SpotRepository) ListWithRelations() ([]models.Spot, error) {
	var spots []models.Spot
	err := r.db.Preload("SpotImages").Preload("Reviews").Find(&spots).Error
	return spots, err
}

// ListByOwnerWithRelations is ListWithRelations scoped to one owner.
func (r *SpotRepository) ListByOwnerWithRelations(ownerID uint) ([]models.Spot, error) {
	var spots []models.Spot
	err := r.db.Preload("SpotImages").Preload("Reviews").
		Where("owner_id = ?", ownerID).
		Find(&spots).Error
	return spots, err
}

func (r *SpotRepository) GetByID(id uint) (*models.Spot, error) {
	var spot models.Spot
	if err := r.db.First(&spot, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrNotFound
		}
		return nil, err
	}
	return &spot, nil
}

// SpotImageSummary is the trimmed image shape used on the detail endpoint.
type SpotImageSummary struct {
	ID      uint   `json:"id"`
	URL     string `json:"url"`
	Preview bool   `json:"preview"`
}

// OwnerSummary is the public identity of a spot's owner or a reviewer.
type OwnerSummary struct {
	ID        uint   `json:"id"`
	FirstName string `json:"firstName"`
	LastName  string `json:"lastName"`
}

// SpotDetail is the fixed shape for the single-spot endpoint: the spot plus
// DB-side review aggregates, trimmed images and the owner's identity.
// AvgStarRating stays nil when the spot has no reviews.
type SpotDetail struct {
	models.Spot
	NumReviews    int64              `json:"numReviews"`
	AvgStarRating *float64           `json:"avgStarRating"`
	SpotImages    []SpotImageSummary `json:"SpotImages"`
	Owner         OwnerSummary       `json:"Owner"`
}

func (r *SpotRepository) GetDetail(id uint) (*SpotDetail, error) {
	spot, err := r.GetByID(id)
	if err != nil {
		return nil, err
	}

	detail := SpotDetail{Spot: *spot, SpotImages: []SpotImageSummary{}}

	var agg struct {
		NumReviews    int64
		AvgStarRating *float64
	}
	err = r.db.Model(&models.Review{}).
		Select("COUNT(id) AS num_reviews, AVG(stars) AS avg_star_rating").
		Where("spot_id = ?", id).
		Scan(&agg).Error
	if err != nil {
		return nil, err
	}
	detail.NumReviews = agg.NumReviews
	detail.AvgStarRating = agg.AvgStarRating

	err = r.db.Model(&models.SpotImage{}).
		Select("id, url, preview").
		Where("spot_id = ?", id).
		Scan(&detail.SpotImages).Error
	if err != nil {
		return nil, err
	}

	var owner models.User
	if err := r.db.First(&owner, spot.OwnerID).Error; err != nil {
		return nil, err
	}
	detail.Owner = OwnerSummary{
		ID:        owner.ID,
		FirstName: owner.FirstName,
		LastName:  owner.LastName,
	}

	return &detail, nil
}

func (r *SpotRepository) Create(spot *models.Spot) error {
	return r.db.Create(spot).Error
}

func (r *SpotRepository) Update(spot *models.Spot) error {
	return r.db.Save(spot).Error
}

// Delete removes the spot row; images and reviews go with it through the
// ON DELETE CASCADE constraints.
func (r *SpotRepository) Delete(spot *models.Spot) error {
	return r.db.Delete(spot).Error
}
