package repository

import (
	"errors"

	"gorm.io/gorm"

	"spotshare/models"
)

type SpotImageRepository struct {
	db *gorm.DB
}

func NewSpotImageRepository(db *gorm.DB) *SpotImageRepository {
	return &SpotImageRepository{db: db}
}

func (r *SpotImageRepository) Create(image *models.SpotImage) error {
	return r.db.Create(image).Error
}

func (r *SpotImageRepository) GetByID(id uint) (*models.SpotImage, error) {
	var image models.SpotImage
	if err := r.db.First(&image, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrNotFound
		}
		return nil, err
	}
	return &image, nil
}

func (r *SpotImageRepository) Delete(image *models.SpotImage) error {
	return r.db.Delete(image).Error
}
