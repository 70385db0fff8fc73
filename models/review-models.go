package models

import "time"

// Review is a 1-5 star rating plus free text for a spot. A user may hold at
// most one review per spot, enforced by the composite unique index.
type Review struct {
	ID        uint      `json:"id" gorm:"primaryKey"`
	SpotID    uint      `json:"spotId" gorm:"not null;uniqueIndex:idx_reviews_spot_user"`
	UserID    uint      `json:"userId" gorm:"not null;uniqueIndex:idx_reviews_spot_user"`
	Review    string    `json:"review" gorm:"not null"`
	Stars     int       `json:"stars" gorm:"not null"`
	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`

	// Relationships
	User         User          `json:"-" gorm:"foreignKey:UserID"`
	ReviewImages []ReviewImage `json:"-" gorm:"foreignKey:ReviewID;constraint:OnDelete:CASCADE"`
}

// ReviewImage rows are read-only for this API; they only appear inside
// review listings.
type ReviewImage struct {
	ID        uint      `json:"id" gorm:"primaryKey"`
	ReviewID  uint      `json:"reviewId" gorm:"not null;index"`
	URL       string    `json:"url" gorm:"not null"`
	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`
}
