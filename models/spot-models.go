package models

import "time"

// Spot is a listable property record. Associations are never marshalled
// directly; handlers shape their own response bodies.
type Spot struct {
	ID          uint      `json:"id" gorm:"primaryKey"`
	OwnerID     uint      `json:"ownerId" gorm:"not null;index"`
	Address     string    `json:"address" gorm:"not null"`
	City        string    `json:"city" gorm:"not null"`
	State       string    `json:"state" gorm:"not null"`
	Country     string    `json:"country" gorm:"not null"`
	Lat         float64   `json:"lat" gorm:"not null"`
	Lng         float64   `json:"lng" gorm:"not null"`
	Name        string    `json:"name" gorm:"size:50;not null"`
	Description string    `json:"description" gorm:"not null"`
	Price       float64   `json:"price" gorm:"not null"`
	CreatedAt   time.Time `json:"createdAt"`
	UpdatedAt   time.Time `json:"updatedAt"`

	// Relationships
	Owner      User        `json:"-" gorm:"foreignKey:OwnerID"`
	SpotImages []SpotImage `json:"-" gorm:"foreignKey:SpotID;constraint:OnDelete:CASCADE"`
	Reviews    []Review    `json:"-" gorm:"foreignKey:SpotID;constraint:OnDelete:CASCADE"`
}

type SpotImage struct {
	ID        uint      `json:"id" gorm:"primaryKey"`
	SpotID    uint      `json:"spotId" gorm:"not null;index"`
	URL       string    `json:"url" gorm:"not null"`
	Preview   bool      `json:"preview"`
	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`
}
