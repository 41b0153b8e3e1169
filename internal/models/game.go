package models

import "time"

// Game represents a game in the catalog.
type Game struct {
	ID        uint   `gorm:"primaryKey"`
	Title     string `gorm:"size:255;unique;not null"`
	Genre     string
	Platform  string
	Price     int
	CreatedAt time.Time
	UpdatedAt time.Time

	Reviews []Review `gorm:"foreignKey:GameID;constraint:OnDelete:CASCADE;"`
}
