package models

import "time"

// User represents a reviewer.
type User struct {
	ID        uint `gorm:"primaryKey"`
	Name      string
	CreatedAt time.Time
	UpdatedAt time.Time

	Reviews []Review `gorm:"foreignKey:UserID;constraint:OnDelete:CASCADE;"`
}
