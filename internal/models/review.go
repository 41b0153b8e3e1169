package models

import "time"

// Review joins a Game and a User with a score and comment.
// Score is 0-10 by convention; the range is not enforced.
type Review struct {
	ID        uint `gorm:"primaryKey"`
	Score     int
	Comment   string
	CreatedAt time.Time
	UpdatedAt time.Time

	GameID uint `gorm:"not null;index"`
	UserID uint `gorm:"not null;index"`

	Game *Game `gorm:"foreignKey:GameID"`
	User *User `gorm:"foreignKey:UserID"`
}
