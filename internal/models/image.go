package models

import "time"

// Image is a moodboard entry referencing an external picture by URL.
// The placement fields are reserved for a future board layout and are
// always written as zero.
type Image struct {
	ID          uint      `gorm:"primaryKey" json:"id"`
	URL         string    `gorm:"not null" json:"url"`
	PosX        int       `gorm:"not null;default:0" json:"pos_x"`
	PosY        int       `gorm:"not null;default:0" json:"pos_y"`
	Height      int       `gorm:"not null;default:0" json:"height"`
	Width       int       `gorm:"not null;default:0" json:"width"`
	MoodboardID uint      `gorm:"not null;index" json:"moodboard_id"`
	Moodboard   Moodboard `gorm:"foreignKey:MoodboardID" json:"-"`
	CreatedAt   time.Time `json:"created_at"`
}
