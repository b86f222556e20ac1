package models

import "time"

// Lane is a named column within a project grouping cards. Its title is
// unique case-insensitively within the owning project. Position is a
// reserved ordering field, currently always zero.
type Lane struct {
	ID        uint      `gorm:"primaryKey" json:"id"`
	Title     string    `gorm:"not null" json:"title"`
	Position  int       `gorm:"not null;default:0" json:"position"`
	ProjectID uint      `gorm:"not null;index" json:"project_id"`
	Project   Project   `gorm:"foreignKey:ProjectID" json:"-"`
	Cards     []Card    `gorm:"foreignKey:LaneID" json:"cards"`
	CreatedAt time.Time `json:"created_at"`
}

// Card belongs to a lane. Titles are not unique. Position is reserved and
// currently always zero.
type Card struct {
	ID        uint      `gorm:"primaryKey" json:"id"`
	Title     string    `gorm:"not null" json:"title"`
	Position  int       `gorm:"not null;default:0" json:"position"`
	LaneID    uint      `gorm:"not null;index" json:"lane_id"`
	Lane      Lane      `gorm:"foreignKey:LaneID" json:"-"`
	CreatedAt time.Time `json:"created_at"`
}
