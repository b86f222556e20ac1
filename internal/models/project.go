package models

import "time"

// Status is one of the fixed project statuses seeded at bootstrap
// (Planning, InProgress, Paused, Done). New projects start in Planning,
// resolved by name rather than by a hardcoded row id.
type Status struct {
	ID   uint   `gorm:"primaryKey" json:"id"`
	Name string `gorm:"uniqueIndex;not null" json:"name"`
}

// Fixed status names.
const (
	StatusPlanning   = "Planning"
	StatusInProgress = "InProgress"
	StatusPaused     = "Paused"
	StatusDone       = "Done"
)

// StatusNames lists the seeded statuses in display order.
func StatusNames() []string {
	return []string{StatusPlanning, StatusInProgress, StatusPaused, StatusDone}
}

// Project is the top-level unit owned by a user. Its name is unique
// case-insensitively within the owner's projects. Every project owns exactly
// one moodboard, created in the same transaction.
type Project struct {
	ID        uint      `gorm:"primaryKey" json:"id"`
	Name      string    `gorm:"not null" json:"name"`
	UserID    uint      `gorm:"not null;index" json:"user_id"`
	StatusID  uint      `gorm:"not null" json:"status_id"`
	User      User      `gorm:"foreignKey:UserID" json:"-"`
	Status    Status    `gorm:"foreignKey:StatusID" json:"-"`
	CreatedAt time.Time `json:"created_at"`
}

// Moodboard is the project-scoped image collection, exactly one per project.
type Moodboard struct {
	ID        uint      `gorm:"primaryKey" json:"id"`
	ProjectID uint      `gorm:"not null;uniqueIndex" json:"project_id"`
	Project   Project   `gorm:"foreignKey:ProjectID" json:"-"`
	CreatedAt time.Time `json:"created_at"`
}
