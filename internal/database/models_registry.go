package database

import "atelier/internal/models"

// PersistentModels returns the authoritative set of schema-managed GORM models.
// Order matters for migration: parents before children.
func PersistentModels() []interface{} {
	return []interface{}{
		&models.User{},
		&models.Status{},
		&models.Project{},
		&models.Moodboard{},
		&models.Image{},
		&models.Lane{},
		&models.Card{},
	}
}
