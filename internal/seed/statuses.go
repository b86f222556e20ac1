// Package seed provides database seeding utilities for development and testing.
package seed

import (
	"fmt"

	"atelier/internal/models"

	"gorm.io/gorm"
)

// Statuses ensures the built-in project statuses exist. It is idempotent and
// safe to run on every startup; existing rows are left untouched.
func Statuses(db *gorm.DB) error {
	if db == nil {
		return fmt.Errorf("nil database handle")
	}

	return db.Transaction(func(tx *gorm.DB) error {
		for _, name := range models.StatusNames() {
			status := models.Status{Name: name}
			if err := tx.Where("name = ?", name).FirstOrCreate(&status).Error; err != nil {
				return fmt.Errorf("seed status %q: %w", name, err)
			}
		}
		return nil
	})
}
