package repository

import (
	"context"
	"errors"

	"atelier/internal/models"

	"gorm.io/gorm"
)

// MoodboardRepository defines the interface for moodboard data operations.
// Moodboards are created and deleted by the project repository; this one
// only resolves them.
type MoodboardRepository interface {
	// GetByID loads the moodboard with its owning project attached.
	GetByID(ctx context.Context, id uint) (*models.Moodboard, error)
	GetByProjectID(ctx context.Context, projectID uint) (*models.Moodboard, error)
}

type moodboardRepository struct {
	db *gorm.DB
}

// NewMoodboardRepository creates a new moodboard repository
func NewMoodboardRepository(db *gorm.DB) MoodboardRepository {
	return &moodboardRepository{db: db}
}

func (r *moodboardRepository) GetByID(ctx context.Context, id uint) (*models.Moodboard, error) {
	var moodboard models.Moodboard
	err := r.db.WithContext(ctx).Preload("Project").First(&moodboard, id).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &moodboard, nil
}

func (r *moodboardRepository) GetByProjectID(ctx context.Context, projectID uint) (*models.Moodboard, error) {
	var moodboard models.Moodboard
	err := r.db.WithContext(ctx).Where("project_id = ?", projectID).First(&moodboard).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &moodboard, nil
}
