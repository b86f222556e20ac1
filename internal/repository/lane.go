package repository

import (
	"context"
	"errors"

	"atelier/internal/models"

	"gorm.io/gorm"
)

// LaneRepository defines the interface for lane data operations.
type LaneRepository interface {
	Create(ctx context.Context, lane *models.Lane) error
	// GetByID loads the lane with its owning project attached so callers
	// can walk the ownership chain without a second query.
	GetByID(ctx context.Context, id uint) (*models.Lane, error)
	// FindByTitle does a case-insensitive title lookup scoped to the project.
	FindByTitle(ctx context.Context, title string, projectID uint) (*models.Lane, error)
	// ListByProject returns the project's lanes with their cards, both
	// ordered by creation time descending.
	ListByProject(ctx context.Context, projectID uint) ([]models.Lane, error)
	Update(ctx context.Context, lane *models.Lane) error
	// Delete removes the lane's cards and then the lane itself.
	Delete(ctx context.Context, id uint) error
}

type laneRepository struct {
	db *gorm.DB
}

// NewLaneRepository creates a new lane repository
func NewLaneRepository(db *gorm.DB) LaneRepository {
	return &laneRepository{db: db}
}

func (r *laneRepository) Create(ctx context.Context, lane *models.Lane) error {
	return r.db.WithContext(ctx).Create(lane).Error
}

func (r *laneRepository) GetByID(ctx context.Context, id uint) (*models.Lane, error) {
	var lane models.Lane
	err := r.db.WithContext(ctx).Preload("Project").First(&lane, id).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &lane, nil
}

func (r *laneRepository) FindByTitle(ctx context.Context, title string, projectID uint) (*models.Lane, error) {
	var lane models.Lane
	err := r.db.WithContext(ctx).
		Where("LOWER(title) = LOWER(?) AND project_id = ?", title, projectID).
		First(&lane).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &lane, nil
}

func (r *laneRepository) ListByProject(ctx context.Context, projectID uint) ([]models.Lane, error) {
	var lanes []models.Lane
	err := r.db.WithContext(ctx).
		Preload("Cards", func(db *gorm.DB) *gorm.DB {
			return db.Order("cards.created_at DESC")
		}).
		Where("project_id = ?", projectID).
		Order("created_at DESC").
		Find(&lanes).Error
	return lanes, err
}

func (r *laneRepository) Update(ctx context.Context, lane *models.Lane) error {
	return r.db.WithContext(ctx).
		Model(&models.Lane{}).
		Where("id = ?", lane.ID).
		Update("title", lane.Title).Error
}

func (r *laneRepository) Delete(ctx context.Context, id uint) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Where("lane_id = ?", id).Delete(&models.Card{}).Error; err != nil {
			return err
		}
		return tx.Delete(&models.Lane{}, id).Error
	})
}
