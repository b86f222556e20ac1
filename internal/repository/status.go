package repository

import (
	"context"
	"errors"

	"atelier/internal/models"

	"gorm.io/gorm"
)

// StatusRepository resolves project statuses from the fixed enumeration.
type StatusRepository interface {
	GetByName(ctx context.Context, name string) (*models.Status, error)
	List(ctx context.Context) ([]models.Status, error)
}

type statusRepository struct {
	db *gorm.DB
}

// NewStatusRepository creates a new status repository
func NewStatusRepository(db *gorm.DB) StatusRepository {
	return &statusRepository{db: db}
}

func (r *statusRepository) GetByName(ctx context.Context, name string) (*models.Status, error) {
	var status models.Status
	err := r.db.WithContext(ctx).Where("name = ?", name).First(&status).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &status, nil
}

func (r *statusRepository) List(ctx context.Context) ([]models.Status, error) {
	var statuses []models.Status
	err := r.db.WithContext(ctx).Order("id").Find(&statuses).Error
	return statuses, err
}
