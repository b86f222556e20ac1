package repository

import (
	"context"
	"errors"

	"atelier/internal/models"

	"gorm.io/gorm"
)

// CardRepository defines the interface for card data operations.
type CardRepository interface {
	Create(ctx context.Context, card *models.Card) error
	// GetByID loads the card with its lane and the lane's project attached,
	// giving callers the full ownership chain.
	GetByID(ctx context.Context, id uint) (*models.Card, error)
	Update(ctx context.Context, card *models.Card) error
	Delete(ctx context.Context, id uint) error
}

type cardRepository struct {
	db *gorm.DB
}

// NewCardRepository creates a new card repository
func NewCardRepository(db *gorm.DB) CardRepository {
	return &cardRepository{db: db}
}

func (r *cardRepository) Create(ctx context.Context, card *models.Card) error {
	return r.db.WithContext(ctx).Create(card).Error
}

func (r *cardRepository) GetByID(ctx context.Context, id uint) (*models.Card, error) {
	var card models.Card
	err := r.db.WithContext(ctx).Preload("Lane.Project").First(&card, id).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &card, nil
}

func (r *cardRepository) Update(ctx context.Context, card *models.Card) error {
	return r.db.WithContext(ctx).
		Model(&models.Card{}).
		Where("id = ?", card.ID).
		Update("title", card.Title).Error
}

func (r *cardRepository) Delete(ctx context.Context, id uint) error {
	return r.db.WithContext(ctx).Delete(&models.Card{}, id).Error
}
