package service

import (
	"context"

	"atelier/internal/models"
	"atelier/internal/repository"
)

// CardService orchestrates card CRUD; ownership is always derived
// transitively through the lane's project.
type CardService struct {
	cardRepo repository.CardRepository
	authz    *Authorizer
}

type CreateCardInput struct {
	UserID uint
	LaneID uint
	Title  string
}

type UpdateCardInput struct {
	UserID uint
	CardID uint
	Title  string
}

// NewCardService creates a new card service.
func NewCardService(cardRepo repository.CardRepository, authz *Authorizer) *CardService {
	return &CardService{cardRepo: cardRepo, authz: authz}
}

// CreateCard adds a card to a lane whose project the caller owns.
// Card titles are not unique.
func (s *CardService) CreateCard(ctx context.Context, in CreateCardInput) (*models.Card, error) {
	if _, err := s.authz.Lane(ctx, in.LaneID, in.UserID); err != nil {
		return nil, err
	}

	card := &models.Card{
		Title:  in.Title,
		LaneID: in.LaneID,
	}
	if err := s.cardRepo.Create(ctx, card); err != nil {
		return nil, err
	}
	return card, nil
}

// UpdateCard retitles a card.
func (s *CardService) UpdateCard(ctx context.Context, in UpdateCardInput) error {
	card, err := s.authz.Card(ctx, in.CardID, in.UserID)
	if err != nil {
		return err
	}

	card.Title = in.Title
	return s.cardRepo.Update(ctx, card)
}

// RemoveCard deletes a card.
func (s *CardService) RemoveCard(ctx context.Context, id, userID uint) error {
	if _, err := s.authz.Card(ctx, id, userID); err != nil {
		return err
	}
	return s.cardRepo.Delete(ctx, id)
}
