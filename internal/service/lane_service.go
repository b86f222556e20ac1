package service

import (
	"context"

	"atelier/internal/models"
	"atelier/internal/repository"
)

// LaneService orchestrates lane CRUD under project ownership.
type LaneService struct {
	laneRepo repository.LaneRepository
	authz    *Authorizer
}

type CreateLaneInput struct {
	UserID    uint
	ProjectID uint
	Title     string
}

type UpdateLaneInput struct {
	UserID uint
	LaneID uint
	Title  string
}

// NewLaneService creates a new lane service.
func NewLaneService(laneRepo repository.LaneRepository, authz *Authorizer) *LaneService {
	return &LaneService{laneRepo: laneRepo, authz: authz}
}

// CreateLane adds a lane to a project the caller owns. The title must be
// unique, case-insensitively, within the project.
func (s *LaneService) CreateLane(ctx context.Context, in CreateLaneInput) (*models.Lane, error) {
	if _, err := s.authz.Project(ctx, in.ProjectID, in.UserID); err != nil {
		return nil, err
	}

	existing, err := s.laneRepo.FindByTitle(ctx, in.Title, in.ProjectID)
	if err != nil {
		return nil, err
	}
	if existing != nil {
		return nil, models.NewConflictError("There is already a lane with given title")
	}

	lane := &models.Lane{
		Title:     in.Title,
		ProjectID: in.ProjectID,
	}
	if err := s.laneRepo.Create(ctx, lane); err != nil {
		return nil, err
	}
	return lane, nil
}

// UpdateLane retitles a lane. The uniqueness check is scoped to the lane's
// project and excludes the lane itself, so renaming a lane to its own
// current title succeeds.
func (s *LaneService) UpdateLane(ctx context.Context, in UpdateLaneInput) error {
	lane, err := s.authz.Lane(ctx, in.LaneID, in.UserID)
	if err != nil {
		return err
	}

	existing, err := s.laneRepo.FindByTitle(ctx, in.Title, lane.ProjectID)
	if err != nil {
		return err
	}
	if existing != nil && existing.ID != lane.ID {
		return models.NewConflictError("There is already a lane with given title")
	}

	lane.Title = in.Title
	return s.laneRepo.Update(ctx, lane)
}

// RemoveLane deletes the lane's cards and then the lane.
func (s *LaneService) RemoveLane(ctx context.Context, id, userID uint) error {
	if _, err := s.authz.Lane(ctx, id, userID); err != nil {
		return err
	}
	return s.laneRepo.Delete(ctx, id)
}

// FindAll returns the project's lanes with their cards, both newest first.
func (s *LaneService) FindAll(ctx context.Context, projectID, userID uint) ([]models.Lane, error) {
	if _, err := s.authz.Project(ctx, projectID, userID); err != nil {
		return nil, err
	}
	return s.laneRepo.ListByProject(ctx, projectID)
}
