// Package service implements the domain services orchestrating repositories
// and ownership authorization.
package service

import (
	"context"

	"atelier/internal/models"
	"atelier/internal/repository"
)

// Authorizer resolves the owner of an entity by walking its ancestor chain
// (card -> lane -> project -> user, image -> moodboard -> project -> user)
// and checks it against the requesting user. Each method returns the loaded
// entity with its ancestors attached so callers never re-query, a NotFound
// error when the id resolves to nothing, or a Forbidden error when the
// transitive owner is someone else. It never writes.
type Authorizer struct {
	projects   repository.ProjectRepository
	lanes      repository.LaneRepository
	cards      repository.CardRepository
	moodboards repository.MoodboardRepository
	images     repository.ImageRepository
}

// NewAuthorizer creates an Authorizer over the entity repositories.
func NewAuthorizer(
	projects repository.ProjectRepository,
	lanes repository.LaneRepository,
	cards repository.CardRepository,
	moodboards repository.MoodboardRepository,
	images repository.ImageRepository,
) *Authorizer {
	return &Authorizer{
		projects:   projects,
		lanes:      lanes,
		cards:      cards,
		moodboards: moodboards,
		images:     images,
	}
}

// Project authorizes direct project access.
func (a *Authorizer) Project(ctx context.Context, id, userID uint) (*models.Project, error) {
	project, err := a.projects.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if project == nil {
		return nil, models.NewNotFoundError("project")
	}
	if project.UserID != userID {
		return nil, models.NewForbiddenError()
	}
	return project, nil
}

// Lane authorizes lane access through the owning project.
func (a *Authorizer) Lane(ctx context.Context, id, userID uint) (*models.Lane, error) {
	lane, err := a.lanes.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if lane == nil {
		return nil, models.NewNotFoundError("lane")
	}
	if lane.Project.UserID != userID {
		return nil, models.NewForbiddenError()
	}
	return lane, nil
}

// Card authorizes card access through lane and project.
func (a *Authorizer) Card(ctx context.Context, id, userID uint) (*models.Card, error) {
	card, err := a.cards.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if card == nil {
		return nil, models.NewNotFoundError("card")
	}
	if card.Lane.Project.UserID != userID {
		return nil, models.NewForbiddenError()
	}
	return card, nil
}

// Moodboard authorizes moodboard access through the owning project.
func (a *Authorizer) Moodboard(ctx context.Context, id, userID uint) (*models.Moodboard, error) {
	moodboard, err := a.moodboards.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if moodboard == nil {
		return nil, models.NewNotFoundError("moodboard")
	}
	if moodboard.Project.UserID != userID {
		return nil, models.NewForbiddenError()
	}
	return moodboard, nil
}

// Image authorizes image access through moodboard and project.
func (a *Authorizer) Image(ctx context.Context, id, userID uint) (*models.Image, error) {
	image, err := a.images.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if image == nil {
		return nil, models.NewNotFoundError("image")
	}
	if image.Moodboard.Project.UserID != userID {
		return nil, models.NewForbiddenError()
	}
	return image, nil
}
