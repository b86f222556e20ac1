package service

import (
	"context"
	"errors"
	"testing"

	"atelier/internal/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestAuthorizerProjectOwner(t *testing.T) {
	t.Parallel()

	projects := noopProjectRepo()
	projects.getByIDFn = func(_ context.Context, id uint) (*models.Project, error) {
		return &models.Project{ID: id, Name: "Atelier", UserID: 9}, nil
	}

	authz := authorizerWith(projects, nil, nil, nil, nil)
	project, err := authz.Project(context.Background(), 4, 9)
	require.NoError(t, err)
	assert.Equal(t, "Atelier", project.Name)
}

func TestAuthorizerMissingBeatsForbidden(t *testing.T) {
	t.Parallel()

	// A missing entity is reported as not found even when the caller would
	// not have owned it, so a 404 never leaks ownership information.
	authz := authorizerWith(nil, nil, nil, nil, nil)
	_, err := authz.Project(context.Background(), 4, 2)

	appErr, ok := models.AsAppError(err)
	require.True(t, ok)
	assert.Equal(t, models.CodeNotFound, appErr.Code)
}

func TestAuthorizerLaneWalksToProjectOwner(t *testing.T) {
	t.Parallel()

	lanes := noopLaneRepo()
	lanes.getByIDFn = func(_ context.Context, id uint) (*models.Lane, error) {
		return &models.Lane{ID: id, ProjectID: 4, Project: models.Project{ID: 4, UserID: 9}}, nil
	}

	authz := authorizerWith(nil, lanes, nil, nil, nil)

	_, err := authz.Lane(context.Background(), 8, 9)
	require.NoError(t, err)

	_, err = authz.Lane(context.Background(), 8, 2)
	appErr, ok := models.AsAppError(err)
	require.True(t, ok)
	assert.Equal(t, models.CodeForbidden, appErr.Code)
}

func TestAuthorizerCardWalksTwoHops(t *testing.T) {
	t.Parallel()

	cards := noopCardRepo()
	cards.getByIDFn = func(_ context.Context, id uint) (*models.Card, error) {
		return &models.Card{
			ID:     id,
			LaneID: 8,
			Lane:   models.Lane{ID: 8, ProjectID: 4, Project: models.Project{ID: 4, UserID: 9}},
		}, nil
	}

	authz := authorizerWith(nil, nil, cards, nil, nil)

	card, err := authz.Card(context.Background(), 3, 9)
	require.NoError(t, err)
	assert.Equal(t, uint(8), card.LaneID)

	_, err = authz.Card(context.Background(), 3, 2)
	appErr, ok := models.AsAppError(err)
	require.True(t, ok)
	assert.Equal(t, models.CodeForbidden, appErr.Code)
}

func TestAuthorizerImageWalksThroughMoodboard(t *testing.T) {
	t.Parallel()

	images := noopImageRepo()
	images.getByIDFn = func(_ context.Context, id uint) (*models.Image, error) {
		return &models.Image{
			ID:          id,
			MoodboardID: 11,
			Moodboard:   models.Moodboard{ID: 11, ProjectID: 4, Project: models.Project{ID: 4, UserID: 9}},
		}, nil
	}

	authz := authorizerWith(nil, nil, nil, nil, images)

	_, err := authz.Image(context.Background(), 6, 9)
	require.NoError(t, err)

	_, err = authz.Image(context.Background(), 6, 2)
	appErr, ok := models.AsAppError(err)
	require.True(t, ok)
	assert.Equal(t, models.CodeForbidden, appErr.Code)
}

func TestAuthorizerPropagatesRepositoryErrors(t *testing.T) {
	t.Parallel()

	boom := errors.New("connection reset")
	projects := noopProjectRepo()
	projects.getByIDFn = func(_ context.Context, _ uint) (*models.Project, error) {
		return nil, boom
	}

	authz := authorizerWith(projects, nil, nil, nil, nil)
	_, err := authz.Project(context.Background(), 4, 9)
	assert.ErrorIs(t, err, boom)
}
