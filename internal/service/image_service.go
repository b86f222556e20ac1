package service

import (
	"context"

	"atelier/internal/models"
	"atelier/internal/repository"
)

// ImageService orchestrates moodboard image creation and removal; ownership
// is derived through the moodboard's project.
type ImageService struct {
	imageRepo repository.ImageRepository
	authz     *Authorizer
}

type CreateImageInput struct {
	UserID      uint
	MoodboardID uint
	URL         string
}

// NewImageService creates a new image service.
func NewImageService(imageRepo repository.ImageRepository, authz *Authorizer) *ImageService {
	return &ImageService{imageRepo: imageRepo, authz: authz}
}

// CreateImage adds an image to a moodboard whose project the caller owns.
// The placement fields are reserved and written as zero.
func (s *ImageService) CreateImage(ctx context.Context, in CreateImageInput) (*models.Image, error) {
	if _, err := s.authz.Moodboard(ctx, in.MoodboardID, in.UserID); err != nil {
		return nil, err
	}

	image := &models.Image{
		URL:         in.URL,
		MoodboardID: in.MoodboardID,
	}
	if err := s.imageRepo.Create(ctx, image); err != nil {
		return nil, err
	}
	return image, nil
}

// RemoveImage deletes an image.
func (s *ImageService) RemoveImage(ctx context.Context, id, userID uint) error {
	if _, err := s.authz.Image(ctx, id, userID); err != nil {
		return err
	}
	return s.imageRepo.Delete(ctx, id)
}
