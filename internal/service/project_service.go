package service

import (
	"context"
	"fmt"

	"atelier/internal/models"
	"atelier/internal/repository"
)

// ProjectService orchestrates project CRUD, the moodboard view, and the
// full cascade on deletion.
type ProjectService struct {
	projectRepo   repository.ProjectRepository
	statusRepo    repository.StatusRepository
	moodboardRepo repository.MoodboardRepository
	imageRepo     repository.ImageRepository
	authz         *Authorizer
}

type CreateProjectInput struct {
	UserID uint
	Name   string
}

type UpdateProjectInput struct {
	UserID    uint
	ProjectID uint
	Name      string
}

// MoodboardView is the response shape of the project moodboard listing.
type MoodboardView struct {
	ProjectName string         `json:"project_name"`
	MoodboardID uint           `json:"moodboard_id"`
	Images      []models.Image `json:"images"`
}

// NewProjectService creates a new project service.
func NewProjectService(
	projectRepo repository.ProjectRepository,
	statusRepo repository.StatusRepository,
	moodboardRepo repository.MoodboardRepository,
	imageRepo repository.ImageRepository,
	authz *Authorizer,
) *ProjectService {
	return &ProjectService{
		projectRepo:   projectRepo,
		statusRepo:    statusRepo,
		moodboardRepo: moodboardRepo,
		imageRepo:     imageRepo,
		authz:         authz,
	}
}

// CreateProject creates a project in the Planning status together with its
// moodboard. The name must be unique, case-insensitively, among the owner's
// projects.
func (s *ProjectService) CreateProject(ctx context.Context, in CreateProjectInput) (*models.Project, error) {
	existing, err := s.projectRepo.FindByName(ctx, in.Name, in.UserID)
	if err != nil {
		return nil, err
	}
	if existing != nil {
		return nil, models.NewConflictError("There is already a project with given name")
	}

	// The initial status is resolved by name, never by a hardcoded row id.
	planning, err := s.statusRepo.GetByName(ctx, models.StatusPlanning)
	if err != nil {
		return nil, err
	}
	if planning == nil {
		return nil, fmt.Errorf("status %q is not seeded", models.StatusPlanning)
	}

	project := &models.Project{
		Name:     in.Name,
		UserID:   in.UserID,
		StatusID: planning.ID,
	}
	if err := s.projectRepo.CreateWithMoodboard(ctx, project); err != nil {
		return nil, err
	}
	return project, nil
}

// UpdateProject renames a project after re-checking name uniqueness. The
// re-check does not exclude the project itself, so renaming a project to its
// own current name conflicts; callers rename to a fresh name first.
func (s *ProjectService) UpdateProject(ctx context.Context, in UpdateProjectInput) error {
	project, err := s.authz.Project(ctx, in.ProjectID, in.UserID)
	if err != nil {
		return err
	}

	existing, err := s.projectRepo.FindByName(ctx, in.Name, in.UserID)
	if err != nil {
		return err
	}
	if existing != nil {
		return models.NewConflictError("There is already a project with given name")
	}

	project.Name = in.Name
	return s.projectRepo.Update(ctx, project)
}

// RemoveProject cascade-deletes the project: its moodboard's images, the
// moodboard, the lanes' cards, the lanes, and finally the project itself.
func (s *ProjectService) RemoveProject(ctx context.Context, id, userID uint) error {
	if _, err := s.authz.Project(ctx, id, userID); err != nil {
		return err
	}
	return s.projectRepo.DeleteCascade(ctx, id)
}

// FindAll returns the user's projects, newest first.
func (s *ProjectService) FindAll(ctx context.Context, userID uint) ([]models.Project, error) {
	return s.projectRepo.ListByOwner(ctx, userID)
}

// FindMoodboard resolves the project's moodboard and returns its images
// together with the project name.
func (s *ProjectService) FindMoodboard(ctx context.Context, projectID, userID uint) (*MoodboardView, error) {
	project, err := s.authz.Project(ctx, projectID, userID)
	if err != nil {
		return nil, err
	}

	moodboard, err := s.moodboardRepo.GetByProjectID(ctx, projectID)
	if err != nil {
		return nil, err
	}
	if moodboard == nil {
		return nil, models.NewNotFoundError("moodboard")
	}

	images, err := s.imageRepo.ListByMoodboard(ctx, moodboard.ID)
	if err != nil {
		return nil, err
	}

	return &MoodboardView{
		ProjectName: project.Name,
		MoodboardID: moodboard.ID,
		Images:      images,
	}, nil
}
