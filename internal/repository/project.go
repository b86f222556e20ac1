package repository

import (
	"context"
	"errors"

	"atelier/internal/models"

	"gorm.io/gorm"
)

// ProjectRepository defines the interface for project data operations.
type ProjectRepository interface {
	// CreateWithMoodboard inserts the project and its moodboard in one
	// transaction; every project owns exactly one moodboard from birth.
	CreateWithMoodboard(ctx context.Context, project *models.Project) error
	GetByID(ctx context.Context, id uint) (*models.Project, error)
	// FindByName does a case-insensitive name lookup scoped to the owner.
	FindByName(ctx context.Context, name string, userID uint) (*models.Project, error)
	ListByOwner(ctx context.Context, userID uint) ([]models.Project, error)
	Update(ctx context.Context, project *models.Project) error
	// DeleteCascade removes the project and everything hanging off it in
	// dependency order: images, moodboard, cards, lanes, project.
	DeleteCascade(ctx context.Context, id uint) error
}

type projectRepository struct {
	db *gorm.DB
}

// NewProjectRepository creates a new project repository
func NewProjectRepository(db *gorm.DB) ProjectRepository {
	return &projectRepository{db: db}
}

func (r *projectRepository) CreateWithMoodboard(ctx context.Context, project *models.Project) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Create(project).Error; err != nil {
			return err
		}
		return tx.Create(&models.Moodboard{ProjectID: project.ID}).Error
	})
}

func (r *projectRepository) GetByID(ctx context.Context, id uint) (*models.Project, error) {
	var project models.Project
	err := r.db.WithContext(ctx).First(&project, id).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &project, nil
}

func (r *projectRepository) FindByName(ctx context.Context, name string, userID uint) (*models.Project, error) {
	var project models.Project
	err := r.db.WithContext(ctx).
		Where("LOWER(name) = LOWER(?) AND user_id = ?", name, userID).
		First(&project).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &project, nil
}

func (r *projectRepository) ListByOwner(ctx context.Context, userID uint) ([]models.Project, error) {
	var projects []models.Project
	err := r.db.WithContext(ctx).
		Where("user_id = ?", userID).
		Order("created_at DESC").
		Find(&projects).Error
	return projects, err
}

func (r *projectRepository) Update(ctx context.Context, project *models.Project) error {
	return r.db.WithContext(ctx).
		Model(&models.Project{}).
		Where("id = ?", project.ID).
		Update("name", project.Name).Error
}

func (r *projectRepository) DeleteCascade(ctx context.Context, id uint) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		// Children before parents, per the storage referential constraints.
		if err := tx.Where(
			"moodboard_id IN (?)",
			tx.Session(&gorm.Session{NewDB: true}).Model(&models.Moodboard{}).Select("id").Where("project_id = ?", id),
		).Delete(&models.Image{}).Error; err != nil {
			return err
		}
		if err := tx.Where("project_id = ?", id).Delete(&models.Moodboard{}).Error; err != nil {
			return err
		}
		if err := tx.Where(
			"lane_id IN (?)",
			tx.Session(&gorm.Session{NewDB: true}).Model(&models.Lane{}).Select("id").Where("project_id = ?", id),
		).Delete(&models.Card{}).Error; err != nil {
			return err
		}
		if err := tx.Where("project_id = ?", id).Delete(&models.Lane{}).Error; err != nil {
			return err
		}
		return tx.Delete(&models.Project{}, id).Error
	})
}
