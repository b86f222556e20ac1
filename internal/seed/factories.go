package seed

import (
	"fmt"
	"math/rand"
	"strings"
	"time"

	"atelier/internal/models"

	"github.com/brianvoe/gofakeit/v6"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"
)

// Factory builds domain entities and persists them to the database.
// It is a thin helper used by the demo seeder and tests.
type Factory struct {
	db *gorm.DB
}

// NewFactory creates a new Factory bound to the provided Gorm DB.
func NewFactory(db *gorm.DB) *Factory {
	gofakeit.Seed(time.Now().UnixNano())
	return &Factory{db: db}
}

// CreateUser persists a user with a bcrypt-hashed password. The plaintext
// password for all seeded users is "password".
func (f *Factory) CreateUser(overrides ...func(*models.User)) (*models.User, error) {
	hashed, err := bcrypt.GenerateFromPassword([]byte("password"), bcrypt.DefaultCost)
	if err != nil {
		return nil, fmt.Errorf("hash seed password: %w", err)
	}

	user := &models.User{
		Name:     gofakeit.Name(),
		Email:    strings.ToLower(gofakeit.Email()),
		Password: string(hashed),
	}
	for _, override := range overrides {
		override(user)
	}

	if err := f.db.Create(user).Error; err != nil {
		return nil, fmt.Errorf("create seed user: %w", err)
	}
	return user, nil
}

// CreateProject persists a project with its moodboard for the given owner.
func (f *Factory) CreateProject(user *models.User, status *models.Status, overrides ...func(*models.Project)) (*models.Project, error) {
	project := &models.Project{
		Name:     gofakeit.ProductName(),
		UserID:   user.ID,
		StatusID: status.ID,
	}
	for _, override := range overrides {
		override(project)
	}

	err := f.db.Transaction(func(tx *gorm.DB) error {
		if err := tx.Create(project).Error; err != nil {
			return err
		}
		return tx.Create(&models.Moodboard{ProjectID: project.ID}).Error
	})
	if err != nil {
		return nil, fmt.Errorf("create seed project: %w", err)
	}
	return project, nil
}

// CreateLane persists a lane in the given project.
func (f *Factory) CreateLane(project *models.Project, title string) (*models.Lane, error) {
	lane := &models.Lane{
		Title:     title,
		ProjectID: project.ID,
	}
	if err := f.db.Create(lane).Error; err != nil {
		return nil, fmt.Errorf("create seed lane: %w", err)
	}
	return lane, nil
}

// CreateCard persists a card in the given lane.
func (f *Factory) CreateCard(lane *models.Lane, overrides ...func(*models.Card)) (*models.Card, error) {
	card := &models.Card{
		Title:  gofakeit.Sentence(4),
		LaneID: lane.ID,
	}
	for _, override := range overrides {
		override(card)
	}
	if err := f.db.Create(card).Error; err != nil {
		return nil, fmt.Errorf("create seed card: %w", err)
	}
	return card, nil
}

// CreateImage persists an image on the project's moodboard with a random
// placement inside a 1920x1080 canvas.
func (f *Factory) CreateImage(moodboard *models.Moodboard) (*models.Image, error) {
	image := &models.Image{
		URL:         gofakeit.ImageURL(640, 480),
		PosX:        rand.Intn(1280),
		PosY:        rand.Intn(600),
		Width:       320 + rand.Intn(320),
		Height:      240 + rand.Intn(240),
		MoodboardID: moodboard.ID,
	}
	if err := f.db.Create(image).Error; err != nil {
		return nil, fmt.Errorf("create seed image: %w", err)
	}
	return image, nil
}
