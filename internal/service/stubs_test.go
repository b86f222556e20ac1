package service

import (
	"context"

	"atelier/internal/models"
)

// userRepoStub is a stub for repository.UserRepository.
type userRepoStub struct {
	createFn      func(context.Context, *models.User) error
	getByIDFn     func(context.Context, uint) (*models.User, error)
	getByEmailFn  func(context.Context, string) (*models.User, error)
	updateTokenFn func(context.Context, uint, string) error
}

func (s *userRepoStub) Create(ctx context.Context, user *models.User) error {
	return s.createFn(ctx, user)
}
func (s *userRepoStub) GetByID(ctx context.Context, id uint) (*models.User, error) {
	return s.getByIDFn(ctx, id)
}
func (s *userRepoStub) GetByEmail(ctx context.Context, email string) (*models.User, error) {
	return s.getByEmailFn(ctx, email)
}
func (s *userRepoStub) UpdateToken(ctx context.Context, userID uint, token string) error {
	return s.updateTokenFn(ctx, userID, token)
}

func noopUserRepo() *userRepoStub {
	return &userRepoStub{
		createFn:      func(_ context.Context, _ *models.User) error { return nil },
		getByIDFn:     func(_ context.Context, _ uint) (*models.User, error) { return nil, nil },
		getByEmailFn:  func(_ context.Context, _ string) (*models.User, error) { return nil, nil },
		updateTokenFn: func(_ context.Context, _ uint, _ string) error { return nil },
	}
}

// statusRepoStub is a stub for repository.StatusRepository.
type statusRepoStub struct {
	getByNameFn func(context.Context, string) (*models.Status, error)
	listFn      func(context.Context) ([]models.Status, error)
}

func (s *statusRepoStub) GetByName(ctx context.Context, name string) (*models.Status, error) {
	return s.getByNameFn(ctx, name)
}
func (s *statusRepoStub) List(ctx context.Context) ([]models.Status, error) {
	return s.listFn(ctx)
}

func noopStatusRepo() *statusRepoStub {
	return &statusRepoStub{
		getByNameFn: func(_ context.Context, name string) (*models.Status, error) {
			return &models.Status{ID: 1, Name: name}, nil
		},
		listFn: func(_ context.Context) ([]models.Status, error) { return nil, nil },
	}
}

// projectRepoStub is a stub for repository.ProjectRepository.
type projectRepoStub struct {
	createWithMoodboardFn func(context.Context, *models.Project) error
	getByIDFn             func(context.Context, uint) (*models.Project, error)
	findByNameFn          func(context.Context, string, uint) (*models.Project, error)
	listByOwnerFn         func(context.Context, uint) ([]models.Project, error)
	updateFn              func(context.Context, *models.Project) error
	deleteCascadeFn       func(context.Context, uint) error
}

func (s *projectRepoStub) CreateWithMoodboard(ctx context.Context, project *models.Project) error {
	return s.createWithMoodboardFn(ctx, project)
}
func (s *projectRepoStub) GetByID(ctx context.Context, id uint) (*models.Project, error) {
	return s.getByIDFn(ctx, id)
}
func (s *projectRepoStub) FindByName(ctx context.Context, name string, userID uint) (*models.Project, error) {
	return s.findByNameFn(ctx, name, userID)
}
func (s *projectRepoStub) ListByOwner(ctx context.Context, userID uint) ([]models.Project, error) {
	return s.listByOwnerFn(ctx, userID)
}
func (s *projectRepoStub) Update(ctx context.Context, project *models.Project) error {
	return s.updateFn(ctx, project)
}
func (s *projectRepoStub) DeleteCascade(ctx context.Context, id uint) error {
	return s.deleteCascadeFn(ctx, id)
}

func noopProjectRepo() *projectRepoStub {
	return &projectRepoStub{
		createWithMoodboardFn: func(_ context.Context, _ *models.Project) error { return nil },
		getByIDFn:             func(_ context.Context, _ uint) (*models.Project, error) { return nil, nil },
		findByNameFn:          func(_ context.Context, _ string, _ uint) (*models.Project, error) { return nil, nil },
		listByOwnerFn:         func(_ context.Context, _ uint) ([]models.Project, error) { return nil, nil },
		updateFn:              func(_ context.Context, _ *models.Project) error { return nil },
		deleteCascadeFn:       func(_ context.Context, _ uint) error { return nil },
	}
}

// laneRepoStub is a stub for repository.LaneRepository.
type laneRepoStub struct {
	createFn        func(context.Context, *models.Lane) error
	getByIDFn       func(context.Context, uint) (*models.Lane, error)
	findByTitleFn   func(context.Context, string, uint) (*models.Lane, error)
	listByProjectFn func(context.Context, uint) ([]models.Lane, error)
	updateFn        func(context.Context, *models.Lane) error
	deleteFn        func(context.Context, uint) error
}

func (s *laneRepoStub) Create(ctx context.Context, lane *models.Lane) error {
	return s.createFn(ctx, lane)
}
func (s *laneRepoStub) GetByID(ctx context.Context, id uint) (*models.Lane, error) {
	return s.getByIDFn(ctx, id)
}
func (s *laneRepoStub) FindByTitle(ctx context.Context, title string, projectID uint) (*models.Lane, error) {
	return s.findByTitleFn(ctx, title, projectID)
}
func (s *laneRepoStub) ListByProject(ctx context.Context, projectID uint) ([]models.Lane, error) {
	return s.listByProjectFn(ctx, projectID)
}
func (s *laneRepoStub) Update(ctx context.Context, lane *models.Lane) error {
	return s.updateFn(ctx, lane)
}
func (s *laneRepoStub) Delete(ctx context.Context, id uint) error {
	return s.deleteFn(ctx, id)
}

func noopLaneRepo() *laneRepoStub {
	return &laneRepoStub{
		createFn:        func(_ context.Context, _ *models.Lane) error { return nil },
		getByIDFn:       func(_ context.Context, _ uint) (*models.Lane, error) { return nil, nil },
		findByTitleFn:   func(_ context.Context, _ string, _ uint) (*models.Lane, error) { return nil, nil },
		listByProjectFn: func(_ context.Context, _ uint) ([]models.Lane, error) { return nil, nil },
		updateFn:        func(_ context.Context, _ *models.Lane) error { return nil },
		deleteFn:        func(_ context.Context, _ uint) error { return nil },
	}
}

// cardRepoStub is a stub for repository.CardRepository.
type cardRepoStub struct {
	createFn  func(context.Context, *models.Card) error
	getByIDFn func(context.Context, uint) (*models.Card, error)
	updateFn  func(context.Context, *models.Card) error
	deleteFn  func(context.Context, uint) error
}

func (s *cardRepoStub) Create(ctx context.Context, card *models.Card) error {
	return s.createFn(ctx, card)
}
func (s *cardRepoStub) GetByID(ctx context.Context, id uint) (*models.Card, error) {
	return s.getByIDFn(ctx, id)
}
func (s *cardRepoStub) Update(ctx context.Context, card *models.Card) error {
	return s.updateFn(ctx, card)
}
func (s *cardRepoStub) Delete(ctx context.Context, id uint) error {
	return s.deleteFn(ctx, id)
}

func noopCardRepo() *cardRepoStub {
	return &cardRepoStub{
		createFn:  func(_ context.Context, _ *models.Card) error { return nil },
		getByIDFn: func(_ context.Context, _ uint) (*models.Card, error) { return nil, nil },
		updateFn:  func(_ context.Context, _ *models.Card) error { return nil },
		deleteFn:  func(_ context.Context, _ uint) error { return nil },
	}
}

// moodboardRepoStub is a stub for repository.MoodboardRepository.
type moodboardRepoStub struct {
	getByIDFn        func(context.Context, uint) (*models.Moodboard, error)
	getByProjectIDFn func(context.Context, uint) (*models.Moodboard, error)
}

func (s *moodboardRepoStub) GetByID(ctx context.Context, id uint) (*models.Moodboard, error) {
	return s.getByIDFn(ctx, id)
}
func (s *moodboardRepoStub) GetByProjectID(ctx context.Context, projectID uint) (*models.Moodboard, error) {
	return s.getByProjectIDFn(ctx, projectID)
}

func noopMoodboardRepo() *moodboardRepoStub {
	return &moodboardRepoStub{
		getByIDFn:        func(_ context.Context, _ uint) (*models.Moodboard, error) { return nil, nil },
		getByProjectIDFn: func(_ context.Context, _ uint) (*models.Moodboard, error) { return nil, nil },
	}
}

// imageRepoStub is a stub for repository.ImageRepository.
type imageRepoStub struct {
	createFn          func(context.Context, *models.Image) error
	getByIDFn         func(context.Context, uint) (*models.Image, error)
	listByMoodboardFn func(context.Context, uint) ([]models.Image, error)
	deleteFn          func(context.Context, uint) error
}

func (s *imageRepoStub) Create(ctx context.Context, image *models.Image) error {
	return s.createFn(ctx, image)
}
func (s *imageRepoStub) GetByID(ctx context.Context, id uint) (*models.Image, error) {
	return s.getByIDFn(ctx, id)
}
func (s *imageRepoStub) ListByMoodboard(ctx context.Context, moodboardID uint) ([]models.Image, error) {
	return s.listByMoodboardFn(ctx, moodboardID)
}
func (s *imageRepoStub) Delete(ctx context.Context, id uint) error {
	return s.deleteFn(ctx, id)
}

func noopImageRepo() *imageRepoStub {
	return &imageRepoStub{
		createFn:          func(_ context.Context, _ *models.Image) error { return nil },
		getByIDFn:         func(_ context.Context, _ uint) (*models.Image, error) { return nil, nil },
		listByMoodboardFn: func(_ context.Context, _ uint) ([]models.Image, error) { return nil, nil },
		deleteFn:          func(_ context.Context, _ uint) error { return nil },
	}
}

// authorizerWith builds an Authorizer over the given stubs, defaulting any
// nil stub to a noop.
func authorizerWith(projects *projectRepoStub, lanes *laneRepoStub, cards *cardRepoStub, moodboards *moodboardRepoStub, images *imageRepoStub) *Authorizer {
	if projects == nil {
		projects = noopProjectRepo()
	}
	if lanes == nil {
		lanes = noopLaneRepo()
	}
	if cards == nil {
		cards = noopCardRepo()
	}
	if moodboards == nil {
		moodboards = noopMoodboardRepo()
	}
	if images == nil {
		images = noopImageRepo()
	}
	return NewAuthorizer(projects, lanes, cards, moodboards, images)
}
