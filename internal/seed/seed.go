package seed

import (
	"fmt"
	"log"
	"math/rand"

	"atelier/internal/models"

	"gorm.io/gorm"
)

// Options configuration for the demo seeder
type Options struct {
	NumUsers       int
	ProjectsPerMax int
	ShouldClean    bool
}

var laneTitles = []string{
	"Backlog", "To Do", "In Progress", "Review", "Done",
	"Ideas", "Blocked", "This Week",
}

// Run populates the database with demo users, projects, lanes, cards, and
// moodboard images. Intended for development environments only.
func Run(db *gorm.DB, opts Options) error {
	if opts.NumUsers <= 0 {
		opts.NumUsers = 5
	}
	if opts.ProjectsPerMax <= 0 {
		opts.ProjectsPerMax = 3
	}

	if opts.ShouldClean {
		if err := clean(db); err != nil {
			return fmt.Errorf("clean database: %w", err)
		}
	}

	if err := Statuses(db); err != nil {
		return err
	}

	var statuses []models.Status
	if err := db.Find(&statuses).Error; err != nil {
		return fmt.Errorf("load statuses: %w", err)
	}

	factory := NewFactory(db)

	for i := 0; i < opts.NumUsers; i++ {
		user, err := factory.CreateUser()
		if err != nil {
			return err
		}

		numProjects := 1 + rand.Intn(opts.ProjectsPerMax)
		for j := 0; j < numProjects; j++ {
			status := statuses[rand.Intn(len(statuses))]
			project, err := factory.CreateProject(user, &status)
			if err != nil {
				return err
			}

			for _, title := range pickLaneTitles() {
				lane, err := factory.CreateLane(project, title)
				if err != nil {
					return err
				}
				for k := 0; k < rand.Intn(5); k++ {
					if _, err := factory.CreateCard(lane); err != nil {
						return err
					}
				}
			}

			var moodboard models.Moodboard
			if err := db.Where("project_id = ?", project.ID).First(&moodboard).Error; err != nil {
				return fmt.Errorf("load seeded moodboard: %w", err)
			}
			for k := 0; k < rand.Intn(6); k++ {
				if _, err := factory.CreateImage(&moodboard); err != nil {
					return err
				}
			}
		}

		log.Printf("seeded user %s with projects", user.Email)
	}

	return nil
}

// pickLaneTitles returns three to five distinct lane titles.
func pickLaneTitles() []string {
	shuffled := make([]string, len(laneTitles))
	copy(shuffled, laneTitles)
	rand.Shuffle(len(shuffled), func(i, j int) {
		shuffled[i], shuffled[j] = shuffled[j], shuffled[i]
	})
	return shuffled[:3+rand.Intn(3)]
}

func clean(db *gorm.DB) error {
	// Children before parents to respect foreign keys.
	for _, model := range []interface{}{
		&models.Image{}, &models.Moodboard{}, &models.Card{},
		&models.Lane{}, &models.Project{}, &models.User{},
	} {
		if err := db.Session(&gorm.Session{AllowGlobalUpdate: true}).Delete(model).Error; err != nil {
			return err
		}
	}
	return nil
}
