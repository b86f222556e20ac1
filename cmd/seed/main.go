// Command main runs the database seeder for Atelier.
package main

import (
	"flag"
	"log"

	"atelier/internal/bootstrap"
	"atelier/internal/config"
	"atelier/internal/seed"
)

func main() {
	// Parse command line flags
	numUsers := flag.Int("users", 5, "Number of users to create")
	projectsPer := flag.Int("projects", 3, "Maximum projects per user")
	shouldClean := flag.Bool("clean", true, "Clean database before seeding")
	flag.Parse()

	log.Println("Database Seeder")
	log.Printf("Target: %d users, up to %d projects each, clean=%v\n",
		*numUsers, *projectsPer, *shouldClean)

	// Load configuration
	cfg, err := config.LoadConfig()
	if err != nil {
		log.Fatalf("Failed to load configuration: %v", err)
	}

	db, _, err := bootstrap.InitRuntime(cfg, bootstrap.Options{})
	if err != nil {
		log.Fatalf("Failed to initialize runtime: %v", err)
	}

	if err := seed.Run(db, seed.Options{
		NumUsers:       *numUsers,
		ProjectsPerMax: *projectsPer,
		ShouldClean:    *shouldClean,
	}); err != nil {
		log.Fatalf("Seeding failed: %v", err)
	}

	log.Println("Seeding complete")
}
