// Package bootstrap wires up runtime dependencies shared by the server and
// the command-line tools.
package bootstrap

import (
	"fmt"

	"atelier/internal/cache"
	"atelier/internal/config"
	"atelier/internal/database"
	"atelier/internal/seed"

	"github.com/redis/go-redis/v9"
	"gorm.io/gorm"
)

// Options control runtime initialization behavior.
type Options struct {
	SeedStatuses bool
}

// InitRuntime connects to DB and Redis and optionally seeds the built-in
// project statuses.
func InitRuntime(cfg *config.Config, opts Options) (*gorm.DB, *redis.Client, error) {
	// Connect DB
	db, err := database.Connect(cfg)
	if err != nil {
		return nil, nil, fmt.Errorf("database connection failed: %w", err)
	}

	// Init Redis (may result in nil client if unreachable)
	cache.InitRedis(cfg.RedisURL)
	r := cache.GetClient()

	if opts.SeedStatuses {
		if err := seed.Statuses(db); err != nil {
			return nil, nil, fmt.Errorf("failed to seed built-in statuses: %w", err)
		}
	}

	return db, r, nil
}
