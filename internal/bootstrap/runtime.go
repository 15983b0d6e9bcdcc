// Package bootstrap wires up runtime dependencies shared by the server and
// the seeding CLI.
package bootstrap

import (
	"context"
	"fmt"

	"github.com/bkerti/lycka-siteweb-sub000/internal/cache"
	"github.com/bkerti/lycka-siteweb-sub000/internal/config"
	"github.com/bkerti/lycka-siteweb-sub000/internal/database"
	"github.com/bkerti/lycka-siteweb-sub000/internal/seed"

	"github.com/redis/go-redis/v9"
	"gorm.io/gorm"
)

// Options control runtime initialization behavior.
type Options struct {
	EnsurePrincipals bool
}

// InitRuntime connects to DB and Redis and optionally bootstraps the
// built-in principals. The Redis client may be nil when the server is
// unreachable; rate limiting then fails open.
func InitRuntime(cfg *config.Config, opts Options) (*gorm.DB, *redis.Client, error) {
	db, err := database.Connect(cfg)
	if err != nil {
		return nil, nil, fmt.Errorf("database connection failed: %w", err)
	}

	cache.InitRedis(cfg.RedisURL)
	r := cache.GetClient()

	if opts.EnsurePrincipals && !cfg.IsProduction() {
		ctx := context.Background()
		if err := seed.EnsureAdmin(ctx, db); err != nil {
			return nil, nil, fmt.Errorf("failed to bootstrap development admin: %w", err)
		}
		if err := seed.EnsureSuperAdmin(ctx, db); err != nil {
			return nil, nil, fmt.Errorf("failed to bootstrap super admin: %w", err)
		}
	}

	return db, r, nil
}
