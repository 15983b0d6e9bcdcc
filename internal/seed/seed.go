// Package seed provides database seeding utilities for development and testing.
package seed

import (
	"context"
	"errors"
	"fmt"
	"log"
	"os"

	"github.com/bkerti/lycka-siteweb-sub000/internal/models"

	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"
)

// Options configuration for the seeder
type Options struct {
	NumProjects     int
	NumServices     int
	NumHomeModels   int
	NumArticles     int
	NumTestimonials int
	NumVisitDays    int
	ShouldClean     bool
}

// DefaultOptions returns volumes that give the local frontend something to
// browse without making the dashboard charts unreadable.
func DefaultOptions() Options {
	return Options{
		NumProjects:     12,
		NumServices:     6,
		NumHomeModels:   8,
		NumArticles:     10,
		NumTestimonials: 15,
		NumVisitDays:    45,
	}
}

// builtinAdminPassword is a placeholder for local development only;
// production never seeds through this path.
const (
	builtinAdminUsername = "admin"
	builtinAdminPassword = "0000"
	superAdminUsername   = "root"
)

// EnsureAdmin creates the built-in development admin if it is missing.
// Idempotent; called from bootstrap on every dev startup and from the
// dev reset endpoint.
func EnsureAdmin(ctx context.Context, db *gorm.DB) error {
	return ensureUser(ctx, db, builtinAdminUsername, builtinAdminPassword, models.RoleAdmin)
}

// EnsureSuperAdmin creates the root principal when SUPER_ADMIN_PASSWORD is
// set. Without the env var it is a no-op so casual dev setups don't get a
// super_admin with a guessable password.
func EnsureSuperAdmin(ctx context.Context, db *gorm.DB) error {
	password := os.Getenv("SUPER_ADMIN_PASSWORD")
	if password == "" {
		return nil
	}
	return ensureUser(ctx, db, superAdminUsername, password, models.RoleSuperAdmin)
}

func ensureUser(ctx context.Context, db *gorm.DB, username, password, role string) error {
	var existing models.User
	err := db.WithContext(ctx).Where("username = ?", username).First(&existing).Error
	if err == nil {
		return nil
	}
	if !errors.Is(err, gorm.ErrRecordNotFound) {
		return fmt.Errorf("lookup %s: %w", username, err)
	}

	hashed, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return fmt.Errorf("hash password for %s: %w", username, err)
	}

	user := &models.User{
		Username: username,
		Password: string(hashed),
		Role:     role,
	}
	if err := db.WithContext(ctx).Create(user).Error; err != nil {
		// Lost a race with a concurrent ensure; the user exists, done.
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return nil
		}
		return fmt.Errorf("create %s: %w", username, err)
	}
	log.Printf("seeded %s principal %q", role, username)
	return nil
}

// Seed populates the database with demo content
func Seed(db *gorm.DB, opts Options) error {
	log.Println("Starting database seeding...")

	if opts.ShouldClean {
		if err := clearData(db); err != nil {
			log.Println("Warning: could not clear all existing data, continuing anyway...")
		}
	}

	ctx := context.Background()
	if err := EnsureAdmin(ctx, db); err != nil {
		return fmt.Errorf("failed to ensure admin: %w", err)
	}
	if err := EnsureSuperAdmin(ctx, db); err != nil {
		return fmt.Errorf("failed to ensure super admin: %w", err)
	}

	f := NewFactory(db)

	projects, err := f.CreateProjects(opts.NumProjects)
	if err != nil {
		return fmt.Errorf("failed to create projects: %w", err)
	}
	log.Printf("%d projects created", len(projects))

	services, err := f.CreateServices(opts.NumServices)
	if err != nil {
		return fmt.Errorf("failed to create services: %w", err)
	}
	log.Printf("%d services created", len(services))

	homeModels, err := f.CreateHomeModels(opts.NumHomeModels)
	if err != nil {
		return fmt.Errorf("failed to create home models: %w", err)
	}
	log.Printf("%d home models created", len(homeModels))

	articles, err := f.CreateArticles(opts.NumArticles)
	if err != nil {
		return fmt.Errorf("failed to create articles: %w", err)
	}
	log.Printf("%d blog articles created", len(articles))

	testimonials, err := f.CreateTestimonials(opts.NumTestimonials)
	if err != nil {
		return fmt.Errorf("failed to create testimonials: %w", err)
	}
	log.Printf("%d testimonials created", len(testimonials))

	if err := f.CreateEngagement(projects, homeModels); err != nil {
		return fmt.Errorf("failed to create engagement rows: %w", err)
	}

	if err := f.CreateVisits(opts.NumVisitDays); err != nil {
		return fmt.Errorf("failed to create visits: %w", err)
	}

	log.Println("Database seeding completed successfully")
	return nil
}

func clearData(db *gorm.DB) error {
	log.Println("Clearing existing data...")
	sql := `TRUNCATE TABLE blog_comments, lycka_blog, projects, services, home_models,
		testimonials, media_comments, media_reactions, visits RESTART IDENTITY CASCADE;`
	return db.Exec(sql).Error
}
