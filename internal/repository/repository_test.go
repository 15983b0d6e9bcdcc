package repository

import (
	"testing"

	"github.com/bkerti/lycka-siteweb-sub000/internal/models"

	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

// newTestDB opens an isolated in-memory sqlite database with the full
// schema. TranslateError is on so unique violations surface as
// gorm.ErrDuplicatedKey, same as the postgres deployment.
func newTestDB(t *testing.T) *gorm.DB {
	t.Helper()

	db, err := gorm.Open(sqlite.Open("file::memory:?cache=private&_foreign_keys=on"), &gorm.Config{
		TranslateError: true,
		Logger:         logger.Default.LogMode(logger.Silent),
	})
	require.NoError(t, err)

	require.NoError(t, db.AutoMigrate(
		&models.User{},
		&models.Project{},
		&models.Service{},
		&models.HomeModel{},
		&models.BlogArticle{},
		&models.BlogComment{},
		&models.Testimonial{},
		&models.MediaComment{},
		&models.MediaReaction{},
		&models.Visit{},
	))
	return db
}
