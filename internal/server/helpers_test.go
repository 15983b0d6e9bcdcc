package server

import (
	"bytes"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"strconv"
	"testing"

	"github.com/bkerti/lycka-siteweb-sub000/internal/config"
	"github.com/bkerti/lycka-siteweb-sub000/internal/models"
	"github.com/bkerti/lycka-siteweb-sub000/internal/repository"
	"github.com/bkerti/lycka-siteweb-sub000/internal/service"
	"github.com/bkerti/lycka-siteweb-sub000/internal/testutil"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

func testConfig() *config.Config {
	return &config.Config{
		JWTSecret: "test-secret-test-secret-test-secret",
		Port:      "0",
		Env:       "test",
	}
}

// newTestServer builds a Server over an in-memory sqlite database with the
// full schema migrated, plus a fiber app with the real route table. Redis
// is nil; rate limiting is disabled in the test environment.
func newTestServer(t *testing.T) (*Server, *fiber.App, *testutil.BlobStoreStub) {
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

	blobStore := testutil.NewBlobStoreStub()

	s := &Server{
		config:          testConfig(),
		db:              db,
		userRepo:        repository.NewUserRepository(db),
		projectRepo:     repository.NewProjectRepository(db),
		serviceRepo:     repository.NewServiceRepository(db),
		homeModelRepo:   repository.NewHomeModelRepository(db),
		blogRepo:        repository.NewBlogRepository(db),
		testimonialRepo: repository.NewTestimonialRepository(db),
	}
	s.engagementService = service.NewEngagementService(repository.NewEngagementRepository(db))
	s.analyticsService = service.NewAnalyticsService(repository.NewVisitRepository(db))
	s.uploadService = service.NewUploadService(blobStore)

	app := fiber.New()
	s.SetupRoutes(app)

	return s, app, blobStore
}

// tokenFor issues a valid token with the given role.
func tokenFor(t *testing.T, s *Server, role string) string {
	t.Helper()
	token, err := s.generateToken("tester", role)
	require.NoError(t, err)
	return token
}

func doJSON(t *testing.T, app *fiber.App, method, path, token string, body any) *http.Response {
	t.Helper()

	var reader io.Reader
	if body != nil {
		raw, err := json.Marshal(body)
		require.NoError(t, err)
		reader = bytes.NewReader(raw)
	}

	req := httptest.NewRequest(method, path, reader)
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}

	resp, err := app.Test(req, -1)
	require.NoError(t, err)
	return resp
}

func itoa(id uint) string {
	return strconv.FormatUint(uint64(id), 10)
}

func decodeBody(t *testing.T, resp *http.Response, out any) {
	t.Helper()
	defer resp.Body.Close()
	require.NoError(t, json.NewDecoder(resp.Body).Decode(out))
}
