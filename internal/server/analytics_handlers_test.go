package server

import (
	"context"
	"net/http"
	"testing"
	"time"

	"github.com/bkerti/lycka-siteweb-sub000/internal/models"
	"github.com/bkerti/lycka-siteweb-sub000/internal/service"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type summaryRepoStub struct {
	rows []models.VisitBucket
}

func (s *summaryRepoStub) Create(_ context.Context, _ *models.Visit) error { return nil }

func (s *summaryRepoStub) CountBuckets(_ context.Context, _ string, _ time.Time) ([]models.VisitBucket, error) {
	return s.rows, nil
}

func TestRecordVisit_PublicAndEmptyResponse(t *testing.T) {
	s, app, _ := newTestServer(t)

	resp := doJSON(t, app, http.MethodPost, "/api/visits", "", nil)
	require.Equal(t, http.StatusCreated, resp.StatusCode)

	var count int64
	require.NoError(t, s.db.Model(&models.Visit{}).Count(&count).Error)
	assert.Equal(t, int64(1), count)
}

func TestVisitsSummary_AdminOnly(t *testing.T) {
	s, app, _ := newTestServer(t)
	user := tokenFor(t, s, models.RoleUser)

	resp := doJSON(t, app, http.MethodGet, "/api/analytics/visits-summary", "", nil)
	assert.Equal(t, http.StatusUnauthorized, resp.StatusCode)

	resp = doJSON(t, app, http.MethodGet, "/api/analytics/visits-summary", user, nil)
	assert.Equal(t, http.StatusForbidden, resp.StatusCode)
}

func TestVisitsSummary_ResponseShape(t *testing.T) {
	s, app, _ := newTestServer(t)
	admin := tokenFor(t, s, models.RoleAdmin)

	// The dense-series math runs against a stub; the date_trunc SQL itself
	// is covered by the repository tests.
	s.analyticsService = service.NewAnalyticsService(&summaryRepoStub{})

	resp := doJSON(t, app, http.MethodGet, "/api/analytics/visits-summary?range=week", admin, nil)
	require.Equal(t, http.StatusOK, resp.StatusCode)

	// Top-level array of {bucket, count}, no wrapping object.
	var buckets []models.VisitBucket
	decodeBody(t, resp, &buckets)
	assert.Len(t, buckets, 7)

	resp = doJSON(t, app, http.MethodGet, "/api/analytics/visits-summary", admin, nil)
	require.Equal(t, http.StatusOK, resp.StatusCode)
	buckets = nil
	decodeBody(t, resp, &buckets)
	assert.Len(t, buckets, 30)

	resp = doJSON(t, app, http.MethodGet, "/api/analytics/visits-summary?range=century", admin, nil)
	assert.Equal(t, http.StatusBadRequest, resp.StatusCode)
}
